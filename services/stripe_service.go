package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// StripeService is a thin passthrough to the Stripe REST API for the
// billing settings screen. No retries, no webhooks — the dashboard just
// needs the created object back.
type StripeService struct {
	client    *http.Client
	secretKey string
	baseURL   string
}

func NewStripeService() *StripeService {
	baseURL := os.Getenv("STRIPE_API_BASE")
	if baseURL == "" {
		baseURL = "https://api.stripe.com"
	}
	return &StripeService{
		client:    &http.Client{Timeout: 15 * time.Second},
		secretKey: os.Getenv("STRIPE_SECRET_KEY"),
		baseURL:   baseURL,
	}
}

// CreatePaymentIntent creates a payment intent for amount (in the
// currency's smallest unit) and returns Stripe's response as-is.
func (s *StripeService) CreatePaymentIntent(amount int64, currency string) (map[string]any, error) {
	if currency == "" {
		currency = "eur"
	}
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")

	return s.post("/v1/payment_intents", form)
}

// CreateSubscription subscribes a Stripe customer to a price.
func (s *StripeService) CreateSubscription(customerID, priceID string) (map[string]any, error) {
	if customerID == "" || priceID == "" {
		return nil, fmt.Errorf("customer_id and price_id are required")
	}
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("items[0][price]", priceID)

	return s.post("/v1/subscriptions", form)
}

func (s *StripeService) post(path string, form url.Values) (map[string]any, error) {
	if s.secretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY not set")
	}

	req, err := http.NewRequest("POST", s.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.secretKey, "")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call stripe: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read stripe response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Stripe errors come back as {"error": {"message": ...}}
		var se struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(body, &se) == nil && se.Error.Message != "" {
			return nil, fmt.Errorf("stripe api error (%d): %s", resp.StatusCode, se.Error.Message)
		}
		return nil, fmt.Errorf("stripe api error (%d): %s", resp.StatusCode, string(body))
	}

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse stripe response: %w", err)
	}
	return out, nil
}
