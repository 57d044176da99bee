package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "4500", r.PostForm.Get("amount"))
		assert.Equal(t, "eur", r.PostForm.Get("currency"))

		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "sk_test_123", user)

		json.NewEncoder(w).Encode(map[string]any{
			"id":            "pi_123",
			"object":        "payment_intent",
			"client_secret": "pi_123_secret",
		})
	}))
	defer srv.Close()

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_API_BASE", srv.URL)

	out, err := NewStripeService().CreatePaymentIntent(4500, "")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", out["id"])
	assert.Equal(t, "pi_123_secret", out["client_secret"])
}

func TestCreateSubscription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/v1/subscriptions", r.URL.Path)
		assert.Equal(t, "cus_42", r.PostForm.Get("customer"))
		assert.Equal(t, "price_basic", r.PostForm.Get("items[0][price]"))

		json.NewEncoder(w).Encode(map[string]any{"id": "sub_1", "status": "active"})
	}))
	defer srv.Close()

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_API_BASE", srv.URL)

	out, err := NewStripeService().CreateSubscription("cus_42", "price_basic")
	require.NoError(t, err)
	assert.Equal(t, "active", out["status"])
}

func TestStripeErrorsAreSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Your card was declined."},
		})
	}))
	defer srv.Close()

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_API_BASE", srv.URL)

	_, err := NewStripeService().CreatePaymentIntent(100, "eur")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card was declined")
}

func TestStripeRequiresKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")

	_, err := NewStripeService().CreatePaymentIntent(100, "eur")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRIPE_SECRET_KEY")

	_, err = NewStripeService().CreateSubscription("", "")
	assert.Error(t, err)
}
