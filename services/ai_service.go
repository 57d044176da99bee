package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/polmorales30/nexo.clinic-sub000/logger"
	"github.com/polmorales30/nexo.clinic-sub000/models"

	"go.uber.org/zap"
)

// AIService asks an OpenAI-compatible chat endpoint for a weekly menu.
// With no API key configured it serves the canned template menu instead,
// which is also the fallback when the model's answer cannot be used.
type AIService struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
	suggest *SuggestionService
}

func NewAIService(suggest *SuggestionService) *AIService {
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &AIService{
		client:  &http.Client{Timeout: 60 * time.Second},
		apiKey:  os.Getenv("LLM_API_KEY"),
		baseURL: baseURL,
		model:   model,
		suggest: suggest,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateMenu returns a weekly plan targeting dailyKcal per day plus the
// source of the menu ("ai" or "mock").
func (a *AIService) GenerateMenu(dailyKcal float64) (models.WeeklyDietPlan, string, error) {
	if a.apiKey == "" {
		return a.suggest.GenerateWeeklyMenu(dailyKcal), "mock", nil
	}

	plan, err := a.generateWithLLM(dailyKcal)
	if err != nil {
		logger.Warn("LLM menu generation failed, serving template menu",
			zap.Float64("dailyKcal", dailyKcal), zap.Error(err))
		return a.suggest.GenerateWeeklyMenu(dailyKcal), "mock", nil
	}
	return plan, "ai", nil
}

func (a *AIService) generateWithLLM(dailyKcal float64) (models.WeeklyDietPlan, error) {
	prompt := fmt.Sprintf(
		"Eres el asistente de una clínica de nutrición. Genera un menú semanal de unas %.0f kcal diarias.\n"+
			"Responde SOLO con un objeto JSON cuyas claves sean los días (%s) y cada día un objeto "+
			"de comidas (desayuno, comida, cena) con la forma "+
			`{"name":"...","subName":"...","items":[{"id":"...","name":"...","kcal":0,"p":0,"c":0,"f":0,"instanceId":"...","grams":0}]}. `+
			"Los valores kcal/p/c/f son por 100 g.",
		dailyKcal, strings.Join(models.WeekDays, ", "),
	)

	reqBody := chatRequest{
		Model:       a.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   4000,
		Temperature: 0.7,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", a.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llm request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read llm response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("llm api error (%d): %s", resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("failed to parse llm response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("empty llm response")
	}

	content := cr.Choices[0].Message.Content
	// Models sometimes wrap the JSON in a markdown fence.
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var plan models.WeeklyDietPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return nil, fmt.Errorf("llm returned unusable menu JSON: %w", err)
	}
	return plan.Normalize(), nil
}
