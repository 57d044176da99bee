package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/polmorales30/nexo.clinic-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMenuWithoutKeyServesMock(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")

	ai := NewAIService(newTestSuggestionService())
	plan, source, err := ai.GenerateMenu(2200)
	require.NoError(t, err)
	assert.Equal(t, "mock", source)
	require.Len(t, plan, 7)

	for _, day := range models.WeekDays {
		assert.InDelta(t, 2200, plan[day].Totals().Kcal, 2200*0.01, "day %s", day)
	}
}

func TestGenerateMenuUsesLLMWhenConfigured(t *testing.T) {
	menu := models.NewWeeklyDietPlan()
	menu["lunes"]["desayuno"] = models.Meal{
		Name:    "desayuno",
		SubName: "Porridge",
		Items: []models.FoodInstance{
			{FoodItem: models.FoodItem{ID: "avena", Name: "Avena", Kcal: 389}, InstanceID: "x1", Grams: 60},
		},
	}
	raw, err := json.Marshal(menu)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": string(raw)}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("LLM_BASE_URL", srv.URL)

	ai := NewAIService(newTestSuggestionService())
	plan, source, err := ai.GenerateMenu(2000)
	require.NoError(t, err)
	assert.Equal(t, "ai", source)
	require.Len(t, plan, 7)
	assert.Equal(t, "Porridge", plan["lunes"]["desayuno"].SubName)
}

func TestGenerateMenuFallsBackOnBadLLMAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "I cannot do that."}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("LLM_BASE_URL", srv.URL)

	ai := NewAIService(newTestSuggestionService())
	plan, source, err := ai.GenerateMenu(2000)
	require.NoError(t, err)
	assert.Equal(t, "mock", source)
	require.Len(t, plan, 7)
}
