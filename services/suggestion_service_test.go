package services

import (
	"testing"

	"github.com/polmorales30/nexo.clinic-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSuggestionService() *SuggestionService {
	return NewSuggestionService(NewFoodCatalog())
}

func TestClassifySlot(t *testing.T) {
	assert.Equal(t, classBreakfast, classifySlot("desayuno"))
	assert.Equal(t, classBreakfast, classifySlot("Desayuno tardío"))
	assert.Equal(t, classBreakfast, classifySlot("BREAKFAST"))
	assert.Equal(t, classLunch, classifySlot("comida"))
	assert.Equal(t, classLunch, classifySlot("Almuerzo"))
	assert.Equal(t, classDinner, classifySlot("cena"))
	assert.Equal(t, classDinner, classifySlot("Dinner"))
	assert.Equal(t, classOther, classifySlot("merienda"))
	assert.Equal(t, classOther, classifySlot(""))
}

// The scaled meal must land within 1% of its even share of the daily goal.
// The template pick is random, so hammer it a few times per slot.
func TestSuggestHitsCalorieShare(t *testing.T) {
	s := newTestSuggestionService()

	const dailyKcal = 2200.0
	const mealCount = 3
	target := dailyKcal / mealCount

	for _, slot := range []string{"desayuno", "comida", "cena", "merienda"} {
		for i := 0; i < 25; i++ {
			meal := s.Suggest(slot, dailyKcal, mealCount)
			require.NotEmpty(t, meal.Items, "slot %s", slot)

			got := meal.Totals().Kcal
			assert.InDelta(t, target, got, target*0.01,
				"slot %s iteration %d (dish %q)", slot, i, meal.SubName)
		}
	}
}

func TestSuggestDayTotalMatchesGoal(t *testing.T) {
	s := newTestSuggestionService()

	const dailyKcal = 2400.0
	slots := []string{"desayuno", "comida", "cena"}

	var total float64
	for _, slot := range slots {
		total += s.Suggest(slot, dailyKcal, len(slots)).Totals().Kcal
	}
	assert.InDelta(t, dailyKcal, total, dailyKcal*0.01)
}

func TestSuggestGramsNeverBelowOne(t *testing.T) {
	s := newTestSuggestionService()

	// Absurdly small goal forces rounding toward zero; the floor is 1 g.
	meal := s.Suggest("cena", 9, 3)
	require.NotEmpty(t, meal.Items)
	for _, it := range meal.Items {
		assert.GreaterOrEqual(t, it.Grams, 1.0)
		assert.Equal(t, it.Grams, float64(int(it.Grams)), "grams are whole numbers")
	}
}

func TestSuggestZeroGoalLeavesTemplateUnscaled(t *testing.T) {
	s := newTestSuggestionService()

	meal := s.Suggest("comida", 0, 3)
	require.NotEmpty(t, meal.Items)
	// baseline template amounts are all >= 10 g; no scaling happened
	for _, it := range meal.Items {
		assert.GreaterOrEqual(t, it.Grams, 10.0)
	}
}

func TestSuggestMealShape(t *testing.T) {
	s := newTestSuggestionService()

	meal := s.Suggest("desayuno", 2000, 3)
	assert.Equal(t, "desayuno", meal.Name)
	assert.NotEmpty(t, meal.SubName)

	seen := map[string]bool{}
	for _, it := range meal.Items {
		assert.NotEmpty(t, it.InstanceID)
		assert.False(t, seen[it.InstanceID], "instance ids are unique")
		seen[it.InstanceID] = true
	}
}

func TestGenerateWeeklyMenuCoversAllDays(t *testing.T) {
	s := newTestSuggestionService()

	plan := s.GenerateWeeklyMenu(2000)
	require.Len(t, plan, 7)
	for _, day := range models.WeekDays {
		require.Contains(t, plan, day)
		require.Len(t, plan[day], len(models.DefaultMealSlots))

		total := plan[day].Totals().Kcal
		assert.InDelta(t, 2000, total, 2000*0.01, "day %s", day)
	}
}
