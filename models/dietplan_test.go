package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateItemsEmpty(t *testing.T) {
	totals := AggregateItems(nil)
	assert.Equal(t, MacroTotals{}, totals)

	totals = AggregateItems([]FoodInstance{})
	assert.Equal(t, MacroTotals{}, totals)
}

func TestAggregateItemsHundredGramsIsIdentity(t *testing.T) {
	item := FoodInstance{
		FoodItem:   FoodItem{ID: "huevo", Name: "Huevo", Kcal: 155, Protein: 13, Carbs: 1.1, Fat: 11},
		InstanceID: "a1",
		Grams:      100,
	}

	totals := AggregateItems([]FoodInstance{item})
	assert.InDelta(t, 155, totals.Kcal, 1e-9)
	assert.InDelta(t, 13, totals.Protein, 1e-9)
	assert.InDelta(t, 1.1, totals.Carbs, 1e-9)
	assert.InDelta(t, 11, totals.Fat, 1e-9)
}

func TestAggregateItemsMissingGramsDefaultsTo100(t *testing.T) {
	base := FoodInstance{
		FoodItem: FoodItem{ID: "arroz", Kcal: 130, Protein: 2.7, Carbs: 28, Fat: 0.3},
	}

	zero := base // grams never set
	negative := base
	negative.Grams = -50
	hundred := base
	hundred.Grams = 100

	want := AggregateItems([]FoodInstance{hundred})
	assert.Equal(t, want, AggregateItems([]FoodInstance{zero}))
	assert.Equal(t, want, AggregateItems([]FoodInstance{negative}))
}

func TestAggregateItemsLinearInGrams(t *testing.T) {
	item := FoodInstance{
		FoodItem: FoodItem{ID: "salmon", Kcal: 208, Protein: 20, Fat: 13},
		Grams:    80,
	}
	base := AggregateItems([]FoodInstance{item})

	for _, k := range []float64{0.5, 2, 3.25} {
		scaled := item
		scaled.Grams = item.Grams * k
		got := AggregateItems([]FoodInstance{scaled})
		assert.InDelta(t, base.Kcal*k, got.Kcal, 1e-9)
		assert.InDelta(t, base.Protein*k, got.Protein, 1e-9)
		assert.InDelta(t, base.Fat*k, got.Fat, 1e-9)
	}
}

func TestDayTotalsComposeFromMeals(t *testing.T) {
	breakfast := Meal{Name: "desayuno", Items: []FoodInstance{
		{FoodItem: FoodItem{Kcal: 389, Protein: 16.9, Carbs: 66, Fat: 6.9}, Grams: 50},
	}}
	dinner := Meal{Name: "cena", Items: []FoodInstance{
		{FoodItem: FoodItem{Kcal: 86, Protein: 17.8, Carbs: 0, Fat: 1.3}, Grams: 200},
	}}

	day := DayPlan{"desayuno": breakfast, "cena": dinner}
	got := day.Totals()

	want := breakfast.Totals()
	want.Kcal += dinner.Totals().Kcal
	want.Protein += dinner.Totals().Protein
	want.Carbs += dinner.Totals().Carbs
	want.Fat += dinner.Totals().Fat
	assert.InDelta(t, want.Kcal, got.Kcal, 1e-9)
	assert.InDelta(t, want.Protein, got.Protein, 1e-9)
	assert.InDelta(t, want.Carbs, got.Carbs, 1e-9)
	assert.InDelta(t, want.Fat, got.Fat, 1e-9)
}

func TestNewWeeklyDietPlanHasSevenDays(t *testing.T) {
	plan := NewWeeklyDietPlan()
	require.Len(t, plan, 7)
	for _, day := range WeekDays {
		require.Contains(t, plan, day)
		for _, slot := range DefaultMealSlots {
			assert.Contains(t, plan[day], slot)
		}
	}
}

func TestNormalizeRestoresSevenDayInvariant(t *testing.T) {
	plan := WeeklyDietPlan{
		"lunes":   DayPlan{"desayuno": {Name: "desayuno"}},
		"festivo": DayPlan{}, // unknown key, dropped
	}

	got := plan.Normalize()
	require.Len(t, got, 7)
	assert.NotContains(t, got, "festivo")
	assert.Contains(t, got["lunes"], "desayuno")
	assert.Empty(t, got["domingo"])
}

func TestDietDocumentRoundTrip(t *testing.T) {
	plan := NewWeeklyDietPlan()
	plan["martes"]["comida"] = Meal{
		Name:    "comida",
		SubName: "Pollo con arroz",
		Items: []FoodInstance{
			{
				FoodItem:   FoodItem{ID: "pechuga-pollo", Name: "Pechuga de pollo", Kcal: 165, Protein: 31, Fat: 3.6},
				InstanceID: "k3xP91ab",
				Grams:      150,
				Dish:       "Plato principal",
			},
			{
				FoodItem:   FoodItem{ID: "arroz-blanco", Name: "Arroz blanco cocido", Kcal: 130, Protein: 2.7, Carbs: 28, Fat: 0.3},
				InstanceID: "Zq0mVt5c",
				Grams:      180,
			},
		},
	}
	// a user-added extra meal slot on one day only
	plan["viernes"]["merienda-1"] = Meal{Name: "Merienda", Items: []FoodInstance{}}

	doc := DietDocument{
		WeeklyDiet: plan,
		UserGoals:  NutrientGoals{Kcal: 2200, Protein: 140, Carbs: 230, Fat: 70},
		CalcData: CalcData{
			AgeYears: 30, Gender: "male", WeightKg: 75, HeightCm: 175,
			ActivityMultiplier: 1.55, GoalAdjustPct: -10,
			ProteinPct: 30, CarbsPct: 45, FatPct: 25, Formula: "mifflin",
		},
	}

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var got DietDocument
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, doc, got)
}
