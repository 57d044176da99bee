package services

import (
	"testing"

	"github.com/polmorales30/nexo.clinic-sub000/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateEnergyIsPure(t *testing.T) {
	res := CalculateEnergy(42, 75, 175, 30, 1.55, "male", "mifflin")

	assert.EqualValues(t, 42, res.PatientID)
	assert.InDelta(t, 1698.75, res.BMR, 1e-9)
	assert.InDelta(t, 1698.75*1.55, res.TDEE, 1e-9)
	assert.Equal(t, "mifflin", res.Formula)
}

func TestGoalsFromCalc(t *testing.T) {
	goals := GoalsFromCalc(models.CalcData{
		AgeYears:           30,
		Gender:             "male",
		WeightKg:           75,
		HeightCm:           175,
		ActivityMultiplier: 1.55,
		GoalAdjustPct:      -10, // a cut
		ProteinPct:         30,
		CarbsPct:           40,
		FatPct:             30,
		Formula:            "mifflin",
	})

	// TDEE 1698.75*1.55 = 2633.0625, minus 10%
	kcal := 2633.0625 * 0.9
	assert.InDelta(t, kcal, goals.Kcal, 1e-9)

	// macro split at 4/4/9 kcal per gram
	assert.InDelta(t, kcal*0.30/4, goals.Protein, 1e-9)
	assert.InDelta(t, kcal*0.40/4, goals.Carbs, 1e-9)
	assert.InDelta(t, kcal*0.30/9, goals.Fat, 1e-9)
}

func TestGoalsFromCalcDefaultsActivity(t *testing.T) {
	goals := GoalsFromCalc(models.CalcData{
		AgeYears:   30,
		Gender:     "female",
		WeightKg:   60,
		HeightCm:   165,
		ProteinPct: 25,
		CarbsPct:   50,
		FatPct:     25,
		Formula:    "mifflin",
	})

	// 10*60 + 6.25*165 - 5*30 - 161 = 1320.25, sedentary 1.2, no adjust
	assert.InDelta(t, 1320.25*1.2, goals.Kcal, 1e-9)
}
