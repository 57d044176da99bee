package utils

import "errors"

// Formula names accepted by the metric calculator endpoint.
const (
	FormulaMifflin = "mifflin"
	FormulaHarris  = "harris"
)

// MifflinStJeor computes BMR in kcal/day.
// 10*kg + 6.25*cm - 5*years, +5 for males, -161 for females.
func MifflinStJeor(weightKg, heightCm, ageYears float64, male bool) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*ageYears
	if male {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr
}

// HarrisBenedict computes BMR in kcal/day (revised coefficients).
func HarrisBenedict(weightKg, heightCm, ageYears float64, male bool) float64 {
	if male {
		return 66.5 + 13.75*weightKg + 5.003*heightCm - 6.75*ageYears
	}
	return 655.1 + 9.563*weightKg + 1.850*heightCm - 4.676*ageYears
}

// BMR dispatches on the formula name; unknown names fall back to Mifflin.
func BMR(formula string, weightKg, heightCm, ageYears float64, male bool) float64 {
	if formula == FormulaHarris {
		return HarrisBenedict(weightKg, heightCm, ageYears, male)
	}
	return MifflinStJeor(weightKg, heightCm, ageYears, male)
}

// TDEE scales BMR by the activity multiplier (typically 1.2–1.9).
func TDEE(bmr, activityMultiplier float64) float64 {
	return bmr * activityMultiplier
}

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
