package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMifflinStJeor(t *testing.T) {
	// 10*75 + 6.25*175 - 5*30 + 5
	assert.InDelta(t, 1698.75, MifflinStJeor(75, 175, 30, true), 1e-9)
	// female constant is -161
	assert.InDelta(t, 1532.75, MifflinStJeor(75, 175, 30, false), 1e-9)
}

func TestHarrisBenedict(t *testing.T) {
	// 66.5 + 13.75*75 + 5.003*175 - 6.75*30
	assert.InDelta(t, 1770.775, HarrisBenedict(75, 175, 30, true), 1e-9)
	// 655.1 + 9.563*75 + 1.850*175 - 4.676*30
	assert.InDelta(t, 1559.295, HarrisBenedict(75, 175, 30, false), 1e-9)
}

func TestTDEE(t *testing.T) {
	assert.InDelta(t, 2635, TDEE(1700, 1.55), 1e-9)
}

func TestBMRDispatch(t *testing.T) {
	assert.Equal(t, MifflinStJeor(75, 175, 30, true), BMR(FormulaMifflin, 75, 175, 30, true))
	assert.Equal(t, HarrisBenedict(75, 175, 30, true), BMR(FormulaHarris, 75, 175, 30, true))
	// unknown formula falls back to Mifflin
	assert.Equal(t, MifflinStJeor(75, 175, 30, true), BMR("katch", 75, 175, 30, true))
}

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 75)
	require.NoError(t, err)
	assert.InDelta(t, 24.49, bmi, 0.01)
	assert.Equal(t, "Normal weight", BMICategory(bmi))

	_, err = CalculateBMI(0, 75)
	assert.Error(t, err)
	_, err = CalculateBMI(175, 900)
	assert.Error(t, err)
}
