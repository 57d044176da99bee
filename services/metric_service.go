package services

import (
	"strings"
	"time"

	"github.com/polmorales30/nexo.clinic-sub000/models"
	"github.com/polmorales30/nexo.clinic-sub000/utils"

	"gorm.io/gorm"
)

type MetricService struct {
	db *gorm.DB
}

func NewMetricService(db *gorm.DB) *MetricService {
	return &MetricService{db: db}
}

// Create records a check-in and keeps the patient's latest weight/height
// in sync for the calculator defaults.
func (s *MetricService) Create(m *models.Metric) error {
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	if err := s.db.Create(m).Error; err != nil {
		return err
	}

	updates := map[string]any{}
	if m.WeightKg > 0 {
		updates["weight_kg"] = m.WeightKg
	}
	if m.HeightCm > 0 {
		updates["height_cm"] = m.HeightCm
	}
	if len(updates) > 0 {
		_ = s.db.Model(&models.Patient{}).Where("id = ?", m.PatientID).Updates(updates).Error
	}
	return nil
}

func (s *MetricService) ListByPatient(patientID uint) ([]models.Metric, error) {
	var metrics []models.Metric
	err := s.db.
		Where("patient_id = ?", patientID).
		Order("date DESC").
		Find(&metrics).Error
	return metrics, err
}

// CalcResult is the response of GET /metrics/calculate/:patientId.
type CalcResult struct {
	PatientID uint    `json:"patientId"`
	BMR       float64 `json:"bmr"`
	TDEE      float64 `json:"tdee"`
	Formula   string  `json:"formula"`
}

// CalculateEnergy is pure: everything comes from the query string, nothing
// is read from or written to the database.
func CalculateEnergy(patientID uint, weightKg, heightCm, ageYears, activityMultiplier float64, gender, formula string) CalcResult {
	male := strings.EqualFold(gender, "male")
	if formula != utils.FormulaHarris {
		formula = utils.FormulaMifflin
	}
	if activityMultiplier <= 0 {
		activityMultiplier = 1.2
	}

	bmr := utils.BMR(formula, weightKg, heightCm, ageYears, male)
	return CalcResult{
		PatientID: patientID,
		BMR:       bmr,
		TDEE:      utils.TDEE(bmr, activityMultiplier),
		Formula:   formula,
	}
}

// GoalsFromCalc turns calculator inputs into daily targets: TDEE adjusted
// by the goal percentage, macros split at 4/4/9 kcal per gram.
func GoalsFromCalc(calc models.CalcData) models.NutrientGoals {
	male := strings.EqualFold(calc.Gender, "male")
	bmr := utils.BMR(calc.Formula, calc.WeightKg, calc.HeightCm, float64(calc.AgeYears), male)

	mult := calc.ActivityMultiplier
	if mult <= 0 {
		mult = 1.2
	}
	kcal := utils.TDEE(bmr, mult) * (1 + calc.GoalAdjustPct/100)

	return models.NutrientGoals{
		Kcal:    kcal,
		Protein: kcal * calc.ProteinPct / 100 / 4,
		Carbs:   kcal * calc.CarbsPct / 100 / 4,
		Fat:     kcal * calc.FatPct / 100 / 9,
	}
}
