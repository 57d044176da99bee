package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/polmorales30/nexo.clinic-sub000/config"
	"github.com/polmorales30/nexo.clinic-sub000/models"
	"github.com/polmorales30/nexo.clinic-sub000/services"
	"github.com/polmorales30/nexo.clinic-sub000/utils"

	"github.com/gin-gonic/gin"
)

type MetricInput struct {
	PatientID  uint    `json:"patient_id" binding:"required"`
	Date       string  `json:"date"` // YYYY-MM-DD, defaults to today
	WeightKg   float64 `json:"weight_kg"`
	HeightCm   float64 `json:"height_cm"`
	BodyFatPct float64 `json:"body_fat_pct"`
	WaistCm    float64 `json:"waist_cm"`
	HipCm      float64 `json:"hip_cm"`
	Notes      string  `json:"notes"`
}

func CreateMetric(c *gin.Context) {
	var input MetricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !patientBelongsToTenant(c, input.PatientID) {
		return
	}

	m := models.Metric{
		PatientID:  input.PatientID,
		WeightKg:   input.WeightKg,
		HeightCm:   input.HeightCm,
		BodyFatPct: input.BodyFatPct,
		WaistCm:    input.WaistCm,
		HipCm:      input.HipCm,
		Notes:      input.Notes,
	}
	if input.Date != "" {
		if date, err := time.Parse("2006-01-02", input.Date); err == nil {
			m.Date = date
		}
	}

	if err := services.NewMetricService(config.DB).Create(&m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"metric": m}
	if bmi, err := utils.CalculateBMI(m.HeightCm, m.WeightKg); err == nil {
		resp["bmi"] = bmi
		resp["bmi_category"] = utils.BMICategory(bmi)
	}
	c.JSON(http.StatusCreated, resp)
}

func ListMetricsByPatient(c *gin.Context) {
	patientID, ok := idParam(c, "patientId")
	if !ok || !patientBelongsToTenant(c, patientID) {
		return
	}

	metrics, err := services.NewMetricService(config.DB).ListByPatient(patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// GET /metrics/calculate/:patientId?weightKg&heightCm&ageYears&gender&activityMultiplier&formula
// Pure arithmetic over the query string; nothing is persisted. Passing the
// macro split (goalAdjustPct, proteinPct, carbsPct, fatPct) additionally
// returns the derived daily goals.
func CalculateMetrics(c *gin.Context) {
	patientID, ok := idParam(c, "patientId")
	if !ok || !patientBelongsToTenant(c, patientID) {
		return
	}

	weightKg, err1 := strconv.ParseFloat(c.Query("weightKg"), 64)
	heightCm, err2 := strconv.ParseFloat(c.Query("heightCm"), 64)
	ageYears, err3 := strconv.ParseFloat(c.Query("ageYears"), 64)
	if err1 != nil || err2 != nil || err3 != nil || weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weightKg, heightCm and ageYears are required positive numbers"})
		return
	}

	activity, _ := strconv.ParseFloat(c.Query("activityMultiplier"), 64)

	result := services.CalculateEnergy(
		patientID,
		weightKg,
		heightCm,
		ageYears,
		activity,
		c.Query("gender"),
		c.Query("formula"),
	)

	resp := gin.H{
		"patientId": result.PatientID,
		"bmr":       result.BMR,
		"tdee":      result.TDEE,
		"formula":   result.Formula,
	}

	proteinPct, _ := strconv.ParseFloat(c.Query("proteinPct"), 64)
	carbsPct, _ := strconv.ParseFloat(c.Query("carbsPct"), 64)
	fatPct, _ := strconv.ParseFloat(c.Query("fatPct"), 64)
	if proteinPct > 0 && carbsPct > 0 && fatPct > 0 {
		adjustPct, _ := strconv.ParseFloat(c.Query("goalAdjustPct"), 64)
		resp["userGoals"] = services.GoalsFromCalc(models.CalcData{
			AgeYears:           int(ageYears),
			Gender:             c.Query("gender"),
			WeightKg:           weightKg,
			HeightCm:           heightCm,
			ActivityMultiplier: activity,
			GoalAdjustPct:      adjustPct,
			ProteinPct:         proteinPct,
			CarbsPct:           carbsPct,
			FatPct:             fatPct,
			Formula:            result.Formula,
		})
	}

	c.JSON(http.StatusOK, resp)
}
