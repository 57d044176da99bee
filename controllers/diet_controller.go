package controllers

import (
	"errors"
	"net/http"

	"github.com/polmorales30/nexo.clinic-sub000/config"
	"github.com/polmorales30/nexo.clinic-sub000/models"
	"github.com/polmorales30/nexo.clinic-sub000/services"

	"github.com/gin-gonic/gin"
)

// POST /diets
// Body carries the version the client loaded; a stale version is a 409.
func SaveDiet(c *gin.Context) {
	var body struct {
		PatientID uint                `json:"patient_id" binding:"required"`
		Version   uint                `json:"version"`
		Document  models.DietDocument `json:"document"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !patientBelongsToTenant(c, body.PatientID) {
		return
	}

	version, err := services.NewDietService(config.DB).Save(body.PatientID, &body.Document, body.Version)
	if err != nil {
		if errors.Is(err, services.ErrVersionConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "version": version})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.EmitNotification(c.GetUint("tenantID"), body.PatientID,
		"diet", "Tu plan semanal ha sido actualizado", map[string]any{
			"type":      "diet_updated",
			"patientId": body.PatientID,
			"version":   version,
		})

	c.JSON(http.StatusOK, gin.H{"version": version})
}

// GET /diets/patient/:patientId
func GetDietByPatient(c *gin.Context) {
	patientID, ok := idParam(c, "patientId")
	if !ok || !patientBelongsToTenant(c, patientID) {
		return
	}

	doc, version, err := services.NewDietService(config.DB).Get(patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"weeklyDiet": doc.WeeklyDiet,
		"userGoals":  doc.UserGoals,
		"calcData":   doc.CalcData,
		"version":    version,
	})
}

// GET /diets/patient/:patientId/summary — per-day macro totals next to the
// stored goals, for the dashboard header.
func GetDietSummary(c *gin.Context) {
	patientID, ok := idParam(c, "patientId")
	if !ok || !patientBelongsToTenant(c, patientID) {
		return
	}

	doc, _, err := services.NewDietService(config.DB).Get(patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":  doc.WeeklyDiet.DayTotals(),
		"goals": doc.UserGoals,
	})
}

// POST /diets/generate-ai/:patientId  { "targetKcal": 2200 }
func GenerateAIDiet(c *gin.Context) {
	patientID, ok := idParam(c, "patientId")
	if !ok || !patientBelongsToTenant(c, patientID) {
		return
	}

	var body struct {
		TargetKcal float64 `json:"targetKcal"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	target := body.TargetKcal
	if target <= 0 {
		// fall back to the patient's stored goal, then a sane default
		if doc, _, err := services.NewDietService(config.DB).Get(patientID); err == nil && doc.UserGoals.Kcal > 0 {
			target = doc.UserGoals.Kcal
		} else {
			target = 2000
		}
	}

	ai := services.NewAIService(services.NewSuggestionService(services.NewFoodCatalog()))
	plan, source, err := ai.GenerateMenu(target)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source":     source,
		"targetKcal": target,
		"weeklyDiet": plan,
	})
}

// patientBelongsToTenant guards cross-tenant access to patient-scoped
// resources. Writes the error response itself.
func patientBelongsToTenant(c *gin.Context, patientID uint) bool {
	if _, err := services.NewPatientService(config.DB).Get(c.GetUint("tenantID"), patientID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return false
	}
	return true
}
