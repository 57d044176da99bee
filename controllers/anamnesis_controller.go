package controllers

import (
	"errors"
	"net/http"

	"github.com/polmorales30/nexo.clinic-sub000/config"
	"github.com/polmorales30/nexo.clinic-sub000/models"
	"github.com/polmorales30/nexo.clinic-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnamnesisInput struct {
	PatientID        uint   `json:"patient_id" binding:"required"`
	Pathologies      string `json:"pathologies"`
	Medication       string `json:"medication"`
	Allergies        string `json:"allergies"`
	Intolerances     string `json:"intolerances"`
	EatingHabits     string `json:"eating_habits"`
	PhysicalActivity string `json:"physical_activity"`
	Objective        string `json:"objective"`
}

func UpsertAnamnesis(c *gin.Context) {
	var input AnamnesisInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !patientBelongsToTenant(c, input.PatientID) {
		return
	}

	a := models.Anamnesis{
		PatientID:        input.PatientID,
		Pathologies:      input.Pathologies,
		Medication:       input.Medication,
		Allergies:        input.Allergies,
		Intolerances:     input.Intolerances,
		EatingHabits:     input.EatingHabits,
		PhysicalActivity: input.PhysicalActivity,
		Objective:        input.Objective,
	}
	if err := services.NewAnamnesisService(config.DB).Upsert(&a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

func GetAnamnesisByPatient(c *gin.Context) {
	patientID, ok := idParam(c, "patientId")
	if !ok || !patientBelongsToTenant(c, patientID) {
		return
	}

	a, err := services.NewAnamnesisService(config.DB).GetByPatient(patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no anamnesis for patient"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}
