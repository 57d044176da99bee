package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/polmorales30/nexo.clinic-sub000/config"
	"github.com/polmorales30/nexo.clinic-sub000/models"
	"github.com/polmorales30/nexo.clinic-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AppointmentInput struct {
	PatientID uint      `json:"patient_id" binding:"required"`
	Title     string    `json:"title"`
	StartsAt  time.Time `json:"starts_at" binding:"required"`
	EndsAt    time.Time `json:"ends_at"`
	Notes     string    `json:"notes"`
}

func CreateAppointment(c *gin.Context) {
	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenantID := c.GetUint("tenantID")
	// the patient must belong to this clinic
	if _, err := services.NewPatientService(config.DB).Get(tenantID, input.PatientID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}

	appt := models.Appointment{
		ClinicID:  tenantID,
		PatientID: input.PatientID,
		Title:     input.Title,
		StartsAt:  input.StartsAt,
		EndsAt:    input.EndsAt,
		Notes:     input.Notes,
	}
	if err := services.NewAppointmentService(config.DB).Create(&appt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GET /appointments/tenant/:tenantId?from=YYYY-MM-DD&to=YYYY-MM-DD
func ListAppointmentsByTenant(c *gin.Context) {
	tenantID, ok := tenantParam(c)
	if !ok {
		return
	}

	var from, to *time.Time
	if f, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		if t, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
			from, to = &f, &t
		}
	}

	appts, err := services.NewAppointmentService(config.DB).ListByClinic(tenantID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

func UpdateAppointment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt := models.Appointment{
		Title:    input.Title,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
		Notes:    input.Notes,
	}
	appt.ID = id
	updated, err := services.NewAppointmentService(config.DB).Update(c.GetUint("tenantID"), &appt)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PATCH /appointments/:id/status  { "status": "confirmed" }
func UpdateAppointmentStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := services.NewAppointmentService(config.DB).UpdateStatus(c.GetUint("tenantID"), id, req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

func DeleteAppointment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := services.NewAppointmentService(config.DB).Delete(c.GetUint("tenantID"), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
