package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/polmorales30/nexo.clinic-sub000/config"
	"github.com/polmorales30/nexo.clinic-sub000/models"
	"github.com/polmorales30/nexo.clinic-sub000/services"
	"github.com/polmorales30/nexo.clinic-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PatientInput struct {
	FullName string  `json:"full_name" binding:"required"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Birthday string  `json:"birthday"` // YYYY-MM-DD
	Gender   string  `json:"gender"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Notes    string  `json:"notes"`
}

func (in PatientInput) toModel(clinicID uint) models.Patient {
	p := models.Patient{
		ClinicID: clinicID,
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Gender:   in.Gender,
		HeightCm: in.HeightCm,
		WeightKg: in.WeightKg,
		Notes:    in.Notes,
	}
	if in.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", in.Birthday); err == nil {
			p.Birthday = birthday
		}
	}
	return p
}

func CreatePatient(c *gin.Context) {
	var input PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := input.toModel(c.GetUint("tenantID"))
	if err := services.NewPatientService(config.DB).Create(&p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func ListPatientsByTenant(c *gin.Context) {
	tenantID, ok := tenantParam(c)
	if !ok {
		return
	}

	patients, err := services.NewPatientService(config.DB).ListByClinic(tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func GetPatient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	p, err := services.NewPatientService(config.DB).Get(c.GetUint("tenantID"), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func UpdatePatient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := input.toModel(c.GetUint("tenantID"))
	p.ID = id
	if err := services.NewPatientService(config.DB).Update(c.GetUint("tenantID"), &p); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "patient updated"})
}

func DeletePatient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := services.NewPatientService(config.DB).Delete(c.GetUint("tenantID"), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /patients/:id/photo  { "image_base64": "data:…" }
func UploadPatientPhoto(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	svc := services.NewPatientService(config.DB)
	if _, err := svc.Get(c.GetUint("tenantID"), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, strconv.FormatUint(uint64(id), 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}
	if err := svc.SetPhoto(c.GetUint("tenantID"), id, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// idParam parses a numeric path param, replying 400 on garbage.
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}

// tenantParam parses :tenantId and rejects requests for someone else's
// clinic.
func tenantParam(c *gin.Context) (uint, bool) {
	id, ok := idParam(c, "tenantId")
	if !ok {
		return 0, false
	}
	if id != c.GetUint("tenantID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "tenant mismatch"})
		return 0, false
	}
	return id, true
}
