package controllers

import (
	"net/http"

	"github.com/polmorales30/nexo.clinic-sub000/config"
	"github.com/polmorales30/nexo.clinic-sub000/models"
	"github.com/polmorales30/nexo.clinic-sub000/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Push *services.PushService
}

func NewDeviceController(ps *services.PushService) *DeviceController {
	return &DeviceController{Push: ps}
}

// POST /devices/register
func (dc *DeviceController) Register(c *gin.Context) {
	if dc.Push == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push notifications not configured"})
		return
	}

	var req services.RegisterDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !patientBelongsToTenant(c, req.PatientID) {
		return
	}

	dev, err := dc.Push.RegisterDevice(req.PatientID, req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"endpoint_arn": dev.EndpointARN})
}

// POST /devices/toggle  { "patient_id": 1, "enabled": false }
func (dc *DeviceController) Toggle(c *gin.Context) {
	var req struct {
		PatientID uint `json:"patient_id" binding:"required"`
		Enabled   bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if !patientBelongsToTenant(c, req.PatientID) {
		return
	}

	if err := config.DB.Model(&models.PatientDevice{}).
		Where("patient_id = ?", req.PatientID).
		Update("enabled", req.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": req.Enabled,
	})
}
