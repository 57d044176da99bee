package models

import (
	"time"

	"gorm.io/gorm"
)

// Metric is one patient check-in (weight/measurements at a visit).
type Metric struct {
	gorm.Model
	PatientID  uint      `gorm:"index;not null"`
	Date       time.Time `gorm:"index;not null"`
	WeightKg   float64
	HeightCm   float64
	BodyFatPct float64
	WaistCm    float64
	HipCm      float64
	Notes      string `gorm:"type:text"`
}
