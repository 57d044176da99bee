package models

import (
	"time"

	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model
	ClinicID  uint   `gorm:"index;not null"`
	FullName  string `gorm:"not null"`
	Email     string
	Phone     string
	Birthday  time.Time
	Gender    string  `gorm:"size:16"` // "male" | "female"
	HeightCm  float64 // latest known, updated from check-ins
	WeightKg  float64
	PhotoURL  string
	Notes     string `gorm:"type:text"`
	PortalPIN string `gorm:"size:16"` // patient portal access code
}
