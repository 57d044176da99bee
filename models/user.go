package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a clinic staff account (nutritionist/admin) on the dashboard.
type User struct {
	gorm.Model
	ClinicID      uint   `gorm:"index;not null"`
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	FullName      string
	Role          string `gorm:"size:32;default:'nutritionist'"`
	Disabled      bool
	ResetToken    string
	ResetTokenExp time.Time
}
