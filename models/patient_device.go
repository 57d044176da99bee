package models

import "time"

// PatientDevice is a mobile-app push endpoint registered for a patient.
type PatientDevice struct {
	ID          uint   `gorm:"primaryKey"`
	PatientID   uint   `gorm:"index"`
	Platform    string `gorm:"size:16"` // "android" | "ios"
	TokenHash   string `gorm:"size:64"`
	EndpointARN string `gorm:"size:256"`
	Enabled     bool   `gorm:"default:true"`
	UpdatedAt   time.Time
	CreatedAt   time.Time
}
