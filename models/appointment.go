package models

import (
	"time"

	"gorm.io/gorm"
)

// Appointment statuses. PATCH /appointments/:id/status only accepts these.
const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	gorm.Model
	ClinicID  uint `gorm:"index;not null"`
	PatientID uint `gorm:"index;not null"`
	Title     string
	StartsAt  time.Time `gorm:"index;not null"`
	EndsAt    time.Time
	Status    string `gorm:"size:16;default:'scheduled'"`
	Notes     string `gorm:"type:text"`
}
