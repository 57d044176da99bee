package models

import "gorm.io/gorm"

// Clinic is the tenant: every patient, appointment and staff user belongs
// to exactly one.
type Clinic struct {
	gorm.Model
	Name  string `gorm:"not null"`
	Email string
	Phone string
}
