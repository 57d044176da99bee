package models

import "time"

// Notification is a message shown in the patient portal inbox.
type Notification struct {
	ID        uint   `gorm:"primaryKey"`
	PatientID uint   `gorm:"index"`
	Type      string `gorm:"size:32"` // "appointment" | "diet" | "info"
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}
