package models

import "gorm.io/gorm"

// DietRecord holds one serialized DietDocument per patient. Version is the
// optimistic-concurrency token: every save bumps it, and a save carrying a
// stale version is rejected instead of silently overwriting.
type DietRecord struct {
	gorm.Model
	PatientID uint   `gorm:"uniqueIndex;not null"`
	Document  []byte `gorm:"type:jsonb;not null"`
	Version   uint   `gorm:"not null;default:0"`
}
