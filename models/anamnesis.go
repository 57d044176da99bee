package models

import "gorm.io/gorm"

// Anamnesis is the clinical-history questionnaire, one per patient.
type Anamnesis struct {
	gorm.Model
	PatientID        uint   `gorm:"uniqueIndex;not null"`
	Pathologies      string `gorm:"type:text"`
	Medication       string `gorm:"type:text"`
	Allergies        string `gorm:"type:text"`
	Intolerances     string `gorm:"type:text"`
	EatingHabits     string `gorm:"type:text"`
	PhysicalActivity string `gorm:"type:text"`
	Objective        string `gorm:"type:text"`
}
