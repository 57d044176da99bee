package services

import (
	"errors"

	"github.com/polmorales30/nexo.clinic-sub000/models"

	"gorm.io/gorm"
)

type AnamnesisService struct {
	db *gorm.DB
}

func NewAnamnesisService(db *gorm.DB) *AnamnesisService {
	return &AnamnesisService{db: db}
}

// Upsert keeps one anamnesis per patient; a second save overwrites.
func (s *AnamnesisService) Upsert(a *models.Anamnesis) error {
	var existing models.Anamnesis
	err := s.db.Where("patient_id = ?", a.PatientID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.db.Create(a).Error
		}
		return err
	}

	existing.Pathologies = a.Pathologies
	existing.Medication = a.Medication
	existing.Allergies = a.Allergies
	existing.Intolerances = a.Intolerances
	existing.EatingHabits = a.EatingHabits
	existing.PhysicalActivity = a.PhysicalActivity
	existing.Objective = a.Objective
	*a = existing
	return s.db.Save(&existing).Error
}

func (s *AnamnesisService) GetByPatient(patientID uint) (*models.Anamnesis, error) {
	var a models.Anamnesis
	err := s.db.Where("patient_id = ?", patientID).First(&a).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &a, nil
}
