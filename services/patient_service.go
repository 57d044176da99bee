package services

import (
	"github.com/polmorales30/nexo.clinic-sub000/models"
	"github.com/polmorales30/nexo.clinic-sub000/utils"

	"gorm.io/gorm"
)

type PatientService struct {
	db *gorm.DB
}

func NewPatientService(db *gorm.DB) *PatientService {
	return &PatientService{db: db}
}

func (s *PatientService) Create(p *models.Patient) error {
	if p.PortalPIN == "" {
		p.PortalPIN = utils.GenerateRandomToken(6)
	}
	return s.db.Create(p).Error
}

func (s *PatientService) ListByClinic(clinicID uint) ([]models.Patient, error) {
	var patients []models.Patient
	err := s.db.
		Where("clinic_id = ?", clinicID).
		Order("full_name ASC").
		Find(&patients).Error
	return patients, err
}

func (s *PatientService) Get(clinicID, id uint) (*models.Patient, error) {
	var p models.Patient
	err := s.db.
		Where("id = ? AND clinic_id = ?", id, clinicID).
		First(&p).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &p, nil
}

func (s *PatientService) Update(clinicID uint, p *models.Patient) error {
	var existing models.Patient
	if err := s.db.
		Where("id = ? AND clinic_id = ?", p.ID, clinicID).
		First(&existing).Error; err != nil {
		return err
	}

	existing.FullName = p.FullName
	existing.Email = p.Email
	existing.Phone = p.Phone
	existing.Birthday = p.Birthday
	existing.Gender = p.Gender
	existing.HeightCm = p.HeightCm
	existing.WeightKg = p.WeightKg
	existing.Notes = p.Notes
	return s.db.Save(&existing).Error
}

func (s *PatientService) Delete(clinicID, id uint) error {
	return s.db.
		Where("id = ? AND clinic_id = ?", id, clinicID).
		Delete(&models.Patient{}).Error
}

func (s *PatientService) SetPhoto(clinicID, id uint, url string) error {
	return s.db.Model(&models.Patient{}).
		Where("id = ? AND clinic_id = ?", id, clinicID).
		Update("photo_url", url).Error
}
