package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/polmorales30/nexo.clinic-sub000/logger"
	"github.com/polmorales30/nexo.clinic-sub000/models"
	"github.com/polmorales30/nexo.clinic-sub000/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var validStatuses = map[string]bool{
	models.AppointmentScheduled: true,
	models.AppointmentConfirmed: true,
	models.AppointmentCompleted: true,
	models.AppointmentCancelled: true,
}

type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

func (s *AppointmentService) Create(a *models.Appointment) error {
	if a.Status == "" {
		a.Status = models.AppointmentScheduled
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("invalid status %q", a.Status)
	}
	if a.EndsAt.IsZero() {
		a.EndsAt = a.StartsAt.Add(30 * time.Minute)
	}
	if err := s.db.Create(a).Error; err != nil {
		return err
	}

	s.notify(a, "Nueva cita el "+a.StartsAt.Format("02/01 15:04"))
	return nil
}

func (s *AppointmentService) ListByClinic(clinicID uint, from, to *time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	q := s.db.
		Where("clinic_id = ?", clinicID).
		Order("starts_at ASC")
	if from != nil && to != nil {
		q = q.Where("starts_at >= ? AND starts_at < ?", *from, *to)
	}
	err := q.Find(&appts).Error
	return appts, err
}

func (s *AppointmentService) Update(clinicID uint, a *models.Appointment) (*models.Appointment, error) {
	var existing models.Appointment
	if err := s.db.
		Where("id = ? AND clinic_id = ?", a.ID, clinicID).
		First(&existing).Error; err != nil {
		return nil, err
	}

	existing.Title = a.Title
	existing.StartsAt = a.StartsAt
	existing.EndsAt = a.EndsAt
	existing.Notes = a.Notes
	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}

	// Drag-and-drop reschedules land here; tell the patient.
	s.notify(&existing, "Tu cita se ha movido al "+existing.StartsAt.Format("02/01 15:04"))
	return &existing, nil
}

func (s *AppointmentService) UpdateStatus(clinicID, id uint, status string) (*models.Appointment, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	var appt models.Appointment
	if err := s.db.
		Where("id = ? AND clinic_id = ?", id, clinicID).
		First(&appt).Error; err != nil {
		return nil, err
	}

	appt.Status = status
	if err := s.db.Save(&appt).Error; err != nil {
		return nil, err
	}

	s.notify(&appt, "Tu cita del "+appt.StartsAt.Format("02/01 15:04")+" está "+status)
	s.emailPatient(&appt)
	return &appt, nil
}

func (s *AppointmentService) Delete(clinicID, id uint) error {
	result := s.db.
		Where("id = ? AND clinic_id = ?", id, clinicID).
		Delete(&models.Appointment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("appointment not found")
	}
	return nil
}

func (s *AppointmentService) notify(a *models.Appointment, message string) {
	EmitNotification(a.ClinicID, a.PatientID, "appointment", message, map[string]any{
		"kind":        "appointment.updated",
		"appointment": a,
	})
}

// emailPatient is best-effort: mail failures are logged, never surfaced.
func (s *AppointmentService) emailPatient(a *models.Appointment) {
	var patient models.Patient
	if err := s.db.First(&patient, a.PatientID).Error; err != nil || patient.Email == "" {
		return
	}
	var clinic models.Clinic
	s.db.First(&clinic, a.ClinicID)

	if err := utils.SendAppointmentEmail(patient.Email, patient.FullName, clinic.Name, a.StartsAt, a.Status); err != nil {
		logger.Warn("appointment email failed",
			zap.Uint("appointmentID", a.ID), zap.Error(err))
	}
}
