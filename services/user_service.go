package services

import (
	"errors"

	"github.com/polmorales30/nexo.clinic-sub000/config"
	"github.com/polmorales30/nexo.clinic-sub000/models"
)

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	var clinic models.Clinic
	config.DB.First(&clinic, user.ClinicID)

	return map[string]interface{}{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"role":      user.Role,
		"clinic_id": user.ClinicID,
		"clinic":    clinic.Name,
	}, nil
}

func UpdateUserProfile(email, fullName, clinicName string) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if fullName != "" {
		user.FullName = fullName
	}
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	if clinicName != "" {
		if err := config.DB.Model(&models.Clinic{}).
			Where("id = ?", user.ClinicID).
			Update("name", clinicName).Error; err != nil {
			return err
		}
	}
	return nil
}
