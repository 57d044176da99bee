package services

import (
	"errors"

	"github.com/polmorales30/nexo.clinic-sub000/config"
	"github.com/polmorales30/nexo.clinic-sub000/models"
	"github.com/polmorales30/nexo.clinic-sub000/utils"

	"gorm.io/gorm"
)

// RegisterClinic creates a tenant and its first staff account in one go.
func RegisterClinic(clinicName, email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		clinic := models.Clinic{Name: clinicName, Email: email}
		if err := tx.Create(&clinic).Error; err != nil {
			return err
		}

		user := models.User{
			ClinicID: clinic.ID,
			Email:    email,
			Password: hashedPassword,
			FullName: fullName,
			Role:     "admin",
		}
		return tx.Create(&user).Error
	})
}

// AuthenticateUser checks credentials and returns a signed JWT.
func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.Email, user.ID, user.ClinicID)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
