package services

import (
	"errors"

	"healthcoach/config"
	"healthcoach/models"
	"healthcoach/utils"

	"gorm.io/gorm"
)

// RegisterUser creates a new account with a bcrypt-hashed password. New users
// start with target status Ongoing.
func RegisterUser(fullName, email, password string) error {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return errors.New("email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:        email,
		Password:     hashed,
		FullName:     fullName,
		TargetStatus: models.TargetOngoing,
	}
	return config.DB.Create(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func FindAdminByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	result := config.DB.First(&admin, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("admin not found")
	}
	return &admin, nil
}

// TargetMotivation is the dashboard line keyed off the admin-controlled
// target status.
func TargetMotivation(targetStatus string) string {
	if targetStatus == models.TargetCompleted {
		return "Amazing job completing your target! Keep up the great work and maintain your healthy habits."
	}
	return "You are on your journey. Stay consistent today - even a small step counts."
}
