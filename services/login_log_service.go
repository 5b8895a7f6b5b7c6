package services

import (
	"time"

	"healthcoach/config"
	"healthcoach/models"
)

// RecordLogin appends one audit row per successful login. userID is nil for
// admin logins.
func RecordLogin(userID *uint, isAdmin bool) error {
	entry := models.LoginLog{
		UserID:    userID,
		IsAdmin:   isAdmin,
		LoginTime: time.Now().UTC(),
	}
	return config.DB.Create(&entry).Error
}
