package services

import (
	"testing"

	"healthcoach/config"
	"healthcoach/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global connection at a fresh in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.BMIRecord{},
		&models.DailyTracking{},
		&models.AdminMessage{},
		&models.MotivationalQuote{},
		&models.LoginLog{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	config.DB = db
	config.Redis = nil
	return db
}

func createTestUser(t *testing.T, email, name string) *models.User {
	t.Helper()
	user := models.User{
		Email:        email,
		Password:     "x",
		FullName:     name,
		TargetStatus: models.TargetOngoing,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}
