package services

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"healthcoach/models"
	"healthcoach/utils"

	"gorm.io/gorm"
)

type AdminService struct{ db *gorm.DB }

func NewAdminService(db *gorm.DB) *AdminService { return &AdminService{db: db} }

// ---------- Dashboard ----------

type LoginLogEntry struct {
	ID        uint      `json:"id"`
	UserID    *uint     `json:"user_id"`
	IsAdmin   bool      `json:"is_admin"`
	LoginTime time.Time `json:"login_time"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
}

type UserBMIRow struct {
	UserID       uint    `json:"user_id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	TargetStatus string  `json:"target_status"`
	HeightCm     float64 `json:"height_cm,omitempty"`
	WeightKg     float64 `json:"weight_kg,omitempty"`
	BMIValue     float64 `json:"bmi_value,omitempty"`
	Category     string  `json:"category,omitempty"`
	RecordedAt   string  `json:"recorded_at,omitempty"`
}

type TrackingRow struct {
	UserID             uint   `json:"user_id"`
	FullName           string `json:"full_name"`
	WaterCompleted     bool   `json:"water_completed"`
	FoodCompleted      bool   `json:"food_completed"`
	WorkoutCompleted   bool   `json:"workout_completed"`
	ChallengeCompleted bool   `json:"challenge_completed"`
	ProgressPercent    int    `json:"progress_percent"`
}

type DashboardSummary struct {
	TotalUsers    int64           `json:"total_users"`
	LoginLogs     []LoginLogEntry `json:"login_logs"`
	Users         []UserBMIRow    `json:"users"`
	TodayTracking []TrackingRow   `json:"today_tracking"`
}

// Dashboard aggregates the admin view: user count, recent logins, every
// user's latest BMI record, and today's tracking rows.
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	out := &DashboardSummary{}

	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&out.TotalUsers).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Table("login_logs").
		Select("login_logs.id, login_logs.user_id, login_logs.is_admin, login_logs.login_time, users.full_name, users.email").
		Joins("LEFT JOIN users ON users.id = login_logs.user_id").
		Order("login_logs.login_time DESC").
		Limit(20).
		Scan(&out.LoginLogs).Error; err != nil {
		return nil, err
	}

	var users []models.User
	if err := s.db.WithContext(ctx).Order("full_name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		row := UserBMIRow{
			UserID:       u.ID,
			FullName:     u.FullName,
			Email:        u.Email,
			TargetStatus: u.TargetStatus,
		}
		var rec models.BMIRecord
		err := s.db.WithContext(ctx).
			Where("user_id = ?", u.ID).
			Order("created_at desc, id desc").
			First(&rec).Error
		if err == nil {
			row.HeightCm = rec.HeightCm
			row.WeightKg = rec.WeightKg
			row.BMIValue = rec.BMIValue
			row.Category = rec.Category
			row.RecordedAt = rec.CreatedAt.Format("2006-01-02 15:04")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		out.Users = append(out.Users, row)
	}

	if err := s.db.WithContext(ctx).
		Table("daily_trackings").
		Select("daily_trackings.user_id, users.full_name, daily_trackings.water_completed, daily_trackings.food_completed, daily_trackings.workout_completed, daily_trackings.challenge_completed, daily_trackings.progress_percent").
		Joins("JOIN users ON users.id = daily_trackings.user_id").
		Where("daily_trackings.date = ?", dayStartLocal(time.Now())).
		Order("users.full_name ASC").
		Scan(&out.TodayTracking).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// ---------- Target status ----------

var validTargets = map[string]bool{
	models.TargetCompleted:    true,
	models.TargetOngoing:      true,
	models.TargetNotCompleted: true,
}

// UpdateTargetStatus sets the admin-controlled label on a user's goal.
func (s *AdminService) UpdateTargetStatus(ctx context.Context, userID uint, status string) error {
	if !validTargets[status] {
		return errors.New("target status must be Completed, Ongoing or Not Completed")
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}
	return s.db.WithContext(ctx).Model(&user).Update("target_status", status).Error
}

// ---------- Bootstrap ----------

// EnsureDefaultAdmin creates the administrator account from ADMIN_EMAIL /
// ADMIN_PASSWORD when it does not exist yet.
func (s *AdminService) EnsureDefaultAdmin() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Printf("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	var admin models.Admin
	err := s.db.Where("email = ?", email).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return s.db.Create(&models.Admin{Email: email, Password: hashed, FullName: "Administrator"}).Error
}
