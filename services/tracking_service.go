package services

import (
	"time"

	"healthcoach/config"
	"healthcoach/models"
)

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// ProgressPercent is a pure function of the four flags: 25 points each.
func ProgressPercent(water, food, workout, challenge bool) int {
	completed := 0
	for _, done := range []bool{water, food, workout, challenge} {
		if done {
			completed++
		}
	}
	return completed * 25
}

// Message tiers are configuration, not contract; adjust copy freely.
func ProgressMessage(percent int) string {
	switch {
	case percent == 100:
		return "Congratulations! You have completed all your health goals for today."
	case percent >= 50:
		return "Great job. You're more than halfway there - keep going!"
	case percent > 0:
		return "Good start! Make a small healthy choice right now to move closer to your goal."
	default:
		return "A fresh day ahead. Tick off your first habit to get moving."
	}
}

// GetDailyTracking fetches today's row for the user, creating a blank one on
// the first request of the day.
func GetDailyTracking(userID uint) (*models.DailyTracking, error) {
	start := dayStartLocal(time.Now())

	tracking := models.DailyTracking{UserID: userID, Date: start}
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		FirstOrCreate(&tracking).Error
	if err != nil {
		return nil, err
	}
	return &tracking, nil
}

// UpsertDailyTracking writes all four flags and the derived percentage onto
// today's row. Last write wins; repeating the same input is a no-op.
func UpsertDailyTracking(userID uint, water, food, workout, challenge bool) (*models.DailyTracking, error) {
	start := dayStartLocal(time.Now())
	percent := ProgressPercent(water, food, workout, challenge)

	tracking := models.DailyTracking{UserID: userID, Date: start}
	// Assign by column map so flags can be cleared back to false.
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(map[string]interface{}{
			"water_completed":     water,
			"food_completed":      food,
			"workout_completed":   workout,
			"challenge_completed": challenge,
			"progress_percent":    percent,
		}).
		FirstOrCreate(&tracking).Error
	if err != nil {
		return nil, err
	}
	return &tracking, nil
}
