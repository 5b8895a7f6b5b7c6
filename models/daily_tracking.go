package models

import (
    "time"

    "gorm.io/gorm"
)

// DailyTracking holds one day's four habit flags for a user. At most one row
// exists per (user, date); Date is truncated to local midnight.
type DailyTracking struct {
    gorm.Model
    UserID             uint      `gorm:"uniqueIndex:idx_tracking_user_date;not null"`
    Date               time.Time `gorm:"uniqueIndex:idx_tracking_user_date;not null"`
    WaterCompleted     bool      `json:"water_completed"`
    FoodCompleted      bool      `json:"food_completed"`
    WorkoutCompleted   bool      `json:"workout_completed"`
    ChallengeCompleted bool      `json:"challenge_completed"`
    ProgressPercent    int       `json:"progress_percent"`
}
