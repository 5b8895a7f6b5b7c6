package models

import (
    "gorm.io/gorm"
)

// BMIRecord is immutable once created; the most recent row per user is the
// user's current BMI. BMIValue and Category are always derived server-side.
type BMIRecord struct {
    gorm.Model
    UserID   uint    `gorm:"index;not null"`
    HeightCm float64 `gorm:"not null"`
    WeightKg float64 `gorm:"not null"`
    BMIValue float64 `gorm:"not null"`
    Category string  `gorm:"size:20;not null"`
}
