package models

import "time"

// LoginLog is append-only; one row per successful login. UserID is nil for
// admin logins.
type LoginLog struct {
    ID        uint      `gorm:"primaryKey"`
    UserID    *uint     `gorm:"index"`
    IsAdmin   bool
    LoginTime time.Time `gorm:"index;not null"`
}
