package models

import (
    "gorm.io/gorm"
)

// Target status values set by the administrator.
const (
    TargetCompleted    = "Completed"
    TargetOngoing      = "Ongoing"
    TargetNotCompleted = "Not Completed"
)

type User struct {
    gorm.Model
    Email        string `gorm:"uniqueIndex;not null"`
    Password     string `gorm:"not null"`
    FullName     string
    TargetStatus string `gorm:"size:20;default:Ongoing"`
}
