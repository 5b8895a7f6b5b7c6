package models

import (
    "gorm.io/gorm"
)

type Admin struct {
    gorm.Model
    Email    string `gorm:"uniqueIndex;not null"`
    Password string `gorm:"not null"`
    FullName string
}
