package models

import (
    "gorm.io/gorm"
)

type AdminMessage struct {
    gorm.Model
    AdminID uint   `gorm:"index"`
    UserID  uint   `gorm:"index;not null"`
    Message string `gorm:"type:text;not null"`
    IsRead  bool   `gorm:"default:false"`
}
