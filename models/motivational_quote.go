package models

import (
    "time"

    "gorm.io/gorm"
)

// UsedDate is a rotation key, not a strict invariant: it marks the day the
// quote was last served as quote-of-the-day.
type MotivationalQuote struct {
    gorm.Model
    QuoteText string `gorm:"type:text;not null"`
    Author    string `gorm:"size:100"`
    UsedDate  *time.Time `gorm:"index"`
}
