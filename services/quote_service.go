package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"healthcoach/config"
	"healthcoach/models"

	"gorm.io/gorm"
)

// Served when the quote pool is empty.
var fallbackQuote = models.MotivationalQuote{
	QuoteText: "Your health is an investment, not an expense.",
	Author:    "Unknown",
}

const quoteCacheKey = "quote:"

var defaultQuotes = []models.MotivationalQuote{
	{QuoteText: "Consistency beats intensity: small healthy choices every day lead to big changes.", Author: "Unknown"},
	{QuoteText: "Take care of your body. It's the only place you have to live.", Author: "Jim Rohn"},
	{QuoteText: "A year from now you may wish you had started today.", Author: "Karen Lamb"},
	{QuoteText: "The groundwork for all happiness is good health.", Author: "Leigh Hunt"},
	{QuoteText: "Small steps every day.", Author: "Unknown"},
}

// SeedDefaultQuotes fills the pool on first boot; an already-populated table
// is left untouched.
func SeedDefaultQuotes() error {
	var count int64
	if err := config.DB.Model(&models.MotivationalQuote{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	quotes := make([]models.MotivationalQuote, len(defaultQuotes))
	copy(quotes, defaultQuotes)
	return config.DB.Create(&quotes).Error
}

// QuoteOfTheDay returns the quote already stamped for today, or picks a
// random one and stamps it. Redis, when available, short-circuits the
// database lookup for the rest of the day.
func QuoteOfTheDay() (*models.MotivationalQuote, error) {
	now := time.Now()
	start := dayStartLocal(now)
	dayKey := quoteCacheKey + start.Format("2006-01-02")

	if config.Redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if idStr, err := config.Redis.Get(ctx, dayKey).Result(); err == nil {
			if id, err := strconv.ParseUint(idStr, 10, 64); err == nil {
				var q models.MotivationalQuote
				if err := config.DB.First(&q, uint(id)).Error; err == nil {
					return &q, nil
				}
			}
		}
	}

	var quote models.MotivationalQuote
	err := config.DB.
		Where("used_date >= ? AND used_date < ?", start, start.AddDate(0, 0, 1)).
		First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Rotate: pick any quote and stamp it for today.
		err = config.DB.Order("RANDOM()").First(&quote).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			q := fallbackQuote
			return &q, nil
		}
		if err != nil {
			return nil, err
		}
		quote.UsedDate = &start
		if err := config.DB.Save(&quote).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if config.Redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		// Cache failures are ignored; the DB remains the source of truth.
		_ = config.Redis.Set(ctx, dayKey, strconv.FormatUint(uint64(quote.ID), 10), 24*time.Hour).Err()
	}

	return &quote, nil
}
