package services

import (
	"testing"

	"healthcoach/config"
	"healthcoach/models"
)

func seedQuotes(t *testing.T, texts ...string) {
	t.Helper()
	for _, text := range texts {
		if err := config.DB.Create(&models.MotivationalQuote{QuoteText: text, Author: "Test"}).Error; err != nil {
			t.Fatalf("seed quote: %v", err)
		}
	}
}

func TestQuoteOfTheDayStampsRotationKey(t *testing.T) {
	setupTestDB(t)
	seedQuotes(t, "Small steps add up.")

	quote, err := QuoteOfTheDay()
	if err != nil {
		t.Fatalf("QuoteOfTheDay: %v", err)
	}
	if quote.UsedDate == nil {
		t.Fatal("quote not stamped with used date")
	}
}

func TestQuoteOfTheDayStableWithinDay(t *testing.T) {
	setupTestDB(t)
	seedQuotes(t, "One.", "Two.", "Three.")

	first, err := QuoteOfTheDay()
	if err != nil {
		t.Fatalf("QuoteOfTheDay: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := QuoteOfTheDay()
		if err != nil {
			t.Fatalf("QuoteOfTheDay: %v", err)
		}
		if again.ID != first.ID {
			t.Fatalf("quote changed within the same day: %d then %d", first.ID, again.ID)
		}
	}
}

func TestQuoteOfTheDayFallbackOnEmptyPool(t *testing.T) {
	setupTestDB(t)

	quote, err := QuoteOfTheDay()
	if err != nil {
		t.Fatalf("QuoteOfTheDay: %v", err)
	}
	if quote.QuoteText == "" {
		t.Error("fallback quote is empty")
	}
	if quote.ID != 0 {
		t.Errorf("fallback quote should not be persisted, got id %d", quote.ID)
	}
}
