package services

import (
	"math"
	"testing"

	"healthcoach/models"
)

func TestRecordBMIDerivesValueAndCategory(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "A")

	rec, err := RecordBMI(user.ID, 175, 92)
	if err != nil {
		t.Fatalf("RecordBMI: %v", err)
	}
	if math.Abs(rec.BMIValue-30.04) > 0.005 {
		t.Errorf("BMIValue = %v, want ~30.04", rec.BMIValue)
	}
	if rec.Category != "Obese" {
		t.Errorf("Category = %q, want Obese", rec.Category)
	}
}

func TestRecordBMIRejectsInvalidInput(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "A")

	if _, err := RecordBMI(user.ID, 0, 92); err == nil {
		t.Error("zero height accepted")
	}
	if _, err := RecordBMI(user.ID, 175, -1); err == nil {
		t.Error("negative weight accepted")
	}
}

func TestLatestBMIRecordsNewestFirst(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "A")

	if _, err := RecordBMI(user.ID, 175, 95); err != nil {
		t.Fatalf("RecordBMI: %v", err)
	}
	if _, err := RecordBMI(user.ID, 175, 92); err != nil {
		t.Fatalf("RecordBMI: %v", err)
	}

	recs, err := LatestBMIRecords(user.ID, 2)
	if err != nil {
		t.Fatalf("LatestBMIRecords: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].WeightKg != 92 {
		t.Errorf("newest record weight = %v, want 92", recs[0].WeightKg)
	}
}

func TestBMITrend(t *testing.T) {
	newestFirst := func(values ...float64) []models.BMIRecord {
		recs := make([]models.BMIRecord, len(values))
		for i, v := range values {
			recs[i] = models.BMIRecord{BMIValue: v}
		}
		return recs
	}

	cases := []struct {
		name    string
		records []models.BMIRecord
		want    string
	}{
		{"lower than previous", newestFirst(30.04, 31.02), TrendImproving},
		{"higher than previous", newestFirst(28.21, 26.67), TrendWorsening},
		{"equal", newestFirst(24.5, 24.5), TrendStable},
		{"single record", newestFirst(24.5), TrendInsufficient},
		{"no records", nil, TrendInsufficient},
	}
	for _, tc := range cases {
		if got := BMITrend(tc.records); got != tc.want {
			t.Errorf("%s: BMITrend = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestTrendMessageDistinctPerStatus(t *testing.T) {
	seen := map[string]string{}
	for _, trend := range []string{TrendImproving, TrendWorsening, TrendStable, TrendInsufficient} {
		msg := TrendMessage(trend)
		if msg == "" {
			t.Errorf("empty message for %q", trend)
		}
		if prev, ok := seen[msg]; ok {
			t.Errorf("%q and %q share the same message", prev, trend)
		}
		seen[msg] = trend
	}
}
