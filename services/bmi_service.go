package services

import (
	"healthcoach/config"
	"healthcoach/models"
	"healthcoach/utils"
)

// Trend status tokens returned by BMITrend. The web layer maps these to
// user-facing copy via TrendMessage.
const (
	TrendImproving    = "improving"
	TrendWorsening    = "worsening"
	TrendStable       = "stable"
	TrendInsufficient = "insufficient data"
)

// RecordBMI computes BMI and category from height/weight and stores a new
// record. Client-supplied BMI values are never trusted.
func RecordBMI(userID uint, heightCm, weightKg float64) (*models.BMIRecord, error) {
	bmi, err := utils.CalculateBMI(heightCm, weightKg)
	if err != nil {
		return nil, err
	}

	rec := models.BMIRecord{
		UserID:   userID,
		HeightCm: heightCm,
		WeightKg: weightKg,
		BMIValue: bmi,
		Category: utils.BMICategory(bmi),
	}
	if err := config.DB.Create(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// LatestBMIRecords returns up to limit records, newest first.
func LatestBMIRecords(userID uint, limit int) ([]models.BMIRecord, error) {
	var recs []models.BMIRecord
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

// BMITrend compares the two most recent records (newest first). Strictly
// lower BMI than the previous record is improving, strictly higher is
// worsening.
func BMITrend(records []models.BMIRecord) string {
	if len(records) < 2 {
		return TrendInsufficient
	}
	latest, previous := records[0].BMIValue, records[1].BMIValue
	switch {
	case latest < previous:
		return TrendImproving
	case latest > previous:
		return TrendWorsening
	default:
		return TrendStable
	}
}

// TrendMessage maps a trend status to dashboard copy.
func TrendMessage(trend string) string {
	switch trend {
	case TrendImproving:
		return "Your BMI has improved compared to your last record. Fantastic progress!"
	case TrendWorsening:
		return "Your BMI has increased compared to your last record. Consider tightening your food plan and staying more consistent with workouts."
	case TrendStable:
		return "Your BMI is stable. Keep following your plan to see gradual improvements."
	default:
		return "Log at least two BMI records to see your trend."
	}
}
