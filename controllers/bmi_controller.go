package controllers

import (
	"math"
	"net/http"

	"healthcoach/services"

	"github.com/gin-gonic/gin"
)

type BMIInput struct {
	HeightCm float64 `json:"height_cm" binding:"required,gt=0"`
	WeightKg float64 `json:"weight_kg" binding:"required,gt=0"`
}

// SubmitBMI records a measurement and returns the derived value, category,
// recommendation bundle and trend in one round trip.
func SubmitBMI(c *gin.Context) {
	userID := c.GetUint("userID")

	var input BMIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := services.RecordBMI(userID, input.HeightCm, input.WeightKg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recs, err := services.LatestBMIRecords(userID, 2)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	trend := services.BMITrend(recs)

	c.JSON(http.StatusOK, gin.H{
		"bmi":            round2(rec.BMIValue),
		"category":       rec.Category,
		"recommendation": services.GetRecommendations(rec.Category),
		"trend":          trend,
		"trend_message":  services.TrendMessage(trend),
	})
}

func BMIHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	recs, err := services.LatestBMIRecords(userID, 30)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	history := make([]gin.H, 0, len(recs))
	for _, r := range recs {
		history = append(history, gin.H{
			"height_cm":   r.HeightCm,
			"weight_kg":   r.WeightKg,
			"bmi":         round2(r.BMIValue),
			"category":    r.Category,
			"recorded_at": r.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"records": history})
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
