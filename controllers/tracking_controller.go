package controllers

import (
	"net/http"

	"healthcoach/services"

	"github.com/gin-gonic/gin"
)

// All four flags are sent on every update; last write wins on today's row.
type TrackingInput struct {
	WaterCompleted     bool `json:"water_completed"`
	FoodCompleted      bool `json:"food_completed"`
	WorkoutCompleted   bool `json:"workout_completed"`
	ChallengeCompleted bool `json:"challenge_completed"`
}

func GetTracking(c *gin.Context) {
	userID := c.GetUint("userID")

	tracking, err := services.GetDailyTracking(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tracking": tracking,
		"message":  services.ProgressMessage(tracking.ProgressPercent),
	})
}

func UpdateTracking(c *gin.Context) {
	userID := c.GetUint("userID")

	var input TrackingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tracking, err := services.UpsertDailyTracking(
		userID,
		input.WaterCompleted,
		input.FoodCompleted,
		input.WorkoutCompleted,
		input.ChallengeCompleted,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"progress_percent": tracking.ProgressPercent,
		"message":          services.ProgressMessage(tracking.ProgressPercent),
	})
}
