package controllers

import (
	"net/http"

	"healthcoach/services"

	"github.com/gin-gonic/gin"
)

// Static reminders shown on every dashboard load.
var healthReminders = []string{
	"Drink a glass of water now.",
	"Take a 5-minute walk or stretch break.",
	"Review your meal plan for today.",
}

// UserDashboard assembles the home screen: latest BMI with its plan and
// trend, today's tracking, recent admin messages, the daily quote and the
// target-status motivation line.
func UserDashboard(c *gin.Context) {
	userID := c.GetUint("userID")
	email := c.MustGet("email").(string)

	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	out := gin.H{
		"full_name":            user.FullName,
		"target_status":        user.TargetStatus,
		"motivational_message": services.TargetMotivation(user.TargetStatus),
		"reminders":            healthReminders,
	}

	recs, err := services.LatestBMIRecords(userID, 2)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(recs) > 0 {
		latest := recs[0]
		trend := services.BMITrend(recs)
		out["bmi"] = round2(latest.BMIValue)
		out["category"] = latest.Category
		out["recommendation"] = services.GetRecommendations(latest.Category)
		out["trend"] = trend
		out["trend_message"] = services.TrendMessage(trend)
	}

	tracking, err := services.GetDailyTracking(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out["tracking"] = tracking
	out["tracking_message"] = services.ProgressMessage(tracking.ProgressPercent)

	messages, err := services.ListUserMessages(userID, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out["admin_messages"] = messages

	if quote, err := services.QuoteOfTheDay(); err == nil {
		out["quote"] = gin.H{"text": quote.QuoteText, "author": quote.Author}
	}

	c.JSON(http.StatusOK, out)
}
