package controllers

import (
	"net/http"

	"healthcoach/services"

	"github.com/gin-gonic/gin"
)

const consistencyMessage = "Consistency beats intensity: small healthy choices every day lead to big changes."

// Home is the public landing payload: daily quote plus the consistency line.
func Home(c *gin.Context) {
	out := gin.H{
		"consistency_message": consistencyMessage,
		"reminders":           healthReminders,
	}

	if quote, err := services.QuoteOfTheDay(); err == nil {
		out["quote"] = gin.H{"text": quote.QuoteText, "author": quote.Author}
	}

	c.JSON(http.StatusOK, out)
}
