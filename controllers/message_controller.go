package controllers

import (
	"net/http"
	"strconv"

	"healthcoach/services"

	"github.com/gin-gonic/gin"
)

func ListMessages(c *gin.Context) {
	userID := c.GetUint("userID")

	msgs, err := services.ListUserMessages(userID, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

func MarkMessageRead(c *gin.Context) {
	userID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}

	if err := services.MarkMessageRead(userID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked as read"})
}
