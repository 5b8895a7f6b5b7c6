// controllers/admin_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"healthcoach/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Svc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{Svc: svc}
}

func (h *AdminController) GetDashboard(c *gin.Context) {
	out, err := h.Svc.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

type SendMessageInput struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *AdminController) SendMessage(c *gin.Context) {
	adminID := c.GetUint("adminID")

	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := services.SendAdminMessage(adminID, input.UserID, input.Message)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "message sent", "id": m.ID})
}

type TargetInput struct {
	TargetStatus string `json:"target_status" binding:"required"`
}

func (h *AdminController) UpdateTarget(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var input TargetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Svc.UpdateTargetStatus(c.Request.Context(), uint(id), input.TargetStatus); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "target status updated"})
}
