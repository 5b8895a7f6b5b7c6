package services

import (
	"errors"
	"strings"

	"healthcoach/config"
	"healthcoach/models"
)

type messageDeps struct {
	rt *RealtimeHub
}

var _msg messageDeps

// InitMessageDeps wires the realtime hub so new messages are echoed to
// connected clients. Safe to skip in tests.
func InitMessageDeps(rt *RealtimeHub) {
	_msg = messageDeps{rt: rt}
}

// SendAdminMessage stores an unread note from the administrator to a user and
// pushes a message.created event to the user's open sockets.
func SendAdminMessage(adminID, userID uint, message string) (*models.AdminMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, errors.New("message must not be empty")
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	m := models.AdminMessage{
		AdminID: adminID,
		UserID:  userID,
		Message: message,
		IsRead:  false,
	}
	if err := config.DB.Create(&m).Error; err != nil {
		return nil, err
	}

	if _msg.rt != nil {
		_msg.rt.Broadcast(userID, map[string]any{
			"kind":    "message.created",
			"message": m,
		})
	}
	return &m, nil
}

// ListUserMessages returns the user's most recent messages, newest first.
func ListUserMessages(userID uint, limit int) ([]models.AdminMessage, error) {
	var msgs []models.AdminMessage
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}

// MarkMessageRead flags one of the user's own messages as read.
func MarkMessageRead(userID, messageID uint) error {
	var m models.AdminMessage
	if err := config.DB.Where("id = ? AND user_id = ?", messageID, userID).First(&m).Error; err != nil {
		return errors.New("message not found")
	}
	return config.DB.Model(&m).Update("is_read", true).Error
}
