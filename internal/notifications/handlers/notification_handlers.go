package handlers

import (
	"github.com/alex909w/eventify/internal/common/middleware"
	"github.com/alex909w/eventify/internal/notifications/models"
	"github.com/alex909w/eventify/internal/notifications/services"
	"github.com/gin-gonic/gin"
)

// ListNotifications returns the caller's stream, newest first
// GET /notifications
func ListNotifications(c *gin.Context) {
	response, err := services.List(middleware.UserID(c))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, response)
}

// MarkRead flips read on one notification
// PUT /notifications/:id/read
func MarkRead(c *gin.Context) {
	if err := services.MarkRead(middleware.UserID(c), c.Param("id")); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, gin.H{"read": true})
}

// MarkAllRead flips read on the whole stream
// PUT /notifications/read-all
func MarkAllRead(c *gin.Context) {
	if err := services.MarkAllRead(middleware.UserID(c)); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, gin.H{"read": true})
}

// UnreadCount returns the caller's unread notification count
// GET /notifications/unread-count
func UnreadCount(c *gin.Context) {
	unread, err := services.UnreadCount(middleware.UserID(c))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, models.UnreadCountResponse{Unread: unread})
}
