package handlers

import (
	apperrors "github.com/alex909w/eventify/internal/common/errors"
	"github.com/alex909w/eventify/internal/common/middleware"
	"github.com/alex909w/eventify/internal/rsvp/models"
	"github.com/alex909w/eventify/internal/rsvp/services"
	"github.com/gin-gonic/gin"
)

// GetRSVP returns the caller's status for an event, pending if unanswered
// GET /events/:id/rsvp
func GetRSVP(c *gin.Context) {
	status, err := services.Get(c.Param("id"), middleware.UserID(c))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, gin.H{
		"event_id": c.Param("id"),
		"status":   status,
	})
}

// SetRSVP records the caller's answer and returns the new attendee count
// PUT /events/:id/rsvp
func SetRSVP(c *gin.Context) {
	var req models.SetRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, apperrors.BadRequest("invalid request body"))
		return
	}

	response, err := services.Set(c.Param("id"), middleware.UserID(c), middleware.UserName(c), req.Status)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, response)
}
