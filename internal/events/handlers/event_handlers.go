package handlers

import (
	apperrors "github.com/alex909w/eventify/internal/common/errors"
	"github.com/alex909w/eventify/internal/common/middleware"
	"github.com/alex909w/eventify/internal/events/models"
	"github.com/alex909w/eventify/internal/events/services"
	"github.com/gin-gonic/gin"
)

// ListEvents returns every event summary, newest first
// GET /events
func ListEvents(c *gin.Context) {
	response, err := services.List()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, response)
}

// GetEvent returns the full event record
// GET /events/:id
func GetEvent(c *gin.Context) {
	detail, err := services.Get(c.Param("id"), middleware.UserID(c))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, detail)
}

// CreateEvent creates a new event with the caller as organizer
// POST /events
func CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, apperrors.BadRequest("invalid request body"))
		return
	}

	detail, err := services.Create(req, middleware.UserID(c), middleware.UserName(c))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(201, detail)
}

// UpdateEvent overwrites event fields, organizer only
// PUT /events/:id
func UpdateEvent(c *gin.Context) {
	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, apperrors.BadRequest("invalid request body"))
		return
	}

	detail, err := services.Update(c.Param("id"), req, middleware.UserID(c))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, detail)
}

// DeleteEvent removes an event and every dependent record, organizer only
// DELETE /events/:id
func DeleteEvent(c *gin.Context) {
	if err := services.Delete(c.Param("id"), middleware.UserID(c)); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(204, nil)
}

// GetAttendees returns the attendee list for an event
// GET /events/:id/attendees
func GetAttendees(c *gin.Context) {
	response, err := services.Attendees(c.Param("id"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, response)
}

// GetUserEvents returns the caller's organizing or attending history
// GET /users/me/events?type=organizing|attending
func GetUserEvents(c *gin.Context) {
	listType := c.DefaultQuery("type", "organizing")
	response, err := services.UserEvents(middleware.UserID(c), listType)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, response)
}
