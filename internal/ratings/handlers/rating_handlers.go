package handlers

import (
	apperrors "github.com/alex909w/eventify/internal/common/errors"
	"github.com/alex909w/eventify/internal/common/middleware"
	"github.com/alex909w/eventify/internal/ratings/models"
	"github.com/alex909w/eventify/internal/ratings/services"
	"github.com/gin-gonic/gin"
)

// GetRating returns the rating aggregate for an event
// GET /events/:id/rating
func GetRating(c *gin.Context) {
	rating, err := services.Get(c.Param("id"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, rating)
}

// AddComment adds a rated comment to an event
// POST /events/:id/comments
func AddComment(c *gin.Context) {
	var req models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, apperrors.BadRequest("invalid request body"))
		return
	}

	rating, err := services.AddComment(c.Param("id"), middleware.UserID(c), middleware.UserName(c), req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(201, rating)
}

// ToggleLike flips the like on a comment
// POST /events/:id/comments/:commentId/like
func ToggleLike(c *gin.Context) {
	comment, err := services.ToggleLike(c.Param("id"), c.Param("commentId"), middleware.UserID(c))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, comment)
}

// ReportComment records a report against a comment
// POST /events/:id/comments/:commentId/report
func ReportComment(c *gin.Context) {
	err := services.Report(c.Param("id"), c.Param("commentId"), middleware.UserID(c))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, gin.H{"reported": true})
}
