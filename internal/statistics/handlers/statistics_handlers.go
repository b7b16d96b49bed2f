package handlers

import (
	"github.com/alex909w/eventify/internal/common/middleware"
	"github.com/alex909w/eventify/internal/statistics/services"
	"github.com/gin-gonic/gin"
)

// GetStatistics returns the caller's derived statistics, recomputing on a
// cache miss
// GET /users/me/statistics
func GetStatistics(c *gin.Context) {
	stats, err := services.Get(middleware.UserID(c))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, stats)
}

// RefreshStatistics forces a full recompute of the caller's statistics
// POST /users/me/statistics/refresh
func RefreshStatistics(c *gin.Context) {
	stats, err := services.Compute(middleware.UserID(c))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, stats)
}

// GetProfile returns the caller's counter record
// GET /users/me/profile
func GetProfile(c *gin.Context) {
	profile, err := services.GetProfile(middleware.UserID(c))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, profile)
}
