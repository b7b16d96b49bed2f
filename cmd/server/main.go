package main

import (
	"fmt"
	"log"

	commonHandlers "github.com/alex909w/eventify/internal/common/handlers"
	"github.com/alex909w/eventify/internal/common/health"
	"github.com/alex909w/eventify/internal/common/middleware"
	eventHandlers "github.com/alex909w/eventify/internal/events/handlers"
	notificationHandlers "github.com/alex909w/eventify/internal/notifications/handlers"
	ratingHandlers "github.com/alex909w/eventify/internal/ratings/handlers"
	rsvpHandlers "github.com/alex909w/eventify/internal/rsvp/handlers"
	statisticsHandlers "github.com/alex909w/eventify/internal/statistics/handlers"
	"github.com/alex909w/eventify/internal/store"
	"github.com/alex909w/eventify/pkg/config"
	"github.com/alex909w/eventify/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize the key-value store (Badger for development, SQL-backed
	// for deployments that need an external database)
	if err := store.Init(cfg.Store); err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	// Create Gin engine
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorHandler())

	// Health check endpoints (production-grade)
	healthChecker := health.NewHealthChecker(store.DB, "1.0.0")
	healthHandler := commonHandlers.NewHealthHandler(healthChecker)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/readiness", healthHandler.Readiness)
	router.GET("/health/liveness", healthHandler.Liveness)
	router.GET("/health/metrics", healthHandler.Metrics)
	router.GET("/health/detailed", healthHandler.Detailed)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Event catalog routes
		eventGroup := v1.Group("/events")
		{
			eventGroup.GET("", middleware.OptionalAuth(), eventHandlers.ListEvents)
			eventGroup.POST("", middleware.AuthRequired(), eventHandlers.CreateEvent)
			eventGroup.GET("/:id", middleware.OptionalAuth(), eventHandlers.GetEvent)
			eventGroup.PUT("/:id", middleware.AuthRequired(), eventHandlers.UpdateEvent)
			eventGroup.DELETE("/:id", middleware.AuthRequired(), eventHandlers.DeleteEvent)
			eventGroup.GET("/:id/attendees", eventHandlers.GetAttendees)

			// RSVP routes live under the event they belong to
			eventGroup.GET("/:id/rsvp", middleware.AuthRequired(), rsvpHandlers.GetRSVP)
			eventGroup.PUT("/:id/rsvp", middleware.AuthRequired(), rsvpHandlers.SetRSVP)

			// Rating and comment routes
			eventGroup.GET("/:id/rating", ratingHandlers.GetRating)
			eventGroup.POST("/:id/comments", middleware.AuthRequired(), ratingHandlers.AddComment)
			eventGroup.POST("/:id/comments/:commentId/like", middleware.AuthRequired(), ratingHandlers.ToggleLike)
			eventGroup.POST("/:id/comments/:commentId/report", middleware.AuthRequired(), ratingHandlers.ReportComment)
		}

		// Notification routes
		notificationGroup := v1.Group("/notifications")
		notificationGroup.Use(middleware.AuthRequired())
		{
			notificationGroup.GET("", notificationHandlers.ListNotifications)
			notificationGroup.PUT("/:id/read", notificationHandlers.MarkRead)
			notificationGroup.PUT("/read-all", notificationHandlers.MarkAllRead)
			notificationGroup.GET("/unread-count", notificationHandlers.UnreadCount)
		}

		// Per-user routes
		userGroup := v1.Group("/users/me")
		userGroup.Use(middleware.AuthRequired())
		{
			userGroup.GET("/events", eventHandlers.GetUserEvents)
			userGroup.GET("/statistics", statisticsHandlers.GetStatistics)
			userGroup.POST("/statistics/refresh", statisticsHandlers.RefreshStatistics)
			userGroup.GET("/profile", statisticsHandlers.GetProfile)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting eventify server", zap.String("address", address), zap.String("backend", cfg.Store.Backend))

	if err := router.Run(address); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
