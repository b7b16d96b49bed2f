package services

import (
	"time"

	apperrors "github.com/alex909w/eventify/internal/common/errors"
	"github.com/alex909w/eventify/internal/notifications/models"
	"github.com/alex909w/eventify/internal/notifications/repository"
	"github.com/alex909w/eventify/internal/store"
	"github.com/alex909w/eventify/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Emit prepends a notification to the user's stream. Emission is
// fire-and-forget: a failed write is logged and the triggering operation
// (create, delete, RSVP, comment) still succeeds.
func Emit(userID, notifType, title, message, eventID string) {
	unlock := store.Lock("notifications_" + userID)
	defer unlock()

	notifications, err := repository.List(userID)
	if err != nil {
		logger.Warn("notification emit failed",
			zap.String("user_id", userID),
			zap.String("type", notifType),
			zap.Error(err),
		)
		return
	}

	notification := models.Notification{
		ID:      uuid.NewString(),
		Title:   title,
		Message: message,
		Date:    time.Now(),
		Read:    false,
		Type:    notifType,
		EventID: eventID,
	}

	notifications = append([]models.Notification{notification}, notifications...)
	if err := repository.Save(userID, notifications); err != nil {
		logger.Warn("notification emit failed",
			zap.String("user_id", userID),
			zap.String("type", notifType),
			zap.Error(err),
		)
	}
}

// List returns the user's stream with totals.
func List(userID string) (*models.NotificationListResponse, error) {
	notifications, err := repository.List(userID)
	if err != nil {
		return nil, err
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	return &models.NotificationListResponse{
		Notifications: notifications,
		Total:         len(notifications),
		Unread:        unread,
	}, nil
}

// MarkRead flips read on the matching notification.
func MarkRead(userID, notificationID string) error {
	unlock := store.Lock("notifications_" + userID)
	defer unlock()

	notifications, err := repository.List(userID)
	if err != nil {
		return err
	}

	for i := range notifications {
		if notifications[i].ID == notificationID {
			notifications[i].Read = true
			return repository.Save(userID, notifications)
		}
	}
	return apperrors.NotFound("notification")
}

// MarkAllRead flips read on every notification in the user's stream.
func MarkAllRead(userID string) error {
	unlock := store.Lock("notifications_" + userID)
	defer unlock()

	notifications, err := repository.List(userID)
	if err != nil {
		return err
	}

	for i := range notifications {
		notifications[i].Read = true
	}
	return repository.Save(userID, notifications)
}

// UnreadCount returns how many notifications the user has not read.
func UnreadCount(userID string) (int, error) {
	notifications, err := repository.List(userID)
	if err != nil {
		return 0, err
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}
	return unread, nil
}
