package repository

import (
	"errors"

	apperrors "github.com/alex909w/eventify/internal/common/errors"
	"github.com/alex909w/eventify/internal/notifications/models"
	"github.com/alex909w/eventify/internal/store"
)

// List returns a user's notification stream, newest first.
func List(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := store.GetJSON(store.NotificationsKey(userID), &notifications)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []models.Notification{}, nil
		}
		return nil, apperrors.Storage("failed to fetch notifications", err.Error())
	}
	return notifications, nil
}

// Save overwrites a user's notification stream.
func Save(userID string, notifications []models.Notification) error {
	if err := store.SetJSON(store.NotificationsKey(userID), notifications); err != nil {
		return apperrors.Storage("failed to save notifications", err.Error())
	}
	return nil
}
