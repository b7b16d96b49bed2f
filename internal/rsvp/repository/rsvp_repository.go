package repository

import (
	"errors"

	apperrors "github.com/alex909w/eventify/internal/common/errors"
	"github.com/alex909w/eventify/internal/rsvp/models"
	"github.com/alex909w/eventify/internal/store"
)

// GetStatus returns the user's stored status for an event, or pending when
// no record exists. Absence is the default, not an error.
func GetStatus(eventID, userID string) (string, error) {
	record, err := GetRecord(eventID, userID)
	if err != nil {
		return "", err
	}
	if record == nil {
		return models.StatusPending, nil
	}
	return record.Status, nil
}

// GetRecord returns the stored record for (event, user), nil if none exists.
func GetRecord(eventID, userID string) (*models.RSVPRecord, error) {
	var record models.RSVPRecord
	err := store.GetJSON(store.RSVPKey(eventID, userID), &record)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, apperrors.Storage("failed to fetch RSVP", err.Error())
	}
	return &record, nil
}

// Save writes or overwrites the (event, user) record.
func Save(record *models.RSVPRecord) error {
	if err := store.SetJSON(store.RSVPKey(record.EventID, record.UserID), record); err != nil {
		return apperrors.Storage("failed to save RSVP", err.Error())
	}
	return nil
}

// KeysForEvent lists every RSVP record key referencing an event,
// used by the delete-event cascade.
func KeysForEvent(eventID string) ([]string, error) {
	keys, err := store.DB.Keys(store.RSVPPrefix(eventID))
	if err != nil {
		return nil, apperrors.Storage("failed to list RSVP records", err.Error())
	}
	return keys, nil
}
