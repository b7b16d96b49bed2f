package repository

import (
	"errors"

	apperrors "github.com/alex909w/eventify/internal/common/errors"
	"github.com/alex909w/eventify/internal/events/models"
	"github.com/alex909w/eventify/internal/store"
)

// ========== SUMMARY LIST ==========

// ListSummaries returns every event summary, most-recently-created first.
// An empty store yields the seed catalog so a fresh install is never blank.
func ListSummaries() ([]models.EventSummary, error) {
	var summaries []models.EventSummary
	err := store.GetJSON(store.KeyEvents, &summaries)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return SeedSummaries(), nil
		}
		return nil, apperrors.Storage("failed to fetch events", err.Error())
	}
	return summaries, nil
}

// SaveSummaries overwrites the summary list.
func SaveSummaries(summaries []models.EventSummary) error {
	if err := store.SetJSON(store.KeyEvents, summaries); err != nil {
		return apperrors.Storage("failed to save events", err.Error())
	}
	return nil
}

// StageSummaries stages the summary list into a batch.
func StageSummaries(b *store.Batch, summaries []models.EventSummary) error {
	return b.SetJSON(store.KeyEvents, summaries)
}

// ========== EVENT DETAIL ==========

// GetDetail returns the full event record, falling back to the seed catalog
// for the built-in events. A missing event is an explicit not-found error,
// never a placeholder record.
func GetDetail(eventID string) (*models.EventDetail, error) {
	var detail models.EventDetail
	err := store.GetJSON(store.EventKey(eventID), &detail)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			if seeded, ok := SeedDetail(eventID); ok {
				return seeded, nil
			}
			return nil, apperrors.NotFound("event")
		}
		return nil, apperrors.Storage("failed to fetch event", err.Error())
	}
	return &detail, nil
}

// SaveDetail writes the full event record.
func SaveDetail(detail *models.EventDetail) error {
	if err := store.SetJSON(store.EventKey(detail.ID), detail); err != nil {
		return apperrors.Storage("failed to save event", err.Error())
	}
	return nil
}

// StageDetail stages the full event record into a batch.
func StageDetail(b *store.Batch, detail *models.EventDetail) error {
	return b.SetJSON(store.EventKey(detail.ID), detail)
}

// ========== ATTENDEE LIST ==========

// GetAttendees returns the attendee list for an event, empty if none stored.
func GetAttendees(eventID string) ([]models.Attendee, error) {
	var attendees []models.Attendee
	err := store.GetJSON(store.AttendeesKey(eventID), &attendees)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []models.Attendee{}, nil
		}
		return nil, apperrors.Storage("failed to fetch attendees", err.Error())
	}
	return attendees, nil
}

// SaveAttendees overwrites the attendee list for an event.
func SaveAttendees(eventID string, attendees []models.Attendee) error {
	if err := store.SetJSON(store.AttendeesKey(eventID), attendees); err != nil {
		return apperrors.Storage("failed to save attendees", err.Error())
	}
	return nil
}

// StageAttendees stages the attendee list into a batch.
func StageAttendees(b *store.Batch, eventID string, attendees []models.Attendee) error {
	return b.SetJSON(store.AttendeesKey(eventID), attendees)
}

// ========== EVENT HISTORY ==========

// GetHistory returns a user's organized or attended event history.
func GetHistory(userID, kind string) ([]models.UserEvent, error) {
	var events []models.UserEvent
	err := store.GetJSON(store.EventHistoryKey(userID, kind), &events)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []models.UserEvent{}, nil
		}
		return nil, apperrors.Storage("failed to fetch event history", err.Error())
	}
	return events, nil
}

// StageHistory stages a user's organized or attended history into a batch.
func StageHistory(b *store.Batch, userID, kind string, events []models.UserEvent) error {
	return b.SetJSON(store.EventHistoryKey(userID, kind), events)
}
