package services

import (
	"fmt"
	"time"

	apperrors "github.com/alex909w/eventify/internal/common/errors"
	eventmodels "github.com/alex909w/eventify/internal/events/models"
	eventsrepo "github.com/alex909w/eventify/internal/events/repository"
	notifmodels "github.com/alex909w/eventify/internal/notifications/models"
	notifications "github.com/alex909w/eventify/internal/notifications/services"
	"github.com/alex909w/eventify/internal/rsvp/models"
	"github.com/alex909w/eventify/internal/rsvp/repository"
	statistics "github.com/alex909w/eventify/internal/statistics/services"
	"github.com/alex909w/eventify/internal/store"
)

// Get returns the user's status for an event, pending when unanswered.
func Get(eventID, userID string) (string, error) {
	return repository.GetStatus(eventID, userID)
}

// Set records the user's answer and keeps the event's attendee count in step.
// The count moves by one only on transitions into or out of attending and is
// floored at 1: the organizer always holds a seat. Organizers cannot RSVP on
// their own event; that is enforced here, not left to callers.
func Set(eventID, userID, userName, status string) (*models.RSVPResponse, error) {
	if !models.ValidStatus(status) {
		return nil, apperrors.Validation("invalid RSVP status", fmt.Sprintf("status %q is not one of attending, not_attending, maybe", status))
	}

	unlock := store.Lock(eventID)
	defer unlock()

	detail, err := eventsrepo.GetDetail(eventID)
	if err != nil {
		return nil, err
	}
	if detail.OrganizerID == userID {
		return nil, apperrors.Forbidden("organizers cannot RSVP on their own event")
	}

	previous, err := repository.GetStatus(eventID, userID)
	if err != nil {
		return nil, err
	}

	// Attendee count moves only across the attending boundary
	wasAttending := previous == models.StatusAttending
	isAttending := status == models.StatusAttending
	if isAttending && !wasAttending {
		detail.Attendees++
	} else if !isAttending && wasAttending {
		detail.Attendees--
	}
	if detail.Attendees < 1 {
		detail.Attendees = 1
	}

	record := &models.RSVPRecord{
		EventID:   eventID,
		UserID:    userID,
		Status:    status,
		Timestamp: time.Now(),
	}

	attendees, err := eventsrepo.GetAttendees(eventID)
	if err != nil {
		return nil, err
	}
	attendees = syncAttendeeEntry(attendees, userID, userName, status)

	history, err := eventsrepo.GetHistory(userID, eventmodels.HistoryAttended)
	if err != nil {
		return nil, err
	}
	history = syncHistory(history, detail, isAttending)

	batch := store.NewBatch()
	if err := batch.SetJSON(store.RSVPKey(eventID, userID), record); err != nil {
		return nil, apperrors.Internal("failed to build RSVP", err.Error())
	}
	if err := eventsrepo.StageDetail(&batch, detail); err != nil {
		return nil, apperrors.Internal("failed to build RSVP", err.Error())
	}
	if err := eventsrepo.StageAttendees(&batch, eventID, attendees); err != nil {
		return nil, apperrors.Internal("failed to build RSVP", err.Error())
	}
	if err := eventsrepo.StageHistory(&batch, userID, eventmodels.HistoryAttended, history); err != nil {
		return nil, apperrors.Internal("failed to build RSVP", err.Error())
	}
	if err := store.DB.Apply(batch); err != nil {
		return nil, apperrors.Storage("failed to save RSVP", err.Error())
	}

	notifications.Emit(detail.OrganizerID, notifmodels.TypeRSVP,
		"Respuesta a tu evento",
		fmt.Sprintf("%s: %s en \"%s\"", userName, statusText(status), detail.Title),
		eventID,
	)
	statistics.Invalidate(userID)
	statistics.Invalidate(detail.OrganizerID)

	return &models.RSVPResponse{
		EventID:   eventID,
		Status:    status,
		Attendees: detail.Attendees,
	}, nil
}

// syncAttendeeEntry keeps the attendee list in step with the answer:
// attending and maybe hold an entry, not_attending drops it.
func syncAttendeeEntry(attendees []eventmodels.Attendee, userID, userName, status string) []eventmodels.Attendee {
	kept := make([]eventmodels.Attendee, 0, len(attendees)+1)
	for _, a := range attendees {
		if a.ID != userID {
			kept = append(kept, a)
		}
	}
	if status == models.StatusAttending || status == models.StatusMaybe {
		kept = append(kept, eventmodels.Attendee{
			ID:         userID,
			Name:       userName,
			Status:     status,
			JoinedDate: time.Now(),
		})
	}
	return kept
}

// syncHistory adds or removes the event in the user's attended history.
func syncHistory(history []eventmodels.UserEvent, detail *eventmodels.EventDetail, attending bool) []eventmodels.UserEvent {
	kept := make([]eventmodels.UserEvent, 0, len(history)+1)
	for _, entry := range history {
		if entry.ID != detail.ID {
			kept = append(kept, entry)
		}
	}
	if attending {
		kept = append([]eventmodels.UserEvent{{
			ID:       detail.ID,
			Title:    detail.Title,
			Date:     detail.Date,
			Location: detail.Location,
			Image:    detail.Image,
		}}, kept...)
	}
	return kept
}

func statusText(status string) string {
	switch status {
	case models.StatusAttending:
		return "asistirá"
	case models.StatusMaybe:
		return "tal vez asista"
	default:
		return "no asistirá"
	}
}
