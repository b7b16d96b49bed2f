package services

import (
	"fmt"
	"strconv"
	"time"

	apperrors "github.com/alex909w/eventify/internal/common/errors"
	"github.com/alex909w/eventify/internal/common/validation"
	"github.com/alex909w/eventify/internal/events/models"
	"github.com/alex909w/eventify/internal/events/repository"
	notifmodels "github.com/alex909w/eventify/internal/notifications/models"
	notifications "github.com/alex909w/eventify/internal/notifications/services"
	ratingsrepo "github.com/alex909w/eventify/internal/ratings/repository"
	rsvpmodels "github.com/alex909w/eventify/internal/rsvp/models"
	rsvprepo "github.com/alex909w/eventify/internal/rsvp/repository"
	statistics "github.com/alex909w/eventify/internal/statistics/services"
	"github.com/alex909w/eventify/internal/store"
)

// List returns every event summary, newest-created first.
func List() (*models.EventListResponse, error) {
	summaries, err := repository.ListSummaries()
	if err != nil {
		return nil, err
	}
	return &models.EventListResponse{
		Events: summaries,
		Total:  len(summaries),
	}, nil
}

// Get returns the full event record. With a viewer id the IsAttending flag
// is derived from the viewer's RSVP; it is never persisted.
func Get(eventID, viewerID string) (*models.EventDetail, error) {
	detail, err := repository.GetDetail(eventID)
	if err != nil {
		return nil, err
	}

	if viewerID != "" {
		status, err := rsvprepo.GetStatus(eventID, viewerID)
		if err != nil {
			return nil, err
		}
		detail.IsAttending = status == rsvpmodels.StatusAttending
	}
	return detail, nil
}

// Create validates the request, builds the summary, detail, organizer
// attendee entry and empty rating aggregate, and writes them in a single
// store transaction. The organizer always counts as the first attendee.
func Create(req models.CreateEventRequest, userID, userName string) (*models.EventDetail, error) {
	if errs := validation.Validate(req); errs != nil {
		return nil, apperrors.Validation("missing required event fields", validation.Details(errs))
	}

	unlock := store.Lock(store.KeyEvents)
	defer unlock()

	summaries, err := repository.ListSummaries()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	eventID := strconv.FormatInt(now.UnixMilli(), 10)
	category := req.Category
	if category == "" {
		category = models.CategoryUpcoming
	}
	image := req.Image
	if image == "" {
		image = "/assets/evento1.jpg"
	}

	summary := models.EventSummary{
		ID:          eventID,
		Title:       req.Title,
		Date:        FormatShortDate(req.Date),
		Location:    req.Location,
		Image:       image,
		Category:    category,
		Organizer:   userName,
		OrganizerID: userID,
		CreatedAt:   now,
	}

	detail := &models.EventDetail{
		ID:          eventID,
		Title:       req.Title,
		Description: req.Description,
		Date:        FormatLongDate(req.Date),
		Time:        FormatTime(req.Date),
		Location:    req.Location,
		Organizer:   userName,
		OrganizerID: userID,
		Image:       image,
		Attendees:   1,
		CreatedAt:   now,
	}

	organizer := models.Attendee{
		ID:         userID,
		Name:       userName,
		Status:     models.AttendeeOrganizer,
		JoinedDate: now,
	}

	history, err := repository.GetHistory(userID, models.HistoryOrganized)
	if err != nil {
		return nil, err
	}
	history = append([]models.UserEvent{{
		ID:          eventID,
		Title:       summary.Title,
		Date:        summary.Date,
		Location:    summary.Location,
		Image:       summary.Image,
		IsOrganizer: true,
	}}, history...)

	batch := store.NewBatch()
	if err := repository.StageSummaries(&batch, append([]models.EventSummary{summary}, summaries...)); err != nil {
		return nil, apperrors.Internal("failed to build event", err.Error())
	}
	if err := repository.StageDetail(&batch, detail); err != nil {
		return nil, apperrors.Internal("failed to build event", err.Error())
	}
	if err := repository.StageAttendees(&batch, eventID, []models.Attendee{organizer}); err != nil {
		return nil, apperrors.Internal("failed to build event", err.Error())
	}
	if err := ratingsrepo.StageDefault(&batch, eventID); err != nil {
		return nil, apperrors.Internal("failed to build event", err.Error())
	}
	if err := repository.StageHistory(&batch, userID, models.HistoryOrganized, history); err != nil {
		return nil, apperrors.Internal("failed to build event", err.Error())
	}

	if err := store.DB.Apply(batch); err != nil {
		return nil, apperrors.Storage("failed to create event", err.Error())
	}

	notifications.Emit(userID, notifmodels.TypeEvent,
		"Evento creado",
		fmt.Sprintf("Tu evento \"%s\" ha sido creado", req.Title),
		eventID,
	)
	statistics.Invalidate(userID)

	return detail, nil
}

// Update overwrites the provided fields on both the summary and the detail
// record. Only the organizer may update an event.
func Update(eventID string, req models.UpdateEventRequest, userID string) (*models.EventDetail, error) {
	// List lock before the event lock, the order every summary mutator uses
	unlockList := store.Lock(store.KeyEvents)
	defer unlockList()
	unlock := store.Lock(eventID)
	defer unlock()

	detail, err := repository.GetDetail(eventID)
	if err != nil {
		return nil, err
	}
	if detail.OrganizerID != userID {
		return nil, apperrors.Forbidden("only the organizer can update this event")
	}

	if req.Title != "" {
		detail.Title = req.Title
	}
	if req.Description != "" {
		detail.Description = req.Description
	}
	if req.Location != "" {
		detail.Location = req.Location
	}
	if req.Image != "" {
		detail.Image = req.Image
	}
	if req.Date != nil {
		detail.Date = FormatLongDate(*req.Date)
		detail.Time = FormatTime(*req.Date)
	}

	summaries, err := repository.ListSummaries()
	if err != nil {
		return nil, err
	}
	for i := range summaries {
		if summaries[i].ID != eventID {
			continue
		}
		if req.Title != "" {
			summaries[i].Title = req.Title
		}
		if req.Location != "" {
			summaries[i].Location = req.Location
		}
		if req.Image != "" {
			summaries[i].Image = req.Image
		}
		if req.Date != nil {
			summaries[i].Date = FormatShortDate(*req.Date)
		}
	}

	batch := store.NewBatch()
	if err := repository.StageSummaries(&batch, summaries); err != nil {
		return nil, apperrors.Internal("failed to build event update", err.Error())
	}
	if err := repository.StageDetail(&batch, detail); err != nil {
		return nil, apperrors.Internal("failed to build event update", err.Error())
	}
	if err := store.DB.Apply(batch); err != nil {
		return nil, apperrors.Storage("failed to update event", err.Error())
	}
	return detail, nil
}

// Delete removes the event and cascades over every dependent record:
// summary, detail, attendee list, rating aggregate and all RSVP records.
// Only the organizer may delete an event.
func Delete(eventID, userID string) error {
	unlockList := store.Lock(store.KeyEvents)
	defer unlockList()
	unlock := store.Lock(eventID)
	defer unlock()

	detail, err := repository.GetDetail(eventID)
	if err != nil {
		return err
	}
	if detail.OrganizerID != userID {
		return apperrors.Forbidden("only the organizer can delete this event")
	}

	summaries, err := repository.ListSummaries()
	if err != nil {
		return err
	}
	remaining := make([]models.EventSummary, 0, len(summaries))
	for _, summary := range summaries {
		if summary.ID != eventID {
			remaining = append(remaining, summary)
		}
	}

	rsvpKeys, err := rsvprepo.KeysForEvent(eventID)
	if err != nil {
		return err
	}

	history, err := repository.GetHistory(userID, models.HistoryOrganized)
	if err != nil {
		return err
	}
	keptHistory := make([]models.UserEvent, 0, len(history))
	for _, entry := range history {
		if entry.ID != eventID {
			keptHistory = append(keptHistory, entry)
		}
	}

	batch := store.NewBatch()
	if err := repository.StageSummaries(&batch, remaining); err != nil {
		return apperrors.Internal("failed to build event delete", err.Error())
	}
	if err := repository.StageHistory(&batch, userID, models.HistoryOrganized, keptHistory); err != nil {
		return apperrors.Internal("failed to build event delete", err.Error())
	}
	batch.Delete = append(batch.Delete,
		store.EventKey(eventID),
		store.AttendeesKey(eventID),
		store.RatingKey(eventID),
	)
	batch.Delete = append(batch.Delete, rsvpKeys...)

	if err := store.DB.Apply(batch); err != nil {
		return apperrors.Storage("failed to delete event", err.Error())
	}

	notifications.Emit(userID, notifmodels.TypeEvent,
		"Evento eliminado",
		fmt.Sprintf("Tu evento \"%s\" ha sido eliminado", detail.Title),
		eventID,
	)
	statistics.Invalidate(userID)

	return nil
}

// Attendees returns the attendee list for an event.
func Attendees(eventID string) (*models.AttendeeListResponse, error) {
	if _, err := repository.GetDetail(eventID); err != nil {
		return nil, err
	}
	attendees, err := repository.GetAttendees(eventID)
	if err != nil {
		return nil, err
	}
	return &models.AttendeeListResponse{
		Attendees: attendees,
		Total:     len(attendees),
	}, nil
}

// UserEvents returns a user's organizing or attending history.
func UserEvents(userID, listType string) (*models.UserEventListResponse, error) {
	var kind string
	switch listType {
	case "organizing":
		kind = models.HistoryOrganized
	case "attending":
		kind = models.HistoryAttended
	default:
		return nil, apperrors.BadRequest("type must be organizing or attending")
	}
	events, err := repository.GetHistory(userID, kind)
	if err != nil {
		return nil, err
	}
	return &models.UserEventListResponse{
		Events: events,
		Total:  len(events),
	}, nil
}
