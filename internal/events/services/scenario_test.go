package services

import (
	"testing"

	apperrors "github.com/alex909w/eventify/internal/common/errors"
	notifservices "github.com/alex909w/eventify/internal/notifications/services"
	ratingmodels "github.com/alex909w/eventify/internal/ratings/models"
	ratingservices "github.com/alex909w/eventify/internal/ratings/services"
	rsvpmodels "github.com/alex909w/eventify/internal/rsvp/models"
	rsvpservices "github.com/alex909w/eventify/internal/rsvp/services"
	statservices "github.com/alex909w/eventify/internal/statistics/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEventLifecycleFlow walks one event through its whole life: created,
// answered, rated, reflected in the organizer's and guest's statistics,
// and finally deleted with every dependent record gone.
func TestEventLifecycleFlow(t *testing.T) {
	setupStore(t)

	detail, err := Create(validCreateRequest(), "org-1", "Ana")
	require.NoError(t, err)
	eventID := detail.ID

	resp, err := rsvpservices.Set(eventID, "guest-1", "Luis", rsvpmodels.StatusAttending)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Attendees)

	seen, err := Get(eventID, "guest-1")
	require.NoError(t, err)
	assert.True(t, seen.IsAttending)

	rated, err := ratingservices.AddComment(eventID, "guest-1", "Luis", ratingmodels.AddCommentRequest{
		Rating:  5,
		Comment: "Gran evento",
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, rated.AverageRating)

	// Create, RSVP and comment each land in the organizer's stream
	stream, err := notifservices.List("org-1")
	require.NoError(t, err)
	assert.Equal(t, 3, stream.Total)

	guestStats, err := statservices.Get("guest-1")
	require.NoError(t, err)
	assert.Equal(t, 1, guestStats.TotalEventsAttended)
	assert.Equal(t, 1, guestStats.TotalComments)

	orgStats, err := statservices.Get("org-1")
	require.NoError(t, err)
	assert.Equal(t, 1, orgStats.TotalEventsOrganized)
	assert.Equal(t, 1, orgStats.TotalAttendeesReceived)
	assert.Equal(t, 1, orgStats.SuccessfulEvents)

	require.NoError(t, Delete(eventID, "org-1"))

	status, err := rsvpservices.Get(eventID, "guest-1")
	require.NoError(t, err)
	assert.Equal(t, rsvpmodels.StatusPending, status, "RSVP records go with the event")

	_, err = Get(eventID, "guest-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	guestStats, err = statservices.Compute("guest-1")
	require.NoError(t, err)
	assert.Equal(t, 0, guestStats.TotalEventsAttended)
}
