package services

import (
	"testing"
	"time"

	eventmodels "github.com/alex909w/eventify/internal/events/models"
	eventsrepo "github.com/alex909w/eventify/internal/events/repository"
	ratingmodels "github.com/alex909w/eventify/internal/ratings/models"
	ratingsrepo "github.com/alex909w/eventify/internal/ratings/repository"
	rsvpmodels "github.com/alex909w/eventify/internal/rsvp/models"
	rsvprepo "github.com/alex909w/eventify/internal/rsvp/repository"
	"github.com/alex909w/eventify/internal/statistics/models"
	"github.com/alex909w/eventify/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) {
	t.Helper()
	store.DB = store.OpenMemory()
}

// seedOrganizedEvent writes the summary, detail and rating aggregate of one
// event organized by the given user
func seedOrganizedEvent(t *testing.T, eventID, organizerID, category string, attendees int, rating *ratingmodels.EventRating) {
	t.Helper()

	summaries, err := eventsrepo.ListSummaries()
	require.NoError(t, err)
	summaries = append(summaries, eventmodels.EventSummary{
		ID:          eventID,
		Title:       "Evento " + eventID,
		Category:    category,
		OrganizerID: organizerID,
		CreatedAt:   time.Now(),
	})
	require.NoError(t, eventsrepo.SaveSummaries(summaries))
	require.NoError(t, eventsrepo.SaveDetail(&eventmodels.EventDetail{
		ID:          eventID,
		Title:       "Evento " + eventID,
		OrganizerID: organizerID,
		Attendees:   attendees,
		CreatedAt:   time.Now(),
	}))
	if rating != nil {
		rating.EventID = eventID
		require.NoError(t, ratingsrepo.Save(rating))
	}
}

func seedAttendance(t *testing.T, eventID, userID string) {
	t.Helper()
	require.NoError(t, rsvprepo.Save(&rsvpmodels.RSVPRecord{
		EventID:   eventID,
		UserID:    userID,
		Status:    rsvpmodels.StatusAttending,
		Timestamp: time.Now(),
	}))
}

func TestCompute_NewUser(t *testing.T) {
	setupStore(t)

	stats, err := Compute("user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", stats.UserID)
	assert.Equal(t, 0, stats.TotalEventsOrganized)
	assert.Equal(t, 0, stats.TotalEventsAttended)
	assert.Equal(t, 0, stats.TotalComments)
	assert.Equal(t, 0.0, stats.AverageRatingGiven)
	assert.Len(t, stats.MonthlyActivity, 6)
	assert.Empty(t, stats.FavoriteCategories)

	for _, a := range stats.Achievements {
		assert.False(t, a.Unlocked, "achievement %s must start locked", a.Slug)
		assert.Nil(t, a.UnlockedDate)
	}
}

func TestCompute_OrganizerCounters(t *testing.T) {
	setupStore(t)

	seedOrganizedEvent(t, "ev-1", "user-1", eventmodels.CategoryFeatured, 5, &ratingmodels.EventRating{
		AverageRating: 4.5,
		TotalRatings:  2,
		Comments: []ratingmodels.Comment{
			{ID: "c1", UserID: "guest-1", Rating: 5},
			{ID: "c2", UserID: "guest-2", Rating: 4},
		},
	})
	seedOrganizedEvent(t, "ev-2", "user-1", eventmodels.CategoryUpcoming, 1, nil)

	stats, err := Compute("user-1")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalEventsOrganized)
	assert.Equal(t, 4, stats.TotalAttendeesReceived, "the organizer's own seat never counts")
	assert.Equal(t, 2, stats.TotalCommentsReceived)
	assert.InDelta(t, 4.5, stats.AverageRatingReceived, 1e-9)
	assert.Equal(t, 1, stats.SuccessfulEvents, "only ev-1 clears the 4.0 bar")

	// first_event unlocks at one organized event, organizer_novice needs five
	byID := achievementsBySlug(stats.Achievements)
	assert.True(t, byID["first_event"].Unlocked)
	assert.NotNil(t, byID["first_event"].UnlockedDate)
	assert.False(t, byID["organizer_novice"].Unlocked)
}

func TestCompute_AttendanceAndComments(t *testing.T) {
	setupStore(t)

	seedOrganizedEvent(t, "ev-1", "org-1", eventmodels.CategoryFeatured, 3, &ratingmodels.EventRating{
		AverageRating: 4.0,
		TotalRatings:  2,
		Comments: []ratingmodels.Comment{
			{ID: "c1", UserID: "user-1", Rating: 5},
			{ID: "c2", UserID: "user-1", Rating: 3},
		},
	})
	seedAttendance(t, "ev-1", "user-1")

	stats, err := Compute("user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalEventsAttended)
	assert.Equal(t, 2, stats.TotalComments)
	assert.InDelta(t, 4.0, stats.AverageRatingGiven, 1e-9)

	// Attendance counts toward the category ranking
	require.NotEmpty(t, stats.FavoriteCategories)
	assert.Equal(t, eventmodels.CategoryFeatured, stats.FavoriteCategories[0].Category)
}

func TestCompute_WeightedAverageReceived(t *testing.T) {
	setupStore(t)

	seedOrganizedEvent(t, "ev-1", "user-1", eventmodels.CategoryFeatured, 1, &ratingmodels.EventRating{
		AverageRating: 5.0,
		TotalRatings:  1,
		Comments:      []ratingmodels.Comment{{ID: "c1", UserID: "g1", Rating: 5}},
	})
	seedOrganizedEvent(t, "ev-2", "user-1", eventmodels.CategoryFeatured, 1, &ratingmodels.EventRating{
		AverageRating: 2.0,
		TotalRatings:  3,
		Comments: []ratingmodels.Comment{
			{ID: "c2", UserID: "g2", Rating: 2},
			{ID: "c3", UserID: "g3", Rating: 2},
			{ID: "c4", UserID: "g4", Rating: 2},
		},
	})

	stats, err := Compute("user-1")
	require.NoError(t, err)

	// (5*1 + 2*3) / 4 = 2.75, weighted by rating counts
	assert.InDelta(t, 2.75, stats.AverageRatingReceived, 1e-9)
}

func TestCompute_PreservesPriorUnlockDates(t *testing.T) {
	setupStore(t)

	seedOrganizedEvent(t, "ev-1", "user-1", eventmodels.CategoryUpcoming, 1, nil)

	first, err := Compute("user-1")
	require.NoError(t, err)
	firstDate := achievementsBySlug(first.Achievements)["first_event"].UnlockedDate
	require.NotNil(t, firstDate)

	second, err := Compute("user-1")
	require.NoError(t, err)
	secondDate := achievementsBySlug(second.Achievements)["first_event"].UnlockedDate
	require.NotNil(t, secondDate)
	assert.True(t, firstDate.Equal(*secondDate), "unlock date must survive recomputation")
}

func TestCompute_AttendanceKeyedByExactUser(t *testing.T) {
	setupStore(t)

	seedOrganizedEvent(t, "100", "org-1", eventmodels.CategoryUpcoming, 2, nil)
	seedAttendance(t, "100", "alice_bob")

	// "bob" is a suffix of "alice_bob"; the record must not bleed over
	stats, err := Compute("bob")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalEventsAttended)

	stats, err = Compute("alice_bob")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalEventsAttended)
}

func TestMonthlyActivity_EndOfMonthAnchor(t *testing.T) {
	// March 31 has no Feb 31; columns must anchor at the first of the month
	now := time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC)

	months := emptyMonthly(now)
	require.Len(t, months, monthlyWindow)
	labels := make([]string, 0, len(months))
	for _, m := range months {
		labels = append(labels, m.Month)
	}
	assert.Equal(t, []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}, labels)

	bumpMonth(months, now, time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, months[4].Events)

	bumpMonth(months, now, now)
	assert.Equal(t, 1, months[5].Events)

	// Out of window, silently dropped
	bumpMonth(months, now, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	total := 0
	for _, m := range months {
		total += m.Events
	}
	assert.Equal(t, 2, total)
}

func TestGet_UsesCacheUntilInvalidated(t *testing.T) {
	setupStore(t)

	_, err := Compute("user-1")
	require.NoError(t, err)

	// A mutation without Invalidate is not visible through Get
	seedOrganizedEvent(t, "ev-1", "user-1", eventmodels.CategoryUpcoming, 1, nil)

	cached, err := Get("user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, cached.TotalEventsOrganized)

	Invalidate("user-1")

	fresh, err := Get("user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.TotalEventsOrganized)
}

func TestRefreshProfile(t *testing.T) {
	setupStore(t)

	seedOrganizedEvent(t, "ev-1", "user-1", eventmodels.CategoryUpcoming, 1, nil)
	seedOrganizedEvent(t, "ev-2", "org-2", eventmodels.CategoryUpcoming, 2, nil)
	seedAttendance(t, "ev-2", "user-1")

	require.NoError(t, RefreshProfile("user-1"))

	profile, err := GetProfile("user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.UID)
	assert.Equal(t, 1, profile.EventsCreated)
	assert.Equal(t, 1, profile.EventsAttended)
	assert.False(t, profile.LastUpdated.IsZero())
}

func achievementsBySlug(achievements []models.Achievement) map[string]models.Achievement {
	bySlug := make(map[string]models.Achievement, len(achievements))
	for _, a := range achievements {
		bySlug[a.Slug] = a
	}
	return bySlug
}
