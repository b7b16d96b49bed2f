package services

import (
	"sort"
	"strings"
	"time"

	eventsrepo "github.com/alex909w/eventify/internal/events/repository"
	ratingsrepo "github.com/alex909w/eventify/internal/ratings/repository"
	rsvpmodels "github.com/alex909w/eventify/internal/rsvp/models"
	rsvprepo "github.com/alex909w/eventify/internal/rsvp/repository"
	"github.com/alex909w/eventify/internal/statistics/models"
	"github.com/alex909w/eventify/internal/statistics/repository"
	"github.com/alex909w/eventify/internal/store"
	"github.com/alex909w/eventify/pkg/logger"
	"go.uber.org/zap"
)

// monthlyWindow is how many trailing months the activity chart covers.
const monthlyWindow = 6

// Get returns the user's statistics, recomputing on a cache miss.
func Get(userID string) (*models.UserStatistics, error) {
	cached, err := repository.GetCached(userID)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}
	return Compute(userID)
}

// Compute performs the full re-scan over events, RSVPs and ratings, derives
// every counter and achievement, and overwrites the cache. There is no
// incremental maintenance: mutating services call Invalidate after each write.
func Compute(userID string) (*models.UserStatistics, error) {
	summaries, err := eventsrepo.ListSummaries()
	if err != nil {
		return nil, err
	}

	prior, err := repository.GetCached(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := &models.UserStatistics{
		UserID:             userID,
		MonthlyActivity:    emptyMonthly(now),
		FavoriteCategories: []models.CategoryCount{},
	}

	categories := make(map[string]int)
	ratingSumGiven := 0
	ratingCountGiven := 0
	ratingSumReceived := 0.0
	ratingCountReceived := 0

	attending, err := attendingRecords(userID)
	if err != nil {
		return nil, err
	}
	stats.TotalEventsAttended = len(attending)
	for _, record := range attending {
		bumpMonth(stats.MonthlyActivity, now, record.Timestamp)
	}

	for _, summary := range summaries {
		organized := summary.OrganizerID == userID
		if organized {
			stats.TotalEventsOrganized++
			bumpMonth(stats.MonthlyActivity, now, summary.CreatedAt)
			categories[summary.Category]++
		}
		if _, ok := attending[summary.ID]; ok {
			categories[summary.Category]++
		}

		rating, err := ratingsrepo.Get(summary.ID)
		if err != nil {
			return nil, err
		}

		// Comments the user wrote, on any event
		for _, comment := range rating.Comments {
			if comment.UserID == userID {
				stats.TotalComments++
				ratingSumGiven += comment.Rating
				ratingCountGiven++
			}
		}

		if organized {
			detail, err := eventsrepo.GetDetail(summary.ID)
			if err != nil {
				return nil, err
			}
			// Guests received: the organizer's own seat doesn't count
			if detail.Attendees > 1 {
				stats.TotalAttendeesReceived += detail.Attendees - 1
			}
			stats.TotalCommentsReceived += len(rating.Comments)
			if rating.TotalRatings > 0 {
				ratingSumReceived += rating.AverageRating * float64(rating.TotalRatings)
				ratingCountReceived += rating.TotalRatings
			}
			if rating.AverageRating > 4.0 {
				stats.SuccessfulEvents++
			}
		}
	}

	if ratingCountGiven > 0 {
		stats.AverageRatingGiven = float64(ratingSumGiven) / float64(ratingCountGiven)
	}
	if ratingCountReceived > 0 {
		stats.AverageRatingReceived = ratingSumReceived / float64(ratingCountReceived)
	}

	stats.FavoriteCategories = rankCategories(categories)
	stats.Achievements = buildAchievements(stats, prior)
	stats.UpdatedAt = now

	if err := repository.SaveCached(stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Invalidate recomputes the statistics and profile counters after a mutation.
// Best-effort: a failed recompute is logged, the triggering operation stands.
func Invalidate(userID string) {
	if userID == "" {
		return
	}
	if _, err := Compute(userID); err != nil {
		logger.Warn("statistics recompute failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return
	}
	if err := RefreshProfile(userID); err != nil {
		logger.Warn("profile refresh failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

// GetProfile returns the user's counter record.
func GetProfile(userID string) (*models.UserProfile, error) {
	return repository.GetProfile(userID)
}

// RefreshProfile recomputes the per-user counters from the event and RSVP
// repositories and overwrites the stored record.
func RefreshProfile(userID string) error {
	summaries, err := eventsrepo.ListSummaries()
	if err != nil {
		return err
	}

	profile, err := repository.GetProfile(userID)
	if err != nil {
		return err
	}

	created := 0
	for _, summary := range summaries {
		if summary.OrganizerID == userID {
			created++
		}
	}

	attending, err := attendingRecords(userID)
	if err != nil {
		return err
	}

	profile.EventsCreated = created
	profile.EventsAttended = len(attending)
	return repository.SaveProfile(profile)
}

// attendingRecords scans the RSVP namespace for the user's attending records,
// keyed by event id. Keys are rsvp_<eventId>_<userId> and event ids never
// contain underscores, so the event id is the segment before the first one.
func attendingRecords(userID string) (map[string]rsvpmodels.RSVPRecord, error) {
	keys, err := store.DB.Keys("rsvp_")
	if err != nil {
		return nil, err
	}

	records := make(map[string]rsvpmodels.RSVPRecord)
	for _, key := range keys {
		eventID, owner, ok := strings.Cut(strings.TrimPrefix(key, "rsvp_"), "_")
		if !ok || owner != userID {
			continue
		}
		record, err := rsvprepo.GetRecord(eventID, userID)
		if err != nil {
			return nil, err
		}
		if record != nil && record.UserID == userID && record.Status == rsvpmodels.StatusAttending {
			records[eventID] = *record
		}
	}
	return records, nil
}

// emptyMonthly builds the trailing window of month columns, oldest first.
// Stepping back from the first of the month keeps AddDate from normalizing
// day 29-31 into the wrong month.
func emptyMonthly(now time.Time) []models.MonthActivity {
	base := monthStart(now)
	months := make([]models.MonthActivity, 0, monthlyWindow)
	for i := monthlyWindow - 1; i >= 0; i-- {
		m := base.AddDate(0, -i, 0)
		months = append(months, models.MonthActivity{
			Month: m.Month().String()[:3],
		})
	}
	return months
}

// bumpMonth increments the column matching the timestamp, if in window.
func bumpMonth(months []models.MonthActivity, now, ts time.Time) {
	if ts.IsZero() {
		return
	}
	base := monthStart(now)
	for i := range months {
		m := base.AddDate(0, -(monthlyWindow - 1 - i), 0)
		if m.Year() == ts.Year() && m.Month() == ts.Month() {
			months[i].Events++
			return
		}
	}
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// rankCategories sorts category counts descending.
func rankCategories(counts map[string]int) []models.CategoryCount {
	ranked := make([]models.CategoryCount, 0, len(counts))
	for category, count := range counts {
		ranked = append(ranked, models.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Category < ranked[j].Category
	})
	return ranked
}
