package services

import (
	"time"

	"github.com/alex909w/eventify/internal/statistics/models"
)

// Achievement thresholds are fixed: a badge unlocks the moment its counter
// crosses the value and never re-locks.
const (
	thresholdFirstEvent      = 1  // events organized
	thresholdOrganizerNovice = 5  // events organized
	thresholdSocialButterfly = 10 // events attended
	thresholdCommentator     = 20 // comments written
	thresholdPopularHost     = 50 // attendees received
	fiveStarMinRatings       = 3
	fiveStarMinAverage       = 4.5
)

// buildAchievements evaluates every badge against the freshly computed
// counters. Unlock dates from a prior computation are preserved.
func buildAchievements(stats *models.UserStatistics, prior *models.UserStatistics) []models.Achievement {
	achievements := []models.Achievement{
		{
			Slug:        "first_event",
			Title:       "Primer Evento",
			Description: "Organiza tu primer evento",
			Icon:        "ribbon-outline",
			Unlocked:    stats.TotalEventsOrganized >= thresholdFirstEvent,
		},
		{
			Slug:        "organizer_novice",
			Title:       "Organizador Novato",
			Description: "Organiza 5 eventos",
			Icon:        "calendar-outline",
			Unlocked:    stats.TotalEventsOrganized >= thresholdOrganizerNovice,
		},
		{
			Slug:        "social_butterfly",
			Title:       "Participante Activo",
			Description: "Asiste a 10 eventos",
			Icon:        "people-outline",
			Unlocked:    stats.TotalEventsAttended >= thresholdSocialButterfly,
		},
		{
			Slug:        "commentator",
			Title:       "Comentarista",
			Description: "Escribe 20 comentarios",
			Icon:        "chatbubble-outline",
			Unlocked:    stats.TotalComments >= thresholdCommentator,
		},
		{
			Slug:        "popular_host",
			Title:       "Anfitrión Popular",
			Description: "Recibe 50 asistentes en tus eventos",
			Icon:        "star-outline",
			Unlocked:    stats.TotalAttendeesReceived >= thresholdPopularHost,
		},
		{
			Slug:        "five_star_host",
			Title:       "Anfitrión Cinco Estrellas",
			Description: "Mantén un rating promedio de 4.5 con al menos 3 calificaciones",
			Icon:        "trophy-outline",
			Unlocked:    stats.AverageRatingReceived >= fiveStarMinAverage && stats.TotalCommentsReceived >= fiveStarMinRatings,
		},
	}

	now := time.Now()
	for i := range achievements {
		if !achievements[i].Unlocked {
			continue
		}
		if date := priorUnlockDate(prior, achievements[i].Slug); date != nil {
			achievements[i].UnlockedDate = date
		} else {
			achievements[i].UnlockedDate = &now
		}
	}
	return achievements
}

func priorUnlockDate(prior *models.UserStatistics, slug string) *time.Time {
	if prior == nil {
		return nil
	}
	for _, a := range prior.Achievements {
		if a.Slug == slug && a.Unlocked && a.UnlockedDate != nil {
			return a.UnlockedDate
		}
	}
	return nil
}
