package repository

import (
	"errors"

	apperrors "github.com/alex909w/eventify/internal/common/errors"
	"github.com/alex909w/eventify/internal/ratings/models"
	"github.com/alex909w/eventify/internal/store"
)

// Get returns the rating aggregate for an event. Events that were never
// rated get the zero-value aggregate, not an error.
func Get(eventID string) (*models.EventRating, error) {
	var rating models.EventRating
	err := store.GetJSON(store.RatingKey(eventID), &rating)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return Default(eventID), nil
		}
		return nil, apperrors.Storage("failed to fetch rating", err.Error())
	}
	return &rating, nil
}

// Save overwrites the rating aggregate for an event.
func Save(rating *models.EventRating) error {
	if err := store.SetJSON(store.RatingKey(rating.EventID), rating); err != nil {
		return apperrors.Storage("failed to save rating", err.Error())
	}
	return nil
}

// StageDefault stages an empty aggregate into a batch, used at event creation.
func StageDefault(b *store.Batch, eventID string) error {
	return b.SetJSON(store.RatingKey(eventID), Default(eventID))
}

// Default returns the zero-value aggregate for an event.
func Default(eventID string) *models.EventRating {
	return &models.EventRating{
		EventID:       eventID,
		AverageRating: 0,
		TotalRatings:  0,
		Comments:      []models.Comment{},
	}
}
