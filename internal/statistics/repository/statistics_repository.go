package repository

import (
	"errors"
	"time"

	apperrors "github.com/alex909w/eventify/internal/common/errors"
	"github.com/alex909w/eventify/internal/statistics/models"
	"github.com/alex909w/eventify/internal/store"
)

// ========== USER PROFILE ==========

// GetProfile returns the user's counters, zeroed for new users.
func GetProfile(userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := store.GetJSON(store.UserProfileKey(userID), &profile)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return &models.UserProfile{
				UID:         userID,
				LastUpdated: time.Now(),
			}, nil
		}
		return nil, apperrors.Storage("failed to fetch profile", err.Error())
	}
	return &profile, nil
}

// SaveProfile overwrites the user's counters.
func SaveProfile(profile *models.UserProfile) error {
	profile.LastUpdated = time.Now()
	if err := store.SetJSON(store.UserProfileKey(profile.UID), profile); err != nil {
		return apperrors.Storage("failed to save profile", err.Error())
	}
	return nil
}

// ========== STATISTICS CACHE ==========

// GetCached returns the cached statistics, nil when nothing is cached yet.
func GetCached(userID string) (*models.UserStatistics, error) {
	var stats models.UserStatistics
	err := store.GetJSON(store.UserStatisticsKey(userID), &stats)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, apperrors.Storage("failed to fetch statistics", err.Error())
	}
	return &stats, nil
}

// SaveCached overwrites the cached statistics.
func SaveCached(stats *models.UserStatistics) error {
	if err := store.SetJSON(store.UserStatisticsKey(stats.UserID), stats); err != nil {
		return apperrors.Storage("failed to cache statistics", err.Error())
	}
	return nil
}
