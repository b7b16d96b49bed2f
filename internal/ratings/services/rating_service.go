package services

import (
	"fmt"
	"time"

	apperrors "github.com/alex909w/eventify/internal/common/errors"
	"github.com/alex909w/eventify/internal/common/validation"
	eventsrepo "github.com/alex909w/eventify/internal/events/repository"
	notifmodels "github.com/alex909w/eventify/internal/notifications/models"
	notifications "github.com/alex909w/eventify/internal/notifications/services"
	"github.com/alex909w/eventify/internal/ratings/models"
	"github.com/alex909w/eventify/internal/ratings/repository"
	statistics "github.com/alex909w/eventify/internal/statistics/services"
	"github.com/alex909w/eventify/internal/store"
	"github.com/google/uuid"
)

// Get returns the rating aggregate for an event, zero-valued if unrated.
func Get(eventID string) (*models.EventRating, error) {
	return repository.Get(eventID)
}

// AddComment appends a rated comment and folds its rating into the running
// mean: (oldAvg*oldCount + rating) / (oldCount+1). Ratings are never removed,
// so the incremental mean stays exact. Comments are kept newest first.
func AddComment(eventID, userID, userName string, req models.AddCommentRequest) (*models.EventRating, error) {
	if errs := validation.Validate(req); errs != nil {
		return nil, apperrors.Validation("invalid comment", validation.Details(errs))
	}

	unlock := store.Lock(eventID)
	defer unlock()

	detail, err := eventsrepo.GetDetail(eventID)
	if err != nil {
		return nil, err
	}

	rating, err := repository.Get(eventID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserName:  userName,
		UserPhoto: req.UserPhoto,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Date:      time.Now(),
	}

	oldCount := rating.TotalRatings
	rating.AverageRating = (rating.AverageRating*float64(oldCount) + float64(req.Rating)) / float64(oldCount+1)
	rating.TotalRatings = oldCount + 1
	rating.Comments = append([]models.Comment{comment}, rating.Comments...)

	if err := repository.Save(rating); err != nil {
		return nil, err
	}

	notifications.Emit(detail.OrganizerID, notifmodels.TypeMessage,
		"Nuevo comentario",
		fmt.Sprintf("%s comentó en \"%s\"", userName, detail.Title),
		eventID,
	)
	statistics.Invalidate(userID)
	statistics.Invalidate(detail.OrganizerID)

	return rating, nil
}

// ToggleLike flips the liked flag on a comment and moves its like count by
// exactly one. Toggling twice restores the original state.
func ToggleLike(eventID, commentID, userID string) (*models.Comment, error) {
	unlock := store.Lock(eventID)
	defer unlock()

	rating, err := repository.Get(eventID)
	if err != nil {
		return nil, err
	}

	for i := range rating.Comments {
		if rating.Comments[i].ID != commentID {
			continue
		}
		if rating.Comments[i].IsLiked {
			rating.Comments[i].IsLiked = false
			rating.Comments[i].Likes--
		} else {
			rating.Comments[i].IsLiked = true
			rating.Comments[i].Likes++
		}
		if rating.Comments[i].Likes < 0 {
			rating.Comments[i].Likes = 0
		}
		if err := repository.Save(rating); err != nil {
			return nil, err
		}
		comment := rating.Comments[i]
		return &comment, nil
	}
	return nil, apperrors.NotFound("comment")
}

// Report acknowledges a comment report. The comment itself is untouched:
// there is no moderation queue, only a receipt in the reporter's stream.
func Report(eventID, commentID, reporterID string) error {
	rating, err := repository.Get(eventID)
	if err != nil {
		return err
	}

	for _, comment := range rating.Comments {
		if comment.ID == commentID {
			notifications.Emit(reporterID, notifmodels.TypeSystem,
				"Reporte recibido",
				"Gracias por tu reporte. Revisaremos el comentario.",
				eventID,
			)
			return nil
		}
	}
	return apperrors.NotFound("comment")
}
