package models

import "time"

// Comment is a single rating + comment on an event, newest first in storage
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserPhoto string    `json:"user_photo,omitempty"`
	Rating    int       `json:"rating"` // 1-5
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
	Likes     int       `json:"likes"`
	IsLiked   bool      `json:"is_liked"`
}

// EventRating is the per-event aggregate stored under rating_<id>.
// AverageRating is a running mean over every comment ever added;
// comments are never removed, so the incremental update stays exact.
type EventRating struct {
	EventID       string    `json:"event_id"`
	AverageRating float64   `json:"average_rating"`
	TotalRatings  int       `json:"total_ratings"`
	Comments      []Comment `json:"comments"`
}

// AddCommentRequest is the payload for POST /events/:id/comments
type AddCommentRequest struct {
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required"`
	UserPhoto string `json:"user_photo"`
}
