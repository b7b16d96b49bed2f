package models

import "time"

// UserProfile holds the per-user counters stored under user_profile_<uid>
type UserProfile struct {
	UID            string    `json:"uid"`
	EventsCreated  int       `json:"events_created"`
	EventsAttended int       `json:"events_attended"`
	LastUpdated    time.Time `json:"last_updated"`
}

// MonthActivity is one column of the monthly activity chart
type MonthActivity struct {
	Month  string `json:"month"` // e.g. "Jun"
	Events int    `json:"events"`
}

// CategoryCount is one entry of the favorite-category ranking
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Achievement is a threshold-unlocked badge
type Achievement struct {
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Icon         string     `json:"icon"`
	Unlocked     bool       `json:"unlocked"`
	UnlockedDate *time.Time `json:"unlocked_date,omitempty"`
}

// UserStatistics is the derived aggregate cached under user_statistics_<uid>
type UserStatistics struct {
	UserID                 string          `json:"user_id"`
	TotalEventsOrganized   int             `json:"total_events_organized"`
	TotalEventsAttended    int             `json:"total_events_attended"`
	TotalComments          int             `json:"total_comments"`
	AverageRatingGiven     float64         `json:"average_rating_given"`
	TotalAttendeesReceived int             `json:"total_attendees_received"`
	AverageRatingReceived  float64         `json:"average_rating_received"`
	TotalCommentsReceived  int             `json:"total_comments_received"`
	SuccessfulEvents       int             `json:"successful_events"` // events with average rating > 4.0
	MonthlyActivity        []MonthActivity `json:"monthly_activity"`
	FavoriteCategories     []CategoryCount `json:"favorite_categories"`
	Achievements           []Achievement   `json:"achievements"`
	UpdatedAt              time.Time       `json:"updated_at"`
}
