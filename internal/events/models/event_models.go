package models

import "time"

// Event categories
const (
	CategoryFeatured = "featured"
	CategoryUpcoming = "upcoming"
)

// Attendee statuses
const (
	AttendeeOrganizer = "organizer"
	AttendeeAttending = "attending"
	AttendeeMaybe     = "maybe"
)

// EventSummary is the card-level event record kept in the summary list
type EventSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"` // display string, e.g. "15 Jun 2025"
	Location    string    `json:"location"`
	Image       string    `json:"image"`
	Category    string    `json:"category"` // featured, upcoming
	Organizer   string    `json:"organizer"`
	OrganizerID string    `json:"organizer_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventDetail is the full event record stored under event_<id>
type EventDetail struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Organizer   string    `json:"organizer"`
	OrganizerID string    `json:"organizer_id"`
	Image       string    `json:"image"`
	Attendees   int       `json:"attendees"` // always >= 1, the organizer counts
	IsAttending bool      `json:"is_attending,omitempty"` // derived per viewer, never persisted
	CreatedAt   time.Time `json:"created_at"`
}

// Attendee is one entry in the attendees_<id> list
type Attendee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	Status     string    `json:"status"` // attending, maybe, organizer
	JoinedDate time.Time `json:"joined_date"`
}

// UserEvent is one entry in a user's organizing/attending history
type UserEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	IsOrganizer bool   `json:"is_organizer"`
}

// History kinds for event_history_<uid>_<kind>
const (
	HistoryOrganized = "organized"
	HistoryAttended  = "attended"
)

// CreateEventRequest is the payload for POST /events
type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Image       string    `json:"image"`
	Category    string    `json:"category" validate:"omitempty,oneof=featured upcoming"`
}

// UpdateEventRequest is the payload for PUT /events/:id.
// Empty fields leave the stored value untouched.
type UpdateEventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Date        *time.Time `json:"date"`
	Image       string     `json:"image"`
}

// EventListResponse wraps the summary list
type EventListResponse struct {
	Events []EventSummary `json:"events"`
	Total  int            `json:"total"`
}

// AttendeeListResponse wraps the attendee list
type AttendeeListResponse struct {
	Attendees []Attendee `json:"attendees"`
	Total     int        `json:"total"`
}

// UserEventListResponse wraps a user's event history
type UserEventListResponse struct {
	Events []UserEvent `json:"events"`
	Total  int         `json:"total"`
}
