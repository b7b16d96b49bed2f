package models

import "time"

// RSVP statuses. Pending is the implicit default for users without a record
// and is never written back once any explicit answer exists.
const (
	StatusAttending    = "attending"
	StatusNotAttending = "not_attending"
	StatusMaybe        = "maybe"
	StatusPending      = "pending"
)

// ValidStatus reports whether s is a status a caller may set.
// Pending is excluded: it only exists as the absence of a record.
func ValidStatus(s string) bool {
	switch s {
	case StatusAttending, StatusNotAttending, StatusMaybe:
		return true
	}
	return false
}

// RSVPRecord is one (event, user) attendance answer
type RSVPRecord struct {
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// SetRSVPRequest is the payload for PUT /events/:id/rsvp
type SetRSVPRequest struct {
	Status string `json:"status" validate:"required,oneof=attending not_attending maybe"`
}

// RSVPResponse reports the stored status and the resulting attendee count
type RSVPResponse struct {
	EventID   string `json:"event_id"`
	Status    string `json:"status"`
	Attendees int    `json:"attendees"`
}
