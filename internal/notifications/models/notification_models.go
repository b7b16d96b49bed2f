package models

import "time"

// Notification types
const (
	TypeEvent    = "event"
	TypeMessage  = "message"
	TypeReminder = "reminder"
	TypeSystem   = "system"
	TypeRSVP     = "rsvp"
)

// Notification is one entry in a user's stream, newest first
type Notification struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
	Type    string    `json:"type"`
	EventID string    `json:"event_id,omitempty"`
}

// NotificationListResponse wraps a user's stream
type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
	Unread        int            `json:"unread"`
}

// UnreadCountResponse reports the number of unread notifications
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}
