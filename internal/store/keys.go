package store

import "fmt"

// Key namespace. Every record lives under one of these, mirroring the
// event/RSVP/rating/notification layout the repositories expect.
const (
	KeyEvents = "events" // the summary list, newest-created first
)

func EventKey(eventID string) string {
	return "event_" + eventID
}

func AttendeesKey(eventID string) string {
	return "attendees_" + eventID
}

func RatingKey(eventID string) string {
	return "rating_" + eventID
}

func RSVPKey(eventID, userID string) string {
	return fmt.Sprintf("rsvp_%s_%s", eventID, userID)
}

// RSVPPrefix matches every RSVP record for an event, used for cascade deletes.
func RSVPPrefix(eventID string) string {
	return fmt.Sprintf("rsvp_%s_", eventID)
}

func NotificationsKey(userID string) string {
	return "notifications_" + userID
}

func UserProfileKey(userID string) string {
	return "user_profile_" + userID
}

func UserStatisticsKey(userID string) string {
	return "user_statistics_" + userID
}

func EventHistoryKey(userID, kind string) string {
	return fmt.Sprintf("event_history_%s_%s", userID, kind)
}
