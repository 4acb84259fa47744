package models

import "time"

// Comment is one entry in an event's append-only communication log.
// Notifications are comments emitted by the system, e.g. after an
// approval decision.
type Comment struct {
	ID             string    `json:"id"`
	EventID        string    `json:"eventId"`
	Author         string    `json:"author"`
	Department     string    `json:"department"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
	IsNotification bool      `json:"isNotification,omitempty"`
}
