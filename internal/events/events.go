// Package events defines roster change payloads shared between the API
// service and downstream consumers.
package events

import "time"

// Event type header values attached to roster messages.
const (
	TypeSignedUp     = "signup.registered"
	TypeUnregistered = "signup.unregistered"
)

// ParticipantSignedUp is emitted when an email is added to an activity roster.
type ParticipantSignedUp struct {
	EventID        string    `json:"event_id"`
	Activity       string    `json:"activity"`
	Email          string    `json:"email"`
	RemainingSpots int       `json:"remaining_spots"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// ParticipantUnregistered is emitted when an email is removed from an activity roster.
type ParticipantUnregistered struct {
	EventID        string    `json:"event_id"`
	Activity       string    `json:"activity"`
	Email          string    `json:"email"`
	RemainingSpots int       `json:"remaining_spots"`
	OccurredAt     time.Time `json:"occurred_at"`
}
