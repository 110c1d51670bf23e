package domain

import (
	"context"
	"errors"
)

var (
	// ErrActivityNotFound is returned when the named activity is not in the catalog.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the email is already on the activity roster.
	ErrAlreadySignedUp = errors.New("participant already signed up")
	// ErrNotSignedUp indicates the email is not on the activity roster.
	ErrNotSignedUp = errors.New("participant not signed up")
	// ErrActivityFull indicates the roster has reached max participants.
	ErrActivityFull = errors.New("activity is full")
	// ErrInvalidEmail indicates the participant identifier is not a usable email address.
	ErrInvalidEmail = errors.New("invalid email address")
)

// Activity is a named enrollable offering with descriptive metadata and a roster.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft reports remaining roster capacity.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Catalog exposes the activity store. Implementations must apply the
// roster invariants (existence, duplicate, capacity) atomically.
type Catalog interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (*Activity, error)
}
