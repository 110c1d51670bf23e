// Package catalog holds the in-memory activity store.
package catalog

import (
	"context"
	"slices"
	"sync"

	"example.com/signup/internal/domain"
)

// InMemoryCatalog stores activities in process memory for the process lifetime.
type InMemoryCatalog struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryCatalog constructs a catalog populated from the given seed.
// The seed map keys win over any Name set on the seed values.
func NewInMemoryCatalog(seed map[string]domain.Activity) *InMemoryCatalog {
	c := &InMemoryCatalog{activities: make(map[string]domain.Activity, len(seed))}
	for name, activity := range seed {
		activity.Name = name
		activity.Participants = slices.Clone(activity.Participants)
		c.activities[name] = activity
	}
	return c
}

// List returns a snapshot of the full catalog keyed by activity name.
func (c *InMemoryCatalog) List(ctx context.Context) (map[string]domain.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]domain.Activity, len(c.activities))
	for name, activity := range c.activities {
		activity.Participants = slices.Clone(activity.Participants)
		out[name] = activity
	}
	return out, nil
}

// Get returns a copy of the activity, or nil when absent.
func (c *InMemoryCatalog) Get(ctx context.Context, name string) (*domain.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	activity, ok := c.activities[name]
	if !ok {
		return nil, nil
	}
	activity.Participants = slices.Clone(activity.Participants)
	return &activity, nil
}

// AddParticipant appends the email to the roster. Existence, duplicate,
// and capacity checks happen under the same write lock as the mutation.
func (c *InMemoryCatalog) AddParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	activity, ok := c.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if slices.Contains(activity.Participants, email) {
		return nil, domain.ErrAlreadySignedUp
	}
	if activity.MaxParticipants > 0 && len(activity.Participants) >= activity.MaxParticipants {
		return nil, domain.ErrActivityFull
	}

	activity.Participants = append(slices.Clone(activity.Participants), email)
	c.activities[name] = activity

	snapshot := activity
	snapshot.Participants = slices.Clone(activity.Participants)
	return &snapshot, nil
}

// RemoveParticipant deletes the email from the roster.
func (c *InMemoryCatalog) RemoveParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	activity, ok := c.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return nil, domain.ErrNotSignedUp
	}

	participants := slices.Clone(activity.Participants)
	activity.Participants = slices.Delete(participants, idx, idx+1)
	c.activities[name] = activity

	snapshot := activity
	snapshot.Participants = slices.Clone(activity.Participants)
	return &snapshot, nil
}
