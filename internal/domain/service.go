// Package domain defines the business logic for the signup service.
package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"example.com/signup/internal/events"
	"example.com/signup/internal/observability"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Service orchestrates roster reads and mutations over the catalog.
type Service struct {
	catalog Catalog
	events  events.Publisher
}

// NewService constructs a Service.
func NewService(catalog Catalog, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{catalog: catalog, events: publisher}
}

// ListActivities returns the catalog keyed by activity name, optionally
// filtered by a case-insensitive substring match on the name.
func (s *Service) ListActivities(ctx context.Context, query string) (map[string]Activity, error) {
	activities, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return activities, nil
	}

	filtered := make(map[string]Activity, len(activities))
	for name, activity := range activities {
		if strings.Contains(strings.ToLower(name), normalized) {
			filtered[name] = activity
		}
	}
	return filtered, nil
}

// GetActivity retrieves a single activity by name.
func (s *Service) GetActivity(ctx context.Context, name string) (*Activity, error) {
	activity, err := s.catalog.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

// Signup enrolls the email in the named activity and emits a roster event.
func (s *Service) Signup(ctx context.Context, name, email string) (*Activity, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	activity, err := s.catalog.AddParticipant(ctx, name, email)
	if err != nil {
		return nil, err
	}

	evt := events.ParticipantSignedUp{
		EventID:        uuid.NewString(),
		Activity:       activity.Name,
		Email:          email,
		RemainingSpots: activity.SpotsLeft(),
		OccurredAt:     time.Now().UTC(),
	}
	if err := s.events.SignedUp(ctx, evt); err != nil {
		return nil, fmt.Errorf("event publish: %w", err)
	}

	observability.RecordSignup(activity.Name, len(activity.Participants))
	return activity, nil
}

// Unregister removes the email from the named activity and emits a roster event.
func (s *Service) Unregister(ctx context.Context, name, email string) (*Activity, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	activity, err := s.catalog.RemoveParticipant(ctx, name, email)
	if err != nil {
		return nil, err
	}

	evt := events.ParticipantUnregistered{
		EventID:        uuid.NewString(),
		Activity:       activity.Name,
		Email:          email,
		RemainingSpots: activity.SpotsLeft(),
		OccurredAt:     time.Now().UTC(),
	}
	if err := s.events.Unregistered(ctx, evt); err != nil {
		return nil, fmt.Errorf("event publish: %w", err)
	}

	observability.RecordUnregister(activity.Name, len(activity.Participants))
	return activity, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return email, nil
}
