package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/signup/internal/catalog"
	"example.com/signup/internal/domain"
	"example.com/signup/internal/events"
)

func newService(t *testing.T, seed map[string]domain.Activity) (*domain.Service, *recordingPublisher) {
	t.Helper()
	publisher := &recordingPublisher{}
	return domain.NewService(catalog.NewInMemoryCatalog(seed), publisher), publisher
}

func chessSeed() map[string]domain.Activity {
	return map[string]domain.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Mondays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
		},
	}
}

func TestSignupUnknownActivity(t *testing.T) {
	service, publisher := newService(t, chessSeed())

	_, err := service.Signup(context.Background(), "Unknown Club", "a@b.com")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
	require.Empty(t, publisher.signedUp)

	activities, err := service.ListActivities(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Empty(t, activities["Chess Club"].Participants)
}

func TestUnregisterUnknownActivity(t *testing.T) {
	service, _ := newService(t, chessSeed())

	_, err := service.Unregister(context.Background(), "Unknown Club", "a@b.com")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestSignupTwiceConflicts(t *testing.T) {
	service, publisher := newService(t, chessSeed())

	_, err := service.Signup(context.Background(), "Chess Club", "a@b.com")
	require.NoError(t, err)

	_, err = service.Signup(context.Background(), "Chess Club", "a@b.com")
	require.ErrorIs(t, err, domain.ErrAlreadySignedUp)
	require.Len(t, publisher.signedUp, 1)
}

func TestSignupUnregisterUnregister(t *testing.T) {
	service, publisher := newService(t, chessSeed())

	_, err := service.Signup(context.Background(), "Chess Club", "a@b.com")
	require.NoError(t, err)

	_, err = service.Unregister(context.Background(), "Chess Club", "a@b.com")
	require.NoError(t, err)

	_, err = service.Unregister(context.Background(), "Chess Club", "a@b.com")
	require.ErrorIs(t, err, domain.ErrNotSignedUp)

	require.Len(t, publisher.signedUp, 1)
	require.Len(t, publisher.unregistered, 1)
}

func TestSignupAppearsExactlyOnceInList(t *testing.T) {
	service, _ := newService(t, chessSeed())

	activity, err := service.Signup(context.Background(), "Chess Club", "a@b.com")
	require.NoError(t, err)
	require.Equal(t, []string{"a@b.com"}, activity.Participants)

	activities, err := service.ListActivities(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, []string{"a@b.com"}, activities["Chess Club"].Participants)
}

func TestSignupAtCapacity(t *testing.T) {
	seed := chessSeed()
	club := seed["Chess Club"]
	club.MaxParticipants = 1
	seed["Chess Club"] = club
	service, publisher := newService(t, seed)

	_, err := service.Signup(context.Background(), "Chess Club", "a@b.com")
	require.NoError(t, err)

	_, err = service.Signup(context.Background(), "Chess Club", "c@d.com")
	require.ErrorIs(t, err, domain.ErrActivityFull)
	require.Len(t, publisher.signedUp, 1)
}

func TestSignupRejectsMalformedEmail(t *testing.T) {
	service, publisher := newService(t, chessSeed())

	for _, email := range []string{"", "   ", "not-an-email", "a@b", "a b@c.com", "@b.com"} {
		_, err := service.Signup(context.Background(), "Chess Club", email)
		require.ErrorIs(t, err, domain.ErrInvalidEmail, "email %q", email)
	}
	require.Empty(t, publisher.signedUp)
}

func TestSignupTrimsEmail(t *testing.T) {
	service, _ := newService(t, chessSeed())

	activity, err := service.Signup(context.Background(), "Chess Club", "  a@b.com  ")
	require.NoError(t, err)
	require.Equal(t, []string{"a@b.com"}, activity.Participants)
}

func TestSignupPublishesEvent(t *testing.T) {
	service, publisher := newService(t, chessSeed())

	_, err := service.Signup(context.Background(), "Chess Club", "a@b.com")
	require.NoError(t, err)

	require.Len(t, publisher.signedUp, 1)
	evt := publisher.signedUp[0]
	require.NotEmpty(t, evt.EventID)
	require.Equal(t, "Chess Club", evt.Activity)
	require.Equal(t, "a@b.com", evt.Email)
	require.Equal(t, 11, evt.RemainingSpots)
	require.False(t, evt.OccurredAt.IsZero())
}

func TestSignupPublishFailureSurfaces(t *testing.T) {
	service := domain.NewService(catalog.NewInMemoryCatalog(chessSeed()), failingPublisher{})

	_, err := service.Signup(context.Background(), "Chess Club", "a@b.com")
	require.ErrorContains(t, err, "event publish")
}

func TestListActivitiesSearch(t *testing.T) {
	seed := chessSeed()
	seed["Art Club"] = domain.Activity{Description: "Painting", MaxParticipants: 5}
	service, _ := newService(t, seed)

	filtered, err := service.ListActivities(context.Background(), "chess")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Contains(t, filtered, "Chess Club")

	all, err := service.ListActivities(context.Background(), "  ")
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestGetActivity(t *testing.T) {
	service, _ := newService(t, chessSeed())

	activity, err := service.GetActivity(context.Background(), "Chess Club")
	require.NoError(t, err)
	require.Equal(t, "Chess Club", activity.Name)

	_, err = service.GetActivity(context.Background(), "Unknown Club")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

type recordingPublisher struct {
	signedUp     []events.ParticipantSignedUp
	unregistered []events.ParticipantUnregistered
}

func (p *recordingPublisher) SignedUp(_ context.Context, evt events.ParticipantSignedUp) error {
	p.signedUp = append(p.signedUp, evt)
	return nil
}

func (p *recordingPublisher) Unregistered(_ context.Context, evt events.ParticipantUnregistered) error {
	p.unregistered = append(p.unregistered, evt)
	return nil
}

type failingPublisher struct{}

func (failingPublisher) SignedUp(context.Context, events.ParticipantSignedUp) error {
	return errors.New("broker unavailable")
}

func (failingPublisher) Unregistered(context.Context, events.ParticipantUnregistered) error {
	return errors.New("broker unavailable")
}
