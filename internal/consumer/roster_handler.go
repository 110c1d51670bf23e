package consumer

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"example.com/signup/internal/events"
)

// RosterHandler projects roster events into an in-memory enrollment
// tally per activity. The tally counts changes observed since the
// consumer started, so it can go negative when the stream begins
// mid-history.
type RosterHandler struct {
	mu     sync.Mutex
	logger *log.Logger
	deltas map[string]int
	seen   map[string]struct{}
}

// NewRosterHandler constructs a RosterHandler.
func NewRosterHandler(logger *log.Logger) *RosterHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &RosterHandler{
		logger: logger,
		deltas: make(map[string]int),
		seen:   make(map[string]struct{}),
	}
}

var _ Handler = (*RosterHandler)(nil)

// Handle applies a single roster event. Events with an already-seen ID
// are skipped; delivery is at-least-once.
func (h *RosterHandler) Handle(ctx context.Context, msg Message) error {
	switch msg.Headers["event_type"] {
	case events.TypeSignedUp:
		var evt events.ParticipantSignedUp
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if !h.apply(evt.EventID, evt.Activity, +1) {
			return nil
		}
		h.logger.Printf("signup: %s -> %s (remaining=%d)", evt.Email, evt.Activity, evt.RemainingSpots)
	case events.TypeUnregistered:
		var evt events.ParticipantUnregistered
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if !h.apply(evt.EventID, evt.Activity, -1) {
			return nil
		}
		h.logger.Printf("unregister: %s -x %s (remaining=%d)", evt.Email, evt.Activity, evt.RemainingSpots)
	default:
		return nil
	}

	RecordProcessed(msg)
	return nil
}

// EnrollmentDelta returns the net enrollment change observed for the activity.
func (h *RosterHandler) EnrollmentDelta(activity string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.deltas[activity]
}

func (h *RosterHandler) apply(eventID, activity string, delta int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if eventID != "" {
		if _, dup := h.seen[eventID]; dup {
			return false
		}
		h.seen[eventID] = struct{}{}
	}
	h.deltas[activity] += delta
	RecordEnrollmentDelta(activity, h.deltas[activity])
	return true
}
