// Package api exposes HTTP handlers for the signup service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/signup/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/activities", h.listActivities)
	mux.HandleFunc("/v1/activities/", h.activityByName)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	search := r.URL.Query().Get("search")
	activities, err := h.service.ListActivities(r.Context(), search)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	views := make(map[string]ActivityView, len(activities))
	for name, activity := range activities {
		views[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, views)
}

// activityByName routes /v1/activities/{name}[/signup|/unregister].
func (h *Handler) activityByName(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/v1/activities/")

	if name, ok := strings.CutSuffix(rest, "/signup"); ok {
		h.signup(w, r, name)
		return
	}
	if name, ok := strings.CutSuffix(rest, "/unregister"); ok {
		h.unregister(w, r, name)
		return
	}
	h.getActivity(w, r, rest)
}

func (h *Handler) getActivity(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if strings.TrimSpace(name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing activity name")
		return
	}

	activity, err := h.service.GetActivity(r.Context(), name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityView(*activity))
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name string) {
	h.mutateRoster(w, r, name, h.service.Signup, "Signed up %s for %s")
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name string) {
	h.mutateRoster(w, r, name, h.service.Unregister, "Unregistered %s from %s")
}

type rosterOp func(ctx context.Context, name, email string) (*domain.Activity, error)

func (h *Handler) mutateRoster(w http.ResponseWriter, r *http.Request, name string, op rosterOp, messageFormat string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if strings.TrimSpace(name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing activity name")
		return
	}

	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing email parameter")
		return
	}

	activity, err := op(r.Context(), name, email)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := RosterChangeResponse{
		Message:  fmt.Sprintf(messageFormat, email, activity.Name),
		Activity: toActivityView(*activity),
	}
	writeJSON(w, http.StatusOK, resp)
}

// ActivityView exposes activity details to API clients.
type ActivityView struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
	SpotsLeft       int      `json:"spots_left"`
}

// RosterChangeResponse confirms a signup or unregistration.
type RosterChangeResponse struct {
	Message  string       `json:"message"`
	Activity ActivityView `json:"activity"`
}

func toActivityView(activity domain.Activity) ActivityView {
	return ActivityView{
		Name:            activity.Name,
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    activity.Participants,
		SpotsLeft:       activity.SpotsLeft(),
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "not_found", "activity not found")
	case errors.Is(err, domain.ErrAlreadySignedUp):
		writeError(w, http.StatusConflict, "conflict", "participant already signed up")
	case errors.Is(err, domain.ErrNotSignedUp):
		writeError(w, http.StatusConflict, "conflict", "participant not signed up")
	case errors.Is(err, domain.ErrActivityFull):
		writeError(w, http.StatusConflict, "conflict", "activity is full")
	case errors.Is(err, domain.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, "validation_failed", "invalid email address")
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, map[string]string{"type": code, "detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
