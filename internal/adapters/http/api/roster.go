// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/varsity/internal/domain/records"
)

// RosterHandler handles athlete listing, profiles, workouts, and
// readiness requests.
type RosterHandler struct {
	deps Dependencies
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps Dependencies) *RosterHandler {
	return &RosterHandler{deps: deps}
}

// HandleAthletes handles GET /athletes requests.
func (h *RosterHandler) HandleAthletes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Athletes(r.Context()))
}

// workoutRequest mirrors the POST /athletes/{id}/workouts body.
type workoutRequest struct {
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
}

// HandleAthlete dispatches /athletes/{id}, /athletes/{id}/workouts, and
// /athletes/{id}/readiness.
func (h *RosterHandler) HandleAthlete(w http.ResponseWriter, r *http.Request) {
	const op = "api.athlete"

	rest := strings.TrimPrefix(r.URL.Path, "/athletes/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch sub {
	case "":
		h.handleProfile(w, r, id)
	case "workouts":
		h.handleWorkouts(w, r, id)
	case "readiness":
		h.handleReadiness(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *RosterHandler) handleProfile(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.get_athlete"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	a, err := h.deps.Athlete(r.Context(), id)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *RosterHandler) handleWorkouts(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.workouts"

	switch r.Method {
	case http.MethodGet:
		ws, err := h.deps.Workouts(r.Context(), id)
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, ws)

	case http.MethodPost:
		var req workoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		workout, err := h.deps.LogWorkout(r.Context(), id, records.Draft{
			Type:            req.Type,
			DurationMinutes: req.DurationMinutes,
		})
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		writeJSON(w, http.StatusCreated, workout)

	default:
		http.NotFound(w, r)
	}
}

func (h *RosterHandler) handleReadiness(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.readiness"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	readiness, err := h.deps.Readiness(r.Context(), id)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, readiness)
}
