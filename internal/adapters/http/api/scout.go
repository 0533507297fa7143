// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ScoutHandler handles recruiter watchlist and note requests.
type ScoutHandler struct {
	deps Dependencies
}

// NewScoutHandler creates a new scout handler.
func NewScoutHandler(deps Dependencies) *ScoutHandler {
	return &ScoutHandler{deps: deps}
}

// toggleRequest mirrors the POST /watchlist/{recruiterID} body.
type toggleRequest struct {
	AthleteID string `json:"athlete_id"`
}

// toggleResponse reports post-toggle membership.
type toggleResponse struct {
	AthleteID string `json:"athlete_id"`
	Watched   bool   `json:"watched"`
}

// noteRequest mirrors the PUT /notes/{recruiterID}/{athleteID} body.
type noteRequest struct {
	Text string `json:"text"`
}

// HandleWatchlist handles GET and POST /watchlist/{recruiterID} requests.
func (h *ScoutHandler) HandleWatchlist(w http.ResponseWriter, r *http.Request) {
	const op = "api.watchlist"

	recruiterID := strings.TrimPrefix(r.URL.Path, "/watchlist/")
	if recruiterID == "" || strings.Contains(recruiterID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch r.Method {
	case http.MethodGet:
		list, err := h.deps.Watchlist(r.Context(), recruiterID)
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, list)

	case http.MethodPost:
		var req toggleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if strings.TrimSpace(req.AthleteID) == "" {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		watched, err := h.deps.ToggleWatch(r.Context(), recruiterID, req.AthleteID)
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, toggleResponse{AthleteID: req.AthleteID, Watched: watched})

	default:
		http.NotFound(w, r)
	}
}

// HandleNotes handles GET /notes/{recruiterID} and
// PUT /notes/{recruiterID}/{athleteID} requests.
func (h *ScoutHandler) HandleNotes(w http.ResponseWriter, r *http.Request) {
	const op = "api.notes"

	rest := strings.TrimPrefix(r.URL.Path, "/notes/")
	recruiterID, athleteID, _ := strings.Cut(rest, "/")
	if recruiterID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch {
	case r.Method == http.MethodGet && athleteID == "":
		notes, err := h.deps.Notes(r.Context(), recruiterID)
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, notes)

	case r.Method == http.MethodPut && athleteID != "":
		var req noteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := h.deps.SetNote(r.Context(), recruiterID, athleteID, req.Text); err != nil {
			writeDomainError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"athlete_id": athleteID, "text": req.Text})

	default:
		http.NotFound(w, r)
	}
}
