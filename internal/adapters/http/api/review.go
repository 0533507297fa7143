// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ReviewHandler handles trainer review queue and decision requests.
type ReviewHandler struct {
	deps Dependencies
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(deps Dependencies) *ReviewHandler {
	return &ReviewHandler{deps: deps}
}

// decisionRequest mirrors the POST /review/{trainerID} body.
type decisionRequest struct {
	WorkoutID string `json:"workout_id"`
	Approved  bool   `json:"approved"`
}

func (d decisionRequest) validate() error {
	if strings.TrimSpace(d.WorkoutID) == "" {
		return ErrBadRequest
	}
	return nil
}

// decisionResponse reports the standing decision for a workout id.
type decisionResponse struct {
	WorkoutID string `json:"workout_id"`
	Decision  string `json:"decision"`
	Changed   bool   `json:"changed"`
}

// boardResponse is the GET /review/{trainerID} shape: the pending queue
// plus the trainer's decided id lists.
type boardResponse struct {
	Queue    any      `json:"queue"`
	Verified []string `json:"verified"`
	Flagged  []string `json:"flagged"`
}

// HandleReview handles GET and POST /review/{trainerID} requests.
func (h *ReviewHandler) HandleReview(w http.ResponseWriter, r *http.Request) {
	const op = "api.review"

	trainerID := strings.TrimPrefix(r.URL.Path, "/review/")
	if trainerID == "" || strings.Contains(trainerID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch r.Method {
	case http.MethodGet:
		queue, err := h.deps.ReviewQueue(r.Context(), trainerID)
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		board, err := h.deps.Board(trainerID)
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, boardResponse{
			Queue:    queue,
			Verified: board.VerifiedIDs(),
			Flagged:  board.FlaggedIDs(),
		})

	case http.MethodPost:
		var req decisionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		d, changed, err := h.deps.Decide(r.Context(), trainerID, req.WorkoutID, req.Approved)
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, decisionResponse{
			WorkoutID: req.WorkoutID,
			Decision:  d.String(),
			Changed:   changed,
		})

	default:
		http.NotFound(w, r)
	}
}
