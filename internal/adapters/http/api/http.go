// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/varsity/internal/app"
	"github.com/okian/varsity/internal/domain/discover"
	"github.com/okian/varsity/internal/domain/model"
	"github.com/okian/varsity/internal/domain/overlay"
	"github.com/okian/varsity/internal/domain/records"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Athletes(ctx context.Context) []model.Athlete
	Athlete(ctx context.Context, id string) (model.Athlete, error)
	Workouts(ctx context.Context, athleteID string) ([]model.Workout, error)
	LogWorkout(ctx context.Context, athleteID string, d records.Draft) (model.Workout, error)
	Readiness(ctx context.Context, athleteID string) (service.Readiness, error)

	ReviewQueue(ctx context.Context, trainerID string) ([]overlay.PendingItem, error)
	Decide(ctx context.Context, trainerID, workoutID string, approved bool) (overlay.Decision, bool, error)
	Board(trainerID string) (*overlay.Board, error)

	Discover(ctx context.Context, q discover.Query, spec discover.SortSpec) []model.Athlete
	Watchlist(ctx context.Context, recruiterID string) ([]string, error)
	ToggleWatch(ctx context.Context, recruiterID, athleteID string) (bool, error)
	SetNote(ctx context.Context, recruiterID, athleteID, text string) error
	Notes(ctx context.Context, recruiterID string) (map[string]string, error)

	Settings(ctx context.Context, role string) (model.Settings, error)
	SaveSettings(ctx context.Context, role string, v model.Settings) error

	Activity(ctx context.Context) []service.Activity
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	rosterHandler   *RosterHandler
	reviewHandler   *ReviewHandler
	discoverHandler *DiscoverHandler
	scoutHandler    *ScoutHandler
	settingsHandler *SettingsHandler
	exportHandler   *ExportHandler
	activityHandler *ActivityHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		rosterHandler:   NewRosterHandler(deps),
		reviewHandler:   NewReviewHandler(deps),
		discoverHandler: NewDiscoverHandler(deps),
		scoutHandler:    NewScoutHandler(deps),
		settingsHandler: NewSettingsHandler(deps),
		exportHandler:   NewExportHandler(deps),
		activityHandler: NewActivityHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/activity", MetricsMiddleware(s.activityHandler.HandleActivity, "activity"))
	mux.HandleFunc("/athletes", MetricsMiddleware(s.rosterHandler.HandleAthletes, "athletes"))
	mux.HandleFunc("/athletes/", MetricsMiddleware(s.rosterHandler.HandleAthlete, "athletes"))
	mux.HandleFunc("/review/", MetricsMiddleware(s.reviewHandler.HandleReview, "review"))
	mux.HandleFunc("/discover", MetricsMiddleware(s.discoverHandler.HandleDiscover, "discover"))
	mux.HandleFunc("/watchlist/", MetricsMiddleware(s.scoutHandler.HandleWatchlist, "watchlist"))
	mux.HandleFunc("/notes/", MetricsMiddleware(s.scoutHandler.HandleNotes, "notes"))
	mux.HandleFunc("/settings/", MetricsMiddleware(s.settingsHandler.HandleSettings, "settings"))
	mux.HandleFunc("/export/", MetricsMiddleware(s.exportHandler.HandleExport, "export"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates service-layer sentinels onto status codes.
func writeDomainError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownAthlete),
		errors.Is(err, service.ErrUnknownTrainer),
		errors.Is(err, service.ErrUnknownRecruiter),
		errors.Is(err, service.ErrUnknownWorkout):
		writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
	case errors.Is(err, service.ErrUnknownRole),
		errors.Is(err, records.ErrInvalidWorkout):
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
