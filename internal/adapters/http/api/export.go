// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/varsity/pkg/metrics"
)

// ExportHandler serves an athlete's effective workout history as CSV.
type ExportHandler struct {
	deps Dependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps Dependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleExport handles GET /export/{athleteID} requests.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.export"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	athleteID := strings.TrimPrefix(r.URL.Path, "/export/")
	if athleteID == "" || strings.Contains(athleteID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	workouts, err := h.deps.Workouts(r.Context(), athleteID)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", athleteID+"_workouts.csv"))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "date", "type", "duration_minutes", "verified"})
	for _, workout := range workouts {
		_ = cw.Write([]string{
			workout.ID,
			workout.Date,
			workout.Type,
			strconv.Itoa(workout.DurationMinutes),
			strconv.FormatBool(workout.Verified),
		})
	}
	cw.Flush()

	metrics.RecordExport()
}
