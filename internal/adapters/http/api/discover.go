// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"

	"github.com/okian/varsity/internal/domain/discover"
)

// DiscoverHandler handles recruiter discovery requests.
type DiscoverHandler struct {
	deps Dependencies
}

// NewDiscoverHandler creates a new discover handler.
func NewDiscoverHandler(deps Dependencies) *DiscoverHandler {
	return &DiscoverHandler{deps: deps}
}

// HandleDiscover handles GET /discover requests. Query parameters:
// q, min_score, position, grad_year, verified_only, sort, stat, desc.
func (h *DiscoverHandler) HandleDiscover(w http.ResponseWriter, r *http.Request) {
	const op = "api.discover"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	params := r.URL.Query()

	query := discover.Query{
		Text:         params.Get("q"),
		Position:     params.Get("position"),
		VerifiedOnly: params.Get("verified_only") == "true",
	}
	if raw := params.Get("min_score"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		query.MinScore = n
	}
	if raw := params.Get("grad_year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		query.GradYear = n
	}

	spec := discover.SortSpec{
		Descending: params.Get("desc") == "true",
	}
	switch params.Get("sort") {
	case "", "reliability":
		spec.Key = discover.ByReliability
	case "name":
		spec.Key = discover.ByName
	case "stat":
		spec.Key = discover.ByStat
		spec.Stat = params.Get("stat")
		if spec.Stat == "" {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
	default:
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	writeJSON(w, http.StatusOK, h.deps.Discover(r.Context(), query, spec))
}
