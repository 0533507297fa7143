// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/varsity/internal/domain/model"
)

// SettingsHandler handles per-role settings requests.
type SettingsHandler struct {
	deps Dependencies
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(deps Dependencies) *SettingsHandler {
	return &SettingsHandler{deps: deps}
}

// HandleSettings handles GET and PUT /settings/{role} requests.
func (h *SettingsHandler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	const op = "api.settings"

	role := strings.TrimPrefix(r.URL.Path, "/settings/")
	if role == "" || strings.Contains(role, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch r.Method {
	case http.MethodGet:
		settings, err := h.deps.Settings(r.Context(), role)
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, settings)

	case http.MethodPut:
		var settings model.Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := h.deps.SaveSettings(r.Context(), role, settings); err != nil {
			writeDomainError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, settings)

	default:
		http.NotFound(w, r)
	}
}
