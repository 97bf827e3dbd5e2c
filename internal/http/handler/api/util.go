package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/vitrine/internal/core/service"
	httpCtx "github.com/bornholm/vitrine/internal/http/context"
	"github.com/pkg/errors"
)

func getQueryPage(query url.Values, defaultValue int) int {
	return getQueryInt(query, "page", defaultValue)
}

func getQueryLimit(query url.Values, defaultValue int) int {
	return getQueryInt(query, "limit", defaultValue)
}

func getQueryInt(query url.Values, name string, defaultValue int) int {
	raw := query.Get(name)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || value < 0 {
		return defaultValue
	}

	return int(value)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, res any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	writeJSON(w, r, statusCode, ErrorResponse{Error: message})
}

func (h *Handler) getWorkspace(r *http.Request) (*service.Workspace, error) {
	ctx := r.Context()

	workspace, err := h.workspaces.Get(ctx, httpCtx.SessionID(ctx))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return workspace, nil
}
