package api

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/vitrine/internal/core/port"
	httpCtx "github.com/bornholm/vitrine/internal/http/context"
	"github.com/pkg/errors"
)

type ListWidgetsResponse struct {
	Keys []string `json:"keys"`
}

type GetWidgetResponse struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

func (h *Handler) handleListWidgets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, ListWidgetsResponse{Keys: h.widgets.Keys()})
}

func (h *Handler) handleGetWidget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := r.PathValue("key")

	value, err := h.widgets.Load(ctx, httpCtx.SessionID(ctx), key)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "unknown widget")
			return
		}

		slog.ErrorContext(ctx, "could not load widget", slogx.Error(err))
		writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeJSON(w, r, http.StatusOK, GetWidgetResponse{Key: key, Value: value})
}

func (h *Handler) handleResetWidget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := r.PathValue("key")

	if err := h.widgets.Reset(ctx, httpCtx.SessionID(ctx), key); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "unknown widget")
			return
		}

		slog.ErrorContext(ctx, "could not reset widget", slogx.Error(err))
		writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
