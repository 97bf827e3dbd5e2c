package api

import (
	"net/http"

	"github.com/bornholm/vitrine/internal/core/service"
	"github.com/bornholm/vitrine/internal/core/widget"
)

type Handler struct {
	workspaces *service.WorkspaceRegistry
	stats      *service.StatsService
	widgets    *widget.Widgets
	panel      PanelOptions
	mux        *http.ServeMux
}

// PanelOptions bounds the notification panel geometry.
type PanelOptions struct {
	MaxWidth float64
	EdgeGap  float64
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(workspaces *service.WorkspaceRegistry, stats *service.StatsService, widgets *widget.Widgets, panel PanelOptions) *Handler {
	h := &Handler{
		workspaces: workspaces,
		stats:      stats,
		widgets:    widgets,
		panel:      panel,
		mux:        &http.ServeMux{},
	}

	h.mux.HandleFunc("GET /records/{kind}", h.handleListRecords)
	h.mux.HandleFunc("GET /stats", h.handleGetStats)
	h.mux.HandleFunc("POST /panel/origin", h.handleComputePanelOrigin)
	h.mux.HandleFunc("GET /widgets", h.handleListWidgets)
	h.mux.HandleFunc("GET /widgets/{key}", h.handleGetWidget)
	h.mux.HandleFunc("DELETE /widgets/{key}", h.handleResetWidget)

	return h
}

var _ http.Handler = &Handler{}
