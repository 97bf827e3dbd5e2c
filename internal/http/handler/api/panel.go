package api

import (
	"encoding/json"
	"net/http"

	"github.com/bornholm/vitrine/internal/core/panel"
	"github.com/bornholm/vitrine/internal/metrics"
)

type ComputePanelOriginRequest struct {
	Trigger       panel.Rect `json:"trigger"`
	ViewportWidth float64    `json:"viewportWidth"`
	// MaxWidth and EdgeGap override the server defaults when positive
	MaxWidth float64 `json:"maxWidth,omitempty"`
	EdgeGap  float64 `json:"edgeGap,omitempty"`
}

type ComputePanelOriginResponse struct {
	Top   float64 `json:"top"`
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

const maxPanelOriginRequestSize = 4 << 10

func (h *Handler) handleComputePanelOrigin(w http.ResponseWriter, r *http.Request) {
	var req ComputePanelOriginRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPanelOriginRequestSize))
	if err := decoder.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	metrics.TotalPanelOriginRequests.Inc()

	if req.ViewportWidth <= 0 {
		writeError(w, r, http.StatusBadRequest, "viewportWidth must be positive")
		return
	}

	maxWidth := h.panel.MaxWidth
	if req.MaxWidth > 0 {
		maxWidth = req.MaxWidth
	}

	gap := h.panel.EdgeGap
	if req.EdgeGap > 0 {
		gap = req.EdgeGap
	}

	origin := panel.ComputeOrigin(req.Trigger, req.ViewportWidth, maxWidth, gap)

	writeJSON(w, r, http.StatusOK, ComputePanelOriginResponse{
		Top:   origin.Top,
		Left:  origin.Left,
		Width: origin.Width,
	})
}
