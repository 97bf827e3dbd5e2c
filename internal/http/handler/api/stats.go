package api

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/vitrine/internal/core/service"
)

type GetStatsResponse struct {
	Reference StatsPayload `json:"reference"`
	Workspace StatsPayload `json:"workspace"`
}

type StatsPayload struct {
	Interns             int     `json:"interns"`
	ActiveInterns       int     `json:"activeInterns"`
	Employees           int     `json:"employees"`
	EmployeesOnLeave    int     `json:"employeesOnLeave"`
	Applicants          int     `json:"applicants"`
	OpenApplications    int     `json:"openApplications"`
	Notifications       int     `json:"notifications"`
	UnreadNotifications int     `json:"unreadNotifications"`
	AverageInternScore  float64 `json:"averageInternScore"`
}

func toStatsPayload(s service.Stats) StatsPayload {
	return StatsPayload(s)
}

func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reference, err := h.stats.Compute(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not compute stats", slogx.Error(err))
		writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	workspace, err := h.getWorkspace(r)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve workspace", slogx.Error(err))
		writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeJSON(w, r, http.StatusOK, GetStatsResponse{
		Reference: toStatsPayload(*reference),
		Workspace: toStatsPayload(h.stats.ComputeWorkspace(workspace)),
	})
}
