package admin

import (
	"net/http"

	"github.com/bornholm/vitrine/internal/core/service"
	"github.com/bornholm/vitrine/internal/core/widget"
)

type Handler struct {
	mux        *http.ServeMux
	workspaces *service.WorkspaceRegistry
	stats      *service.StatsService
	widgets    *widget.Widgets
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(workspaces *service.WorkspaceRegistry, stats *service.StatsService, widgets *widget.Widgets) *Handler {
	h := &Handler{
		mux:        http.NewServeMux(),
		workspaces: workspaces,
		stats:      stats,
		widgets:    widgets,
	}

	h.mux.HandleFunc("GET /{$}", h.getDashboardPage)
	h.mux.HandleFunc("POST /reset", h.handleWorkspaceReset)
	h.mux.HandleFunc("GET /analytics", h.getAnalyticsPage)
	h.mux.HandleFunc("GET /evaluation", h.getEvaluationPage)
	h.mux.HandleFunc("GET /reports", h.getReportsPage)
	h.mux.HandleFunc("GET /reports/{file}", h.handleReportDownload)

	registerEntity(h, internEntity)
	registerEntity(h, employeeEntity)
	registerEntity(h, applicantEntity)
	registerEntity(h, notificationEntity)

	h.mux.HandleFunc("GET /notifications/panel", h.getNotificationsPanel)

	h.mux.HandleFunc("POST /calendar/events", h.handleCalendarEventCreate)
	h.mux.HandleFunc("POST /calendar/events/{id}/delete", h.handleCalendarEventDelete)

	h.mux.HandleFunc("POST /goals", h.handleGoalCreate)
	h.mux.HandleFunc("POST /goals/{id}/toggle", h.handleGoalToggle)
	h.mux.HandleFunc("POST /goals/{id}/delete", h.handleGoalDelete)

	h.mux.HandleFunc("GET /profile", h.getProfilePage)
	h.mux.HandleFunc("POST /profile", h.handleProfileUpdate)

	return h
}

var _ http.Handler = &Handler{}
