package admin

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/service"
	"github.com/bornholm/vitrine/internal/http/handler/webui/admin/component"
	"github.com/bornholm/vitrine/internal/http/handler/webui/common"
	"github.com/bornholm/vitrine/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

func (h *Handler) getAnalyticsPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	layout, err := h.newLayout(ctx, "Analyses")
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	workspace, err := h.getWorkspace(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel := component.AnalyticsPageVModel{
		Layout:     layout,
		Stats:      h.stats.ComputeWorkspace(workspace),
		Breakdowns: service.ComputeBreakdowns(workspace),
	}

	templ.Handler(component.AnalyticsPage(vmodel)).ServeHTTP(w, r)
}

func (h *Handler) getEvaluationPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	layout, err := h.newLayout(ctx, "Évaluation")
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	workspace, err := h.getWorkspace(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	evaluations := service.RankInterns(service.Snapshot(workspace, service.Interns))

	counts := map[service.Grade]int{}
	for _, e := range evaluations {
		counts[e.Grade]++
	}

	grades := make([]service.Bucket, 0, 4)
	for _, g := range []service.Grade{service.GradeA, service.GradeB, service.GradeC, service.GradeD} {
		grades = append(grades, service.Bucket{Label: string(g), Count: counts[g]})
	}

	vmodel := component.EvaluationPageVModel{
		Layout:      layout,
		Evaluations: evaluations,
		Grades:      grades,
	}

	templ.Handler(component.EvaluationPage(vmodel)).ServeHTTP(w, r)
}

func (h *Handler) getReportsPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	layout, err := h.newLayout(ctx, "Rapports")
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	workspace, err := h.getWorkspace(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	stats := h.stats.ComputeWorkspace(workspace)

	vmodel := component.ReportsPageVModel{
		Layout: layout,
		Reports: []component.ReportItem{
			{Kind: model.KindIntern, Label: model.KindIntern.Label(), Count: stats.Interns},
			{Kind: model.KindEmployee, Label: model.KindEmployee.Label(), Count: stats.Employees},
			{Kind: model.KindApplicant, Label: model.KindApplicant.Label(), Count: stats.Applicants},
			{Kind: model.KindNotification, Label: model.KindNotification.Label(), Count: stats.Notifications},
		},
	}

	templ.Handler(component.ReportsPage(vmodel)).ServeHTTP(w, r)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) handleReportDownload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file := r.PathValue("file")

	kind := model.Kind(strings.TrimSuffix(file, ".xlsx"))
	if !strings.HasSuffix(file, ".xlsx") || !kind.Valid() {
		common.HandleError(w, r, common.NewNotFoundError("Ce rapport n'existe pas."))
		return
	}

	workspace, err := h.getWorkspace(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	report, err := service.WorkspaceReport(workspace, kind)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	metrics.TotalReportDownloads.With(prometheus.Labels{metrics.LabelKind: string(kind)}).Inc()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="vitrine-%s.xlsx"`, kind))

	if err := report.WriteXLSX(w); err != nil {
		slog.ErrorContext(ctx, "could not write report", slogx.Error(err))
	}
}

func (h *Handler) getNotificationsPanel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	workspace, err := h.getWorkspace(ctx)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	notifications := service.Snapshot(workspace, service.Notifications)

	vmodel := component.NotificationsPanelVModel{
		Notifications: notifications,
	}

	for _, n := range notifications {
		if !n.Read {
			vmodel.Unread++
		}
	}

	templ.Handler(component.NotificationsPanel(vmodel)).ServeHTTP(w, r)
}
