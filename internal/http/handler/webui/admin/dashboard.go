package admin

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/a-h/templ"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/service"
	httpCtx "github.com/bornholm/vitrine/internal/http/context"
	"github.com/bornholm/vitrine/internal/http/handler/webui/admin/component"
	"github.com/bornholm/vitrine/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/vitrine/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

const dashboardNotifications = 5

func (h *Handler) getDashboardPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillDashboardPageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	dashboardPage := component.DashboardPage(*vmodel)

	templ.Handler(dashboardPage).ServeHTTP(w, r)
}

func (h *Handler) fillDashboardPageViewModel(r *http.Request) (*component.DashboardPageVModel, error) {
	vmodel := &component.DashboardPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillDashboardPageVModelLayout,
		h.fillDashboardPageVModelStats,
		h.fillDashboardPageVModelWidgets,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillDashboardPageVModelLayout(ctx context.Context, vmodel *component.DashboardPageVModel, r *http.Request) error {
	layout, err := h.newLayout(ctx, "Tableau de bord")
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Layout = layout
	vmodel.WorkspaceReset = r.URL.Query().Has("reset")

	return nil
}

func (h *Handler) fillDashboardPageVModelStats(ctx context.Context, vmodel *component.DashboardPageVModel, r *http.Request) error {
	workspace, err := h.getWorkspace(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	reference, err := h.stats.Compute(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Reference = *reference
	vmodel.Stats = h.stats.ComputeWorkspace(workspace)

	notifications := service.Snapshot(workspace, service.Notifications)
	slices.SortStableFunc(notifications, func(a, b model.Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	vmodel.Notifications = notifications[:min(len(notifications), dashboardNotifications)]

	return nil
}

func (h *Handler) fillDashboardPageVModelWidgets(ctx context.Context, vmodel *component.DashboardPageVModel, r *http.Request) error {
	scope := httpCtx.SessionID(ctx)

	vmodel.Events = h.widgets.CalendarEvents.Load(ctx, scope)
	vmodel.Goals = h.widgets.Goals.Load(ctx, scope)
	vmodel.Today = time.Now().Format(model.CalendarDateLayout)

	for _, g := range vmodel.Goals {
		if g.Done {
			vmodel.GoalsDone++
		}
	}

	switch r.URL.Query().Get("calendar_error") {
	case "":
	case calendarErrorTitle:
		vmodel.CalendarError = "Le titre de l'événement est obligatoire."
	case calendarErrorDate:
		vmodel.CalendarError = "La date ou l'heure de l'événement est invalide."
	default:
		vmodel.CalendarError = "L'événement n'a pas pu être ajouté."
	}

	return nil
}

func (h *Handler) handleWorkspaceReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.workspaces.Reset(ctx, httpCtx.SessionID(ctx)); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	to := commonComp.BaseURL(ctx, commonComp.WithPath("/admin/"), commonComp.WithValues("reset", "1"))
	http.Redirect(w, r, string(to), http.StatusSeeOther)
}
