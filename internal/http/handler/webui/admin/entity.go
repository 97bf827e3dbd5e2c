package admin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/bornholm/vitrine/internal/core/collection"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/service"
	httpCtx "github.com/bornholm/vitrine/internal/http/context"
	"github.com/bornholm/vitrine/internal/http/handler/webui/admin/component"
	"github.com/bornholm/vitrine/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/vitrine/internal/http/handler/webui/common/component"
	"github.com/bornholm/vitrine/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// entity describes how a record kind is listed and detailed.
type entity[T any] struct {
	Kind      model.Kind
	Selector  service.ManagerSelector[T]
	Accessors collection.Accessors[T]
	Columns   []string
	Cells     func(r T) []component.Cell
	Fields    func(r T) []component.DetailField
}

func (e entity[T]) basePath() string {
	return "/admin/" + string(e.Kind)
}

type entityHandler[T any] struct {
	*Handler
	entity entity[T]
}

func registerEntity[T any](h *Handler, e entity[T]) {
	eh := &entityHandler[T]{Handler: h, entity: e}

	route := func(method string, path string) string {
		return fmt.Sprintf("%s /%s%s", method, e.Kind, path)
	}

	h.mux.HandleFunc(route(http.MethodGet, "/{$}"), eh.getListPage)
	h.mux.HandleFunc(route(http.MethodGet, ""), eh.getListPage)
	h.mux.HandleFunc(route(http.MethodPost, "/select-mode"), eh.handleSelectMode)
	h.mux.HandleFunc(route(http.MethodPost, "/select-all"), eh.handleSelectAll)
	h.mux.HandleFunc(route(http.MethodPost, "/{id}/select"), eh.handleSelectOne)
	h.mux.HandleFunc(route(http.MethodPost, "/{id}/delete"), eh.handleDeleteRequest)
	h.mux.HandleFunc(route(http.MethodPost, "/delete-selected"), eh.handleDeleteSelectedRequest)
	h.mux.HandleFunc(route(http.MethodPost, "/delete/confirm"), eh.handleDeleteConfirm)
	h.mux.HandleFunc(route(http.MethodPost, "/delete/cancel"), eh.handleDeleteCancel)
	h.mux.HandleFunc(route(http.MethodGet, "/{id}"), eh.getDetailPage)
	h.mux.HandleFunc(route(http.MethodPost, "/detail/close"), eh.handleDetailClose)
	h.mux.HandleFunc(route(http.MethodPost, "/reset"), eh.handleReset)
}

// use runs fn against the visitor's manager for this kind.
func (eh *entityHandler[T]) use(ctx context.Context, fn func(m *collection.Manager[T]) error) error {
	workspace, err := eh.getWorkspace(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := service.Use(workspace, eh.entity.Selector, fn); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// mutate applies the action then redirects back to the list.
func (eh *entityHandler[T]) mutate(w http.ResponseWriter, r *http.Request, fn func(m *collection.Manager[T])) {
	err := eh.use(r.Context(), func(m *collection.Manager[T]) error {
		fn(m)
		return nil
	})
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	redirect(w, r, eh.entity.basePath())
}

func (eh *entityHandler[T]) getListPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Has("q") {
		err := eh.use(r.Context(), func(m *collection.Manager[T]) error {
			m.SetSearchTerm(query.Get("q"))
			return nil
		})
		if err != nil {
			common.HandleError(w, r, errors.WithStack(err))
			return
		}
	}

	eh.renderListPage(w, r)
}

func (eh *entityHandler[T]) renderListPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := eh.fillEntityPageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	entityPage := component.EntityPage(*vmodel)

	templ.Handler(entityPage).ServeHTTP(w, r)
}

func (eh *entityHandler[T]) fillEntityPageViewModel(r *http.Request) (*component.EntityPageVModel, error) {
	vmodel := &component.EntityPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		eh.fillEntityPageVModelLayout,
		eh.fillEntityPageVModelRecords,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (eh *entityHandler[T]) fillEntityPageVModelLayout(ctx context.Context, vmodel *component.EntityPageVModel, r *http.Request) error {
	layout, err := eh.newLayout(ctx, eh.entity.Kind.Label())
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Layout = layout
	vmodel.Kind = eh.entity.Kind
	vmodel.BasePath = eh.entity.basePath()
	vmodel.Title = eh.entity.Kind.Label()
	vmodel.Columns = eh.entity.Columns

	if deleted, err := strconv.Atoi(r.URL.Query().Get("deleted")); err == nil {
		vmodel.Deleted = deleted
	}

	return nil
}

func (eh *entityHandler[T]) fillEntityPageVModelRecords(ctx context.Context, vmodel *component.EntityPageVModel, r *http.Request) error {
	accessors := eh.entity.Accessors

	return eh.use(ctx, func(m *collection.Manager[T]) error {
		filtered := m.Filtered()

		vmodel.Query = m.SearchTerm()
		vmodel.Total = m.Len()
		vmodel.SelectMode = m.SelectMode()
		vmodel.SelectedCount = m.SelectedCount()
		vmodel.AllSelected = m.AllFilteredSelected()
		vmodel.Rows = make([]component.EntityRow, 0, len(filtered))

		for _, record := range filtered {
			id := accessors.ID(record)
			vmodel.Rows = append(vmodel.Rows, component.EntityRow{
				ID:       id,
				Display:  accessors.Display(record),
				Cells:    eh.entity.Cells(record),
				Selected: m.IsSelected(id),
			})
		}

		if intent := m.Intent(); intent.Pending() {
			targets := m.PendingTargets()
			names := make([]string, 0, len(targets))
			for _, t := range targets {
				names = append(names, accessors.Display(t))
			}

			vmodel.Intent = &component.DeleteIntent{
				Bulk:    intent.Mode == collection.IntentBulk,
				Targets: names,
			}
		}

		if record, open := m.Detail(); open {
			vmodel.Detail = &component.EntityDetail{
				ID:     accessors.ID(record),
				Title:  accessors.Display(record),
				Fields: eh.entity.Fields(record),
			}
		}

		return nil
	})
}

func (eh *entityHandler[T]) handleSelectMode(w http.ResponseWriter, r *http.Request) {
	action := r.FormValue("action")

	eh.mutate(w, r, func(m *collection.Manager[T]) {
		switch action {
		case "enter":
			m.EnterSelectMode()
		case "exit":
			m.ExitSelectMode()
		}
	})
}

func (eh *entityHandler[T]) handleSelectAll(w http.ResponseWriter, r *http.Request) {
	eh.mutate(w, r, func(m *collection.Manager[T]) {
		m.ToggleSelectAll()
	})
}

func (eh *entityHandler[T]) handleSelectOne(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	eh.mutate(w, r, func(m *collection.Manager[T]) {
		m.ToggleSelectOne(id)
	})
}

func (eh *entityHandler[T]) handleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	eh.mutate(w, r, func(m *collection.Manager[T]) {
		m.RequestDelete(id)
	})
}

func (eh *entityHandler[T]) handleDeleteSelectedRequest(w http.ResponseWriter, r *http.Request) {
	eh.mutate(w, r, func(m *collection.Manager[T]) {
		m.RequestDeleteSelected()
	})
}

func (eh *entityHandler[T]) handleDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		removed []T
		mode    collection.IntentMode
	)

	err := eh.use(ctx, func(m *collection.Manager[T]) error {
		mode = m.Intent().Mode
		removed = m.Confirm()
		return nil
	})
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if len(removed) > 0 {
		metrics.DeletedRecords.With(prometheus.Labels{
			metrics.LabelKind: string(eh.entity.Kind),
			metrics.LabelMode: mode.String(),
		}).Add(float64(len(removed)))

		slog.InfoContext(ctx, "records deleted",
			slog.String("kind", string(eh.entity.Kind)),
			slog.String("mode", mode.String()),
			slog.Int("count", len(removed)),
			slog.String("session", httpCtx.SessionID(ctx)),
		)
	}

	to := commonComp.BaseURL(ctx,
		commonComp.WithPath(eh.entity.basePath()),
		commonComp.WithValues("deleted", strconv.Itoa(len(removed))),
	)

	http.Redirect(w, r, string(to), http.StatusSeeOther)
}

func (eh *entityHandler[T]) handleDeleteCancel(w http.ResponseWriter, r *http.Request) {
	eh.mutate(w, r, func(m *collection.Manager[T]) {
		m.Cancel()
	})
}

func (eh *entityHandler[T]) getDetailPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	found := false
	err := eh.use(r.Context(), func(m *collection.Manager[T]) error {
		found = m.OpenDetailByID(id)
		return nil
	})
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if !found {
		common.HandleError(w, r, common.NewNotFoundError("Cet élément n'existe pas ou a été supprimé."))
		return
	}

	eh.renderListPage(w, r)
}

func (eh *entityHandler[T]) handleDetailClose(w http.ResponseWriter, r *http.Request) {
	eh.mutate(w, r, func(m *collection.Manager[T]) {
		m.CloseDetail()
	})
}

func (eh *entityHandler[T]) handleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := eh.workspaces.ResetKind(ctx, httpCtx.SessionID(ctx), eh.entity.Kind); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	redirect(w, r, eh.entity.basePath())
}
