package api

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/vitrine/internal/core/collection"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/service"
	"github.com/bornholm/vitrine/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type ListRecordsResponse[T any] struct {
	Kind    model.Kind `json:"kind"`
	Query   string     `json:"query"`
	Records []T        `json:"records"`
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	Limit   int        `json:"limit"`
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind := model.Kind(r.PathValue("kind"))
	if !kind.Valid() {
		writeError(w, r, http.StatusNotFound, "unknown record kind")
		return
	}

	metrics.TotalRecordsRequests.With(prometheus.Labels{metrics.LabelKind: string(kind)}).Inc()

	workspace, err := h.getWorkspace(r)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve workspace", slogx.Error(err))
		writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	switch kind {
	case model.KindIntern:
		listRecords(w, r, kind, searchWorkspace(workspace, service.Interns))
	case model.KindEmployee:
		listRecords(w, r, kind, searchWorkspace(workspace, service.Employees))
	case model.KindApplicant:
		listRecords(w, r, kind, searchWorkspace(workspace, service.Applicants))
	case model.KindNotification:
		listRecords(w, r, kind, searchWorkspace(workspace, service.Notifications))
	}
}

type searchFunc[T any] func(term string) ([]T, error)

// searchWorkspace applies the term to a throwaway view so the visitor's own
// list keeps its current search.
func searchWorkspace[T any](workspace *service.Workspace, selector service.ManagerSelector[T]) searchFunc[T] {
	return func(term string) ([]T, error) {
		var filtered []T

		err := service.Use(workspace, selector, func(m *collection.Manager[T]) error {
			filtered = m.Matching(term)
			return nil
		})
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return filtered, nil
	}
}

func listRecords[T any](w http.ResponseWriter, r *http.Request, kind model.Kind, search searchFunc[T]) {
	ctx := r.Context()
	query := r.URL.Query()
	page := getQueryPage(query, 0)
	limit := getQueryLimit(query, 50)
	term := query.Get("q")

	filtered, err := search(term)
	if err != nil {
		slog.ErrorContext(ctx, "could not search records", slog.String("kind", string(kind)), slogx.Error(err))
		writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	res := ListRecordsResponse[T]{
		Kind:    kind,
		Query:   term,
		Records: paginate(filtered, page, limit),
		Total:   len(filtered),
		Page:    page,
		Limit:   limit,
	}

	writeJSON(w, r, http.StatusOK, res)
}

func paginate[T any](records []T, page int, limit int) []T {
	if limit <= 0 {
		return []T{}
	}

	start := page * limit
	if start >= len(records) {
		return []T{}
	}

	end := min(start+limit, len(records))

	return records[start:end]
}
