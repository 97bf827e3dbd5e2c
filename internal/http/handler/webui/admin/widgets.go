package admin

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/bornholm/vitrine/internal/core/model"
	httpCtx "github.com/bornholm/vitrine/internal/http/context"
	"github.com/bornholm/vitrine/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/vitrine/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

const (
	calendarErrorTitle = "title"
	calendarErrorDate  = "date"
)

func (h *Handler) handleCalendarEventCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewBadRequestError(err, "Le formulaire est invalide."))
		return
	}

	event := model.CalendarEvent{
		ID:    model.NewID(),
		Title: strings.TrimSpace(r.PostFormValue("title")),
		Date:  strings.TrimSpace(r.PostFormValue("date")),
		Time:  strings.TrimSpace(r.PostFormValue("time")),
		Notes: strings.TrimSpace(r.PostFormValue("notes")),
	}

	if event.Title == "" {
		redirectCalendarError(w, r, calendarErrorTitle)
		return
	}

	if _, err := event.Day(); err != nil {
		redirectCalendarError(w, r, calendarErrorDate)
		return
	}

	if event.Time != "" {
		if _, err := time.Parse("15:04", event.Time); err != nil {
			redirectCalendarError(w, r, calendarErrorDate)
			return
		}
	}

	_, err := h.widgets.CalendarEvents.Update(ctx, httpCtx.SessionID(ctx), func(events []model.CalendarEvent) []model.CalendarEvent {
		return append(events, event)
	})
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	redirect(w, r, "/admin/")
}

func redirectCalendarError(w http.ResponseWriter, r *http.Request, reason string) {
	to := commonComp.BaseURL(r.Context(), commonComp.WithPath("/admin/"), commonComp.WithValues("calendar_error", reason))
	http.Redirect(w, r, string(to), http.StatusSeeOther)
}

func (h *Handler) handleCalendarEventDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	_, err := h.widgets.CalendarEvents.Update(ctx, httpCtx.SessionID(ctx), func(events []model.CalendarEvent) []model.CalendarEvent {
		return slices.DeleteFunc(events, func(e model.CalendarEvent) bool { return e.ID == id })
	})
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	redirect(w, r, "/admin/")
}

func (h *Handler) handleGoalCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewBadRequestError(err, "Le formulaire est invalide."))
		return
	}

	label := strings.TrimSpace(r.PostFormValue("label"))
	if label == "" {
		redirect(w, r, "/admin/")
		return
	}

	goal := model.Goal{
		ID:        model.NewID(),
		Label:     label,
		CreatedAt: time.Now().UTC(),
	}

	_, err := h.widgets.Goals.Update(ctx, httpCtx.SessionID(ctx), func(goals []model.Goal) []model.Goal {
		return append(goals, goal)
	})
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	redirect(w, r, "/admin/")
}

func (h *Handler) handleGoalToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	_, err := h.widgets.Goals.Update(ctx, httpCtx.SessionID(ctx), func(goals []model.Goal) []model.Goal {
		for i := range goals {
			if goals[i].ID == id {
				goals[i].Done = !goals[i].Done
			}
		}
		return goals
	})
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	redirect(w, r, "/admin/")
}

func (h *Handler) handleGoalDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	_, err := h.widgets.Goals.Update(ctx, httpCtx.SessionID(ctx), func(goals []model.Goal) []model.Goal {
		return slices.DeleteFunc(goals, func(g model.Goal) bool { return g.ID == id })
	})
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	redirect(w, r, "/admin/")
}
