package admin

import (
	"context"
	"net/http"

	"github.com/bornholm/vitrine/internal/core/collection"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/service"
	httpCtx "github.com/bornholm/vitrine/internal/http/context"
	commonComp "github.com/bornholm/vitrine/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

func (h *Handler) getWorkspace(ctx context.Context) (*service.Workspace, error) {
	workspace, err := h.workspaces.Get(ctx, httpCtx.SessionID(ctx))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return workspace, nil
}

func (h *Handler) newLayout(ctx context.Context, title string) (commonComp.AdminLayoutVModel, error) {
	workspace, err := h.getWorkspace(ctx)
	if err != nil {
		return commonComp.AdminLayoutVModel{}, errors.WithStack(err)
	}

	unread := 0
	_ = service.Use(workspace, service.Notifications, func(m *collection.Manager[model.Notification]) error {
		for _, n := range m.All() {
			if !n.Read {
				unread++
			}
		}
		return nil
	})

	return commonComp.AdminLayoutVModel{
		Title: title,
		Navbar: commonComp.NavbarVModel{
			Profile:             h.widgets.Profile.Load(ctx, httpCtx.SessionID(ctx)),
			UnreadNotifications: unread,
		},
	}, nil
}

func redirect(w http.ResponseWriter, r *http.Request, paths ...string) {
	to := commonComp.BaseURL(r.Context(), commonComp.WithPath(paths...))
	http.Redirect(w, r, string(to), http.StatusSeeOther)
}
