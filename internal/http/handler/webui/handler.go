package webui

import (
	"net/http"
	"strings"

	"github.com/bornholm/vitrine/internal/core/port"
	"github.com/bornholm/vitrine/internal/core/service"
	"github.com/bornholm/vitrine/internal/core/widget"
	"github.com/bornholm/vitrine/internal/http/handler/webui/admin"
	"github.com/bornholm/vitrine/internal/http/handler/webui/common"
	"github.com/bornholm/vitrine/internal/http/handler/webui/website"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(workspaces *service.WorkspaceRegistry, stats *service.StatsService, widgets *widget.Widgets, content port.SiteContentSource) *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	mount(h.mux, "/", website.NewHandler(content, stats))
	mount(h.mux, "/admin/", admin.NewHandler(workspaces, stats, widgets))
	mount(h.mux, "/assets/", common.NewHandler())

	return h
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
