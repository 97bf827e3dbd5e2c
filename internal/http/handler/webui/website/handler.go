package website

import (
	"net/http"

	"github.com/bornholm/vitrine/internal/core/port"
	"github.com/bornholm/vitrine/internal/core/service"
)

type Handler struct {
	mux     *http.ServeMux
	content port.SiteContentSource
	stats   *service.StatsService
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(content port.SiteContentSource, stats *service.StatsService) *Handler {
	h := &Handler{
		mux:     http.NewServeMux(),
		content: content,
		stats:   stats,
	}

	h.mux.HandleFunc("GET /{$}", h.getHomePage)

	return h
}

var _ http.Handler = &Handler{}
