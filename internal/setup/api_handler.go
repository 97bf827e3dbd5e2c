package setup

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bornholm/vitrine/internal/config"
	"github.com/bornholm/vitrine/internal/http/handler/api"
	"github.com/bornholm/vitrine/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	workspaces, err := getWorkspaceRegistryFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create workspace registry from config")
	}

	stats, err := getStatsServiceFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create stats service from config")
	}

	widgets, err := getWidgetsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create widgets from config")
	}

	var handler http.Handler = api.NewHandler(workspaces, stats, widgets, api.PanelOptions{
		MaxWidth: conf.Panel.MaxWidth,
		EdgeGap:  conf.Panel.EdgeGap,
	})

	rateLimit := conf.HTTP.RateLimit
	if rateLimit.Enabled {
		handler = ratelimit.Middleware(
			ratelimit.WithLimit(rateLimit.Interval, rateLimit.Burst),
			ratelimit.WithCache(rateLimit.CacheSize, rateLimit.CacheTTL),
			ratelimit.WithTrustHeaders(rateLimit.TrustHeaders),
			ratelimit.WithOnLimited(writeRateLimited),
		)(handler)
	}

	handler = cors.New(cors.Options{
		AllowedOrigins: conf.HTTP.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(handler)

	return handler, nil
}

func writeRateLimited(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)

	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: http.StatusText(http.StatusTooManyRequests)})
}
