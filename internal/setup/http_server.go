package setup

import (
	"context"

	"github.com/bornholm/vitrine/internal/config"
	"github.com/bornholm/vitrine/internal/http"
	"github.com/bornholm/vitrine/internal/http/handler/metrics"
	"github.com/bornholm/vitrine/internal/http/handler/webui"
	"github.com/bornholm/vitrine/internal/http/middleware/session"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session store from config")
	}

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

	source, err := getSeedSource(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create seed source from config")
	}

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMiddleware(
			newSentryMiddleware(conf),
			session.Middleware(sessionStore, conf.HTTP.Session.Cookie.Name),
		),
		http.WithMount("/api/v1/", api),
		http.WithMount("/metrics", metrics.NewHandler()),
		http.WithMount("/", webui.NewHandler(workspaces, stats, widgets, source)),
	}

	if admin := conf.HTTP.Admin; admin.Username != "" {
		options = append(options, http.WithBasicAuth(admin.Username, admin.Password, "/admin/", "/metrics"))
	}

	server := http.NewServer(options...)

	return server, nil
}
