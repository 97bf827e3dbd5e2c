package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/vitrine/internal/config"
	"github.com/pkg/errors"
)

// RunServer starts the HTTP server described by the configuration and
// blocks until the context is cancelled.
func RunServer(ctx context.Context, conf *config.Config) error {
	slog.DebugContext(ctx, "using configuration",
		slog.String("address", conf.HTTP.Address),
		slog.String("base_url", conf.HTTP.BaseURL),
		slog.String("database", conf.Storage.Database.DSN),
		slog.Bool("admin_auth", conf.HTTP.Admin.Username != ""),
		slog.Bool("rate_limit", conf.HTTP.RateLimit.Enabled),
	)

	flush, err := SetupSentry(ctx, conf)
	if err != nil {
		return errors.WithStack(err)
	}

	defer flush()

	server, err := NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		return errors.Wrap(err, "could not setup http server")
	}

	slog.InfoContext(ctx, "starting server", slog.String("address", conf.HTTP.Address))

	if err := server.Run(ctx); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
