package setup

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/vitrine/internal/build"
	"github.com/bornholm/vitrine/internal/config"
	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/pkg/errors"
)

// SetupSentry initializes error reporting when a DSN is configured. The
// returned function flushes pending events.
func SetupSentry(ctx context.Context, conf *config.Config) (func(), error) {
	if conf.Sentry.DSN == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         conf.Sentry.DSN,
		Environment: conf.Sentry.Environment,
		Release:     build.ShortVersion,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not initialize sentry")
	}

	slog.InfoContext(ctx, "sentry error reporting enabled", slog.String("environment", conf.Sentry.Environment))

	return func() {
		sentry.Flush(2 * time.Second)
	}, nil
}

func newSentryMiddleware(conf *config.Config) func(http.Handler) http.Handler {
	if conf.Sentry.DSN == "" {
		return func(h http.Handler) http.Handler { return h }
	}

	return sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle
}
