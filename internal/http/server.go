package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/bornholm/go-x/slogx"
	httpCtx "github.com/bornholm/vitrine/internal/http/context"
	"github.com/pkg/errors"
	sloghttp "github.com/samber/slog-http"
)

type Server struct {
	opts *Options
}

// Handler returns the root handler with every mount and middleware applied.
func (s *Server) Handler() (http.Handler, error) {
	baseURL, err := url.Parse(s.opts.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse base url '%s'", s.opts.BaseURL)
	}

	mux := http.NewServeMux()

	for prefix, handler := range s.opts.Mounts {
		for i := len(s.opts.Middlewares) - 1; i >= 0; i-- {
			handler = s.opts.Middlewares[i](handler)
		}

		mount(mux, prefix, handler)
	}

	var handler http.Handler = mux

	if s.opts.BasicAuth != nil {
		handler = s.basicAuth(handler)
	}

	handler = withURLs(baseURL, handler)
	handler = sloghttp.Recovery(handler)
	handler = sloghttp.NewWithConfig(slog.Default(), sloghttp.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	})(handler)

	return handler, nil
}

// Run listens on the configured address until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return errors.WithStack(err)
	}

	server := &http.Server{
		Addr:    s.opts.Address,
		Handler: handler,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	listener, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return errors.Wrapf(err, "could not listen on '%s'", s.opts.Address)
	}

	errs := make(chan error, 1)

	go func() {
		defer close(errs)

		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- errors.WithStack(err)
		}
	}()

	slog.InfoContext(ctx, "http server listening", slog.String("address", listener.Addr().String()))

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	slog.InfoContext(ctx, "shutting down http server")

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "could not shutdown server gracefully", slogx.Error(err))
		return errors.WithStack(err)
	}

	return nil
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)

	return &Server{
		opts: opts,
	}
}

func withURLs(baseURL *url.URL, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		currentURL := *r.URL

		ctx = httpCtx.SetBaseURL(ctx, baseURL)
		ctx = httpCtx.SetCurrentURL(ctx, &currentURL)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}
