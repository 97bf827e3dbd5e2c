package http

import (
	"net/http"
	"time"
)

type BasicAuth struct {
	Username string
	Password string
	// Prefixes restricted by the account. Every route is restricted when empty.
	Prefixes []string
}

type Options struct {
	Address         string
	BaseURL         string
	BasicAuth       *BasicAuth
	Mounts          map[string]http.Handler
	Middlewares     []func(http.Handler) http.Handler
	ShutdownTimeout time.Duration
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:         ":3003",
		BaseURL:         "",
		Mounts:          map[string]http.Handler{},
		ShutdownTimeout: 10 * time.Second,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

func WithBasicAuth(username, password string, prefixes ...string) OptionFunc {
	return func(opts *Options) {
		opts.BasicAuth = &BasicAuth{
			Username: username,
			Password: password,
			Prefixes: prefixes,
		}
	}
}

// WithMiddleware wraps every mounted handler, the first middleware being
// the outermost one.
func WithMiddleware(middlewares ...func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Middlewares = append(opts.Middlewares, middlewares...)
	}
}

func WithShutdownTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.ShutdownTimeout = timeout
	}
}
