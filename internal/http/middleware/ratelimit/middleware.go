package ratelimit

import (
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bornholm/vitrine/internal/metrics"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

type Options struct {
	// TrustHeaders uses X-Forwarded-For and X-Real-Ip to identify clients
	TrustHeaders bool
	Interval     time.Duration
	Burst        int
	CacheSize    int
	CacheTTL     time.Duration
	// OnLimited writes the response sent to rejected clients
	OnLimited http.HandlerFunc
}

type OptionFunc func(opts *Options)

func WithTrustHeaders(trust bool) OptionFunc {
	return func(opts *Options) {
		opts.TrustHeaders = trust
	}
}

func WithLimit(interval time.Duration, burst int) OptionFunc {
	return func(opts *Options) {
		opts.Interval = interval
		opts.Burst = burst
	}
}

func WithCache(size int, ttl time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.CacheSize = size
		opts.CacheTTL = ttl
	}
}

func WithOnLimited(fn http.HandlerFunc) OptionFunc {
	return func(opts *Options) {
		opts.OnLimited = fn
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Interval:  time.Second,
		Burst:     20,
		CacheSize: 1024,
		CacheTTL:  10 * time.Minute,
		OnLimited: func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// Middleware limits the request rate of each client with a token bucket.
// Buckets of idle clients expire with the cache entries.
func Middleware(funcs ...OptionFunc) func(http.Handler) http.Handler {
	opts := NewOptions(funcs...)

	cache := expirable.NewLRU[string, *rate.Limiter](opts.CacheSize, nil, opts.CacheTTL)

	getLimiter := func(remoteAddr string) *rate.Limiter {
		limiter, exists := cache.Get(remoteAddr)
		if !exists {
			limiter = rate.NewLimiter(rate.Every(opts.Interval), opts.Burst)
			cache.Add(remoteAddr, limiter)
		}

		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			remoteAddr := getRemoteAddr(r, opts.TrustHeaders)
			limiter := getLimiter(remoteAddr)

			reservation := limiter.Reserve()
			if !reservation.OK() {
				reject(w, r, opts, remoteAddr)
				return
			}

			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()

				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				reject(w, r, opts, remoteAddr)
				return
			}

			tokens := limiter.Tokens()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(opts.Burst))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%.0f", math.Max(tokens, 0)))

			missing := float64(opts.Burst) - tokens
			resetTime := time.Now().Add(time.Duration(missing * float64(opts.Interval)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

			next.ServeHTTP(w, r)
		})
	}
}

func reject(w http.ResponseWriter, r *http.Request, opts *Options, remoteAddr string) {
	metrics.RateLimitedRequests.Inc()
	slog.DebugContext(r.Context(), "request rate limited", slog.String("remote_addr", remoteAddr))
	opts.OnLimited(w, r)
}

func getRemoteAddr(r *http.Request, trustHeaders bool) string {
	if trustHeaders {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}

		if xri := r.Header.Get("X-Real-Ip"); xri != "" {
			return xri
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
