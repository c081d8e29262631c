// Package middleware holds the HTTP middleware shared by every catalog route.
package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rogerio-castellano/catalog-tracker/internal/http/ban"
	rl "github.com/rogerio-castellano/catalog-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/catalog-tracker/internal/obs"
)

type ctxKey int

const ctxKeyRequestID ctxKey = iota

var (
	limiter  *rl.Limiter
	banGuard *ban.Guard
)

// SetRateLimiter installs the per-client limiter. A nil limiter disables throttling.
func SetRateLimiter(l *rl.Limiter) {
	limiter = l
}

// SetBanGuard installs the strike/ban guard. A nil guard disables bans.
func SetBanGuard(g *ban.Guard) {
	banGuard = g
}

func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

type statusRecorder struct {
	h  http.ResponseWriter
	st int
	n  int
}

func (w *statusRecorder) Header() http.Header { return w.h.Header() }
func (w *statusRecorder) WriteHeader(code int) {
	w.st = code
	w.h.WriteHeader(code)
}
func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.h.Write(b)
	w.n += n
	return n, err
}

func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, reqID)))
	})
}

// WithLogging logs one line per request and records request metrics by route pattern.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{h: w, st: http.StatusOK}
		next.ServeHTTP(sr, r)
		lat := time.Since(start)

		route := routePattern(r)
		obs.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(sr.st)).Inc()
		obs.HTTPDuration.WithLabelValues(route).Observe(lat.Seconds())
		obs.Logger.Info("http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"route", route,
			"status", sr.st,
			"bytes", sr.n,
			"latency_ms", float64(lat.Microseconds())/1000.0,
			"request_id", RequestIDFromContext(r.Context()),
		)
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

// ClientKey identifies the caller for rate limiting purposes.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit refuses banned clients with 403 and throttled clients with 429.
// Every throttled request counts as a strike towards a ban.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := ClientKey(r)
		ctx := r.Context()

		if banGuard != nil {
			banned, err := banGuard.Banned(ctx, key)
			if err != nil {
				obs.Logger.Error("ban_lookup_failed", "error", err, "target", key)
			} else if banned {
				obs.RateLimitRejections.WithLabelValues("banned").Inc()
				http.Error(w, "too many requests: client temporarily banned", http.StatusForbidden)
				return
			}
		}

		if limiter != nil && !limiter.Allow(key) {
			obs.RateLimitRejections.WithLabelValues("throttled").Inc()
			if banGuard != nil {
				if _, err := banGuard.Strike(ctx, key, r.URL.Path); err != nil {
					obs.Logger.Error("ban_strike_failed", "error", err, "target", key)
				}
			}
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
