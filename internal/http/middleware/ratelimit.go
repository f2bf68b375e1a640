package middleware

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/manptz/realty-landing/internal/observability/metrics"
	"github.com/manptz/realty-landing/internal/ratelimit"
)

// RateLimit rejects submissions exceeding the injected limiter's window
// with 429 Too Many Requests. The identity is the client IP as left in
// RemoteAddr by chi's RealIP middleware; the limiter falls back to a
// sentinel identity when that is empty.
func RateLimit(limiter *ratelimit.Limiter, m *metrics.SiteMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := r.RemoteAddr
			// RealIP leaves a bare IP; direct connections carry a port.
			if host, _, err := net.SplitHostPort(identity); err == nil {
				identity = host
			}
			if !limiter.Allow(identity) {
				m.ObserveLead("rate_limited")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]any{
					"ok":    false,
					"error": "Слишком много запросов. Попробуйте позже.",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
