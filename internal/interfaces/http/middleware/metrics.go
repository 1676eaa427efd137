package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/prometheus"
)

// unmatchedRoute labels requests no route matched, keeping label cardinality
// bounded.
const unmatchedRoute = "unmatched"

// Metrics records request counts, latencies and in-flight requests labelled
// by the chi route pattern.
func Metrics(m *prometheus.DashboardMetrics, listener string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			active := m.HTTPActiveRequests.WithLabelValues(listener)
			active.Inc()
			defer active.Dec()

			wrapped := newWrappedResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			m.RecordHTTPRequest(r.Method, routePattern(r), wrapped.statusCode, time.Since(start))
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}

//Personal.AI order the ending
