package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/prometheus"
)

func statusHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		_, _ = w.Write([]byte("body"))
	})
}

func observedLogger() (logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logging.NewLoggerFromCore(core), logs
}

func TestRequestLogging_LevelByStatus(t *testing.T) {
	cases := []struct {
		status int
		level  zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusNotFound, zapcore.WarnLevel},
		{http.StatusInternalServerError, zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		logger, logs := observedLogger()
		h := RequestID(RequestLogging(logger, DefaultLoggingConfig())(statusHandler(tc.status)))

		req := httptest.NewRequest(http.MethodGet, "/assets/US.png?v=1", nil)
		req.Header.Set(RequestIDHeader, "req-1")
		h.ServeHTTP(httptest.NewRecorder(), req)

		require.Equal(t, 1, logs.Len(), "status %d", tc.status)
		entry := logs.All()[0]
		assert.Equal(t, tc.level, entry.Level)
		fields := entry.ContextMap()
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/assets/US.png?v=1", fields["path"])
		assert.EqualValues(t, tc.status, fields["status"])
		assert.EqualValues(t, 4, fields["bytes"])
		assert.Equal(t, "req-1", fields["request_id"])
	}
}

func TestRequestLogging_Slow(t *testing.T) {
	logger, logs := observedLogger()
	cfg := LoggingConfig{SlowThreshold: time.Nanosecond}
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Millisecond)
	})
	RequestLogging(logger, cfg)(slow).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.Contains(t, logs.All()[0].Message, "slow")
}

func TestRequestLogging_SkipPaths(t *testing.T) {
	logger, logs := observedLogger()
	h := RequestLogging(logger, DefaultLoggingConfig())(statusHandler(http.StatusNotFound))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))
	assert.Zero(t, logs.Len())
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ContextGetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "upstream-id", seen)
	assert.Equal(t, "upstream-id", w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 500))
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Len(t, seen, 36)

	assert.Empty(t, ContextGetRequestID(req.Context()))
}

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	c, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{Namespace: "test"}, nil)
	require.NoError(t, err)
	m := prometheus.NewDashboardMetrics(c)

	r := chi.NewRouter()
	r.Use(Metrics(m, "dashboard"))
	r.Get("/assets/*", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	for _, p := range []string{"/assets/US.png", "/assets/JP.png", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	out := w.Body.String()
	assert.Contains(t, out, `test_http_requests_total{method="GET",route="/assets/*",status="200"} 2`)
	assert.Contains(t, out, `test_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, out, `test_http_active_requests{listener="dashboard"} 0`)
}

//Personal.AI order the ending
