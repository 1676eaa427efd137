package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/patents-gdp-dashboard/internal/application/dashboard"
	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/patents-gdp-dashboard/internal/interfaces/http/handlers"
	"github.com/turtacn/patents-gdp-dashboard/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the dependencies of the public dashboard router.
type RouterConfig struct {
	DashboardHandler *handlers.DashboardHandler

	Logger  logging.Logger
	Logging middleware.LoggingConfig
	Metrics *prometheus.DashboardMetrics
}

// NewRouter builds the public route tree: the page at /, its assets under
// /assets/, and 404 for everything else.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogging(cfg.Logger, cfg.Logging))
	}
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics, "dashboard"))
	}
	r.Use(chimw.Recoverer)
	r.Use(chimw.GetHead)

	h := cfg.DashboardHandler
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	r.Get("/", h.Page)
	r.Get("/"+dashboard.AssetRoute+"/*", h.Asset)

	return r
}

// OpsRouterConfig aggregates the dependencies of the operations router.
type OpsRouterConfig struct {
	HealthHandler    *handlers.HealthHandler
	MetricsCollector prometheus.MetricsCollector
}

// NewOpsRouter builds the probe and metrics routes served on the ops
// listener, away from the public page.
func NewOpsRouter(cfg OpsRouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsCollector != nil {
		r.Handle("/metrics", cfg.MetricsCollector.Handler())
	}
	return r
}

//Personal.AI order the ending
