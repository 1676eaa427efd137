package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/turtacn/patents-gdp-dashboard/internal/application/dashboard"
	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

// PageRenderer is satisfied by *dashboard.Service.
type PageRenderer interface {
	Ready() bool
	Page(w io.Writer) error
}

// DashboardHandler serves the single page and its static assets.
type DashboardHandler struct {
	page    PageRenderer
	assets  dashboard.AssetSource
	metrics *prometheus.DashboardMetrics
	logger  logging.Logger
	maxAge  time.Duration
}

// NewDashboardHandler creates a DashboardHandler.  nil metrics and logger
// fall back to no-op implementations.
func NewDashboardHandler(page PageRenderer, assets dashboard.AssetSource, metrics *prometheus.DashboardMetrics,
	logger logging.Logger, maxAge time.Duration) *DashboardHandler {
	if metrics == nil {
		metrics = prometheus.NewNopDashboardMetrics()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &DashboardHandler{page: page, assets: assets, metrics: metrics, logger: logger, maxAge: maxAge}
}

// Page handles GET /.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	if !h.page.Ready() {
		writeAppError(w, dashboard.ErrNotReady)
		return
	}
	var buf bytes.Buffer
	if err := h.page.Page(&buf); err != nil {
		h.logger.Error("page render failed", logging.Err(err))
		writeAppError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(buf.Bytes())
}

// Asset handles GET /assets/*.
func (h *DashboardHandler) Asset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	a, err := h.assets.Fetch(r.Context(), name)
	if err != nil {
		if errors.IsNotFound(err) {
			h.metrics.RecordAssetFetch(h.assets.Kind(), "not_found")
			h.NotFound(w, r)
			return
		}
		h.metrics.RecordAssetFetch(h.assets.Kind(), "error")
		h.logger.Warn("asset fetch failed", logging.String("asset", name), logging.Err(err))
		writeAppError(w, err)
		return
	}
	h.metrics.RecordAssetFetch(h.assets.Kind(), "")

	w.Header().Set("Content-Type", a.ContentType)
	if h.maxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.maxAge.Seconds())))
	}
	http.ServeContent(w, r, a.Name, a.ModTime, bytes.NewReader(a.Data))
}

// NotFound answers every path other than the page and its assets.
func (h *DashboardHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}

//Personal.AI order the ending
