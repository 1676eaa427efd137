package prometheus

import (
	"strconv"
	"time"
)

// DashboardMetrics holds every metric the dashboard records.
type DashboardMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Figure pipeline
	FigureBuildsTotal   CounterVec
	FigureBuildDuration HistogramVec
	FigureFrames        GaugeVec
	FigureBytes         GaugeVec
	DatasetRows         GaugeVec

	// Infrastructure
	CacheHitsTotal    CounterVec
	CacheMissesTotal  CounterVec
	AssetFetchErrors  CounterVec
	AssetFetchesTotal CounterVec

	// Health
	Ready GaugeVec
}

// Default bucket layouts.
var (
	DefaultHTTPDurationBuckets  = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
	DefaultBuildDurationBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}
)

// NewDashboardMetrics registers every dashboard metric on c.
func NewDashboardMetrics(c MetricsCollector) *DashboardMetrics {
	return &DashboardMetrics{
		HTTPRequestsTotal: c.RegisterCounter("http_requests_total",
			"Total number of HTTP requests served.", "method", "route", "status"),
		HTTPRequestDuration: c.RegisterHistogram("http_request_duration_seconds",
			"HTTP request latency in seconds.", DefaultHTTPDurationBuckets, "method", "route"),
		HTTPActiveRequests: c.RegisterGauge("http_active_requests",
			"Number of in-flight HTTP requests.", "listener"),

		FigureBuildsTotal: c.RegisterCounter("figure_builds_total",
			"Figure builds by outcome (built, cached, error).", "outcome"),
		FigureBuildDuration: c.RegisterHistogram("figure_build_duration_seconds",
			"Time spent building the animated figure.", DefaultBuildDurationBuckets),
		FigureFrames: c.RegisterGauge("figure_frames",
			"Number of animation frames in the served figure."),
		FigureBytes: c.RegisterGauge("figure_bytes",
			"Size of the serialised figure JSON."),
		DatasetRows: c.RegisterGauge("dataset_rows",
			"Number of rows loaded from the dataset."),

		CacheHitsTotal: c.RegisterCounter("cache_hits_total",
			"Figure cache hits.", "cache"),
		CacheMissesTotal: c.RegisterCounter("cache_misses_total",
			"Figure cache misses.", "cache"),
		AssetFetchErrors: c.RegisterCounter("asset_fetch_errors_total",
			"Static asset fetch failures by reason.", "reason"),
		AssetFetchesTotal: c.RegisterCounter("asset_fetches_total",
			"Static asset fetches by source.", "source"),

		Ready: c.RegisterGauge("ready",
			"1 once the figure has been built and the page can be served."),
	}
}

// RecordHTTPRequest records one completed HTTP request.
func (m *DashboardMetrics) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordFigureBuild records a figure build outcome.  d is ignored for
// outcomes other than "built".
func (m *DashboardMetrics) RecordFigureBuild(outcome string, d time.Duration) {
	m.FigureBuildsTotal.WithLabelValues(outcome).Inc()
	if outcome == "built" {
		m.FigureBuildDuration.WithLabelValues().Observe(d.Seconds())
	}
}

// RecordFigure sets the gauges describing the served figure.
func (m *DashboardMetrics) RecordFigure(rows, frames, bytes int) {
	m.DatasetRows.WithLabelValues().Set(float64(rows))
	m.FigureFrames.WithLabelValues().Set(float64(frames))
	m.FigureBytes.WithLabelValues().Set(float64(bytes))
}

// RecordCacheLookup counts a hit or miss against the named cache.
func (m *DashboardMetrics) RecordCacheLookup(cache string, hit bool) {
	if hit {
		m.CacheHitsTotal.WithLabelValues(cache).Inc()
		return
	}
	m.CacheMissesTotal.WithLabelValues(cache).Inc()
}

// RecordAssetFetch counts an asset fetch and, when reason is non-empty, its
// failure.
func (m *DashboardMetrics) RecordAssetFetch(source, reason string) {
	m.AssetFetchesTotal.WithLabelValues(source).Inc()
	if reason != "" {
		m.AssetFetchErrors.WithLabelValues(reason).Inc()
	}
}

// SetReady flips the readiness gauge.
func (m *DashboardMetrics) SetReady(ready bool) {
	v := 0.0
	if ready {
		v = 1
	}
	m.Ready.WithLabelValues().Set(v)
}

// NewNopDashboardMetrics returns metrics that record nothing, for tests and
// CLI commands that never expose /metrics.
func NewNopDashboardMetrics() *DashboardMetrics {
	return &DashboardMetrics{
		HTTPRequestsTotal:   noopCounterVec{},
		HTTPRequestDuration: noopHistogramVec{},
		HTTPActiveRequests:  noopGaugeVec{},
		FigureBuildsTotal:   noopCounterVec{},
		FigureBuildDuration: noopHistogramVec{},
		FigureFrames:        noopGaugeVec{},
		FigureBytes:         noopGaugeVec{},
		DatasetRows:         noopGaugeVec{},
		CacheHitsTotal:      noopCounterVec{},
		CacheMissesTotal:    noopCounterVec{},
		AssetFetchErrors:    noopCounterVec{},
		AssetFetchesTotal:   noopCounterVec{},
		Ready:               noopGaugeVec{},
	}
}

//Personal.AI order the ending
