package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerHost            = "0.0.0.0"
	DefaultServerPort            = 8080
	DefaultServerReadTimeout     = 15 * time.Second
	DefaultServerWriteTimeout    = 15 * time.Second
	DefaultServerIdleTimeout     = 60 * time.Second
	DefaultServerShutdownTimeout = 30 * time.Second

	DefaultOpsHost = "0.0.0.0"
	DefaultOpsPort = 9090

	DefaultDatasetSource = SourceFile
	DefaultDatasetPath   = "dataset.csv"
	DefaultDatasetObject = "dataset.csv"

	DefaultAssetsSource      = SourceFile
	DefaultAssetsDir         = "assets"
	DefaultAssetsPrefix      = "assets/"
	DefaultAssetsBackground  = "db.jpg"
	DefaultAssetsCacheMaxAge = time.Hour

	DefaultChartTitle         = "Patents Granted"
	DefaultChartPageTitle     = "Patents Granted vs. GDP per Capita"
	DefaultChartInitialYear   = "1980"
	DefaultChartReferenceYear = "2021"
	DefaultChartTopN          = 8
	DefaultChartSizeDivisor   = 70.0
	DefaultChartXMin          = -200.0
	DefaultChartXMax          = 105000.0
	DefaultChartYMin          = -2.0
	DefaultChartYMax          = 8.0
	DefaultChartWidth         = 1300
	DefaultChartHeight        = 650
	DefaultChartFontFamily    = "Segoe UI"
	DefaultChartLabelColor    = "#FFAD00"
	DefaultChartPlotlyJSURL   = "https://cdn.plot.ly/plotly-2.27.0.min.js"

	DefaultRedisAddr        = "localhost:6379"
	DefaultRedisKeyPrefix   = "pgd:"
	DefaultRedisTTL         = 24 * time.Hour
	DefaultRedisDialTimeout = 5 * time.Second

	DefaultMinIORegion = "us-east-1"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMetricsNamespace = "pgd"
)

// NewDefaultConfig returns a Config populated entirely with defaults.  It is
// what the binaries fall back to when no config file is present.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Ops.Enabled = true
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-value fields in cfg with well-known defaults.
// It must be called after unmarshalling and before Validate.  Fields already
// set by the caller are left unchanged so explicit configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultServerHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultServerReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultServerWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultServerIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultServerShutdownTimeout
	}

	// ── Ops ───────────────────────────────────────────────────────────────────
	if cfg.Ops.Host == "" {
		cfg.Ops.Host = DefaultOpsHost
	}
	if cfg.Ops.Port == 0 {
		cfg.Ops.Port = DefaultOpsPort
	}

	// ── Dataset ───────────────────────────────────────────────────────────────
	if cfg.Dataset.Source == "" {
		cfg.Dataset.Source = DefaultDatasetSource
	}
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = DefaultDatasetPath
	}
	if cfg.Dataset.Object == "" {
		cfg.Dataset.Object = DefaultDatasetObject
	}

	// ── Assets ────────────────────────────────────────────────────────────────
	if cfg.Assets.Source == "" {
		cfg.Assets.Source = DefaultAssetsSource
	}
	if cfg.Assets.Dir == "" {
		cfg.Assets.Dir = DefaultAssetsDir
	}
	if cfg.Assets.Prefix == "" {
		cfg.Assets.Prefix = DefaultAssetsPrefix
	}
	if cfg.Assets.Background == "" {
		cfg.Assets.Background = DefaultAssetsBackground
	}
	if cfg.Assets.CacheMaxAge == 0 {
		cfg.Assets.CacheMaxAge = DefaultAssetsCacheMaxAge
	}

	// ── Chart ─────────────────────────────────────────────────────────────────
	if cfg.Chart.Title == "" {
		cfg.Chart.Title = DefaultChartTitle
	}
	if cfg.Chart.PageTitle == "" {
		cfg.Chart.PageTitle = DefaultChartPageTitle
	}
	if cfg.Chart.InitialYear == "" {
		cfg.Chart.InitialYear = DefaultChartInitialYear
	}
	if cfg.Chart.ReferenceYear == "" {
		cfg.Chart.ReferenceYear = DefaultChartReferenceYear
	}
	if cfg.Chart.TopN == 0 {
		cfg.Chart.TopN = DefaultChartTopN
	}
	if cfg.Chart.SizeDivisor == 0 {
		cfg.Chart.SizeDivisor = DefaultChartSizeDivisor
	}
	// 0 is a legitimate bound, so the axis defaults only apply when both
	// ends of a range are unset.
	if cfg.Chart.XMin == 0 && cfg.Chart.XMax == 0 {
		cfg.Chart.XMin, cfg.Chart.XMax = DefaultChartXMin, DefaultChartXMax
	}
	if cfg.Chart.YMin == 0 && cfg.Chart.YMax == 0 {
		cfg.Chart.YMin, cfg.Chart.YMax = DefaultChartYMin, DefaultChartYMax
	}
	if cfg.Chart.Width == 0 {
		cfg.Chart.Width = DefaultChartWidth
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = DefaultChartHeight
	}
	if cfg.Chart.FontFamily == "" {
		cfg.Chart.FontFamily = DefaultChartFontFamily
	}
	if cfg.Chart.LabelColor == "" {
		cfg.Chart.LabelColor = DefaultChartLabelColor
	}
	if cfg.Chart.PlotlyJSURL == "" {
		cfg.Chart.PlotlyJSURL = DefaultChartPlotlyJSURL
	}

	// ── Redis ─────────────────────────────────────────────────────────────────
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}
	if cfg.Redis.TTL == 0 {
		cfg.Redis.TTL = DefaultRedisTTL
	}
	if cfg.Redis.DialTimeout == 0 {
		cfg.Redis.DialTimeout = DefaultRedisDialTimeout
	}

	// ── MinIO ─────────────────────────────────────────────────────────────────
	if cfg.MinIO.Region == "" {
		cfg.MinIO.Region = DefaultMinIORegion
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stdout"}
	}

	// ── Metrics ───────────────────────────────────────────────────────────────
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
}

//Personal.AI order the ending
