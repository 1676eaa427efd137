// Package config defines the configuration structures of the patents-gdp
// dashboard.  No I/O or parsing logic lives in this file, only plain data
// types and validation.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Version is injected at build time via ldflags.
var Version = "dev"

// Source kinds for the dataset and the static assets.
const (
	SourceFile  = "file"
	SourceMinIO = "minio"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds the public dashboard listener tunables.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// OpsConfig holds the operations listener (health probes and metrics).
type OpsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
}

// Addr returns host:port.
func (o OpsConfig) Addr() string {
	return fmt.Sprintf("%s:%d", o.Host, o.Port)
}

// DatasetConfig says where the CSV dataset is read from.
type DatasetConfig struct {
	Source string `mapstructure:"source"` // "file" | "minio"
	Path   string `mapstructure:"path"`   // local path when source=file
	Object string `mapstructure:"object"` // object key when source=minio
}

// AssetsConfig says where flag images and the page background come from.
type AssetsConfig struct {
	Source      string        `mapstructure:"source"` // "file" | "minio"
	Dir         string        `mapstructure:"dir"`    // local directory when source=file
	Prefix      string        `mapstructure:"prefix"` // object key prefix when source=minio
	Background  string        `mapstructure:"background"`
	CacheMaxAge time.Duration `mapstructure:"cache_max_age"`
}

// ChartConfig carries the figure layout and frame-builder parameters.
type ChartConfig struct {
	Title         string  `mapstructure:"title"`
	PageTitle     string  `mapstructure:"page_title"`
	InitialYear   string  `mapstructure:"initial_year"`
	ReferenceYear string  `mapstructure:"reference_year"`
	TopN          int     `mapstructure:"top_n"`
	SizeDivisor   float64 `mapstructure:"size_divisor"`
	XMin          float64 `mapstructure:"x_min"`
	XMax          float64 `mapstructure:"x_max"`
	YMin          float64 `mapstructure:"y_min"`
	YMax          float64 `mapstructure:"y_max"`
	Width         int     `mapstructure:"width"`
	Height        int     `mapstructure:"height"`
	FontFamily    string  `mapstructure:"font_family"`
	LabelColor    string  `mapstructure:"label_color"`
	PlotlyJSURL   string  `mapstructure:"plotly_js_url"`
}

// RedisConfig holds the optional shared figure cache.
type RedisConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	KeyPrefix   string        `mapstructure:"key_prefix"`
	TTL         time.Duration `mapstructure:"ttl"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// MinIOConfig holds the S3-compatible object storage used when the dataset or
// the assets are not on local disk.
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level        string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format       string   `mapstructure:"format"` // "json" | "console"
	OutputPaths  []string `mapstructure:"output_paths"`
	EnableCaller bool     `mapstructure:"enable_caller"`
}

// MetricsConfig holds the Prometheus registry settings.
type MetricsConfig struct {
	Namespace            string `mapstructure:"namespace"`
	EnableGoMetrics      bool   `mapstructure:"enable_go_metrics"`
	EnableProcessMetrics bool   `mapstructure:"enable_process_metrics"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Ops     OpsConfig     `mapstructure:"ops"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	Assets  AssetsConfig  `mapstructure:"assets"`
	Chart   ChartConfig   `mapstructure:"chart"`
	Redis   RedisConfig   `mapstructure:"redis"`
	MinIO   MinIOConfig   `mapstructure:"minio"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// NeedsMinIO reports whether any source reads from object storage.
func (c *Config) NeedsMinIO() bool {
	return c.Dataset.Source == SourceMinIO || c.Assets.Source == SourceMinIO
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers treat any error as fatal.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	if c.Ops.Enabled {
		if c.Ops.Port < 1 || c.Ops.Port > 65535 {
			return fmt.Errorf("ops.port %d is out of range [1, 65535]", c.Ops.Port)
		}
		if c.Ops.Port == c.Server.Port && c.Ops.Host == c.Server.Host {
			return fmt.Errorf("ops.port %d collides with server.port", c.Ops.Port)
		}
	}

	// Dataset
	switch c.Dataset.Source {
	case SourceFile:
		if strings.TrimSpace(c.Dataset.Path) == "" {
			return fmt.Errorf("dataset.path is required when dataset.source is %q", SourceFile)
		}
	case SourceMinIO:
		if strings.TrimSpace(c.Dataset.Object) == "" {
			return fmt.Errorf("dataset.object is required when dataset.source is %q", SourceMinIO)
		}
	default:
		return fmt.Errorf("dataset.source %q is invalid; expected file|minio", c.Dataset.Source)
	}

	// Assets
	switch c.Assets.Source {
	case SourceFile, SourceMinIO:
	default:
		return fmt.Errorf("assets.source %q is invalid; expected file|minio", c.Assets.Source)
	}

	// MinIO
	if c.NeedsMinIO() {
		if c.MinIO.Endpoint == "" {
			return fmt.Errorf("minio.endpoint is required when a source is %q", SourceMinIO)
		}
		if c.MinIO.Bucket == "" {
			return fmt.Errorf("minio.bucket is required when a source is %q", SourceMinIO)
		}
	}

	// Chart
	if c.Chart.SizeDivisor <= 0 {
		return fmt.Errorf("chart.size_divisor must be > 0, got %v", c.Chart.SizeDivisor)
	}
	if c.Chart.TopN < 0 {
		return fmt.Errorf("chart.top_n must be >= 0, got %d", c.Chart.TopN)
	}
	if c.Chart.XMin >= c.Chart.XMax {
		return fmt.Errorf("chart.x_min (%v) must be below chart.x_max (%v)", c.Chart.XMin, c.Chart.XMax)
	}
	if c.Chart.YMin >= c.Chart.YMax {
		return fmt.Errorf("chart.y_min (%v) must be below chart.y_max (%v)", c.Chart.YMin, c.Chart.YMax)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart.width and chart.height must be > 0")
	}

	// Redis
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when redis.enabled is true")
	}

	// Log
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics.namespace must not be empty")
	}
	return nil
}

//Personal.AI order the ending
