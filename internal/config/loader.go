package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	pkgerrors "github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

// envPrefix is the environment variable prefix used by all dashboard settings.
const envPrefix = "PGD"

var (
	// ErrConfigFileNotFound is returned when an explicit config path does not exist.
	ErrConfigFileNotFound = pkgerrors.New(pkgerrors.ErrCodeConfigNotFound, "config file not found")
	// ErrConfigParseError is returned when the file cannot be read or unmarshalled.
	ErrConfigParseError = pkgerrors.New(pkgerrors.ErrCodeConfigRead, "config could not be parsed")
	// ErrConfigValidation is returned when the merged configuration is invalid.
	ErrConfigValidation = pkgerrors.New(pkgerrors.ErrCodeConfigInvalid, "config validation failed")
)

// newViper builds a pre-configured Viper instance: YAML file type, PGD_ env
// prefix, automatic env binding and a "." → "_" key replacer so that
// "server.port" resolves to PGD_SERVER_PORT.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	registerDefaults(v)
	return v
}

// registerDefaults tells viper about every key.  AutomaticEnv only consults
// the environment for keys viper already knows, so without this a PGD_*
// variable would be ignored whenever the key is absent from the file.
func registerDefaults(v *viper.Viper) {
	v.SetDefault("server.host", DefaultServerHost)
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.read_timeout", DefaultServerReadTimeout)
	v.SetDefault("server.write_timeout", DefaultServerWriteTimeout)
	v.SetDefault("server.idle_timeout", DefaultServerIdleTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultServerShutdownTimeout)

	v.SetDefault("ops.enabled", true)
	v.SetDefault("ops.host", DefaultOpsHost)
	v.SetDefault("ops.port", DefaultOpsPort)

	v.SetDefault("dataset.source", DefaultDatasetSource)
	v.SetDefault("dataset.path", DefaultDatasetPath)
	v.SetDefault("dataset.object", DefaultDatasetObject)

	v.SetDefault("assets.source", DefaultAssetsSource)
	v.SetDefault("assets.dir", DefaultAssetsDir)
	v.SetDefault("assets.prefix", DefaultAssetsPrefix)
	v.SetDefault("assets.background", DefaultAssetsBackground)
	v.SetDefault("assets.cache_max_age", DefaultAssetsCacheMaxAge)

	v.SetDefault("chart.title", DefaultChartTitle)
	v.SetDefault("chart.page_title", DefaultChartPageTitle)
	v.SetDefault("chart.initial_year", DefaultChartInitialYear)
	v.SetDefault("chart.reference_year", DefaultChartReferenceYear)
	v.SetDefault("chart.top_n", DefaultChartTopN)
	v.SetDefault("chart.size_divisor", DefaultChartSizeDivisor)
	v.SetDefault("chart.x_min", DefaultChartXMin)
	v.SetDefault("chart.x_max", DefaultChartXMax)
	v.SetDefault("chart.y_min", DefaultChartYMin)
	v.SetDefault("chart.y_max", DefaultChartYMax)
	v.SetDefault("chart.width", DefaultChartWidth)
	v.SetDefault("chart.height", DefaultChartHeight)
	v.SetDefault("chart.font_family", DefaultChartFontFamily)
	v.SetDefault("chart.label_color", DefaultChartLabelColor)
	v.SetDefault("chart.plotly_js_url", DefaultChartPlotlyJSURL)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", DefaultRedisAddr)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", DefaultRedisKeyPrefix)
	v.SetDefault("redis.ttl", DefaultRedisTTL)
	v.SetDefault("redis.dial_timeout", DefaultRedisDialTimeout)

	v.SetDefault("minio.endpoint", "")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.bucket", "")
	v.SetDefault("minio.region", DefaultMinIORegion)
	v.SetDefault("minio.use_ssl", false)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output_paths", []string{"stdout"})
	v.SetDefault("log.enable_caller", false)

	v.SetDefault("metrics.namespace", DefaultMetricsNamespace)
	v.SetDefault("metrics.enable_go_metrics", true)
	v.SetDefault("metrics.enable_process_metrics", true)
}

// Load reads the YAML file at configPath, merges PGD_* environment overrides,
// applies defaults for unset fields and validates the result.  An empty
// configPath behaves like LoadFromEnv.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return LoadFromEnv()
	}
	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigFileNotFound.WithDetail(configPath)
		}
		return nil, ErrConfigParseError.WithDetail(configPath).WithCause(err)
	}

	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, ErrConfigParseError.WithDetail(configPath).WithCause(err)
	}
	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from PGD_* environment variables and defaults,
// with no config file required.
//
//	PGD_<SECTION>_<FIELD>   e.g.  PGD_SERVER_PORT, PGD_DATASET_PATH
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, ErrConfigParseError.WithCause(err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, ErrConfigValidation.WithCause(err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on any error.  main() only.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

//Personal.AI order the ending
