// Package app wires configuration, infrastructure clients, the dashboard
// service and the HTTP listeners into one runnable process.  Both the
// dashboard binary and "pgdash serve" start the server through it.
package app

import (
	"context"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/turtacn/patents-gdp-dashboard/internal/application/dashboard"
	"github.com/turtacn/patents-gdp-dashboard/internal/config"
	rediscache "github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/database/redis"
	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/prometheus"
	storage "github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/storage/minio"
	httpserver "github.com/turtacn/patents-gdp-dashboard/internal/interfaces/http"
	"github.com/turtacn/patents-gdp-dashboard/internal/interfaces/http/handlers"
	"github.com/turtacn/patents-gdp-dashboard/internal/interfaces/http/middleware"
)

// NewLogger builds the process logger from the log section.
func NewLogger(cfg config.LogConfig) (logging.Logger, error) {
	return logging.NewLogger(logging.LogConfig{
		Level:        cfg.Level,
		Format:       cfg.Format,
		OutputPaths:  cfg.OutputPaths,
		EnableCaller: cfg.EnableCaller,
	})
}

// Infrastructure holds the optional external clients.  Either field may be
// nil when the configuration does not call for it.
type Infrastructure struct {
	Redis *rediscache.Client
	MinIO *storage.Client
}

// Close releases every open client.
func (i *Infrastructure) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
}

// ObjectStore returns the MinIO client as a dashboard.ObjectStore, or nil.
func (i *Infrastructure) ObjectStore() dashboard.ObjectStore {
	if i.MinIO == nil {
		return nil
	}
	return i.MinIO
}

// FigureCache returns the shared Redis cache, or nil when Redis is disabled.
func (i *Infrastructure) FigureCache(cfg config.RedisConfig, logger logging.Logger) dashboard.FigureCache {
	if i.Redis == nil {
		return nil
	}
	return rediscache.NewFigureCache(i.Redis, logger,
		rediscache.WithPrefix(cfg.KeyPrefix),
		rediscache.WithDefaultTTL(cfg.TTL))
}

// InitInfrastructure connects the clients cfg enables.
func InitInfrastructure(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Infrastructure, error) {
	infra := &Infrastructure{}

	if cfg.Redis.Enabled {
		rc, err := rediscache.NewClient(ctx, rediscache.Options{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
		}, logger.Named("redis"))
		if err != nil {
			return nil, err
		}
		infra.Redis = rc
	}

	if cfg.NeedsMinIO() {
		mc, err := storage.NewClient(ctx, storage.Options{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			Bucket:    cfg.MinIO.Bucket,
			Region:    cfg.MinIO.Region,
			UseSSL:    cfg.MinIO.UseSSL,
		}, logger.Named("minio"))
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.MinIO = mc
	}
	return infra, nil
}

// NewService builds an uninitialised dashboard service over infra.
func NewService(cfg *config.Config, infra *Infrastructure, metrics *prometheus.DashboardMetrics,
	logger logging.Logger) (*dashboard.Service, error) {
	src, err := dashboard.NewDatasetSource(cfg.Dataset, infra.ObjectStore())
	if err != nil {
		return nil, err
	}
	return dashboard.NewService(dashboard.Deps{
		Source:   src,
		Cache:    infra.FigureCache(cfg.Redis, logger.Named("cache")),
		CacheTTL: cfg.Redis.TTL,
		Options:  dashboard.OptionsFromConfig(cfg.Chart),
		Page:     dashboard.PageFromConfig(cfg),
		Metrics:  metrics,
		Logger:   logger.Named("dashboard"),
	})
}

// App is a fully wired dashboard process.
type App struct {
	cfg    *config.Config
	logger logging.Logger
	infra  *Infrastructure

	Collector prometheus.MetricsCollector
	Metrics   *prometheus.DashboardMetrics
	Service   *dashboard.Service

	page *httpserver.Server
	ops  *httpserver.Server
}

// New connects infrastructure and assembles the service, routers and
// servers.  Nothing is listening and the dataset is not read until Run.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            cfg.Metrics.Namespace,
		EnableGoMetrics:      cfg.Metrics.EnableGoMetrics,
		EnableProcessMetrics: cfg.Metrics.EnableProcessMetrics,
	}, logger)
	if err != nil {
		return nil, err
	}
	metrics := prometheus.NewDashboardMetrics(collector)

	infra, err := InitInfrastructure(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	svc, err := NewService(cfg, infra, metrics, logger)
	if err != nil {
		infra.Close()
		return nil, err
	}
	assets, err := dashboard.NewAssetSource(cfg.Assets, infra.ObjectStore())
	if err != nil {
		infra.Close()
		return nil, err
	}

	a := &App{
		cfg:       cfg,
		logger:    logger,
		infra:     infra,
		Collector: collector,
		Metrics:   metrics,
		Service:   svc,
	}

	dh := handlers.NewDashboardHandler(svc, assets, metrics, logger.Named("http"), cfg.Assets.CacheMaxAge)
	router := httpserver.NewRouter(httpserver.RouterConfig{
		DashboardHandler: dh,
		Logger:           logger.Named("http"),
		Logging:          middleware.DefaultLoggingConfig(),
		Metrics:          metrics,
	})
	a.page = httpserver.NewServer(cfg.Server.Addr(), router, httpserver.ServerOptions{
		Name:            "dashboard",
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, logger)

	if cfg.Ops.Enabled {
		ops := httpserver.NewOpsRouter(httpserver.OpsRouterConfig{
			HealthHandler:    handlers.NewHealthHandler(config.Version, a.healthCheckers()...),
			MetricsCollector: collector,
		})
		a.ops = httpserver.NewServer(cfg.Ops.Addr(), ops, httpserver.ServerOptions{
			Name:            "ops",
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		}, logger)
	}
	return a, nil
}

func (a *App) healthCheckers() []handlers.HealthChecker {
	checkers := []handlers.HealthChecker{
		handlers.CheckFunc("dashboard", func(context.Context) error {
			if !a.Service.Ready() {
				return dashboard.ErrNotReady
			}
			return nil
		}),
	}
	if a.infra.Redis != nil {
		checkers = append(checkers, handlers.CheckFunc("redis", a.infra.Redis.Ping))
	}
	if a.infra.MinIO != nil {
		checkers = append(checkers, handlers.CheckFunc("minio", a.infra.MinIO.HealthCheck))
	}
	return checkers
}

// Run builds the figure, listens on the configured addresses and serves
// until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	pageLn, err := net.Listen("tcp", a.cfg.Server.Addr())
	if err != nil {
		return err
	}
	var opsLn net.Listener
	if a.ops != nil {
		if opsLn, err = net.Listen("tcp", a.cfg.Ops.Addr()); err != nil {
			_ = pageLn.Close()
			return err
		}
	}
	return a.Serve(ctx, pageLn, opsLn)
}

// Serve is Run over caller-supplied listeners.  opsLn is ignored when the
// ops listener is disabled.  The figure is built before either listener
// accepts a request; a dataset error is returned without serving.
func (a *App) Serve(ctx context.Context, pageLn, opsLn net.Listener) error {
	if err := a.Service.Init(ctx); err != nil {
		_ = pageLn.Close()
		if opsLn != nil {
			_ = opsLn.Close()
		}
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.page.Serve(pageLn) })
	if a.ops != nil && opsLn != nil {
		g.Go(func() error { return a.ops.Serve(opsLn) })
	}
	g.Go(func() error {
		<-gctx.Done()
		return a.shutdown()
	})

	a.logger.Info("dashboard serving",
		logging.String("addr", pageLn.Addr().String()),
		logging.String("version", config.Version))
	return g.Wait()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout+time.Second)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.page.Stop(gctx) })
	if a.ops != nil {
		g.Go(func() error { return a.ops.Stop(gctx) })
	}
	return g.Wait()
}

// Close releases infrastructure clients.
func (a *App) Close() {
	a.infra.Close()
	_ = a.logger.Sync()
}

//Personal.AI order the ending
