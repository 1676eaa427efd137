// Command dashboard serves the patents vs. GDP per capita page.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/patents-gdp-dashboard/internal/app"
	"github.com/turtacn/patents-gdp-dashboard/internal/config"
	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/logging"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	host := flag.String("host", "", "listen host (overrides server.host)")
	port := flag.Int("port", 0, "listen port (overrides server.port)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := app.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)
	logger.Info("starting dashboard",
		logging.String("version", config.Version),
		logging.String("addr", cfg.Server.Addr()),
		logging.String("dataset", cfg.Dataset.Source))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("initialisation failed", logging.Err(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		logger.Error("dashboard stopped with error", logging.Err(err))
		a.Close()
		os.Exit(1)
	}
	logger.Info("dashboard stopped")
}

// loadConfig reads path when it exists and otherwise falls back to PGD_*
// environment variables over the defaults.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && path == defaultConfigPath {
		return config.LoadFromEnv()
	}
	return config.Load(path)
}

//Personal.AI order the ending
