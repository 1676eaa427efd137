package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/turtacn/patents-gdp-dashboard/internal/app"
	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard page",
		Long: "Build the animated figure from the dataset and serve it at / with its\n" +
			"assets under /assets/.  Health probes and metrics are served on the ops\n" +
			"listener when enabled.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			cfg := *cliCtx.Config
			if host != "" {
				cfg.Server.Host = host
			}
			if port != 0 {
				cfg.Server.Port = port
			}
			if f := cmd.Flag("log-level"); f != nil && f.Changed {
				cfg.Log.Level = f.Value.String()
			}
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid serve configuration")
			}

			logger, err := app.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			logging.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, &cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (overrides server.host)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides server.port)")
	return cmd
}

//Personal.AI order the ending
