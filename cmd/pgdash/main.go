// Command pgdash is the command-line front end of the dashboard: it serves
// the page and exports the figure, frame summaries and snapshots offline.
package main

import (
	"context"
	"os"

	"github.com/turtacn/patents-gdp-dashboard/internal/config"
	"github.com/turtacn/patents-gdp-dashboard/internal/interfaces/cli"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
	config.Version = version
}

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}

//Personal.AI order the ending
