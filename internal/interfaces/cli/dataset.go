package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/turtacn/patents-gdp-dashboard/internal/app"
	"github.com/turtacn/patents-gdp-dashboard/internal/application/dashboard"
	"github.com/turtacn/patents-gdp-dashboard/internal/application/snapshot"
	"github.com/turtacn/patents-gdp-dashboard/internal/domain/dataset"
	"github.com/turtacn/patents-gdp-dashboard/internal/domain/figure"
	"github.com/turtacn/patents-gdp-dashboard/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

// offlineInfra connects only what the offline commands need: object storage
// when the dataset lives there.  The shared figure cache is never touched.
func offlineInfra(ctx context.Context, cliCtx *CLIContext) (*app.Infrastructure, error) {
	cfg := *cliCtx.Config
	cfg.Redis.Enabled = false
	return app.InitInfrastructure(ctx, &cfg, cliCtx.Logger)
}

func loadDataset(ctx context.Context, cliCtx *CLIContext) (*dataset.Dataset, error) {
	infra, err := offlineInfra(ctx, cliCtx)
	if err != nil {
		return nil, err
	}
	defer infra.Close()

	src, err := dashboard.NewDatasetSource(cliCtx.Config.Dataset, infra.ObjectStore())
	if err != nil {
		return nil, err
	}
	raw, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Load(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	cliCtx.Logger.Debug("dataset loaded",
		logging.String("source", src.Describe()),
		logging.Int("rows", ds.Len()))
	return ds, nil
}

func requireYear(ds *dataset.Dataset, year string) error {
	if !ds.HasYear(year) {
		return errors.Newf(errors.ErrCodeValidation, "year %q is not in the dataset", year)
	}
	return nil
}

// NewFigureCmd creates the figure command.
func NewFigureCmd() *cobra.Command {
	var (
		outPath string
		indent  bool
	)

	cmd := &cobra.Command{
		Use:   "figure",
		Short: "Write the figure JSON",
		Long:  "Build the animated figure exactly as the server would and write its JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			infra, err := offlineInfra(cmd.Context(), cliCtx)
			if err != nil {
				return err
			}
			defer infra.Close()

			svc, err := app.NewService(cliCtx.Config, infra, nil, cliCtx.Logger)
			if err != nil {
				return err
			}
			if err := svc.Init(cmd.Context()); err != nil {
				return err
			}
			data, err := svc.FigureJSON()
			if err != nil {
				return err
			}
			if indent {
				var buf bytes.Buffer
				if err := json.Indent(&buf, data, "", "  "); err != nil {
					return err
				}
				data = buf.Bytes()
			}
			data = append(data, '\n')
			digest := svc.Digest()[:12]

			if outPath == "" || outPath == "-" {
				cliCtx.Logger.Debug("figure built", logging.String("digest", digest), logging.Int("bytes", len(data)))
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return err
			}
			PrintSuccess(cmd, fmt.Sprintf("figure written to %s (%d bytes, dataset %s)", outPath, len(data), digest))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "f", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent the JSON")
	return cmd
}

// framesResult lists one summary per animation frame.
type framesResult []figure.YearSummary

func (r framesResult) TableHeaders() []string {
	return []string{"YEAR", "RECORDS", "TOTAL PATENTS", "LEADER", "LEADER PATENTS"}
}

func (r framesResult) TableRows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, s := range r {
		rows = append(rows, []string{
			s.Year,
			strconv.Itoa(s.Records),
			dataset.FormatMagnitude(s.TotalPatents),
			s.Leader,
			dataset.FormatMagnitude(s.LeaderPatents),
		})
	}
	return rows
}

func (r framesResult) String() string {
	return FormatTable(r.TableHeaders(), r.TableRows())
}

// NewFramesCmd creates the frames command.
func NewFramesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frames",
		Short: "Summarise the animation frames",
		Long:  "Print one line per year of the dataset in frame order: record count, total patents and the leading country.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			ds, err := loadDataset(cmd.Context(), cliCtx)
			if err != nil {
				return err
			}
			return PrintResult(cmd, framesResult(figure.Summaries(ds)))
		},
	}
}

// summaryResult is the dataset extents with the chart's GDP axis limit.
type summaryResult struct {
	dataset.Summary `yaml:",inline"`
	AxisMax         float64 `json:"axis_max_gdp" yaml:"axis_max_gdp"`
}

func (r summaryResult) TableHeaders() []string { return []string{"FIELD", "VALUE"} }

func (r summaryResult) TableRows() [][]string {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return [][]string{
		{"rows", strconv.Itoa(r.Rows)},
		{"years", fmt.Sprintf("%d (%s to %s)", r.Years, r.FirstYear, r.LastYear)},
		{"countries", strconv.Itoa(r.Countries)},
		{"gdp", num(r.MinGDP) + " to " + num(r.MaxGDP)},
		{"pat_100k", fmt.Sprintf("%s to %s, mean %.2f", num(r.MinRatio), num(r.MaxRatio), r.MeanRatio)},
		{"max patents", dataset.FormatMagnitude(r.MaxPatents)},
		{"total patents", dataset.FormatMagnitude(r.TotalPatents)},
		{"beyond gdp axis", fmt.Sprintf("%d (axis max %s)", r.OutOfRangeGDP, num(r.AxisMax))},
	}
}

func (r summaryResult) String() string {
	return FormatTable(r.TableHeaders(), r.TableRows())
}

// NewSummaryCmd creates the summary command.
func NewSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Describe the dataset extents",
		Long:  "Print row, year and country counts, value ranges and the number of rows the fixed GDP axis will clip.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			ds, err := loadDataset(cmd.Context(), cliCtx)
			if err != nil {
				return err
			}
			axisMax := dashboard.OptionsFromConfig(cliCtx.Config.Chart).XRange[1]
			return PrintResult(cmd, summaryResult{Summary: ds.Summarize(axisMax), AxisMax: axisMax})
		},
	}
}

// TopEntry is one country of the flag overlay.
type TopEntry struct {
	Rank        int     `json:"rank" yaml:"rank"`
	Name        string  `json:"name" yaml:"name"`
	ISO2        string  `json:"iso_2" yaml:"iso_2"`
	ISO3        string  `json:"iso_3" yaml:"iso_3"`
	Patents     float64 `json:"patents" yaml:"patents"`
	OverlaySize float64 `json:"overlay_size" yaml:"overlay_size"`
	Flag        string  `json:"flag" yaml:"flag"`
}

// topResult is the top-N ranking for one year.
type topResult struct {
	Year    string     `json:"year" yaml:"year"`
	Entries []TopEntry `json:"entries" yaml:"entries"`
}

func (r topResult) TableHeaders() []string {
	return []string{"RANK", "COUNTRY", "ISO2", "PATENTS", "OVERLAY", "FLAG"}
}

func (r topResult) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Rank),
			e.Name,
			e.ISO2,
			dataset.FormatMagnitude(e.Patents),
			strconv.FormatFloat(e.OverlaySize, 'f', 4, 64),
			e.Flag,
		})
	}
	return rows
}

func (r topResult) String() string {
	return fmt.Sprintf("Top %d in %s\n", len(r.Entries), r.Year) + FormatTable(r.TableHeaders(), r.TableRows())
}

func rankTop(ds *dataset.Dataset, year string, n int, opts figure.Options) topResult {
	res := topResult{Year: year, Entries: []TopEntry{}}
	for i, rec := range figure.SelectTopN(ds, year, n) {
		res.Entries = append(res.Entries, TopEntry{
			Rank:        i + 1,
			Name:        rec.Name,
			ISO2:        rec.ISO2,
			ISO3:        rec.ISO3,
			Patents:     rec.Patents,
			OverlaySize: figure.OverlaySize(rec.Patents, ds.MaxPatents()),
			Flag:        figure.FlagSource(opts.AssetBase, rec.ISO2),
		})
	}
	return res
}

// NewTopCmd creates the top command.
func NewTopCmd() *cobra.Command {
	var (
		year string
		n    int
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the countries that get a flag overlay",
		Long:  "Rank the countries of one year by patents granted, ties in dataset order.  Defaults to the reference year and overlay size of the chart configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			opts := dashboard.OptionsFromConfig(cliCtx.Config.Chart)
			if year == "" {
				year = opts.ReferenceYear
			}
			if n == 0 {
				n = opts.TopN
			}
			if n < 0 {
				return errors.Newf(errors.ErrCodeValidation, "--count must be positive, got %d", n)
			}

			ds, err := loadDataset(cmd.Context(), cliCtx)
			if err != nil {
				return err
			}
			if err := requireYear(ds, year); err != nil {
				return err
			}
			return PrintResult(cmd, rankTop(ds, year, n, opts))
		},
	}

	cmd.Flags().StringVarP(&year, "year", "y", "", "year to rank (default: chart.reference_year)")
	cmd.Flags().IntVarP(&n, "count", "n", 0, "number of countries (default: chart.top_n)")
	return cmd
}

// NewSnapshotCmd creates the snapshot command.
func NewSnapshotCmd() *cobra.Command {
	var (
		year    string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one year as a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			opts := dashboard.OptionsFromConfig(cliCtx.Config.Chart)
			if year == "" {
				year = opts.InitialYear
			}
			if outPath == "" {
				outPath = "snapshot-" + year + ".png"
			}

			ds, err := loadDataset(cmd.Context(), cliCtx)
			if err != nil {
				return err
			}
			if err := requireYear(ds, year); err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := snapshot.Render(&buf, ds, year, opts); err != nil {
				return err
			}
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return err
			}
			PrintSuccess(cmd, fmt.Sprintf("snapshot of %s written to %s", year, outPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&year, "year", "y", "", "year to render (default: chart.initial_year)")
	cmd.Flags().StringVarP(&outPath, "out", "f", "", "output PNG path (default: snapshot-<year>.png)")
	return cmd
}

//Personal.AI order the ending
