package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/turtacn/patents-gdp-dashboard/internal/application/dashboard"
	"github.com/turtacn/patents-gdp-dashboard/internal/domain/dataset"
	"github.com/turtacn/patents-gdp-dashboard/internal/domain/figure"
	"github.com/turtacn/patents-gdp-dashboard/internal/testutil"
	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	f := testutil.WriteFixture(t, testutil.SampleCSV)
	return f.WriteConfig(t, "log:\n  format: console\n"), f.Dir
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	color.NoColor = true
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestNewRootCommand_Structure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "pgdash", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"serve", "figure", "frames", "summary", "top", "snapshot", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}

	for _, flag := range []string{"config", "log-level", "output", "no-color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing flag %q", flag)
	}
	assert.Equal(t, OutputText, cmd.PersistentFlags().Lookup("output").DefValue)

	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.NotNil(t, serve.Flags().Lookup("host"))
	assert.NotNil(t, serve.Flags().Lookup("port"))
}

func TestRoot_InvalidOutputFormat(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	_, _, err := run(t, "--config", cfgPath, "-o", "xml", "version")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}

func TestRoot_MissingConfig(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "version")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeConfigNotFound))
}

func TestVersionCmd(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	out, _, err := run(t, "--config", cfgPath, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pgdash dev"))

	out, _, err = run(t, "--config", cfgPath, "-o", "json", "version")
	require.NoError(t, err)
	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestFramesCmd(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	out, _, err := run(t, "--config", cfgPath, "-o", "table", "frames")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "YEAR"))
	assert.Contains(t, lines[2], "1980")
	assert.Contains(t, lines[2], "United States")
	assert.Contains(t, lines[3], "2021")

	out, _, err = run(t, "--config", cfgPath, "-o", "yaml", "frames")
	require.NoError(t, err)
	var summaries []figure.YearSummary
	require.NoError(t, yaml.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, "2021", summaries[1].Year)
	assert.Equal(t, 3, summaries[1].Records)
	assert.Equal(t, "United States", summaries[1].Leader)
}

func TestSummaryCmd(t *testing.T) {
	f := testutil.WriteFixture(t, testutil.SampleCSV)
	cfgPath := f.WriteConfig(t, "chart:\n  x_max: 60000\n")

	out, _, err := run(t, "--config", cfgPath, "-o", "json", "summary")
	require.NoError(t, err)
	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.EqualValues(t, 5, res["rows"])
	assert.EqualValues(t, 2, res["years"])
	assert.EqualValues(t, 3, res["countries"])
	assert.EqualValues(t, 9659, res["min_gdp"])
	assert.EqualValues(t, 70249, res["max_gdp"])
	assert.EqualValues(t, 1, res["out_of_range_gdp"])
	assert.EqualValues(t, 60000, res["axis_max_gdp"])

	out, _, err = run(t, "--config", cfgPath, "-o", "yaml", "summary")
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.EqualValues(t, 5, fromYAML["rows"])
	assert.EqualValues(t, 60000, fromYAML["axis_max_gdp"])

	out, _, err = run(t, "--config", cfgPath, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "beyond gdp axis")
	assert.Contains(t, out, "1 (axis max 60000)")
	assert.Contains(t, out, "1980 to 2021")
}

func TestTopCmd(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	out, _, err := run(t, "--config", cfgPath, "-o", "json", "top")
	require.NoError(t, err)
	var res topResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "2021", res.Year)
	require.Len(t, res.Entries, 3)
	assert.Equal(t, []string{"USA", "JPN", "DEU"}, []string{res.Entries[0].ISO3, res.Entries[1].ISO3, res.Entries[2].ISO3})
	assert.Equal(t, "assets/US.png", res.Entries[0].Flag)
	assert.InDelta(t, figure.OverlaySize(327798, 327798), res.Entries[0].OverlaySize, 1e-12)

	out, _, err = run(t, "--config", cfgPath, "top", "--year", "1980", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Top 1 in 1980")
	assert.Contains(t, out, "United States")
	assert.NotContains(t, out, "Japan")

	_, _, err = run(t, "--config", cfgPath, "top", "--year", "1999")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	_, _, err = run(t, "--config", cfgPath, "top", "--count=-2")
	require.Error(t, err)
}

func TestRankTop_NoFlagWithoutISO2(t *testing.T) {
	ds := dataset.New([]dataset.Record{
		{Name: "Nowhere", ISO2: "", ISO3: "NWH", Year: "2021", Patents: 9},
		{Name: "Japan", ISO2: "JP", ISO3: "JPN", Year: "2021", Patents: 4},
	})
	opts := figure.DefaultOptions()

	res := rankTop(ds, "2021", 8, opts)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, "NWH", res.Entries[0].ISO3)
	assert.Empty(t, res.Entries[0].Flag)
	assert.Equal(t, "assets/JP.png", res.Entries[1].Flag)

	images := figure.BuildOverlays(ds, opts)
	require.Len(t, images, 1)
	assert.Equal(t, res.Entries[1].Flag, images[0].Source)
}

func TestFigureCmd(t *testing.T) {
	cfgPath, dir := writeConfig(t)

	out, _, err := run(t, "--config", cfgPath, "figure")
	require.NoError(t, err)
	var fig struct {
		Data   []json.RawMessage `json:"data"`
		Frames []json.RawMessage `json:"frames"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &fig))
	assert.Len(t, fig.Data, 1)
	assert.Len(t, fig.Frames, 2)

	outPath := filepath.Join(dir, "figure.json")
	_, stderr, err := run(t, "--config", cfgPath, "figure", "--indent", "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "OK: figure written to "+outPath)
	assert.Contains(t, stderr, "dataset "+dashboard.Digest([]byte(testutil.SampleCSV))[:12])

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("{\n  ")))
	require.NoError(t, json.Unmarshal(data, &fig))
	assert.Len(t, fig.Frames, 2)
}

func TestSnapshotCmd(t *testing.T) {
	cfgPath, dir := writeConfig(t)
	outPath := filepath.Join(dir, "1980.png")

	_, stderr, err := run(t, "--config", cfgPath, "snapshot", "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "snapshot of 1980")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	_, _, err = run(t, "--config", cfgPath, "snapshot", "--year", "1850", "--out", outPath)
	require.Error(t, err)
}

func TestDatasetErrorsSurface(t *testing.T) {
	cfgPath, dir := writeConfig(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "dataset.csv")))

	_, _, err := run(t, "--config", cfgPath, "frames")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDatasetRead))
}

func TestFormatTable(t *testing.T) {
	got := FormatTable([]string{"A", "LONG"}, [][]string{{"xyz", "1"}, {"b"}})
	want := "A    LONG\n---  ----\nxyz  1\nb\n"
	assert.Equal(t, want, got)
	assert.Empty(t, FormatTable(nil, nil))
}

func TestPrintResult_WithoutContext(t *testing.T) {
	cmd := NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, PrintResult(cmd, "plain"))
	assert.Equal(t, "plain\n", out.String())
}

func TestPrintError(t *testing.T) {
	color.NoColor = true
	cmd := NewVersionCmd()
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)
	PrintError(cmd, errors.New(errors.ErrCodeValidation, "bad"))
	assert.Equal(t, "Error: [COMMON_010] bad\n", errOut.String())
	PrintError(cmd, nil)
	assert.Equal(t, "Error: [COMMON_010] bad\n", errOut.String())
}

//Personal.AI order the ending
