// Package snapshot renders a single year of the dashboard as a static PNG,
// for reports and terminals where the animated page cannot be opened.
package snapshot

import (
	"io"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/turtacn/patents-gdp-dashboard/internal/domain/dataset"
	"github.com/turtacn/patents-gdp-dashboard/internal/domain/figure"
	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

var ErrSnapshot = errors.New(errors.ErrCodeSnapshot, "snapshot could not be rendered")

// markerColor is plotly's first default trace colour.
const markerColor = "636EFA"

// minDotRadius keeps zero-patent countries visible.
const minDotRadius = 1.5

// DotRadius converts a plotly area-mode marker size to a circle radius in
// pixels.
func DotRadius(markerSize float64) float64 {
	if !(markerSize > 0) {
		return minDotRadius
	}
	return math.Max(math.Sqrt(markerSize)/2, minDotRadius)
}

func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

// Chart builds the go-chart scatter for year.  The axes use the fixed
// figure ranges so snapshots of different years line up.
func Chart(ds *dataset.Dataset, year string, opts figure.Options) (*chart.Chart, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if ds == nil || !ds.HasYear(year) {
		return nil, ErrSnapshot.WithDetailf("year %q has no records", year)
	}

	records := ds.ByYear(year)
	trace := figure.FrameTrace(records, opts)
	sizes := trace.Marker.Size

	points := chart.ContinuousSeries{
		Name:    year,
		XValues: trace.X,
		YValues: trace.Y,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotColor:    hexColor(markerColor).WithAlpha(200),
			DotWidthProvider: func(_, _ chart.Range, index int, _, _ float64) float64 {
				return DotRadius(sizes[index])
			},
		},
	}

	annotations := make([]chart.Value2, len(records))
	for i, r := range records {
		annotations[i] = chart.Value2{XValue: r.GDP, YValue: r.PatentsPer100k, Label: r.ISO3}
	}
	labels := chart.AnnotationSeries{
		Annotations: annotations,
		Style: chart.Style{
			FontColor:   hexColor(opts.LabelColor),
			FontSize:    8,
			FillColor:   drawing.ColorWhite.WithAlpha(160),
			StrokeColor: hexColor(opts.LabelColor),
		},
	}

	return &chart.Chart{
		Title:  opts.Title + " " + year,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 10, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:  "GDP per Capita",
			Range: &chart.ContinuousRange{Min: opts.XRange[0], Max: opts.XRange[1]},
		},
		YAxis: chart.YAxis{
			Name:  "Patents per 100,000 Population",
			Range: &chart.ContinuousRange{Min: opts.YRange[0], Max: opts.YRange[1]},
			GridMajorStyle: chart.Style{
				StrokeColor: hexColor("#C5B4E3"),
				StrokeWidth: 1,
			},
		},
		Series: []chart.Series{points, labels},
	}, nil
}

// Render writes year's PNG snapshot to w.
func Render(w io.Writer, ds *dataset.Dataset, year string, opts figure.Options) error {
	c, err := Chart(ds, year, opts)
	if err != nil {
		return err
	}
	if err := c.Render(chart.PNG, w); err != nil {
		return ErrSnapshot.WithDetailf("year %q", year).WithCause(err)
	}
	return nil
}

//Personal.AI order the ending
