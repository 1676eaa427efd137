package figure

import (
	"math"

	"github.com/turtacn/patents-gdp-dashboard/internal/domain/dataset"
)

// MarkerSize scales a patent count to a marker area.  The result is never
// negative and never decreases as patents grows.  A non-positive divisor
// yields 0 rather than dividing by zero.
func MarkerSize(patents, divisor float64) float64 {
	if !(divisor > 0) || !(patents > 0) {
		return 0
	}
	return patents / divisor
}

// frameLabel renders the bold ISO3 label drawn inside each marker.
func frameLabel(iso3 string) string {
	return "<b>" + iso3 + "</b><br><b></b>"
}

// columns extracts the per-point arrays shared by the initial trace and the
// frame traces.  Slices are non-nil so empty years marshal as [].
func columns(records []dataset.Record, divisor float64) (x, y, size []float64, hover []string) {
	x = make([]float64, len(records))
	y = make([]float64, len(records))
	size = make([]float64, len(records))
	hover = make([]string, len(records))
	for i, r := range records {
		x[i] = r.GDP
		y[i] = r.PatentsPer100k
		size[i] = MarkerSize(r.Patents, divisor)
		hover[i] = dataset.HoverText(r)
	}
	return x, y, size, hover
}

// FrameTrace builds the labelled trace for one year's records.
func FrameTrace(records []dataset.Record, opts Options) Trace {
	x, y, size, hover := columns(records, opts.SizeDivisor)
	text := make([]string, len(records))
	for i, r := range records {
		text[i] = frameLabel(r.ISO3)
	}
	return Trace{
		Type:         "scatter",
		X:            x,
		Y:            y,
		Mode:         "markers+text",
		Text:         text,
		HoverText:    hover,
		HoverInfo:    "text",
		TextPosition: []string{"middle center"},
		TextFont: &TextFont{
			Family: opts.FontFamily,
			Size:   10,
			Color:  []string{opts.LabelColor},
		},
		Marker: Marker{SizeMode: "area", SizeRef: 1, Size: size},
	}
}

// InitialTrace builds the trace shown before the animation starts: plain
// markers with the country name as text.
func InitialTrace(records []dataset.Record, opts Options) Trace {
	x, y, size, hover := columns(records, opts.SizeDivisor)
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return Trace{
		Type:      "scatter",
		X:         x,
		Y:         y,
		Mode:      "markers",
		Text:      names,
		HoverText: hover,
		HoverInfo: "text",
		Marker:    Marker{SizeMode: "area", SizeRef: 1, Size: size},
	}
}

// Step returns the slider step that jumps to year's frame.
func Step(year string) SliderStep {
	return SliderStep{
		Args: []interface{}{
			[]string{year},
			AnimationOptions{
				Frame:      FrameOptions{Duration: StepDuration, Redraw: false},
				Mode:       "immediate",
				Transition: Transition{Duration: StepDuration},
			},
		},
		Label:  year,
		Method: "animate",
	}
}

// BuildFrames returns one frame and one slider step per year, in the order
// given.  A nil years means every year of ds in first-seen order.  A year
// with no records yields a valid empty frame.
func BuildFrames(ds *dataset.Dataset, years []string, opts Options) ([]Frame, []SliderStep) {
	if years == nil {
		years = ds.Years()
	}
	frames := make([]Frame, 0, len(years))
	steps := make([]SliderStep, 0, len(years))
	for _, year := range years {
		frames = append(frames, Frame{
			Name: year,
			Data: []Trace{FrameTrace(ds.ByYear(year), opts)},
		})
		steps = append(steps, Step(year))
	}
	return frames, steps
}

// overlaySize applies the square-root flag scale.
func overlaySize(patents, maxPatents, areaFactor, baseFactor float64) float64 {
	if !(maxPatents > 0) {
		return 0
	}
	p := math.Max(patents, 0)
	return math.Sqrt(p/maxPatents)*maxPatents*areaFactor + maxPatents*baseFactor
}

//Personal.AI order the ending
