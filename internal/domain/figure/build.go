package figure

import (
	"github.com/turtacn/patents-gdp-dashboard/internal/domain/dataset"
	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

// Build assembles the complete animated figure.
func Build(ds *dataset.Dataset, opts Options) (*Figure, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if ds == nil || ds.Len() == 0 {
		return nil, errors.New(errors.ErrCodeFigureBuild, "cannot build a figure from an empty dataset")
	}

	frames, steps := BuildFrames(ds, nil, opts)

	return &Figure{
		Data:   []Trace{InitialTrace(ds.ByYear(opts.InitialYear), opts)},
		Layout: buildLayout(opts, steps, BuildOverlays(ds, opts)),
		Frames: frames,
	}, nil
}

func buildLayout(opts Options, steps []SliderStep, images []LayoutImage) Layout {
	return Layout{
		Title: Title{
			Text: opts.Title,
			Font: &Font{Family: opts.FontFamily, Color: "#000000", Size: 18},
		},
		Font: Font{Family: opts.FontFamily, Color: "Black", Size: 14},
		XAxis: Axis{
			Range:          opts.XRange,
			Title:          Title{Text: "GDP per Capita"},
			ShowGrid:       false,
			GridColor:      "DarkGrey",
			ZeroLine:       false,
			ZeroLineColor:  "White",
			ZeroLineWidth:  2,
			ShowTickLabels: true,
		},
		YAxis: Axis{
			Range:          opts.YRange,
			Title:          Title{Text: "Patents per 100,000 Population"},
			ShowGrid:       true,
			GridColor:      "#C5B4E3",
			ZeroLine:       true,
			ZeroLineColor:  "#C5B4E3",
			ZeroLineWidth:  2,
			ShowTickLabels: true,
		},
		HoverMode:    "closest",
		UpdateMenus:  []UpdateMenu{playPauseMenu()},
		Sliders:      []Slider{yearSlider(steps)},
		Images:       images,
		ShowLegend:   false,
		Margin:       Margin{B: 10, L: 20, R: 10, T: 50},
		PlotBGColor:  "White",
		PaperBGColor: "White",
		AutoSize:     false,
		Width:        opts.Width,
		Height:       opts.Height,
	}
}

func playPauseMenu() UpdateMenu {
	play := Button{
		Args: []interface{}{
			nil,
			AnimationOptions{
				Frame:       FrameOptions{Duration: PlayFrameDuration, Redraw: false},
				FromCurrent: true,
				Transition:  Transition{Duration: PlayTransitionDuration, Easing: "quadratic-in-out"},
			},
		},
		Label:  "play",
		Method: "animate",
	}
	pause := Button{
		Args: []interface{}{
			[]interface{}{nil},
			AnimationOptions{
				Frame:      FrameOptions{Duration: 0, Redraw: false},
				Mode:       "immediate",
				Transition: Transition{Duration: 0},
			},
		},
		Label:  "pause",
		Method: "animate",
	}
	return UpdateMenu{
		Buttons:    []Button{play, pause},
		Direction:  "left",
		Pad:        Pad{R: 10, T: 87},
		ShowActive: true,
		Type:       "buttons",
		X:          0.1,
		XAnchor:    "right",
		Y:          0,
		YAnchor:    "top",
	}
}

func yearSlider(steps []SliderStep) Slider {
	return Slider{
		Active:  0,
		YAnchor: "top",
		XAnchor: "left",
		CurrentValue: CurrentValue{
			Font:    Font{Size: 20},
			Visible: true,
			XAnchor: "right",
		},
		Transition: Transition{Duration: SliderTransition, Easing: "cubic-in-out"},
		Pad:        Pad{B: 10, T: 50},
		Len:        0.9,
		X:          0.1,
		Y:          0,
		Steps:      steps,
	}
}

// YearSummary describes one animation frame.
type YearSummary struct {
	Year          string  `json:"year" yaml:"year"`
	Records       int     `json:"records" yaml:"records"`
	TotalPatents  float64 `json:"total_patents" yaml:"total_patents"`
	Leader        string  `json:"leader" yaml:"leader"`
	LeaderPatents float64 `json:"leader_patents" yaml:"leader_patents"`
}

// Summaries lists every year of ds in frame order.
func Summaries(ds *dataset.Dataset) []YearSummary {
	years := ds.Years()
	out := make([]YearSummary, 0, len(years))
	for _, year := range years {
		records := ds.ByYear(year)
		s := YearSummary{Year: year, Records: len(records)}
		for _, r := range records {
			s.TotalPatents += r.Patents
		}
		if top := SelectTopN(ds, year, 1); len(top) == 1 {
			s.Leader = top[0].Name
			s.LeaderPatents = top[0].Patents
		}
		out = append(out, s)
	}
	return out
}

//Personal.AI order the ending
