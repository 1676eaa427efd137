package figure

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/patents-gdp-dashboard/internal/domain/dataset"
	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

func TestBuild_Structure(t *testing.T) {
	ds := sampleDataset()
	fig, err := Build(ds, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, fig.Data, 1)
	assert.Equal(t, "markers", fig.Data[0].Mode)
	assert.Len(t, fig.Data[0].X, 3)

	assert.Len(t, fig.Frames, 2)
	require.Len(t, fig.Layout.Sliders, 1)
	assert.Len(t, fig.Layout.Sliders[0].Steps, 2)
	assert.Len(t, fig.Layout.Images, 4)

	l := fig.Layout
	assert.Equal(t, "Patents Granted", l.Title.Text)
	assert.Equal(t, [2]float64{-200, 105000}, l.XAxis.Range)
	assert.Equal(t, "GDP per Capita", l.XAxis.Title.Text)
	assert.Equal(t, [2]float64{-2, 8}, l.YAxis.Range)
	assert.Equal(t, "Patents per 100,000 Population", l.YAxis.Title.Text)
	assert.Equal(t, "closest", l.HoverMode)
	assert.Equal(t, Margin{B: 10, L: 20, R: 10, T: 50}, l.Margin)
	assert.False(t, l.ShowLegend)
	assert.False(t, l.AutoSize)
	assert.Equal(t, 1300, l.Width)
	assert.Equal(t, 650, l.Height)
}

func TestBuild_ControlsJSON(t *testing.T) {
	fig, err := Build(sampleDataset(), DefaultOptions())
	require.NoError(t, err)

	menu, err := json.Marshal(fig.Layout.UpdateMenus[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"buttons": [
			{"args": [null, {"frame": {"duration": 500, "redraw": false}, "fromcurrent": true,
				"transition": {"duration": 300, "easing": "quadratic-in-out"}}],
			 "label": "play", "method": "animate"},
			{"args": [[null], {"frame": {"duration": 0, "redraw": false}, "mode": "immediate",
				"transition": {"duration": 0}}],
			 "label": "pause", "method": "animate"}
		],
		"direction": "left",
		"pad": {"r": 10, "t": 87},
		"showactive": true,
		"type": "buttons",
		"x": 0.1,
		"xanchor": "right",
		"y": 0,
		"yanchor": "top"
	}`, string(menu))

	slider := fig.Layout.Sliders[0]
	slider.Steps = nil
	b, err := json.Marshal(slider)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"active": 0,
		"yanchor": "top",
		"xanchor": "left",
		"currentvalue": {"font": {"size": 20}, "visible": true, "xanchor": "right"},
		"transition": {"duration": 300, "easing": "cubic-in-out"},
		"pad": {"t": 50, "b": 10},
		"len": 0.9,
		"x": 0.1,
		"y": 0,
		"steps": null
	}`, string(b))
}

func TestBuild_Deterministic(t *testing.T) {
	opts := DefaultOptions()

	a, err := Build(sampleDataset(), opts)
	require.NoError(t, err)
	b, err := Build(sampleDataset(), opts)
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("figures differ (-first +second):\n%s", diff)
	}

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(ja), string(jb))
}

func TestBuild_MissingInitialYearGivesEmptyTrace(t *testing.T) {
	opts := DefaultOptions()
	opts.InitialYear = "1900"
	fig, err := Build(sampleDataset(), opts)
	require.NoError(t, err)
	assert.Empty(t, fig.Data[0].X)
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build(dataset.New(nil), DefaultOptions())
	assert.True(t, errors.IsCode(err, errors.ErrCodeFigureBuild))

	_, err = Build(nil, DefaultOptions())
	assert.True(t, errors.IsCode(err, errors.ErrCodeFigureBuild))

	opts := DefaultOptions()
	opts.SizeDivisor = 0
	_, err = Build(sampleDataset(), opts)
	assert.True(t, errors.IsCode(err, errors.ErrCodeFigureOptions))
}

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())

	mutations := map[string]func(*Options){
		"divisor":      func(o *Options) { o.SizeDivisor = -1 },
		"top n":        func(o *Options) { o.TopN = -1 },
		"initial year": func(o *Options) { o.InitialYear = " " },
		"x range":      func(o *Options) { o.XRange = [2]float64{5, 5} },
		"y range":      func(o *Options) { o.YRange = [2]float64{9, 1} },
		"size":         func(o *Options) { o.Height = 0 },
		"opacity":      func(o *Options) { o.OverlayOpacity = 1.5 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			o := DefaultOptions()
			mutate(&o)
			assert.True(t, errors.IsCode(o.Validate(), errors.ErrCodeFigureOptions))
		})
	}
}

func TestOptions_Fingerprint(t *testing.T) {
	a := DefaultOptions()
	b := DefaultOptions()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.Fingerprint(), 16)

	b.TopN = 5
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestSummaries(t *testing.T) {
	got := Summaries(sampleDataset())
	want := []YearSummary{
		{Year: "1980", Records: 3, TotalPatents: 61819 + 46106 + 13350, Leader: "United States", LeaderPatents: 61819},
		{Year: "2021", Records: 4, TotalPatents: 327798 + 184372 + 15959, Leader: "United States", LeaderPatents: 327798},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summaries mismatch (-want +got):\n%s", diff)
	}
}

//Personal.AI order the ending
