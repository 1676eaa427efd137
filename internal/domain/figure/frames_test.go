package figure

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/patents-gdp-dashboard/internal/domain/dataset"
)

func sampleRecords() []dataset.Record {
	return []dataset.Record{
		{Name: "United States", ISO2: "US", ISO3: "USA", Year: "1980", Population: 227225000, Patents: 61819, GDP: 12575, PatentsPer100k: 2.72},
		{Name: "Japan", ISO2: "JP", ISO3: "JPN", Year: "1980", Population: 116807000, Patents: 46106, GDP: 9659, PatentsPer100k: 3.95},
		{Name: "Germany", ISO2: "DE", ISO3: "DEU", Year: "1980", Population: 78288576, Patents: 13350, GDP: 11110, PatentsPer100k: 1.71},
		{Name: "United States", ISO2: "US", ISO3: "USA", Year: "2021", Population: 331893745, Patents: 327798, GDP: 70249, PatentsPer100k: 9.88},
		{Name: "Japan", ISO2: "JP", ISO3: "JPN", Year: "2021", Population: 125681593, Patents: 184372, GDP: 39312, PatentsPer100k: 14.67},
		{Name: "Germany", ISO2: "DE", ISO3: "DEU", Year: "2021", Population: 83196078, Patents: 15959, GDP: 51204, PatentsPer100k: 1.92},
		{Name: "Namibia", ISO2: "NA", ISO3: "NAM", Year: "2021", Population: 2530151, Patents: 0, GDP: 4729, PatentsPer100k: 0},
	}
}

func sampleDataset() *dataset.Dataset {
	return dataset.New(sampleRecords())
}

func TestBuildFrames_OneFramePerYear(t *testing.T) {
	ds := sampleDataset()
	frames, steps := BuildFrames(ds, nil, DefaultOptions())

	require.Len(t, frames, 2)
	require.Len(t, steps, 2)
	for i, year := range ds.Years() {
		assert.Equal(t, year, frames[i].Name)
		assert.Equal(t, year, steps[i].Label)
		require.Len(t, frames[i].Data, 1)
		tr := frames[i].Data[0]
		n := len(ds.ByYear(year))
		assert.Len(t, tr.X, n)
		assert.Len(t, tr.Y, n)
		assert.Len(t, tr.Text, n)
		assert.Len(t, tr.Marker.Size, n)
		assert.Len(t, tr.HoverText, n)
	}
}

func TestBuildFrames_TraceContent(t *testing.T) {
	frames, _ := BuildFrames(sampleDataset(), []string{"2021"}, DefaultOptions())
	tr := frames[0].Data[0]

	assert.Equal(t, "markers+text", tr.Mode)
	assert.Equal(t, []float64{70249, 39312, 51204, 4729}, tr.X)
	assert.Equal(t, []float64{9.88, 14.67, 1.92, 0}, tr.Y)
	assert.Equal(t, "<b>USA</b><br><b></b>", tr.Text[0])
	assert.Equal(t, []string{"middle center"}, tr.TextPosition)
	assert.Equal(t, &TextFont{Family: "Segoe UI", Size: 10, Color: []string{"#FFAD00"}}, tr.TextFont)
	assert.Equal(t, "area", tr.Marker.SizeMode)
	assert.Equal(t, 1.0, tr.Marker.SizeRef)
	assert.InDelta(t, 327798.0/70, tr.Marker.Size[0], 1e-9)
	assert.Equal(t, 0.0, tr.Marker.Size[3])
}

func TestBuildFrames_CallerOrderAndEmptyYear(t *testing.T) {
	frames, steps := BuildFrames(sampleDataset(), []string{"2021", "1999", "1980"}, DefaultOptions())

	require.Len(t, frames, 3)
	assert.Equal(t, "2021", frames[0].Name)
	assert.Equal(t, "1999", frames[1].Name)
	assert.Equal(t, "1980", steps[2].Label)

	empty := frames[1].Data[0]
	assert.Empty(t, empty.X)

	b, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"x":[]`)
	assert.Contains(t, string(b), `"size":[]`)
}

func TestStep_JSON(t *testing.T) {
	b, err := json.Marshal(Step("1995"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"args": [["1995"], {"frame": {"duration": 300, "redraw": false}, "mode": "immediate", "transition": {"duration": 300}}],
		"label": "1995",
		"method": "animate"
	}`, string(b))
}

func TestMarkerSize(t *testing.T) {
	assert.Equal(t, 0.0, MarkerSize(0, 70))
	assert.Equal(t, 1.0, MarkerSize(70, 70))
	assert.Equal(t, 0.0, MarkerSize(-5, 70))
	assert.Equal(t, 0.0, MarkerSize(100, 0))
	assert.Equal(t, 0.0, MarkerSize(100, -1))
}

func TestMarkerSize_NonNegativeAndMonotonic(t *testing.T) {
	prev := MarkerSize(-100, 70)
	for p := -100.0; p <= 400000; p += 997 {
		got := MarkerSize(p, 70)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.GreaterOrEqual(t, got, prev, "patents=%v", p)
		prev = got
	}
}

func TestInitialTrace(t *testing.T) {
	ds := sampleDataset()
	tr := InitialTrace(ds.ByYear("1980"), DefaultOptions())

	assert.Equal(t, "markers", tr.Mode)
	assert.Equal(t, []string{"United States", "Japan", "Germany"}, tr.Text)
	assert.Nil(t, tr.TextFont)
	assert.Empty(t, tr.TextPosition)
	assert.InDelta(t, 61819.0/70, tr.Marker.Size[0], 1e-9)
}

//Personal.AI order the ending
