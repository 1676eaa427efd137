// Package figure turns a Dataset into a plotly.js figure: one animation frame
// per year, a play/pause menu, a year slider and flag overlays for the
// leading countries.  Everything here is a pure function of its inputs; the
// types marshal to the plotly.js JSON figure schema with a fixed field order
// so identical input always produces identical bytes.
package figure

// Figure is the top-level plotly.js figure.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
	Frames []Frame `json:"frames"`
}

// Trace is one scatter trace.
type Trace struct {
	Type         string    `json:"type"`
	X            []float64 `json:"x"`
	Y            []float64 `json:"y"`
	Mode         string    `json:"mode"`
	Text         []string  `json:"text"`
	HoverText    []string  `json:"hovertext,omitempty"`
	HoverInfo    string    `json:"hoverinfo,omitempty"`
	TextPosition []string  `json:"textposition,omitempty"`
	TextFont     *TextFont `json:"textfont,omitempty"`
	Marker       Marker    `json:"marker"`
}

// TextFont styles the in-marker labels.
type TextFont struct {
	Family string   `json:"family"`
	Size   int      `json:"size"`
	Color  []string `json:"color"`
}

// Marker sizes points by area.
type Marker struct {
	SizeMode string    `json:"sizemode"`
	SizeRef  float64   `json:"sizeref"`
	Size     []float64 `json:"size"`
}

// Frame is one named animation step.
type Frame struct {
	Name string  `json:"name"`
	Data []Trace `json:"data"`
}

// Font is a plotly font.
type Font struct {
	Family string `json:"family,omitempty"`
	Color  string `json:"color,omitempty"`
	Size   int    `json:"size,omitempty"`
}

// Title is a titled element with an optional font.
type Title struct {
	Text string `json:"text"`
	Font *Font  `json:"font,omitempty"`
}

// Axis is a cartesian axis.
type Axis struct {
	Range          [2]float64 `json:"range"`
	Title          Title      `json:"title"`
	ShowGrid       bool       `json:"showgrid"`
	GridColor      string     `json:"gridcolor,omitempty"`
	ZeroLine       bool       `json:"zeroline"`
	ZeroLineColor  string     `json:"zerolinecolor,omitempty"`
	ZeroLineWidth  int        `json:"zerolinewidth,omitempty"`
	ShowTickLabels bool       `json:"showticklabels"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	B int `json:"b"`
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
}

// Pad is control padding in pixels.
type Pad struct {
	T int `json:"t,omitempty"`
	R int `json:"r,omitempty"`
	B int `json:"b,omitempty"`
	L int `json:"l,omitempty"`
}

// FrameOptions controls frame timing in an animate call.
type FrameOptions struct {
	Duration int  `json:"duration"`
	Redraw   bool `json:"redraw"`
}

// Transition controls tweening between frames.
type Transition struct {
	Duration int    `json:"duration"`
	Easing   string `json:"easing,omitempty"`
}

// AnimationOptions is the second argument of Plotly.animate.
type AnimationOptions struct {
	Frame       FrameOptions `json:"frame"`
	FromCurrent bool         `json:"fromcurrent,omitempty"`
	Mode        string       `json:"mode,omitempty"`
	Transition  Transition   `json:"transition"`
}

// Button is an update-menu button.  Args is heterogeneous in plotly.js
// ([null, {...}] for play, [[null], {...}] for pause).
type Button struct {
	Args   []interface{} `json:"args"`
	Label  string        `json:"label"`
	Method string        `json:"method"`
}

// UpdateMenu is the play/pause button group.
type UpdateMenu struct {
	Buttons    []Button `json:"buttons"`
	Direction  string   `json:"direction"`
	Pad        Pad      `json:"pad"`
	ShowActive bool     `json:"showactive"`
	Type       string   `json:"type"`
	X          float64  `json:"x"`
	XAnchor    string   `json:"xanchor"`
	Y          float64  `json:"y"`
	YAnchor    string   `json:"yanchor"`
}

// SliderStep jumps to one frame.
type SliderStep struct {
	Args   []interface{} `json:"args"`
	Label  string        `json:"label"`
	Method string        `json:"method"`
}

// CurrentValue is the slider's value readout.
type CurrentValue struct {
	Font    Font   `json:"font"`
	Visible bool   `json:"visible"`
	XAnchor string `json:"xanchor"`
}

// Slider is the year slider.
type Slider struct {
	Active       int          `json:"active"`
	YAnchor      string       `json:"yanchor"`
	XAnchor      string       `json:"xanchor"`
	CurrentValue CurrentValue `json:"currentvalue"`
	Transition   Transition   `json:"transition"`
	Pad          Pad          `json:"pad"`
	Len          float64      `json:"len"`
	X            float64      `json:"x"`
	Y            float64      `json:"y"`
	Steps        []SliderStep `json:"steps"`
}

// LayoutImage is an image pinned to data coordinates.
type LayoutImage struct {
	Source  string  `json:"source"`
	XRef    string  `json:"xref"`
	YRef    string  `json:"yref"`
	XAnchor string  `json:"xanchor"`
	YAnchor string  `json:"yanchor"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	SizeX   float64 `json:"sizex"`
	SizeY   float64 `json:"sizey"`
	Sizing  string  `json:"sizing"`
	Opacity float64 `json:"opacity"`
	Layer   string  `json:"layer"`
}

// Layout is the figure layout.
type Layout struct {
	Title        Title         `json:"title"`
	Font         Font          `json:"font"`
	XAxis        Axis          `json:"xaxis"`
	YAxis        Axis          `json:"yaxis"`
	HoverMode    string        `json:"hovermode"`
	UpdateMenus  []UpdateMenu  `json:"updatemenus"`
	Sliders      []Slider      `json:"sliders"`
	Images       []LayoutImage `json:"images"`
	ShowLegend   bool          `json:"showlegend"`
	Margin       Margin        `json:"margin"`
	PlotBGColor  string        `json:"plot_bgcolor"`
	PaperBGColor string        `json:"paper_bgcolor"`
	AutoSize     bool          `json:"autosize"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
}

//Personal.AI order the ending
