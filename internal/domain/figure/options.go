package figure

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

// Animation timings in milliseconds.
const (
	PlayFrameDuration      = 500
	PlayTransitionDuration = 300
	StepDuration           = 300
	SliderTransition       = 300
)

// Options parameterises the figure.  The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	// SizeDivisor scales patent counts to marker areas.  It is a fixed
	// constant and is never derived from the data being sized.
	SizeDivisor float64 `json:"size_divisor"`

	InitialYear   string `json:"initial_year"`
	ReferenceYear string `json:"reference_year"`
	TopN          int    `json:"top_n"`

	XRange [2]float64 `json:"x_range"`
	YRange [2]float64 `json:"y_range"`
	Width  int        `json:"width"`
	Height int        `json:"height"`

	Title      string `json:"title"`
	FontFamily string `json:"font_family"`
	LabelColor string `json:"label_color"`

	// AssetBase prefixes flag image URLs: <AssetBase>/<iso2>.png.
	AssetBase string `json:"asset_base"`

	OverlayAreaFactor float64 `json:"overlay_area_factor"`
	OverlayBaseFactor float64 `json:"overlay_base_factor"`
	OverlayOpacity    float64 `json:"overlay_opacity"`
}

// DefaultOptions returns the stock dashboard settings.
func DefaultOptions() Options {
	return Options{
		SizeDivisor:       70,
		InitialYear:       "1980",
		ReferenceYear:     "2021",
		TopN:              8,
		XRange:            [2]float64{-200, 105000},
		YRange:            [2]float64{-2, 8},
		Width:             1300,
		Height:            650,
		Title:             "Patents Granted",
		FontFamily:        "Segoe UI",
		LabelColor:        "#FFAD00",
		AssetBase:         "assets",
		OverlayAreaFactor: 0.017,
		OverlayBaseFactor: 0.000725,
		OverlayOpacity:    0.75,
	}
}

// Validate rejects options the builder cannot honour.
func (o Options) Validate() error {
	bad := func(format string, args ...interface{}) error {
		return errors.New(errors.ErrCodeFigureOptions, "invalid figure options").WithDetailf(format, args...)
	}
	switch {
	case !(o.SizeDivisor > 0):
		return bad("size divisor must be > 0, got %v", o.SizeDivisor)
	case o.TopN < 0:
		return bad("top n must be >= 0, got %d", o.TopN)
	case strings.TrimSpace(o.InitialYear) == "":
		return bad("initial year is empty")
	case o.XRange[0] >= o.XRange[1]:
		return bad("x range %v is empty", o.XRange)
	case o.YRange[0] >= o.YRange[1]:
		return bad("y range %v is empty", o.YRange)
	case o.Width <= 0 || o.Height <= 0:
		return bad("size %dx%d must be positive", o.Width, o.Height)
	case o.OverlayOpacity < 0 || o.OverlayOpacity > 1:
		return bad("overlay opacity %v outside [0, 1]", o.OverlayOpacity)
	}
	return nil
}

// Fingerprint is a short stable digest of the options, used in cache keys.
func (o Options) Fingerprint() string {
	b, _ := json.Marshal(o)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:8])
}

//Personal.AI order the ending
