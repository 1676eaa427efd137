package dashboard

import (
	"github.com/turtacn/patents-gdp-dashboard/internal/config"
	"github.com/turtacn/patents-gdp-dashboard/internal/domain/figure"
)

// AssetRoute is the URL path prefix the HTTP layer serves assets under,
// without slashes.  Flag sources and the page background are relative to it.
const AssetRoute = "assets"

// OptionsFromConfig maps the chart section onto figure options.  Overlay
// constants keep their defaults.
func OptionsFromConfig(c config.ChartConfig) figure.Options {
	o := figure.DefaultOptions()
	o.Title = c.Title
	o.InitialYear = c.InitialYear
	o.ReferenceYear = c.ReferenceYear
	o.TopN = c.TopN
	o.SizeDivisor = c.SizeDivisor
	o.XRange = [2]float64{c.XMin, c.XMax}
	o.YRange = [2]float64{c.YMin, c.YMax}
	o.Width = c.Width
	o.Height = c.Height
	o.FontFamily = c.FontFamily
	o.LabelColor = c.LabelColor
	o.AssetBase = AssetRoute
	return o
}

// PageFromConfig maps config onto the page settings.
func PageFromConfig(cfg *config.Config) PageConfig {
	return PageConfig{
		Title:       cfg.Chart.PageTitle,
		PlotlyJSURL: cfg.Chart.PlotlyJSURL,
		Background:  AssetRoute + "/" + cfg.Assets.Background,
	}
}

//Personal.AI order the ending
