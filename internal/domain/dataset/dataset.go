// Package dataset holds the country-year records behind the dashboard and the
// fail-fast CSV loader that produces them.  A Dataset is immutable once
// built; every accessor returns copies so callers cannot mutate shared state.
package dataset

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Record is one (country, year) row.
type Record struct {
	Name           string  `json:"name" yaml:"name"`
	ISO2           string  `json:"iso_2" yaml:"iso_2"`
	ISO3           string  `json:"iso_3" yaml:"iso_3"`
	Year           string  `json:"year" yaml:"year"`
	Population     float64 `json:"population" yaml:"population"`
	Patents        float64 `json:"patents" yaml:"patents"`
	GDP            float64 `json:"gdp" yaml:"gdp"`
	PatentsPer100k float64 `json:"pat_100k" yaml:"pat_100k"`

	PopulationLabel string `json:"population_label" yaml:"population_label"`
	PatentsLabel    string `json:"patents_label" yaml:"patents_label"`
	GDPLabel        string `json:"gdp_label" yaml:"gdp_label"`
}

// withLabels fills the abbreviated display fields.
func (r Record) withLabels() Record {
	r.PopulationLabel = FormatMagnitude(r.Population)
	r.PatentsLabel = FormatMagnitude(r.Patents)
	r.GDPLabel = FormatMagnitude(r.GDP)
	return r
}

// Dataset is the ordered, indexed record set.
type Dataset struct {
	records    []Record
	years      []string
	countries  []string
	byYear     map[string][]int
	maxPatents float64
}

// New indexes records in the order given.  Display labels are derived here,
// so callers only need to fill the raw columns.
func New(records []Record) *Dataset {
	d := &Dataset{
		records: make([]Record, len(records)),
		byYear:  make(map[string][]int),
	}
	seenCountry := make(map[string]bool)
	for i, r := range records {
		d.records[i] = r.withLabels()
		if _, ok := d.byYear[r.Year]; !ok {
			d.years = append(d.years, r.Year)
		}
		d.byYear[r.Year] = append(d.byYear[r.Year], i)
		if !seenCountry[r.Name] {
			seenCountry[r.Name] = true
			d.countries = append(d.countries, r.Name)
		}
		if r.Patents > d.maxPatents {
			d.maxPatents = r.Patents
		}
	}
	return d
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns all records in source order.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Years returns the distinct year labels in first-seen order.
func (d *Dataset) Years() []string {
	out := make([]string, len(d.years))
	copy(out, d.years)
	return out
}

// Countries returns the distinct country names in first-seen order.
func (d *Dataset) Countries() []string {
	out := make([]string, len(d.countries))
	copy(out, d.countries)
	return out
}

// HasYear reports whether any record carries year.
func (d *Dataset) HasYear(year string) bool {
	_, ok := d.byYear[year]
	return ok
}

// ByYear returns the records for year in source order.  An unknown year
// yields an empty, non-nil slice.
func (d *Dataset) ByYear(year string) []Record {
	idx := d.byYear[year]
	out := make([]Record, 0, len(idx))
	for _, i := range idx {
		out = append(out, d.records[i])
	}
	return out
}

// MaxPatents returns the largest patent count across every year.
func (d *Dataset) MaxPatents() float64 { return d.maxPatents }

// Summary describes the extents of the dataset.
type Summary struct {
	Rows          int     `json:"rows" yaml:"rows"`
	Years         int     `json:"years" yaml:"years"`
	Countries     int     `json:"countries" yaml:"countries"`
	FirstYear     string  `json:"first_year" yaml:"first_year"`
	LastYear      string  `json:"last_year" yaml:"last_year"`
	MinGDP        float64 `json:"min_gdp" yaml:"min_gdp"`
	MaxGDP        float64 `json:"max_gdp" yaml:"max_gdp"`
	MinRatio      float64 `json:"min_pat_100k" yaml:"min_pat_100k"`
	MaxRatio      float64 `json:"max_pat_100k" yaml:"max_pat_100k"`
	MeanRatio     float64 `json:"mean_pat_100k" yaml:"mean_pat_100k"`
	MaxPatents    float64 `json:"max_patents" yaml:"max_patents"`
	TotalPatents  float64 `json:"total_patents" yaml:"total_patents"`
	OutOfRangeGDP int     `json:"out_of_range_gdp" yaml:"out_of_range_gdp"`
}

// Summarize computes the dataset extents.  xMax is the chart's GDP axis
// limit; rows beyond it are counted in OutOfRangeGDP so operators notice
// points the figure will clip.
func (d *Dataset) Summarize(xMax float64) Summary {
	s := Summary{
		Rows:       len(d.records),
		Years:      len(d.years),
		Countries:  len(d.countries),
		MaxPatents: d.maxPatents,
	}
	if len(d.records) == 0 {
		return s
	}
	s.FirstYear = d.years[0]
	s.LastYear = d.years[len(d.years)-1]

	gdp := make([]float64, len(d.records))
	ratio := make([]float64, len(d.records))
	for i, r := range d.records {
		gdp[i] = r.GDP
		ratio[i] = r.PatentsPer100k
		s.TotalPatents += r.Patents
		if r.GDP > xMax {
			s.OutOfRangeGDP++
		}
	}
	s.MinGDP, s.MaxGDP = stats.Bounds(gdp)
	s.MinRatio, s.MaxRatio = stats.Bounds(ratio)
	s.MeanRatio = stats.Mean(ratio)
	if math.IsNaN(s.MeanRatio) {
		s.MeanRatio = 0
	}
	return s
}

//Personal.AI order the ending
