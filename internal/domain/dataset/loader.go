package dataset

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/turtacn/patents-gdp-dashboard/pkg/errors"
)

// Column names of the source CSV.
const (
	ColYear       = "Year"
	ColName       = "Name"
	ColPopulation = "Population"
	ColPatents    = "Patents"
	ColGDP        = "GDP"
	ColPat100k    = "Pat_100k"
	ColISO2       = "iso_2"
	ColISO3       = "iso_3"
)

// RequiredColumns lists the columns Load insists on.  The unnamed index
// column and any other extra column are ignored.
var RequiredColumns = []string{
	ColYear, ColName, ColPopulation, ColPatents, ColGDP, ColPat100k, ColISO2, ColISO3,
}

// Load parses a CSV with a header row into a Dataset.  It stops at the first
// problem: there is no partial recovery.
func Load(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.CodeDatasetEmpty, "dataset has no header row")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatasetRead, "failed to read dataset header")
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if stderrors.As(err, &pe) {
				return nil, errors.Wrap(err, errors.CodeMalformedRow, "malformed dataset row").
					WithDetailf("line %d", pe.Line)
			}
			return nil, errors.Wrap(err, errors.CodeDatasetRead, "failed to read dataset")
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRow(row, cols, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, errors.New(errors.CodeDatasetEmpty, "dataset has no rows")
	}
	return New(records), nil
}

type columnIndex map[string]int

func indexColumns(header []string) (columnIndex, error) {
	cols := make(columnIndex, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	for _, name := range RequiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, errors.New(errors.CodeMissingColumn, "dataset is missing a required column").
				WithDetailf("column %q", name)
		}
	}
	return cols, nil
}

func parseRow(row []string, cols columnIndex, line int) (Record, error) {
	text := func(col string) string { return strings.TrimSpace(row[cols[col]]) }

	rec := Record{
		Year: text(ColYear),
		Name: text(ColName),
		ISO2: text(ColISO2),
		ISO3: text(ColISO3),
	}
	for _, c := range []struct {
		col string
		val string
	}{{ColYear, rec.Year}, {ColName, rec.Name}, {ColISO3, rec.ISO3}} {
		if c.val == "" {
			return Record{}, errors.New(errors.CodeMalformedValue, "empty dataset value").
				WithDetailf("line %d column %q", line, c.col)
		}
	}

	numbers := []struct {
		col         string
		dst         *float64
		nonNegative bool
	}{
		{ColPopulation, &rec.Population, true},
		{ColPatents, &rec.Patents, true},
		{ColGDP, &rec.GDP, false},
		{ColPat100k, &rec.PatentsPer100k, false},
	}
	for _, n := range numbers {
		raw := text(n.col)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Record{}, errors.Wrap(err, errors.CodeMalformedValue, "non-numeric dataset value").
				WithDetailf("line %d column %q value %q", line, n.col, raw)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Record{}, errors.New(errors.CodeMalformedValue, "non-finite dataset value").
				WithDetailf("line %d column %q value %q", line, n.col, raw)
		}
		if n.nonNegative && v < 0 {
			return Record{}, errors.New(errors.CodeMalformedValue, "negative dataset value").
				WithDetailf("line %d column %q value %q", line, n.col, raw)
		}
		*n.dst = v
	}
	return rec, nil
}

//Personal.AI order the ending
