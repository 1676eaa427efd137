package dataset

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var magnitudeSuffixes = []string{"", "K", "M", "B", "T"}

// FormatMagnitude abbreviates v to three significant digits with a
// thousands suffix: 1234 → "1.23K", 1000000 → "1M", 999999 → "1M".
func FormatMagnitude(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	// Rounding first lets 999999 carry into the next suffix.
	v, _ = strconv.ParseFloat(strconv.FormatFloat(v, 'g', 3, 64), 64)

	mag := 0
	for math.Abs(v) >= 1000 && mag < len(magnitudeSuffixes)-1 {
		mag++
		v /= 1000
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s + magnitudeSuffixes[mag]
}

var printer = message.NewPrinter(language.English)

// HoverText renders the tooltip for one record: the country in bold, then the
// abbreviated figures with exact values in parentheses.
func HoverText(r Record) string {
	var sb strings.Builder
	sb.WriteString("<b>")
	sb.WriteString(r.Name)
	sb.WriteString("</b> (")
	sb.WriteString(r.Year)
	sb.WriteString(")<br>")
	sb.WriteString(printer.Sprintf("Patents: %s (%.0f)<br>", labelOr(r.PatentsLabel, r.Patents), r.Patents))
	sb.WriteString(printer.Sprintf("Population: %s (%.0f)<br>", labelOr(r.PopulationLabel, r.Population), r.Population))
	sb.WriteString(printer.Sprintf("GDP per capita: %s (%.0f)<br>", labelOr(r.GDPLabel, r.GDP), r.GDP))
	sb.WriteString(printer.Sprintf("Patents per 100k: %.2f", r.PatentsPer100k))
	return sb.String()
}

func labelOr(label string, v float64) string {
	if label != "" {
		return label
	}
	return FormatMagnitude(v)
}

//Personal.AI order the ending
