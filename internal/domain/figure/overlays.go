package figure

import (
	"sort"
	"strings"

	"github.com/turtacn/patents-gdp-dashboard/internal/domain/dataset"
)

// SelectTopN returns year's records sorted by patent count descending, ties
// kept in source order, truncated to n.
func SelectTopN(ds *dataset.Dataset, year string, n int) []dataset.Record {
	if n <= 0 {
		return []dataset.Record{}
	}
	records := ds.ByYear(year)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Patents > records[j].Patents
	})
	if len(records) > n {
		records = records[:n]
	}
	return records
}

// OverlaySize sizes a flag with the default factors.  maxPatents is the
// maximum across the whole dataset, so flags are comparable between years.
func OverlaySize(patents, maxPatents float64) float64 {
	d := DefaultOptions()
	return overlaySize(patents, maxPatents, d.OverlayAreaFactor, d.OverlayBaseFactor)
}

// FlagSource returns the image URL for an ISO alpha-2 code, or "" when the
// code is empty.
func FlagSource(assetBase, iso2 string) string {
	if iso2 == "" {
		return ""
	}
	base := strings.TrimSuffix(assetBase, "/")
	if base == "" {
		return iso2 + ".png"
	}
	return base + "/" + iso2 + ".png"
}

// BuildOverlays places a flag on each of the top-N records of the reference
// year.  Records without an ISO alpha-2 code have no flag and are skipped.
func BuildOverlays(ds *dataset.Dataset, opts Options) []LayoutImage {
	top := SelectTopN(ds, opts.ReferenceYear, opts.TopN)
	maxP := ds.MaxPatents()

	images := make([]LayoutImage, 0, len(top))
	for _, r := range top {
		if r.ISO2 == "" {
			continue
		}
		size := overlaySize(r.Patents, maxP, opts.OverlayAreaFactor, opts.OverlayBaseFactor)
		images = append(images, LayoutImage{
			Source:  FlagSource(opts.AssetBase, r.ISO2),
			XRef:    "x",
			YRef:    "y",
			XAnchor: "center",
			YAnchor: "middle",
			X:       r.GDP,
			Y:       r.PatentsPer100k,
			SizeX:   size,
			SizeY:   size,
			Sizing:  "contain",
			Opacity: opts.OverlayOpacity,
			Layer:   "above",
		})
	}
	return images
}

//Personal.AI order the ending
