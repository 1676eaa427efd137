// Package testutil provides dataset and asset fixtures shared by the tests of
// the service, HTTP and command-line packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleCSV is a small dataset in the published column layout: two years,
// with Germany present only in 2021.
const SampleCSV = `,Year,Name,Population,Patents,GDP,Pat_100k,iso_2,iso_3
0,1980,United States,227225000,61819,12575,2.72,US,USA
1,1980,Japan,116807000,46106,9659,3.95,JP,JPN
2,2021,United States,331893745,327798,70249,9.88,US,USA
3,2021,Japan,125681593,184372,39312,14.67,JP,JPN
4,2021,Germany,83196078,17984,51073,2.16,DE,DEU
`

// SampleRows is the number of records in SampleCSV.
const SampleRows = 5

// PNGHeader is enough of a PNG for content sniffing.
var PNGHeader = []byte("\x89PNG\r\n\x1a\n")

// Fixture is a temporary directory holding a dataset and an asset directory.
type Fixture struct {
	Dir       string
	CSVPath   string
	AssetsDir string
}

// WriteFixture writes csv to <tmp>/dataset.csv and creates <tmp>/assets with
// one PNG per asset name.  Everything is removed when t finishes.
func WriteFixture(t testing.TB, csv string, assets ...string) Fixture {
	t.Helper()
	dir := t.TempDir()
	f := Fixture{
		Dir:       dir,
		CSVPath:   filepath.Join(dir, "dataset.csv"),
		AssetsDir: filepath.Join(dir, "assets"),
	}
	if err := os.WriteFile(f.CSVPath, []byte(csv), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	if err := os.Mkdir(f.AssetsDir, 0o755); err != nil {
		t.Fatalf("create assets dir: %v", err)
	}
	for _, name := range assets {
		if err := os.WriteFile(filepath.Join(f.AssetsDir, name), PNGHeader, 0o644); err != nil {
			t.Fatalf("write asset %s: %v", name, err)
		}
	}
	return f
}

// WriteConfig writes a YAML config pointing at the fixture and returns its
// path.  extra is appended verbatim.
func (f Fixture) WriteConfig(t testing.TB, extra string) string {
	t.Helper()
	body := "dataset:\n  source: file\n  path: " + f.CSVPath + "\n" +
		"assets:\n  source: file\n  dir: " + f.AssetsDir + "\n" + extra
	path := filepath.Join(f.Dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

//Personal.AI order the ending
