package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFixture(t *testing.T) {
	f := WriteFixture(t, SampleCSV, "US.png", "db.jpg")

	data, err := os.ReadFile(f.CSVPath)
	require.NoError(t, err)
	assert.Equal(t, SampleCSV, string(data))
	assert.Equal(t, SampleRows, strings.Count(SampleCSV, "\n")-1)

	for _, name := range []string{"US.png", "db.jpg"} {
		data, err := os.ReadFile(filepath.Join(f.AssetsDir, name))
		require.NoError(t, err)
		assert.Equal(t, PNGHeader, data)
	}
}

func TestFixture_WriteConfig(t *testing.T) {
	f := WriteFixture(t, SampleCSV)
	path := f.WriteConfig(t, "log:\n  format: console\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "path: "+f.CSVPath)
	assert.Contains(t, string(data), "dir: "+f.AssetsDir)
	assert.True(t, strings.HasSuffix(string(data), "format: console\n"))
}

//Personal.AI order the ending
