package sparkline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGenerateJS_Golden compares generated code against snapshots in
// testdata. A missing snapshot is created from the current output so new
// cases bootstrap themselves.
func TestGenerateJS_Golden(t *testing.T) {
	paramFiles, err := filepath.Glob(filepath.Join("testdata", "*.params.json"))
	require.NoError(t, err)
	require.NotEmpty(t, paramFiles, "no parameter files found in testdata")

	for _, paramFile := range paramFiles {
		baseName := strings.TrimSuffix(filepath.Base(paramFile), ".params.json")
		t.Run(baseName, func(t *testing.T) {
			datasetFile := filepath.Join("testdata", baseName+".dataset.json")
			expectedFile := filepath.Join("testdata", baseName+".expected.js")

			datasetBytes, err := os.ReadFile(datasetFile)
			require.NoError(t, err)
			ds, err := DatasetFromJSON(datasetBytes)
			require.NoError(t, err)

			paramBytes, err := os.ReadFile(paramFile)
			require.NoError(t, err)
			var req PlotRequest
			require.NoError(t, json.Unmarshal(paramBytes, &req))

			generated, err := GenerateJS(ds, req)
			require.NoError(t, err)

			expectedBytes, err := os.ReadFile(expectedFile)
			if os.IsNotExist(err) {
				t.Logf("Expected file %s not found. Creating it.", expectedFile)
				require.NoError(t, os.WriteFile(expectedFile, []byte(generated), 0644))
				return
			}
			require.NoError(t, err)

			// Normalize line endings for comparison.
			expected := strings.ReplaceAll(string(expectedBytes), "\r\n", "\n")
			got := strings.ReplaceAll(generated, "\r\n", "\n")
			require.Equal(t, expected, got)
		})
	}
}
