package exporter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedBase string
	}{
		{
			name:         "replaces foreign suffix",
			input:        "report.txt",
			expectedBase: "report.csv",
		},
		{
			name:         "appends missing suffix",
			input:        "report",
			expectedBase: "report.csv",
		},
		{
			name:         "keeps canonical suffix",
			input:        "report.csv",
			expectedBase: "report.csv",
		},
		{
			name:         "replaces uppercase-free multi dot name",
			input:        "orders.2024.json",
			expectedBase: "orders.2024.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizeExtension(tt.input)
			require.NoError(t, err)

			assert.True(t, filepath.IsAbs(result), "result should be absolute: %s", result)
			assert.Equal(t, tt.expectedBase, filepath.Base(result))
			assert.True(t, strings.HasSuffix(result, ".csv"))
		})
	}
}

func TestResolveExportPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name         string
		fileName     string
		category     string
		expectedBase string
	}{
		{
			name:         "default stock file name",
			fileName:     "",
			category:     CategoryStock,
			expectedBase: "stock_orders.csv",
		},
		{
			name:         "default option file name",
			fileName:     "",
			category:     CategoryOption,
			expectedBase: "option_orders.csv",
		},
		{
			name:         "default crypto file name",
			fileName:     "",
			category:     CategoryCrypto,
			expectedBase: "crypto_orders.csv",
		},
		{
			name:         "custom file name normalized",
			fileName:     "taxes_2024.txt",
			category:     CategoryStock,
			expectedBase: "taxes_2024.csv",
		},
		{
			name:         "custom file name without suffix",
			fileName:     "taxes",
			category:     CategoryCrypto,
			expectedBase: "taxes.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ResolveExportPath(dir, tt.fileName, tt.category)
			require.NoError(t, err)

			assert.True(t, filepath.IsAbs(result))
			assert.Equal(t, filepath.Join(dir, tt.expectedBase), result)
			assert.True(t, strings.HasSuffix(result, ".csv"))
		})
	}
}

func TestResolveExportPath_RelativeDirectory(t *testing.T) {
	result, err := ResolveExportPath(".", "", CategoryStock)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(result))
	assert.Equal(t, "stock_orders.csv", filepath.Base(result))
}

func TestResolveExportPath_NoSideEffects(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")

	// Resolution is pure path construction; nothing is created.
	result, err := ResolveExportPath(dir, "", CategoryOption)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "option_orders.csv"), result)

	assert.NoDirExists(t, dir)
}
