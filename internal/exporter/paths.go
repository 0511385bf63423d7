package exporter

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Order categories accepted by ResolveExportPath.
const (
	CategoryStock  = "stock"
	CategoryOption = "option"
	CategoryCrypto = "crypto"
)

// exportExtension is the canonical suffix for delimited export files.
const exportExtension = ".csv"

// fixExtension replaces or appends the file name's suffix so it ends in
// the canonical export extension.
func fixExtension(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + exportExtension
}

// NormalizeExtension returns name with its suffix replaced or added so it
// ends in .csv, resolved to an absolute path. The file does not need to
// exist.
func NormalizeExtension(name string) (string, error) {
	abs, err := filepath.Abs(fixExtension(name))
	if err != nil {
		return "", fmt.Errorf("resolve file name: %w", err)
	}
	return abs, nil
}

// ResolveExportPath builds the destination path for an export: dirPath is
// resolved to an absolute directory, fileName defaults to
// "{category}_orders.csv" when empty and is suffix-normalized otherwise.
// No file or directory is created.
func ResolveExportPath(dirPath, fileName, category string) (string, error) {
	dir, err := filepath.Abs(dirPath)
	if err != nil {
		return "", fmt.Errorf("resolve export directory: %w", err)
	}

	if fileName == "" {
		fileName = fmt.Sprintf("%s_orders%s", category, exportExtension)
	} else {
		fileName = fixExtension(filepath.Base(fileName))
	}

	return filepath.Join(dir, fileName), nil
}
