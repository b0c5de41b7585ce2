// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the painting collection to a file as JSON, YAML,
// or a SQLite snapshot. Exports are one-shot: nothing reads them back.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gallery/pkg/types"
)

// DefaultPath is the export file used when none is configured.
const DefaultPath = "my-art-collection.json"

var (
	// ErrEmptyCollection is returned when there is nothing to export.
	ErrEmptyCollection = errors.New("collection is empty")

	// ErrUnknownFormat is returned for an unsupported export format.
	ErrUnknownFormat = errors.New("unknown export format")
)

// FormatFromPath infers the export format from the file extension.
// Unrecognized extensions default to JSON.
func FormatFromPath(path string) types.ExportFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return types.ExportYAML
	case ".db", ".sqlite", ".sqlite3":
		return types.ExportSQLite
	default:
		return types.ExportJSON
	}
}

// Export writes paintings to path. An empty format is inferred from path.
// The file is written to a temporary sibling and renamed into place.
func Export(ctx context.Context, paintings []types.Painting, format types.ExportFormat, path string) error {
	if len(paintings) == 0 {
		return ErrEmptyCollection
	}
	if path == "" {
		path = DefaultPath
	}
	if format == "" {
		format = FormatFromPath(path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	switch format {
	case types.ExportJSON:
		data, err := json.MarshalIndent(paintings, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return writeAtomic(path, append(data, '\n'))
	case types.ExportYAML:
		data, err := yaml.Marshal(paintings)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return writeAtomic(path, data)
	case types.ExportSQLite:
		return writeSQLite(ctx, paintings, path)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// writeAtomic writes data to a temp file next to path and renames it.
func writeAtomic(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing export: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	return rename(tmpPath, path)
}

func rename(tmpPath, path string) error {
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
