// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/gallery/pkg/types"
)

const schema = `CREATE TABLE paintings (
	position INTEGER PRIMARY KEY,
	image_url TEXT NOT NULL,
	title TEXT NOT NULL,
	artist TEXT NOT NULL,
	year TEXT,
	style TEXT,
	description TEXT,
	source TEXT
)`

// writeSQLite writes a fresh database holding one row per painting, in
// collection order. An existing file at path is replaced.
func writeSQLite(ctx context.Context, paintings []types.Painting, path string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".export-*.db")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()

	if err := fillSQLite(ctx, paintings, tmpPath); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return rename(tmpPath, path)
}

func fillSQLite(ctx context.Context, paintings []types.Painting, path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	fillErr := insertPaintings(ctx, db, paintings)
	closeErr := db.Close()
	if fillErr != nil {
		return fillErr
	}
	if closeErr != nil {
		return fmt.Errorf("closing database: %w", closeErr)
	}
	return nil
}

func insertPaintings(ctx context.Context, db *sql.DB, paintings []types.Painting) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO paintings
		(position, image_url, title, artist, year, style, description, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range paintings {
		if _, err := stmt.ExecContext(ctx, i+1, p.ImageURL, p.Title, p.Artist,
			p.Year, p.Style, p.Description, p.Source); err != nil {
			return fmt.Errorf("inserting %q: %w", p.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
