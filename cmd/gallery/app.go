// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/gallery/internal/acquire"
	"github.com/pdiddy/gallery/internal/catalog"
	"github.com/pdiddy/gallery/internal/collection"
	"github.com/pdiddy/gallery/internal/display"
	"github.com/pdiddy/gallery/internal/export"
	"github.com/pdiddy/gallery/internal/slideshow"
	"github.com/pdiddy/gallery/pkg/types"
)

// app wires the collection store to its writer (the acquisition pipeline)
// and its readers (console, rotator, export).
type app struct {
	cfg      types.GalleryConfig
	logger   *zap.Logger
	store    *collection.Store
	console  *display.Console
	rotator  *slideshow.Rotator
	pipeline *acquire.Pipeline
}

func newApp(cfg types.GalleryConfig, log *zap.Logger, out io.Writer) (*app, error) {
	seed := collection.Seed()
	if cfg.Slideshow.SeedFile != "" {
		loaded, err := collection.LoadSeedFile(cfg.Slideshow.SeedFile)
		if err != nil {
			return nil, err
		}
		seed = loaded
	}

	store := collection.NewStore(seed...)
	console := display.NewConsole(out)

	pipeline := acquire.New(catalog.NewClient(cfg.Catalog), store, cfg.Acquisition, log)
	pipeline.Progress = console

	return &app{
		cfg:      cfg,
		logger:   log,
		store:    store,
		console:  console,
		rotator:  slideshow.New(store, console, cfg.Slideshow.Interval),
		pipeline: pipeline,
	}, nil
}

// collect runs one acquisition cycle and reports the outcome on the console.
// If nothing has been shown yet, a painting is rendered afterwards.
func (a *app) collect(ctx context.Context) (acquire.Result, error) {
	a.console.Notify("fetching paintings from "+types.SourceMet+"...", display.Info)

	res, err := a.pipeline.Acquire(ctx, a.cfg.Acquisition.SampleSize)
	if err != nil {
		a.console.Notify(fmt.Sprintf("collection failed: %v", err), display.Error)
		return res, err
	}

	msg := fmt.Sprintf("added %d new paintings", len(res.Accepted))
	if skipped := skippedSummary(res); skipped != "" {
		msg += " (" + skipped + ")"
	}
	a.console.Notify(msg, display.Info)

	if !a.console.Rendered() {
		a.rotator.Next()
	}
	return res, nil
}

// skippedSummary describes the rejections of a cycle, e.g.
// "skipped 2 duplicate, 1 incomplete".
func skippedSummary(res acquire.Result) string {
	var parts []string
	for _, r := range []acquire.Reason{acquire.ReasonDuplicate, acquire.ReasonIncomplete, acquire.ReasonFetchFailed} {
		if n := res.Count(r); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, strings.ReplaceAll(string(r), "_", " ")))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "skipped " + strings.Join(parts, ", ")
}

// save exports the collection. An explicit path infers its own format
// unless one is configured.
func (a *app) save(ctx context.Context, path string) error {
	format := a.cfg.Export.Format
	if path == "" {
		path = a.cfg.Export.Path
	}
	if path == "" {
		path = export.DefaultPath
	}

	paintings := a.store.Snapshot()
	err := export.Export(ctx, paintings, format, path)
	switch {
	case errors.Is(err, export.ErrEmptyCollection):
		a.console.Notify("nothing to save, collect some paintings first", display.Error)
		return err
	case err != nil:
		a.console.Notify(fmt.Sprintf("save failed: %v", err), display.Error)
		return err
	}

	a.logger.Info("collection exported", zap.String("path", path), zap.Int("paintings", len(paintings)))
	a.console.Notify(fmt.Sprintf("saved %d paintings to %s", len(paintings), path), display.Info)
	return nil
}
