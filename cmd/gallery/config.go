// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gallery/internal/acquire"
	"github.com/pdiddy/gallery/internal/catalog"
	"github.com/pdiddy/gallery/internal/export"
	"github.com/pdiddy/gallery/internal/slideshow"
	"github.com/pdiddy/gallery/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultUserAgent  = "gallery/0.1"
	defaultMaxRetries = 3
)

// setDefaults registers every config key so that GALLERY_* environment
// variables apply to all of them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.base_url", catalog.DefaultBaseURL)
	v.SetDefault("catalog.timeout", defaultTimeout)
	v.SetDefault("catalog.user_agent", defaultUserAgent)
	v.SetDefault("catalog.max_retries", defaultMaxRetries)

	v.SetDefault("acquisition.sample_size", acquire.DefaultSampleSize)
	v.SetDefault("acquisition.request_delay", acquire.DefaultRequestDelay)
	v.SetDefault("acquisition.dedup_within_cycle", true)

	v.SetDefault("slideshow.interval", slideshow.DefaultInterval)
	v.SetDefault("slideshow.seed_file", "")

	v.SetDefault("export.path", export.DefaultPath)
	v.SetDefault("export.format", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// loadConfig decodes the viper layers (defaults, config file, environment)
// and applies any flags the user set on cmd.
func loadConfig(cmd *cobra.Command) (types.GalleryConfig, error) {
	var cfg types.GalleryConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	applyFlags(cmd, &cfg)
	return cfg, nil
}

// applyFlags overrides config values with flags explicitly set on cmd.
// Flags a command does not define are ignored.
func applyFlags(cmd *cobra.Command, cfg *types.GalleryConfig) {
	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}

	if changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
	if changed("seed-file") {
		cfg.Slideshow.SeedFile, _ = flags.GetString("seed-file")
	}
	if changed("timeout") {
		cfg.Catalog.Timeout, _ = flags.GetDuration("timeout")
	}
	if changed("sample-size") {
		cfg.Acquisition.SampleSize, _ = flags.GetInt("sample-size")
	}
	if changed("delay") {
		cfg.Acquisition.RequestDelay, _ = flags.GetDuration("delay")
	}
	if changed("dedup-within-cycle") {
		cfg.Acquisition.DedupWithinCycle, _ = flags.GetBool("dedup-within-cycle")
	}
	if changed("interval") {
		cfg.Slideshow.Interval, _ = flags.GetDuration("interval")
	}
	if changed("output") {
		cfg.Export.Path, _ = flags.GetString("output")
	}
	if changed("format") {
		f, _ := flags.GetString("format")
		cfg.Export.Format = types.ExportFormat(f)
	}
}

// addAcquisitionFlags registers the flags shared by commands that can run
// an acquisition cycle.
func addAcquisitionFlags(cmd *cobra.Command) {
	cmd.Flags().Int("sample-size", 0, "identifiers sampled per acquisition cycle (default 20)")
	cmd.Flags().Duration("delay", 0, "delay between consecutive catalog requests (default 800ms)")
	cmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	cmd.Flags().Bool("dedup-within-cycle", true, "also reject duplicates among paintings fetched in the same cycle")
}
