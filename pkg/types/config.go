package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "gallery/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// CatalogConfig holds settings for the museum catalog client.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the collection API root, without a trailing slash.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// MaxRetries bounds retries per request on 429, 5xx, and transport errors (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// AcquisitionConfig holds settings for an acquisition cycle.
type AcquisitionConfig struct {
	// SampleSize is the number of identifiers sampled per cycle (default 20).
	SampleSize int `json:"sample_size" yaml:"sample_size" mapstructure:"sample_size"`

	// RequestDelay is the pause between consecutive object fetches (default 800ms).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay" mapstructure:"request_delay"`

	// DedupWithinCycle also rejects candidates that duplicate a painting
	// accepted earlier in the same cycle. When false only the store is checked.
	DedupWithinCycle bool `json:"dedup_within_cycle" yaml:"dedup_within_cycle" mapstructure:"dedup_within_cycle"`
}

// SlideshowConfig holds settings for the rotating display.
type SlideshowConfig struct {
	// Interval is the auto-rotation period (default 10s).
	Interval time.Duration `json:"interval" yaml:"interval" mapstructure:"interval"`

	// SeedFile optionally replaces the built-in seed paintings (YAML or JSON).
	SeedFile string `json:"seed_file,omitempty" yaml:"seed_file,omitempty" mapstructure:"seed_file"`
}

// ExportFormat selects the collection export encoding.
type ExportFormat string

const (
	ExportJSON   ExportFormat = "json"
	ExportYAML   ExportFormat = "yaml"
	ExportSQLite ExportFormat = "sqlite"
)

// ExportConfig holds settings for collection export.
type ExportConfig struct {
	// Path is the output file (default "my-art-collection.json").
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// Format overrides the format inferred from Path's extension.
	Format ExportFormat `json:"format,omitempty" yaml:"format,omitempty" mapstructure:"format"`
}

// LogConfig holds settings for the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is console or json (default console).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// GalleryConfig groups all component configurations.
type GalleryConfig struct {
	Catalog     CatalogConfig     `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Acquisition AcquisitionConfig `json:"acquisition" yaml:"acquisition" mapstructure:"acquisition"`
	Slideshow   SlideshowConfig   `json:"slideshow" yaml:"slideshow" mapstructure:"slideshow"`
	Export      ExportConfig      `json:"export" yaml:"export" mapstructure:"export"`
	Log         LogConfig         `json:"log" yaml:"log" mapstructure:"log"`
}
