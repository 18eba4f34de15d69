// Package config defines tool configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"time"
)

// Default configuration constants.
const (
	defaultBaseURL     = "https://api.openf1.org/v1"
	defaultHTTPTimeout = 15 * time.Second
	defaultExportDir   = "exports"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// BaseURL is the OpenF1 API root, e.g. "https://api.openf1.org/v1".
	BaseURL string `koanf:"base_url"`

	// HTTPTimeoutSeconds bounds each upstream request.
	HTTPTimeoutSeconds int `koanf:"http_timeout_seconds"`

	// ExportDir is where CSV/XLSX/PNG exports are written.
	ExportDir string `koanf:"export_dir"`

	// MetricsAddr, when non-empty, exposes Prometheus metrics on this
	// address for the lifetime of the interactive session, e.g. ":9091".
	MetricsAddr string `koanf:"metrics_addr"`

	// MaxTableRows caps how many rows a console table prints; 0 = no cap.
	MaxTableRows int `koanf:"max_table_rows"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		BaseURL:            defaultBaseURL,
		HTTPTimeoutSeconds: int(defaultHTTPTimeout / time.Second),
		ExportDir:          defaultExportDir,
		MetricsAddr:        "",
		MaxTableRows:       0,
	}
}

// HTTPTimeout returns the upstream request timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}
