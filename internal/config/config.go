// Package config defines process configuration and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load layers defaults, an optional YAML file and environment variables.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"context"
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MatchesDir is the root directory holding per-match ground truth and
	// result documents.
	MatchesDir string `koanf:"matches_dir"`

	// ClockToleranceSeconds bounds the clock difference for two events to
	// be aligned as the same occurrence.
	ClockToleranceSeconds int `koanf:"clock_tolerance_seconds"`

	// FieldClockToleranceSeconds bounds the clock difference for the
	// match_clock field to count as correct on an aligned pair.
	FieldClockToleranceSeconds int `koanf:"field_clock_tolerance_seconds"`

	// WorkerCount sets how many result files are evaluated concurrently.
	WorkerCount int `koanf:"worker_count"`

	// MetricsAddr exposes Prometheus metrics when non-empty, e.g. ":9091".
	MetricsAddr string `koanf:"metrics_addr"`
}

// New creates a Config with defaults. Context is accepted first per the
// project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:                   "info",
		MatchesDir:                 "matches",
		ClockToleranceSeconds:      10,
		FieldClockToleranceSeconds: 5,
		WorkerCount:                runtime.NumCPU(),
		MetricsAddr:                "",
	}
}
