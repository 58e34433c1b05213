package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if MATSCORE_CONFIG is set
//  3. env (prefix MATSCORE_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("MATSCORE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: MATSCORE_MATCHES_DIR, MATSCORE_WORKER_COUNT, ...
	// Keys map to the koanf tags on the struct, underscores preserved.
	envProvider := env.Provider("MATSCORE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "matscore_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if cfg.MatchesDir == "" {
		return nil, fmt.Errorf("%w: matches_dir must not be empty", ErrInvalidConfig)
	}
	if cfg.ClockToleranceSeconds < 0 {
		return nil, fmt.Errorf("%w: clock_tolerance_seconds must not be negative", ErrInvalidConfig)
	}
	if cfg.FieldClockToleranceSeconds < 0 {
		return nil, fmt.Errorf("%w: field_clock_tolerance_seconds must not be negative", ErrInvalidConfig)
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
