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
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if OPENF1_CONFIG is set
//  3. env (prefix OPENF1_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("OPENF1_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: OPENF1_BASE_URL, OPENF1_EXPORT_DIR, ...
	// Map env keys like OPENF1_BASE_URL -> base_url (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("OPENF1_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "openf1_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("%w: base_url must not be empty", ErrInvalidConfig)
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: http_timeout_seconds must be positive", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.ExportDir) == "" {
		return nil, fmt.Errorf("%w: export_dir must not be empty", ErrInvalidConfig)
	}
	return &cfg, nil
}
