//go:build !tinygo

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Load returns Default overlaid with TAG_* environment variables.
func Load() (Settings, error) {
	s := Default()
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
