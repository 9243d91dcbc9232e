// Package config loads kernel-wide defaults from a YAML file. All values
// are optional; absent fields fall back to the built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chazu/kerf/pkg/geometry"
)

// DefaultTolerance is the approximation tolerance used when a config does
// not specify one, in model units.
const DefaultTolerance = 0.01

// Config holds kernel-wide default settings.
type Config struct {
	// Tolerance is the default chord-height tolerance for curve
	// approximation, in model units.
	Tolerance float64 `yaml:"tolerance"`

	// Units names the model unit. Informational only; the kernel is
	// unit-agnostic.
	Units string `yaml:"units"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tolerance: DefaultTolerance,
		Units:     "mm",
	}
}

// Load reads a YAML config file and merges it over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse merges YAML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if _, err := geometry.NewTolerance(c.Tolerance); err != nil {
		return fmt.Errorf("tolerance %v: %w", c.Tolerance, err)
	}
	if c.Units == "" {
		return fmt.Errorf("units must not be empty")
	}
	return nil
}

// ApproxTolerance returns the configured tolerance as a validated
// geometry.Tolerance. Call Validate first; an invalid value panics here.
func (c Config) ApproxTolerance() geometry.Tolerance {
	return geometry.MustTolerance(c.Tolerance)
}
