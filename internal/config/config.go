package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the tunable parameters for the planetgen tools.
type Config struct {
	Planet PlanetConfig `yaml:"planet"`
	Export ExportConfig `yaml:"export"`
	Serve  ServeConfig  `yaml:"serve"`
}

// PlanetConfig selects which planet gets generated.
type PlanetConfig struct {
	Seed   int32   `yaml:"seed"`
	Scale  float64 `yaml:"scale"`  // height multiplier
	Radius float64 `yaml:"radius"` // base sphere radius
}

// ExportConfig controls heightmap export.
type ExportConfig struct {
	Size   int    `yaml:"size"` // heightmap is size×size
	Output string `yaml:"output"`
}

// ServeConfig controls the preview server.
type ServeConfig struct {
	Listen  string `yaml:"listen"`
	MaxSize int    `yaml:"maxSize"` // largest heightmap a request may ask for
}

// Load reads configuration from a YAML file. An empty path returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Planet: PlanetConfig{
			Seed:   42,
			Scale:  1.0,
			Radius: 1.0,
		},
		Export: ExportConfig{
			Size:   512,
			Output: "planet.png",
		},
		Serve: ServeConfig{
			Listen:  ":8420",
			MaxSize: 2048,
		},
	}
}

// Validate rejects configurations the tools cannot run with.
func (c *Config) Validate() error {
	if c.Planet.Radius <= 0 {
		return errors.New("planet.radius must be positive")
	}
	if c.Export.Size <= 0 {
		return errors.New("export.size must be positive")
	}
	if c.Export.Output == "" {
		return errors.New("export.output must be set")
	}
	if c.Serve.Listen == "" {
		return errors.New("serve.listen must be set")
	}
	if c.Serve.MaxSize <= 0 {
		return errors.New("serve.maxSize must be positive")
	}
	return nil
}
