// Package config holds the analysis configuration the CLI feeds into the
// embedding and dimension-estimation pipeline, with YAML loading and named
// presets for well-known systems.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxRadius = 1.0
	DefaultNumRadii  = 20
	DefaultColumn    = 0
)

type Config struct {
	// Dimension and Delay of 0 mean "estimate from the series".
	Dimension int         `yaml:"dimension"`
	Delay     int         `yaml:"delay"`
	MaxRadius float64     `yaml:"max_radius"`
	NumRadii  int         `yaml:"num_radii"`
	Input     InputConfig `yaml:"input"`
}

type InputConfig struct {
	// Column selects which CSV column carries the series.
	Column int `yaml:"column"`
	// Header skips the first row when true.
	Header bool `yaml:"header"`
}

func DefaultConfig() *Config {
	return &Config{
		Dimension: 0,
		Delay:     0,
		MaxRadius: DefaultMaxRadius,
		NumRadii:  DefaultNumRadii,
		Input: InputConfig{
			Column: DefaultColumn,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dimension < 0 {
		return fmt.Errorf("dimension must be positive or 0 for auto, got %d", c.Dimension)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must be positive or 0 for auto, got %d", c.Delay)
	}
	if c.MaxRadius <= 0 {
		return fmt.Errorf("max_radius must be positive, got %f", c.MaxRadius)
	}
	if c.NumRadii <= 0 {
		return fmt.Errorf("num_radii must be positive, got %d", c.NumRadii)
	}
	if c.Input.Column < 0 {
		return fmt.Errorf("input column must not be negative, got %d", c.Input.Column)
	}
	return nil
}
