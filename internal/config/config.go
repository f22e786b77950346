// Package config holds the bvpsolve CLI configuration, loadable from
// YAML files and from named presets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSamples     = 5
	DefaultStep        = 1e-6
	DefaultMaxMeshSize = 100
	DefaultPlotWidth   = 72
	DefaultPlotHeight  = 16
	DefaultPlotPoints  = 200
)

// Config is the top-level CLI configuration.
type Config struct {
	Problem string      `yaml:"problem"`
	Check   CheckConfig `yaml:"check"`
	Size    SizeConfig  `yaml:"size"`
	Plot    PlotConfig  `yaml:"plot"`
}

// CheckConfig configures Jacobian validation.
type CheckConfig struct {
	Samples int     `yaml:"samples"`
	Step    float64 `yaml:"step"`
	AbsTol  float64 `yaml:"abs_tol"`
	RelTol  float64 `yaml:"rel_tol"`
	Seed    int64   `yaml:"seed"`
}

// SizeConfig configures workspace sizing reports.
type SizeConfig struct {
	CollocationPoints int `yaml:"collocation_points"`
	MaxMeshSize       int `yaml:"max_mesh_size"`
}

// PlotConfig configures terminal and SVG plots.
type PlotConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Points    int    `yaml:"points"`
	Component int    `yaml:"component"`
	SVG       string `yaml:"svg"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Check: CheckConfig{
			Samples: DefaultSamples,
			Step:    DefaultStep,
		},
		Size: SizeConfig{
			MaxMeshSize: DefaultMaxMeshSize,
		},
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
			Points: DefaultPlotPoints,
		},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
