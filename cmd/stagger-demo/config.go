package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// demoConfig is the optional YAML-tunable part of the demo
// Durations are float64 seconds
type demoConfig struct {
	BaseDelay     float64 `yaml:"base_delay"`
	Entrance      float64 `yaml:"entrance"`
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	RowThreshold  float64 `yaml:"row_threshold"`
	Sound         bool    `yaml:"sound"`
	ReducedMotion bool    `yaml:"reduced_motion"`
}

func defaultDemoConfig() demoConfig {
	return demoConfig{
		BaseDelay:    0.1,
		Entrance:     0.25,
		Rows:         3,
		Cols:         4,
		RowThreshold: 2,
	}
}

// loadDemoConfig overlays the YAML file at path onto the defaults
func loadDemoConfig(path string) (demoConfig, error) {
	cfg := defaultDemoConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.BaseDelay < 0 {
		cfg.BaseDelay = 0
	}
	if cfg.Entrance <= 0 {
		cfg.Entrance = 0.25
	}
	if cfg.Rows < 1 {
		cfg.Rows = 1
	}
	if cfg.Cols < 1 {
		cfg.Cols = 1
	}
	return cfg, nil
}
