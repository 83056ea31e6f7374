package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// benchConfig lists the sizes the bench command sweeps over. Every
// combination of Components and Memos is measured for Iterations rounds.
type benchConfig struct {
	Components []int `yaml:"components"`
	Memos      []int `yaml:"memos"`
	Iterations int   `yaml:"iterations"`
}

func defaultBenchConfig() benchConfig {
	return benchConfig{
		Components: []int{1, 10, 100, 1_000},
		Memos:      []int{0, 1, 10},
		Iterations: 100,
	}
}

// loadBenchConfig reads path over the defaults. An empty path returns the
// defaults; keys missing from the file keep their default.
func loadBenchConfig(path string) (benchConfig, error) {
	cfg := defaultBenchConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read bench config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse bench config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c benchConfig) validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if len(c.Components) == 0 {
		return fmt.Errorf("no component counts configured")
	}
	for _, n := range c.Components {
		if n <= 0 {
			return fmt.Errorf("component count must be positive, got %d", n)
		}
	}
	if len(c.Memos) == 0 {
		return fmt.Errorf("no memo counts configured")
	}
	for _, m := range c.Memos {
		if m < 0 {
			return fmt.Errorf("memo count must not be negative, got %d", m)
		}
	}
	return nil
}
