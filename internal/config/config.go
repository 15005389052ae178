// Package config loads the application configuration from YAML.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir = ".lifelab"
	DefaultWidth   = 10
	DefaultHeight  = 10
)

type Config struct {
	// DataDir is the root of user-writable state; user presets live in
	// a subdirectory. Built-in presets ship with the binary and never
	// touch this directory.
	DataDir string     `yaml:"data_dir"`
	Grid    GridConfig `yaml:"grid"`
	// Workers bounds the parallelism of a simulation step; zero means
	// one worker per CPU.
	Workers int `yaml:"workers"`
}

type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		Grid: GridConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PresetDir returns the directory user presets are stored in.
func (c *Config) PresetDir() string {
	return filepath.Join(c.DataDir, "presets")
}
