// Package config loads the optional YAML configuration file used by the API
// server mode.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings and the scan defaults applied to API
// requests that leave them unset.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
		DSN  string `yaml:"dsn"`
	} `yaml:"server"`

	Scan struct {
		TimeoutMs   int `yaml:"timeout_ms"`
		Concurrency int `yaml:"concurrency"`
	} `yaml:"scan"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8585"
	cfg.Server.DSN = "root:@tcp(127.0.0.1:3306)/netrecon?charset=utf8mb4&parseTime=True&loc=Local"
	cfg.Scan.TimeoutMs = 1000
	cfg.Scan.Concurrency = 50
	return cfg
}

// Load reads the YAML config at path. A missing file is not an error: the
// defaults are returned so the tool runs without any setup. Settings left
// out of the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = Default().Server.Addr
	}
	if cfg.Scan.TimeoutMs <= 0 {
		cfg.Scan.TimeoutMs = Default().Scan.TimeoutMs
	}
	if cfg.Scan.Concurrency == 0 {
		cfg.Scan.Concurrency = Default().Scan.Concurrency
	}
	return cfg, nil
}
