package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// cliConfig holds persisted defaults loaded from an optional TOML config
// file, e.g. ~/.robotscheck.toml.
type cliConfig struct {
	UserAgent string `toml:"user_agent"`
	Color     bool   `toml:"color"`
}

func loadConfig(path string) (cliConfig, error) {
	cfg := cliConfig{Color: true}
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if _, err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
