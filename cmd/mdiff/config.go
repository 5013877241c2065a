package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"go.jacobcolvin.com/mdiff"
	"go.jacobcolvin.com/mdiff/seqmatch"
)

// config holds the flag defaults, optionally overridden by a config file at
// $XDG_CONFIG_HOME/mdiff/config.yaml.
type config struct {
	LineMatcher   string  `yaml:"lineMatcher"`
	InlineMatcher string  `yaml:"inlineMatcher"`
	CharMode      string  `yaml:"charMode"`
	ColorMode     string  `yaml:"colorMode"`
	Cutoff        float64 `yaml:"cutoff"`
}

func defaultConfig() config {
	return config{
		LineMatcher:   string(seqmatch.NameHeckel),
		InlineMatcher: string(seqmatch.NameStandard),
		CharMode:      "utf8",
		ColorMode:     "auto",
		Cutoff:        mdiff.DefaultCutoff,
	}
}

// loadConfig reads the config file if present. A missing file is the normal
// case; an unreadable or invalid one falls back to defaults.
func loadConfig() config {
	cfg := defaultConfig()

	dir, err := os.UserConfigDir()
	if err != nil {
		return cfg
	}

	path := filepath.Join(dir, "mdiff", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Debug("read config",
				slog.String("path", path),
				slog.Any("error", err),
			)
		}

		return cfg
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		slog.Debug("parse config",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return defaultConfig()
	}

	return cfg
}
