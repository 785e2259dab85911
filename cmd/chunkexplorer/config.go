package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the presentation settings read from the user's config file.
type Config struct {
	ExpandDepth int  // tree levels expanded at startup
	BytesPerRow int  // hex pane bytes per row
	ShowASCII   bool // printable-characters sidebar in the hex pane
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		ExpandDepth: 1,
		BytesPerRow: 16,
		ShowASCII:   true,
	}
}

// fileConfig is the config.toml key mapping.
type fileConfig struct {
	ExpandDepth int  `toml:"expand_depth"`
	BytesPerRow int  `toml:"bytes_per_row"`
	ShowASCII   bool `toml:"show_ascii"`
}

// LoadConfig reads path, overlaying defined keys onto the defaults. An
// empty path means ~/.chunkexplorer/config.toml; a missing file is not an
// error, a malformed or out-of-range one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".chunkexplorer", "config.toml")
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	if meta.IsDefined("expand_depth") {
		cfg.ExpandDepth = raw.ExpandDepth
	}
	if meta.IsDefined("bytes_per_row") {
		cfg.BytesPerRow = raw.BytesPerRow
	}
	if meta.IsDefined("show_ascii") {
		cfg.ShowASCII = raw.ShowASCII
	}

	if cfg.ExpandDepth < 0 {
		return cfg, fmt.Errorf("config %s: expand_depth must not be negative, got %d", path, cfg.ExpandDepth)
	}
	if cfg.BytesPerRow < 4 || cfg.BytesPerRow > 64 {
		return cfg, fmt.Errorf("config %s: bytes_per_row must be between 4 and 64, got %d", path, cfg.BytesPerRow)
	}

	return cfg, nil
}
