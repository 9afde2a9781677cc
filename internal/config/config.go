// Package config loads viewer defaults from an optional TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config carries the recognized viewer options. CLI flags override it.
type Config struct {
	Playback Playback `toml:"playback"`
	Surface  Surface  `toml:"surface"`
	Style    Style    `toml:"style"`
	Canvas   Canvas   `toml:"canvas"`
}

// Playback holds pacing and sampling options.
type Playback struct {
	Scale  float64 `toml:"scale"`
	Delay  float64 `toml:"delay"` // seconds between animated frames
	Skip   int     `toml:"skip"`
	Static bool    `toml:"static"`
}

// Surface caps the cell grid; the actual display extent bounds it
// further.
type Surface struct {
	MaxWidth  int `toml:"max_width"`
	MaxHeight int `toml:"max_height"`
}

// Style selects marker glyphs.
type Style struct {
	Trail  string `toml:"trail"`
	Cursor string `toml:"cursor"`
}

// Canvas sets the pixel extent of PNG output.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Playback: Playback{Scale: 1.0, Delay: 0.05, Skip: 1},
		Surface:  Surface{MaxWidth: 80, MaxHeight: 24},
		Style:    Style{Trail: ".", Cursor: "@"},
		Canvas:   Canvas{Width: 800, Height: 600},
	}
}

// Load reads the config at path, or the default location when path is
// empty. A missing file at the default location is not an error:
// defaults apply. A missing explicitly given file is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if path == "" {
		path = defaultPath()
	}
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return cfg, err
		}
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "traceview", "config.toml")
}
