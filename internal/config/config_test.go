package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for explicitly given missing file")
	}
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[playback]
delay = 0.2
skip = 4

[style]
cursor = "#"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Playback.Delay != 0.2 || cfg.Playback.Skip != 4 {
		t.Errorf("playback = %+v", cfg.Playback)
	}
	if cfg.Style.Cursor != "#" {
		t.Errorf("cursor = %q, want #", cfg.Style.Cursor)
	}
	// untouched fields keep their defaults
	if cfg.Playback.Scale != 1.0 {
		t.Errorf("scale = %v, want 1.0", cfg.Playback.Scale)
	}
	if cfg.Surface.MaxWidth != 80 || cfg.Surface.MaxHeight != 24 {
		t.Errorf("surface = %+v", cfg.Surface)
	}
	if cfg.Style.Trail != "." {
		t.Errorf("trail = %q, want .", cfg.Style.Trail)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[playback\ndelay="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error")
	}
}
