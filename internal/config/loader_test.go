package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default config does not parse: %v", err)
	}

	want := Default()
	if cfg.FPS != want.FPS {
		t.Errorf("fps = %d, want %d", cfg.FPS, want.FPS)
	}
	if cfg.Theme.Head.Color != want.Theme.Head.Color {
		t.Errorf("head color = %q, want %q", cfg.Theme.Head.Color, want.Theme.Head.Color)
	}
	if cfg.Theme.Food.Glyph != want.Theme.Food.Glyph {
		t.Errorf("food glyph = %q, want %q", cfg.Theme.Food.Glyph, want.Theme.Food.Glyph)
	}
	if cfg.SSH.Address != want.SSH.Address {
		t.Errorf("ssh address = %q, want %q", cfg.SSH.Address, want.SSH.Address)
	}
	if cfg.SSH.IdleTimeoutMinutes != want.SSH.IdleTimeoutMinutes {
		t.Errorf("ssh idle timeout = %d, want %d", cfg.SSH.IdleTimeoutMinutes, want.SSH.IdleTimeoutMinutes)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("fps: 30\ntheme:\n  head:\n    glyph: \"@@\"\n    color: green\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if cfg.FPS != 30 {
		t.Errorf("fps = %d, want 30", cfg.FPS)
	}
	if cfg.Theme.Head.Glyph != "@@" {
		t.Errorf("head glyph = %q, want %q", cfg.Theme.Head.Glyph, "@@")
	}
	if cfg.Theme.Head.Color != "green" {
		t.Errorf("head color = %q, want %q", cfg.Theme.Head.Color, "green")
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadCustomPathBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: [not a number"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed explicit config")
	}
	if !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("unexpected error: %v", err)
	}
}
