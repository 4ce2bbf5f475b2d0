package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Limits.MinFilletRadiusInches != 0.005 {
		t.Errorf("min fillet radius = %v, want 0.005", cfg.Limits.MinFilletRadiusInches)
	}
	if cfg.Defaults.SketchPlane != "Front" {
		t.Errorf("default sketch plane = %q, want Front", cfg.Defaults.SketchPlane)
	}
	if cfg.Defaults.RevolveAngleDegrees != 360 {
		t.Errorf("default revolve angle = %v, want 360", cfg.Defaults.RevolveAngleDegrees)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ftree.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
limits:
  min_fillet_radius_inches: 0.01
defaults:
  sketch_plane: Top
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Limits.MinFilletRadiusInches != 0.01 {
		t.Errorf("min fillet radius = %v, want 0.01", cfg.Limits.MinFilletRadiusInches)
	}
	if cfg.Defaults.SketchPlane != "Top" {
		t.Errorf("sketch plane = %q, want Top", cfg.Defaults.SketchPlane)
	}
	// Untouched fields keep their defaults.
	if cfg.Limits.MinChamferWidthInches != 0.005 {
		t.Errorf("chamfer width = %v, want default 0.005", cfg.Limits.MinChamferWidthInches)
	}
	if cfg.Defaults.RevolveAngleDegrees != 360 {
		t.Errorf("revolve angle = %v, want default 360", cfg.Defaults.RevolveAngleDegrees)
	}
}

func TestLoadRejectsBadPlane(t *testing.T) {
	path := writeConfig(t, "defaults:\n  sketch_plane: Diagonal\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown plane name")
	}
}

func TestLoadRejectsNegativeLimit(t *testing.T) {
	path := writeConfig(t, "limits:\n  min_dimension_inches: -1\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative limit")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "limits: [not a map\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
