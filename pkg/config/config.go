// Package config holds the tunable construction limits. Values ship
// with working defaults and can be overridden from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full construction configuration.
type Config struct {
	Limits   Limits   `yaml:"limits"`
	Defaults Defaults `yaml:"defaults"`
}

// Limits are the local validation floors applied before submission.
// The remote solver rejects degenerate geometry with no diagnostic
// detail, so rejecting locally is the only way to get a usable error.
type Limits struct {
	// MinFilletRadiusInches is the smallest fillet radius accepted.
	MinFilletRadiusInches float64 `yaml:"min_fillet_radius_inches"`
	// MinChamferWidthInches is the smallest chamfer width accepted.
	MinChamferWidthInches float64 `yaml:"min_chamfer_width_inches"`
	// MinDimensionInches is the floor for all other linear dimensions
	// (extrude depth, thicken thickness, pattern spacing).
	MinDimensionInches float64 `yaml:"min_dimension_inches"`
}

// Defaults are applied when a logical operation omits a choice.
type Defaults struct {
	// SketchPlane is the plane used when a sketch names none. One of
	// "Front", "Top", "Right".
	SketchPlane string `yaml:"sketch_plane"`
	// RevolveAngleDegrees is the sweep used when a revolve omits one.
	RevolveAngleDegrees float64 `yaml:"revolve_angle_degrees"`
}

// Default returns the shipped configuration.
func Default() Config {
	return Config{
		Limits: Limits{
			MinFilletRadiusInches: 0.005,
			MinChamferWidthInches: 0.005,
			MinDimensionInches:    0.005,
		},
		Defaults: Defaults{
			SketchPlane:         "Front",
			RevolveAngleDegrees: 360,
		},
	}
}

// Load reads a YAML override file on top of the defaults. Fields the
// file omits keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Limits.MinFilletRadiusInches < 0 ||
		c.Limits.MinChamferWidthInches < 0 ||
		c.Limits.MinDimensionInches < 0 {
		return fmt.Errorf("config: limits must be non-negative")
	}
	switch c.Defaults.SketchPlane {
	case "Front", "Top", "Right":
	default:
		return fmt.Errorf("config: unknown sketch plane %q", c.Defaults.SketchPlane)
	}
	if c.Defaults.RevolveAngleDegrees <= 0 {
		return fmt.Errorf("config: revolve angle must be positive")
	}
	return nil
}
