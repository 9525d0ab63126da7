package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile mirrors the tunable sections of the global config. Sections
// are decoded into the live globals, so keys missing from the file keep their
// current values.
type overrideFile struct {
	Progression *ProgressionConfig `yaml:"progression"`
	Camera      *CameraConfig      `yaml:"camera"`
	Scenery     *SceneryConfig     `yaml:"scenery"`
	Planes      string             `yaml:"planes"` // optional path to a plane table
}

// LoadOverrides applies a YAML tuning file on top of the defaults.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config overrides: %w", err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides decodes YAML tuning data into the global config. On error
// the globals are left unchanged.
func ApplyOverrides(data []byte) error {
	progression := Progression
	camera := Camera
	scenery := Scenery

	f := overrideFile{
		Progression: &progression,
		Camera:      &camera,
		Scenery:     &scenery,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config overrides: %w", err)
	}

	if err := validateTuning(progression, camera); err != nil {
		return err
	}

	planes := Planes
	if f.Planes != "" {
		t, err := LoadPlanes(f.Planes)
		if err != nil {
			return err
		}
		planes = t
	}

	Progression = progression
	Camera = camera
	Scenery = scenery
	Planes = planes
	return nil
}

func validateTuning(p ProgressionConfig, c CameraConfig) error {
	if p.ZoomDurationMs < 0 {
		return fmt.Errorf("progression.zoomDurationMs must be >= 0, got %v", p.ZoomDurationMs)
	}
	if _, ok := EasingFunc(p.Easing); !ok {
		return fmt.Errorf("progression.easing: unknown curve %q", p.Easing)
	}
	if c.Idle.Zoom <= 0 || c.Target.Zoom <= 0 {
		return fmt.Errorf("camera zoom must be > 0 (idle %v, target %v)", c.Idle.Zoom, c.Target.Zoom)
	}
	return nil
}
