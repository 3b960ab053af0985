package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the on-disk shape of a -config file. Unset fields keep their defaults.
type Overrides struct {
	ZoomSpeed               *float64 `yaml:"zoom_speed"`
	MinZoom                 *float64 `yaml:"min_zoom"`
	MaxZoom                 *float64 `yaml:"max_zoom"`
	ScrollThreshold         *float64 `yaml:"scroll_threshold"`
	DefaultOrthographicSize *float64 `yaml:"default_orthographic_size"`
	InputMode               *string  `yaml:"input_mode"`
}

// LoadOverrides reads a YAML overrides file and applies it to the global config
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides parses YAML overrides and applies them to the global config
func ApplyOverrides(data []byte) error {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("config: unmarshal overrides: %w", err)
	}

	camera := Camera
	if o.ZoomSpeed != nil {
		camera.ZoomSpeed = *o.ZoomSpeed
	}
	if o.MinZoom != nil {
		camera.MinZoom = *o.MinZoom
	}
	if o.MaxZoom != nil {
		camera.MaxZoom = *o.MaxZoom
	}
	if o.ScrollThreshold != nil {
		camera.ScrollThreshold = *o.ScrollThreshold
	}
	if o.DefaultOrthographicSize != nil {
		camera.DefaultOrthographicSize = *o.DefaultOrthographicSize
	}
	if camera.MinZoom > camera.MaxZoom {
		return fmt.Errorf("config: min_zoom %v is greater than max_zoom %v", camera.MinZoom, camera.MaxZoom)
	}

	mode := Input.Mode
	if o.InputMode != nil {
		m, err := ParseInputSourceMode(*o.InputMode)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		mode = m
	}

	Camera = camera
	Input.Mode = mode
	return nil
}
