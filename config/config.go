// Package config loads optional Veil preferences from a YAML file.
// Missing files and missing fields degrade to defaults; only values that
// fail validation are reported as errors.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full Veil configuration
type Config struct {
	LogLevel string        `yaml:"logLevel" validate:"omitempty,oneof=trace debug info warn error"`
	Overlay  OverlayConfig `yaml:"overlay"`
	Toast    ToastConfig   `yaml:"toast"`
}

// OverlayConfig contains overlay lifecycle settings
type OverlayConfig struct {
	AnimationMs int `yaml:"animationMs" validate:"gte=0,lte=5000"`
}

// ToastConfig contains toast notification settings
type ToastConfig struct {
	DurationMs int `yaml:"durationMs" validate:"gte=0,lte=600000"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Overlay:  OverlayConfig{AnimationMs: 200},
		Toast:    ToastConfig{DurationMs: 4000},
	}
}

// Load reads the configuration at path, filling unset fields from
// Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks the configuration against its declared constraints.
func (c Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}
