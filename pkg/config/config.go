// Package config loads the celebration settings file.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/confetti/pkg/confetti"
)

// CelebrationConfig tunes the celebration animation. All fields have
// working defaults; a missing or partial file is not an error.
type CelebrationConfig struct {
	DurationMs     int     `yaml:"durationMs"`     // total animation length
	TickIntervalMs int     `yaml:"tickIntervalMs"` // scheduler period
	MaxParticles   float64 `yaml:"maxParticles"`   // budget at full remaining time
	Effect         string  `yaml:"effect"`         // effect pack name
	PackURL        string  `yaml:"packURL"`        // override for the pack base URL
}

// Default returns the stock celebration settings.
func Default() *CelebrationConfig {
	return &CelebrationConfig{
		DurationMs:     int(confetti.DefaultDuration / time.Millisecond),
		TickIntervalMs: int(confetti.DefaultTickInterval / time.Millisecond),
		MaxParticles:   confetti.DefaultMaxParticles,
		Effect:         "celebration",
	}
}

// Load reads settings from a YAML file. A missing file yields the
// defaults without error; a malformed file logs a warning and yields
// the defaults too.
func Load(path string) *CelebrationConfig {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[Config] Warning: failed to read %s: %v (using defaults)", path, err)
		}
		return cfg
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Printf("[Config] Warning: failed to parse %s: %v (using defaults)", path, err)
		return Default()
	}

	cfg.normalize()
	return cfg
}

// normalize replaces out-of-range values with their defaults.
func (c *CelebrationConfig) normalize() {
	def := Default()
	if c.DurationMs <= 0 {
		c.DurationMs = def.DurationMs
	}
	if c.TickIntervalMs <= 0 {
		c.TickIntervalMs = def.TickIntervalMs
	}
	if c.MaxParticles <= 0 {
		c.MaxParticles = def.MaxParticles
	}
	if c.Effect == "" {
		c.Effect = def.Effect
	}
}

// SessionConfig converts the settings into a scheduler configuration.
func (c *CelebrationConfig) SessionConfig() confetti.SessionConfig {
	sc := confetti.DefaultSessionConfig()
	sc.Duration = time.Duration(c.DurationMs) * time.Millisecond
	sc.TickInterval = time.Duration(c.TickIntervalMs) * time.Millisecond
	sc.MaxParticles = c.MaxParticles
	return sc
}

// Save writes the settings to a YAML file.
func (c *CelebrationConfig) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
