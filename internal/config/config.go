// Package config provides YAML-based game configuration loading and
// difficulty presets for chroma.
package config

import (
	"errors"
	"fmt"
)

// ChromaConfig contains all configuration for the game.
type ChromaConfig struct {
	Timer   TimerConfig   `yaml:"timer"`
	Display DisplayConfig `yaml:"display"`
}

// TimerConfig defines the countdown rules, in seconds.
type TimerConfig struct {
	Initial     float64 `yaml:"initial"`
	HitBonus    float64 `yaml:"hit_bonus"`
	MissPenalty float64 `yaml:"miss_penalty"`
	Max         float64 `yaml:"max"`
}

// DisplayConfig defines how the grid is laid out in the terminal.
type DisplayConfig struct {
	TickRate   int `yaml:"tick_rate"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	Gap        int `yaml:"gap"`
}

// Validate reports every invalid setting in one error.
func (c ChromaConfig) Validate() error {
	var errs []error
	t := c.Timer
	if t.Initial <= 0 {
		errs = append(errs, fmt.Errorf("timer.initial must be positive, got %v", t.Initial))
	}
	if t.HitBonus < 0 {
		errs = append(errs, fmt.Errorf("timer.hit_bonus must not be negative, got %v", t.HitBonus))
	}
	if t.MissPenalty < 0 {
		errs = append(errs, fmt.Errorf("timer.miss_penalty must not be negative, got %v", t.MissPenalty))
	}
	if t.Max < t.Initial {
		errs = append(errs, fmt.Errorf("timer.max (%v) must be at least timer.initial (%v)", t.Max, t.Initial))
	}

	d := c.Display
	if d.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("display.tick_rate must be positive, got %d", d.TickRate))
	}
	if d.CellWidth <= 0 || d.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("display cell size must be positive, got %dx%d", d.CellWidth, d.CellHeight))
	}
	if d.Gap < 0 {
		errs = append(errs, fmt.Errorf("display.gap must not be negative, got %d", d.Gap))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
