// Package config provides YAML-based configuration loading for the race game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/coin-race/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// RaceConfig contains everything the host may tune.
type RaceConfig struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Timing    TimingConfig    `yaml:"timing"`
	Input     InputConfig     `yaml:"input"`
	Placement PlacementConfig `yaml:"placement"`
	Labels    LabelsConfig    `yaml:"labels"`
}

// CanvasConfig defines the world size in canvas units.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingConfig defines the tick cadence.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// InputConfig defines how terminal key presses become held keys.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
}

// PlacementConfig bounds the item placement search.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// LabelsConfig holds the display names of the two characters.
type LabelsConfig struct {
	Neuro string `yaml:"neuro"`
	Evil  string `yaml:"evil"`
}

// TickInterval returns the configured tick period.
func (c RaceConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// HoldWindow returns how long a key stays held after its last press.
func (c RaceConfig) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldMS) * time.Millisecond
}

// Runtime builds the runtime config handed to games.
func (c RaceConfig) Runtime(seed int64) core.RuntimeConfig {
	labels := map[string]string{"neuro": c.Labels.Neuro, "evil": c.Labels.Evil}
	return core.RuntimeConfig{
		CanvasW:              c.Canvas.Width,
		CanvasH:              c.Canvas.Height,
		TickInterval:         c.TickInterval(),
		Seed:                 seed,
		MaxPlacementAttempts: c.Placement.MaxAttempts,
		Labels:               labels,
	}
}

// Validate reports every problem in the config at once.
func (c RaceConfig) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Input.HoldMS <= 0 {
		errs = append(errs, fmt.Errorf("input.hold_ms must be positive, got %d", c.Input.HoldMS))
	} else if c.Timing.TickMS > 0 && c.Input.HoldMS < c.Timing.TickMS {
		// A shorter window can expire a press before any tick reads it.
		errs = append(errs, fmt.Errorf("input.hold_ms (%d) must be at least timing.tick_ms (%d)", c.Input.HoldMS, c.Timing.TickMS))
	}
	if c.Placement.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("placement.max_attempts must not be negative, got %d", c.Placement.MaxAttempts))
	}
	if c.Labels.Neuro == "" || c.Labels.Evil == "" {
		errs = append(errs, errors.New("labels.neuro and labels.evil are required"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
