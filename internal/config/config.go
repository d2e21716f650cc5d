// Package config provides YAML-based configuration loading and difficulty
// presets for the colorsnake engine.
package config

import (
	"errors"
	"fmt"
)

// ColorSnakeConfig contains all tunables for one colorsnake game.
type ColorSnakeConfig struct {
	Grid    GridConfig   `yaml:"grid"`
	Timing  TimingConfig `yaml:"timing"`
	Rules   RulesConfig  `yaml:"rules"`
	Runner  RunnerConfig `yaml:"runner"`
	Palette []string     `yaml:"palette"`
}

// GridConfig defines the toroidal board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// RulesConfig defines scoring and spawning parameters.
type RulesConfig struct {
	Consumables   int `yaml:"consumables"`    // Items on the board at all times
	WinScore      int `yaml:"win_score"`      // Score that ends the game as won
	SpawnAttempts int `yaml:"spawn_attempts"` // Random probes before placing on an occupied cell
}

// RunnerConfig defines the runner's body and heading at generation start.
type RunnerConfig struct {
	Body    []CellConfig `yaml:"body"` // Head first
	Heading string       `yaml:"heading"`
}

// CellConfig is a grid coordinate in config files.
type CellConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Validate reports every problem with the config joined into one error.
func (c ColorSnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		errs = append(errs, fmt.Errorf("grid must be at least 2x2, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Rules.Consumables <= 0 {
		errs = append(errs, fmt.Errorf("rules.consumables must be positive, got %d", c.Rules.Consumables))
	}
	if c.Rules.WinScore <= 0 {
		errs = append(errs, fmt.Errorf("rules.win_score must be positive, got %d", c.Rules.WinScore))
	}
	if c.Rules.SpawnAttempts <= 0 {
		errs = append(errs, fmt.Errorf("rules.spawn_attempts must be positive, got %d", c.Rules.SpawnAttempts))
	}
	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette must not be empty"))
	}
	seenColor := make(map[string]bool, len(c.Palette))
	for _, name := range c.Palette {
		if name == "" {
			errs = append(errs, errors.New("palette contains an empty color"))
		}
		if seenColor[name] {
			errs = append(errs, fmt.Errorf("palette color %q listed twice", name))
		}
		seenColor[name] = true
	}

	if len(c.Runner.Body) == 0 {
		errs = append(errs, errors.New("runner.body must not be empty"))
	}
	seenCell := make(map[CellConfig]bool, len(c.Runner.Body))
	for _, cell := range c.Runner.Body {
		if cell.X < 0 || cell.X >= c.Grid.Width || cell.Y < 0 || cell.Y >= c.Grid.Height {
			errs = append(errs, fmt.Errorf("runner cell (%d,%d) is outside the grid", cell.X, cell.Y))
		}
		if seenCell[cell] {
			errs = append(errs, fmt.Errorf("runner cell (%d,%d) listed twice", cell.X, cell.Y))
		}
		seenCell[cell] = true
	}
	if free := c.Grid.Width*c.Grid.Height - len(c.Runner.Body); c.Rules.Consumables > free {
		errs = append(errs, fmt.Errorf("rules.consumables (%d) exceeds free cells (%d)", c.Rules.Consumables, free))
	}

	switch c.Runner.Heading {
	case "north", "south", "east", "west":
	default:
		errs = append(errs, fmt.Errorf("runner.heading must be north, south, east or west, got %q", c.Runner.Heading))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid colorsnake config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// TickMSForPreset returns the tick period for a difficulty preset.
// Unknown presets keep the configured value (returned as 0).
func TickMSForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 200
	case DifficultyNormal:
		return 150
	case DifficultyHard:
		return 100
	default:
		return 0
	}
}

// ApplyColorSnakePreset modifies the config based on a difficulty preset.
func ApplyColorSnakePreset(cfg *ColorSnakeConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	ms := TickMSForPreset(preset)
	if ms == 0 {
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
	cfg.Timing.TickMS = ms

	// Easy games also end sooner.
	if preset == DifficultyEasy && cfg.Rules.WinScore > 5 {
		cfg.Rules.WinScore = 5
	}
	return nil
}
