package config

import (
	_ "embed"
)

//go:embed defaults/colorsnake.yaml
var defaultColorSnakeYAML []byte

// DefaultColorSnakeConfig returns the hardcoded colorsnake configuration.
func DefaultColorSnakeConfig() ColorSnakeConfig {
	return ColorSnakeConfig{
		Grid: GridConfig{
			Width:  16,
			Height: 20,
		},
		Timing: TimingConfig{
			TickMS: 150,
		},
		Rules: RulesConfig{
			Consumables:   6,
			WinScore:      10,
			SpawnAttempts: 200,
		},
		Runner: RunnerConfig{
			Heading: "east",
			Body: []CellConfig{
				{X: 3, Y: 3},
				{X: 2, Y: 3},
				{X: 1, Y: 3},
			},
		},
		Palette: []string{"red", "blue", "green", "yellow", "purple", "orange"},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultColorSnakeYAML
}
