// Package colorsnake implements the color-collection runner: a snake that
// travels a wraparound grid eating balls of the announced target color.
// The package has no terminal dependencies; the platform layer supplies
// render, narration and audio sinks.
package colorsnake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/colorsnake/internal/config"
	"github.com/vovakirdan/colorsnake/internal/core"
)

// ColorTag names a palette color.
type ColorTag string

const (
	ColorRed    ColorTag = "red"
	ColorBlue   ColorTag = "blue"
	ColorGreen  ColorTag = "green"
	ColorYellow ColorTag = "yellow"
	ColorPurple ColorTag = "purple"
	ColorOrange ColorTag = "orange"
)

// DefaultPalette is the palette used by the bundled configuration.
var DefaultPalette = []ColorTag{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorOrange}

// ScreenColor maps the tag to a screen color. Unknown tags render white.
func (c ColorTag) ScreenColor() core.Color {
	switch c {
	case ColorRed:
		return core.ColorRed
	case ColorBlue:
		return core.ColorBlue
	case ColorGreen:
		return core.ColorGreen
	case ColorYellow:
		return core.ColorYellow
	case ColorPurple:
		return core.ColorPurple
	case ColorOrange:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// Consumable is a colored ball sitting on a grid cell.
type Consumable struct {
	Cell  core.Cell
	Color ColorTag
}

// Outcome is the state of a generation.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the generation.
func (o Outcome) Terminal() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// LossReason tells why a generation was lost.
type LossReason string

const (
	LossNone          LossReason = ""
	LossSelfCollision LossReason = "self_collision"
	LossVanished      LossReason = "vanished"
)

// Settings are the tuned constants for one game.
type Settings struct {
	Grid           core.Grid
	TickPeriod     time.Duration
	Consumables    int // K: balls on the board at all times
	WinScore       int
	SpawnAttempts  int
	Palette        []ColorTag
	InitialRunner  []core.Cell // Head first
	InitialHeading core.Heading
}

// DefaultSettings returns the settings of the bundled configuration.
func DefaultSettings() Settings {
	s, err := SettingsFromConfig(config.DefaultColorSnakeConfig())
	if err != nil {
		panic(fmt.Sprintf("colorsnake: default config invalid: %v", err))
	}
	return s
}

// SettingsFromConfig validates cfg and converts it to engine settings.
func SettingsFromConfig(cfg config.ColorSnakeConfig) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	heading, err := core.ParseHeading(cfg.Runner.Heading)
	if err != nil {
		return Settings{}, err
	}

	palette := make([]ColorTag, len(cfg.Palette))
	for i, name := range cfg.Palette {
		palette[i] = ColorTag(name)
	}
	body := make([]core.Cell, len(cfg.Runner.Body))
	for i, c := range cfg.Runner.Body {
		body[i] = core.Cell{X: c.X, Y: c.Y}
	}

	return Settings{
		Grid:           core.NewGrid(cfg.Grid.Width, cfg.Grid.Height),
		TickPeriod:     time.Duration(cfg.Timing.TickMS) * time.Millisecond,
		Consumables:    cfg.Rules.Consumables,
		WinScore:       cfg.Rules.WinScore,
		SpawnAttempts:  cfg.Rules.SpawnAttempts,
		Palette:        palette,
		InitialRunner:  body,
		InitialHeading: heading,
	}, nil
}
