package colorsnake

import (
	"slices"

	"github.com/vovakirdan/colorsnake/internal/core"
)

// Snapshot is an immutable copy of a generation's state, handed to render
// sinks and used by tests for determinism checks.
type Snapshot struct {
	Generation     string
	Tick           uint64
	Grid           core.Grid
	Runner         []core.Cell // Head first
	Heading        core.Heading
	Consumables    []Consumable
	Target         ColorTag
	Score          int
	WinScore       int
	Outcome        Outcome
	Reason         LossReason
	DegradedSpawns int
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Generation:     g.generation,
		Tick:           g.tick,
		Grid:           g.settings.Grid,
		Runner:         slices.Clone(g.runner),
		Heading:        g.heading,
		Consumables:    slices.Clone(g.consumables),
		Target:         g.target,
		Score:          g.score,
		WinScore:       g.settings.WinScore,
		Outcome:        g.outcome,
		Reason:         g.reason,
		DegradedSpawns: g.degradedSpawns,
	}
}

// Head returns the runner's head cell. ok is false for an empty runner.
func (s Snapshot) Head() (core.Cell, bool) {
	if len(s.Runner) == 0 {
		return core.Cell{}, false
	}
	return s.Runner[0], true
}

// HasTarget reports whether some ball carries the target color.
func (s Snapshot) HasTarget() bool {
	return slices.ContainsFunc(s.Consumables, func(it Consumable) bool {
		return it.Color == s.Target
	})
}
