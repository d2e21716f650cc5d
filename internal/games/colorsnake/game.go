package colorsnake

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/vovakirdan/colorsnake/internal/core"
)

// Game is one generation: runner, balls, target, score and outcome.
// It is not safe for concurrent use; Controller serializes access.
type Game struct {
	settings   Settings
	generation string
	rng        *rand.Rand
	input      *core.InputBuffer
	spawner    *Spawner

	tick        uint64
	runner      []core.Cell // Head at index 0
	heading     core.Heading
	consumables []Consumable
	target      ColorTag
	score       int
	outcome     Outcome
	reason      LossReason

	degradedSpawns int
}

// NewGame builds a fresh generation. input is reset to the initial heading.
func NewGame(settings Settings, generation string, rng *rand.Rand, input *core.InputBuffer) *Game {
	g := &Game{
		settings:   settings,
		generation: generation,
		rng:        rng,
		input:      input,
		spawner:    NewSpawner(settings.Grid, rng, settings.SpawnAttempts, settings.Palette),
	}
	g.reset()
	return g
}

// reset lays out the initial runner, target and balls.
func (g *Game) reset() {
	g.tick = 0
	g.score = 0
	g.outcome = OutcomePlaying
	g.reason = LossNone
	g.degradedSpawns = 0

	g.runner = slices.Clone(g.settings.InitialRunner)
	g.heading = g.settings.InitialHeading
	g.input.Reset(g.heading)

	g.target = g.spawner.RandomColor()
	g.consumables, g.degradedSpawns = g.spawner.Seed(g.runner, g.target, g.settings.Consumables)
}

// Generation returns the generation identifier.
func (g *Game) Generation() string {
	return g.generation
}

// Outcome returns the current outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Target returns the current target color.
func (g *Game) Target() ColorTag {
	return g.target
}

// Announce returns the event that introduces the current target.
func (g *Game) Announce() Event {
	return g.event(EventTarget, g.target)
}

// Tick advances the simulation by one step and returns the notifications it
// produced. Ticks after a terminal outcome change nothing and return nil.
func (g *Game) Tick() []Event {
	if g.outcome.Terminal() {
		return nil
	}
	g.tick++

	g.heading = g.input.ConsumePendingHeading()
	newHead := g.settings.Grid.WrapMove(g.runner[0], g.heading)

	// Checked against the whole body before the tail moves.
	if slices.Contains(g.runner, newHead) {
		return g.finish(OutcomeLost, LossSelfCollision)
	}

	g.runner = slices.Insert(g.runner, 0, newHead)

	var events []Event
	idx := g.consumableAt(newHead)
	switch {
	case idx < 0:
		g.runner = g.runner[:len(g.runner)-1]

	case g.consumables[idx].Color == g.target:
		eaten := g.consumables[idx].Color
		g.score++
		if g.score >= g.settings.WinScore {
			return g.finish(OutcomeWon, LossNone)
		}
		g.target = g.spawner.RandomColor()
		g.replaceConsumable(idx)
		events = append(events, g.event(EventCorrect, eaten), g.event(EventTarget, g.target))

	default:
		eaten := g.consumables[idx].Color
		// Tail plus one more: net length -1.
		g.runner = g.runner[:max(0, len(g.runner)-2)]
		g.score = max(0, g.score-1)
		if len(g.runner) == 0 {
			return g.finish(OutcomeLost, LossVanished)
		}
		g.replaceConsumable(idx)
		events = append(events, g.event(EventIncorrect, eaten))
	}

	g.spawner.RepairTarget(g.consumables, g.target)
	return events
}

// consumableAt returns the index of the ball on c, or -1.
func (g *Game) consumableAt(c core.Cell) int {
	return slices.IndexFunc(g.consumables, func(it Consumable) bool {
		return it.Cell == c
	})
}

// replaceConsumable removes the ball at idx and spawns a new random one.
func (g *Game) replaceConsumable(idx int) {
	g.consumables = slices.Delete(g.consumables, idx, idx+1)

	occupied := make([]core.Cell, 0, len(g.runner)+len(g.consumables))
	occupied = append(occupied, g.runner...)
	for _, it := range g.consumables {
		occupied = append(occupied, it.Cell)
	}

	item, degraded := g.spawner.PlaceConsumable(occupied)
	if degraded {
		g.degradedSpawns++
	}
	g.consumables = append(g.consumables, item)
}

// finish moves the game into a terminal outcome.
func (g *Game) finish(outcome Outcome, reason LossReason) []Event {
	g.outcome = outcome
	g.reason = reason

	kind := EventLost
	if outcome == OutcomeWon {
		kind = EventWon
	}
	e := g.event(kind, g.target)
	e.Reason = reason
	return []Event{e}
}

func (g *Game) event(kind EventKind, color ColorTag) Event {
	return Event{
		Kind:       kind,
		Generation: g.generation,
		Tick:       g.tick,
		Color:      color,
		Score:      g.score,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Generation: %s, Tick: %d, Score: %d/%d\n", g.generation, g.tick, g.score, g.settings.WinScore))
	b.WriteString(fmt.Sprintf("Runner len: %d, Heading: %s, Target: %s\n", len(g.runner), g.heading, g.target))
	if len(g.runner) > 0 {
		b.WriteString(fmt.Sprintf("Head: %s\n", g.runner[0]))
	}
	for _, it := range g.consumables {
		b.WriteString(fmt.Sprintf("Ball %s at %s\n", it.Color, it.Cell))
	}
	b.WriteString(fmt.Sprintf("Outcome: %s %s\n", g.outcome, g.reason))
	return b.String()
}
