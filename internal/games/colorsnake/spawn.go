package colorsnake

import (
	"math/rand"

	"github.com/vovakirdan/colorsnake/internal/core"
)

// Spawner places consumables on the grid and keeps the target color
// reachable.
type Spawner struct {
	grid     core.Grid
	rng      *rand.Rand
	attempts int
	palette  []ColorTag
}

// NewSpawner creates a spawner drawing cells and colors from rng.
func NewSpawner(grid core.Grid, rng *rand.Rand, attempts int, palette []ColorTag) *Spawner {
	if attempts <= 0 {
		attempts = 1
	}
	return &Spawner{grid: grid, rng: rng, attempts: attempts, palette: palette}
}

// RandomColor picks a palette color uniformly.
func (s *Spawner) RandomColor() ColorTag {
	return s.palette[s.rng.Intn(len(s.palette))]
}

// PlaceConsumable picks a random free cell and tags it with a random color.
// The second return value is true when every probe hit an occupied cell and
// the last probe was used anyway.
func (s *Spawner) PlaceConsumable(occupied []core.Cell) (Consumable, bool) {
	cell, degraded := s.placeCell(occupied)
	return Consumable{Cell: cell, Color: s.RandomColor()}, degraded
}

// placeCell probes up to s.attempts random cells. On a nearly full grid it
// gives up and returns the last probe even though it is occupied, so a tick
// never stalls looking for space.
func (s *Spawner) placeCell(occupied []core.Cell) (core.Cell, bool) {
	taken := make(map[core.Cell]bool, len(occupied))
	for _, c := range occupied {
		taken[c] = true
	}

	var c core.Cell
	for range s.attempts {
		c = core.Cell{X: s.rng.Intn(s.grid.W), Y: s.rng.Intn(s.grid.H)}
		if !taken[c] {
			return c, false
		}
	}
	return c, true
}

// Seed places k consumables around runner. The first one carries target so
// the board starts solvable. Returns the number of degraded placements.
func (s *Spawner) Seed(runner []core.Cell, target ColorTag, k int) ([]Consumable, int) {
	items := make([]Consumable, 0, k)
	occupied := append([]core.Cell(nil), runner...)
	degraded := 0

	for i := range k {
		item, bad := s.PlaceConsumable(occupied)
		if i == 0 {
			item.Color = target
		}
		if bad {
			degraded++
		}
		items = append(items, item)
		occupied = append(occupied, item.Cell)
	}
	return items, degraded
}

// RepairTarget recolors one randomly chosen consumable to target when none
// carries it. Returns true if a repair was made.
func (s *Spawner) RepairTarget(items []Consumable, target ColorTag) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if it.Color == target {
			return false
		}
	}
	items[s.rng.Intn(len(items))].Color = target
	return true
}
