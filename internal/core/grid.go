// Package core provides fundamental types and utilities for the colorsnake
// engine. It contains no external dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package core

import "fmt"

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Heading is a unit direction of travel on the grid.
type Heading int

const (
	East Heading = iota
	South
	West
	North
)

// Delta returns the (dx, dy) unit vector for the heading. North decreases y.
func (h Heading) Delta() (int, int) {
	switch h {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the heading pointing the other way.
func (h Heading) Opposite() Heading {
	switch h {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	default:
		return West
	}
}

// IsOpposite reports whether h and other point in exactly opposite directions.
func (h Heading) IsOpposite(other Heading) bool {
	return h.Opposite() == other
}

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	default:
		return "unknown"
	}
}

// ParseHeading converts a heading name (as used in config files) to a Heading.
func ParseHeading(s string) (Heading, error) {
	switch s {
	case "north", "up", "n":
		return North, nil
	case "south", "down", "s":
		return South, nil
	case "west", "left", "w":
		return West, nil
	case "east", "right", "e":
		return East, nil
	}
	return East, fmt.Errorf("core: unknown heading %q", s)
}

// Grid is a fixed toroidal W x H coordinate space. Moving off one edge
// re-enters on the opposite edge.
type Grid struct {
	W, H int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(w, h int) Grid {
	return Grid{W: w, H: h}
}

// Wrap folds coord into [0, limit).
func Wrap(coord, limit int) int {
	return ((coord % limit) + limit) % limit
}

// WrapMove applies the heading's delta to c and wraps both axes independently.
// Always returns an in-bounds cell.
func (g Grid) WrapMove(c Cell, h Heading) Cell {
	dx, dy := h.Delta()
	return Cell{
		X: Wrap(c.X+dx, g.W),
		Y: Wrap(c.Y+dy, g.H),
	}
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Area returns the number of cells in the grid.
func (g Grid) Area() int {
	return g.W * g.H
}

// Rect represents an axis-aligned box on a screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
