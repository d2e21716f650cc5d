package core

import "sync"

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - head north
	ActionDown           // S, J, Down arrow - head south
	ActionLeft           // A, H, Left arrow - head west
	ActionRight          // D, L, Right arrow - head east
	ActionRestart        // R key - start a new generation
	ActionNext           // N, Enter - play next activity after a win
	ActionBack           // B, Escape - leave the game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionNext:
		return "Next"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Heading maps a directional action to a heading.
// The second return value is false for non-directional actions.
func (a Action) Heading() (Heading, bool) {
	switch a {
	case ActionUp:
		return North, true
	case ActionDown:
		return South, true
	case ActionLeft:
		return West, true
	case ActionRight:
		return East, true
	}
	return East, false
}

// InputBuffer is a single-slot mailbox between the gesture source and the
// tick loop. Writers and the once-per-tick reader may run on different
// goroutines.
type InputBuffer struct {
	mu         sync.Mutex
	applied    Heading // heading used by the most recent completed tick
	pending    Heading
	hasPending bool
}

// NewInputBuffer creates a buffer whose applied heading is initial.
func NewInputBuffer(initial Heading) *InputBuffer {
	return &InputBuffer{applied: initial}
}

// Reset discards any pending heading and sets the applied heading.
func (b *InputBuffer) Reset(initial Heading) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.applied = initial
	b.hasPending = false
}

// SetPendingHeading stores candidate unless it reverses the applied heading.
// A later call before the next tick overwrites an earlier one.
// Returns false when the candidate was rejected.
func (b *InputBuffer) SetPendingHeading(candidate Heading) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Compare against the applied heading, not the previous pending value.
	if candidate.IsOpposite(b.applied) {
		return false
	}
	b.pending = candidate
	b.hasPending = true
	return true
}

// ConsumePendingHeading returns the heading to apply for this tick and
// records it as applied. With nothing buffered the applied heading is kept.
func (b *InputBuffer) ConsumePendingHeading() Heading {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.hasPending {
		b.applied = b.pending
		b.hasPending = false
	}
	return b.applied
}

// Applied returns the heading used by the most recent tick.
func (b *InputBuffer) Applied() Heading {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.applied
}

// DefaultDragThreshold is the dead zone, in input units, a drag must leave
// before it resolves to a heading.
const DefaultDragThreshold = 8

// GestureResolver turns continuous drag vectors into headings on the
// dominant axis.
type GestureResolver struct {
	Threshold int
}

// Resolve returns the heading for a drag of (dx, dy). Screen coordinates are
// assumed: positive dy points south. The second return value is false while
// the drag is still inside the dead zone.
func (r GestureResolver) Resolve(dx, dy int) (Heading, bool) {
	absX, absY := Abs(dx), Abs(dy)
	if absX <= r.Threshold && absY <= r.Threshold {
		return East, false
	}
	if absX > absY {
		if dx > 0 {
			return East, true
		}
		return West, true
	}
	if dy > 0 {
		return South, true
	}
	return North, true
}
