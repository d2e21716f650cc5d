package colorsnake

import "fmt"

// EventKind classifies a notification produced by a tick.
type EventKind int

const (
	EventTarget    EventKind = iota // A new target color was chosen
	EventCorrect                    // The runner ate a ball of the target color
	EventIncorrect                  // The runner ate a ball of another color
	EventWon
	EventLost
)

func (k EventKind) String() string {
	switch k {
	case EventTarget:
		return "target"
	case EventCorrect:
		return "correct"
	case EventIncorrect:
		return "incorrect"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event is a discrete notification for the narration and audio sinks.
type Event struct {
	Kind       EventKind
	Generation string
	Tick       uint64
	Color      ColorTag // Target color for EventTarget, eaten color for hits
	Score      int
	Reason     LossReason
}

// Message returns the narration line for the event.
func (e Event) Message() string {
	switch e.Kind {
	case EventTarget:
		return fmt.Sprintf("Eat the %s ball!", e.Color)
	case EventCorrect:
		return "Yum! That's the right color."
	case EventIncorrect:
		return fmt.Sprintf("Oops, that was %s.", e.Color)
	case EventWon:
		return "You win! Great job!"
	case EventLost:
		if e.Reason == LossVanished {
			return "Oh no! The snake is gone."
		}
		return "Oops! You bumped into yourself."
	default:
		return ""
	}
}

// IsCue reports whether the event has a sound cue.
func (e Event) IsCue() bool {
	return e.Kind == EventCorrect || e.Kind == EventIncorrect
}

// RenderSink receives a snapshot after every committed tick.
type RenderSink interface {
	Render(Snapshot)
}

// NarrationSink announces target changes, hit results and outcomes.
type NarrationSink interface {
	Narrate(Event)
}

// AudioCueSink plays correct/incorrect sounds.
type AudioCueSink interface {
	Cue(Event)
}

// NavigationTrigger moves the player on after a finished game
// (e.g. "play next activity"). The engine never calls it itself.
type NavigationTrigger interface {
	Navigate(last Snapshot)
}

// RenderFunc adapts a function to RenderSink.
type RenderFunc func(Snapshot)

func (f RenderFunc) Render(s Snapshot) { f(s) }

// NarrateFunc adapts a function to NarrationSink.
type NarrateFunc func(Event)

func (f NarrateFunc) Narrate(e Event) { f(e) }

// CueFunc adapts a function to AudioCueSink.
type CueFunc func(Event)

func (f CueFunc) Cue(e Event) { f(e) }

// NavigateFunc adapts a function to NavigationTrigger.
type NavigateFunc func(Snapshot)

func (f NavigateFunc) Navigate(s Snapshot) { f(s) }

// MultiNarrator fans narration out to several sinks in order.
type MultiNarrator []NarrationSink

// Narrate forwards e to every non-nil sink.
func (m MultiNarrator) Narrate(e Event) {
	for _, n := range m {
		if n != nil {
			n.Narrate(e)
		}
	}
}
