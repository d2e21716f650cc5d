// Package tui provides the Bubble Tea front end for Color Snake.
// It turns controller output into messages, maps keys and mouse drags to
// headings, and serves the same model over SSH.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorsnake/internal/games/colorsnake"
)

const bridgeQueueSize = 32

// SnapshotMsg carries the latest committed game state.
type SnapshotMsg colorsnake.Snapshot

// NarrationMsg carries a narration line.
type NarrationMsg colorsnake.Event

// CueMsg asks the UI to play (show) a sound cue.
type CueMsg colorsnake.Event

// Bridge adapts controller sinks to Bubble Tea messages. Snapshots are
// coalesced so the UI always draws the newest state; narration and cues are
// queued and dropped when the UI falls behind. All sink methods are
// non-blocking.
type Bridge struct {
	mu     sync.Mutex
	latest colorsnake.Snapshot
	dirty  chan struct{}
	events chan tea.Msg

	closeOnce sync.Once
	done      chan struct{}
}

// NewBridge creates an open bridge.
func NewBridge() *Bridge {
	return &Bridge{
		dirty:  make(chan struct{}, 1),
		events: make(chan tea.Msg, bridgeQueueSize),
		done:   make(chan struct{}),
	}
}

// Render implements colorsnake.RenderSink.
func (b *Bridge) Render(s colorsnake.Snapshot) {
	b.mu.Lock()
	b.latest = s
	b.mu.Unlock()

	select {
	case b.dirty <- struct{}{}:
	default:
	}
}

// Narrate implements colorsnake.NarrationSink.
func (b *Bridge) Narrate(e colorsnake.Event) {
	b.push(NarrationMsg(e))
}

// Cue implements colorsnake.AudioCueSink.
func (b *Bridge) Cue(e colorsnake.Event) {
	b.push(CueMsg(e))
}

func (b *Bridge) push(msg tea.Msg) {
	select {
	case b.events <- msg:
	default:
	}
}

// Wait returns a command that blocks until the next message is available.
// It returns nil once the bridge is closed.
func (b *Bridge) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.done:
			return nil
		case msg := <-b.events:
			return msg
		case <-b.dirty:
			b.mu.Lock()
			defer b.mu.Unlock()
			return SnapshotMsg(b.latest)
		}
	}
}

// Close releases any pending Wait.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

var (
	_ colorsnake.RenderSink    = (*Bridge)(nil)
	_ colorsnake.NarrationSink = (*Bridge)(nil)
	_ colorsnake.AudioCueSink  = (*Bridge)(nil)
)
