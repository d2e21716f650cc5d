package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorsnake/internal/games/colorsnake"
)

func receive(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for bridge message")
		return nil
	}
}

func TestBridgeCoalescesSnapshots(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	for i := 1; i <= 5; i++ {
		b.Render(colorsnake.Snapshot{Tick: uint64(i)})
	}

	msg := receive(t, b.Wait())
	snap, ok := msg.(SnapshotMsg)
	if !ok {
		t.Fatalf("Expected SnapshotMsg, got %T", msg)
	}
	if snap.Tick != 5 {
		t.Errorf("Tick = %d, expected the latest (5)", snap.Tick)
	}
}

func TestBridgeEvents(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	b.Narrate(colorsnake.Event{Kind: colorsnake.EventTarget, Color: colorsnake.ColorRed})
	b.Cue(colorsnake.Event{Kind: colorsnake.EventCorrect})

	first := receive(t, b.Wait())
	if n, ok := first.(NarrationMsg); !ok || n.Color != colorsnake.ColorRed {
		t.Errorf("First message = %#v, expected red narration", first)
	}
	second := receive(t, b.Wait())
	if c, ok := second.(CueMsg); !ok || c.Kind != colorsnake.EventCorrect {
		t.Errorf("Second message = %#v, expected correct cue", second)
	}
}

func TestBridgeNeverBlocks(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < bridgeQueueSize*4; i++ {
			b.Narrate(colorsnake.Event{})
			b.Cue(colorsnake.Event{})
			b.Render(colorsnake.Snapshot{})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sink calls blocked with no reader")
	}
}

func TestBridgeCloseReleasesWait(t *testing.T) {
	b := NewBridge()
	cmd := b.Wait()
	b.Close()
	b.Close()

	if msg := receive(t, cmd); msg != nil {
		t.Errorf("Expected nil after Close, got %#v", msg)
	}
}
