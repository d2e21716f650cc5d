package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorsnake/internal/core"
	"github.com/vovakirdan/colorsnake/internal/games/colorsnake"
)

// slowSettings keeps the scheduler from ticking during a test.
func slowSettings() colorsnake.Settings {
	s := colorsnake.DefaultSettings()
	s.TickPeriod = time.Hour
	return s
}

func startModel(t *testing.T, opts SessionOptions) Model {
	t.Helper()
	m := NewModel(context.Background(), opts)
	cmd := m.Init()
	t.Cleanup(m.shutdown)

	// Drain until the first snapshot arrives.
	for i := 0; i < 4; i++ {
		updated, next := m.Update(receive(t, cmd))
		m = updated.(Model)
		cmd = next
		if m.Snapshot().Generation != "" {
			return m
		}
	}
	t.Fatal("no snapshot received")
	return m
}

func TestModelReceivesFirstSnapshot(t *testing.T) {
	m := startModel(t, SessionOptions{Settings: slowSettings(), Seed: 1})

	snap := m.Snapshot()
	if len(snap.Runner) != 3 || snap.Outcome != colorsnake.OutcomePlaying {
		t.Errorf("Unexpected first snapshot: %+v", snap)
	}
	if !strings.Contains(m.View(), "Score: 0/10") {
		t.Error("View should contain the HUD")
	}
}

func TestModelRestartKey(t *testing.T) {
	m := startModel(t, SessionOptions{Settings: slowSettings(), Seed: 2})
	before := m.ctrl.Snapshot().Generation

	updated, _ := m.Update(runeKey('r'))
	m = updated.(Model)

	if after := m.ctrl.Snapshot().Generation; after == before {
		t.Error("Restart should start a new generation")
	}
}

func TestModelDirectionKey(t *testing.T) {
	settings := slowSettings()
	settings.TickPeriod = time.Millisecond
	// A single ball always carries the target, so the runner cannot shrink.
	settings.Consumables = 1
	m := startModel(t, SessionOptions{Settings: settings, Seed: 3})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)

	deadline := time.Now().Add(2 * time.Second)
	for m.ctrl.Snapshot().Heading != core.North {
		if time.Now().After(deadline) {
			t.Fatal("runner never turned north")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestModelNextIgnoredWhilePlaying(t *testing.T) {
	called := false
	m := startModel(t, SessionOptions{
		Settings: slowSettings(),
		Navigate: colorsnake.NavigateFunc(func(colorsnake.Snapshot) { called = true }),
	})

	updated, cmd := m.Update(runeKey('n'))
	m = updated.(Model)

	if called || m.NextRequested() || cmd != nil {
		t.Error("Next should do nothing before a win")
	}
}

func TestModelQuit(t *testing.T) {
	m := startModel(t, SessionOptions{Settings: slowSettings()})

	updated, cmd := m.Update(runeKey('q'))
	m = updated.(Model)

	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if m.ctrl.Running() {
		t.Error("Controller should be stopped after quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestModelCueFlash(t *testing.T) {
	m := startModel(t, SessionOptions{Settings: slowSettings()})

	updated, _ := m.Update(CueMsg(colorsnake.Event{Kind: colorsnake.EventCorrect}))
	m = updated.(Model)
	if !strings.Contains(m.View(), "♪") {
		t.Error("Correct cue should flash in the status line")
	}

	updated, _ = m.Update(cueExpiredMsg(m.cueSeq))
	m = updated.(Model)
	if strings.Contains(m.View(), "♪") {
		t.Error("Cue should clear after it expires")
	}
}

func TestModelNarrationLine(t *testing.T) {
	m := startModel(t, SessionOptions{Settings: slowSettings()})

	updated, _ := m.Update(NarrationMsg(colorsnake.Event{Kind: colorsnake.EventTarget, Color: colorsnake.ColorOrange}))
	m = updated.(Model)

	if !strings.Contains(m.View(), "Eat the orange ball!") {
		t.Error("Narration should appear in the status line")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	screen := core.NewScreen(6, 2)
	screen.DrawText(0, 0, "hi")
	screen.SetColored(3, 1, '●', core.ColorRed)

	out := RenderScreen(screen)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "●") {
		t.Errorf("RenderScreen lost content: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected 2 rows, got %q", out)
	}
}
