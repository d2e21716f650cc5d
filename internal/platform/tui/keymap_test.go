package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorsnake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"h", runeKey('h'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"restart", runeKey('r'), core.ActionRestart},
		{"next", runeKey('n'), core.ActionNext},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestDragTracker(t *testing.T) {
	d := newDragTracker()

	press := tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if _, ok := d.update(press); ok {
		t.Fatal("Press alone should not resolve")
	}

	// Two columns is one board cell: still inside the dead zone.
	if _, ok := d.update(tea.MouseMsg{X: 12, Y: 10, Action: tea.MouseActionMotion}); ok {
		t.Error("Small drag should stay in the dead zone")
	}

	h, ok := d.update(tea.MouseMsg{X: 10, Y: 13, Action: tea.MouseActionMotion})
	if !ok || h != core.South {
		t.Errorf("Drag down = %v/%v, expected South", h, ok)
	}

	// Origin moved to (10,13); drag left from there.
	h, ok = d.update(tea.MouseMsg{X: 4, Y: 13, Action: tea.MouseActionMotion})
	if !ok || h != core.West {
		t.Errorf("Drag left = %v/%v, expected West", h, ok)
	}

	d.update(tea.MouseMsg{X: 4, Y: 13, Action: tea.MouseActionRelease})
	if _, ok := d.update(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionMotion}); ok {
		t.Error("Motion after release should be ignored")
	}
}
