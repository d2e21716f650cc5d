package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorsnake/internal/core"
	"github.com/vovakirdan/colorsnake/internal/games/colorsnake"
	"github.com/vovakirdan/colorsnake/internal/storage"
)

// Rows reserved below the board for the narration line and help.
const footerHeight = 2

const cueFlash = 400 * time.Millisecond

// SessionOptions configure one play session.
type SessionOptions struct {
	Settings colorsnake.Settings
	Seed     int64

	// Store, when set, journals every narration event under SessionID.
	Store     *storage.Store
	SessionID string

	// Navigate is called when the player asks for the next activity after
	// a win. The session ends right after.
	Navigate colorsnake.NavigationTrigger

	Logger        *log.Logger
	Width, Height int
}

type cueExpiredMsg int

// Model is the Bubble Tea model for one Color Snake session.
type Model struct {
	ctx      context.Context
	ctrl     *colorsnake.Controller
	bridge   *Bridge
	navigate colorsnake.NavigationTrigger

	screen *core.Screen
	keys   KeyMap
	help   help.Model
	drag   dragTracker

	snap      colorsnake.Snapshot
	narration colorsnake.Event
	cue       *colorsnake.Event
	cueSeq    int

	quitting bool
	next     bool
}

// NewModel wires a controller to a fresh bridge and returns the model.
// The game starts when the program calls Init.
func NewModel(ctx context.Context, opts SessionOptions) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bridge := NewBridge()

	var narration colorsnake.NarrationSink = bridge
	if opts.Store != nil {
		narration = colorsnake.MultiNarrator{bridge, opts.Store.Journal(opts.SessionID, logger)}
	}

	ctrl := colorsnake.NewController(colorsnake.ControllerConfig{
		Settings:  opts.Settings,
		Seed:      opts.Seed,
		Render:    bridge,
		Narration: narration,
		Audio:     bridge,
		Logger:    logger,
	})

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = colorsnake.RequiredScreen(opts.Settings.Grid)
		height += footerHeight
	}

	h := help.New()
	h.Width = width

	return Model{
		ctx:      ctx,
		ctrl:     ctrl,
		bridge:   bridge,
		navigate: opts.Navigate,
		screen:   core.NewScreen(width, max(1, height-footerHeight)),
		keys:     DefaultKeyMap(),
		help:     h,
		drag:     newDragTracker(),
	}
}

// Init starts the first generation and begins listening to the bridge.
func (m Model) Init() tea.Cmd {
	m.ctrl.Start(m.ctx)
	return m.bridge.Wait()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if h, ok := m.drag.update(msg); ok {
			m.ctrl.SetPendingHeading(h)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(1, msg.Height-footerHeight))
		m.help.Width = msg.Width
		return m, nil

	case SnapshotMsg:
		m.snap = colorsnake.Snapshot(msg)
		return m, m.bridge.Wait()

	case NarrationMsg:
		m.narration = colorsnake.Event(msg)
		return m, m.bridge.Wait()

	case CueMsg:
		e := colorsnake.Event(msg)
		m.cue = &e
		m.cueSeq++
		seq := m.cueSeq
		return m, tea.Batch(m.bridge.Wait(), tea.Tick(cueFlash, func(time.Time) tea.Msg {
			return cueExpiredMsg(seq)
		}))

	case cueExpiredMsg:
		if int(msg) == m.cueSeq {
			m.cue = nil
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.shutdown()
		return m, tea.Quit

	case core.ActionRestart:
		m.ctrl.Restart()
		m.cue = nil

	case core.ActionNext:
		snap := m.ctrl.Snapshot()
		if snap.Outcome != colorsnake.OutcomeWon {
			return m, nil
		}
		if m.navigate != nil {
			m.navigate.Navigate(snap)
		}
		m.next = true
		m.shutdown()
		return m, tea.Quit

	default:
		if h, ok := action.Heading(); ok {
			m.ctrl.SetPendingHeading(h)
		}
	}
	return m, nil
}

func (m Model) shutdown() {
	m.ctrl.Close()
	m.bridge.Close()
}

var (
	narrationStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	correctStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	incorrectStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.next {
		return ""
	}

	colorsnake.Render(m.screen, m.snap)

	status := " " + narrationStyle.Render(m.narration.Message())
	if m.cue != nil {
		switch m.cue.Kind {
		case colorsnake.EventCorrect:
			status = correctStyle.Render(" ♪ ") + status
		case colorsnake.EventIncorrect:
			status = incorrectStyle.Render(" ✗ ") + status
		}
	}

	return RenderScreen(m.screen) + "\n" + status + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Snapshot returns the last state the model received.
func (m Model) Snapshot() colorsnake.Snapshot {
	return m.snap
}

// NextRequested reports whether the session ended with a request for the
// next activity.
func (m Model) NextRequested() bool {
	return m.next
}

// Run starts a local session and blocks until the player quits.
// Returns true if the player asked for the next activity after a win.
func Run(ctx context.Context, opts SessionOptions) (bool, error) {
	model := NewModel(ctx, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	model.shutdown()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.NextRequested(), nil
}
