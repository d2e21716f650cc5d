package colorsnake

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/colorsnake/internal/core"
)

// ControllerConfig wires a Controller to its settings and collaborators.
type ControllerConfig struct {
	Settings Settings

	// Seed drives every generation's RNG. 0 means seed from the clock.
	Seed int64

	Render    RenderSink
	Narration NarrationSink
	Audio     AudioCueSink

	Logger    *log.Logger
	QueueSize int

	// NewID names generations. Defaults to random UUIDs.
	NewID func() string
}

// Controller owns the game lifecycle: it creates generations, drives the
// tick scheduler and forwards results to the sinks.
type Controller struct {
	settings   Settings
	render     RenderSink
	dispatcher *Dispatcher
	logger     *log.Logger
	newID      func() string
	input      *core.InputBuffer
	sched      *core.Scheduler

	lifeMu sync.Mutex // serializes Start/Restart/Stop/Close
	ctx    context.Context

	mu      sync.Mutex // guards game and seeds
	seeds   *rand.Rand
	game    *Game
	started time.Time
}

// NewController creates a stopped controller. Call Start to begin play.
func NewController(cfg ControllerConfig) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	newID := cfg.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	return &Controller{
		settings:   cfg.Settings,
		render:     cfg.Render,
		dispatcher: NewDispatcher(cfg.Narration, cfg.Audio, logger, cfg.QueueSize),
		logger:     logger,
		newID:      newID,
		input:      core.NewInputBuffer(cfg.Settings.InitialHeading),
		sched:      core.NewScheduler(cfg.Settings.TickPeriod),
		ctx:        context.Background(),
		seeds:      rand.New(rand.NewSource(seed)),
	}
}

// Start begins a new generation, announces its target and starts ticking.
// A generation already in progress is abandoned.
func (c *Controller) Start(ctx context.Context) {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	c.ctx = ctx
	c.startLocked()
}

// Restart abandons the current generation and starts a new one. The old
// scheduler is stopped first so two loops never drive the same state.
func (c *Controller) Restart() {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	c.startLocked()
}

func (c *Controller) startLocked() {
	c.sched.Stop()

	c.mu.Lock()
	rng := rand.New(rand.NewSource(c.seeds.Int63()))
	c.game = NewGame(c.settings, c.newID(), rng, c.input)
	c.started = time.Now()
	snap := c.game.Snapshot()
	announce := c.game.Announce()
	c.mu.Unlock()

	c.logger.Info("generation started",
		"generation", snap.Generation,
		"target", snap.Target,
		"period", c.sched.Period(),
	)
	if snap.DegradedSpawns > 0 {
		c.logger.Debug("placed balls on occupied cells", "count", snap.DegradedSpawns)
	}

	c.publish(snap, []Event{announce})
	c.sched.Start(c.ctx, c.step)
}

// Stop halts the scheduler and leaves the state as it is.
func (c *Controller) Stop() {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()
	c.sched.Stop()
}

// Close stops the scheduler and flushes pending notifications.
// The controller must not be used afterwards.
func (c *Controller) Close() {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()
	c.sched.Stop()
	c.dispatcher.Close()
}

// SetPendingHeading records a direction from the gesture source.
// Returns false when it would reverse the runner.
func (c *Controller) SetPendingHeading(h core.Heading) bool {
	return c.input.SetPendingHeading(h)
}

// Snapshot returns the current state. Before the first Start it returns
// the zero Snapshot.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.game == nil {
		return Snapshot{}
	}
	return c.game.Snapshot()
}

// Running reports whether the tick scheduler is active.
func (c *Controller) Running() bool {
	return c.sched.Running()
}

// step runs one tick. Returning false ends the scheduler loop, which is how
// a terminal outcome stops the clock.
func (c *Controller) step() bool {
	c.mu.Lock()
	events := c.game.Tick()
	snap := c.game.Snapshot()
	elapsed := time.Since(c.started)
	c.mu.Unlock()

	c.publish(snap, events)

	if snap.Outcome.Terminal() {
		c.logger.Info("generation finished",
			"generation", snap.Generation,
			"outcome", snap.Outcome,
			"reason", snap.Reason,
			"score", snap.Score,
			"ticks", snap.Tick,
			"elapsed", elapsed.Round(time.Millisecond),
		)
		return false
	}
	return true
}

func (c *Controller) publish(snap Snapshot, events []Event) {
	if c.render != nil {
		c.render.Render(snap)
	}
	c.dispatcher.Publish(events...)
}
