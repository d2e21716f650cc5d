package colorsnake

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vovakirdan/colorsnake/internal/core"
)

// doomedSettings fills a 3x1 row with the runner so the first tick
// collides with the tail.
func doomedSettings() Settings {
	s := DefaultSettings()
	s.Grid = core.NewGrid(3, 1)
	s.TickPeriod = time.Millisecond
	s.Consumables = 0
	s.InitialRunner = []core.Cell{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	s.InitialHeading = core.East
	return s
}

func fastSettings() Settings {
	s := DefaultSettings()
	s.TickPeriod = time.Millisecond
	return s
}

func sequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("gen-%d", n.Add(1))
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestControllerSnapshotBeforeStart(t *testing.T) {
	c := NewController(ControllerConfig{Settings: fastSettings()})
	defer c.Close()

	if snap := c.Snapshot(); snap.Generation != "" || snap.Runner != nil {
		t.Errorf("Expected zero snapshot before Start, got %+v", snap)
	}
	if c.Running() {
		t.Error("Controller should not run before Start")
	}
}

func TestControllerStartAnnouncesTarget(t *testing.T) {
	narration := &recorder{}
	var renders atomic.Int64
	c := NewController(ControllerConfig{
		Settings:  fastSettings(),
		Seed:      42,
		Narration: narration,
		Render:    RenderFunc(func(Snapshot) { renders.Add(1) }),
		NewID:     sequentialIDs(),
	})

	c.Start(context.Background())
	waitFor(t, "ticks", func() bool { return renders.Load() > 3 })
	c.Close()

	kinds := narration.kinds()
	if len(kinds) == 0 || kinds[0] != EventTarget {
		t.Fatalf("First narration should be the target announcement, got %v", kinds)
	}
	if first := narration.events[0]; first.Generation != "gen-1" || first.Tick != 0 {
		t.Errorf("Announcement = %+v, expected gen-1 at tick 0", first)
	}
	if c.Running() {
		t.Error("Controller should not run after Close")
	}
}

func TestControllerStopsOnTerminalOutcome(t *testing.T) {
	narration := &recorder{}
	c := NewController(ControllerConfig{
		Settings:  doomedSettings(),
		Seed:      1,
		Narration: narration,
	})
	defer c.Close()

	c.Start(context.Background())
	waitFor(t, "lost outcome", func() bool { return c.Snapshot().Outcome == OutcomeLost })
	waitFor(t, "scheduler to stop", func() bool { return !c.Running() })

	snap := c.Snapshot()
	if snap.Reason != LossSelfCollision {
		t.Errorf("Reason = %s, expected self_collision", snap.Reason)
	}
	if snap.Tick != 1 {
		t.Errorf("Tick = %d, expected the loop to end after 1 tick", snap.Tick)
	}

	time.Sleep(10 * time.Millisecond)
	if after := c.Snapshot(); after.Tick != snap.Tick {
		t.Errorf("Ticks continued after terminal outcome: %d -> %d", snap.Tick, after.Tick)
	}
}

func TestControllerRestartStartsNewGeneration(t *testing.T) {
	narration := &recorder{}
	c := NewController(ControllerConfig{
		Settings:  doomedSettings(),
		Seed:      7,
		Narration: narration,
		NewID:     sequentialIDs(),
	})
	defer c.Close()

	c.Start(context.Background())
	waitFor(t, "first loss", func() bool { return !c.Running() && c.Snapshot().Outcome.Terminal() })

	c.Restart()
	snap := c.Snapshot()
	if snap.Generation != "gen-2" {
		t.Errorf("Generation = %q, expected gen-2", snap.Generation)
	}
	waitFor(t, "second loss", func() bool { return !c.Running() && c.Snapshot().Outcome.Terminal() })

	c.Close()
	gens := map[string]bool{}
	narration.mu.Lock()
	for _, e := range narration.events {
		gens[e.Generation] = true
	}
	narration.mu.Unlock()
	if !gens["gen-1"] || !gens["gen-2"] {
		t.Errorf("Expected events from both generations, got %v", gens)
	}
}

func TestControllerRestartResetsHeading(t *testing.T) {
	c := NewController(ControllerConfig{Settings: fastSettings(), Seed: 3})
	defer c.Close()

	c.Start(context.Background())
	c.SetPendingHeading(core.South)
	waitFor(t, "turn south", func() bool { return c.Snapshot().Heading == core.South })

	c.Restart()
	if h := c.Snapshot().Heading; h != core.East {
		t.Errorf("Heading after restart = %v, expected East", h)
	}
	// West is the reverse of the restored East heading.
	if c.SetPendingHeading(core.West) {
		t.Error("Reverse heading should be rejected after restart")
	}
}

func TestControllerStopFreezesState(t *testing.T) {
	var renders atomic.Int64
	c := NewController(ControllerConfig{
		Settings: fastSettings(),
		Render:   RenderFunc(func(Snapshot) { renders.Add(1) }),
	})
	defer c.Close()

	c.Start(context.Background())
	waitFor(t, "ticks", func() bool { return renders.Load() > 2 })
	c.Stop()

	before := c.Snapshot()
	time.Sleep(10 * time.Millisecond)
	if after := c.Snapshot(); after.Tick != before.Tick {
		t.Errorf("Tick advanced after Stop: %d -> %d", before.Tick, after.Tick)
	}
}

func TestControllerContextCancelStops(t *testing.T) {
	c := NewController(ControllerConfig{Settings: fastSettings()})
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c.Start(ctx)
	cancel()

	waitFor(t, "scheduler to stop", func() bool { return !c.Running() })
}

func TestControllerConcurrentInput(t *testing.T) {
	c := NewController(ControllerConfig{Settings: fastSettings(), Seed: 11})
	defer c.Close()
	c.Start(context.Background())

	headings := []core.Heading{core.North, core.South, core.East, core.West}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				c.SetPendingHeading(headings[(i+j)%len(headings)])
				_ = c.Snapshot()
			}
		}(i)
	}
	wg.Wait()
	c.Stop()

	snap := c.Snapshot()
	if snap.Score < 0 {
		t.Errorf("Negative score %d", snap.Score)
	}
	if !snap.Outcome.Terminal() && !snap.HasTarget() {
		t.Error("Target invariant broken under concurrent input")
	}
}
