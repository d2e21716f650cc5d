package core

import (
	"context"
	"sync"
	"time"
)

// DefaultTickPeriod is the simulation step used when none is configured.
const DefaultTickPeriod = 150 * time.Millisecond

// Scheduler calls a step function at a fixed rate on its own goroutine.
// At most one loop is active; starting again replaces the previous loop.
type Scheduler struct {
	period time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates a scheduler with the given tick period.
func NewScheduler(period time.Duration) *Scheduler {
	if period <= 0 {
		period = DefaultTickPeriod
	}
	return &Scheduler{period: period}
}

// Period returns the tick period.
func (s *Scheduler) Period() time.Duration {
	return s.period
}

// Start stops any running loop and begins calling step once per period.
// The loop ends when ctx is cancelled, Stop is called, or step returns false.
func (s *Scheduler) Start(ctx context.Context, step func() bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	go func() {
		defer close(done)
		defer cancel()

		ticker := time.NewTicker(s.period)
		defer ticker.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				// A step always runs to completion; cancellation is only
				// observed between steps.
				if !step() {
					return
				}
			}
		}
	}()
}

// Stop cancels the loop and waits for an in-flight step to finish.
// Must not be called from inside step.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
}

// Running reports whether a loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}
