package core

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerTicksUntilStopped(t *testing.T) {
	s := NewScheduler(2 * time.Millisecond)

	var count atomic.Int64
	s.Start(context.Background(), func() bool {
		count.Add(1)
		return true
	})

	deadline := time.Now().Add(2 * time.Second)
	for count.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	s.Stop()

	if count.Load() < 3 {
		t.Fatalf("expected at least 3 ticks, got %d", count.Load())
	}
	if s.Running() {
		t.Error("scheduler should not be running after Stop")
	}

	after := count.Load()
	time.Sleep(10 * time.Millisecond)
	if count.Load() != after {
		t.Error("step ran after Stop returned")
	}
}

func TestSchedulerStepCanEndLoop(t *testing.T) {
	s := NewScheduler(time.Millisecond)

	var count atomic.Int64
	s.Start(context.Background(), func() bool {
		return count.Add(1) < 2
	})

	deadline := time.Now().Add(2 * time.Second)
	for s.Running() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if s.Running() {
		t.Fatal("loop should end when step returns false")
	}
	if count.Load() != 2 {
		t.Errorf("expected exactly 2 steps, got %d", count.Load())
	}
	s.Stop() // no-op on a finished loop
}

func TestSchedulerStopWaitsForInFlightStep(t *testing.T) {
	s := NewScheduler(time.Millisecond)

	entered := make(chan struct{})
	var finished atomic.Bool
	s.Start(context.Background(), func() bool {
		select {
		case <-entered:
		default:
			close(entered)
		}
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
		return true
	})

	<-entered
	s.Stop()
	if !finished.Load() {
		t.Error("Stop returned before the in-flight step completed")
	}
}

func TestSchedulerRestartReplacesLoop(t *testing.T) {
	s := NewScheduler(time.Millisecond)

	var first, second atomic.Int64
	s.Start(context.Background(), func() bool { first.Add(1); return true })
	time.Sleep(5 * time.Millisecond)
	s.Start(context.Background(), func() bool { second.Add(1); return true })

	frozen := first.Load()
	time.Sleep(10 * time.Millisecond)
	s.Stop()

	if first.Load() != frozen {
		t.Error("first loop kept running after restart")
	}
	if second.Load() == 0 {
		t.Error("second loop never ticked")
	}
}

func TestSchedulerContextCancel(t *testing.T) {
	s := NewScheduler(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	s.Start(ctx, func() bool { return true })
	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for s.Running() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if s.Running() {
		t.Error("loop should end when parent context is cancelled")
	}
}

func TestNewSchedulerDefaultPeriod(t *testing.T) {
	if NewScheduler(0).Period() != DefaultTickPeriod {
		t.Error("zero period should fall back to DefaultTickPeriod")
	}
}
