package colorsnake

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultQueueSize is the number of events the dispatcher buffers before
// dropping.
const DefaultQueueSize = 64

// Dispatcher delivers events to the narration and audio sinks on its own
// goroutine. Publish never blocks: when the queue is full the event is
// dropped and logged.
type Dispatcher struct {
	narration NarrationSink
	audio     AudioCueSink
	logger    *log.Logger

	mu     sync.Mutex
	closed bool
	queue  chan Event
	done   chan struct{}
}

// NewDispatcher starts a dispatcher. Nil sinks are skipped.
func NewDispatcher(narration NarrationSink, audio AudioCueSink, logger *log.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = DefaultQueueSize
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	d := &Dispatcher{
		narration: narration,
		audio:     audio,
		logger:    logger,
		queue:     make(chan Event, size),
		done:      make(chan struct{}),
	}
	go d.run()
	return d
}

// Publish queues events for delivery. Events published after Close are
// discarded.
func (d *Dispatcher) Publish(events ...Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	for _, e := range events {
		select {
		case d.queue <- e:
		default:
			d.logger.Warn("event queue full, dropping event",
				"kind", e.Kind,
				"generation", e.Generation,
				"tick", e.Tick,
			)
		}
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for e := range d.queue {
		if d.narration != nil {
			d.narration.Narrate(e)
		}
		if d.audio != nil && e.IsCue() {
			d.audio.Cue(e)
		}
	}
}

// Close stops accepting events and waits until queued ones are delivered.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}
