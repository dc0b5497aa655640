package audit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Event struct {
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
	RequestID string
}

// Recorder is what use cases see of the audit trail.
type Recorder interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
	wg     sync.WaitGroup
	once   sync.Once

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, size),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.logger.Log(ctx, ev); err != nil {
			log.Error().Err(err).Str("action", ev.Action).Str("entity", ev.Entity).Msg("audit write failed")
		}
		cancel()
	}
}

// Dispatch never blocks: when the queue is full the event is dropped.
// Events sent after Close are dropped too.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		log.Warn().Str("action", ev.Action).Str("entity", ev.Entity).Msg("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("action", ev.Action).Str("entity", ev.Entity).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queued ones to be written.
// It is safe to call more than once.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
	})
	d.wg.Wait()
}

// Nop discards every event.
type Nop struct{}

func (Nop) Dispatch(Event) {}

func ID(id uint) *uint {
	return &id
}
