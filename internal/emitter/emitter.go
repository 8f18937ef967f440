package emitter

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/oshokin/face-sentinel/internal/logger"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
)

// defaultQueueSize bounds the per-sink backlog. Events are tiny and
// sinks are fast in the common case, so a small buffer absorbs bursts
// without letting a dead sink accumulate unbounded memory.
const defaultQueueSize = 64

// Sink delivers a single detection event to one destination.
// Emit may block; the emitter calls it from a dedicated goroutine.
type Sink interface {
	// Name identifies the sink in logs.
	Name() string
	// Emit delivers one event.
	Emit(event domain.Event) error
	// Close releases the sink's resources. No Emit calls follow Close.
	Close() error
}

// sinkWorker is one sink plus its delivery queue.
type sinkWorker struct {
	sink    Sink
	queue   chan domain.Event
	dropped atomic.Uint64
}

// Emitter fans events out to its sinks without ever blocking the caller.
type Emitter struct {
	ctx     context.Context
	workers []*sinkWorker
	wg      sync.WaitGroup
	closed  atomic.Bool
}

// New starts a delivery goroutine per sink and returns the emitter.
// The context is used for logging only; delivery stops on Close.
func New(ctx context.Context, sinks ...Sink) *Emitter {
	e := &Emitter{
		ctx:     ctx,
		workers: make([]*sinkWorker, 0, len(sinks)),
	}

	for _, sink := range sinks {
		worker := &sinkWorker{
			sink:  sink,
			queue: make(chan domain.Event, defaultQueueSize),
		}
		e.workers = append(e.workers, worker)

		e.wg.Add(1)

		go e.run(worker)
	}

	return e
}

// Publish hands the event to every sink's queue. A full queue drops the
// event for that sink only: delivery is best-effort by design of the
// alerting path, where a stale alert is worse than a missing one.
func (e *Emitter) Publish(event domain.Event) {
	if e.closed.Load() {
		return
	}

	for _, worker := range e.workers {
		select {
		case worker.queue <- event:
		default:
			dropped := worker.dropped.Add(1)

			logger.WarnKV(e.ctx, "event sink queue is full, dropping event",
				"sink", worker.sink.Name(),
				"event_type", event.Type,
				"dropped_total", dropped)
		}
	}
}

// Close drains the queues, closes every sink, and waits for the
// delivery goroutines to finish.
func (e *Emitter) Close() {
	if !e.closed.CompareAndSwap(false, true) {
		return
	}

	for _, worker := range e.workers {
		close(worker.queue)
	}

	e.wg.Wait()

	for _, worker := range e.workers {
		if err := worker.sink.Close(); err != nil {
			logger.ErrorKV(e.ctx, "failed to close event sink",
				"sink", worker.sink.Name(),
				"error", err)
		}
	}
}

// Dropped returns the total number of events dropped across all sinks.
func (e *Emitter) Dropped() uint64 {
	var total uint64
	for _, worker := range e.workers {
		total += worker.dropped.Load()
	}

	return total
}

func (e *Emitter) run(worker *sinkWorker) {
	defer e.wg.Done()

	for event := range worker.queue {
		if err := worker.sink.Emit(event); err != nil {
			logger.WarnKV(e.ctx, "event sink delivery failed",
				"sink", worker.sink.Name(),
				"event_type", event.Type,
				"error", err)
		}
	}
}
