// Package worker provides the serialized task runner used for frame
// generation. Concurrency is deliberately limited to one: CPU-heavy
// generation for different cache keys must not run in parallel with
// itself, while the cache's bookkeeping lock stays free to serve lookups.
package worker

import (
	"sync"
	"sync/atomic"
)

// DefaultQueueDepth is the task queue buffer when none is configured.
const DefaultQueueDepth = 16

// Serial runs submitted tasks one at a time on a single goroutine, in
// submission order.
//
// Serial is safe for concurrent use.
type Serial struct {
	// tasks is the pending work queue.
	tasks chan func()

	// done signals the worker to stop.
	done chan struct{}

	// wg waits for the worker to finish.
	wg sync.WaitGroup

	// running indicates whether the runner is accepting work.
	running atomic.Bool
}

// NewSerial creates a running task runner with the given queue depth.
// If depth is 0 or negative, DefaultQueueDepth is used.
func NewSerial(depth int) *Serial {
	if depth <= 0 {
		depth = DefaultQueueDepth
	}

	s := &Serial{
		tasks: make(chan func(), depth),
		done:  make(chan struct{}),
	}
	s.running.Store(true)

	s.wg.Add(1)
	go s.run()

	return s
}

// run is the worker loop.
func (s *Serial) run() {
	defer s.wg.Done()

	for {
		select {
		case <-s.done:
			s.drain()
			return
		case task := <-s.tasks:
			if task != nil {
				task()
			}
		}
	}
}

// drain executes all remaining queued tasks. Tasks already submitted must
// run even during shutdown: callers may be blocked waiting on their
// completion signals.
func (s *Serial) drain() {
	for {
		select {
		case task := <-s.tasks:
			if task != nil {
				task()
			}
		default:
			return
		}
	}
}

// Submit queues a task. It may block when the queue is full; callers must
// not hold locks the task needs. After Close, the task runs on its own
// goroutine instead so waiters never hang.
func (s *Serial) Submit(task func()) {
	if task == nil {
		return
	}
	if !s.running.Load() {
		go task()
		return
	}

	select {
	case s.tasks <- task:
	case <-s.done:
		go task()
	}
}

// Close stops the runner after draining queued tasks.
// Close is safe to call multiple times.
func (s *Serial) Close() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	close(s.done)
	s.wg.Wait()
}

// IsRunning reports whether the runner is accepting work.
func (s *Serial) IsRunning() bool {
	return s.running.Load()
}

// Pending returns the number of queued tasks. Approximate: the queue can
// change while reading.
func (s *Serial) Pending() int {
	return len(s.tasks)
}
