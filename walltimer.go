package tactile

import (
	"sync"
	"time"
)

type wallTimer struct {
	gen   uint64
	timer *time.Timer
	fn    func()
}

type wallFire struct {
	key TimerKey
	gen uint64
}

// WallTimers is a TimerPort backed by real timers. Expired timers are queued
// and only run when the host calls Dispatch from the goroutine that drives
// its controllers, so callbacks never race with touch handling.
type WallTimers struct {
	origin time.Time

	mu      sync.Mutex
	gen     uint64
	pending map[TimerKey]*wallTimer
	fired   chan wallFire
	done    chan struct{}
	closed  bool
}

// NewWallTimers creates a timer set. queue bounds how many expirations may be
// waiting for Dispatch; timers that expire while the queue is full block
// their own goroutine until Dispatch drains it.
func NewWallTimers(queue int) *WallTimers {
	if queue <= 0 {
		queue = 32
	}
	return &WallTimers{
		origin:  time.Now(),
		pending: make(map[TimerKey]*wallTimer),
		fired:   make(chan wallFire, queue),
		done:    make(chan struct{}),
	}
}

// Now returns the time elapsed since the timer set was created.
func (w *WallTimers) Now() time.Duration { return time.Since(w.origin) }

// Schedule arms a timer for key, replacing any pending one.
func (w *WallTimers) Schedule(key TimerKey, delay time.Duration, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if old, ok := w.pending[key]; ok {
		old.timer.Stop()
	}
	w.gen++
	gen := w.gen
	wt := &wallTimer{gen: gen, fn: fn}
	wt.timer = time.AfterFunc(delay, func() {
		select {
		case w.fired <- wallFire{key: key, gen: gen}:
		case <-w.done:
		}
	})
	w.pending[key] = wt
}

// Cancel disarms the timer for key. An expiration already queued for it is
// discarded by Dispatch.
func (w *WallTimers) Cancel(key TimerKey) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if wt, ok := w.pending[key]; ok {
		wt.timer.Stop()
		delete(w.pending, key)
	}
}

// Dispatch runs the callbacks of every queued expiration that has not been
// cancelled or replaced, and returns how many ran. It never blocks.
func (w *WallTimers) Dispatch() int {
	ran := 0
	for {
		select {
		case f := <-w.fired:
			w.mu.Lock()
			wt, ok := w.pending[f.key]
			if !ok || wt.gen != f.gen {
				w.mu.Unlock()
				continue
			}
			delete(w.pending, f.key)
			w.mu.Unlock()
			wt.fn()
			ran++
		default:
			return ran
		}
	}
}

// Close stops every pending timer. Scheduling after Close is a no-op.
func (w *WallTimers) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	close(w.done)
	for k, wt := range w.pending {
		wt.timer.Stop()
		delete(w.pending, k)
	}
}
