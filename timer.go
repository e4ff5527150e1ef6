package tactile

import (
	"sort"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TimerPurpose distinguishes the timers kept per touch.
type TimerPurpose uint8

const (
	TimerLongPress   TimerPurpose = iota // reports a hold after the touch goes down
	TimerTapFinalize                     // closes a tap sequence after the tap interval
)

// String returns a short name for the purpose.
func (p TimerPurpose) String() string {
	switch p {
	case TimerLongPress:
		return "long_press"
	case TimerTapFinalize:
		return "tap_finalize"
	default:
		return "unknown"
	}
}

// TimerKey addresses one scheduled callback.
type TimerKey struct {
	TouchID int
	Purpose TimerPurpose
}

// TimerPort schedules deferred callbacks for a GestureEngine. Implementations
// must invoke callbacks on the same goroutine that drives the engine, no
// earlier than the requested delay, and must never invoke a callback after
// Cancel returns for its key. Scheduling an existing key replaces it.
type TimerPort interface {
	Schedule(key TimerKey, delay time.Duration, fn func())
	Cancel(key TimerKey)
}

// Clock reports monotonic time since an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// --- Frame-driven timers ---

type tickTimer struct {
	deadline time.Duration
	seq      uint64
	fn       func()
	progress *gween.Tween
}

// TickTimers is a TimerPort and Clock advanced explicitly by the host, usually
// once per frame. It owns no goroutines.
type TickTimers struct {
	now     time.Duration
	seq     uint64
	pending map[TimerKey]*tickTimer
	dueBuf  []dueTimer
}

type dueTimer struct {
	key TimerKey
	t   *tickTimer
}

// NewTickTimers creates a timer set whose clock starts at zero.
func NewTickTimers() *TickTimers {
	return &TickTimers{pending: make(map[TimerKey]*tickTimer)}
}

// Now returns the accumulated time.
func (tt *TickTimers) Now() time.Duration { return tt.now }

// Schedule registers fn to run once Advance has moved the clock by at least delay.
func (tt *TickTimers) Schedule(key TimerKey, delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	tt.seq++
	tt.pending[key] = &tickTimer{
		deadline: tt.now + delay,
		seq:      tt.seq,
		fn:       fn,
		progress: gween.New(0, 1, float32(delay.Seconds()), ease.Linear),
	}
}

// Cancel removes the timer for key. It is a no-op if none is pending.
func (tt *TickTimers) Cancel(key TimerKey) {
	delete(tt.pending, key)
}

// Pending reports whether a timer is scheduled for key.
func (tt *TickTimers) Pending(key TimerKey) bool {
	_, ok := tt.pending[key]
	return ok
}

// Len returns the number of pending timers.
func (tt *TickTimers) Len() int { return len(tt.pending) }

// Progress returns how far the timer for key has run, in [0, 1], and whether
// it is pending. Hosts use it to draw long-press feedback.
func (tt *TickTimers) Progress(key TimerKey) (float64, bool) {
	t, ok := tt.pending[key]
	if !ok {
		return 0, false
	}
	v, _ := t.progress.Update(0)
	return float64(v), true
}

// Advance moves the clock forward by dt and runs every timer whose deadline
// has passed, earliest deadline first. Timers cancelled by an earlier callback
// in the same pass do not run; timers scheduled during the pass run on a
// later Advance even if their delay is zero.
func (tt *TickTimers) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	tt.now += dt
	step := float32(dt.Seconds())

	due := tt.dueBuf[:0]
	for key, t := range tt.pending {
		t.progress.Update(step)
		if t.deadline <= tt.now {
			due = append(due, dueTimer{key: key, t: t})
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].t.deadline != due[j].t.deadline {
			return due[i].t.deadline < due[j].t.deadline
		}
		return due[i].t.seq < due[j].t.seq
	})

	for _, d := range due {
		// Skip timers cancelled or replaced by an earlier callback.
		if cur, ok := tt.pending[d.key]; !ok || cur != d.t {
			continue
		}
		delete(tt.pending, d.key)
		d.t.fn()
	}

	for i := range due {
		due[i] = dueTimer{}
	}
	tt.dueBuf = due[:0]
}

// Reset cancels every pending timer without running it.
func (tt *TickTimers) Reset() {
	for k := range tt.pending {
		delete(tt.pending, k)
	}
}
