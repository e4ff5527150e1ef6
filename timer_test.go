package tactile

import (
	"testing"
	"time"
)

func TestTickTimersFireAtDeadline(t *testing.T) {
	tt := NewTickTimers()
	var fired int
	tt.Schedule(longPressKey(1), 100*ms, func() { fired++ })

	tt.Advance(99 * ms)
	if fired != 0 {
		t.Fatalf("fired before deadline")
	}
	tt.Advance(1 * ms)
	if fired != 1 {
		t.Fatalf("fired = %d at deadline, want 1", fired)
	}
	tt.Advance(time.Second)
	if fired != 1 {
		t.Errorf("fired = %d after deadline, want 1", fired)
	}
	if tt.Now() != 1100*ms {
		t.Errorf("Now() = %v, want 1.1s", tt.Now())
	}
}

func TestTickTimersOrder(t *testing.T) {
	tt := NewTickTimers()
	var got []int
	tt.Schedule(TimerKey{TouchID: 3}, 30*ms, func() { got = append(got, 3) })
	tt.Schedule(TimerKey{TouchID: 1}, 10*ms, func() { got = append(got, 1) })
	tt.Schedule(TimerKey{TouchID: 2}, 10*ms, func() { got = append(got, 2) })

	tt.Advance(time.Second)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("fired %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fired %v, want %v", got, want)
			break
		}
	}
}

func TestTickTimersCancel(t *testing.T) {
	tt := NewTickTimers()
	var fired bool
	key := tapFinalizeKey(1)
	tt.Schedule(key, 10*ms, func() { fired = true })
	if !tt.Pending(key) {
		t.Fatal("Pending = false after Schedule")
	}
	tt.Cancel(key)
	tt.Cancel(key)
	tt.Advance(time.Second)
	if fired {
		t.Error("cancelled timer fired")
	}
	if tt.Len() != 0 {
		t.Errorf("Len = %d, want 0", tt.Len())
	}
}

func TestTickTimersCancelDuringAdvance(t *testing.T) {
	tt := NewTickTimers()
	var second bool
	tt.Schedule(TimerKey{TouchID: 1}, 10*ms, func() { tt.Cancel(TimerKey{TouchID: 2}) })
	tt.Schedule(TimerKey{TouchID: 2}, 20*ms, func() { second = true })
	tt.Advance(time.Second)
	if second {
		t.Error("timer cancelled by an earlier callback still fired")
	}
}

func TestTickTimersReplace(t *testing.T) {
	tt := NewTickTimers()
	var got string
	key := longPressKey(1)
	tt.Schedule(key, 10*ms, func() { got = "old" })
	tt.Schedule(key, 50*ms, func() { got = "new" })

	tt.Advance(20 * ms)
	if got != "" {
		t.Fatalf("replaced timer fired: %q", got)
	}
	tt.Advance(30 * ms)
	if got != "new" {
		t.Errorf("got %q, want new", got)
	}
}

func TestTickTimersScheduleDuringAdvance(t *testing.T) {
	tt := NewTickTimers()
	var chained bool
	tt.Schedule(TimerKey{TouchID: 1}, 10*ms, func() {
		tt.Schedule(TimerKey{TouchID: 1}, 0, func() { chained = true })
	})
	tt.Advance(10 * ms)
	if chained {
		t.Fatal("timer scheduled during Advance ran in the same pass")
	}
	tt.Advance(0)
	if !chained {
		t.Error("zero-delay timer did not run on the next Advance")
	}
}

func TestTickTimersProgress(t *testing.T) {
	tt := NewTickTimers()
	key := longPressKey(1)
	if _, ok := tt.Progress(key); ok {
		t.Fatal("Progress ok for missing key")
	}
	tt.Schedule(key, time.Second, func() {})
	tt.Advance(250 * ms)
	p, ok := tt.Progress(key)
	if !ok || p < 0.24 || p > 0.26 {
		t.Errorf("Progress = %v, %v; want ~0.25, true", p, ok)
	}
	tt.Advance(500 * ms)
	if p, _ := tt.Progress(key); p < 0.74 || p > 0.76 {
		t.Errorf("Progress = %v, want ~0.75", p)
	}
}

func TestTickTimersReset(t *testing.T) {
	tt := NewTickTimers()
	var fired bool
	tt.Schedule(TimerKey{TouchID: 1}, 0, func() { fired = true })
	tt.Reset()
	tt.Advance(time.Second)
	if fired || tt.Len() != 0 {
		t.Errorf("fired=%v Len=%d after Reset", fired, tt.Len())
	}
}

func TestTimerPurposeString(t *testing.T) {
	if got := TimerLongPress.String(); got != "long_press" {
		t.Errorf("TimerLongPress.String() = %q", got)
	}
	if got := TimerTapFinalize.String(); got != "tap_finalize" {
		t.Errorf("TimerTapFinalize.String() = %q", got)
	}
}
