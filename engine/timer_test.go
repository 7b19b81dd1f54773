package engine

import (
	"testing"
	"time"
)

func TestTimersFireInOrder(t *testing.T) {
	timers := NewTimers()
	var order []int

	timers.Schedule(3*time.Second, func() { order = append(order, 3) })
	timers.Schedule(1*time.Second, func() { order = append(order, 1) })
	timers.Schedule(1*time.Second, func() { order = append(order, 2) })

	if n := timers.Advance(500 * time.Millisecond); n != 0 {
		t.Fatalf("Advance fired %d callbacks early", n)
	}
	if n := timers.Advance(time.Second); n != 2 {
		t.Fatalf("Advance(1s) fired %d, want 2", n)
	}
	if n := timers.Advance(10 * time.Second); n != 1 {
		t.Fatalf("Advance(10s) fired %d, want 1", n)
	}

	want := []int{1, 2, 3}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("fire order %v, want %v", order, want)
		}
	}
	if timers.Pending() != 0 {
		t.Errorf("Pending() = %d after all fired", timers.Pending())
	}
}

func TestTimersCancel(t *testing.T) {
	timers := NewTimers()
	fired := false
	h := timers.Schedule(time.Second, func() { fired = true })

	if rem, ok := timers.Remaining(h, 400*time.Millisecond); !ok || rem != 600*time.Millisecond {
		t.Errorf("Remaining = %v,%v want 600ms,true", rem, ok)
	}
	if !timers.Cancel(h) {
		t.Fatal("Cancel returned false for pending handle")
	}
	if timers.Cancel(h) {
		t.Error("second Cancel should return false")
	}
	timers.Advance(time.Hour)
	if fired {
		t.Error("cancelled callback fired")
	}
}

func TestTimersCancelAllDropsInFlightBatch(t *testing.T) {
	timers := NewTimers()
	count := 0

	// First callback purges; the second in the same batch must not run
	timers.Schedule(time.Second, func() {
		count++
		timers.CancelAll()
	})
	timers.Schedule(time.Second, func() { count++ })
	timers.Schedule(2*time.Second, func() { count++ })

	gen := timers.Generation()
	timers.Advance(5 * time.Second)

	if count != 1 {
		t.Errorf("ran %d callbacks, want 1", count)
	}
	if timers.Generation() != gen+1 {
		t.Errorf("generation = %d, want %d", timers.Generation(), gen+1)
	}
	if timers.Pending() != 0 {
		t.Errorf("Pending() = %d after CancelAll", timers.Pending())
	}
}

func TestTimersScheduleFromCallback(t *testing.T) {
	timers := NewTimers()
	fired := 0
	timers.Schedule(time.Second, func() {
		fired++
		timers.Schedule(2*time.Second, func() { fired++ })
	})

	timers.Advance(time.Second)
	if fired != 1 || timers.Pending() != 1 {
		t.Fatalf("fired=%d pending=%d after first advance", fired, timers.Pending())
	}
	timers.Advance(2 * time.Second)
	if fired != 2 {
		t.Errorf("fired=%d, want 2", fired)
	}
}
