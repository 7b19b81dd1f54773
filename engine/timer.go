package engine

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// TimerHandle identifies one scheduled callback
// Zero is never issued
type TimerHandle uint64

type timerEntry struct {
	handle     TimerHandle
	due        time.Duration
	generation uint64
	fn         func()
}

// Timers schedules deferred callbacks against session time
// Every application gets its own handle; Cancel and CancelAll remove pending entries
// and CancelAll also advances the generation so an in-flight batch is dropped
type Timers struct {
	mu         sync.Mutex
	next       TimerHandle
	generation uint64
	entries    []timerEntry
}

// NewTimers creates an empty scheduler
func NewTimers() *Timers {
	return &Timers{}
}

// Schedule registers fn to run once session time reaches due
func (t *Timers) Schedule(due time.Duration, fn func()) TimerHandle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	t.entries = append(t.entries, timerEntry{
		handle:     t.next,
		due:        due,
		generation: t.generation,
		fn:         fn,
	})
	return t.next
}

// Cancel removes a pending callback, returns false if it already fired or was unknown
func (t *Timers) Cancel(h TimerHandle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, e := range t.entries {
		if e.handle == h {
			t.entries = slices.Delete(t.entries, i, i+1)
			return true
		}
	}
	return false
}

// CancelAll purges every pending callback and starts a new generation
// Returns the number of callbacks dropped
func (t *Timers) CancelAll() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.entries)
	t.entries = t.entries[:0]
	t.generation++
	return n
}

// Generation returns the current generation counter
func (t *Timers) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation
}

// Pending returns the number of scheduled callbacks
func (t *Timers) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Remaining returns time until h fires at session time now
func (t *Timers) Remaining(h TimerHandle, now time.Duration) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range t.entries {
		if e.handle == h {
			return max(0, e.due-now), true
		}
	}
	return 0, false
}

// Advance runs every callback due at or before now, ordered by due time then schedule order
// Callbacks run without the lock held and may schedule or cancel
// Returns the number of callbacks run
func (t *Timers) Advance(now time.Duration) int {
	t.mu.Lock()
	var due []timerEntry
	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.due <= now {
			due = append(due, e)
		} else {
			kept = append(kept, e)
		}
	}
	t.entries = kept
	t.mu.Unlock()

	if len(due) == 0 {
		return 0
	}

	slices.SortFunc(due, func(a, b timerEntry) int {
		if c := cmp.Compare(a.due, b.due); c != 0 {
			return c
		}
		return cmp.Compare(a.handle, b.handle)
	})

	ran := 0
	for _, e := range due {
		if e.generation != t.Generation() {
			continue
		}
		e.fn()
		ran++
	}
	return ran
}
