package event

import (
	"sync/atomic"

	"github.com/SrWilson89/doom/parameter"
)

// EventQueue buffers the events one session emits between dispatches
// Systems push and the session drains under the same lock; a burst larger
// than the ring drops the oldest events and counts them
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Next read
	tail   uint64 // Next write

	dropped *atomic.Int64
}

// NewEventQueue creates an empty queue; dropped may be nil
func NewEventQueue(dropped *atomic.Int64) *EventQueue {
	if dropped == nil {
		dropped = new(atomic.Int64)
	}
	return &EventQueue{dropped: dropped}
}

// Push appends ev, evicting the oldest event when full
func (eq *EventQueue) Push(ev GameEvent) {
	if eq.tail-eq.head == parameter.EventQueueSize {
		eq.head++
		eq.dropped.Add(1)
	}
	eq.events[eq.tail%parameter.EventQueueSize] = ev
	eq.tail++
}

// Consume returns all pending events in FIFO order, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.Len()
	if n == 0 {
		return nil
	}
	out := make([]GameEvent, n)
	for i := range out {
		out[i] = eq.events[(eq.head+uint64(i))%parameter.EventQueueSize]
	}
	eq.head = eq.tail
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Dropped returns how many events were evicted unread
func (eq *EventQueue) Dropped() int64 {
	return eq.dropped.Load()
}
