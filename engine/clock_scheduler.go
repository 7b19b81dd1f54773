package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/status"
)

// StepFunc advances the simulation by one fixed frame
type StepFunc func(dt time.Duration)

// ClockScheduler drives a StepFunc on a fixed tick measured on a PausableClock
// Missed frames are simulated up to a catch-up bound, the rest of the backlog is dropped
// Paused time never reaches the step function
type ClockScheduler struct {
	clock      *PausableClock
	interval   time.Duration
	maxCatchUp int
	step       StepFunc

	ticks     atomic.Uint64
	statTicks *atomic.Int64
	statDrops *atomic.Int64
}

// NewClockScheduler creates a scheduler; reg may be nil
func NewClockScheduler(clock *PausableClock, interval time.Duration, step StepFunc, reg *status.Registry) *ClockScheduler {
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &ClockScheduler{
		clock:      clock,
		interval:   interval,
		maxCatchUp: parameter.MaxFrameCatchUp,
		step:       step,
		statTicks:  reg.Ints.Get("engine.ticks"),
		statDrops:  reg.Ints.Get("engine.dropped_frames"),
	}
}

// TickCount returns the number of steps run
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.ticks.Load()
}

// Run blocks until ctx is cancelled
func (cs *ClockScheduler) Run(ctx context.Context) error {
	simulated := cs.clock.Elapsed()

	timer := time.NewTimer(cs.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		if cs.clock.IsPaused() {
			timer.Reset(parameter.PausedPollInterval)
			continue
		}

		cs.Catch(&simulated)
		timer.Reset(max(0, cs.interval-(cs.clock.Elapsed()-simulated)))
	}
}

// Catch runs every whole frame between *simulated and the clock, advancing *simulated
// Beyond the catch-up bound the backlog is skipped and counted as dropped
// Returns the number of frames run
func (cs *ClockScheduler) Catch(simulated *time.Duration) int {
	now := cs.clock.Elapsed()

	steps := 0
	for now-*simulated >= cs.interval {
		if steps == cs.maxCatchUp {
			dropped := (now - *simulated) / cs.interval
			cs.statDrops.Add(int64(dropped))
			*simulated += dropped * cs.interval
			break
		}
		cs.step(cs.interval)
		cs.ticks.Add(1)
		cs.statTicks.Add(1)
		*simulated += cs.interval
		steps++
	}
	return steps
}
