package system

import (
	"testing"
	"time"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/event"
	"github.com/SrWilson89/doom/level"
	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/vmath"
)

const frame = parameter.FrameUpdateInterval

// openLevel is a large wall-less arena so geometry never interferes
func openLevel() *level.Level {
	return &level.Level{
		Name:        "open",
		Width:       4000,
		Height:      4000,
		PlayerStart: vmath.V2(2000, 2000),
		SpawnPoints: []vmath.Vec2{vmath.V2(100, 100)},
	}
}

// newTestWorld returns a seeded world on openLevel with the given systems registered
func newTestWorld(t *testing.T, ctors ...func(*engine.World) engine.System) *engine.World {
	t.Helper()
	w := engine.NewWorld(engine.WorldConfig{Level: openLevel(), Seed: 42})
	for _, ctor := range ctors {
		w.AddSystem(ctor(w))
	}
	return w
}

// runFor steps fixed frames until at least d of session time has passed
func runFor(w *engine.World, d time.Duration) {
	target := w.Now() + d
	for w.Now() < target && !w.State.Ended() {
		w.Update(frame)
	}
}

// addEnemy places a wave-1 enemy at pos and returns its index
func addEnemy(w *engine.World, pos vmath.Vec2) int {
	w.Enemies.Add(component.NewEnemy(pos, EnemyStatsForWave(1), 1))
	return w.Enemies.Len() - 1
}

// drain returns pending events of type et
func drain(w *engine.World, et event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range w.Events.Consume() {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}
