package engine

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/event"
	"github.com/SrWilson89/doom/level"
	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/status"
	"github.com/SrWilson89/doom/vmath"
)

// System is one simulation stage, run once per frame in ascending priority
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(w *World)
}

// ActiveEffect is a timed effect awaiting its expiry callback
type ActiveEffect struct {
	Type    component.PowerupType
	Handle  TimerHandle
	Expires time.Duration // Session time
}

// WorldConfig carries per-session construction parameters
type WorldConfig struct {
	Level         *level.Level
	MatchDuration time.Duration
	Movement      MovementMode
	Seed          uint64 // Zero draws a random seed
	Generation    uint64
	Status        *status.Registry // Shared across restarts; nil creates one
}

// World is the authoritative state of one session
// Owned by a single goroutine; callers serialize access
type World struct {
	SessionID  uuid.UUID
	Generation uint64

	Player   component.PlayerComponent
	Enemies  *Store[component.EnemyComponent]
	Bullets  *Store[component.BulletComponent]
	Powerups *Store[component.PowerupComponent]

	// Static geometry
	Walls       []vmath.Segment
	SpawnPoints []vmath.Vec2
	Bounds      vmath.Vec2

	State   GameState
	Input   InputState
	Effects []ActiveEffect

	MatchDuration time.Duration
	Movement      MovementMode

	Timers *Timers
	Events *event.EventQueue
	Status *status.Registry
	Rand   *rand.Rand

	now   time.Duration
	dt    time.Duration
	frame int64

	systems []System
}

// NewWorld creates a running session from a level
// Initial enemies are not placed; the spawn system owns population
func NewWorld(cfg WorldConfig) *World {
	lvl := cfg.Level
	if lvl == nil {
		lvl = level.Default()
	}
	if cfg.MatchDuration <= 0 {
		cfg.MatchDuration = parameter.MatchDuration
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &World{
		SessionID:     uuid.New(),
		Generation:    cfg.Generation,
		Player:        component.NewPlayer(lvl.PlayerStart),
		Enemies:       NewStore[component.EnemyComponent](),
		Bullets:       NewStore[component.BulletComponent](),
		Powerups:      NewStore[component.PowerupComponent](),
		Walls:         lvl.Segments(),
		SpawnPoints:   slices.Clone(lvl.SpawnPoints),
		Bounds:        vmath.V2(lvl.Width, lvl.Height),
		State:         NewGameState(),
		MatchDuration: cfg.MatchDuration,
		Movement:      cfg.Movement,
		Timers:        NewTimers(),
		Events:        event.NewEventQueue(cfg.Status.Ints.Get("event.dropped")),
		Status:        cfg.Status,
		Rand:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// AddSystem registers a system and keeps the list sorted by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	return slices.Clone(w.systems)
}

// Update advances session time by dt and runs one frame
// No-op once the session has ended
func (w *World) Update(dt time.Duration) {
	if w.State.Ended() {
		return
	}

	w.frame++
	w.dt = dt
	w.now += dt

	for _, s := range w.systems {
		s.Update(w)
	}

	w.Enemies.Compact()
	w.Bullets.Compact()
	w.Powerups.Compact()
}

// Now returns session time: the sum of simulated frame durations
func (w *World) Now() time.Duration {
	return w.now
}

// DeltaTime returns the duration of the current frame
func (w *World) DeltaTime() time.Duration {
	return w.dt
}

// FrameNumber returns the number of frames run
func (w *World) FrameNumber() int64 {
	return w.frame
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame,
	})
}

// RemainingTime returns match time left, floored at zero
func (w *World) RemainingTime() time.Duration {
	return max(0, w.MatchDuration-w.now)
}

// Shutdown cancels all pending expiries so no callback can touch this world again
func (w *World) Shutdown() int {
	w.Effects = nil
	return w.Timers.CancelAll()
}
