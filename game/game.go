// Package game owns the session lifecycle: it steps the world, forwards
// simulation events to the presentation collaborators and handles restart
package game

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/event"
	"github.com/SrWilson89/doom/level"
	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/score"
	"github.com/SrWilson89/doom/status"
	"github.com/SrWilson89/doom/system"
)

// Config is the per-process session setup; every restart reuses it
type Config struct {
	Level            *level.Level
	MatchDuration    time.Duration
	Movement         engine.MovementMode
	Seed             uint64 // Zero seeds each session randomly
	MouseSensitivity float64
	Clock            *engine.PausableClock // Optional; enables pause
	Status           *status.Registry
}

// Game serializes input, stepping and rendering reads on one world
type Game struct {
	mu sync.Mutex

	cfg   Config
	world *engine.World
	gen   uint64

	notifier Notifier
	sound    SoundPlayer
	scores   ScoreStore

	best   int
	result *event.GameOverPayload

	statSessions *atomic.Int64
}

// New starts the first session; nil collaborators are replaced by no-ops
// and a nil store keeps the best score in memory
func New(cfg Config, n Notifier, s SoundPlayer, sc ScoreStore) *Game {
	if cfg.Level == nil {
		cfg.Level = level.Default()
	}
	if cfg.MouseSensitivity == 0 {
		cfg.MouseSensitivity = parameter.PlayerMouseSensitivity
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if n == nil {
		n = nopNotifier{}
	}
	if s == nil {
		s = nopSound{}
	}
	if sc == nil {
		sc = score.NewMemoryStore()
	}

	g := &Game{
		cfg:          cfg,
		notifier:     n,
		sound:        s,
		scores:       sc,
		statSessions: cfg.Status.Ints.Get("game.sessions"),
	}

	g.safely("load best score", func() error {
		best, err := g.scores.Best()
		g.best = best
		return err
	})

	g.mu.Lock()
	g.startSession()
	g.mu.Unlock()
	return g
}

// startSession builds a fresh world; caller holds mu
func (g *Game) startSession() {
	g.gen++
	seed := g.cfg.Seed
	if seed != 0 {
		seed += g.gen - 1
	}

	w := engine.NewWorld(engine.WorldConfig{
		Level:         g.cfg.Level,
		MatchDuration: g.cfg.MatchDuration,
		Movement:      g.cfg.Movement,
		Seed:          seed,
		Generation:    g.gen,
		Status:        g.cfg.Status,
	})
	system.RegisterSystems(w)
	system.SpawnInitialEnemies(w, g.cfg.Level.InitialSpawns)

	g.world = w
	g.result = nil
	g.statSessions.Add(1)
	g.cfg.Status.Strings.Get("game.session").Store(w.SessionID.String())
	g.cfg.Status.Strings.Get("game.phase").Store(w.State.Phase.String())

	w.PushEvent(event.EventSessionStarted, &event.SessionStartedPayload{
		SessionID:  w.SessionID,
		Generation: g.gen,
	})
	g.dispatch()
}

// Restart discards the current session and starts a new one
// Pending effect expiries of the old session are cancelled
// Restart is unconditional; callers that only allow it after the match
// ended (input.Apply) check Ended first
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()

	old := g.world
	n := old.Shutdown()
	g.safely("stop music", func() error {
		g.sound.StopMusic()
		return nil
	})
	g.logf("restart: cancelled %d pending effects", n)
	g.startSession()
}

// Tick advances the session by one frame and forwards its events
func (g *Game) Tick(dt time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.world.State.Ended() {
		return
	}
	g.world.Update(dt)
	g.dispatch()
}

// SetIntent records an intent press or release
func (g *Game) SetIntent(i engine.Intent, held bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.world.Input.Set(i, held)
}

// Turn rotates the player by a horizontal pointer delta
func (g *Game) Turn(dx float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.world.Input.AddTurn(dx * g.cfg.MouseSensitivity)
}

// TogglePause pauses or resumes the session clock
// Returns the new paused state; always false without a clock
func (g *Game) TogglePause() bool {
	if g.cfg.Clock == nil {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	paused := g.cfg.Clock.Toggle()
	if paused {
		g.world.Input.Clear()
	}
	g.cfg.Status.Bools.Get("clock.paused").Store(paused)
	return paused
}

// Paused reports the clock state
func (g *Game) Paused() bool {
	return g.cfg.Clock != nil && g.cfg.Clock.IsPaused()
}

// View runs fn with the world under the game lock
// fn must not retain the world or call back into Game
func (g *Game) View(fn func(w *engine.World)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.world)
}

// Ended reports whether the current session reached a terminal phase
func (g *Game) Ended() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.world.State.Ended()
}

// Result returns the final tally of an ended session, nil while running
func (g *Game) Result() *event.GameOverPayload {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.result
}

// BestScore returns the best score known to this process
func (g *Game) BestScore() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.best
}

// Generation returns the session counter, starting at 1
func (g *Game) Generation() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen
}

// dispatch drains the world's events into the collaborators; caller holds mu
func (g *Game) dispatch() {
	for _, ev := range g.world.Events.Consume() {
		switch ev.Type {
		case event.EventSessionStarted:
			g.safely("start music", g.sound.StartMusic)
			g.logf("session started")

		case event.EventShotFired:
			g.play(component.CueShoot)

		case event.EventPlayerDamaged:
			g.safely("damage flash", func() error {
				g.notifier.DamageFlash()
				return nil
			})
			g.play(component.CueHit)

		case event.EventPowerupCollected:
			if p, ok := ev.Payload.(*event.PowerupCollectedPayload); ok {
				g.safely("notify", func() error {
					g.notifier.Notify(p.Message, p.Color)
					return nil
				})
			}
			g.play(component.CuePowerup)

		case event.EventWaveAdvanced:
			if p, ok := ev.Payload.(*event.WaveAdvancedPayload); ok {
				g.logf("wave %d, spawn interval %v", p.Wave, p.SpawnInterval)
			}

		case event.EventGameOver:
			if p, ok := ev.Payload.(*event.GameOverPayload); ok {
				g.finish(p)
			}
		}
	}
}

// finish records the final score and stops the background loop
func (g *Game) finish(p *event.GameOverPayload) {
	g.safely("stop music", func() error {
		g.sound.StopMusic()
		return nil
	})

	p.BestScore = max(g.best, p.Score)
	p.NewRecord = p.Score > g.best
	g.safely("submit score", func() error {
		best, record, err := g.scores.Submit(p.Score, g.world.SessionID)
		if err != nil {
			return err
		}
		p.BestScore, p.NewRecord = best, record
		return nil
	})
	g.best = p.BestScore
	g.result = p

	g.cfg.Status.Strings.Get("game.phase").Store(g.world.State.Phase.String())
	g.logf("game over: victory=%t score=%d kills=%d wave=%d best=%d", p.Victory, p.Score, p.Kills, p.Wave, p.BestScore)
}

func (g *Game) play(cue component.Cue) {
	g.safely("play "+cue.String(), func() error {
		return g.sound.Play(cue)
	})
}

// safely runs a collaborator call, logging its error or panic instead of propagating it
func (g *Game) safely(what string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			g.logf("%s: recovered panic: %v", what, r)
		}
	}()
	if err := fn(); err != nil {
		g.logf("%s: %v", what, err)
	}
}

func (g *Game) logf(format string, args ...any) {
	id := "--------"
	if g.world != nil {
		id = g.world.SessionID.String()[:8]
	}
	log.Printf("[%s] %s", id, fmt.Sprintf(format, args...))
}
