package game_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/game"
	"github.com/SrWilson89/doom/game/mocks"
	"github.com/SrWilson89/doom/level"
	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/status"
	"github.com/SrWilson89/doom/system"
	"github.com/SrWilson89/doom/vmath"
)

const frame = parameter.FrameUpdateInterval

// Player sealed in a small box: enemies stall at the walls outside melee range
const boxedLevel = `
name: boxed
width: 800
height: 600
player_start: [400, 300]
walls:
  - [370, 270, 430, 270]
  - [430, 270, 430, 330]
  - [430, 330, 370, 330]
  - [370, 330, 370, 270]
initial_spawns:
  - [100, 100]
  - [700, 500]
spawn_points:
  - [100, 100]
  - [700, 100]
`

// Three enemies already in melee range of the player
const swarmLevel = `
name: swarm
width: 800
height: 600
player_start: [400, 300]
initial_spawns:
  - [430, 300]
  - [370, 300]
  - [400, 330]
spawn_points:
  - [50, 50]
`

type collaborators struct {
	notifier *mocks.MockNotifier
	sound    *mocks.MockSoundPlayer
	scores   *mocks.MockScoreStore
}

func newCollaborators(t *testing.T) collaborators {
	ctrl := gomock.NewController(t)
	return collaborators{
		notifier: mocks.NewMockNotifier(ctrl),
		sound:    mocks.NewMockSoundPlayer(ctrl),
		scores:   mocks.NewMockScoreStore(ctrl),
	}
}

func mustLevel(t *testing.T, yaml string) *level.Level {
	t.Helper()
	lvl, err := level.Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("parse level: %v", err)
	}
	return lvl
}

func newGame(t *testing.T, c collaborators, lvl *level.Level) *game.Game {
	t.Helper()
	return game.New(game.Config{Level: lvl, Seed: 11}, c.notifier, c.sound, c.scores)
}

func TestNewLoadsBestAndStartsMusic(t *testing.T) {
	c := newCollaborators(t)
	c.scores.EXPECT().Best().Return(700, nil)
	c.sound.EXPECT().StartMusic().Return(nil)

	g := newGame(t, c, nil)

	if g.BestScore() != 700 {
		t.Errorf("BestScore() = %d, want 700", g.BestScore())
	}
	if g.Generation() != 1 || g.Ended() || g.Result() != nil {
		t.Error("new game should be running generation 1")
	}
	g.View(func(w *engine.World) {
		if w.Enemies.Live() != 7 {
			t.Errorf("initial enemies = %d, want 7", w.Enemies.Live())
		}
	})
}

func TestVictoryAtMatchDuration(t *testing.T) {
	c := newCollaborators(t)
	c.scores.EXPECT().Best().Return(0, nil)
	c.sound.EXPECT().StartMusic().Return(nil)

	g := newGame(t, c, mustLevel(t, boxedLevel))

	ticks := int(parameter.MatchDuration / frame)
	for range ticks - 1 {
		g.Tick(frame)
	}
	if g.Ended() {
		t.Fatal("session ended before the match duration")
	}

	c.sound.EXPECT().StopMusic()
	c.scores.EXPECT().Submit(0, gomock.Any()).Return(0, false, nil)
	g.Tick(frame)

	res := g.Result()
	if res == nil || !res.Victory {
		t.Fatalf("Result() = %+v, want victory", res)
	}
	if res.Elapsed != 300*time.Second {
		t.Errorf("elapsed = %v, want 300s", res.Elapsed)
	}
	g.View(func(w *engine.World) {
		if w.State.Phase != engine.PhaseVictory || w.Player.Health != 100 {
			t.Errorf("phase=%v health=%d", w.State.Phase, w.Player.Health)
		}
	})

	// Terminal: no further collaborator calls
	g.Tick(frame)
}

func TestDefeatByContact(t *testing.T) {
	c := newCollaborators(t)
	c.scores.EXPECT().Best().Return(250, nil)
	c.sound.EXPECT().StartMusic().Return(nil)
	c.notifier.EXPECT().DamageFlash().MinTimes(1)
	c.sound.EXPECT().Play(component.CueHit).Return(nil).MinTimes(1)
	c.sound.EXPECT().StopMusic()
	c.scores.EXPECT().Submit(0, gomock.Any()).Return(250, false, nil)

	g := newGame(t, c, mustLevel(t, swarmLevel))

	for i := 0; i < 1000 && !g.Ended(); i++ {
		g.Tick(frame)
	}

	res := g.Result()
	if res == nil || res.Victory {
		t.Fatalf("Result() = %+v, want defeat", res)
	}
	if res.BestScore != 250 || res.NewRecord {
		t.Errorf("best=%d record=%v, want 250/false", res.BestScore, res.NewRecord)
	}
	g.View(func(w *engine.World) {
		if w.Player.Health != 0 || w.State.Phase != engine.PhaseDefeat {
			t.Errorf("health=%d phase=%v", w.Player.Health, w.State.Phase)
		}
	})
}

func TestRestartResetsSession(t *testing.T) {
	c := newCollaborators(t)
	c.scores.EXPECT().Best().Return(0, nil)
	c.sound.EXPECT().StartMusic().Return(nil).Times(2)
	c.sound.EXPECT().Play(gomock.Any()).Return(nil).AnyTimes()
	c.notifier.EXPECT().DamageFlash().AnyTimes()
	c.sound.EXPECT().StopMusic()

	g := newGame(t, c, mustLevel(t, boxedLevel))

	g.SetIntent(engine.IntentFire, true)
	g.SetIntent(engine.IntentRight, true)
	for range 60 {
		g.Tick(frame)
	}

	var old *engine.World
	g.View(func(w *engine.World) {
		old = w
		system.ApplyEffect(w, component.PowerupDamage)
		system.ApplyEffect(w, component.PowerupExplosive)
		w.State.Score = 999
	})

	g.Restart()

	if g.Generation() != 2 {
		t.Errorf("generation = %d, want 2", g.Generation())
	}
	if old.Timers.Pending() != 0 {
		t.Errorf("old session still has %d pending expiries", old.Timers.Pending())
	}
	g.View(func(w *engine.World) {
		if w == old || w.SessionID == old.SessionID {
			t.Fatal("restart reused the world")
		}
		p := w.Player
		if p.Pos != vmath.V2(400, 300) || p.Health != 100 || p.Damage != parameter.PlayerDamage ||
			p.ExplosiveShots || p.Angle != 0 {
			t.Errorf("player not reset: %+v", p)
		}
		if w.State.Score != 0 || w.State.Kills != 0 || w.State.Wave != 1 || w.Now() != 0 {
			t.Errorf("state not reset: %+v now=%v", w.State, w.Now())
		}
		if w.Bullets.Live() != 0 || w.Powerups.Live() != 0 || w.Enemies.Live() != 2 || len(w.Effects) != 0 {
			t.Errorf("stores not reset: bullets=%d powerups=%d enemies=%d effects=%d",
				w.Bullets.Live(), w.Powerups.Live(), w.Enemies.Live(), len(w.Effects))
		}
		if w.Input.Held(engine.IntentFire) {
			t.Error("held intents survived restart")
		}
	})
}

func TestRestartZeroesSessionCounters(t *testing.T) {
	c := newCollaborators(t)
	c.scores.EXPECT().Best().Return(0, nil)
	c.sound.EXPECT().StartMusic().Return(nil).Times(2)
	c.sound.EXPECT().StopMusic()

	reg := status.NewRegistry()
	g := game.New(game.Config{Level: mustLevel(t, boxedLevel), Seed: 11, Status: reg},
		c.notifier, c.sound, c.scores)

	reg.Ints.Get("combat.hits").Store(5)
	reg.Ints.Get("enemy.kills").Store(3)
	reg.Ints.Get("engine.ticks").Store(40)

	g.Restart()

	for _, name := range []string{"combat.hits", "enemy.kills"} {
		if got := reg.Ints.Get(name).Load(); got != 0 {
			t.Errorf("%s = %d after restart, want 0", name, got)
		}
	}
	if got := reg.Ints.Get("engine.ticks").Load(); got != 40 {
		t.Errorf("engine.ticks = %d, want 40 (lifetime)", got)
	}
	if got := reg.Ints.Get("game.sessions").Load(); got != 2 {
		t.Errorf("game.sessions = %d, want 2", got)
	}
}

func TestPowerupPickupNotifies(t *testing.T) {
	c := newCollaborators(t)
	c.scores.EXPECT().Best().Return(0, nil)
	c.sound.EXPECT().StartMusic().Return(nil)
	c.notifier.EXPECT().Notify("DEMON SPEED!", component.RGBSpeed)
	c.sound.EXPECT().Play(component.CuePowerup).Return(nil)

	g := newGame(t, c, mustLevel(t, boxedLevel))
	g.View(func(w *engine.World) {
		w.Powerups.Add(component.PowerupComponent{
			Pos:      w.Player.Pos,
			Type:     component.PowerupSpeed,
			Radius:   parameter.PowerupRadius,
			Lifetime: parameter.PowerupLifetime,
		})
	})

	g.Tick(frame)

	g.View(func(w *engine.World) {
		if w.Player.Speed != parameter.PlayerSpeed+parameter.EffectSpeedBonus || w.State.Score != 100 {
			t.Errorf("speed=%v score=%d", w.Player.Speed, w.State.Score)
		}
	})
}

func TestCollaboratorFailuresAreSwallowed(t *testing.T) {
	c := newCollaborators(t)
	c.scores.EXPECT().Best().Return(0, errors.New("disk on fire"))
	c.sound.EXPECT().StartMusic().Return(errors.New("no audio device"))
	c.sound.EXPECT().Play(gomock.Any()).Return(errors.New("mixer busy")).AnyTimes()
	c.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(string, component.RGB) {
		panic("renderer gone")
	})

	g := newGame(t, c, mustLevel(t, boxedLevel))
	g.SetIntent(engine.IntentFire, true)
	g.View(func(w *engine.World) {
		w.Powerups.Add(component.PowerupComponent{
			Pos:      w.Player.Pos,
			Type:     component.PowerupHealth,
			Radius:   parameter.PowerupRadius,
			Lifetime: parameter.PowerupLifetime,
		})
	})

	for range 30 {
		g.Tick(frame)
	}

	g.View(func(w *engine.World) {
		if w.State.ShotsFired == 0 || w.State.Pickups != 1 {
			t.Errorf("simulation stalled: shots=%d pickups=%d", w.State.ShotsFired, w.State.Pickups)
		}
	})
}

func TestTurnAndPause(t *testing.T) {
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	clock := engine.NewPausableClock(mock)

	g := game.New(game.Config{Level: mustLevel(t, boxedLevel), Seed: 3, Clock: clock}, nil, nil, nil)

	g.Turn(100)
	g.Tick(frame)
	g.View(func(w *engine.World) {
		if math.Abs(w.Player.Angle-0.3) > 1e-9 {
			t.Errorf("angle = %f, want 0.3", w.Player.Angle)
		}
	})

	g.SetIntent(engine.IntentFire, true)
	if !g.TogglePause() || !g.Paused() {
		t.Fatal("TogglePause should pause")
	}
	g.View(func(w *engine.World) {
		if w.Input.Held(engine.IntentFire) {
			t.Error("pause should release held intents")
		}
	})
	if g.TogglePause() || g.Paused() {
		t.Error("second TogglePause should resume")
	}

	unpaused := game.New(game.Config{Seed: 3}, nil, nil, nil)
	if unpaused.TogglePause() {
		t.Error("game without a clock cannot pause")
	}
}
