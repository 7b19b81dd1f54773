package system

import (
	"math"
	"sync/atomic"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/event"
	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/physics"
	"github.com/SrWilson89/doom/vmath"
)

// MoveDelta converts held intents into one frame of displacement
// World mode moves along arena axes; facing mode moves forward/back along the
// facing angle and strafes perpendicular to it
func MoveDelta(p *component.PlayerComponent, in *engine.InputState, mode engine.MovementMode) vmath.Vec2 {
	var fwd, side float64
	if in.Held(engine.IntentUp) {
		fwd--
	}
	if in.Held(engine.IntentDown) {
		fwd++
	}
	if in.Held(engine.IntentLeft) {
		side--
	}
	if in.Held(engine.IntentRight) {
		side++
	}

	if mode == engine.MovementWorld {
		return vmath.V2(side*p.Speed, fwd*p.Speed)
	}

	// Facing: up is forward along the angle, right is a clockwise quarter turn
	forward := vmath.V2FromAngle(p.Angle)
	right := vmath.V2FromAngle(p.Angle + math.Pi/2)
	return vmath.V2Add(vmath.V2Scale(forward, -fwd*p.Speed), vmath.V2Scale(right, side*p.Speed))
}

// Shoot fires along the facing angle if the fire rate allows
// Double shot adds two side bullets; the explosive flag is copied at fire time
func Shoot(w *engine.World) bool {
	p := &w.Player
	now := w.Now()
	if now-p.LastShot < p.FireRate {
		return false
	}

	angles := []float64{p.Angle}
	if p.DoubleShot {
		angles = append(angles, p.Angle-parameter.DoubleShotSpread, p.Angle+parameter.DoubleShotSpread)
	}
	for _, a := range angles {
		w.Bullets.Add(component.BulletComponent{
			Pos:       p.Pos,
			Angle:     a,
			Speed:     parameter.BulletSpeed,
			Explosive: p.ExplosiveShots,
		})
	}

	p.LastShot = now
	w.State.ShotsFired++
	w.PushEvent(event.EventShotFired, &event.ShotFiredPayload{
		Bullets:   len(angles),
		Explosive: p.ExplosiveShots,
	})
	return true
}

// PlayerSystem applies turning, movement and continuous fire from held intents
type PlayerSystem struct {
	statShots  *atomic.Int64
	statHealth *atomic.Int64
}

func NewPlayerSystem(w *engine.World) engine.System {
	return &PlayerSystem{
		statShots:  w.Status.Ints.Get("player.shots"),
		statHealth: w.Status.Ints.Get("player.health"),
	}
}

func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

func (s *PlayerSystem) Update(w *engine.World) {
	p := &w.Player
	in := &w.Input

	turn := in.TakeTurn()
	if in.Held(engine.IntentTurnLeft) {
		turn -= parameter.PlayerRotSpeed
	}
	if in.Held(engine.IntentTurnRight) {
		turn += parameter.PlayerRotSpeed
	}
	if turn != 0 {
		p.Angle = vmath.NormalizeAngle(p.Angle + turn)
	}

	if d := MoveDelta(p, in, w.Movement); d != (vmath.Vec2{}) {
		p.Pos = physics.SlideMove(p.Pos, d, parameter.PlayerRadius, w.Walls)
	}

	if in.Held(engine.IntentFire) {
		Shoot(w)
	}

	s.statShots.Store(int64(w.State.ShotsFired))
	s.statHealth.Store(int64(p.Health))
}
