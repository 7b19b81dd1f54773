package component

import (
	"github.com/SrWilson89/doom/vmath"
)

// BulletComponent marks a linear projectile fired by the player
type BulletComponent struct {
	Pos       vmath.Vec2
	Angle     float64
	Speed     float64 // Units per frame
	Distance  float64 // Accumulated travel, non-decreasing
	Explosive bool
}

// Advance moves the bullet one frame along its angle
func (b *BulletComponent) Advance() {
	b.Pos = vmath.V2Add(b.Pos, vmath.V2Scale(vmath.V2FromAngle(b.Angle), b.Speed))
	b.Distance += b.Speed
}
