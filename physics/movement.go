package physics

import (
	"github.com/SrWilson89/doom/vmath"
)

// SlideMove applies delta to pos one axis at a time, X first
// Each axis is kept only if the resulting position clears every wall,
// so blocked motion slides along the obstacle
func SlideMove(pos, delta vmath.Vec2, r float64, walls []vmath.Segment) vmath.Vec2 {
	if delta.X != 0 {
		next := vmath.V2(pos.X+delta.X, pos.Y)
		if CanOccupy(next, r, walls) {
			pos = next
		}
	}
	if delta.Y != 0 {
		next := vmath.V2(pos.X, pos.Y+delta.Y)
		if CanOccupy(next, r, walls) {
			pos = next
		}
	}
	return pos
}
