package physics

import (
	"github.com/SrWilson89/doom/vmath"
)

// CanOccupy reports whether a circle of radius r centered at pos clears every wall
// Touching at exactly r counts as clear
func CanOccupy(pos vmath.Vec2, r float64, walls []vmath.Segment) bool {
	for _, w := range walls {
		if vmath.PointSegmentDistance(pos, w) < r {
			return false
		}
	}
	return true
}

// HitsWall reports whether a circle of radius r centered at pos overlaps any wall
func HitsWall(pos vmath.Vec2, r float64, walls []vmath.Segment) bool {
	return !CanOccupy(pos, r, walls)
}

// CirclesOverlap reports whether point p lies strictly within r of center
func CirclesOverlap(p, center vmath.Vec2, r float64) bool {
	return vmath.V2DistSq(p, center) < r*r
}
