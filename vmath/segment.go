package vmath

import (
	"math"
)

// Segment is a finite line segment between A and B
type Segment struct {
	A, B Vec2
}

func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Vec2{x1, y1}, B: Vec2{x2, y2}}
}

// Len returns segment length
func (s Segment) Len() float64 {
	return V2Dist(s.A, s.B)
}

// ClosestPoint returns the point on s nearest to p
// Projection parameter is clamped to [0,1]; a zero-length segment yields A
func (s Segment) ClosestPoint(p Vec2) Vec2 {
	ab := V2Sub(s.B, s.A)
	lenSq := V2MagSq(ab)
	if lenSq == 0 {
		return s.A
	}

	t := V2Dot(V2Sub(p, s.A), ab) / lenSq
	switch {
	case t < 0:
		return s.A
	case t > 1:
		return s.B
	}
	return V2Add(s.A, V2Scale(ab, t))
}

// PointSegmentDistance returns the shortest distance from p to s
func PointSegmentDistance(p Vec2, s Segment) float64 {
	return V2Dist(p, s.ClosestPoint(p))
}

// RaySegment intersects a ray from origin along angle with s
// Returns distance along the ray and the hit parameter u in [0,1] along the segment
// Parallel and behind-origin hits report ok=false
func RaySegment(origin Vec2, angle float64, s Segment) (dist, u float64, ok bool) {
	dir := V2FromAngle(angle)
	edge := V2Sub(s.B, s.A)

	denom := V2Cross(dir, edge)
	if math.Abs(denom) < 1e-12 {
		return 0, 0, false
	}

	diff := V2Sub(s.A, origin)
	t := V2Cross(diff, edge) / denom
	u = V2Cross(diff, dir) / denom

	if t < 0 || u < 0 || u > 1 {
		return 0, 0, false
	}
	return t, u, true
}
