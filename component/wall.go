package component

import (
	"github.com/SrWilson89/doom/vmath"
)

// WallComponent is an immutable line segment obstacle, fixed at level load
type WallComponent struct {
	vmath.Segment
}

// Segments extracts raw segments for collision queries
func Segments(walls []WallComponent) []vmath.Segment {
	segs := make([]vmath.Segment, len(walls))
	for i, w := range walls {
		segs[i] = w.Segment
	}
	return segs
}
