package render

import "sync/atomic"

// Layer wraps a renderer with a runtime visibility switch
type Layer struct {
	SystemRenderer
	visible atomic.Bool
}

// NewLayer wraps r, initially shown if visible
func NewLayer(r SystemRenderer, visible bool) *Layer {
	l := &Layer{SystemRenderer: r}
	l.visible.Store(visible)
	return l
}

func (l *Layer) IsVisible() bool {
	return l.visible.Load()
}

func (l *Layer) SetVisible(v bool) {
	l.visible.Store(v)
}

// Toggle flips visibility and returns the new state
func (l *Layer) Toggle() bool {
	for {
		v := l.visible.Load()
		if l.visible.CompareAndSwap(v, !v) {
			return !v
		}
	}
}
