package render

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

type layerSlot struct {
	renderer SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator draws registered layers into one buffer and flushes it to the screen
// Layers run by ascending priority; equal priorities run in registration order
type RenderOrchestrator struct {
	screen tcell.Screen
	buffer *RenderBuffer
	layers []layerSlot
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen: screen,
		buffer: NewRenderBuffer(w, h),
	}
}

// Register adds r after every layer whose priority is not above it
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	at := len(o.layers)
	for at > 0 && o.layers[at-1].priority > priority {
		at--
	}
	o.layers = slices.Insert(o.layers, at, layerSlot{renderer: r, priority: priority})
}

// Priorities lists the registered priorities in draw order
func (o *RenderOrchestrator) Priorities() []RenderPriority {
	out := make([]RenderPriority, len(o.layers))
	for i, l := range o.layers {
		out[i] = l.priority
	}
	return out
}

// Size returns the current buffer dimensions
func (o *RenderOrchestrator) Size() (int, int) {
	return o.buffer.Bounds()
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// RenderFrame clears the buffer, draws every visible layer, then shows the screen
// The caller holds whatever lock guards ctx.World
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()

	for _, l := range o.layers {
		if vt, ok := l.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		l.renderer.Render(ctx, o.buffer)
	}

	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}

