package render

import (
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/event"
	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	World  *engine.World
	Paused bool
	Best   int
	Result *event.GameOverPayload // Nil while the session runs

	// Screen margins (arena offset from terminal origin)
	GameXOffset int
	GameYOffset int

	// Viewport dimensions (arena area below the HUD)
	ViewportWidth  int
	ViewportHeight int

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContext lays out the HUD rows above an arena viewport filling the rest of the screen
func NewRenderContext(w *engine.World, screenWidth, screenHeight int) RenderContext {
	return RenderContext{
		World:          w,
		GameYOffset:    parameter.HUDRows,
		ViewportWidth:  max(0, screenWidth),
		ViewportHeight: max(0, screenHeight-parameter.HUDRows),
		ScreenWidth:    screenWidth,
		ScreenHeight:   screenHeight,
	}
}

// ViewportUsable reports whether the viewport is large enough to draw the arena
func (rc *RenderContext) ViewportUsable() bool {
	return rc.World != nil &&
		rc.ViewportWidth >= parameter.MinViewportWidth &&
		rc.ViewportHeight >= parameter.MinViewportHeight
}

// CellSize returns arena units covered by one cell on each axis
func (rc *RenderContext) CellSize() (float64, float64) {
	if rc.World == nil || rc.ViewportWidth <= 0 || rc.ViewportHeight <= 0 {
		return 0, 0
	}
	return rc.World.Bounds.X / float64(rc.ViewportWidth), rc.World.Bounds.Y / float64(rc.ViewportHeight)
}

// WorldToScreen converts arena coordinates to screen coordinates
// Returns (sx, sy, visible) where visible=false if outside the viewport
func (rc *RenderContext) WorldToScreen(p vmath.Vec2) (int, int, bool) {
	cw, ch := rc.CellSize()
	if cw <= 0 || ch <= 0 || p.X < 0 || p.Y < 0 {
		return 0, 0, false
	}
	vx, vy := int(p.X/cw), int(p.Y/ch)
	if vx >= rc.ViewportWidth || vy >= rc.ViewportHeight {
		return 0, 0, false
	}
	return vx + rc.GameXOffset, vy + rc.GameYOffset, true
}

// ScreenToWorld returns the arena position at the center of a screen cell
func (rc *RenderContext) ScreenToWorld(sx, sy int) vmath.Vec2 {
	cw, ch := rc.CellSize()
	return vmath.V2(
		(float64(sx-rc.GameXOffset)+0.5)*cw,
		(float64(sy-rc.GameYOffset)+0.5)*ch,
	)
}
