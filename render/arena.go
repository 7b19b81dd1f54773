package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/physics"
	"github.com/SrWilson89/doom/vmath"
)

// ArenaRenderer draws the top-down floor and wall segments
type ArenaRenderer struct{}

func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

func (r *ArenaRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	if !ctx.ViewportUsable() {
		return
	}
	walls := ctx.World.Walls
	cw, ch := ctx.CellSize()
	// Slightly over half a cell so walls on cell boundaries still show
	half := max(cw, ch) * 0.55

	for vy := range ctx.ViewportHeight {
		for vx := range ctx.ViewportWidth {
			sx, sy := vx+ctx.GameXOffset, vy+ctx.GameYOffset
			if physics.HitsWall(ctx.ScreenToWorld(sx, sy), half, walls) {
				buf.SetWithBg(sx, sy, '█', RgbWall, RgbFloor)
			} else {
				buf.SetBgOnly(sx, sy, RgbFloor)
			}
		}
	}
}

// EntityRenderer draws powerups, living enemies and bullets
type EntityRenderer struct{}

func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{}
}

func (r *EntityRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	if !ctx.ViewportUsable() {
		return
	}
	w := ctx.World

	w.Powerups.Each(func(_ int, pu *component.PowerupComponent) {
		x, y, ok := ctx.WorldToScreen(pu.Pos)
		if !ok {
			return
		}
		pulse := 0.6 + 0.4*math.Abs(math.Sin(pu.PulsePhase))
		buf.SetFgOnly(x, y, PowerupGlyph(pu.Type), Scale(PowerupColor(pu.Type), pulse), tcell.AttrBold)
	})

	w.Enemies.Each(func(_ int, e *component.EnemyComponent) {
		if e.Dead() {
			return
		}
		x, y, ok := ctx.WorldToScreen(e.Pos)
		if !ok {
			return
		}
		buf.SetFgOnly(x, y, 'M', Blend(RgbEnemyHurt, RgbEnemy, e.HealthFraction()), tcell.AttrBold)
	})

	w.Bullets.Each(func(_ int, b *component.BulletComponent) {
		x, y, ok := ctx.WorldToScreen(b.Pos)
		if !ok {
			return
		}
		if b.Explosive {
			buf.SetFgOnly(x, y, '*', RgbExplosiveBullet, tcell.AttrBold)
		} else {
			buf.SetFgOnly(x, y, '·', RgbBullet, tcell.AttrNone)
		}
	})
}

// PlayerRenderer draws the player and a facing marker one cell ahead
type PlayerRenderer struct{}

func NewPlayerRenderer() *PlayerRenderer {
	return &PlayerRenderer{}
}

func (r *PlayerRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	if !ctx.ViewportUsable() {
		return
	}
	p := &ctx.World.Player
	x, y, ok := ctx.WorldToScreen(p.Pos)
	if !ok {
		return
	}

	cw, ch := ctx.CellSize()
	dir := vmath.V2FromAngle(p.Angle)
	ahead := vmath.V2Add(p.Pos, vmath.V2(dir.X*cw*1.5, dir.Y*ch*1.5))
	if fx, fy, ok := ctx.WorldToScreen(ahead); ok && (fx != x || fy != y) {
		buf.SetFgOnly(fx, fy, FacingGlyph(p.Angle), RgbFacing, tcell.AttrNone)
	}

	color := RgbPlayer
	if p.Invulnerable {
		color = RgbHealthInvuln
	}
	buf.SetFgOnly(x, y, '@', color, tcell.AttrBold)
}

var facingGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// FacingGlyph returns the arrow nearest to angle; angles grow clockwise on screen
func FacingGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return facingGlyphs[octant]
}
