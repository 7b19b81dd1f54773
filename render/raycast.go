package render

import (
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/vmath"
)

// CastRay returns the distance to the nearest wall along angle from origin
func CastRay(origin vmath.Vec2, angle float64, walls []vmath.Segment) (float64, bool) {
	best, hit := math.Inf(1), false
	for _, s := range walls {
		if d, _, ok := vmath.RaySegment(origin, angle, s); ok && d < best {
			best, hit = d, true
		}
	}
	return best, hit
}

// WallHeight projects a wall at perpendicular distance onto a column of rows
func WallHeight(dist float64, rows int) int {
	if dist <= 0 {
		return rows
	}
	h := int(parameter.RaycastWallSize / dist * float64(rows) / parameter.ArenaHeight)
	return min(rows, max(0, h))
}

var shadeGlyphs = []rune{'█', '▓', '▒', '░'}

// RaycastRenderer draws a first-person view of the arena, one ray per column
// Enemies and powerups are projected as sprites occluded by the column depth
type RaycastRenderer struct {
	depth   []float64
	sprites []sprite
}

type sprite struct {
	pos   vmath.Vec2
	dist  float64
	glyph rune
	color RGB
	scale float64
}

func NewRaycastRenderer() *RaycastRenderer {
	return &RaycastRenderer{}
}

func (r *RaycastRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	if !ctx.ViewportUsable() {
		return
	}
	w := ctx.World
	p := &w.Player
	vw, vh := ctx.ViewportWidth, ctx.ViewportHeight
	fov := parameter.RaycastFOV

	r.depth = slices.Grow(r.depth[:0], vw)[:vw]

	for col := range vw {
		rayAngle := p.Angle - fov/2 + fov*(float64(col)+0.5)/float64(vw)
		dist, ok := CastRay(p.Pos, rayAngle, w.Walls)
		if !ok {
			dist = parameter.RaycastMaxDepth
		}
		// Perpendicular distance removes fish-eye
		dist = min(parameter.RaycastMaxDepth, dist*math.Cos(rayAngle-p.Angle))
		r.depth[col] = dist

		wallH := WallHeight(dist, vh)
		top := (vh - wallH) / 2
		fade := dist / parameter.RaycastMaxDepth
		glyph := shadeGlyphs[min(len(shadeGlyphs)-1, int(fade*float64(len(shadeGlyphs))))]
		wallColor := Scale(RgbWall, 1-0.85*fade)

		sx := col + ctx.GameXOffset
		for row := range vh {
			sy := row + ctx.GameYOffset
			switch {
			case row < top:
				buf.SetBgOnly(sx, sy, RgbCeiling)
			case row < top+wallH:
				buf.SetWithBg(sx, sy, glyph, wallColor, RgbCeiling)
			default:
				buf.SetBgOnly(sx, sy, RgbGround)
			}
		}
	}

	r.collectSprites(w.Player.Pos, ctx)
	for _, s := range r.sprites {
		r.drawSprite(ctx, buf, p, s)
	}
}

// collectSprites gathers visible entities ordered far to near
func (r *RaycastRenderer) collectSprites(eye vmath.Vec2, ctx RenderContext) {
	r.sprites = r.sprites[:0]
	ctx.World.Enemies.Each(func(_ int, e *component.EnemyComponent) {
		if e.Dead() {
			return
		}
		r.sprites = append(r.sprites, sprite{
			pos:   e.Pos,
			dist:  vmath.V2Dist(eye, e.Pos),
			glyph: 'M',
			color: Blend(RgbEnemyHurt, RgbEnemy, e.HealthFraction()),
			scale: 0.8,
		})
	})
	ctx.World.Powerups.Each(func(_ int, pu *component.PowerupComponent) {
		r.sprites = append(r.sprites, sprite{
			pos:   pu.Pos,
			dist:  vmath.V2Dist(eye, pu.Pos),
			glyph: PowerupGlyph(pu.Type),
			color: PowerupColor(pu.Type),
			scale: 0.4,
		})
	})
	slices.SortFunc(r.sprites, func(a, b sprite) int {
		switch {
		case a.dist > b.dist:
			return -1
		case a.dist < b.dist:
			return 1
		}
		return 0
	})
}

func (r *RaycastRenderer) drawSprite(ctx RenderContext, buf *RenderBuffer, p *component.PlayerComponent, s sprite) {
	if s.dist < 1 || s.dist > parameter.RaycastMaxDepth {
		return
	}
	fov := parameter.RaycastFOV
	d := vmath.V2Sub(s.pos, p.Pos)
	rel := vmath.NormalizeAngle(math.Atan2(d.Y, d.X) - p.Angle)
	if math.Abs(rel) > fov/2+0.2 {
		return
	}

	vw, vh := ctx.ViewportWidth, ctx.ViewportHeight
	perp := s.dist * math.Cos(rel)
	size := max(1, int(float64(WallHeight(perp, vh))*s.scale))
	center := int((rel/fov + 0.5) * float64(vw))
	bottom := (vh + WallHeight(perp, vh)) / 2
	shade := Scale(s.color, 1-0.7*perp/parameter.RaycastMaxDepth)

	for dx := -size / 2; dx <= size/2; dx++ {
		col := center + dx
		if col < 0 || col >= vw || r.depth[col] <= perp {
			continue
		}
		for dy := 0; dy < size; dy++ {
			row := bottom - 1 - dy
			if row < 0 || row >= vh {
				continue
			}
			buf.SetFgOnly(col+ctx.GameXOffset, row+ctx.GameYOffset, s.glyph, shade, tcell.AttrBold)
		}
	}
}

// Minimap draws a small top-down inset in the viewport's top-right corner
type Minimap struct {
	Width, Height int
}

func NewMinimap(width, height int) *Minimap {
	return &Minimap{Width: width, Height: height}
}

func (m *Minimap) Render(ctx RenderContext, buf *RenderBuffer) {
	if !ctx.ViewportUsable() || ctx.ViewportWidth < m.Width*2 || ctx.ViewportHeight < m.Height*2 {
		return
	}
	inset := ctx
	inset.GameXOffset = ctx.GameXOffset + ctx.ViewportWidth - m.Width
	inset.ViewportWidth = m.Width
	inset.ViewportHeight = m.Height

	NewArenaRenderer().Render(inset, buf)
	NewEntityRenderer().Render(inset, buf)
	NewPlayerRenderer().Render(inset, buf)
}
