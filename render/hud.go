package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/engine"
)

// FormatClock renders remaining time as m:ss, flooring partial seconds
func FormatClock(d time.Duration) string {
	d = max(0, d)
	return fmt.Sprintf("%d:%02d", int(d/time.Minute), int(d%time.Minute/time.Second))
}

// HealthText is the displayed health value; invulnerability shows ∞
func HealthText(p *component.PlayerComponent) string {
	if p.Invulnerable {
		return "∞"
	}
	return strconv.Itoa(p.Health)
}

var buffLabels = [component.PowerupTypeCount]string{
	component.PowerupDamage:          "BERSERK",
	component.PowerupSpeed:           "SPEED",
	component.PowerupFireRate:        "CHAINGUN",
	component.PowerupInvulnerability: "INVULN",
	component.PowerupExplosive:       "BFG",
	component.PowerupDoubleShot:      "DOUBLE",
}

// Buff is one active timed effect as shown in the HUD
type Buff struct {
	Label     string
	Color     RGB
	Remaining time.Duration
}

// ActiveBuffs lists running effects in activation order
func ActiveBuffs(w *engine.World) []Buff {
	buffs := make([]Buff, 0, len(w.Effects))
	for _, e := range w.Effects {
		if !e.Type.Valid() {
			continue
		}
		buffs = append(buffs, Buff{
			Label:     buffLabels[e.Type],
			Color:     PowerupColor(e.Type),
			Remaining: max(0, e.Expires-w.Now()),
		})
	}
	return buffs
}

// HUDRenderer draws the status row and the active buff row above the arena
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

func (r *HUDRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	if ctx.World == nil || ctx.ScreenHeight < 1 {
		return
	}
	w := ctx.World
	p := &w.Player

	buf.FillRow(0, RgbHUDBg)
	x := buf.DrawText(1, 0, "HEALTH ", RgbHUDLabel, tcell.AttrNone)
	x = buf.DrawText(x, 0, HealthText(p), HealthColor(p.Health, p.Invulnerable), tcell.AttrBold)

	fields := []struct{ label, value string }{
		{"SCORE", strconv.Itoa(w.State.Score)},
		{"TIME", FormatClock(w.RemainingTime())},
		{"KILLS", strconv.Itoa(w.State.Kills)},
		{"WAVE", strconv.Itoa(w.State.Wave)},
		{"BEST", strconv.Itoa(max(ctx.Best, w.State.Score))},
	}
	for _, f := range fields {
		x = buf.DrawText(x+2, 0, f.label+" ", RgbHUDLabel, tcell.AttrNone)
		x = buf.DrawText(x, 0, f.value, RgbHUDText, tcell.AttrBold)
	}

	if ctx.Paused {
		buf.DrawText(max(x+2, ctx.ScreenWidth-8), 0, "PAUSED", RgbHealthWarning, tcell.AttrBold|tcell.AttrBlink)
	}

	if ctx.ScreenHeight < 2 {
		return
	}
	buf.FillRow(1, RgbHUDBg)
	x = 1
	for _, b := range ActiveBuffs(w) {
		label := fmt.Sprintf("%s %.1fs", b.Label, b.Remaining.Seconds())
		x = buf.DrawText(x, 1, label, b.Color, tcell.AttrBold) + 2
	}
}
