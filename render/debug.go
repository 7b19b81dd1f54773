package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/SrWilson89/doom/status"
)

// DebugRenderer draws the telemetry line on the bottom screen row
type DebugRenderer struct {
	reg *status.Registry
}

func NewDebugRenderer(reg *status.Registry) *DebugRenderer {
	return &DebugRenderer{reg: reg}
}

func (r *DebugRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	if r.reg == nil || ctx.ScreenHeight <= ctx.GameYOffset {
		return
	}
	y := ctx.ScreenHeight - 1
	buf.FillRow(y, RgbHUDBg)
	buf.DrawText(0, y, r.reg.Line(), RgbHUDLabel, tcell.AttrDim)
}
