package render

import (
	"strconv"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/SrWilson89/doom/parameter"
)

// Overlay shows pickup notifications and the damage flash over the arena
// It implements the game's Notifier and is safe to call from the tick goroutine
type Overlay struct {
	mu sync.Mutex

	message    string
	color      RGB
	messageEnd time.Time
	flashEnd   time.Time

	now func() time.Time
}

// NewOverlay creates an overlay on wall-clock time
func NewOverlay() *Overlay {
	return &Overlay{now: time.Now}
}

// Notify replaces the current message for NotifyDuration
func (o *Overlay) Notify(message string, color RGB) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.message = message
	o.color = color
	o.messageEnd = o.now().Add(parameter.NotifyDuration)
}

// DamageFlash tints the viewport red for DamageFlashDuration
func (o *Overlay) DamageFlash() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.flashEnd = o.now().Add(parameter.DamageFlashDuration)
}

// Message returns the visible message, if any
func (o *Overlay) Message() (string, RGB, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.message == "" || !o.now().Before(o.messageEnd) {
		return "", RGB{}, false
	}
	return o.message, o.color, true
}

// FlashAlpha returns the current flash strength, fading from 0.5 to 0
func (o *Overlay) FlashAlpha() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	left := o.flashEnd.Sub(o.now())
	if left <= 0 {
		return 0
	}
	return 0.5 * float64(left) / float64(parameter.DamageFlashDuration)
}

func (o *Overlay) Render(ctx RenderContext, buf *RenderBuffer) {
	if alpha := o.FlashAlpha(); alpha > 0 {
		for vy := range ctx.ViewportHeight {
			for vx := range ctx.ViewportWidth {
				sx, sy := vx+ctx.GameXOffset, vy+ctx.GameYOffset
				// Border only keeps the arena readable
				if vx == 0 || vy == 0 || vx == ctx.ViewportWidth-1 || vy == ctx.ViewportHeight-1 {
					buf.BlendBg(sx, sy, RgbFlash, min(1, alpha*2))
				} else {
					buf.BlendBg(sx, sy, RgbFlash, alpha/3)
				}
			}
		}
	}

	if msg, color, ok := o.Message(); ok {
		y := ctx.GameYOffset + ctx.ViewportHeight/3
		drawCentered(buf, ctx.ScreenWidth, y, msg, color, tcell.AttrBold)
	}
}

type textLine struct {
	text  string
	color RGB
}

// EndScreen draws the pause banner and the final tally once the session ends
type EndScreen struct{}

func NewEndScreen() *EndScreen {
	return &EndScreen{}
}

func (e *EndScreen) Render(ctx RenderContext, buf *RenderBuffer) {
	mid := ctx.GameYOffset + ctx.ViewportHeight/2
	if ctx.Result == nil {
		if ctx.Paused {
			drawCentered(buf, ctx.ScreenWidth, mid, "PAUSED  p resume  q quit", RgbHealthWarning, tcell.AttrBold)
		}
		return
	}

	res := ctx.Result
	title, color := "YOU DIED", RgbHealthCritical
	if res.Victory {
		title, color = "VICTORY! YOU SURVIVED", RgbHealthGood
	}

	lines := []textLine{
		{title, color},
		{"", RgbHUDText},
		{"SCORE " + strconv.Itoa(res.Score) + "   KILLS " + strconv.Itoa(res.Kills) + "   WAVE " + strconv.Itoa(res.Wave), RgbHUDText},
		{"TIME " + FormatClock(res.Elapsed), RgbHUDLabel},
		{"BEST " + strconv.Itoa(res.BestScore), RgbHUDText},
	}
	if res.NewRecord {
		lines = append(lines, textLine{"NEW RECORD!", RgbRecord})
	}
	lines = append(lines, textLine{"r restart   q quit", RgbHUDLabel})

	top := mid - len(lines)/2
	for i, l := range lines {
		y := top + i
		for x := 0; x < ctx.ScreenWidth; x++ {
			buf.BlendBg(x, y, RgbBlack, 0.7)
		}
		drawCentered(buf, ctx.ScreenWidth, y, l.text, l.color, tcell.AttrBold)
	}
}

func drawCentered(buf *RenderBuffer, width, y int, s string, fg RGB, attrs tcell.AttrMask) {
	x := max(0, (width-runewidth.StringWidth(s))/2)
	buf.DrawText(x, y, s, fg, attrs)
}
