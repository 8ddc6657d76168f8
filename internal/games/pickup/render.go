package pickup

import (
	"fmt"
	"math"

	"github.com/vovakirdan/pickup-arena/internal/core"
	"github.com/vovakirdan/pickup-arena/internal/session"
)

// Visual characters for rendering
const (
	PlayerChar   = 'O'
	GoodChar     = '+'
	BadChar      = 'x'
	hudHeight    = 2
	minScreenW   = 30
	minScreenH   = 12
	overlayRows  = 3
	overlayWidth = 24
)

// FormatClock renders seconds as MM:SS, rounding down.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Render draws the HUD, the arena and, once the session is over, the result.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Screen too small!", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	g.renderHUD(dst)

	field := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	dst.DrawBox(field, core.ColorGray)
	inner := core.NewRect(field.X+1, field.Y+1, field.W-2, field.H-2)

	for _, it := range g.arena.Items {
		if it.Collected {
			continue
		}
		x, y := g.toScreen(it.Position, inner)
		if it.Polarity == session.Good {
			dst.SetColor(x, y, GoodChar, core.ColorBrightGreen)
		} else {
			dst.SetColor(x, y, BadChar, core.ColorRed)
		}
	}

	if g.body.Visible {
		x, y := g.toScreen(g.body.Pos, inner)
		color := core.ColorBrightWhite
		if g.ctrl.State().SpeedBoosted {
			color = core.ColorCyan
		}
		dst.SetColor(x, y, PlayerChar, color)
	}

	if g.paused {
		dst.DrawTextCentered(inner.Y+inner.H/2, " PAUSED ", core.ColorYellow)
	}

	g.renderResult(dst, inner)
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.ctrl.State()

	dst.DrawText(1, 0, fmt.Sprintf("Count: %d", s.Score))

	clock := "Time: " + FormatClock(s.TimeRemaining)
	clockColor := core.ColorDefault
	if s.TimeRemaining < 10 && s.Phase == session.PhasePlaying {
		clockColor = core.ColorBrightRed
	}
	dst.DrawTextColor((dst.Width()-len(clock))/2, 0, clock, clockColor)

	items := fmt.Sprintf("Items: %d/%d", s.ItemsCollected, s.TotalItems)
	dst.DrawText(dst.Width()-len(items)-1, 0, items)

	if s.SpeedBoosted {
		dst.DrawTextColor(1, 1, "BOOST", core.ColorCyan)
	}
	if g.flash > 0 {
		if g.lastPolarity == session.Good {
			dst.DrawTextColor(8, 1, "+1", core.ColorBrightGreen)
		} else {
			dst.DrawTextColor(8, 1, "-1", core.ColorBrightRed)
		}
	}
}

func (g *Game) renderResult(dst *core.Screen, inner core.Rect) {
	phase := g.ctrl.Phase()
	if !phase.Terminal() {
		return
	}

	y := inner.Y + (inner.H-overlayRows)/2
	w := min(overlayWidth, inner.W)
	dst.FillRect(core.NewRect((dst.Width()-w)/2, y, w, overlayRows), ' ')
	if phase == session.PhaseWon {
		dst.DrawTextCentered(y, " YOU WIN! ", core.ColorBrightGreen)
	} else {
		dst.DrawTextCentered(y, " YOU LOSE ", core.ColorBrightRed)
	}
	dst.DrawTextCentered(y+1, fmt.Sprintf(" Final count: %d ", g.ctrl.State().Score), core.ColorDefault)
	dst.DrawTextCentered(y+2, " R: Restart  Q: Quit ", core.ColorGray)
}

// toScreen maps a ground-plane position into the cells of inner.
func (g *Game) toScreen(p core.Point2D, inner core.Rect) (int, int) {
	lo, hi := g.cfg.Bounds()
	fx := (p.X - lo.X) / (hi.X - lo.X)
	fz := (p.Z - lo.Z) / (hi.Z - lo.Z)
	x := inner.X + int(math.Round(fx*float64(inner.W-1)))
	y := inner.Y + int(math.Round(fz*float64(inner.H-1)))
	return core.Clamp(x, inner.X, inner.Right()-1), core.Clamp(y, inner.Y, inner.Bottom()-1)
}
