package swipey

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/swipey/internal/core"
	"github.com/vovakirdan/swipey/internal/swipe"
)

// Visual characters for rendering
const (
	PlayerChar      = '●'
	CollectibleChar = '◆'
	AsteroidChar    = '▓'
	TrailChar       = '·'
	FocusTrailChar  = '•'
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.stars.Draw(dst, g.elapsed)

	switch g.phase {
	case PhaseTitle:
		g.renderTitle(dst)
	case PhasePlaying:
		g.renderWorld(dst)
		g.renderHUD(dst)
		if g.paused {
			dst.DrawTextCentered(dst.Height()/2, " PAUSED ", core.ColorBrightYellow)
			dst.DrawTextCentered(dst.Height()/2+1, " P to resume ", core.ColorGray)
		}
	case PhaseTransition:
		g.renderTransition(dst)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := fmt.Sprintf("Terminal too small: need %dx%d", MinScreenW, MinScreenH)
	dst.DrawTextCentered(dst.Height()/2, msg, core.ColorBrightRed)
}

// toCell converts a world position to the screen cell containing it.
func (g *Game) toCell(p core.Vec2) (int, int) {
	cw, ch := g.CellSize()
	return int(math.Floor(p.X / cw)), int(math.Floor(p.Y / ch))
}

// cellCenter returns the world position of a cell's centre.
func (g *Game) cellCenter(x, y int) core.Vec2 {
	cw, ch := g.CellSize()
	return core.V((float64(x)+0.5)*cw, (float64(y)+0.5)*ch)
}

func (g *Game) renderWorld(dst *core.Screen) {
	for _, a := range g.field.Asteroids() {
		g.drawAsteroid(dst, a)
	}
	g.drawCollectible(dst)
	g.drawTrail(dst)
	g.drawDisc(dst, g.player.Position(), g.player.BoundingRadius(), PlayerChar, core.ColorSkyBlue)
}

// drawAsteroid fills every cell whose centre lies inside the silhouette.
func (g *Game) drawAsteroid(dst *core.Screen, a *Asteroid) {
	poly := a.Vertices()
	reach := a.BoundingRadius() * 1.3
	x0, y0 := g.toCell(a.Position().Sub(core.V(reach, reach)))
	x1, y1 := g.toCell(a.Position().Add(core.V(reach, reach)))
	color := core.GreyShade(a.Shade())

	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if pointInPolygon(g.cellCenter(x, y), poly) {
				dst.SetColored(x, y, AsteroidChar, color)
				drawn = true
			}
		}
	}
	if !drawn {
		cx, cy := g.toCell(a.Position())
		dst.SetColored(cx, cy, AsteroidChar, color)
	}
}

// drawCollectible draws a diamond scaled by the pulse.
func (g *Game) drawCollectible(dst *core.Screen) {
	c := g.collectible
	size := c.BoundingRadius() * c.PulseScale()
	center := c.Position()
	x0, y0 := g.toCell(center.Sub(core.V(size, size)))
	x1, y1 := g.toCell(center.Add(core.V(size, size)))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := g.cellCenter(x, y).Sub(center)
			if math.Abs(d.X)+math.Abs(d.Y) <= size {
				dst.SetColored(x, y, CollectibleChar, core.ColorBrightGreen)
			}
		}
	}
	cx, cy := g.toCell(center)
	dst.SetColored(cx, cy, CollectibleChar, core.ColorBrightGreen)
}

// drawDisc fills cells whose centre lies within radius of center.
func (g *Game) drawDisc(dst *core.Screen, center core.Vec2, radius float64, r rune, c core.Color) {
	x0, y0 := g.toCell(center.Sub(core.V(radius, radius)))
	x1, y1 := g.toCell(center.Add(core.V(radius, radius)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if g.cellCenter(x, y).Dist(center) <= radius {
				dst.SetColored(x, y, r, c)
			}
		}
	}
	cx, cy := g.toCell(center)
	dst.SetColored(cx, cy, r, c)
}

// drawTrail shows the swipe being captured, with the focused tail highlighted.
func (g *Game) drawTrail(dst *core.Screen) {
	if !g.processor.Active() {
		return
	}
	points := g.processor.Points()
	focusStart := g.processor.FocusStart()
	for i, p := range points {
		x, y := g.toCell(p)
		if i >= focusStart {
			dst.SetColored(x, y, FocusTrailChar, core.ColorBrightYellow)
		} else {
			dst.SetColored(x, y, TrailChar, core.ColorDimGray)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := dst.Width()

	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %d", g.score), core.ColorBrightWhite)
	level := fmt.Sprintf("ROUND %d", g.level)
	dst.DrawTextColored((w-len(level))/2, 0, level, core.ColorGray)

	timer := fmt.Sprintf("%ds", int(math.Ceil(g.timeRemaining)))
	timerColor := core.ColorBrightWhite
	if g.timeRemaining < 10 {
		timerColor = core.ColorBrightRed
	}
	dst.DrawTextColored(w-len(timer)-1, 0, timer, timerColor)

	dst.DrawTextColored(1, dst.Height()-1, g.paramLine(), core.ColorGray)
}

// paramLine formats the tunable parameters for the bottom HUD row.
func (g *Game) paramLine() string {
	labels := map[string]string{
		swipe.ParamStrength:   "STR",
		swipe.ParamFocus:      "FOC",
		swipe.ParamSmoothness: "SMO",
	}
	parts := make([]string, 0, len(swipe.Names)+1)
	for _, name := range g.OfferedParams() {
		v, _ := g.params.Get(name)
		parts = append(parts, fmt.Sprintf("%s %s", labels[name], meter(v)))
	}
	parts = append(parts, "["+string(g.mode)+"]")
	return strings.Join(parts, "  ")
}

// meter draws a parameter value as a 10-slot bar.
func meter(v int) string {
	return strings.Repeat("■", v) + strings.Repeat("□", swipe.MaxValue-v)
}

func (g *Game) renderTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "S W I P E Y", core.ColorSkyBlue)
	dst.DrawTextCentered(mid-1, "The parameter optimization simulator", core.ColorGray)

	// A sample swipe arcing to the right
	arc := []int{2, 1, 0, 0, 1}
	left := dst.Width()/2 - 10
	for i, dy := range arc {
		for k := 0; k < 4; k++ {
			dst.SetColored(left+i*4+k, mid+2+dy, FocusTrailChar, core.ColorSkyBlue)
		}
	}
	dst.SetColored(left+len(arc)*4, mid+2+arc[len(arc)-1], '➤', core.ColorSkyBlue)
}

func (g *Game) renderTransition(dst *core.Screen) {
	title := fmt.Sprintf("ROUND %d COMPLETE!", g.level-1)
	dst.DrawTextCentered(1, title, core.ColorSkyBlue)
	dst.DrawTextCentered(2, fmt.Sprintf("Score %d", g.score), core.ColorBrightWhite)

	if len(g.buttons) > 0 {
		dst.DrawTextCentered(g.buttons[0].Rect.Y-2, "Choose one parameter adjustment", core.ColorGray)
	}

	for _, b := range g.buttons {
		color := core.ColorBrightGreen
		if b.Delta < 0 {
			color = core.ColorBrightRed
		}
		if !b.Enabled {
			color = core.ColorDarkGray
		}
		dst.DrawBox(b.Rect, color)
		lx := b.Rect.X + (b.Rect.W-len(b.Label))/2
		dst.DrawTextColored(lx, b.Rect.Y+1, b.Label, color)
	}

	for i := 0; i+1 < len(g.buttons); i += 2 {
		b := g.buttons[i+1]
		v, _ := g.params.Get(b.Param)
		dst.DrawTextColored(b.Rect.Right()+2, b.Rect.Y+1, fmt.Sprintf("%s %d", b.Param, v), core.ColorGray)
	}

	dst.DrawTextCentered(dst.Height()-2, "Click a button (or use its key) to adjust and continue", core.ColorGray)
}

// pointInPolygon is the even-odd ray casting test.
func pointInPolygon(p core.Vec2, poly []core.Vec2) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
