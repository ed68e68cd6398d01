package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"pong/engine"
	"pong/options"
)

// Renderer draws the world onto a tcell screen once per frame.
//
// Field coordinates are world units; the renderer maps them onto the
// terminal cell grid, scaling to the current screen size so a resize just
// changes the mapping. Cells are roughly twice as tall as wide, which the
// uniform scale absorbs well enough for a paddle game.
type Renderer struct {
	screen tcell.Screen
	opts   options.Options
	font   *Font
}

// NewRenderer creates a renderer. A nil font disables the score display.
func NewRenderer(screen tcell.Screen, opts options.Options, font *Font) *Renderer {
	return &Renderer{screen: screen, opts: opts, font: font}
}

// Draw renders one frame: field background, paddles, ball, score text
func (r *Renderer) Draw(world *engine.World) {
	r.screen.Clear()

	screenW, screenH := r.screen.Size()
	fieldW := screenW - r.opts.Game.X
	fieldH := screenH - r.opts.Game.Y
	if fieldW < 1 || fieldH < 1 {
		r.screen.Show()
		return
	}

	sx := float64(fieldW) / r.opts.Game.Width
	sy := float64(fieldH) / r.opts.Game.Height

	bg := tcell.StyleDefault.Background(r.opts.Game.Background)
	for y := 0; y < fieldH; y++ {
		for x := 0; x < fieldW; x++ {
			r.screen.SetContent(r.opts.Game.X+x, r.opts.Game.Y+y, ' ', nil, bg)
		}
	}

	for _, e := range world.Paddles.Entities() {
		paddle, _ := world.Paddles.Get(e)
		pos, ok := world.Positions.Get(e)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.
			Foreground(r.opts.ColorFor(paddle.Player)).
			Background(r.opts.Game.Background)
		r.fillBox(pos.X, pos.Y, r.opts.Player.Width, r.opts.Player.Height, sx, sy, style)
	}

	for _, e := range world.Balls.Entities() {
		pos, ok := world.Positions.Get(e)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.
			Foreground(r.opts.Ball.Color).
			Background(r.opts.Game.Background)
		r.fillBox(pos.X, pos.Y, r.opts.Ball.Width, r.opts.Ball.Height, sx, sy, style)
	}

	if r.font != nil && r.opts.ScoreDisplay != nil {
		r.drawScore(world, fieldW)
	}

	r.screen.Show()
}

// fillBox fills the cell range covered by a world-space box centered at
// (cx,cy). A box always occupies at least one cell so small entities stay
// visible at low resolutions.
func (r *Renderer) fillBox(cx, cy, w, h, sx, sy float64, style tcell.Style) {
	x0 := int((cx - w/2) * sx)
	x1 := int((cx + w/2) * sx)
	y0 := int((cy - h/2) * sy)
	y1 := int((cy + h/2) * sy)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(r.opts.Game.X+x, r.opts.Game.Y+y, '█', nil, style)
		}
	}
}

// drawScore renders the score text top-center in the banner font
func (r *Renderer) drawScore(world *engine.World, fieldW int) {
	entities := world.ScoreTexts.Entities()
	if len(entities) == 0 {
		return
	}
	text, _ := world.ScoreTexts.Get(entities[0])

	rows := r.font.Render(fmt.Sprintf("%d:%d", text.Left, text.Right))
	style := tcell.StyleDefault.
		Foreground(r.opts.ScoreDisplay.Color).
		Background(r.opts.Game.Background)

	for dy, row := range rows {
		startX := r.opts.Game.X + (fieldW-len(row))/2
		for dx, c := range row {
			if c == ' ' {
				continue
			}
			r.screen.SetContent(startX+dx, r.opts.Game.Y+1+dy, '█', nil, style)
		}
	}
}
