package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Wicked-Maze/internal/game"
)

// padHeight is the strip reserved under the canvas for the arrow pad in
// mobile mode.
const padHeight = 120

type arrowButton struct {
	dir        game.Direction
	x, y, w, h float64
}

func (b arrowButton) contains(px, py float64) bool {
	return px >= b.x && px < b.x+b.w && py >= b.y && py < b.y+b.h
}

// arrowPad is the on-screen direction pad: up centred on top, then left,
// down and right in a row.
type arrowPad struct {
	buttons [4]arrowButton
}

// newArrowPad lays the pad out in the strip at (x, y) of the given width.
func newArrowPad(x, y, width float64) arrowPad {
	size := (padHeight - 12) / 2.0
	gap := 4.0
	cx := x + width/2
	row2 := y + size + 2*gap
	return arrowPad{buttons: [4]arrowButton{
		{dir: game.DirUp, x: cx - size/2, y: y + gap, w: size, h: size},
		{dir: game.DirLeft, x: cx - size/2 - gap - size, y: row2, w: size, h: size},
		{dir: game.DirDown, x: cx - size/2, y: row2, w: size, h: size},
		{dir: game.DirRight, x: cx + size/2 + gap, y: row2, w: size, h: size},
	}}
}

// hit returns the direction under (px, py).
func (p arrowPad) hit(px, py float64) (game.Direction, bool) {
	for _, b := range p.buttons {
		if b.contains(px, py) {
			return b.dir, true
		}
	}
	return 0, false
}

// draw renders the pad, lighting held directions.
func (p arrowPad) draw(screen *ebiten.Image, held game.Intents) {
	for _, b := range p.buttons {
		fill := color.RGBA{R: 30, G: 24, B: 150, A: 255}
		if held.Held(b.dir) {
			fill = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		vector.FillRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), fill, false)
		vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, color.White, false)
		drawArrow(screen, b, held.Held(b.dir))
	}
}

func drawArrow(screen *ebiten.Image, b arrowButton, lit bool) {
	clr := color.Color(color.White)
	if lit {
		clr = game.Background
	}
	cx, cy := float32(b.x+b.w/2), float32(b.y+b.h/2)
	r := float32(b.w / 4)
	var tip, l, rt [2]float32
	switch b.dir {
	case game.DirUp:
		tip, l, rt = [2]float32{cx, cy - r}, [2]float32{cx - r, cy + r}, [2]float32{cx + r, cy + r}
	case game.DirDown:
		tip, l, rt = [2]float32{cx, cy + r}, [2]float32{cx + r, cy - r}, [2]float32{cx - r, cy - r}
	case game.DirLeft:
		tip, l, rt = [2]float32{cx - r, cy}, [2]float32{cx + r, cy + r}, [2]float32{cx + r, cy - r}
	case game.DirRight:
		tip, l, rt = [2]float32{cx + r, cy}, [2]float32{cx - r, cy - r}, [2]float32{cx - r, cy + r}
	}
	vector.StrokeLine(screen, tip[0], tip[1], l[0], l[1], 3, clr, true)
	vector.StrokeLine(screen, l[0], l[1], rt[0], rt[1], 3, clr, true)
	vector.StrokeLine(screen, rt[0], rt[1], tip[0], tip[1], 3, clr, true)
}

// intentTarget receives direction presses; *game.Session satisfies it.
type intentTarget interface {
	OnKeyDown(d game.Direction)
	OnKeyUp(d game.Direction)
}

// syncIntents presses and releases directions so that t ends up holding
// exactly want, given that it currently holds have.
func syncIntents(t intentTarget, have, want game.Intents) {
	for _, d := range game.Directions {
		switch {
		case want.Held(d) && !have.Held(d):
			t.OnKeyDown(d)
		case !want.Held(d) && have.Held(d):
			t.OnKeyUp(d)
		}
	}
}
