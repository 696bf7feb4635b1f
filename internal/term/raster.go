// Package term hosts a maze session in a terminal using tcell.
package term

import (
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Wicked-Maze/internal/game"
	"github.com/Garsondee/Wicked-Maze/internal/maze"
)

// Canvas pixels per terminal column and row. Rows are twice as tall as
// columns are wide, so a square canvas stays roughly square on screen.
const (
	colPx = 6.0
	rowPx = 12.0
)

// Glyph is one terminal cell.
type Glyph struct {
	Ch    rune
	Style tcell.Style
}

// Raster is an off-screen character grid that implements game.RenderSink.
type Raster struct {
	W, H  int
	cells []Glyph
	bg    tcell.Color
}

// NewRaster allocates a w x h character grid.
func NewRaster(w, h int) *Raster {
	return &Raster{W: w, H: h, cells: make([]Glyph, w*h)}
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// toCell maps a canvas point to a terminal cell.
func toCell(p maze.Point) (int, int) {
	return int(math.Floor(p.X / colPx)), int(math.Floor(p.Y / rowPx))
}

// Set writes a glyph, ignoring out-of-range coordinates.
func (r *Raster) Set(x, y int, ch rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		return
	}
	r.cells[x+y*r.W] = Glyph{Ch: ch, Style: st}
}

// At returns the glyph at (x, y), or a zero glyph out of range.
func (r *Raster) At(x, y int) Glyph {
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		return Glyph{}
	}
	return r.cells[x+y*r.W]
}

// Text writes s starting at (x, y).
func (r *Raster) Text(x, y int, s string, st tcell.Style) {
	for i, ch := range []rune(s) {
		r.Set(x+i, y, ch, st)
	}
}

func (r *Raster) style() tcell.Style {
	return tcell.StyleDefault.Background(r.bg)
}

// Clear fills the grid with blanks on bg.
func (r *Raster) Clear(bg color.Color) {
	r.bg = tcellColor(bg)
	for i := range r.cells {
		r.cells[i] = Glyph{Ch: ' ', Style: r.style()}
	}
}

// DrawWall draws a wall as a run of box characters. Crossing runs become
// junctions. Labels are too wide for the grid and are skipped.
func (r *Raster) DrawWall(w game.WallSprite) {
	st := r.style().Foreground(tcell.ColorWhite)
	if w.Flash {
		st = r.style().Foreground(tcell.ColorYellow).Bold(true)
	}
	x0, y0 := toCell(w.A)
	x1, y1 := toCell(w.B)
	if y0 == y1 || w.A.Y == w.B.Y {
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			r.Set(x, y0, junction(r.At(x, y0).Ch, '─'), st)
		}
		return
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		r.Set(x0, y, junction(r.At(x0, y).Ch, '│'), st)
	}
}

func junction(existing, ch rune) rune {
	switch {
	case existing == '┼':
		return '┼'
	case existing == '─' && ch == '│', existing == '│' && ch == '─':
		return '┼'
	default:
		return ch
	}
}

// DrawExit writes EXIT centred on the exit cell.
func (r *Raster) DrawExit(at maze.Point, _ float64) {
	x, y := toCell(at)
	r.Text(x-1, y, "EXIT", r.style().Foreground(tcell.ColorHotPink).Bold(true))
}

// DrawTrail dots each trail point.
func (r *Raster) DrawTrail(points []maze.Point, _ float64) {
	st := r.style().Foreground(tcell.ColorLightGray)
	for _, p := range points {
		x, y := toCell(p)
		r.Set(x, y, '·', st)
	}
}

// DrawPlayer marks the ball.
func (r *Raster) DrawPlayer(at maze.Point, _ float64) {
	x, y := toCell(at)
	r.Set(x, y, '●', r.style().Foreground(tcell.ColorWhite).Bold(true))
}

// Flush copies the grid to s.
func (r *Raster) Flush(s tcell.Screen) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			g := r.cells[x+y*r.W]
			ch := g.Ch
			if ch == 0 {
				ch = ' '
			}
			s.SetContent(x, y, ch, nil, g.Style)
		}
	}
}

// String returns the grid's runes, one line per row.
func (r *Raster) String() string {
	var sb strings.Builder
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			ch := r.cells[x+y*r.W].Ch
			if ch == 0 {
				ch = ' '
			}
			sb.WriteRune(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
