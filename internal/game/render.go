package game

import (
	"image/color"
	"math"

	"github.com/Garsondee/Wicked-Maze/internal/maze"
)

// WallSprite is one wall edge plus the word drawn just inside it.
type WallSprite struct {
	Cell     int
	Side     maze.Side
	A, B     maze.Point // wall endpoints in canvas space
	Label    string
	LabelAt  maze.Point // label centre, inset from the wall into the cell
	Rotation float64    // radians; vertical walls are rotated a quarter turn
	TextSize float64
	Flash    bool // drawn as part of the post-reset flash
}

// RenderSink is a drawing surface supplied by the host.
type RenderSink interface {
	Clear(bg color.Color)
	DrawWall(w WallSprite)
	DrawExit(at maze.Point, textSize float64)
	DrawTrail(points []maze.Point, diameter float64)
	DrawPlayer(at maze.Point, diameter float64)
}

// Render emits the frame's draw commands. Nothing is drawn once won; hosts
// show their own win screen.
func (s *Session) Render(dst RenderSink) {
	if s.state == StateWon {
		return
	}
	dst.Clear(Background)
	for _, w := range s.WallSprites() {
		dst.DrawWall(w)
	}
	dst.DrawExit(s.ExitCenter(), math.Max(s.mode.LabelSize()*0.8, 10))
	if s.mode == ModeDesktop {
		if tr := s.control.Trail(); len(tr) > 1 {
			dst.DrawTrail(tr, s.player.Diameter)
		}
	}
	dst.DrawPlayer(s.player.Pos(), s.player.Diameter)
}

// WallSprites lists every wall to draw this frame. Each cell draws its own
// side of a shared wall, so labels appear on both faces. During the flash
// the same walls are drawn, marked Flash; carved passages stay open.
func (s *Session) WallSprites() []WallSprite {
	flash := s.Flashing()
	w := s.geo.CellSize
	inset := w * wallOffsetFactor
	size := s.mode.LabelSize()

	out := make([]WallSprite, 0, s.grid.Len()*2)
	for idx := range s.grid.Cells {
		c := &s.grid.Cells[idx]
		x0, y0 := float64(c.I)*w, float64(c.J)*w
		x1, y1 := x0+w, y0+w
		mx, my := x0+w/2, y0+w/2
		for _, side := range maze.Sides {
			if !c.Walls[side] {
				continue
			}
			sp := WallSprite{
				Cell:     idx,
				Side:     side,
				Label:    c.Labels[side],
				TextSize: size,
				Flash:    flash,
			}
			switch side {
			case maze.Top:
				sp.A, sp.B = maze.Point{X: x0, Y: y0}, maze.Point{X: x1, Y: y0}
				sp.LabelAt = maze.Point{X: mx, Y: y0 + inset}
			case maze.Right:
				sp.A, sp.B = maze.Point{X: x1, Y: y0}, maze.Point{X: x1, Y: y1}
				sp.LabelAt = maze.Point{X: x1 - inset, Y: my}
				sp.Rotation = math.Pi / 2
			case maze.Bottom:
				sp.A, sp.B = maze.Point{X: x0, Y: y1}, maze.Point{X: x1, Y: y1}
				sp.LabelAt = maze.Point{X: mx, Y: y1 - inset}
			case maze.Left:
				sp.A, sp.B = maze.Point{X: x0, Y: y0}, maze.Point{X: x0, Y: y1}
				sp.LabelAt = maze.Point{X: x0 + inset, Y: my}
				sp.Rotation = -math.Pi / 2
			}
			out = append(out, sp)
		}
	}
	return out
}
