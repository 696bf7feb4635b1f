package game

import (
	"image/color"
	"testing"

	"github.com/Garsondee/Wicked-Maze/internal/maze"
)

// recordSink counts draw calls.
type recordSink struct {
	clears   []color.Color
	walls    []WallSprite
	exitSize float64
	exits    int
	trails   int
	players  int
}

func (r *recordSink) Clear(bg color.Color) { r.clears = append(r.clears, bg) }
func (r *recordSink) DrawWall(w WallSprite) { r.walls = append(r.walls, w) }
func (r *recordSink) DrawExit(_ maze.Point, size float64) { r.exits++; r.exitSize = size }
func (r *recordSink) DrawTrail(_ []maze.Point, _ float64) { r.trails++ }
func (r *recordSink) DrawPlayer(_ maze.Point, _ float64) { r.players++ }

func presentWalls(g *maze.Grid) int {
	n := 0
	for _, c := range g.Cells {
		for _, w := range c.Walls {
			if w {
				n++
			}
		}
	}
	return n
}

func TestRender_DesktopFrame(t *testing.T) {
	s := newTestSession(t)
	var rs recordSink
	s.Render(&rs)

	if len(rs.clears) != 1 || rs.clears[0] != Background {
		t.Fatalf("expected one clear with the background colour, got %v", rs.clears)
	}
	if len(rs.walls) != presentWalls(s.Grid()) {
		t.Fatalf("drew %d walls, want %d", len(rs.walls), presentWalls(s.Grid()))
	}
	if rs.exits != 1 || rs.exitSize != 20 {
		t.Fatalf("exit drawn %d times at size %.0f, want once at 20", rs.exits, rs.exitSize)
	}
	if rs.players != 1 || rs.trails != 0 {
		t.Fatalf("players=%d trails=%d, want 1/0", rs.players, rs.trails)
	}
	for _, w := range rs.walls {
		if w.Label == "" || w.TextSize != 25 || w.Flash {
			t.Fatalf("unexpected sprite %+v", w)
		}
	}
}

func TestRender_TrailOnlyWhileDragging(t *testing.T) {
	s := newTestSession(t)
	s.OnPointerDown(30, 30)
	s.OnPointerMove(35, 30)
	var rs recordSink
	s.Render(&rs)
	if rs.trails != 1 {
		t.Fatalf("expected the drag trail to be drawn, got %d", rs.trails)
	}
}

func TestRender_MobileSizes(t *testing.T) {
	s := newTestSession(t, WithCanvas(300, 300))
	var rs recordSink
	s.Render(&rs)
	if rs.exitSize != 12 {
		t.Fatalf("mobile exit size = %.0f, want 12", rs.exitSize)
	}
	if rs.walls[0].TextSize != 15 {
		t.Fatalf("mobile label size = %.0f, want 15", rs.walls[0].TextSize)
	}
}

func TestRender_FlashKeepsPassagesOpen(t *testing.T) {
	s := newTestSession(t)
	s.Reset()
	present := 0
	for _, c := range s.Grid().Cells {
		for _, side := range maze.Sides {
			if c.Walls[side] {
				present++
			}
		}
	}
	var rs recordSink
	s.Render(&rs)
	if len(rs.walls) != present || present == 4*s.Grid().Len() {
		t.Fatalf("flash drew %d walls, want the %d present ones", len(rs.walls), present)
	}
	for _, w := range rs.walls {
		if !w.Flash {
			t.Fatal("every sprite should be marked as flashing")
		}
		if !s.Grid().Cells[w.Cell].Walls[w.Side] {
			t.Fatalf("flash drew carved side %s of cell %d", w.Side, w.Cell)
		}
	}
}

func TestRender_NothingOnceWon(t *testing.T) {
	s := newTestSession(t)
	exit := s.ExitCenter()
	s.player.X, s.player.Y = exit.X, exit.Y
	s.Tick()
	var rs recordSink
	s.Render(&rs)
	if len(rs.clears) != 0 || len(rs.walls) != 0 || rs.players != 0 {
		t.Fatal("won session should not draw")
	}
}

func TestWallSprites_LabelInset(t *testing.T) {
	s := newTestSession(t)
	for _, w := range s.WallSprites() {
		c := s.Grid().Cells[w.Cell]
		x0, y0 := float64(c.I)*60, float64(c.J)*60
		var want maze.Point
		switch w.Side {
		case maze.Top:
			want = maze.Point{X: x0 + 30, Y: y0 + 9}
		case maze.Right:
			want = maze.Point{X: x0 + 51, Y: y0 + 30}
		case maze.Bottom:
			want = maze.Point{X: x0 + 30, Y: y0 + 51}
		case maze.Left:
			want = maze.Point{X: x0 + 9, Y: y0 + 30}
		}
		if w.LabelAt.Dist(want) > 1e-9 {
			t.Fatalf("cell %d %s: label at %v, want %v", w.Cell, w.Side, w.LabelAt, want)
		}
		if w.Label != c.Labels[w.Side] {
			t.Fatalf("cell %d %s: label %q, want %q", w.Cell, w.Side, w.Label, c.Labels[w.Side])
		}
	}
}
