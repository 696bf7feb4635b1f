package game

import (
	"math"
	"testing"

	"github.com/Garsondee/Wicked-Maze/internal/maze"
)

// openOracle never collides and allows steps up to limit.
type openOracle struct{ limit float64 }

func (o openOracle) WouldCollide(_, _ maze.Point, _ float64) bool { return false }
func (o openOracle) StepLimit(_ float64) float64 { return o.limit }

// verticalOnlyOracle rejects any move that changes X.
type verticalOnlyOracle struct{}

func (verticalOnlyOracle) WouldCollide(from, to maze.Point, _ float64) bool { return to.X != from.X }
func (verticalOnlyOracle) StepLimit(_ float64) float64 { return 100 }

func newOpenArena(speed, limit float64) *Arena {
	return &Arena{
		Player: &Player{X: 1000, Y: 1000, Diameter: 10},
		Oracle: openOracle{limit: limit},
		Geo:    maze.Geometry{CellSize: 100, Width: 5000, Height: 5000},
		Speed:  speed,
	}
}

func TestDirectional_RampsToCap(t *testing.T) {
	a := newOpenArena(4, 1000) // cap 4*20 = 80
	s := &DirectionalStrategy{}
	s.KeyDown(DirRight)
	for k := 1; k <= 25; k++ {
		x0 := a.Player.X
		s.Tick(a)
		want := math.Min(float64(k)*mobileAcceleration, 80)
		vx, vy := s.Velocity()
		if vx != want || vy != 0 {
			t.Fatalf("tick %d: velocity (%.1f,%.1f), want (%.1f,0)", k, vx, vy, want)
		}
		if got := a.Player.X - x0; got != want {
			t.Fatalf("tick %d: moved %.1f, want %.1f", k, got, want)
		}
	}
}

func TestDirectional_StepClampedToOracleLimit(t *testing.T) {
	a := newOpenArena(4, 12)
	s := &DirectionalStrategy{}
	s.KeyDown(DirUp)
	for k := 0; k < 10; k++ {
		s.Tick(a)
	}
	y0 := a.Player.Y
	s.Tick(a)
	if got := y0 - a.Player.Y; got != 12 {
		t.Fatalf("per-tick displacement %.1f, want step limit 12", got)
	}
	if _, vy := s.Velocity(); vy != -55 {
		t.Fatalf("velocity should keep ramping past the step limit, got %.1f", vy)
	}
}

func TestDirectional_InstantStopOnRelease(t *testing.T) {
	a := newOpenArena(4, 1000)
	s := &DirectionalStrategy{}
	s.KeyDown(DirLeft)
	for k := 0; k < 5; k++ {
		s.Tick(a)
	}
	s.KeyUp(DirLeft)
	x0 := a.Player.X
	if s.Tick(a) {
		t.Fatal("expected no movement on the tick after release")
	}
	if vx, _ := s.Velocity(); vx != 0 || a.Player.X != x0 {
		t.Fatalf("expected instant stop, vx=%.1f moved=%.1f", vx, a.Player.X-x0)
	}
}

func TestDirectional_OppositeIntentsCancel(t *testing.T) {
	a := newOpenArena(4, 1000)
	s := &DirectionalStrategy{}
	s.KeyDown(DirRight)
	s.Tick(a)
	s.KeyDown(DirLeft)
	s.KeyDown(DirUp)
	s.KeyDown(DirDown)
	x0, y0 := a.Player.X, a.Player.Y
	for k := 0; k < 5; k++ {
		s.Tick(a)
	}
	vx, vy := s.Velocity()
	if vx != 0 || vy != 0 {
		t.Fatalf("opposite intents should cancel, got (%.1f,%.1f)", vx, vy)
	}
	if a.Player.X != x0 || a.Player.Y != y0 || math.IsNaN(a.Player.X) {
		t.Fatalf("player moved to (%.1f,%.1f)", a.Player.X, a.Player.Y)
	}
}

func TestDirectional_BlockedAxisDoesNotStopOtherAxis(t *testing.T) {
	a := newOpenArena(4, 1000)
	a.Oracle = verticalOnlyOracle{}
	s := &DirectionalStrategy{}
	s.KeyDown(DirRight)
	s.KeyDown(DirDown)
	x0, y0 := a.Player.X, a.Player.Y
	if !s.Tick(a) {
		t.Fatal("expected the vertical axis to move")
	}
	if a.Player.X != x0 {
		t.Fatalf("x should be blocked, moved %.1f", a.Player.X-x0)
	}
	if a.Player.Y != y0+5 {
		t.Fatalf("y should advance 5, moved %.1f", a.Player.Y-y0)
	}
}

func TestDirectional_IgnoresPointer(t *testing.T) {
	a := newOpenArena(4, 1000)
	s := &DirectionalStrategy{}
	if s.PointerDown(a, a.Player.Pos()) != OutcomeNone || s.PointerUp(a) != OutcomeNone {
		t.Fatal("mobile strategy should ignore canvas pointer input")
	}
	if len(s.Trail()) != 0 {
		t.Fatal("mobile strategy should never keep a trail")
	}
}

// With a 60px cell and 7.5px radius, a 5px step to the right is rejected when
// the ball already sits against the right wall and accepted from the centre.
func TestDirectional_RightWallScenario(t *testing.T) {
	g := maze.NewGrid(10, 10, nil, nil)
	geo := maze.NewGeometry(g, 600, 600)
	if geo.CellSize != 60 {
		t.Fatalf("cell size = %.1f, want 60", geo.CellSize)
	}
	oracle := maze.NewCellOracle(g, geo)

	near := &Player{X: 60 - 7.5 - 2, Y: 30, Diameter: 15}
	s := &DirectionalStrategy{}
	s.KeyDown(DirRight)
	s.Tick(&Arena{Player: near, Oracle: oracle, Geo: geo, Speed: baseSpeed(60)})
	if near.X != 50.5 {
		t.Fatalf("move into right wall should be rejected, x=%.2f", near.X)
	}

	centre := &Player{X: 30, Y: 30, Diameter: 15}
	s.Reset()
	s.KeyDown(DirRight)
	s.Tick(&Arena{Player: centre, Oracle: oracle, Geo: geo, Speed: baseSpeed(60)})
	if centre.X != 35 {
		t.Fatalf("move from centre should be accepted, x=%.2f", centre.X)
	}
}

func TestDrag_PointerDownTolerance(t *testing.T) {
	a := newOpenArena(4, 1000)
	a.Player.Diameter = 15
	d := &DragStrategy{}

	if d.PointerDown(a, maze.Point{X: 1000 + 7.5 + 10, Y: 1000}) != OutcomeNone {
		t.Fatal("press exactly radius+sensitivity away should not grab")
	}
	if d.PointerDown(a, maze.Point{X: 0, Y: 1000}) != OutcomeNone {
		t.Fatal("press on the canvas edge should not grab")
	}
	if d.PointerDown(a, maze.Point{X: 1017, Y: 1000}) != OutcomeDragStarted || !d.Dragging() {
		t.Fatal("press inside tolerance should start a drag")
	}
	if tr := d.Trail(); len(tr) != 1 || tr[0] != a.Player.Pos() {
		t.Fatalf("trail should start at the player, got %v", tr)
	}
}

func TestDrag_TrailSpacing(t *testing.T) {
	a := newOpenArena(4, 1000)
	d := &DragStrategy{}
	d.PointerDown(a, a.Player.Pos())
	for k := 1; k <= 10; k++ {
		d.PointerMove(a, maze.Point{X: 1000 + float64(k), Y: 1000})
	}
	// Points are recorded only after moving more than 2px: 1000, 1003, 1006, 1009.
	if n := len(d.Trail()); n != 4 {
		t.Fatalf("trail has %d points, want 4: %v", n, d.Trail())
	}
	if a.Player.X != 1010 {
		t.Fatalf("player should follow the pointer, x=%.1f", a.Player.X)
	}
}

func TestDrag_KeyEndsDragWithoutMoving(t *testing.T) {
	a := newOpenArena(4, 1000)
	d := &DragStrategy{}
	if d.KeyDown(DirRight) != OutcomeNone {
		t.Fatal("key without a drag should do nothing")
	}
	d.PointerDown(a, a.Player.Pos())
	if d.KeyDown(DirRight) != OutcomeDragStopped {
		t.Fatal("key during drag should stop it")
	}
	if d.Dragging() || len(d.Trail()) != 0 {
		t.Fatal("drag and trail should be cleared")
	}
	x0 := a.Player.X
	if d.Tick(a) || a.Player.X != x0 {
		t.Fatal("desktop keys must not move the ball")
	}
}

func TestDrag_CollisionAcrossCorner(t *testing.T) {
	// 2x2, cells 0-1 and 0-2 open, cell 3 closed off from both.
	g := maze.NewGrid(2, 2, nil, nil)
	g.RemoveWallBetween(0, 1)
	g.RemoveWallBetween(0, 2)
	geo := maze.NewGeometry(g, 120, 120)
	a := &Arena{
		Player: &Player{X: 30, Y: 30, Diameter: 15},
		Oracle: maze.NewCellOracle(g, geo),
		Geo:    geo,
		Speed:  baseSpeed(60),
	}
	d := &DragStrategy{}
	d.PointerDown(a, a.Player.Pos())
	if out := d.PointerMove(a, maze.Point{X: 90, Y: 90}); out != OutcomeCollision {
		t.Fatalf("diagonal drag into a sealed cell should collide, got %v", out)
	}
	if a.Player.X != 30 || a.Player.Y != 30 {
		t.Fatalf("position should be unchanged after a collision, got (%.1f,%.1f)", a.Player.X, a.Player.Y)
	}
	if d.Dragging() {
		t.Fatal("collision should end the drag")
	}
}
