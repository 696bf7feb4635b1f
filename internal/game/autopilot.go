package game

import (
	"math"

	"github.com/Garsondee/Wicked-Maze/internal/maze"
)

// dragStride is how far the scripted pointer moves per tick in desktop mode.
const dragStride = 4.0

// Autopilot drives a session along the solved path using the same input
// methods a host would call. Call Step before each Tick.
type Autopilot struct {
	resets    int
	planned   bool
	waypoints []maze.Point
	next      int

	cursor  maze.Point
	pressed bool
}

// NewAutopilot plans a route for s.
func NewAutopilot(s *Session) *Autopilot {
	a := &Autopilot{}
	a.plan(s)
	return a
}

// Waypoints returns the remaining planned cell centres.
func (a *Autopilot) Waypoints() []maze.Point {
	if a.next >= len(a.waypoints) {
		return nil
	}
	return a.waypoints[a.next:]
}

// plan solves from the player's cell to the exit. A failed solve leaves an
// empty route and the autopilot idles.
func (a *Autopilot) plan(s *Session) {
	a.resets = s.Resets()
	a.planned = true
	a.next = 0
	a.pressed = false
	a.waypoints = a.waypoints[:0]

	i, j := s.geo.CellOf(s.player.Pos())
	path := s.grid.Solve(s.grid.Index(i, j), s.grid.Len()-1)
	for _, idx := range path {
		c := s.grid.Cell(idx)
		a.waypoints = append(a.waypoints, s.geo.Center(c.I, c.J))
	}
}

// Step feeds one tick's worth of input into s.
func (a *Autopilot) Step(s *Session) {
	if s.Won() {
		a.finish(s)
		return
	}
	if !a.planned || s.Resets() != a.resets {
		a.plan(s)
	}
	if a.next >= len(a.waypoints) {
		return
	}
	if s.Mode() == ModeMobile {
		a.steer(s)
	} else {
		a.drag(s)
	}
}

func (a *Autopilot) finish(s *Session) {
	if a.pressed {
		s.OnPointerUp(a.cursor.X, a.cursor.Y)
		a.pressed = false
	}
	for _, d := range Directions {
		if s.Intents().Held(d) {
			s.OnKeyUp(d)
		}
	}
}

// drag grabs the ball and walks the pointer toward the next waypoint.
func (a *Autopilot) drag(s *Session) {
	if !a.pressed || !s.Dragging() {
		a.cursor = s.player.Pos()
		s.OnPointerDown(a.cursor.X, a.cursor.Y)
		a.pressed = s.Dragging()
		if !a.pressed {
			return
		}
	}
	target := a.waypoints[a.next]
	d := a.cursor.Dist(target)
	if d <= dragStride {
		a.cursor = target
		a.next++
	} else {
		t := dragStride / d
		a.cursor = maze.Point{
			X: a.cursor.X + (target.X-a.cursor.X)*t,
			Y: a.cursor.Y + (target.Y-a.cursor.Y)*t,
		}
	}
	s.OnPointerMove(a.cursor.X, a.cursor.Y)
}

// steer holds at most one direction so that the coming tick never carries
// the ball past its waypoint, except for a single nudge from rest when the
// waypoint is closer than one step.
func (a *Autopilot) steer(s *Session) {
	p := s.player.Pos()
	tol := arriveTolerance(s.geo.CellSize)
	target := a.waypoints[a.next]
	dx, dy := target.X-p.X, target.Y-p.Y
	if math.Abs(dx) <= tol && math.Abs(dy) <= tol {
		a.next++
		if a.next >= len(a.waypoints) {
			a.press(s, Intents{})
			return
		}
		target = a.waypoints[a.next]
		dx, dy = target.X-p.X, target.Y-p.Y
	}

	vx, vy := s.Velocity()
	limit := baseSpeed(s.geo.CellSize) * maxMobileSpeedFactor
	step := s.oracle.StepLimit(s.player.Radius())
	var want Intents
	if math.Abs(dx) > tol {
		if dx < 0 {
			want.Left = fits(-dx, vx, clampMagnitude(rampAxis(vx, true, false, limit), step))
		} else {
			want.Right = fits(dx, vx, clampMagnitude(rampAxis(vx, false, true, limit), step))
		}
	} else if math.Abs(dy) > tol {
		if dy < 0 {
			want.Up = fits(-dy, vy, clampMagnitude(rampAxis(vy, true, false, limit), step))
		} else {
			want.Down = fits(dy, vy, clampMagnitude(rampAxis(vy, false, true, limit), step))
		}
	}
	a.press(s, want)
}

// arriveTolerance is how close steer gets to a waypoint before moving on. It
// shrinks with the cell so the ball stays clear of the side walls, but never
// below half an acceleration step: a nudge from rest lands within that.
func arriveTolerance(cellSize float64) float64 {
	return math.Max(mobileAcceleration/2, math.Min(mobileAcceleration, cellSize/4))
}

// fits reports whether to keep a direction held with rem px still to go,
// given the axis velocity v and the step the next tick would take.
func fits(rem, v, next float64) bool {
	return math.Abs(next) <= rem || v == 0
}

// press brings the session's held directions in line with want.
func (a *Autopilot) press(s *Session, want Intents) {
	have := s.Intents()
	for _, d := range Directions {
		switch {
		case want.Held(d) && !have.Held(d):
			s.OnKeyDown(d)
		case !want.Held(d) && have.Held(d):
			s.OnKeyUp(d)
		}
	}
}
