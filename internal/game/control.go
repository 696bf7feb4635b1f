package game

import (
	"math"

	"github.com/Garsondee/Wicked-Maze/internal/maze"
)

// Direction is one of the four arrow intents.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "?"
	}
}

// Intents holds which directions are currently pressed.
type Intents struct {
	Up, Down, Left, Right bool
}

// Set records d as pressed or released.
func (in *Intents) Set(d Direction, on bool) {
	switch d {
	case DirUp:
		in.Up = on
	case DirDown:
		in.Down = on
	case DirLeft:
		in.Left = on
	case DirRight:
		in.Right = on
	}
}

// Held reports whether d is pressed.
func (in Intents) Held(d Direction) bool {
	switch d {
	case DirUp:
		return in.Up
	case DirDown:
		return in.Down
	case DirLeft:
		return in.Left
	case DirRight:
		return in.Right
	}
	return false
}

// Any reports whether any direction is pressed.
func (in Intents) Any() bool {
	return in.Up || in.Down || in.Left || in.Right
}

// Player is the ball steered through the maze.
type Player struct {
	X, Y     float64
	Diameter float64
}

// Pos returns the player's centre.
func (p Player) Pos() maze.Point {
	return maze.Point{X: p.X, Y: p.Y}
}

// Radius returns half the diameter.
func (p Player) Radius() float64 {
	return p.Diameter / 2
}

// Arena is what a control strategy steers within for one call.
type Arena struct {
	Player *Player
	Oracle maze.Oracle
	Geo    maze.Geometry
	Speed  float64 // base speed in px/tick
}

// Outcome tells the session what a strategy call did.
type Outcome uint8

const (
	OutcomeNone        Outcome = iota
	OutcomeDragStarted         // pointer grabbed the ball
	OutcomeDragStopped         // drag ended without a release (key press)
	OutcomeCollision           // drag crossed a wall or the canvas edge
	OutcomeReleased            // pointer released while dragging
)

// ControlStrategy is the input pathway for one control mode.
type ControlStrategy interface {
	Mode() ControlMode
	PointerDown(a *Arena, p maze.Point) Outcome
	PointerMove(a *Arena, p maze.Point) Outcome
	PointerUp(a *Arena) Outcome
	KeyDown(d Direction) Outcome
	KeyUp(d Direction)
	Tick(a *Arena) (moved bool)
	Trail() []maze.Point
	Reset()
}

// newStrategy returns the strategy for m.
func newStrategy(m ControlMode) ControlStrategy {
	if m == ModeMobile {
		return &DirectionalStrategy{}
	}
	return &DragStrategy{}
}

// DragStrategy moves the ball by dragging it with the pointer. Arrow keys do
// not move the ball; they only cancel a drag in progress.
type DragStrategy struct {
	dragging bool
	trail    []maze.Point
}

// Mode implements ControlStrategy.
func (d *DragStrategy) Mode() ControlMode { return ModeDesktop }

// Dragging reports whether a drag gesture is active.
func (d *DragStrategy) Dragging() bool { return d.dragging }

// PointerDown starts a drag when p lands inside the canvas and near the ball.
func (d *DragStrategy) PointerDown(a *Arena, p maze.Point) Outcome {
	if p.X <= 0 || p.X >= a.Geo.Width || p.Y <= 0 || p.Y >= a.Geo.Height {
		return OutcomeNone
	}
	if p.Dist(a.Player.Pos()) >= a.Player.Radius()+dragClickSensitivity {
		return OutcomeNone
	}
	d.dragging = true
	d.trail = []maze.Point{a.Player.Pos()}
	return OutcomeDragStarted
}

// PointerMove follows the pointer. The move is swept horizontally and then
// vertically; a hit on either leg ends the drag.
func (d *DragStrategy) PointerMove(a *Arena, p maze.Point) Outcome {
	if !d.dragging {
		return OutcomeNone
	}
	r := a.Player.Radius()
	next := a.Geo.Clamp(p, r)
	from := a.Player.Pos()
	corner := maze.Point{X: next.X, Y: from.Y}
	if maze.Sweep(a.Oracle, from, corner, r) || maze.Sweep(a.Oracle, corner, next, r) {
		d.dragging = false
		d.trail = nil
		return OutcomeCollision
	}
	a.Player.X, a.Player.Y = next.X, next.Y
	if n := len(d.trail); n == 0 || next.Dist(d.trail[n-1]) > trailSpacing {
		d.trail = append(d.trail, next)
	}
	return OutcomeNone
}

// release ends the drag but keeps the trail on screen.
func (d *DragStrategy) release() {
	d.dragging = false
}

// PointerUp ends the drag.
func (d *DragStrategy) PointerUp(_ *Arena) Outcome {
	if !d.dragging {
		return OutcomeNone
	}
	d.dragging = false
	d.trail = nil
	return OutcomeReleased
}

// KeyDown cancels a drag in progress; keys never move the ball here.
func (d *DragStrategy) KeyDown(_ Direction) Outcome {
	if !d.dragging {
		return OutcomeNone
	}
	d.dragging = false
	d.trail = nil
	return OutcomeDragStopped
}

// KeyUp implements ControlStrategy.
func (d *DragStrategy) KeyUp(_ Direction) {}

// Tick implements ControlStrategy; dragging moves only on pointer events.
func (d *DragStrategy) Tick(_ *Arena) bool { return false }

// Trail returns recent drag positions, oldest first.
func (d *DragStrategy) Trail() []maze.Point { return d.trail }

// Reset drops any drag and trail.
func (d *DragStrategy) Reset() {
	d.dragging = false
	d.trail = nil
}

// DirectionalStrategy accelerates the ball while a direction is held and
// stops it dead on release. Opposite directions held together cancel.
type DirectionalStrategy struct {
	intents Intents
	vx, vy  float64
}

// Mode implements ControlStrategy.
func (s *DirectionalStrategy) Mode() ControlMode { return ModeMobile }

// Intents returns the pressed directions.
func (s *DirectionalStrategy) Intents() Intents { return s.intents }

// Velocity returns the current per-tick velocity.
func (s *DirectionalStrategy) Velocity() (float64, float64) { return s.vx, s.vy }

// PointerDown implements ControlStrategy; canvas pointer input is ignored.
func (s *DirectionalStrategy) PointerDown(_ *Arena, _ maze.Point) Outcome { return OutcomeNone }

// PointerMove implements ControlStrategy.
func (s *DirectionalStrategy) PointerMove(_ *Arena, _ maze.Point) Outcome { return OutcomeNone }

// PointerUp implements ControlStrategy.
func (s *DirectionalStrategy) PointerUp(_ *Arena) Outcome { return OutcomeNone }

// KeyDown presses d.
func (s *DirectionalStrategy) KeyDown(d Direction) Outcome {
	s.intents.Set(d, true)
	return OutcomeNone
}

// KeyUp releases d.
func (s *DirectionalStrategy) KeyUp(d Direction) {
	s.intents.Set(d, false)
}

// Tick ramps velocity and applies it one axis at a time. An axis whose step
// would collide is skipped for this tick; the other axis may still move.
func (s *DirectionalStrategy) Tick(a *Arena) bool {
	limit := a.Speed * maxMobileSpeedFactor
	s.vx = rampAxis(s.vx, s.intents.Left, s.intents.Right, limit)
	s.vy = rampAxis(s.vy, s.intents.Up, s.intents.Down, limit)

	r := a.Player.Radius()
	step := a.Oracle.StepLimit(r)
	moved := false

	if dx := clampMagnitude(s.vx, step); dx != 0 {
		from := a.Player.Pos()
		to := maze.Point{X: from.X + dx, Y: from.Y}
		if !a.Oracle.WouldCollide(from, to, r) {
			a.Player.X = to.X
			moved = true
		}
	}
	if dy := clampMagnitude(s.vy, step); dy != 0 {
		from := a.Player.Pos()
		to := maze.Point{X: from.X, Y: from.Y + dy}
		if !a.Oracle.WouldCollide(from, to, r) {
			a.Player.Y = to.Y
			moved = true
		}
	}
	return moved
}

// Trail implements ControlStrategy; directional movement leaves no trail.
func (s *DirectionalStrategy) Trail() []maze.Point { return nil }

// Reset releases every direction and stops the ball.
func (s *DirectionalStrategy) Reset() {
	s.intents = Intents{}
	s.vx, s.vy = 0, 0
}

// rampAxis returns the next velocity on one axis given the negative and
// positive intents.
func rampAxis(v float64, neg, pos bool, limit float64) float64 {
	switch {
	case neg && pos:
		return 0
	case neg:
		return math.Max(-limit, v-mobileAcceleration)
	case pos:
		return math.Min(limit, v+mobileAcceleration)
	default:
		return 0
	}
}

func clampMagnitude(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
