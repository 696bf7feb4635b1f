package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/Garsondee/Wicked-Maze/internal/maze"
)

var (
	ErrInvalidDimensions     = errors.New("grid dimensions out of range")
	ErrEmptyVocabulary       = errors.New("wall word vocabulary is empty")
	ErrUnknownCollisionModel = errors.New("unknown collision model")
)

// Session is one running maze game. It is not safe for concurrent use; hosts
// apply input and call Tick from a single goroutine.
type Session struct {
	id         uuid.UUID
	cols, rows int
	words      []string
	breakpoint float64
	collision  CollisionModel
	width      float64 // viewport as last reported by the host
	height     float64
	rng        *rand.Rand
	log        *EventLog

	grid    *maze.Grid
	geo     maze.Geometry
	oracle  maze.Oracle
	player  Player
	mode    ControlMode
	control ControlStrategy
	state   State

	tick       int
	flashUntil int
	resets     int
	collisions int
}

// NewSession validates the options, generates the first maze and places the
// player on the start cell.
func NewSession(opts ...Option) (*Session, error) {
	s := &Session{
		id:         uuid.New(),
		cols:       DefaultCols,
		rows:       DefaultRows,
		words:      DefaultWallWords,
		breakpoint: DefaultBreakpoint,
		collision:  CollisionCell,
	}
	for _, o := range opts {
		o(s)
	}
	if s.cols < minDimension || s.cols > maxDimension || s.rows < minDimension || s.rows > maxDimension {
		return nil, fmt.Errorf("%w: %dx%d (allowed %d..%d)", ErrInvalidDimensions, s.cols, s.rows, minDimension, maxDimension)
	}
	if len(s.words) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if _, err := ParseCollisionModel(string(s.collision)); err != nil {
		return nil, err
	}
	if s.rng == nil {
		s.rng = defaultRand()
	}
	if s.log == nil {
		s.log = NewEventLog(false)
	}

	s.width, s.height = viewport(s.width, s.height)
	s.mode = ModeForWidth(s.width, s.breakpoint)
	s.control = newStrategy(s.mode)
	s.regenerate()
	s.logf("mode", "initial", float64(s.mode), "%s at %.0fx%.0f", s.mode, s.width, s.height)
	return s, nil
}

// viewport substitutes the fallback size for unusable host dimensions.
func viewport(w, h float64) (float64, float64) {
	if !(w > 0) || math.IsInf(w, 0) {
		w = DefaultCanvasWidth
	}
	if !(h > 0) || math.IsInf(h, 0) {
		h = w
	}
	return w, h
}

// canvasSide is the edge of the square canvas that fits the viewport.
func (s *Session) canvasSide() float64 {
	return math.Min(s.width, s.height)
}

// regenerate replaces the grid wholesale and recentres the player.
func (s *Session) regenerate() {
	s.grid = maze.NewGrid(s.cols, s.rows, s.rng, s.words)
	maze.Generate(s.grid, s.rng)
	s.relayout()
	start := s.StartCenter()
	s.player.X, s.player.Y = start.X, start.Y
	s.logf("maze", "generated", float64(s.grid.PassageCount()), "%dx%d, %d passages", s.cols, s.rows, s.grid.PassageCount())
}

// relayout rebuilds the geometry and oracle for the current canvas and
// resizes the ball to fit the new cells.
func (s *Session) relayout() {
	side := s.canvasSide()
	s.geo = maze.NewGeometry(s.grid, side, side)
	s.player.Diameter = ballDiameter(s.mode, s.geo.CellSize)
	if s.collision == CollisionSegment {
		s.oracle = maze.NewSegmentOracle(s.grid, s.geo)
	} else {
		s.oracle = maze.NewCellOracle(s.grid, s.geo)
	}
}

func (s *Session) arena() *Arena {
	return &Arena{
		Player: &s.player,
		Oracle: s.oracle,
		Geo:    s.geo,
		Speed:  baseSpeed(s.geo.CellSize),
	}
}

// Reset regenerates the maze, recentres the player, clears trails and
// intents and starts the wall flash. It is the only way out of StateWon.
func (s *Session) Reset() {
	s.reset("manual")
}

func (s *Session) reset(reason string) {
	s.regenerate()
	s.control.Reset()
	s.state = StatePlaying
	s.flashUntil = s.tick + FlashTicks
	s.resets++
	s.logf("state", "reset", float64(s.resets), "%s", reason)
}

// OnPointerDown handles a press at canvas coordinates (x, y).
func (s *Session) OnPointerDown(x, y float64) {
	p := maze.Point{X: x, Y: y}
	if !p.Valid() || s.state == StateWon {
		return
	}
	s.handle(s.control.PointerDown(s.arena(), p))
}

// OnPointerMove handles pointer motion. Once won, motion only ends a drag.
func (s *Session) OnPointerMove(x, y float64) {
	p := maze.Point{X: x, Y: y}
	if !p.Valid() {
		return
	}
	if s.state == StateWon {
		if d, ok := s.control.(*DragStrategy); ok {
			d.release()
		}
		return
	}
	s.handle(s.control.PointerMove(s.arena(), p))
	if s.state == StatePlaying {
		s.checkWin()
	}
}

// OnPointerUp handles a release. Once won it clears the trail; otherwise a
// release that ends a drag regenerates the maze.
func (s *Session) OnPointerUp(x, y float64) {
	if s.state == StateWon {
		s.control.Reset()
		return
	}
	s.handle(s.control.PointerUp(s.arena()))
}

// OnKeyDown presses an arrow direction.
func (s *Session) OnKeyDown(d Direction) {
	if s.state == StateWon {
		return
	}
	s.log.AddVerbose(s.tick, s.shortID(), "input", "key_down", d.String(), 0)
	s.handle(s.control.KeyDown(d))
}

// OnKeyUp releases an arrow direction.
func (s *Session) OnKeyUp(d Direction) {
	s.control.KeyUp(d)
}

func (s *Session) handle(out Outcome) {
	switch out {
	case OutcomeDragStarted:
		s.logf("input", "drag_start", 0, "at %.1f,%.1f", s.player.X, s.player.Y)
	case OutcomeDragStopped:
		s.logf("input", "drag_end", 0, "key press")
	case OutcomeCollision:
		s.collisions++
		s.logf("collision", "hit", float64(s.collisions), "drag crossed a wall near %.1f,%.1f", s.player.X, s.player.Y)
		s.reset("collision")
	case OutcomeReleased:
		s.logf("input", "drag_end", 0, "released before exit")
		s.reset("release")
	}
}

// OnResize applies a new viewport size. Changes of a pixel or less are
// ignored. The control mode is re-derived; the maze regenerates unless won.
func (s *Session) OnResize(w, h float64) {
	w, h = viewport(w, h)
	if math.Abs(w-s.width) <= resizeTolerance && math.Abs(h-s.height) <= resizeTolerance {
		return
	}
	s.width, s.height = w, h
	s.logf("canvas", "resize", w, "%.0fx%.0f", w, h)

	if m := ModeForWidth(w, s.breakpoint); m != s.mode {
		s.mode = m
		s.control = newStrategy(m)
		s.logf("mode", "change", float64(m), "%s", m)
	}
	s.relayout()
	if s.state == StateWon {
		p := s.geo.Clamp(s.player.Pos(), s.player.Radius())
		s.player.X, s.player.Y = p.X, p.Y
		return
	}
	s.reset("resize")
}

// Tick advances the session by one frame. Nothing moves once won.
func (s *Session) Tick() {
	s.tick++
	if s.state == StateWon {
		return
	}
	a := s.arena()
	if s.control.Tick(a) {
		p := s.geo.Clamp(s.player.Pos(), s.player.Radius())
		s.player.X, s.player.Y = p.X, p.Y
		s.log.AddVerbose(s.tick, s.shortID(), "move", "position", fmt.Sprintf("%.1f,%.1f", p.X, p.Y), 0)
	}
	s.checkWin()
}

func (s *Session) checkWin() {
	d := s.player.Pos().Dist(s.ExitCenter())
	if d < s.WinThreshold() {
		s.state = StateWon
		s.logf("state", "won", d, "exit reached after %d resets", s.resets)
	}
}

func (s *Session) logf(category, key string, num float64, format string, args ...any) {
	s.log.Add(s.tick, s.shortID(), category, key, fmt.Sprintf(format, args...), num)
}

func (s *Session) shortID() string {
	return s.id.String()[:8]
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id.String() }

// State returns the game state.
func (s *Session) State() State { return s.state }

// Won reports whether the exit has been reached.
func (s *Session) Won() bool { return s.state == StateWon }

// Mode returns the active control mode.
func (s *Session) Mode() ControlMode { return s.mode }

// Grid returns the current maze.
func (s *Session) Grid() *maze.Grid { return s.grid }

// Geometry returns the current canvas geometry.
func (s *Session) Geometry() maze.Geometry { return s.geo }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Trail returns the drag trail, empty outside a desktop drag.
func (s *Session) Trail() []maze.Point { return s.control.Trail() }

// Flashing reports whether the post-reset wall flash is showing.
func (s *Session) Flashing() bool { return s.tick < s.flashUntil }

// TickCount returns the number of ticks processed.
func (s *Session) TickCount() int { return s.tick }

// Resets returns how many times the maze has been regenerated after start.
func (s *Session) Resets() int { return s.resets }

// Collisions returns how many drags ended on a wall.
func (s *Session) Collisions() int { return s.collisions }

// Log returns the session event log.
func (s *Session) Log() *EventLog { return s.log }

// Viewport returns the last host-reported size.
func (s *Session) Viewport() (float64, float64) { return s.width, s.height }

// StartCenter returns the centre of cell (0, 0).
func (s *Session) StartCenter() maze.Point { return s.geo.Center(0, 0) }

// ExitCenter returns the centre of the bottom-right cell.
func (s *Session) ExitCenter() maze.Point { return s.geo.Center(s.cols-1, s.rows-1) }

// WinThreshold is the distance to the exit centre below which the game is won.
func (s *Session) WinThreshold() float64 { return s.geo.CellSize / 2 }

// Dragging reports whether a desktop drag is active.
func (s *Session) Dragging() bool {
	d, ok := s.control.(*DragStrategy)
	return ok && d.Dragging()
}

// Intents returns the held directions in mobile mode.
func (s *Session) Intents() Intents {
	if d, ok := s.control.(*DirectionalStrategy); ok {
		return d.Intents()
	}
	return Intents{}
}

// Velocity returns the per-tick velocity in mobile mode.
func (s *Session) Velocity() (float64, float64) {
	if d, ok := s.control.(*DirectionalStrategy); ok {
		return d.Velocity()
	}
	return 0, 0
}
