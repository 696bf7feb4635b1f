package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

const (
	DefaultCols        = 10
	DefaultRows        = 10
	DefaultBreakpoint  = 390 // viewport width at or below which mobile controls apply
	DefaultCanvasWidth = 400 // used when the host reports no usable size

	// FlashTicks is how long walls flash after a reset (≈500ms at 60 TPS).
	FlashTicks = 30

	minDimension = 2
	maxDimension = 30

	playerSpeedFactor    = 15  // base speed = cell size / factor
	minPlayerSpeed       = 1.5 // px/tick
	maxMobileSpeedFactor = 20  // cap = base speed * factor
	mobileAcceleration   = 5.0 // px/tick added per tick while a direction is held
	dragClickSensitivity = 10  // px beyond the ball radius that still grabs it
	trailSpacing         = 2   // min px between recorded trail points
	resizeTolerance      = 1   // px change ignored by OnResize

	desktopBallDiameter = 15
	mobileBallDiameter  = 10
	desktopLabelSize    = 25
	mobileLabelSize     = 15
	wallOffsetFactor    = 0.15 // label inset from its wall, as a fraction of the cell
	maxBallCellFraction = 0.4  // the ball never grows past this share of a cell
)

// DefaultWallWords is the label vocabulary drawn along maze walls.
var DefaultWallWords = []string{"WICKED", "IS GOOD"}

// Background is the canvas clear colour.
var Background = color.RGBA{R: 3, G: 0, B: 191, A: 255}

// ControlMode selects the input pathway.
type ControlMode uint8

const (
	ModeDesktop ControlMode = iota // pointer drag
	ModeMobile                     // accelerating directional input
)

func (m ControlMode) String() string {
	if m == ModeMobile {
		return "mobile"
	}
	return "desktop"
}

// ModeForWidth derives the control mode from the viewport width.
func ModeForWidth(width, breakpoint float64) ControlMode {
	if width <= breakpoint {
		return ModeMobile
	}
	return ModeDesktop
}

// BallDiameter returns the player diameter used in mode m.
func (m ControlMode) BallDiameter() float64 {
	if m == ModeMobile {
		return mobileBallDiameter
	}
	return desktopBallDiameter
}

// ballDiameter is the mode's ball size, shrunk to fit cells too small for it.
func ballDiameter(m ControlMode, cellSize float64) float64 {
	return math.Min(m.BallDiameter(), cellSize*maxBallCellFraction)
}

// LabelSize returns the wall label text size used in mode m.
func (m ControlMode) LabelSize() float64 {
	if m == ModeMobile {
		return mobileLabelSize
	}
	return desktopLabelSize
}

// State is the session's game state.
type State uint8

const (
	StatePlaying State = iota
	StateWon
)

func (s State) String() string {
	if s == StateWon {
		return "won"
	}
	return "playing"
}

// CollisionModel names a maze.Oracle implementation.
type CollisionModel string

const (
	CollisionCell    CollisionModel = "cell"
	CollisionSegment CollisionModel = "segment"
)

// ParseCollisionModel validates a collision model name.
func ParseCollisionModel(s string) (CollisionModel, error) {
	switch m := CollisionModel(strings.ToLower(strings.TrimSpace(s))); m {
	case CollisionCell, CollisionSegment:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCollisionModel, s)
	}
}

// baseSpeed is the per-tick speed unit for a given cell size.
func baseSpeed(cellSize float64) float64 {
	return math.Max(cellSize/playerSpeedFactor, minPlayerSpeed)
}
