package game

import (
	"math/rand"
	"time"
)

// Option configures a Session during construction.
type Option func(*Session)

// WithGridSize sets the number of columns and rows.
func WithGridSize(cols, rows int) Option {
	return func(s *Session) {
		s.cols = cols
		s.rows = rows
	}
}

// WithCanvas sets the initial canvas size in pixels.
func WithCanvas(width, height float64) Option {
	return func(s *Session) {
		s.width = width
		s.height = height
	}
}

// WithSeed sets the RNG seed for deterministic mazes.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	}
}

// WithRand injects a random source.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithBreakpoint sets the viewport width at or below which mobile controls apply.
func WithBreakpoint(px float64) Option {
	return func(s *Session) {
		s.breakpoint = px
	}
}

// WithWallWords sets the label vocabulary.
func WithWallWords(words ...string) Option {
	return func(s *Session) {
		s.words = append([]string(nil), words...)
	}
}

// WithCollision selects the collision oracle.
func WithCollision(m CollisionModel) Option {
	return func(s *Session) {
		s.collision = m
	}
}

// WithEventLog routes session events into el.
func WithEventLog(el *EventLog) Option {
	return func(s *Session) {
		s.log = el
	}
}

func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
}
