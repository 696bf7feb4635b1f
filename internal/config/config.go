// Package config loads game settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Garsondee/Wicked-Maze/internal/game"
)

// ErrInvalidValue is wrapped by every parse failure.
var ErrInvalidValue = errors.New("invalid config value")

// Config holds the game settings.
type Config struct {
	Cols         int                 // maze columns (MAZE_COLS)
	Rows         int                 // maze rows (MAZE_ROWS)
	Seed         int64               // RNG seed (MAZE_SEED)
	HasSeed      bool                // false means seed from the clock
	Breakpoint   float64             // mobile breakpoint in px (MAZE_BREAKPOINT)
	Collision    game.CollisionModel // cell or segment (MAZE_COLLISION)
	WallWords    []string            // comma separated (MAZE_WALL_WORDS)
	WindowWidth  int                 // initial window size (MAZE_WINDOW_WIDTH)
	WindowHeight int                 // (MAZE_WINDOW_HEIGHT)
	Verbose      bool                // per-tick event logging (MAZE_VERBOSE)
}

// LookupFunc resolves a variable name, reporting whether it is set.
type LookupFunc func(key string) (string, bool)

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Cols:         game.DefaultCols,
		Rows:         game.DefaultRows,
		Breakpoint:   game.DefaultBreakpoint,
		Collision:    game.CollisionCell,
		WallWords:    append([]string(nil), game.DefaultWallWords...),
		WindowWidth:  720,
		WindowHeight: 720,
	}
}

// Load reads the given .env files (or ./.env) into the process environment
// and parses the result. A missing file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[CONFIG] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return Parse(os.LookupEnv)
}

// ReadFile parses a .env file without touching the process environment.
func ReadFile(path string) (Config, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
}

// Parse builds a Config from lookup, falling back to Default for unset keys.
func Parse(lookup LookupFunc) (Config, error) {
	c := Default()
	var err error
	if c.Cols, err = intVar(lookup, "MAZE_COLS", c.Cols); err != nil {
		return Config{}, err
	}
	if c.Rows, err = intVar(lookup, "MAZE_ROWS", c.Rows); err != nil {
		return Config{}, err
	}
	if v, ok := lookup("MAZE_SEED"); ok && strings.TrimSpace(v) != "" {
		seed, perr := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if perr != nil {
			return Config{}, fmt.Errorf("%w: MAZE_SEED=%q: %v", ErrInvalidValue, v, perr)
		}
		c.Seed, c.HasSeed = seed, true
	}
	if v, ok := lookup("MAZE_BREAKPOINT"); ok {
		bp, perr := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if perr != nil || bp < 0 {
			return Config{}, fmt.Errorf("%w: MAZE_BREAKPOINT=%q", ErrInvalidValue, v)
		}
		c.Breakpoint = bp
	}
	if v, ok := lookup("MAZE_COLLISION"); ok {
		m, perr := game.ParseCollisionModel(v)
		if perr != nil {
			return Config{}, fmt.Errorf("MAZE_COLLISION: %w", perr)
		}
		c.Collision = m
	}
	if v, ok := lookup("MAZE_WALL_WORDS"); ok {
		c.WallWords = splitWords(v)
		if len(c.WallWords) == 0 {
			return Config{}, fmt.Errorf("MAZE_WALL_WORDS: %w", game.ErrEmptyVocabulary)
		}
	}
	if c.WindowWidth, err = intVar(lookup, "MAZE_WINDOW_WIDTH", c.WindowWidth); err != nil {
		return Config{}, err
	}
	if c.WindowHeight, err = intVar(lookup, "MAZE_WINDOW_HEIGHT", c.WindowHeight); err != nil {
		return Config{}, err
	}
	if v, ok := lookup("MAZE_VERBOSE"); ok {
		b, perr := strconv.ParseBool(strings.TrimSpace(v))
		if perr != nil {
			return Config{}, fmt.Errorf("%w: MAZE_VERBOSE=%q", ErrInvalidValue, v)
		}
		c.Verbose = b
	}
	return c, nil
}

// SessionOptions converts the settings into session options. The canvas is
// left to the host, which knows its real size.
func (c Config) SessionOptions() []game.Option {
	opts := []game.Option{
		game.WithGridSize(c.Cols, c.Rows),
		game.WithBreakpoint(c.Breakpoint),
		game.WithCollision(c.Collision),
		game.WithWallWords(c.WallWords...),
	}
	if c.HasSeed {
		opts = append(opts, game.WithSeed(c.Seed))
	}
	return opts
}

func intVar(lookup LookupFunc, key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s=%q must be a positive integer", ErrInvalidValue, key, v)
	}
	return n, nil
}

func splitWords(v string) []string {
	var out []string
	for _, w := range strings.Split(v, ",") {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}
