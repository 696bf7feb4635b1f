package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Wicked-Maze/internal/game"
)

func mapLookup(m map[string]string) LookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestParse(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		c, err := Parse(mapLookup(nil))
		require.NoError(t, err)
		assert.Equal(t, Default(), c)
		assert.Equal(t, 10, c.Cols)
		assert.Equal(t, game.CollisionCell, c.Collision)
		assert.Equal(t, []string{"WICKED", "IS GOOD"}, c.WallWords)
		assert.False(t, c.HasSeed)
	})

	t.Run("every variable", func(t *testing.T) {
		c, err := Parse(mapLookup(map[string]string{
			"MAZE_COLS":          "12",
			"MAZE_ROWS":          " 8 ",
			"MAZE_SEED":          "-42",
			"MAZE_BREAKPOINT":    "500",
			"MAZE_COLLISION":     "Segment",
			"MAZE_WALL_WORDS":    "NO, WAY ,, OUT",
			"MAZE_WINDOW_WIDTH":  "1024",
			"MAZE_WINDOW_HEIGHT": "768",
			"MAZE_VERBOSE":       "true",
		}))
		require.NoError(t, err)
		assert.Equal(t, 12, c.Cols)
		assert.Equal(t, 8, c.Rows)
		assert.True(t, c.HasSeed)
		assert.Equal(t, int64(-42), c.Seed)
		assert.Equal(t, 500.0, c.Breakpoint)
		assert.Equal(t, game.CollisionSegment, c.Collision)
		assert.Equal(t, []string{"NO", "WAY", "OUT"}, c.WallWords)
		assert.Equal(t, 1024, c.WindowWidth)
		assert.Equal(t, 768, c.WindowHeight)
		assert.True(t, c.Verbose)
	})

	t.Run("invalid values", func(t *testing.T) {
		cases := map[string]error{
			"MAZE_COLS":       ErrInvalidValue,
			"MAZE_SEED":       ErrInvalidValue,
			"MAZE_BREAKPOINT": ErrInvalidValue,
			"MAZE_VERBOSE":    ErrInvalidValue,
			"MAZE_COLLISION":  game.ErrUnknownCollisionModel,
		}
		for key, want := range cases {
			_, err := Parse(mapLookup(map[string]string{key: "bogus"}))
			assert.ErrorIs(t, err, want, key)
			assert.ErrorContains(t, err, key)
		}
		_, err := Parse(mapLookup(map[string]string{"MAZE_WALL_WORDS": " , ,"}))
		assert.ErrorIs(t, err, game.ErrEmptyVocabulary)
		_, err = Parse(mapLookup(map[string]string{"MAZE_ROWS": "0"}))
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MAZE_COLS=5\nMAZE_ROWS=6\n# comment\nMAZE_SEED=9\n"), 0o600))

	c, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Cols)
	assert.Equal(t, 6, c.Rows)
	assert.Equal(t, int64(9), c.Seed)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestSessionOptions(t *testing.T) {
	c := Default()
	c.Cols, c.Rows = 4, 3
	c.Seed, c.HasSeed = 11, true
	c.Collision = game.CollisionSegment

	s, err := game.NewSession(c.SessionOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Grid().Cols)
	assert.Equal(t, 3, s.Grid().Rows)

	again, err := game.NewSession(c.SessionOptions()...)
	require.NoError(t, err)
	assert.Equal(t, s.Grid().String(), again.Grid().String(), "seeded options should reproduce the maze")

	c.Cols = 99
	_, err = game.NewSession(c.SessionOptions()...)
	assert.ErrorIs(t, err, game.ErrInvalidDimensions)
}
