package maze

import (
	"math/rand"
	"testing"
)

func TestGenerate_PerfectMazeAcrossSeedsAndSizes(t *testing.T) {
	sizes := [][2]int{{10, 10}, {2, 2}, {2, 7}, {13, 4}, {30, 30}}
	for _, sz := range sizes {
		for seed := int64(1); seed <= 25; seed++ {
			g := NewGrid(sz[0], sz[1], nil, nil)
			Generate(g, rand.New(rand.NewSource(seed))) // #nosec G404 -- test
			n := sz[0] * sz[1]
			if got := g.PassageCount(); got != n-1 {
				t.Fatalf("%dx%d seed %d: %d passages, want %d", sz[0], sz[1], seed, got, n-1)
			}
			if got := g.Reachable(0); got != n {
				t.Fatalf("%dx%d seed %d: %d reachable, want %d", sz[0], sz[1], seed, got, n)
			}
			if !g.Symmetric() {
				t.Fatalf("%dx%d seed %d: asymmetric walls", sz[0], sz[1], seed)
			}
			if !g.IsPerfect() {
				t.Fatalf("%dx%d seed %d: not perfect", sz[0], sz[1], seed)
			}
		}
	}
}

func TestGenerate_TenByTenScenario(t *testing.T) {
	g := NewGrid(10, 10, nil, nil)
	Generate(g, rand.New(rand.NewSource(42))) // #nosec G404 -- test
	if g.PassageCount() != 99 {
		t.Fatalf("expected 99 passages, got %d", g.PassageCount())
	}
	if InternalWalls(10, 10)-g.PassageCount() != 81 {
		t.Fatalf("expected 81 internal walls left, got %d", InternalWalls(10, 10)-g.PassageCount())
	}
	path := g.Solve(g.Index(0, 0), g.Index(9, 9))
	if len(path) < 2 {
		t.Fatalf("start->exit path too short: %v", path)
	}
	if path[0] != 0 || path[len(path)-1] != 99 {
		t.Fatalf("path endpoints wrong: %d -> %d", path[0], path[len(path)-1])
	}
}

func TestGenerate_AllCellsVisited(t *testing.T) {
	g := NewGrid(6, 5, nil, nil)
	Generate(g, rand.New(rand.NewSource(9))) // #nosec G404 -- test
	for idx, c := range g.Cells {
		if !c.Visited {
			t.Fatalf("cell %d never visited", idx)
		}
		if c.OpenSides() == 0 {
			t.Fatalf("cell %d is isolated", idx)
		}
	}
}

func TestGenerationState_StepsUntilStackEmpty(t *testing.T) {
	g := NewGrid(4, 4, nil, nil)
	s := NewGenerationState(g)
	rng := rand.New(rand.NewSource(3)) // #nosec G404 -- test
	steps := 0
	maxDepth := 0
	for s.Step(rng) {
		steps++
		if len(s.Stack) > maxDepth {
			maxDepth = len(s.Stack)
		}
		if steps > 1000 {
			t.Fatal("generation did not terminate")
		}
	}
	if !s.Done() || len(s.Stack) != 0 {
		t.Fatalf("expected finished search with empty stack, got done=%v stack=%d", s.Done(), len(s.Stack))
	}
	// 15 carve moves + 15 backtracks at most.
	if steps > 2*(g.Len()-1) {
		t.Fatalf("too many steps: %d", steps)
	}
	if maxDepth == 0 {
		t.Fatal("stack never grew")
	}
	if s.Step(rng) {
		t.Fatal("Step after completion should return false")
	}
}

func TestGenerate_SeededRunsAreReproducible(t *testing.T) {
	a := NewGrid(8, 8, nil, nil)
	b := NewGrid(8, 8, nil, nil)
	Generate(a, rand.New(rand.NewSource(77))) // #nosec G404 -- test
	Generate(b, rand.New(rand.NewSource(77))) // #nosec G404 -- test
	if a.String() != b.String() {
		t.Fatal("same seed should carve the same maze")
	}
}
