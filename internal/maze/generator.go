package maze

import "math/rand"

// GenerationState carries the randomised depth-first search while it carves
// passages. It is discarded once Step reports completion.
type GenerationState struct {
	grid    *Grid
	Stack   []int // previously visited cells, most recent last
	Current int
	done    bool
}

// NewGenerationState starts a search at cell (0,0).
func NewGenerationState(g *Grid) *GenerationState {
	s := &GenerationState{grid: g, Current: g.Index(0, 0)}
	if s.Current == NoCell {
		s.done = true
		return s
	}
	g.Cells[s.Current].Visited = true
	return s
}

// Step advances the search by one move: carve into a random unvisited
// neighbour, or backtrack when there is none. It returns false once the
// stack is exhausted and nothing is left to carve.
func (s *GenerationState) Step(rng *rand.Rand) bool {
	if s.done {
		return false
	}
	candidates := s.unvisitedNeighbors()
	switch {
	case len(candidates) > 0:
		next := candidates[rng.Intn(len(candidates))]
		s.grid.Cells[next].Visited = true
		s.Stack = append(s.Stack, s.Current)
		s.grid.RemoveWallBetween(s.Current, next)
		s.Current = next
	case len(s.Stack) > 0:
		last := len(s.Stack) - 1
		s.Current = s.Stack[last]
		s.Stack = s.Stack[:last]
	default:
		s.done = true
	}
	return !s.done
}

// Done reports whether the search has finished.
func (s *GenerationState) Done() bool {
	return s.done
}

func (s *GenerationState) unvisitedNeighbors() []int {
	out := make([]int, 0, sideCount)
	for _, side := range Sides {
		n := s.grid.Neighbor(s.Current, side)
		if n != NoCell && !s.grid.Cells[n].Visited {
			out = append(out, n)
		}
	}
	return out
}

// Generate carves a perfect maze into g using recursive backtracking.
func Generate(g *Grid, rng *rand.Rand) {
	s := NewGenerationState(g)
	for s.Step(rng) {
	}
}
