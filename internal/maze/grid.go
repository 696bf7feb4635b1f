package maze

import (
	"math"
	"math/rand"
)

// NoCell is the index returned for coordinates outside the grid.
const NoCell = -1

// Grid is a fixed-size collection of cells addressed by index = i + j*Cols.
type Grid struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewGrid builds a grid with every wall present. When vocabulary is non-empty
// each wall gets a label drawn uniformly from it using rng.
func NewGrid(cols, rows int, rng *rand.Rand, vocabulary []string) *Grid {
	g := &Grid{
		Cols:  cols,
		Rows:  rows,
		Cells: make([]Cell, cols*rows),
	}
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			c := &g.Cells[i+j*cols]
			c.I, c.J = i, j
			c.Walls = [sideCount]bool{true, true, true, true}
			if len(vocabulary) > 0 && rng != nil {
				for s := range c.Labels {
					c.Labels[s] = vocabulary[rng.Intn(len(vocabulary))]
				}
			}
		}
	}
	return g
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.Cells)
}

// Index maps (i, j) to a cell index, or NoCell when out of range.
func (g *Grid) Index(i, j int) int {
	if i < 0 || j < 0 || i >= g.Cols || j >= g.Rows {
		return NoCell
	}
	return i + j*g.Cols
}

// At returns the cell at (i, j), or nil when out of range.
func (g *Grid) At(i, j int) *Cell {
	return g.Cell(g.Index(i, j))
}

// Cell returns the cell at idx, or nil for NoCell and other invalid indices.
func (g *Grid) Cell(idx int) *Cell {
	if idx < 0 || idx >= len(g.Cells) {
		return nil
	}
	return &g.Cells[idx]
}

// Neighbor returns the index of the cell across side s, or NoCell at the edge.
func (g *Grid) Neighbor(idx int, s Side) int {
	c := g.Cell(idx)
	if c == nil {
		return NoCell
	}
	d := sideOffsets[s]
	return g.Index(c.I+d[0], c.J+d[1])
}

// sideToward returns the side of a that faces b, or false when the cells are
// not orthogonally adjacent.
func (g *Grid) sideToward(a, b int) (Side, bool) {
	ca, cb := g.Cell(a), g.Cell(b)
	if ca == nil || cb == nil {
		return 0, false
	}
	di, dj := cb.I-ca.I, cb.J-ca.J
	for _, s := range Sides {
		if sideOffsets[s][0] == di && sideOffsets[s][1] == dj {
			return s, true
		}
	}
	return 0, false
}

// RemoveWallBetween clears the facing walls of two adjacent cells. Cells that
// are not adjacent are left untouched.
func (g *Grid) RemoveWallBetween(a, b int) {
	s, ok := g.sideToward(a, b)
	if !ok {
		return
	}
	g.Cells[a].Walls[s] = false
	g.Cells[b].Walls[s.Opposite()] = false
}

// HasWallBetween reports whether a wall separates a from b. Non-adjacent
// cells are always separated.
func (g *Grid) HasWallBetween(a, b int) bool {
	s, ok := g.sideToward(a, b)
	if !ok {
		return true
	}
	return g.Cells[a].Walls[s]
}

// Symmetric reports whether every shared wall is flagged identically on both
// of its cells.
func (g *Grid) Symmetric() bool {
	for idx := range g.Cells {
		for _, s := range []Side{Right, Bottom} {
			n := g.Neighbor(idx, s)
			if n == NoCell {
				continue
			}
			if g.Cells[idx].Walls[s] != g.Cells[n].Walls[s.Opposite()] {
				return false
			}
		}
	}
	return true
}

// Point is a position in canvas space.
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Valid reports whether both coordinates are finite numbers.
func (p Point) Valid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Geometry maps grid cells onto a canvas. Cells are square.
type Geometry struct {
	CellSize float64
	Width    float64
	Height   float64
}

// NewGeometry fits g's cells into a width x height canvas.
func NewGeometry(g *Grid, width, height float64) Geometry {
	cell := math.Min(width/float64(g.Cols), height/float64(g.Rows))
	return Geometry{CellSize: cell, Width: width, Height: height}
}

// CellOf returns the (i, j) coordinates of the cell containing p. The result
// may be out of range; callers resolve it with Grid.Index.
func (geo Geometry) CellOf(p Point) (int, int) {
	return int(math.Floor(p.X / geo.CellSize)), int(math.Floor(p.Y / geo.CellSize))
}

// Center returns the canvas centre of cell (i, j).
func (geo Geometry) Center(i, j int) Point {
	return Point{
		X: (float64(i) + 0.5) * geo.CellSize,
		Y: (float64(j) + 0.5) * geo.CellSize,
	}
}

// Contains reports whether a circle of the given radius centred on p lies
// fully inside the canvas.
func (geo Geometry) Contains(p Point, radius float64) bool {
	return p.X-radius >= 0 && p.X+radius <= geo.Width &&
		p.Y-radius >= 0 && p.Y+radius <= geo.Height
}

// Clamp pulls p inside the canvas, keeping radius clearance from each edge.
func (geo Geometry) Clamp(p Point, radius float64) Point {
	return Point{
		X: clamp(p.X, radius, geo.Width-radius),
		Y: clamp(p.Y, radius, geo.Height-radius),
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
