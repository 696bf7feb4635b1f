package maze

import "math"

// Oracle decides whether moving a ball of the given radius from one point to
// another is blocked by a wall or by the canvas boundary.
type Oracle interface {
	WouldCollide(from, to Point, radius float64) bool
	// StepLimit is the longest per-axis displacement the oracle can judge
	// in a single call without missing a wall.
	StepLimit(radius float64) float64
}

// CellOracle checks only the walls of the cell containing the starting point.
// That is sound while every step stays within StepLimit.
type CellOracle struct {
	grid *Grid
	geo  Geometry
}

// NewCellOracle binds an oracle to a grid and its canvas geometry.
func NewCellOracle(g *Grid, geo Geometry) *CellOracle {
	return &CellOracle{grid: g, geo: geo}
}

// WouldCollide implements Oracle.
func (o *CellOracle) WouldCollide(from, to Point, radius float64) bool {
	if !o.geo.Contains(to, radius) {
		return true
	}
	i, j := o.geo.CellOf(from)
	c := o.grid.At(i, j)
	if c == nil {
		return true
	}
	w := o.geo.CellSize
	if to.X < from.X && c.Walls[Left] && to.X-radius < float64(i)*w {
		return true
	}
	if to.X > from.X && c.Walls[Right] && to.X+radius > float64(i+1)*w {
		return true
	}
	if to.Y < from.Y && c.Walls[Top] && to.Y-radius < float64(j)*w {
		return true
	}
	if to.Y > from.Y && c.Walls[Bottom] && to.Y+radius > float64(j+1)*w {
		return true
	}
	return false
}

// StepLimit implements Oracle. A ball starting inside a cell cannot reach the
// far wall of the next cell when it moves at most CellSize-radius.
func (o *CellOracle) StepLimit(radius float64) float64 {
	return math.Max(o.geo.CellSize-radius, 1)
}

// Segment is a wall drawn as a line in canvas space.
type Segment struct {
	A, B Point
	Cell int  // owning cell index
	Side Side // side of the owning cell
}

// Segments lists every present wall once. Shared walls are attributed to the
// cell above or to the left.
func (g *Grid) Segments(geo Geometry) []Segment {
	var out []Segment
	w := geo.CellSize
	for idx := range g.Cells {
		c := &g.Cells[idx]
		x0, y0 := float64(c.I)*w, float64(c.J)*w
		x1, y1 := x0+w, y0+w
		for _, s := range Sides {
			if !c.Walls[s] {
				continue
			}
			// The neighbour on the left/top already emitted this wall.
			if (s == Left || s == Top) && g.Neighbor(idx, s) != NoCell {
				continue
			}
			seg := Segment{Cell: idx, Side: s}
			switch s {
			case Top:
				seg.A, seg.B = Point{x0, y0}, Point{x1, y0}
			case Right:
				seg.A, seg.B = Point{x1, y0}, Point{x1, y1}
			case Bottom:
				seg.A, seg.B = Point{x0, y1}, Point{x1, y1}
			case Left:
				seg.A, seg.B = Point{x0, y0}, Point{x0, y1}
			}
			out = append(out, seg)
		}
	}
	return out
}

// SegmentOracle tests the proposed centre against every wall segment. Each
// check is O(walls), which is fine for the small grids this game builds
// (at most 30x30) but should not be carried to large mazes.
type SegmentOracle struct {
	geo      Geometry
	segments []Segment
}

// NewSegmentOracle caches the wall segments of g.
func NewSegmentOracle(g *Grid, geo Geometry) *SegmentOracle {
	return &SegmentOracle{geo: geo, segments: g.Segments(geo)}
}

// WouldCollide implements Oracle.
func (o *SegmentOracle) WouldCollide(_, to Point, radius float64) bool {
	if !o.geo.Contains(to, radius) {
		return true
	}
	for _, s := range o.segments {
		if PointSegmentDistance(to, s.A, s.B) < radius {
			return true
		}
	}
	return false
}

// StepLimit implements Oracle. A step shorter than the ball diameter cannot
// jump a zero-width wall without passing within radius of it.
func (o *SegmentOracle) StepLimit(radius float64) float64 {
	return math.Max(1.5*radius, 1)
}

// PointSegmentDistance returns the distance from p to the segment a-b.
func PointSegmentDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-12 {
		return p.Dist(a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = clamp(t, 0, 1)
	return p.Dist(Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// Sweep reports whether moving from -> to collides anywhere along the way.
// The path is split into sub-steps no longer than the oracle's step limit and
// each sub-step is judged from the end of the previous one.
func Sweep(o Oracle, from, to Point, radius float64) bool {
	dist := from.Dist(to)
	if dist == 0 {
		return false
	}
	n := int(math.Ceil(dist / o.StepLimit(radius)))
	prev := from
	for k := 1; k <= n; k++ {
		t := float64(k) / float64(n)
		next := Point{X: from.X + (to.X-from.X)*t, Y: from.Y + (to.Y-from.Y)*t}
		if o.WouldCollide(prev, next, radius) {
			return true
		}
		prev = next
	}
	return false
}
