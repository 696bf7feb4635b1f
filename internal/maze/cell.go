package maze

// Side identifies one of the four walls of a cell. The numeric order matches
// the wall flag order: top, right, bottom, left.
type Side uint8

const (
	Top Side = iota
	Right
	Bottom
	Left
	sideCount
)

// Sides lists every side in wall-flag order.
var Sides = [sideCount]Side{Top, Right, Bottom, Left}

// sideOffsets holds the (di, dj) step from a cell to its neighbour on each side.
var sideOffsets = [sideCount][2]int{
	Top:    {0, -1},
	Right:  {1, 0},
	Bottom: {0, 1},
	Left:   {-1, 0},
}

// Opposite returns the side facing s across a shared wall.
func (s Side) Opposite() Side {
	return (s + 2) % sideCount
}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Cell is one square of the maze.
type Cell struct {
	I, J    int               // column, row
	Walls   [sideCount]bool   // true = wall present
	Visited bool              // generation bookkeeping only
	Labels  [sideCount]string // per-wall word drawn by the renderer
}

// HasWall reports whether the wall on side s is present.
func (c *Cell) HasWall(s Side) bool {
	return c.Walls[s]
}

// OpenSides returns how many of the cell's walls have been removed.
func (c *Cell) OpenSides() int {
	n := 0
	for _, w := range c.Walls {
		if !w {
			n++
		}
	}
	return n
}
