package maze

import "strings"

// InternalWalls returns the number of walls shared by two cells in a
// cols x rows grid: 2*R*C - R - C.
func InternalWalls(cols, rows int) int {
	return 2*cols*rows - rows - cols
}

// PassageCount returns how many internal walls have been removed.
func (g *Grid) PassageCount() int {
	n := 0
	for idx := range g.Cells {
		for _, s := range []Side{Right, Bottom} {
			if g.Neighbor(idx, s) != NoCell && !g.Cells[idx].Walls[s] {
				n++
			}
		}
	}
	return n
}

// Reachable returns how many cells can be reached from start through open walls.
func (g *Grid) Reachable(start int) int {
	if g.Cell(start) == nil {
		return 0
	}
	seen := make([]bool, len(g.Cells))
	seen[start] = true
	queue := []int{start}
	count := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++
		for _, s := range Sides {
			n := g.Neighbor(cur, s)
			if n == NoCell || seen[n] || g.Cells[cur].Walls[s] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return count
}

// IsPerfect reports whether the passage graph is a spanning tree: every cell
// reachable and exactly one fewer passage than cells.
func (g *Grid) IsPerfect() bool {
	if len(g.Cells) == 0 {
		return false
	}
	return g.Symmetric() &&
		g.PassageCount() == len(g.Cells)-1 &&
		g.Reachable(0) == len(g.Cells)
}

// Solve returns the cell indices of the shortest path from -> to, both ends
// included, or nil when to cannot be reached.
func (g *Grid) Solve(from, to int) []int {
	if g.Cell(from) == nil || g.Cell(to) == nil {
		return nil
	}
	cameFrom := make([]int, len(g.Cells))
	for i := range cameFrom {
		cameFrom[i] = NoCell
	}
	cameFrom[from] = from
	queue := []int{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			var path []int
			for cur != from {
				path = append(path, cur)
				cur = cameFrom[cur]
			}
			path = append(path, from)
			for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
				path[l], path[r] = path[r], path[l]
			}
			return path
		}
		for _, s := range Sides {
			n := g.Neighbor(cur, s)
			if n == NoCell || cameFrom[n] != NoCell || g.Cells[cur].Walls[s] {
				continue
			}
			cameFrom[n] = cur
			queue = append(queue, n)
		}
	}
	return nil
}

// String renders the grid as ASCII art.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.WriteString("+" + strings.Repeat("---+", g.Cols) + "\n")
	for j := 0; j < g.Rows; j++ {
		sb.WriteString("|")
		for i := 0; i < g.Cols; i++ {
			c := g.At(i, j)
			sb.WriteString("   ")
			if c.Walls[Right] {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n+")
		for i := 0; i < g.Cols; i++ {
			if g.At(i, j).Walls[Bottom] {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
