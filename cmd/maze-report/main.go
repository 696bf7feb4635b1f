package main

import (
	"flag"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Garsondee/Wicked-Maze/internal/game"
	"github.com/Garsondee/Wicked-Maze/internal/maze"
)

type runStats struct {
	runIndex int
	seed     int64

	won        bool
	winTick    int
	ticks      int
	resets     int
	collisions int

	perfect     bool
	generated   int
	dragStarts  int
	pathCells   int
	deadEnds    int
	resetCauses map[string]int
}

type runConfig struct {
	size      float64
	cols      int
	rows      int
	mode      string
	collision game.CollisionModel
	maxTicks  int
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var size float64
	var cols, rows int
	var mode string
	var collision string
	var ticks int

	flag.IntVar(&runs, "runs", 5, "number of autopilot runs")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&size, "size", 600, "square canvas side in pixels")
	flag.IntVar(&cols, "cols", game.DefaultCols, "maze columns")
	flag.IntVar(&rows, "rows", game.DefaultRows, "maze rows")
	flag.StringVar(&mode, "mode", "desktop", "control mode (desktop, mobile)")
	flag.StringVar(&collision, "collision", "cell", "collision model (cell, segment)")
	flag.IntVar(&ticks, "ticks", 20000, "tick budget per run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if mode != "desktop" && mode != "mobile" {
		fmt.Printf("error: unsupported mode %q (supported: desktop, mobile)\n", mode)
		return
	}
	cm, err := game.ParseCollisionModel(collision)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	rc := runConfig{size: size, cols: cols, rows: rows, mode: mode, collision: cm, maxTicks: ticks}

	fmt.Printf("=== Headless Maze Report ===\n")
	fmt.Printf("mode=%s collision=%s grid=%dx%d size=%.0f runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		mode, cm, cols, rows, size, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runAutopilot(i+1, seed, rc)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			return
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// breakpointFor pins the session to the requested control mode.
func breakpointFor(mode string) float64 {
	if mode == "mobile" {
		return math.MaxFloat64
	}
	return 0
}

func runAutopilot(runIndex int, seed int64, rc runConfig) (runStats, error) {
	el := game.NewEventLog(false)
	s, err := game.NewSession(
		game.WithSeed(seed),
		game.WithGridSize(rc.cols, rc.rows),
		game.WithCanvas(rc.size, rc.size),
		game.WithBreakpoint(breakpointFor(rc.mode)),
		game.WithCollision(rc.collision),
		game.WithEventLog(el),
	)
	if err != nil {
		return runStats{}, err
	}
	g := s.Grid()
	perfect := g.IsPerfect()
	path := g.Solve(0, g.Index(rc.cols-1, rc.rows-1))
	deadEnds := countDeadEnds(g)

	ap := game.NewAutopilot(s)
	for k := 0; k < rc.maxTicks && !s.Won(); k++ {
		ap.Step(s)
		s.Tick()
	}
	ap.Step(s)

	entries := el.Entries()
	return runStats{
		runIndex:    runIndex,
		seed:        seed,
		won:         s.Won(),
		winTick:     firstTick(entries, "state", "won"),
		ticks:       s.TickCount(),
		resets:      s.Resets(),
		collisions:  s.Collisions(),
		perfect:     perfect,
		generated:   el.Count("maze", "generated"),
		dragStarts:  el.Count("input", "drag_start"),
		pathCells:   len(path),
		deadEnds:    deadEnds,
		resetCauses: el.Breakdown("state", "reset"),
	}, nil
}

// countDeadEnds counts cells with a single opening.
func countDeadEnds(g *maze.Grid) int {
	n := 0
	for idx := range g.Cells {
		if g.Cells[idx].OpenSides() == 1 {
			n++
		}
	}
	return n
}

func firstTick(entries []game.Event, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome: won=%v win_tick=%d ticks=%d\n", rs.won, rs.winTick, rs.ticks)
	fmt.Printf("maze: perfect=%v solution_cells=%d dead_ends=%d generated=%d\n", rs.perfect, rs.pathCells, rs.deadEnds, rs.generated)
	fmt.Printf("events: resets=%d collisions=%d drag_starts=%d\n", rs.resets, rs.collisions, rs.dragStarts)
	fmt.Printf("reset_causes: %s\n", joinCounts(rs.resetCauses))
	fmt.Println()
}

func printAggregate(all []runStats) {
	wins := 0
	imperfect := 0
	totalResets := 0
	totalCollisions := 0
	totalPath := 0
	totalDeadEnds := 0
	winTicks := make([]int, 0, len(all))
	causes := map[string]int{}

	for _, rs := range all {
		if rs.won {
			wins++
		}
		if !rs.perfect {
			imperfect++
		}
		totalResets += rs.resets
		totalCollisions += rs.collisions
		totalPath += rs.pathCells
		totalDeadEnds += rs.deadEnds
		if rs.winTick >= 0 {
			winTicks = append(winTicks, rs.winTick)
		}
		for k, v := range rs.resetCauses {
			causes[k] += v
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d wins=%d win_rate=%.0f%% imperfect_mazes=%d\n", len(all), wins, avg(wins*100, len(all)), imperfect)
	fmt.Printf("avg_per_run: resets=%.1f collisions=%.1f solution_cells=%.1f dead_ends=%.1f\n",
		avg(totalResets, len(all)), avg(totalCollisions, len(all)), avg(totalPath, len(all)), avg(totalDeadEnds, len(all)))
	fmt.Printf("avg_win_tick=%s\n", avgTickString(winTicks))
	fmt.Printf("reset_causes: %s\n", joinCounts(causes))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, m[k])
	}
	return strings.Join(parts, ",")
}
