package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Wicked-Maze/internal/game"
)

const (
	panelWidth      = 300
	panelMaxEntries = 60
	panelLineHeight = 14
)

// EventPanel is a ring buffer of recent session events rendered beside the maze.
type EventPanel struct {
	entries []game.Event
	head    int
	count   int
	seen    int // entries of the source log already copied
}

// NewEventPanel creates a panel with a fixed capacity.
func NewEventPanel() *EventPanel {
	return &EventPanel{
		entries: make([]game.Event, panelMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (p *EventPanel) Add(e game.Event) {
	p.entries[p.head] = e
	p.head = (p.head + 1) % panelMaxEntries
	if p.count < panelMaxEntries {
		p.count++
	}
}

// Sync copies entries added to el since the last call.
func (p *EventPanel) Sync(el *game.EventLog) {
	if el.Len() < p.seen {
		p.seen = 0
	}
	for _, e := range el.Since(p.seen) {
		p.Add(e)
	}
	p.seen = el.Len()
}

// Recent returns entries in chronological order (oldest first).
func (p *EventPanel) Recent() []game.Event {
	result := make([]game.Event, p.count)
	for i := 0; i < p.count; i++ {
		idx := (p.head - p.count + i + panelMaxEntries) % panelMaxEntries
		result[i] = p.entries[idx]
	}
	return result
}

// Draw renders the panel at panelX spanning the full height.
func (p *EventPanel) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(panelWidth), float32(panelH), color.RGBA{R: 6, G: 4, B: 40, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 50, B: 160, A: 255}, false)
	vector.FillRect(screen, float32(panelX), 0, float32(panelWidth), 16, color.RGBA{R: 20, G: 14, B: 90, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 0)

	entries := p.Recent()
	maxVisible := (panelH - 24) / panelLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(panelWidth-4), float32(panelLineHeight), color.RGBA{R: 30, G: 24, B: 110, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, categoryColor(e.Category), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %-9s %s", e.Tick, e.Key, e.Value), panelX+12, y)
		y += panelLineHeight
	}
}

func categoryColor(c string) color.RGBA {
	switch c {
	case "state":
		return color.RGBA{R: 90, G: 220, B: 120, A: 255}
	case "collision":
		return color.RGBA{R: 230, G: 70, B: 70, A: 255}
	case "input":
		return color.RGBA{R: 240, G: 200, B: 80, A: 255}
	default:
		return color.RGBA{R: 150, G: 150, B: 200, A: 255}
	}
}
