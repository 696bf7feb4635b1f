package term

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Wicked-Maze/internal/config"
	"github.com/Garsondee/Wicked-Maze/internal/game"
)

// tapTicks is how long a key event holds its direction. Terminals report
// presses and auto-repeats but never releases.
const tapTicks = 4

// Host runs a session against a tcell screen.
type Host struct {
	screen  tcell.Screen
	session *game.Session
	raster  *Raster

	held        map[game.Direction]int // ticks left before an automatic KeyUp
	pointerDown bool
	status      string
}

// New wraps an initialised screen. With drag set the session always uses
// mouse drag; otherwise it always uses directional keys.
func New(screen tcell.Screen, cfg config.Config, drag bool) (*Host, error) {
	bp := math.MaxFloat64
	if drag {
		bp = 0
	}
	w, h := screen.Size()
	opts := append(cfg.SessionOptions(),
		game.WithBreakpoint(bp),
		game.WithCanvas(viewport(w, h)),
		game.WithEventLog(game.NewEventLog(cfg.Verbose)),
	)
	s, err := game.NewSession(opts...)
	if err != nil {
		return nil, err
	}
	screen.EnableMouse()
	return &Host{
		screen:  screen,
		session: s,
		raster:  NewRaster(w, h),
		held:    make(map[game.Direction]int),
	}, nil
}

// viewport converts a terminal size to canvas pixels, keeping the last row
// for the status line.
func viewport(w, h int) (float64, float64) {
	return float64(w) * colPx, float64(h-1) * rowPx
}

// Session exposes the hosted session.
func (h *Host) Session() *game.Session {
	return h.session
}

// Run polls events on a reader goroutine and ticks at ~60 TPS until the
// user quits.
func (h *Host) Run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !h.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			h.Step()
			h.Draw()
		}
	}
}

// HandleEvent applies one terminal event. It returns false on quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.raster = NewRaster(w, ht)
		h.session.OnResize(viewport(w, ht))
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		h.tap(game.DirUp)
	case tcell.KeyDown:
		h.tap(game.DirDown)
	case tcell.KeyLeft:
		h.tap(game.DirLeft)
	case tcell.KeyRight:
		h.tap(game.DirRight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			h.session.Reset()
			h.status = ""
		case 'c':
			if err := clipboard.WriteAll(h.session.Grid().String()); err != nil {
				log.Printf("[TERM] [WARN] clipboard: %v", err)
				h.status = "clipboard unavailable"
			} else {
				h.status = "maze copied"
			}
		case 'k', 'w':
			h.tap(game.DirUp)
		case 'j', 's':
			h.tap(game.DirDown)
		case 'h', 'a':
			h.tap(game.DirLeft)
		case 'l', 'd':
			h.tap(game.DirRight)
		}
	}
	return true
}

// tap presses d, or extends the hold if it is already pressed.
func (h *Host) tap(d game.Direction) {
	if _, ok := h.held[d]; !ok {
		h.session.OnKeyDown(d)
	}
	h.held[d] = tapTicks
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	px, py := (float64(x)+0.5)*colPx, (float64(y)+0.5)*rowPx
	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !h.pointerDown:
		h.pointerDown = true
		if h.session.Won() {
			h.session.Reset()
			return
		}
		h.session.OnPointerDown(px, py)
	case pressed:
		h.session.OnPointerMove(px, py)
	case h.pointerDown:
		h.pointerDown = false
		h.session.OnPointerUp(px, py)
	}
}

// Step releases expired taps and advances the session one tick.
func (h *Host) Step() {
	for d, left := range h.held {
		if left <= 1 {
			delete(h.held, d)
			h.session.OnKeyUp(d)
			continue
		}
		h.held[d] = left - 1
	}
	h.session.Tick()
}

// Draw renders the session and status line and shows the screen.
func (h *Host) Draw() {
	s := h.session
	if s.Won() {
		h.raster.Clear(game.Background)
		st := h.raster.style().Foreground(tcell.ColorWhite).Bold(true)
		msg := "YOU WIN"
		h.raster.Text((h.raster.W-len(msg))/2, h.raster.H/2-1, msg, st)
		hint := "press r or click to play again"
		h.raster.Text((h.raster.W-len(hint))/2, h.raster.H/2+1, hint, h.raster.style())
	} else {
		s.Render(h.raster)
	}
	status := h.status
	if status == "" {
		status = fmt.Sprintf("%s  resets:%d  arrows/hjkl move  r new  c copy  q quit", s.Mode(), s.Resets())
	}
	for x := 0; x < h.raster.W; x++ {
		h.raster.Set(x, h.raster.H-1, ' ', tcell.StyleDefault)
	}
	h.raster.Text(0, h.raster.H-1, status, tcell.StyleDefault.Reverse(true))
	h.raster.Flush(h.screen)
	h.screen.Show()
}
