// Package screen hosts a maze session in an ebiten window.
package screen

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Wicked-Maze/internal/config"
	"github.com/Garsondee/Wicked-Maze/internal/game"
	"github.com/Garsondee/Wicked-Maze/internal/maze"
)

const statusHeight = 18

// Game implements ebiten.Game around a single maze session.
type Game struct {
	session    *game.Session
	breakpoint float64
	faces      *faces
	panel      *EventPanel
	showPanel  bool
	prevKeys   map[ebiten.Key]bool

	// Window and canvas layout, recomputed from Layout each frame.
	outW, outH int
	offX, offY float64
	side       float64
	pad        arrowPad

	held       game.Intents // directions this host has pressed
	mouseX     int
	mouseY     int
	touch      ebiten.TouchID
	touchOn    bool
	touchX     int
	touchY     int
	status     string
	statusTick int
}

// New builds the window host from cfg.
func New(cfg config.Config) (*Game, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}
	el := game.NewEventLog(cfg.Verbose)
	if cfg.Verbose {
		el.Mirror(log.New(os.Stderr, "[MAZE] ", log.LstdFlags))
	}
	vw, vh := viewportFor(cfg.WindowWidth, cfg.WindowHeight, cfg.Breakpoint)
	opts := append(cfg.SessionOptions(),
		game.WithCanvas(vw, vh),
		game.WithEventLog(el),
	)
	s, err := game.NewSession(opts...)
	if err != nil {
		return nil, err
	}
	g := &Game{
		session:    s,
		breakpoint: cfg.Breakpoint,
		faces:      f,
		panel:      NewEventPanel(),
		prevKeys:   make(map[ebiten.Key]bool),
		outW:       cfg.WindowWidth,
		outH:       cfg.WindowHeight,
	}
	g.panel.Sync(s.Log())
	return g, nil
}

// Session exposes the hosted session.
func (g *Game) Session() *game.Session {
	return g.session
}

// Update applies layout and input, then advances the session one tick.
func (g *Game) Update() error {
	g.applyLayout()
	g.handleKeys()
	g.handleDirections()
	g.handlePointer()
	g.session.Tick()
	g.panel.Sync(g.session.Log())
	return nil
}

// applyLayout reports the usable viewport to the session and positions the
// canvas and arrow pad inside the window.
func (g *Game) applyLayout() {
	w, h := viewportFor(g.outW, g.outH, g.breakpoint)
	g.session.OnResize(w, h)

	geo := g.session.Geometry()
	g.side = geo.Width
	g.offX = math.Max(0, (w-g.side)/2)
	g.offY = 0
	g.pad = newArrowPad(0, g.side+4, w)
}

// viewportFor returns the area left for the maze in a window of the given
// size once the status line and (in mobile mode) arrow pad are placed. The
// event panel is an overlay and takes no space.
func viewportFor(outW, outH int, breakpoint float64) (float64, float64) {
	w := float64(outW)
	h := float64(outH) - statusHeight
	if game.ModeForWidth(w, breakpoint) == game.ModeMobile {
		h -= padHeight
	}
	return w, h
}

// handleKeys processes command keys (edge-triggered).
func (g *Game) handleKeys() {
	currentKeys := map[ebiten.Key]bool{}

	// R: new maze.
	currentKeys[ebiten.KeyR] = ebiten.IsKeyPressed(ebiten.KeyR)
	if currentKeys[ebiten.KeyR] && !g.prevKeys[ebiten.KeyR] {
		g.session.Reset()
	}

	// C: copy the maze as ASCII.
	currentKeys[ebiten.KeyC] = ebiten.IsKeyPressed(ebiten.KeyC)
	if currentKeys[ebiten.KeyC] && !g.prevKeys[ebiten.KeyC] {
		g.copyMaze()
	}

	// L: toggle the event panel overlay.
	currentKeys[ebiten.KeyL] = ebiten.IsKeyPressed(ebiten.KeyL)
	if currentKeys[ebiten.KeyL] && !g.prevKeys[ebiten.KeyL] {
		g.showPanel = !g.showPanel
	}

	g.prevKeys = currentKeys
}

func (g *Game) copyMaze() {
	if err := clipboard.WriteAll(g.session.Grid().String()); err != nil {
		log.Printf("[SCREEN] [WARN] clipboard: %v", err)
		g.setStatus("clipboard unavailable")
		return
	}
	g.setStatus("maze copied to clipboard")
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTick = g.session.TickCount()
}

// handleDirections gathers held arrows, WASD and arrow-pad presses and syncs
// them into the session.
func (g *Game) handleDirections() {
	var want game.Intents
	want.Up = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	want.Down = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	want.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	want.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)

	have := g.held
	if g.session.Mode() == game.ModeMobile {
		for _, id := range ebiten.AppendTouchIDs(nil) {
			x, y := ebiten.TouchPosition(id)
			if d, ok := g.pad.hit(float64(x), float64(y)); ok {
				want.Set(d, true)
			}
		}
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if d, ok := g.pad.hit(float64(x), float64(y)); ok {
				want.Set(d, true)
			}
		}
		// Resets clear the session's intents; re-press whatever is still held.
		have = g.session.Intents()
	}
	syncIntents(g.session, have, want)
	g.held = want
}

// handlePointer forwards mouse and the first touch as canvas pointer events.
func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.pointerDown(mx, my)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.pointerUp(mx, my)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && (mx != g.mouseX || my != g.mouseY):
		g.pointerMove(mx, my)
	}
	g.mouseX, g.mouseY = mx, my

	if g.touchOn {
		if inpututil.IsTouchJustReleased(g.touch) {
			g.touchOn = false
			g.pointerUp(g.touchX, g.touchY)
		} else if x, y := ebiten.TouchPosition(g.touch); x != g.touchX || y != g.touchY {
			g.touchX, g.touchY = x, y
			g.pointerMove(x, y)
		}
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); !g.touchOn && len(ids) > 0 {
		g.touch, g.touchOn = ids[0], true
		g.touchX, g.touchY = ebiten.TouchPosition(ids[0])
		g.pointerDown(g.touchX, g.touchY)
	}
}

func (g *Game) onCanvas(x, y int) bool {
	fx, fy := float64(x)-g.offX, float64(y)-g.offY
	return fx >= 0 && fy >= 0 && fx <= g.side && fy <= g.side
}

func (g *Game) pointerDown(x, y int) {
	if g.session.Won() {
		if g.onCanvas(x, y) {
			g.session.Reset()
		}
		return
	}
	g.session.OnPointerDown(float64(x)-g.offX, float64(y)-g.offY)
}

func (g *Game) pointerMove(x, y int) {
	g.session.OnPointerMove(float64(x)-g.offX, float64(y)-g.offY)
}

func (g *Game) pointerUp(x, y int) {
	g.session.OnPointerUp(float64(x)-g.offX, float64(y)-g.offY)
}

// Draw renders the maze or the win screen, then the pad, status and panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.session.Won() {
		g.drawWin(screen)
	} else {
		g.session.Render(&imageSink{dst: screen, offX: g.offX, offY: g.offY, side: g.side, faces: g.faces})
	}
	if g.session.Mode() == game.ModeMobile {
		g.pad.draw(screen, g.session.Intents())
	}
	g.drawStatus(screen)
	if g.showPanel {
		g.panel.Draw(screen, panelX(g.outW), g.outH)
	}
}

func (g *Game) drawWin(screen *ebiten.Image) {
	sink := &imageSink{dst: screen, offX: g.offX, offY: g.offY, side: g.side, faces: g.faces}
	sink.Clear(game.Background)
	mid := maze.Point{X: g.side / 2, Y: g.side / 2}
	size := math.Max(g.session.Mode().LabelSize()*2, 24)
	sink.drawText("YOU WIN", g.faces.bold, size, mid, 0, labelColor)
	hint := maze.Point{X: mid.X, Y: mid.Y + size}
	sink.drawText("tap or press R to play again", g.faces.regular, size/3, hint, 0, wallColor)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	msg := fmt.Sprintf("%s  resets:%d  R:new  C:copy  L:log", g.session.Mode(), g.session.Resets())
	if g.status != "" && g.session.TickCount()-g.statusTick < 120 {
		msg = g.status
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, g.outH-statusHeight)
}

// panelX places the event panel against the right edge of the window.
func panelX(outW int) int {
	return max(0, outW-panelWidth)
}

// Layout accepts the window size so the maze can follow resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.outW, g.outH = outsideWidth, outsideHeight
	}
	return g.outW, g.outH
}

var (
	_ ebiten.Game     = (*Game)(nil)
	_ game.RenderSink = (*imageSink)(nil)
)
