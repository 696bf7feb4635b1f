package screen

import (
	"fmt"
	"testing"

	"github.com/Garsondee/Wicked-Maze/internal/game"
)

func TestEventPanel_RingBufferKeepsNewest(t *testing.T) {
	p := NewEventPanel()
	for k := 0; k < panelMaxEntries+5; k++ {
		p.Add(game.Event{Tick: k, Key: fmt.Sprint(k)})
	}
	got := p.Recent()
	if len(got) != panelMaxEntries {
		t.Fatalf("Recent() has %d entries, want %d", len(got), panelMaxEntries)
	}
	if got[0].Tick != 5 || got[len(got)-1].Tick != panelMaxEntries+4 {
		t.Fatalf("expected ticks 5..%d, got %d..%d", panelMaxEntries+4, got[0].Tick, got[len(got)-1].Tick)
	}
}

func TestEventPanel_SyncCopiesOnlyNewEntries(t *testing.T) {
	el := game.NewEventLog(false)
	p := NewEventPanel()
	el.Add(1, "s", "maze", "generated", "", 0)
	p.Sync(el)
	p.Sync(el)
	if n := len(p.Recent()); n != 1 {
		t.Fatalf("double sync copied %d entries, want 1", n)
	}
	el.Add(2, "s", "state", "reset", "manual", 1)
	p.Sync(el)
	got := p.Recent()
	if len(got) != 2 || got[1].Key != "reset" {
		t.Fatalf("unexpected panel contents %+v", got)
	}
}

func TestArrowPad_Hit(t *testing.T) {
	pad := newArrowPad(0, 400, 300)
	for _, b := range pad.buttons {
		d, ok := pad.hit(b.x+b.w/2, b.y+b.h/2)
		if !ok || d != b.dir {
			t.Fatalf("centre of %s button hit %v (ok=%v)", b.dir, d, ok)
		}
	}
	if _, ok := pad.hit(2, 402); ok {
		t.Fatal("pad corner outside the buttons should not hit")
	}
	// Buttons must not overlap.
	for i, a := range pad.buttons {
		for _, b := range pad.buttons[i+1:] {
			if a.x < b.x+b.w && b.x < a.x+a.w && a.y < b.y+b.h && b.y < a.y+a.h {
				t.Fatalf("%s and %s buttons overlap", a.dir, b.dir)
			}
		}
	}
}

type recordTarget struct{ downs, ups []game.Direction }

func (r *recordTarget) OnKeyDown(d game.Direction) { r.downs = append(r.downs, d) }
func (r *recordTarget) OnKeyUp(d game.Direction) { r.ups = append(r.ups, d) }

func TestSyncIntents_SendsOnlyTransitions(t *testing.T) {
	var rt recordTarget
	syncIntents(&rt, game.Intents{Up: true, Left: true}, game.Intents{Up: true, Right: true})
	if len(rt.downs) != 1 || rt.downs[0] != game.DirRight {
		t.Fatalf("downs = %v, want [right]", rt.downs)
	}
	if len(rt.ups) != 1 || rt.ups[0] != game.DirLeft {
		t.Fatalf("ups = %v, want [left]", rt.ups)
	}
}

func TestSyncIntents_DrivesSession(t *testing.T) {
	s, err := game.NewSession(game.WithSeed(3), game.WithCanvas(300, 300))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	syncIntents(s, s.Intents(), game.Intents{Down: true})
	if !s.Intents().Down {
		t.Fatal("session should hold down")
	}
	syncIntents(s, s.Intents(), game.Intents{})
	if s.Intents().Any() {
		t.Fatal("session should hold nothing")
	}
}

func TestViewportFor(t *testing.T) {
	w, h := viewportFor(800, 700, game.DefaultBreakpoint)
	if w != 800 || h != 700-statusHeight {
		t.Fatalf("desktop viewport = %.0fx%.0f", w, h)
	}
	w, h = viewportFor(360, 700, game.DefaultBreakpoint)
	if w != 360 || h != 700-statusHeight-padHeight {
		t.Fatalf("mobile viewport should reserve the pad, got %.0fx%.0f", w, h)
	}
}

func TestPanelX_PinnedRight(t *testing.T) {
	if got := panelX(800); got != 800-panelWidth {
		t.Fatalf("panelX(800) = %d, want %d", got, 800-panelWidth)
	}
	if got := panelX(panelWidth - 50); got != 0 {
		t.Fatalf("narrow window should clamp the panel to 0, got %d", got)
	}
}

func TestPanelToggle_KeepsMaze(t *testing.T) {
	// 650 wide is desktop, 350 (650 minus the panel) would be mobile.
	s, err := game.NewSession(game.WithSeed(5), game.WithCanvas(650, 600-statusHeight))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	g := &Game{session: s, breakpoint: game.DefaultBreakpoint, outW: 650, outH: 600}
	g.applyLayout()
	mode, resets := s.Mode(), s.Resets()
	vw, vh := s.Viewport()
	for k := 0; k < 2; k++ {
		g.showPanel = !g.showPanel
		g.applyLayout()
		if s.Resets() != resets || s.Mode() != mode {
			t.Fatalf("panel toggle changed play: resets %d->%d mode %s->%s", resets, s.Resets(), mode, s.Mode())
		}
		if w, h := s.Viewport(); w != vw || h != vh {
			t.Fatalf("panel toggle changed viewport to %.0fx%.0f", w, h)
		}
	}
}
