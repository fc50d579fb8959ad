package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gopx/px"
	"github.com/gopx/px/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 40)

	ed, err := px.NewEditor(16, 16)
	if err != nil {
		t.Fatalf("NewEditor: %v", err)
	}
	return newApp(screen, ed, config.Default(), "")
}

func TestToolKeys(t *testing.T) {
	a := newTestApp(t)
	cases := []struct {
		r    rune
		want px.ToolKind
	}{
		{'b', px.ToolBrush},
		{'f', px.ToolFill},
		{'m', px.ToolMove},
		{'p', px.ToolPencil},
	}
	for _, tc := range cases {
		a.handleKey(tcell.NewEventKey(tcell.KeyRune, tc.r, 0))
		if a.ed.Tool() != tc.want {
			t.Errorf("key %q selected %v, want %v", tc.r, a.ed.Tool(), tc.want)
		}
	}
}

func TestColorCycleKeys(t *testing.T) {
	a := newTestApp(t)
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, ']', 0))
	if a.ed.Context().Color != 2 {
		t.Errorf("color = %d after ], want 2", a.ed.Context().Color)
	}
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, '[', 0))
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, '[', 0))
	if a.ed.Context().Color != 0 {
		t.Errorf("color = %d after [[, want the wrap to 0", a.ed.Context().Color)
	}
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'x', 0))
	if a.ed.Context().Color != 0 || a.ed.Context().AltColor != 0 {
		t.Errorf("swap gave %d/%d", a.ed.Context().Color, a.ed.Context().AltColor)
	}
}

func TestBrushSizeKeys(t *testing.T) {
	a := newTestApp(t)
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, '+', 0))
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, '+', 0))
	if a.ed.Context().Size != 3 {
		t.Errorf("size = %d, want 3", a.ed.Context().Size)
	}
	for i := 0; i < 5; i++ {
		a.handleKey(tcell.NewEventKey(tcell.KeyRune, '-', 0))
	}
	if a.ed.Context().Size != 1 {
		t.Errorf("size = %d, want the floor 1", a.ed.Context().Size)
	}
}

func TestMouseStrokePaints(t *testing.T) {
	a := newTestApp(t)
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'p', 0))

	press := func(x, y int, btn tcell.ButtonMask) {
		a.handleMouse(tcell.NewEventMouse(x, y, btn, 0))
	}
	// Screen (canvasX+2, canvasY+1) maps to pixel (2, 2).
	press(canvasX+2, canvasY+1, tcell.Button1)
	press(canvasX+5, canvasY+1, tcell.Button1)
	press(canvasX+5, canvasY+1, 0)

	for x := 2; x <= 5; x++ {
		if a.ed.Buffer().At(x, 2) != 1 {
			t.Errorf("pixel (%d, 2) = %d, want 1", x, a.ed.Buffer().At(x, 2))
		}
	}
	if !a.dirty {
		t.Error("modifying stroke did not mark the app dirty")
	}
}

func TestSecondaryButtonUsesAltColor(t *testing.T) {
	a := newTestApp(t)
	a.ed.SetAltColor(7)
	a.handleMouse(tcell.NewEventMouse(canvasX, canvasY, tcell.Button2, 0))
	a.handleMouse(tcell.NewEventMouse(canvasX, canvasY, 0, 0))
	if a.ed.Buffer().At(0, 0) != 7 {
		t.Errorf("pixel (0,0) = %d, want the alt color 7", a.ed.Buffer().At(0, 0))
	}
}

func TestEscapeCancelsGesture(t *testing.T) {
	a := newTestApp(t)
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'r', 0))
	a.handleMouse(tcell.NewEventMouse(canvasX, canvasY, tcell.Button1, 0))
	a.handleMouse(tcell.NewEventMouse(canvasX+6, canvasY+3, tcell.Button1, 0))
	a.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	if a.ed.GestureActive() {
		t.Error("gesture still active after escape")
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if a.ed.Buffer().At(x, y) != 0 {
				t.Fatalf("pixel (%d, %d) survived a cancelled rectangle", x, y)
			}
		}
	}
}

func TestDrawSmoke(t *testing.T) {
	a := newTestApp(t)
	a.ed.Buffer().Set(0, 0, 3)
	a.ed.SetSelection(px.Rect{X0: 0, Y0: 0, X1: 3, Y1: 3})
	a.draw() // must not panic with content, selection and status bar

	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'm', 0))
	a.handleMouse(tcell.NewEventMouse(canvasX, canvasY, tcell.Button1, 0))
	a.handleMouse(tcell.NewEventMouse(canvasX+2, canvasY+1, tcell.Button1, 0))
	a.draw() // move preview overlay path
	a.handleMouse(tcell.NewEventMouse(canvasX+2, canvasY+1, 0, 0))
}

func TestQuitKeys(t *testing.T) {
	a := newTestApp(t)
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', 0))
	if !a.quit {
		t.Error("q did not quit")
	}
	a = newTestApp(t)
	a.handleKey(tcell.NewEventKey(tcell.KeyCtrlQ, 0, 0))
	if !a.quit {
		t.Error("Ctrl+Q did not quit")
	}
}
