// Package tui is the terminal front-end of pixed. It renders the pixel
// buffer with half-block characters (two pixels per character cell) and
// feeds pointer events into the drawing engine's gesture session.
package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gopx/px"
	"github.com/gopx/px/internal/config"
)

// Canvas placement on screen. One text row shows two pixel rows.
const (
	canvasX = 1
	canvasY = 1
)

const exportScale = 8

// autosaveRequest is posted by the autosave ticker goroutine so the save
// itself runs on the event loop, which owns the editor.
type autosaveRequest struct{}

// App is the interactive editor application.
type App struct {
	screen tcell.Screen
	ed     *px.Editor
	cfg    config.Config
	path   string

	colors  [px.PaletteSize]tcell.Color
	pressed tcell.ButtonMask
	dirty   bool
	message string
	quit    bool
	quitCh  chan struct{}
}

// New creates the application over a real terminal screen.
func New(ed *px.Editor, cfg config.Config, path string) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return newApp(screen, ed, cfg, path), nil
}

// newApp wires an App over an already-initialized screen. Tests pass a
// tcell simulation screen here.
func newApp(screen tcell.Screen, ed *px.Editor, cfg config.Config, path string) *App {
	screen.EnableMouse()
	a := &App{
		screen: screen,
		ed:     ed,
		cfg:    cfg,
		path:   path,
		quitCh: make(chan struct{}),
	}
	for i := 0; i < px.PaletteSize; i++ {
		c := ed.Palette().RGBA(uint8(i))
		a.colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return a
}

// Run drives the event loop until quit. It restores the terminal on exit.
func (a *App) Run() error {
	defer a.screen.Fini()
	if a.cfg.Autosave.Enabled && a.path != "" {
		go a.autosaveLoop()
	}
	defer close(a.quitCh)

	a.draw()
	for !a.quit {
		ev := a.screen.PollEvent()
		if ev == nil {
			break
		}
		a.handleEvent(ev)
		a.draw()
	}
	return nil
}

func (a *App) autosaveLoop() {
	ticker := time.NewTicker(time.Duration(a.cfg.Autosave.Interval) * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(autosaveRequest{}))
		case <-a.quitCh:
			return
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(autosaveRequest); ok && a.dirty {
			a.save()
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		if a.ed.GestureActive() {
			a.ed.CancelGesture()
			a.message = "gesture cancelled"
		} else {
			a.ed.ClearSelection()
			a.message = "selection cleared"
		}
		return
	case tcell.KeyCtrlS:
		a.save()
		return
	case tcell.KeyCtrlE:
		a.export()
		return
	case tcell.KeyCtrlQ:
		a.quit = true
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}

	tools := map[rune]px.ToolKind{
		'p': px.ToolPencil,
		'b': px.ToolBrush,
		'e': px.ToolEraser,
		'l': px.ToolLine,
		'r': px.ToolRect,
		'o': px.ToolEllipse,
		'f': px.ToolFill,
		'i': px.ToolEyedropper,
		's': px.ToolSelect,
		'w': px.ToolWand,
		'm': px.ToolMove,
	}
	r := ev.Rune()
	if k, ok := tools[r]; ok {
		a.ed.SetTool(k)
		a.message = k.String()
		return
	}

	ctx := a.ed.Context()
	switch r {
	case 'q':
		a.quit = true
	case 'g':
		a.ed.SetFillShapes(!ctx.Fill)
	case 'u':
		if !a.ed.Undo() {
			a.message = "nothing to undo"
		} else {
			a.dirty = true
		}
	case 'U':
		if !a.ed.Redo() {
			a.message = "nothing to redo"
		} else {
			a.dirty = true
		}
	case '[':
		a.ed.SetColor(prevIndex(ctx.Color))
	case ']':
		a.ed.SetColor(nextIndex(ctx.Color))
	case '{':
		a.ed.SetAltColor(prevIndex(ctx.AltColor))
	case '}':
		a.ed.SetAltColor(nextIndex(ctx.AltColor))
	case 'x':
		a.ed.SetColor(ctx.AltColor)
		a.ed.SetAltColor(ctx.Color)
	case '-':
		a.ed.SetBrushSize(ctx.Size - 1)
	case '+', '=':
		a.ed.SetBrushSize(ctx.Size + 1)
	}
}

func nextIndex(i uint8) uint8 { return (i + 1) % px.PaletteSize }

func prevIndex(i uint8) uint8 { return (i + px.PaletteSize - 1) % px.PaletteSize }

func (a *App) handleMouse(ev *tcell.EventMouse) {
	mx, my := ev.Position()
	// Each character cell covers two pixel rows; the pointer lands on the
	// upper one.
	cx := mx - canvasX
	cy := (my - canvasY) * 2

	btns := ev.Buttons() & (tcell.Button1 | tcell.Button2)
	switch {
	case a.pressed == 0 && btns != 0:
		b := px.ButtonPrimary
		if btns&tcell.Button2 != 0 {
			b = px.ButtonSecondary
		}
		a.pressed = btns
		a.ed.PointerDown(cx, cy, b)
	case a.pressed != 0 && btns != 0:
		a.ed.PointerMove(cx, cy)
	case a.pressed != 0 && btns == 0:
		if a.ed.PointerUp(cx, cy) {
			a.dirty = true
		}
		a.pressed = 0
	}
}

func (a *App) save() {
	if a.path == "" {
		a.message = "no file to save to"
		return
	}
	if err := os.WriteFile(a.path, []byte(a.ed.Save()+"\n"), 0o644); err != nil {
		a.message = err.Error()
		return
	}
	a.dirty = false
	a.message = "saved " + a.path
}

func (a *App) export() {
	out := "export.png"
	if a.path != "" {
		out = a.path + ".png"
	}
	f, err := os.Create(out)
	if err != nil {
		a.message = err.Error()
		return
	}
	defer f.Close()
	if err := a.ed.ExportPNG(f, exportScale); err != nil {
		a.message = err.Error()
		return
	}
	a.message = "exported " + out
}
