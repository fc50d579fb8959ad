package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gopx/px"
)

// Checkerboard backdrop for the transparent index.
var (
	checkerDark  = tcell.NewRGBColor(0x30, 0x30, 0x30)
	checkerLight = tcell.NewRGBColor(0x44, 0x44, 0x44)
)

const halfBlock = '▀'

func checker(x, y int) tcell.Color {
	if (x+y)%2 == 0 {
		return checkerLight
	}
	return checkerDark
}

// pixelColor resolves the display color of one pixel: the move overlay
// floats above the buffer, and the transparent index shows the checker
// backdrop.
func (a *App) pixelColor(x, y int, mb *px.MoveBuffer, mbAt px.Point, hasMB bool) tcell.Color {
	if hasMB {
		if v := mb.At(x-mbAt.X, y-mbAt.Y); v != px.Transparent {
			return a.colors[v]
		}
	}
	idx := a.ed.Buffer().At(x, y)
	if idx == px.Transparent {
		return checker(x, y)
	}
	return a.colors[idx]
}

func (a *App) draw() {
	a.screen.Clear()
	buf := a.ed.Buffer()
	sel, hasSel := a.ed.SelectionBounds()
	mb, mbAt, hasMB := a.ed.MovePreview()

	for y := 0; y < buf.Height(); y += 2 {
		for x := 0; x < buf.Width(); x++ {
			top := a.pixelColor(x, y, mb, mbAt, hasMB)
			bottom := checker(x, y+1)
			if y+1 < buf.Height() {
				bottom = a.pixelColor(x, y+1, mb, mbAt, hasMB)
			}
			st := tcell.StyleDefault.Foreground(top).Background(bottom)
			if hasSel && sel.Contains(x, y) || hasSel && sel.Contains(x, y+1) {
				st = st.Underline(true)
			}
			a.screen.SetContent(canvasX+x, canvasY+y/2, halfBlock, nil, st)
		}
	}
	a.drawStatus()
	a.screen.Show()
}

func (a *App) drawStatus() {
	buf := a.ed.Buffer()
	ctx := a.ed.Context()
	mode := "stroke"
	if ctx.Fill {
		mode = "fill"
	}
	flag := ""
	if a.dirty {
		flag = " *"
	}
	status := fmt.Sprintf("%s | color %d/%d | size %d | %s | %dx%d%s",
		a.ed.Tool(), ctx.Color, ctx.AltColor, ctx.Size, mode,
		buf.Width(), buf.Height(), flag)
	if a.message != "" {
		status += " | " + a.message
	}

	sw, sh := a.screen.Size()
	row := sh - 1
	st := tcell.StyleDefault.Reverse(true)
	for i := 0; i < sw; i++ {
		ch := ' '
		if i < len(status) {
			ch = rune(status[i])
		}
		a.screen.SetContent(i, row, ch, nil, st)
	}
}
