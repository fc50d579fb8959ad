package px

import "io"

// Option configures an Editor during creation.
//
// Example:
//
//	ed, err := px.NewEditor(32, 32, px.WithHistoryDepth(128))
type Option func(*editorOptions)

type editorOptions struct {
	palette      *Palette
	historyDepth int
	buffer       *Buffer
}

// WithPalette sets a custom palette for rendering and export.
func WithPalette(p *Palette) Option {
	return func(o *editorOptions) { o.palette = p }
}

// WithHistoryDepth caps the number of undo checkpoints kept.
func WithHistoryDepth(n int) Option {
	return func(o *editorOptions) { o.historyDepth = n }
}

// WithBuffer adopts an existing buffer (for example one produced by
// Decode) instead of allocating a blank one. The buffer's dimensions take
// precedence over the ones passed to NewEditor.
func WithBuffer(b *Buffer) Option {
	return func(o *editorOptions) { o.buffer = b }
}

// Editor is the top-level drawing context: it owns the buffer, the
// selection, the gesture session, the undo history and the tool defaults,
// and is the object the surrounding application threads through every
// call. There is no package-level editor state.
type Editor struct {
	buf     *Buffer
	sel     *Selection
	session *Session
	history *History
	palette *Palette

	tool ToolKind
	ctx  ToolContext

	// gesture bookkeeping
	gestureButton Button
	preGesture    string // state checkpoint captured at PointerDown
}

// NewEditor creates an editor over a fresh transparent buffer of the
// given dimensions (each in [MinSize, MaxSize]).
func NewEditor(width, height int, opts ...Option) (*Editor, error) {
	var o editorOptions
	for _, opt := range opts {
		opt(&o)
	}
	buf := o.buffer
	if buf == nil {
		var err error
		buf, err = NewBuffer(width, height)
		if err != nil {
			return nil, err
		}
	}
	pal := o.palette
	if pal == nil {
		pal = DefaultPalette()
	}
	sel := NewSelection()
	return &Editor{
		buf:     buf,
		sel:     sel,
		session: NewSession(buf, sel),
		history: NewHistory(o.historyDepth),
		palette: pal,
		tool:    ToolPencil,
		ctx:     ToolContext{Color: 1, AltColor: uint8(Transparent), Size: 1},
	}, nil
}

// Buffer returns the editor's pixel buffer.
func (e *Editor) Buffer() *Buffer { return e.buf }

// Palette returns the editor's palette.
func (e *Editor) Palette() *Palette { return e.palette }

// Tool returns the active tool.
func (e *Editor) Tool() ToolKind { return e.tool }

// SetTool switches the active tool. The selection persists across the
// switch.
func (e *Editor) SetTool(k ToolKind) {
	if k < toolCount {
		e.tool = k
	}
}

// Context returns the current tool context defaults.
func (e *Editor) Context() ToolContext { return e.ctx }

// SetColor sets the primary paint index.
func (e *Editor) SetColor(idx uint8) {
	if idx <= MaxIndex {
		e.ctx.Color = idx
	}
}

// SetAltColor sets the secondary paint index.
func (e *Editor) SetAltColor(idx uint8) {
	if idx <= MaxIndex {
		e.ctx.AltColor = idx
	}
}

// SetBrushSize sets the brush diameter, clamped to [1, MaxSize].
func (e *Editor) SetBrushSize(n int) {
	if n < 1 {
		n = 1
	}
	if n > MaxSize {
		n = MaxSize
	}
	e.ctx.Size = n
}

// SetFillShapes toggles shape tools between fill and stroke mode.
func (e *Editor) SetFillShapes(fill bool) { e.ctx.Fill = fill }

// SelectionBounds returns the active selection, if any.
func (e *Editor) SelectionBounds() (Rect, bool) { return e.sel.Bounds() }

// SetSelection installs a selection rectangle, clipped to the buffer.
func (e *Editor) SetSelection(r Rect) {
	if c, ok := RectOf(Pt(r.X0, r.Y0), Pt(r.X1, r.Y1)).Clip(e.buf.Width(), e.buf.Height()); ok {
		e.sel.Set(c)
	}
}

// ClearSelection removes the active selection.
func (e *Editor) ClearSelection() { e.sel.Clear() }

// GestureActive reports whether a pointer gesture is in progress.
func (e *Editor) GestureActive() bool { return e.session.Active() }

// PointerDown starts a gesture with the active tool. Ignored while a
// gesture is already active.
func (e *Editor) PointerDown(x, y int, btn Button) {
	if e.session.Active() {
		return
	}
	e.preGesture = Encode(e.buf, true)
	e.gestureButton = btn
	ctx := e.ctx
	ctx.Button = btn
	e.session.Begin(e.tool, x, y, ctx)
}

// PointerMove continues the active gesture.
func (e *Editor) PointerMove(x, y int) {
	if !e.session.Active() {
		return
	}
	ctx := e.ctx
	ctx.Button = e.gestureButton
	e.session.Move(x, y, ctx)
}

// PointerUp commits the active gesture and reports whether the buffer was
// modified. A modifying gesture pushes an undo checkpoint.
func (e *Editor) PointerUp(x, y int) bool {
	if !e.session.Active() {
		return false
	}
	ctx := e.ctx
	ctx.Button = e.gestureButton
	modified := e.session.End(x, y, ctx)
	if idx, ok := e.session.Picked(); ok {
		if e.gestureButton == ButtonSecondary {
			e.SetAltColor(idx)
		} else {
			e.SetColor(idx)
		}
	}
	if modified {
		e.history.Push(e.preGesture)
	}
	return modified
}

// CancelGesture aborts the active gesture, rolling back preview and move
// edits. No undo checkpoint is pushed.
func (e *Editor) CancelGesture() { e.session.Cancel() }

// MovePreview exposes the floating capture of an active move gesture for
// overlay rendering.
func (e *Editor) MovePreview() (*MoveBuffer, Point, bool) { return e.session.MovePreview() }

// CanUndo reports whether an undo checkpoint is available.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether a redo checkpoint is available.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// Undo restores the most recent checkpoint and reports whether anything
// changed.
func (e *Editor) Undo() bool {
	snap, ok := e.history.Undo(Encode(e.buf, true))
	if !ok {
		return false
	}
	return e.restore(snap)
}

// Redo reverses the most recent Undo.
func (e *Editor) Redo() bool {
	snap, ok := e.history.Redo(Encode(e.buf, true))
	if !ok {
		return false
	}
	return e.restore(snap)
}

func (e *Editor) restore(snap string) bool {
	buf, err := Decode(snap)
	if err != nil {
		// Checkpoints are our own encodings; a failure here is a bug.
		Logger().Warn("px: corrupt history checkpoint", "err", err)
		return false
	}
	e.replace(buf)
	return true
}

// replace swaps in a new buffer wholesale and reconciles dependent state.
func (e *Editor) replace(buf *Buffer) {
	e.buf = buf
	e.session.Rebind(buf)
	if r, ok := e.sel.Bounds(); ok {
		if c, ok := r.Clip(buf.Width(), buf.Height()); ok {
			e.sel.Set(c)
		} else {
			e.sel.Clear()
		}
	}
}

// Save serializes the buffer to the text format, compressed when that is
// shorter.
func (e *Editor) Save() string { return Encode(e.buf, true) }

// Load replaces the buffer from text-format data. The previous state
// becomes an undo checkpoint. On decode failure the editor is untouched.
func (e *Editor) Load(text string) error {
	buf, err := Decode(text)
	if err != nil {
		return err
	}
	e.history.Push(Encode(e.buf, true))
	e.replace(buf)
	return nil
}

// Resize replaces the buffer with one of the given dimensions, preserving
// overlapping content. Out-of-range dimensions are rejected before any
// mutation. The previous state becomes an undo checkpoint.
func (e *Editor) Resize(width, height int) error {
	buf, err := e.buf.Resize(width, height)
	if err != nil {
		return err
	}
	e.history.Push(Encode(e.buf, true))
	e.replace(buf)
	return nil
}

// ExportPNG writes the buffer as a PNG through the editor's palette.
func (e *Editor) ExportPNG(w io.Writer, scale int) error {
	return ExportPNG(w, e.buf, e.palette, scale)
}
