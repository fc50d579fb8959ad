package px

import "log/slog"

// Button identifies the pointer button driving a gesture.
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// ToolKind is the closed set of drawing tools. Dispatch goes through a
// fixed factory table so every tool is statically known.
type ToolKind uint8

const (
	ToolPencil ToolKind = iota
	ToolBrush
	ToolEraser
	ToolLine
	ToolRect
	ToolEllipse
	ToolFill
	ToolEyedropper
	ToolSelect
	ToolWand
	ToolMove

	toolCount
)

var toolNames = [toolCount]string{
	ToolPencil:     "pencil",
	ToolBrush:      "brush",
	ToolEraser:     "eraser",
	ToolLine:       "line",
	ToolRect:       "rect",
	ToolEllipse:    "ellipse",
	ToolFill:       "fill",
	ToolEyedropper: "eyedropper",
	ToolSelect:     "select",
	ToolWand:       "wand",
	ToolMove:       "move",
}

func (k ToolKind) String() string {
	if k < toolCount {
		return toolNames[k]
	}
	return "unknown"
}

// ToolContext is the immutable-per-event snapshot passed to tools: colors,
// brush size, shape fill-vs-stroke mode and the pointer button.
type ToolContext struct {
	Color    uint8 // primary palette index
	AltColor uint8 // secondary palette index
	Size     int   // brush diameter in cells
	Fill     bool  // shapes: fill instead of stroke
	Button   Button
}

// paintColor resolves the index painted by this event's button.
func (c ToolContext) paintColor() uint8 {
	if c.Button == ButtonSecondary {
		return c.AltColor
	}
	return c.Color
}

func sizeOf(c ToolContext) int {
	if c.Size < 1 {
		return 1
	}
	return c.Size
}

// tool is the per-gesture hook set every concrete tool implements. A fresh
// instance is created at Begin and lives until the next gesture, so tools
// keep their transient state (snapshots, move captures) on themselves.
type tool interface {
	begin(s *Session, pt Point, ctx ToolContext)
	move(s *Session, pt Point, ctx ToolContext)
	end(s *Session, pt Point, ctx ToolContext) bool
	cancel(s *Session)
}

// movePreviewer is implemented by tools exposing a floating overlay that a
// renderer may draw during the gesture.
type movePreviewer interface {
	preview() (*MoveBuffer, Point, bool)
}

// colorPicker is implemented by tools that sample a color instead of
// painting.
type colorPicker interface {
	picked() (uint8, bool)
}

// toolFactories is the closed dispatch table.
var toolFactories = [toolCount]func() tool{
	ToolPencil:     func() tool { return &paintTool{fixedSize: 1} },
	ToolBrush:      func() tool { return &paintTool{} },
	ToolEraser:     func() tool { return &paintTool{erase: true} },
	ToolLine:       func() tool { return &shapeTool{render: renderLine} },
	ToolRect:       func() tool { return &shapeTool{render: renderRect} },
	ToolEllipse:    func() tool { return &shapeTool{render: renderEllipse} },
	ToolFill:       func() tool { return &fillTool{} },
	ToolEyedropper: func() tool { return &pickTool{} },
	ToolSelect:     func() tool { return &selectTool{} },
	ToolWand:       func() tool { return &wandTool{} },
	ToolMove:       func() tool { return &moveTool{} },
}

func newTool(k ToolKind) tool {
	if k >= toolCount {
		return nil
	}
	return toolFactories[k]()
}

// Session is the press/drag/release/cancel state machine every tool runs
// under. It is Idle until Begin and returns to Idle on End or Cancel. A
// second Begin while a gesture is active is ignored; the surrounding
// application enforces one active tool at a time.
//
// Unless a tool opts out (select, wand and move operate on the selection
// itself), every candidate pixel write is checked against the active
// selection; writes outside it are silently skipped. Repeated Move calls
// with the same coordinates never change the buffer after the first.
type Session struct {
	buf  *Buffer
	sel  *Selection
	kind ToolKind
	tool tool

	active bool
	start  Point
	last   Point
}

// NewSession creates an idle session over a buffer and selection.
func NewSession(buf *Buffer, sel *Selection) *Session {
	return &Session{buf: buf, sel: sel}
}

// Rebind points the session at a replacement buffer (resize, import).
// Only legal while idle.
func (s *Session) Rebind(buf *Buffer) {
	if s.active {
		Logger().Warn("px: rebind ignored during active gesture")
		return
	}
	s.buf = buf
}

// Active reports whether a gesture is in progress.
func (s *Session) Active() bool { return s.active }

// Kind returns the tool of the current (or most recent) gesture.
func (s *Session) Kind() ToolKind { return s.kind }

// Begin starts a gesture with the given tool at (x, y).
func (s *Session) Begin(kind ToolKind, x, y int, ctx ToolContext) {
	if s.active {
		Logger().Warn("px: gesture begun while active", slog.String("tool", kind.String()))
		return
	}
	t := newTool(kind)
	if t == nil {
		Logger().Warn("px: unknown tool", slog.Int("kind", int(kind)))
		return
	}
	s.kind = kind
	s.tool = t
	s.active = true
	s.start = Pt(x, y)
	s.last = s.start
	Logger().Debug("px: gesture begin", slog.String("tool", kind.String()), slog.Int("x", x), slog.Int("y", y))
	t.begin(s, s.start, ctx)
}

// Move continues the active gesture at (x, y). Calls while idle or with
// unchanged coordinates are no-ops.
func (s *Session) Move(x, y int, ctx ToolContext) {
	if !s.active {
		return
	}
	pt := Pt(x, y)
	if pt == s.last {
		return
	}
	s.tool.move(s, pt, ctx)
	s.last = pt
}

// End commits the gesture at (x, y) and reports whether the buffer was
// modified, so callers can decide whether to push an undo checkpoint.
func (s *Session) End(x, y int, ctx ToolContext) bool {
	if !s.active {
		return false
	}
	pt := Pt(x, y)
	modified := s.tool.end(s, pt, ctx)
	s.last = pt
	s.active = false
	Logger().Debug("px: gesture end", slog.String("tool", s.kind.String()), slog.Bool("modified", modified))
	return modified
}

// Cancel aborts the active gesture, rolling back preview and move edits.
func (s *Session) Cancel() {
	if !s.active {
		return
	}
	s.tool.cancel(s)
	s.active = false
	Logger().Debug("px: gesture cancel", slog.String("tool", s.kind.String()))
}

// MovePreview exposes the floating capture of an active move gesture:
// the cut sub-grid and the grid position its top-left currently hovers at.
// The third return value is false when no overlay should be drawn.
func (s *Session) MovePreview() (*MoveBuffer, Point, bool) {
	if !s.active {
		return nil, Point{}, false
	}
	if p, ok := s.tool.(movePreviewer); ok {
		return p.preview()
	}
	return nil, Point{}, false
}

// Picked returns the palette index sampled by the most recent eyedropper
// gesture, if any.
func (s *Session) Picked() (uint8, bool) {
	if p, ok := s.tool.(colorPicker); ok {
		return p.picked()
	}
	return 0, false
}

// maskRect resolves the selection into the write mask painting tools use.
func (s *Session) maskRect() *Rect {
	if r, ok := s.sel.Bounds(); ok {
		return &r
	}
	return nil
}
