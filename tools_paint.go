package px

// paintTool implements the direct-paint tools: pencil (fixed 1-cell stamp),
// brush (context-sized stamp) and eraser (stamps the transparent index).
// Every visited pixel is a deliberate, permanent edit, so no snapshot or
// rollback is kept; consecutive pointer positions are connected with a
// stamped line so fast drags leave no gaps.
type paintTool struct {
	fixedSize int // 0 means use the context brush size
	erase     bool
	changed   bool
}

func (t *paintTool) size(ctx ToolContext) int {
	if t.fixedSize > 0 {
		return t.fixedSize
	}
	return sizeOf(ctx)
}

func (t *paintTool) color(ctx ToolContext) uint8 {
	if t.erase {
		return Transparent
	}
	return ctx.paintColor()
}

func (t *paintTool) painter(s *Session, ctx ToolContext) *painter {
	return &painter{buf: s.buf, mask: s.maskRect(), color: t.color(ctx)}
}

func (t *paintTool) begin(s *Session, pt Point, ctx ToolContext) {
	p := t.painter(s, ctx)
	stamp(p, pt.X, pt.Y, t.size(ctx))
	t.changed = t.changed || p.changed
}

func (t *paintTool) move(s *Session, pt Point, ctx ToolContext) {
	p := t.painter(s, ctx)
	line(p, s.last.X, s.last.Y, pt.X, pt.Y, t.size(ctx))
	t.changed = t.changed || p.changed
}

func (t *paintTool) end(s *Session, pt Point, ctx ToolContext) bool {
	if pt != s.last {
		t.move(s, pt, ctx)
	}
	return t.changed
}

// cancel keeps the paint already laid down: direct edits are permanent.
func (t *paintTool) cancel(*Session) {}

// pickTool implements the eyedropper: it samples the palette index under
// the pointer and never mutates the buffer.
type pickTool struct {
	idx uint8
	ok  bool
}

func (t *pickTool) sample(s *Session, pt Point) {
	if s.buf.InBounds(pt.X, pt.Y) {
		t.idx = s.buf.At(pt.X, pt.Y)
		t.ok = true
	}
}

func (t *pickTool) begin(s *Session, pt Point, _ ToolContext) { t.sample(s, pt) }
func (t *pickTool) move(s *Session, pt Point, _ ToolContext)  { t.sample(s, pt) }

func (t *pickTool) end(s *Session, pt Point, _ ToolContext) bool {
	t.sample(s, pt)
	return false
}

func (t *pickTool) cancel(*Session) { t.ok = false }

func (t *pickTool) picked() (uint8, bool) { return t.idx, t.ok }
