package px

// fillTool implements the bucket: a 4-connected flood fill applied once at
// the press point. The fill respects the selection mask, so a selection
// edge acts as a hard boundary. The repainted points are remembered so the
// gesture can be cancelled.
type fillTool struct {
	src     uint8
	filled  []Point
	changed bool
}

func (t *fillTool) begin(s *Session, pt Point, ctx ToolContext) {
	t.src = s.buf.At(pt.X, pt.Y)
	p := &painter{buf: s.buf, mask: s.maskRect(), color: ctx.paintColor()}
	t.filled = floodFill(p, pt.X, pt.Y)
	t.changed = len(t.filled) > 0
}

// move is a no-op: the fill applies at the press point only, and repeating
// it there would change nothing.
func (t *fillTool) move(*Session, Point, ToolContext) {}

func (t *fillTool) end(*Session, Point, ToolContext) bool {
	return t.changed
}

func (t *fillTool) cancel(s *Session) {
	for _, q := range t.filled {
		s.buf.Set(q.X, q.Y, t.src)
	}
}

// wandTool implements the magic wand: the same flood reachability as the
// bucket, but it only computes the bounding rectangle of the reachable set
// and installs it as the selection. It paints nothing and ignores any
// active selection while probing.
type wandTool struct {
	prev Rect
	had  bool
}

func (t *wandTool) apply(s *Session, pt Point) {
	if r, ok := floodRegion(s.buf, pt.X, pt.Y); ok {
		s.sel.Set(r)
	}
}

func (t *wandTool) begin(s *Session, pt Point, _ ToolContext) {
	t.prev, t.had = s.sel.Bounds()
	t.apply(s, pt)
}

func (t *wandTool) move(s *Session, pt Point, _ ToolContext) {
	t.apply(s, pt)
}

func (t *wandTool) end(s *Session, pt Point, _ ToolContext) bool {
	t.apply(s, pt)
	return false
}

func (t *wandTool) cancel(s *Session) {
	if t.had {
		s.sel.Set(t.prev)
	} else {
		s.sel.Clear()
	}
}

// selectTool drags out a rectangular selection. It ignores the existing
// selection while dragging and replaces it on commit.
type selectTool struct {
	prev Rect
	had  bool
}

func (t *selectTool) apply(s *Session, pt Point) {
	if r, ok := RectOf(s.start, pt).Clip(s.buf.Width(), s.buf.Height()); ok {
		s.sel.Set(r)
	} else {
		s.sel.Clear()
	}
}

func (t *selectTool) begin(s *Session, pt Point, _ ToolContext) {
	t.prev, t.had = s.sel.Bounds()
	t.apply(s, pt)
}

func (t *selectTool) move(s *Session, pt Point, _ ToolContext) {
	t.apply(s, pt)
}

func (t *selectTool) end(s *Session, pt Point, _ ToolContext) bool {
	t.apply(s, pt)
	return false
}

func (t *selectTool) cancel(s *Session) {
	if t.had {
		s.sel.Set(t.prev)
	} else {
		s.sel.Clear()
	}
}
