package px

// shapeRenderFn draws one shape from the gesture start corner to the
// current corner through a painter.
type shapeRenderFn func(p *painter, x0, y0, x1, y1 int, ctx ToolContext)

func renderLine(p *painter, x0, y0, x1, y1 int, ctx ToolContext) {
	line(p, x0, y0, x1, y1, sizeOf(ctx))
}

func renderRect(p *painter, x0, y0, x1, y1 int, ctx ToolContext) {
	if ctx.Fill {
		rectFill(p, x0, y0, x1, y1)
	} else {
		rectStroke(p, x0, y0, x1, y1)
	}
}

func renderEllipse(p *painter, x0, y0, x1, y1 int, ctx ToolContext) {
	if ctx.Fill {
		ellipseFill(p, x0, y0, x1, y1)
	} else {
		ellipseStroke(p, x0, y0, x1, y1)
	}
}

// shapeTool drives the live-preview shapes (line, rectangle, ellipse). It
// snapshots the buffer once at Begin; every Move restores the previous
// preview's dirty rectangle from that snapshot and re-renders the shape
// from the original start point, so overshooting and correcting never
// leaves stray pixels. Only the dirty rectangle is restored, keeping the
// per-move cost bounded by the affected region.
type shapeTool struct {
	render   shapeRenderFn
	snap     *Buffer
	dirty    Rect
	hasDirty bool
}

func (t *shapeTool) draw(s *Session, pt Point, ctx ToolContext) {
	if t.hasDirty {
		s.buf.CopyRegion(t.snap, t.dirty)
	}
	p := &painter{buf: s.buf, mask: s.maskRect(), color: ctx.paintColor()}
	t.render(p, s.start.X, s.start.Y, pt.X, pt.Y, ctx)

	// The shape's bounding box, padded for brush thickness and stroke
	// sampling rounding.
	d := RectOf(s.start, pt).Inflate(sizeOf(ctx)/2 + 1)
	if c, ok := d.Clip(s.buf.Width(), s.buf.Height()); ok {
		t.dirty = c
		t.hasDirty = true
	} else {
		t.hasDirty = false
	}
}

func (t *shapeTool) begin(s *Session, pt Point, ctx ToolContext) {
	t.snap = s.buf.Clone()
	t.draw(s, pt, ctx)
}

func (t *shapeTool) move(s *Session, pt Point, ctx ToolContext) {
	t.draw(s, pt, ctx)
}

func (t *shapeTool) end(s *Session, pt Point, ctx ToolContext) bool {
	t.draw(s, pt, ctx)
	modified := t.hasDirty && !regionEqual(s.buf, t.snap, t.dirty)
	t.snap = nil
	return modified
}

func (t *shapeTool) cancel(s *Session) {
	if t.hasDirty {
		s.buf.CopyRegion(t.snap, t.dirty)
	}
	t.snap = nil
}
