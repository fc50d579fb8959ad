package px

// moveTool relocates the selected region. Begin cuts the region into a
// MoveBuffer and zeroes it in the buffer (the cut is visible immediately).
// Move only tracks the drag offset; the buffer is not touched again until
// End pastes the capture at its offset position, skipping transparent
// cells so irregular cut-outs keep the pixels underneath. Cancel pastes
// the capture back unfiltered, restoring the pre-cut state exactly.
//
// With no active selection the whole gesture is inert and reports no
// modification.
type moveTool struct {
	mb     *MoveBuffer
	snap   *Buffer // pre-cut content, for modification reporting
	region Rect    // cut rectangle
	offset Point
	inert  bool
}

func (t *moveTool) begin(s *Session, pt Point, _ ToolContext) {
	r, ok := s.sel.Bounds()
	if !ok {
		Logger().Warn("px: move with no active selection")
		t.inert = true
		return
	}
	c, ok := r.Clip(s.buf.Width(), s.buf.Height())
	if !ok {
		t.inert = true
		return
	}
	t.region = c
	t.snap = s.buf.Clone()
	t.mb = captureMove(s.buf, c)

	cut := &painter{buf: s.buf, color: Transparent}
	rectFill(cut, c.X0, c.Y0, c.X1, c.Y1)
}

func (t *moveTool) move(s *Session, pt Point, _ ToolContext) {
	if t.inert {
		return
	}
	t.offset = pt.Sub(s.start)
}

func (t *moveTool) end(s *Session, pt Point, _ ToolContext) bool {
	if t.inert {
		return false
	}
	t.offset = pt.Sub(s.start)
	dst := t.mb.Origin().Add(t.offset)
	t.mb.paste(s.buf, dst, true)

	moved := t.region.Translate(t.offset.X, t.offset.Y)
	if c, ok := moved.Clip(s.buf.Width(), s.buf.Height()); ok {
		s.sel.Set(c)
	} else {
		s.sel.Clear()
	}

	affected := t.region.Union(moved)
	modified := !regionEqual(s.buf, t.snap, affected)
	t.snap = nil
	return modified
}

func (t *moveTool) cancel(s *Session) {
	if t.inert {
		return
	}
	t.mb.paste(s.buf, t.mb.Origin(), false)
	t.snap = nil
}

func (t *moveTool) preview() (*MoveBuffer, Point, bool) {
	if t.inert || t.mb == nil {
		return nil, Point{}, false
	}
	return t.mb, t.mb.Origin().Add(t.offset), true
}
