package px

// Selection tracks an optional rectangular region of interest. It persists
// across tool switches until explicitly cleared or replaced. Absence of a
// selection means the whole buffer is eligible for painting.
type Selection struct {
	bounds Rect
	active bool
}

// NewSelection returns an empty selection.
func NewSelection() *Selection { return &Selection{} }

// Set installs r (normalized) as the active selection.
func (s *Selection) Set(r Rect) {
	s.bounds = RectOf(Pt(r.X0, r.Y0), Pt(r.X1, r.Y1))
	s.active = true
}

// Clear removes the active selection.
func (s *Selection) Clear() {
	s.active = false
	s.bounds = Rect{}
}

// Bounds returns the active selection rectangle. The second return value is
// false when no selection is active.
func (s *Selection) Bounds() (Rect, bool) {
	return s.bounds, s.active
}

// Contains reports whether (x, y) is eligible under the selection. With no
// active selection every coordinate is eligible.
func (s *Selection) Contains(x, y int) bool {
	return !s.active || s.bounds.Contains(x, y)
}

// MoveBuffer is the sub-grid captured when a move gesture cuts the selected
// region out of a buffer. It exists only for the duration of that gesture
// and is discarded on commit or cancel.
type MoveBuffer struct {
	cells  []uint8
	width  int
	height int
	origin Point // top-left of the capture rectangle at cut time
}

// captureMove copies the cells under r out of b. r must be clipped to b.
func captureMove(b *Buffer, r Rect) *MoveBuffer {
	m := &MoveBuffer{
		cells:  make([]uint8, r.Width()*r.Height()),
		width:  r.Width(),
		height: r.Height(),
		origin: Pt(r.X0, r.Y0),
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.cells[y*m.width+x] = b.At(r.X0+x, r.Y0+y)
		}
	}
	return m
}

// Width returns the capture width in cells.
func (m *MoveBuffer) Width() int { return m.width }

// Height returns the capture height in cells.
func (m *MoveBuffer) Height() int { return m.height }

// Origin returns the top-left of the capture rectangle at cut time.
func (m *MoveBuffer) Origin() Point { return m.origin }

// At returns the captured index at capture-local coordinates.
func (m *MoveBuffer) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Transparent
	}
	return m.cells[y*m.width+x]
}

// paste writes the capture into b with its top-left at dst, clipped to the
// buffer. With skipTransparent set, cells holding the Transparent index are
// left out so irregular cut-outs keep the pixels underneath.
func (m *MoveBuffer) paste(b *Buffer, dst Point, skipTransparent bool) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			v := m.cells[y*m.width+x]
			if skipTransparent && v == Transparent {
				continue
			}
			b.Set(dst.X+x, dst.Y+y, v)
		}
	}
}
