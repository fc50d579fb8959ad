package px

// Size and value limits for buffers. Every cell holds a palette index in
// [0, MaxIndex]; Transparent (index 0) is reserved for "empty".
const (
	MinSize = 2
	MaxSize = 128

	// MaxIndex is the largest valid palette index.
	MaxIndex = 63

	// Transparent is the reserved empty-cell index.
	Transparent uint8 = 0
)

// indexMask keeps cell values inside [0, MaxIndex].
const indexMask = 0x3f

// Buffer is a rectangular grid of palette indices. It is the single mutable
// resource tools and the codec operate on. A Buffer is not safe for
// concurrent use; a drawing gesture holds exclusive mutation rights for its
// duration.
type Buffer struct {
	width  int
	height int
	cells  []uint8 // row-major, len == width*height
}

// NewBuffer creates a transparent buffer with the given dimensions.
// Dimensions outside [MinSize, MaxSize] are rejected with a *DimensionError.
func NewBuffer(width, height int) (*Buffer, error) {
	if !validSize(width) || !validSize(height) {
		return nil, &DimensionError{Width: width, Height: height}
	}
	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}, nil
}

func validSize(n int) bool { return n >= MinSize && n <= MaxSize }

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells.
func (b *Buffer) Height() int { return b.height }

// InBounds reports whether (x, y) addresses a cell of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the palette index at (x, y), or Transparent when the
// coordinate is out of bounds.
func (b *Buffer) At(x, y int) uint8 {
	if !b.InBounds(x, y) {
		return Transparent
	}
	return b.cells[y*b.width+x]
}

// Set writes a palette index at (x, y) and reports whether the cell value
// changed. Out-of-bounds coordinates are silently ignored. The index is
// masked into [0, MaxIndex].
func (b *Buffer) Set(x, y int, idx uint8) bool {
	if !b.InBounds(x, y) {
		return false
	}
	idx &= indexMask
	i := y*b.width + x
	if b.cells[i] == idx {
		return false
	}
	b.cells[i] = idx
	return true
}

// Fill sets every cell to idx.
func (b *Buffer) Fill(idx uint8) {
	idx &= indexMask
	for i := range b.cells {
		b.cells[i] = idx
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{width: b.width, height: b.height, cells: make([]uint8, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

// Equal reports whether two buffers have identical dimensions and content.
func (b *Buffer) Equal(o *Buffer) bool {
	if o == nil || b.width != o.width || b.height != o.height {
		return false
	}
	for i, v := range b.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// Bounds returns the rectangle covering the whole buffer.
func (b *Buffer) Bounds() Rect {
	return Rect{0, 0, b.width - 1, b.height - 1}
}

// CopyRegion copies the cells inside r from src into b. Both buffers must
// share dimensions; the region is clipped to them. Used to roll back live
// shape previews from a snapshot without touching the rest of the grid.
func (b *Buffer) CopyRegion(src *Buffer, r Rect) {
	if src == nil || src.width != b.width || src.height != b.height {
		return
	}
	c, ok := r.Clip(b.width, b.height)
	if !ok {
		return
	}
	for y := c.Y0; y <= c.Y1; y++ {
		row := y * b.width
		copy(b.cells[row+c.X0:row+c.X1+1], src.cells[row+c.X0:row+c.X1+1])
	}
}

// regionEqual reports whether b and o agree on every cell inside r.
func regionEqual(b, o *Buffer, r Rect) bool {
	c, ok := r.Clip(b.width, b.height)
	if !ok {
		return true
	}
	for y := c.Y0; y <= c.Y1; y++ {
		for x := c.X0; x <= c.X1; x++ {
			if b.At(x, y) != o.At(x, y) {
				return false
			}
		}
	}
	return true
}

// Resize returns a new buffer with the given dimensions, preserving the
// overlapping content. The receiver is left untouched; out-of-range
// dimensions are rejected before any allocation.
func (b *Buffer) Resize(width, height int) (*Buffer, error) {
	n, err := NewBuffer(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < mini(height, b.height); y++ {
		copy(n.cells[y*width:y*width+mini(width, b.width)], b.cells[y*b.width:y*b.width+mini(width, b.width)])
	}
	return n, nil
}
