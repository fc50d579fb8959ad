package px

import "math"

// painter applies candidate pixel writes to a buffer, clipping to its
// bounds and, when a mask rectangle is present, silently skipping writes
// outside it. It accumulates whether any cell actually changed.
type painter struct {
	buf     *Buffer
	mask    *Rect // nil when the tool is unmasked
	color   uint8
	changed bool
}

func (p *painter) plot(x, y int) {
	if p.mask != nil && !p.mask.Contains(x, y) {
		return
	}
	if p.buf.Set(x, y, p.color) {
		p.changed = true
	}
}

// stamp paints the discrete circular brush footprint centered at (cx, cy).
// A pixel belongs to the footprint iff dx*dx+dy*dy <= h*h+h where h is half
// the brush size; this matches a chunky discrete circle rather than a true
// Euclidean one. Size 1 stamps a single pixel.
func stamp(p *painter, cx, cy, size int) {
	if size <= 1 {
		p.plot(cx, cy)
		return
	}
	h := size / 2
	limit := h*h + h
	for dy := -h; dy <= h; dy++ {
		for dx := -h; dx <= h; dx++ {
			if dx*dx+dy*dy <= limit {
				p.plot(cx+dx, cy+dy)
			}
		}
	}
}

// line rasterizes an integer Bresenham line from (x0, y0) to (x1, y1),
// stamping the brush footprint at every stepped point when size > 1.
// Endpoints are canonicalized first so the rasterized pixel set is
// identical regardless of direction.
func line(p *painter, x0, y0, x1, y1, size int) {
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	dx := absi(x1 - x0)
	dy := absi(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		stamp(p, x0, y0, size)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// rectFill paints every cell of the rectangle spanned by the two corners.
func rectFill(p *painter, x0, y0, x1, y1 int) {
	r := RectOf(Pt(x0, y0), Pt(x1, y1))
	for y := r.Y0; y <= r.Y1; y++ {
		for x := r.X0; x <= r.X1; x++ {
			p.plot(x, y)
		}
	}
}

// rectStroke paints exactly the 4 boundary edges of the rectangle. Corners
// are visited twice, which is harmless: writes are idempotent.
func rectStroke(p *painter, x0, y0, x1, y1 int) {
	r := RectOf(Pt(x0, y0), Pt(x1, y1))
	for x := r.X0; x <= r.X1; x++ {
		p.plot(x, r.Y0)
		p.plot(x, r.Y1)
	}
	for y := r.Y0; y <= r.Y1; y++ {
		p.plot(r.X0, y)
		p.plot(r.X1, y)
	}
}

// ellipseFill paints the filled ellipse inscribed in the rectangle spanned
// by the two drag corners: center at the corner midpoint, radii half the
// corner deltas. Each row's half-width is rx*sqrt(1-(dy/ry)^2), floored.
func ellipseFill(p *painter, x0, y0, x1, y1 int) {
	r := RectOf(Pt(x0, y0), Pt(x1, y1))
	cx := float64(r.X0+r.X1) / 2
	cy := float64(r.Y0+r.Y1) / 2
	rx := float64(r.X1-r.X0) / 2
	ry := float64(r.Y1-r.Y0) / 2
	if rx == 0 || ry == 0 {
		rectFill(p, r.X0, r.Y0, r.X1, r.Y1) // degenerate: a row or column
		return
	}
	for y := r.Y0; y <= r.Y1; y++ {
		t := (float64(y) - cy) / ry
		if t*t > 1 {
			continue
		}
		half := math.Floor(rx * math.Sqrt(1-t*t))
		for x := int(math.Ceil(cx - half)); x <= int(math.Floor(cx + half)); x++ {
			p.plot(x, y)
		}
	}
}

// ellipseStroke paints the ellipse outline by angular sampling in 1-degree
// steps. Duplicate samples collapse onto the same cells.
func ellipseStroke(p *painter, x0, y0, x1, y1 int) {
	r := RectOf(Pt(x0, y0), Pt(x1, y1))
	cx := float64(r.X0+r.X1) / 2
	cy := float64(r.Y0+r.Y1) / 2
	rx := float64(r.X1-r.X0) / 2
	ry := float64(r.Y1-r.Y0) / 2
	for deg := 0; deg < 360; deg++ {
		a := float64(deg) * math.Pi / 180
		x := int(math.Round(cx + rx*math.Cos(a)))
		y := int(math.Round(cy + ry*math.Sin(a)))
		p.plot(x, y)
	}
}

// floodFill replaces the 4-connected component of cells sharing the seed's
// color with the painter's color, stopping at color boundaries and at the
// painter's mask. It returns the repainted points so a cancelled gesture
// can restore them. Filling with the seed's own color is a no-op.
//
// Iterative with an explicit stack; cells are recolored when pushed, so a
// visited cell can never be pushed twice.
func floodFill(p *painter, x, y int) []Point {
	if !p.buf.InBounds(x, y) {
		return nil
	}
	if p.mask != nil && !p.mask.Contains(x, y) {
		return nil
	}
	src := p.buf.At(x, y)
	if src == p.color&indexMask {
		return nil
	}
	eligible := func(x, y int) bool {
		if !p.buf.InBounds(x, y) || p.buf.At(x, y) != src {
			return false
		}
		return p.mask == nil || p.mask.Contains(x, y)
	}
	var filled []Point
	stack := []Point{Pt(x, y)}
	p.buf.Set(x, y, p.color)
	p.changed = true
	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		filled = append(filled, pt)
		for _, n := range [4]Point{{pt.X + 1, pt.Y}, {pt.X - 1, pt.Y}, {pt.X, pt.Y + 1}, {pt.X, pt.Y - 1}} {
			if eligible(n.X, n.Y) {
				p.buf.Set(n.X, n.Y, p.color)
				stack = append(stack, n)
			}
		}
	}
	return filled
}

// floodRegion computes the bounding rectangle of the 4-connected component
// of cells sharing the color at the seed, without painting anything. The
// second return value is false for out-of-bounds seeds.
func floodRegion(b *Buffer, x, y int) (Rect, bool) {
	if !b.InBounds(x, y) {
		return Rect{}, false
	}
	src := b.At(x, y)
	seen := map[Point]struct{}{Pt(x, y): {}}
	stack := []Point{Pt(x, y)}
	bounds := Rect{x, y, x, y}
	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		bounds = bounds.Union(Rect{pt.X, pt.Y, pt.X, pt.Y})
		for _, n := range [4]Point{{pt.X + 1, pt.Y}, {pt.X - 1, pt.Y}, {pt.X, pt.Y + 1}, {pt.X, pt.Y - 1}} {
			if !b.InBounds(n.X, n.Y) || b.At(n.X, n.Y) != src {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			stack = append(stack, n)
		}
	}
	return bounds, true
}

func absi(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
