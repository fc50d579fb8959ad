package px

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Rect is an axis-aligned rectangle over grid cells. Both corners are
// inclusive: a Rect with X0==X1 and Y0==Y1 covers exactly one cell.
// A Rect is normalized when X0 <= X1 and Y0 <= Y1; functions in this
// package always return normalized rects.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// RectOf returns the normalized rectangle spanned by two corner points.
func RectOf(a, b Point) Rect {
	r := Rect{a.X, a.Y, b.X, b.Y}
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Width returns the number of columns covered.
func (r Rect) Width() int { return r.X1 - r.X0 + 1 }

// Height returns the number of rows covered.
func (r Rect) Height() int { return r.Y1 - r.Y0 + 1 }

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: mini(r.X0, o.X0),
		Y0: mini(r.Y0, o.Y0),
		X1: maxi(r.X1, o.X1),
		Y1: maxi(r.Y1, o.Y1),
	}
}

// Inflate grows r by n cells on every side.
func (r Rect) Inflate(n int) Rect {
	return Rect{r.X0 - n, r.Y0 - n, r.X1 + n, r.Y1 + n}
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{r.X0 + dx, r.Y0 + dy, r.X1 + dx, r.Y1 + dy}
}

// Clip intersects r with the w x h grid anchored at the origin. The second
// return value is false when the intersection is empty.
func (r Rect) Clip(w, h int) (Rect, bool) {
	c := Rect{
		X0: maxi(r.X0, 0),
		Y0: maxi(r.Y0, 0),
		X1: mini(r.X1, w-1),
		Y1: mini(r.Y1, h-1),
	}
	if c.X0 > c.X1 || c.Y0 > c.Y1 {
		return Rect{}, false
	}
	return c, true
}

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}
