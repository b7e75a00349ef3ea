package recognition

// Rect is an axis-aligned rectangle spanning X0..X1 and Y0..Y1. Rectangles
// built by this package have X0 ≤ X1 and Y0 ≤ Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle with opposite corners p0 and p1.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns the rectangle of the given size with one corner
// at origin.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, origin.Translate(size.AsVec2()))
}

// Abs returns r with its corners ordered so that width and height are not
// negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) Origin() Point { return Pt(r.X0, r.Y0) }

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Size() Size { return Sz(r.Width(), r.Height()) }

func (r Rect) Center() Point { return r.Origin().Midpoint(Pt(r.X1, r.Y1)) }

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint grows r to include pt. Starting from the zero-area rectangle of
// one point, repeated calls yield the bounding box of a point set.
func (r Rect) UnionPoint(pt Point) Rect {
	return r.Union(Rect{pt.X, pt.Y, pt.X, pt.Y})
}

// PointsBoundingBox returns the smallest rectangle enclosing all points. It
// returns the zero rectangle for an empty slice.
func PointsBoundingBox(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}
