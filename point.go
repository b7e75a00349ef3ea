package recognition

import (
	"fmt"
	"math"
)

// Point is a position in the y-down coordinate space shared by glyph data and
// drawing surfaces. Glyph coordinates run from 0 to [BoxSize] per character.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate moves pt by v.
func (pt Point) Translate(v Vec2) Point {
	return Pt(pt.X+v.X, pt.Y+v.Y)
}

// Transform maps pt through aff.
func (pt Point) Transform(aff Affine) Point {
	return Pt(
		aff.N0*pt.X+aff.N2*pt.Y+aff.N4,
		aff.N1*pt.X+aff.N3*pt.Y+aff.N5,
	)
}

// Sub returns the offset from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec(pt.X-o.X, pt.Y-o.Y)
}

// Lerp returns the point a fraction t of the way from pt to o.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

func (pt Point) Midpoint(o Point) Point {
	return Pt(0.5*(pt.X+o.X), 0.5*(pt.Y+o.Y))
}

// Distance returns the euclidean distance between pt and o.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// IsFinite reports whether both coordinates are neither infinite nor NaN.
// Glyph assets and drawings with other points are rejected as malformed.
func (pt Point) IsFinite() bool {
	return !math.IsInf(pt.X, 0) && !math.IsInf(pt.Y, 0) &&
		!math.IsNaN(pt.X) && !math.IsNaN(pt.Y)
}
