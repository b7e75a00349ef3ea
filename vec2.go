package recognition

import (
	"fmt"
	"math"
)

// Vec2 is an offset between two points, such as the offsets between the
// start and end points of adjacent strokes.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns atan2(y, x), the direction of v in radians in [−π, π]. In the
// y-down space of glyph data a positive angle points downwards. The zero
// vector has angle 0.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec(v.X+o.X, v.Y+o.Y) }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec(v.X-o.X, v.Y-o.Y) }

// Mul scales v by f.
func (v Vec2) Mul(f float64) Vec2 { return Vec(v.X*f, v.Y*f) }

func (v Vec2) Negate() Vec2 { return Vec(-v.X, -v.Y) }
