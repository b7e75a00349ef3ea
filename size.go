package recognition

import "fmt"

// Size is the extent of a rectangle, such as the frame a word is drawn in.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size { return Size{Width: w, Height: h} }

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// AsVec2 returns the diagonal spanned by sz.
func (sz Size) AsVec2() Vec2 { return Vec(sz.Width, sz.Height) }
