package recognition

// Affine is a 2D affine transform with coefficients (N0, ..., N5), mapping
// (x, y) to (N0·x + N2·y + N4, N1·x + N3·y + N5). Recognition only ever uses
// uniform scales and translations, produced by [FitRect].
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Scale returns a transform scaling x and y independently.
func Scale(x, y float64) Affine { return Affine{x, 0, 0, y, 0, 0} }

// Translate returns a transform moving points by v.
func Translate(v Vec2) Affine { return Affine{1, 0, 0, 1, v.X, v.Y} }

// Mul returns the transform applying o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale returns aff followed by a scale of (x, y).
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate returns aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// FitRect returns the uniform scale and translation that fits src inside dst
// while preserving its aspect ratio. The side that limits the scale spans dst
// exactly, the other side is centered.
//
// A src with zero width (or height) is fitted by its other side alone. A src
// that is a single point is only moved to the center of dst.
func FitRect(src, dst Rect) Affine {
	src = src.Abs()
	sw, sh := src.Width(), src.Height()
	dw, dh := dst.Width(), dst.Height()

	var s float64
	switch {
	case sw == 0 && sh == 0:
		s = 1
	case sw == 0:
		s = dh / sh
	case sh == 0:
		s = dw / sw
	default:
		s = min(dw/sw, dh/sh)
	}

	// the center of src lands on the center of dst
	c := dst.Center()
	off := Vec(c.X-sw*s/2, c.Y-sh*s/2)
	return Translate(Vec2(src.Origin()).Negate()).
		ThenScale(s, s).
		ThenTranslate(off)
}
