package recognition

import "fmt"

type SegmentKind int

const (
	// A quadratic Bézier segment, tagged 'q' in glyph assets.
	QuadKind SegmentKind = iota + 1
	// A cubic Bézier segment, tagged 'c' in glyph assets.
	CubicKind
)

// Segment is one curve of a stroke. It acts as a tagged union of [QuadBez]
// and [CubicBez]; for QuadKind, P3 is unused.
type Segment struct {
	// We don't use an interface so that segments stay plain values that can be
	// compared and copied without allocating.

	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

func (seg Segment) String() string {
	switch seg.Kind {
	case QuadKind:
		return fmt.Sprintf("Quad(%s, %s, %s)", seg.P0, seg.P1, seg.P2)
	case CubicKind:
		return fmt.Sprintf("Cubic(%s, %s, %s, %s)", seg.P0, seg.P1, seg.P2, seg.P3)
	default:
		return "InvalidSegment"
	}
}

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg Segment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg Segment) Cubic() CubicBez {
	switch seg.Kind {
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

// Eval evaluates the curve's Bézier polynomial at t.
func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

func (seg Segment) Start() Point {
	return seg.P0
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case QuadKind:
		return seg.P2
	default:
		return seg.P3
	}
}

func (seg Segment) Transform(aff Affine) Segment {
	switch seg.Kind {
	case QuadKind:
		return seg.Quad().Transform(aff).Seg()
	case CubicKind:
		return seg.Cubic().Transform(aff).Seg()
	default:
		return Segment{}
	}
}

// IsFinite reports whether all control points of seg are finite.
func (seg Segment) IsFinite() bool {
	return seg.P0.IsFinite() && seg.P1.IsFinite() && seg.P2.IsFinite() && seg.P3.IsFinite()
}
