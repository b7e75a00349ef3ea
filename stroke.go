package recognition

import (
	"fmt"
	"slices"
)

// SamplesPerSegment is the number of points each curve segment contributes to
// a stroke's sampled polyline.
const SamplesPerSegment = 4

// Stroke is one continuous pen movement of a glyph, made of curve segments.
//
// A stroke samples its segments once, on construction, into a polyline of
// 1 + [SamplesPerSegment]·len(segments) points. Points are evaluated on the
// exact Bézier polynomials. All measurements on a stroke use this polyline.
//
// Strokes are immutable.
type Stroke struct {
	segs []Segment
	line polyline
}

// NewStroke returns a stroke made of segs, in order. It returns
// [ErrEmptyStroke] if segs is empty.
func NewStroke(segs ...Segment) (*Stroke, error) {
	if len(segs) == 0 {
		return nil, ErrEmptyStroke
	}
	for i, seg := range segs {
		if seg.Kind != QuadKind && seg.Kind != CubicKind {
			return nil, fmt.Errorf("segment %d: invalid kind %d: %w", i, seg.Kind, ErrMalformed)
		}
	}
	s := &Stroke{segs: slices.Clone(segs)}
	s.line = sampleSegments(s.segs)
	return s, nil
}

func sampleSegments(segs []Segment) polyline {
	pts := make([]Point, 0, 1+SamplesPerSegment*len(segs))
	// every segment's t=0 is the previous segment's t=1, except for the first one
	pts = append(pts, segs[0].Start())
	for _, seg := range segs {
		for j := 1; j <= SamplesPerSegment; j++ {
			pts = append(pts, seg.Eval(float64(j)/SamplesPerSegment))
		}
	}
	return newPolyline(pts)
}

// Segments returns a copy of the stroke's curve segments.
func (s *Stroke) Segments() []Segment { return slices.Clone(s.segs) }

// Points returns a copy of the stroke's sampled points.
func (s *Stroke) Points() []Point { return slices.Clone(s.line.points) }

// Lengths returns a copy of the distances between consecutive sampled
// points. The first entry is always 0.
func (s *Stroke) Lengths() []float64 { return slices.Clone(s.line.lengths) }

// Length returns the length of the sampled polyline. It is the sum of
// [Stroke.Lengths].
func (s *Stroke) Length() float64 { return s.line.length }

func (s *Stroke) Start() Point { return s.line.start() }
func (s *Stroke) End() Point   { return s.line.end() }

// PointAt returns the point at fraction f of the stroke's length, with f
// clamped to [0, 1].
func (s *Stroke) PointAt(f float64) Point { return s.line.at(f) }

// Bounds returns the bounding box of the sampled points.
func (s *Stroke) Bounds() Rect { return s.line.bounds() }

// Translate returns a copy of the stroke moved by v.
func (s *Stroke) Translate(v Vec2) *Stroke {
	aff := Translate(v)
	out := &Stroke{
		segs: make([]Segment, len(s.segs)),
		line: polyline{
			points: make([]Point, len(s.line.points)),
			// translation preserves distances
			lengths: s.line.lengths,
			length:  s.line.length,
		},
	}
	for i, seg := range s.segs {
		out.segs[i] = seg.Transform(aff)
	}
	for i, pt := range s.line.points {
		out.line.points[i] = pt.Translate(v)
	}
	return out
}
