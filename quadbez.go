package recognition

// QuadBez is a quadratic Bézier curve. KanjiVG strokes consist mostly of
// cubics; quadratics appear in converted assets and in [Smooth].
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise returns the cubic that traces exactly the same curve as q.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

// Eval returns the point at parameter t in [0, 1].
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

// Seg returns the quadratic as a [Segment].
func (q QuadBez) Seg() Segment {
	return Segment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}
