package recognition

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertClose(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if d := got - want; d > epsilon || d < -epsilon {
		t.Fatalf("got %g, want %g (±%g)", got, want, epsilon)
	}
}

// line returns a straight cubic from (x0, y0) to (x1, y1), the way KanjiVG
// encodes straight strokes.
func line(x0, y0, x1, y1 float64) Segment {
	p0, p3 := Pt(x0, y0), Pt(x1, y1)
	return CubicBez{p0, p0.Lerp(p3, 1.0/3.0), p0.Lerp(p3, 2.0/3.0), p3}.Seg()
}

func mustStroke(segs ...Segment) *Stroke {
	s, err := NewStroke(segs...)
	if err != nil {
		panic(err)
	}
	return s
}

func glyph(ch rune, segs ...Segment) *Glyph {
	g := &Glyph{Char: ch}
	for _, seg := range segs {
		g.Strokes = append(g.Strokes, mustStroke(seg))
	}
	return g
}

// testGlyphs are simplified single-segment versions of real glyphs. ー has
// the same geometry as 一.
func testGlyphs() []*Glyph {
	return []*Glyph{
		glyph('一', line(10, 54, 99, 54)),
		glyph('ー', line(10, 54, 99, 54)),
		glyph('二',
			line(25, 35, 84, 35),
			line(12, 80, 97, 80)),
		glyph('十',
			line(10, 54, 99, 54),
			line(54, 10, 54, 99)),
		glyph('土',
			line(20, 45, 89, 45),
			line(54, 15, 54, 90),
			line(10, 90, 99, 90)),
		glyph('士',
			line(10, 45, 99, 45),
			line(54, 15, 54, 90),
			line(25, 90, 84, 90)),
		glyph('人',
			QuadBez{Pt(52, 12), Pt(48, 70), Pt(12, 96)}.Seg(),
			QuadBez{Pt(54, 44), Pt(70, 80), Pt(98, 94)}.Seg()),
		glyph('が', line(20, 40, 80, 40)),
	}
}

func testStore() *GlyphStore {
	return NewGlyphStore(testGlyphs()...)
}

func testAsset(t *testing.T, glyphs ...*Glyph) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteGlyphs(&buf, glyphs...); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// transformed returns every point of strokes transformed by aff.
func transformed(strokes [][]Point, aff Affine) [][]Point {
	out := make([][]Point, len(strokes))
	for i, pts := range strokes {
		out[i] = make([]Point, len(pts))
		for j, pt := range pts {
			out[i][j] = pt.Transform(aff)
		}
	}
	return out
}
