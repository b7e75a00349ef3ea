package recognition

import "testing"

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineThen(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(1, 2)
	aff := Translate(Vec(1, 1)).ThenScale(2, 3).ThenTranslate(Vec(-1, 0))
	assertNear(t, p.Transform(aff), Pt(3, 9), epsilon)
}

func TestFitRect(t *testing.T) {
	const epsilon = 1e-9
	dst := Rect{0, 0, 109, 109}

	tests := []struct {
		name   string
		src    Rect
		p0, p1 Point // images of the src corners
	}{
		{"wide", Rect{10, 10, 30, 20}, Pt(0, 27.25), Pt(109, 81.75)},
		{"tall", Rect{0, 0, 5, 10}, Pt(27.25, 0), Pt(81.75, 109)},
		{"horizontal line", Rect{100, 300, 400, 300}, Pt(0, 54.5), Pt(109, 54.5)},
		{"vertical line", Rect{-5, 0, -5, 2}, Pt(54.5, 0), Pt(54.5, 109)},
		{"point", Rect{7, 7, 7, 7}, Pt(54.5, 54.5), Pt(54.5, 54.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aff := FitRect(tt.src, dst)
			assertNear(t, tt.src.Origin().Transform(aff), tt.p0, epsilon)
			assertNear(t, Pt(tt.src.X1, tt.src.Y1).Transform(aff), tt.p1, epsilon)
		})
	}
}

func TestFitRectWideFrame(t *testing.T) {
	const epsilon = 1e-9
	aff := FitRect(Rect{0, 0, 10, 10}, Rect{0, 0, 218, 109})
	assertNear(t, Pt(0, 0).Transform(aff), Pt(54.5, 0), epsilon)
	assertNear(t, Pt(10, 10).Transform(aff), Pt(163.5, 109), epsilon)
	if aff.N0 != aff.N3 || aff.N1 != 0 || aff.N2 != 0 {
		t.Errorf("got %v, want a uniform scale", aff)
	}
}

func TestPointsBoundingBox(t *testing.T) {
	diff(t, Rect{}, PointsBoundingBox(nil))
	diff(t, Rect{-1, 2, 3, 5}, PointsBoundingBox([]Point{Pt(3, 2), Pt(-1, 5), Pt(0, 3)}))
	diff(t, Rect{1, 1, 1, 1}, PointsBoundingBox([]Point{Pt(1, 1)}))
}
