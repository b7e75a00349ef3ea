package recognition

import (
	"math"
	"testing"
)

func TestAngleDifference(t *testing.T) {
	const epsilon = 1e-12
	tests := []struct {
		a, b float64
		want float64
	}{
		{0, 0, 0},
		{0, math.Pi, math.Pi},
		{0, -math.Pi / 2, math.Pi / 2},
		{math.Pi - 0.1, -math.Pi + 0.1, 0.2},
		{-math.Pi, math.Pi, 0},
	}
	for _, tt := range tests {
		got := angleDifference(tt.a, tt.b)
		assertClose(t, got, tt.want, epsilon)
		assertClose(t, angleDifference(tt.b, tt.a), got, epsilon)
	}
}

func TestDescribeShape(t *testing.T) {
	const epsilon = 1e-9

	// right, then down, half the length each
	d := describeShape(newPolyline([]Point{Pt(0, 0), Pt(40, 0), Pt(40, 40)}))
	for i, a := range d.Angles {
		want := 0.0
		if i >= AngleSamples/2 {
			want = math.Pi / 2
		}
		assertClose(t, a, want, epsilon)
	}
	diff(t, Pt(0, 0), d.Start)
	diff(t, Pt(40, 40), d.End)

	// a single point has no direction
	d = describeShape(newPolyline([]Point{Pt(5, 5)}))
	diff(t, [AngleSamples]float64{}, d.Angles)
}

func TestShapeDifference(t *testing.T) {
	const epsilon = 1e-12
	right := describeShape(newPolyline([]Point{Pt(0, 0), Pt(10, 0)}))
	left := describeShape(newPolyline([]Point{Pt(10, 0), Pt(0, 0)}))
	down := describeShape(newPolyline([]Point{Pt(0, 0), Pt(0, 10)}))

	assertClose(t, right.difference(right), 0, epsilon)
	assertClose(t, right.difference(left), 1, epsilon)
	assertClose(t, right.difference(down), 0.5, epsilon)
}

func TestConnection(t *testing.T) {
	a := ShapeDescriptor{Start: Pt(0, 0), End: Pt(10, 0)}
	b := ShapeDescriptor{Start: Pt(5, -5), End: Pt(5, 20)}
	c := connect(a, b)
	diff(t, ConnectionDescriptor{StartOffset: Vec(5, -5), EndOffset: Vec(-5, 20)}, c)

	assertClose(t, c.difference(c), 0, 0)
	o := ConnectionDescriptor{StartOffset: Vec(5, -5+BoxSize/2.0), EndOffset: Vec(-5, 20)}
	assertClose(t, c.difference(o), 0.25, 1e-12)

	far := ConnectionDescriptor{StartOffset: Vec(1000, 0), EndOffset: Vec(-1000, 0)}
	assertClose(t, c.difference(far), 1, 0)
}
