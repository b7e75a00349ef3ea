package recognition

import "slices"

// Smooth replaces the corners of a drawn polyline with curves. Each interior
// point becomes the control point of a quadratic Bézier running between the
// midpoints of its adjacent edges; the first and last points are kept. Every
// quadratic is sampled at pieces points.
//
// Polylines with fewer than three points, or pieces < 1, are returned
// unchanged (as a copy).
func Smooth(pts []Point, pieces int) []Point {
	if len(pts) < 3 || pieces < 1 {
		return slices.Clone(pts)
	}
	last := len(pts) - 1
	out := make([]Point, 0, 1+pieces*(last-1))
	out = append(out, pts[0])
	for i := 1; i < last; i++ {
		q := QuadBez{
			P0: pts[i-1].Midpoint(pts[i]),
			P1: pts[i],
			P2: pts[i].Midpoint(pts[i+1]),
		}
		if i == 1 {
			q.P0 = pts[0]
		}
		if i == last-1 {
			q.P2 = pts[last]
		}
		for j := 1; j <= pieces; j++ {
			out = append(out, q.Eval(float64(j)/float64(pieces)))
		}
	}
	return out
}
