package recognition

// polyline is a sampled path together with its per-point distances, the form
// in which both glyph strokes and drawn strokes are measured.
type polyline struct {
	points []Point
	// lengths[i] is the distance from points[i-1] to points[i]; lengths[0] is
	// always 0.
	lengths []float64
	length  float64
}

func newPolyline(pts []Point) polyline {
	pl := polyline{
		points:  pts,
		lengths: make([]float64, len(pts)),
	}
	for i := 1; i < len(pts); i++ {
		d := pts[i-1].Distance(pts[i])
		pl.lengths[i] = d
		pl.length += d
	}
	return pl
}

// at returns the point at fraction f ∈ [0, 1] of the polyline's length. The
// position is found on the sampled points, so on curves it is only as exact as
// the sampling density.
func (pl polyline) at(f float64) Point {
	if len(pl.points) == 1 || pl.length == 0 {
		return pl.points[0]
	}
	f = min(max(f, 0), 1)
	target := f * pl.length
	var acc float64
	for i := 1; i < len(pl.points); i++ {
		l := pl.lengths[i]
		if acc+l >= target {
			if l == 0 {
				return pl.points[i]
			}
			return pl.points[i-1].Lerp(pl.points[i], (target-acc)/l)
		}
		acc += l
	}
	return pl.points[len(pl.points)-1]
}

func (pl polyline) start() Point { return pl.points[0] }
func (pl polyline) end() Point   { return pl.points[len(pl.points)-1] }

func (pl polyline) bounds() Rect {
	return PointsBoundingBox(pl.points)
}

// transform returns a copy of pl with every point transformed by aff. The
// lengths are measured again, as aff may scale.
func (pl polyline) transform(aff Affine) polyline {
	pts := make([]Point, len(pl.points))
	for i, pt := range pl.points {
		pts[i] = pt.Transform(aff)
	}
	return newPolyline(pts)
}
