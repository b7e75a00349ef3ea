package recognition

import "math"

// AngleSamples is the number of direction samples in a [ShapeDescriptor].
const AngleSamples = 8

// ShapeDescriptor summarizes the path of one stroke.
//
// The stroke is cut into AngleSamples pieces of equal length; Angles[i] is
// the direction, in radians in (−π, π], from the start to the end of piece i.
// Every stroke has the same number of samples no matter how long or complex it
// is.
type ShapeDescriptor struct {
	Angles [AngleSamples]float64
	Start  Point
	End    Point
}

func describeShape(pl polyline) ShapeDescriptor {
	d := ShapeDescriptor{
		Start: pl.start(),
		End:   pl.end(),
	}
	prev := d.Start
	for i := range AngleSamples {
		next := pl.at(float64(i+1) / AngleSamples)
		d.Angles[i] = next.Sub(prev).Angle()
		prev = next
	}
	return d
}

// difference returns the mean angle difference between the samples of d and
// o, scaled to [0, 1].
func (d ShapeDescriptor) difference(o ShapeDescriptor) float64 {
	var sum float64
	for i := range AngleSamples {
		sum += angleDifference(d.Angles[i], o.Angles[i])
	}
	return sum / AngleSamples / math.Pi
}

// angleDifference returns the difference between two angles in [−π, π],
// measured in the shorter direction. The result is in [0, π].
func angleDifference(a, b float64) float64 {
	diff := math.Abs(b - a)
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	return diff
}

// ConnectionDescriptor describes where a stroke lies relative to the stroke
// before it. It tells apart characters like 土 and 士, whose strokes have
// nearly the same directions.
type ConnectionDescriptor struct {
	// StartOffset is the vector from the previous stroke's start point to
	// this stroke's start point.
	StartOffset Vec2
	// EndOffset is the same for end points.
	EndOffset Vec2
}

func connect(prev, next ShapeDescriptor) ConnectionDescriptor {
	return ConnectionDescriptor{
		StartOffset: next.Start.Sub(prev.Start),
		EndOffset:   next.End.Sub(prev.End),
	}
}

// difference returns how far apart the offsets of c and o are, in units of
// two character boxes, capped at 1.
func (c ConnectionDescriptor) difference(o ConnectionDescriptor) float64 {
	ds := c.StartOffset.Sub(o.StartOffset).Hypot()
	de := c.EndOffset.Sub(o.EndOffset).Hypot()
	return min((ds+de)/(2*BoxSize), 1)
}
