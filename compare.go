package recognition

import "math"

// Compare returns how different the submitted answer cand is from the
// canonical answer ref, from 0 (same shape and layout) to 1 (most different).
// Angles and connections are weighted equally; use [Recognizer.Difference]
// for configured weights.
//
// Answers with different stroke counts always compare as 1. Otherwise cand
// is scaled and moved to fit ref's frame, and the result is the mean of the
// difference of stroke directions and the difference of stroke connections.
//
// Canonical answers are fitted into their frame when they are built (see
// [WithCanonicalFit]), so ref's points already lie in the same n·BoxSize ×
// BoxSize frame cand is fitted into.
//
// Compare panics if ref isn't canonical or has no strokes.
func Compare(ref, cand *Answer) float64 {
	return compareWeighted(ref, cand, DefaultConfig().AngleWeight)
}

func compareWeighted(ref, cand *Answer, angleWeight float64) float64 {
	angle, pos, ok := compareParts(ref, cand)
	if !ok {
		return 1
	}
	return angleWeight*angle + (1-angleWeight)*pos
}

// compareParts returns the angle and connection differences of cand against
// ref, each in [0, 1]. ok is false if the stroke counts differ. Drawings too
// large to fit in floating point get the largest difference in both parts.
func compareParts(ref, cand *Answer) (angle, pos float64, ok bool) {
	if !ref.IsCanonical() {
		panic("recognition: comparing against a non-canonical answer")
	}
	n := ref.StrokeCount()
	if n == 0 {
		panic("recognition: comparing against an answer without strokes")
	}
	if cand.StrokeCount() != n {
		return 0, 0, false
	}

	cand = cand.transform(FitRect(cand.Bounds(), ref.frame()))

	for i := range n {
		angle += ref.shapes[i].difference(cand.shapes[i])
	}
	angle /= float64(n)

	if len(ref.conns) > 0 {
		for i := range ref.conns {
			pos += ref.conns[i].difference(cand.conns[i])
		}
		pos /= float64(len(ref.conns))
	}
	if math.IsNaN(angle) || math.IsNaN(pos) {
		return 1, 1, true
	}
	return angle, pos, true
}
