package recognition

import (
	"fmt"
	"slices"
)

// AnswerKind tells where an [Answer] comes from.
type AnswerKind int

const (
	// Submitted answers are built from a user's drawing.
	Submitted AnswerKind = iota + 1
	// Canonical answers are built from a word's glyphs and know the word's
	// character count, which sizes the frame submissions are fitted into.
	Canonical
)

func (k AnswerKind) String() string {
	switch k {
	case Submitted:
		return "submitted"
	case Canonical:
		return "canonical"
	default:
		return fmt.Sprintf("AnswerKind(%d)", int(k))
	}
}

// Answer is a written word reduced to what is compared: one
// [ShapeDescriptor] per stroke and one [ConnectionDescriptor] per pair of
// adjacent strokes.
//
// Answers are immutable.
type Answer struct {
	kind       AnswerKind
	characters int
	lines      []polyline
	shapes     []ShapeDescriptor
	conns      []ConnectionDescriptor
}

func newAnswer(kind AnswerKind, characters int, lines []polyline) *Answer {
	a := &Answer{
		kind:       kind,
		characters: characters,
		lines:      lines,
		shapes:     make([]ShapeDescriptor, len(lines)),
	}
	for i, pl := range lines {
		a.shapes[i] = describeShape(pl)
	}
	if len(a.shapes) > 1 {
		a.conns = make([]ConnectionDescriptor, len(a.shapes)-1)
		for i := 1; i < len(a.shapes); i++ {
			a.conns[i-1] = connect(a.shapes[i-1], a.shapes[i])
		}
	}
	return a
}

// NewSubmission builds an answer from drawn strokes, each an ordered list of
// pointer positions in any coordinate space. Position and size of the drawing
// don't matter; it is fitted to the reference when compared.
//
// Every stroke needs at least one point, otherwise [ErrEmptyStroke] is
// returned. Points with infinite or NaN coordinates are [ErrMalformed]. A
// drawing without strokes is valid, but can't match any word.
func NewSubmission(strokes [][]Point) (*Answer, error) {
	lines := make([]polyline, len(strokes))
	for i, pts := range strokes {
		if len(pts) == 0 {
			return nil, fmt.Errorf("stroke %d: %w", i, ErrEmptyStroke)
		}
		for j, pt := range pts {
			if !pt.IsFinite() {
				return nil, fmt.Errorf("stroke %d point %d: %v: %w", i, j, pt, ErrMalformed)
			}
		}
		lines[i] = newPolyline(slices.Clone(pts))
	}
	return newAnswer(Submitted, 0, lines), nil
}

// newCanonical builds the reference answer of a word. With fit set, the
// strokes are first fitted into the word's frame the same way submissions
// are, so that a drawing identical to the glyphs compares as identical.
func newCanonical(wg *WordGeometry, fit bool) *Answer {
	lines := make([]polyline, len(wg.Strokes))
	for i, s := range wg.Strokes {
		lines[i] = s.line
	}
	a := newAnswer(Canonical, wg.Characters, lines)
	if fit && len(lines) > 0 {
		a = a.transform(FitRect(a.Bounds(), a.frame()))
	}
	return a
}

func (a *Answer) Kind() AnswerKind { return a.kind }

func (a *Answer) IsCanonical() bool { return a.kind == Canonical }

// Characters returns the number of characters of a canonical answer's word.
// It is 0 for submitted answers.
func (a *Answer) Characters() int { return a.characters }

func (a *Answer) StrokeCount() int { return len(a.lines) }

// Shapes returns a copy of the answer's shape descriptors, one per stroke.
func (a *Answer) Shapes() []ShapeDescriptor { return slices.Clone(a.shapes) }

// Connections returns a copy of the answer's connection descriptors; there
// is one fewer than there are strokes.
func (a *Answer) Connections() []ConnectionDescriptor { return slices.Clone(a.conns) }

// Strokes returns a copy of the points of every stroke. For canonical
// answers these are the sampled glyph points.
func (a *Answer) Strokes() [][]Point {
	out := make([][]Point, len(a.lines))
	for i, pl := range a.lines {
		out[i] = slices.Clone(pl.points)
	}
	return out
}

// Bounds returns the bounding box of all points of all strokes. It is the
// zero rectangle for an answer without strokes.
func (a *Answer) Bounds() Rect {
	if len(a.lines) == 0 {
		return Rect{}
	}
	r := a.lines[0].bounds()
	for _, pl := range a.lines[1:] {
		r = r.Union(pl.bounds())
	}
	return r
}

// frame returns the rectangle a canonical answer's word occupies.
func (a *Answer) frame() Rect {
	return NewRectFromOrigin(Pt(0, 0), Sz(float64(a.characters*BoxSize), BoxSize))
}

// transform returns a copy of a with aff applied to every point and all
// descriptors derived again.
func (a *Answer) transform(aff Affine) *Answer {
	lines := make([]polyline, len(a.lines))
	for i, pl := range a.lines {
		lines[i] = pl.transform(aff)
	}
	return newAnswer(a.kind, a.characters, lines)
}
