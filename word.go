package recognition

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// WordGeometry is the canonical stroke geometry of a word: the strokes of its
// characters, in writing order, with character i moved into the i-th
// character box along the x axis.
//
// A WordGeometry is immutable.
type WordGeometry struct {
	Word       string
	Characters int
	Strokes    []*Stroke
}

// BuildWord assembles the geometry of word from the glyphs in st. The word is
// converted to Unicode normalization form C first.
//
// It returns [ErrEmptyWord] for the empty word and [ErrUnsupported] if a
// character has no glyph.
func BuildWord(st *GlyphStore, word string) (*WordGeometry, error) {
	word = normalizeWord(word)
	if word == "" {
		return nil, ErrEmptyWord
	}
	wg := &WordGeometry{
		Word:       word,
		Characters: utf8.RuneCountInString(word),
	}
	var i int
	for _, ch := range word {
		g, ok := st.Lookup(ch)
		if !ok {
			return nil, fmt.Errorf("%w %q in %q", ErrUnsupported, ch, word)
		}
		off := Vec(float64(i*BoxSize), 0)
		for _, s := range g.Strokes {
			wg.Strokes = append(wg.Strokes, s.Translate(off))
		}
		i++
	}
	return wg, nil
}

// Bounds returns the word's frame: one character box per character, side by
// side.
func (wg *WordGeometry) Bounds() Rect {
	return NewRectFromOrigin(Pt(0, 0), Sz(float64(wg.Characters*BoxSize), BoxSize))
}

// SVG returns the word's strokes as SVG path data. See [WordGeometry.WriteSVG].
func (wg *WordGeometry) SVG(opts SVGOptions) string {
	return segmentsSVG(wg.segments(), opts)
}

// WriteSVG writes the word's strokes as SVG path data to w, one subpath per
// stroke.
func (wg *WordGeometry) WriteSVG(w io.Writer, opts SVGOptions) error {
	return writeSegmentsSVG(w, wg.segments(), opts)
}

func (wg *WordGeometry) segments() [][]Segment {
	out := make([][]Segment, len(wg.Strokes))
	for i, s := range wg.Strokes {
		out[i] = s.segs
	}
	return out
}
