package recognition

import (
	"iter"
	"maps"
	"slices"

	"golang.org/x/text/unicode/norm"
)

// BoxSize is the side length of the square box all glyphs are drawn in. It is
// the viewBox size used throughout KanjiVG.
const BoxSize = 109

// Glyph is the canonical stroke geometry of one character, in the local
// coordinates of its character box.
type Glyph struct {
	Char    rune
	Strokes []*Stroke
}

// GlyphStore maps characters to their glyphs. A store is never modified after
// it has been created and is safe for concurrent use.
type GlyphStore struct {
	glyphs map[rune]*Glyph
}

// NewGlyphStore returns a store holding glyphs. If several glyphs are for the
// same character, the last one wins.
func NewGlyphStore(glyphs ...*Glyph) *GlyphStore {
	st := &GlyphStore{glyphs: make(map[rune]*Glyph, len(glyphs))}
	for _, g := range glyphs {
		st.glyphs[g.Char] = g
	}
	return st
}

// Lookup returns the glyph for ch.
func (st *GlyphStore) Lookup(ch rune) (*Glyph, bool) {
	g, ok := st.glyphs[ch]
	return g, ok
}

// Len returns the number of glyphs in the store.
func (st *GlyphStore) Len() int { return len(st.glyphs) }

// Chars returns the characters in the store in ascending order.
func (st *GlyphStore) Chars() iter.Seq[rune] {
	return slices.Values(slices.Sorted(maps.Keys(st.glyphs)))
}

// Supported reports whether every character of word has a glyph. The empty
// word is not supported. Words are compared in Unicode normalization form C,
// so a kana and its voicing mark given as two code points are looked up as
// the single precomposed character.
func (st *GlyphStore) Supported(word string) bool {
	word = normalizeWord(word)
	if word == "" {
		return false
	}
	for _, ch := range word {
		if _, ok := st.glyphs[ch]; !ok {
			return false
		}
	}
	return true
}

func normalizeWord(word string) string {
	return norm.NFC.String(word)
}
