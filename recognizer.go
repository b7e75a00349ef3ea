package recognition

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Recognizer decides whether drawings are the words they are meant to be.
//
// A Recognizer keeps the canonical answer of every word it has seen. Words
// are registered explicitly with [Recognizer.Register] or implicitly on first
// use; either way each word is built exactly once. A Recognizer is safe for
// concurrent use.
type Recognizer struct {
	store *GlyphStore
	vocab Vocabulary
	cfg   Config

	// map[string]*canonicalEntry, keyed by NFC-normalized word
	cache sync.Map
}

type canonicalEntry struct {
	once sync.Once
	geom *WordGeometry
	ans  *Answer
	err  error
}

// Match is the difference between a submission and one word.
type Match struct {
	Word       string
	Difference float64
}

// New returns a recognizer for the glyphs in store. vocab supplies the words
// that submissions compete against; it may be nil, in which case only the
// intended word is considered.
func New(store *GlyphStore, vocab Vocabulary, opts ...Option) *Recognizer {
	if store == nil {
		panic("recognition: New with nil store")
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Recognizer{
		store: store,
		vocab: vocab,
		cfg:   cfg,
	}
}

// Config returns the recognizer's configuration.
func (r *Recognizer) Config() Config { return r.cfg }

// IsSupported reports whether every character of word has a glyph. Only
// supported words may be offered for writing.
func (r *Recognizer) IsSupported(word string) bool {
	return r.store.Supported(word)
}

// Register builds and keeps the canonical answer of word. Registering a word
// again does nothing and returns the result of the first registration.
//
// It returns [ErrUnsupported] if a character of word has no glyph and
// [ErrEmptyWord] if word is empty or has no strokes.
func (r *Recognizer) Register(word string) error {
	return r.entry(word).err
}

// Canonical returns the canonical answer of word, registering it if needed.
func (r *Recognizer) Canonical(word string) (*Answer, error) {
	e := r.entry(word)
	return e.ans, e.err
}

// Geometry returns the stroke geometry of word, registering it if needed.
func (r *Recognizer) Geometry(word string) (*WordGeometry, error) {
	e := r.entry(word)
	return e.geom, e.err
}

func (r *Recognizer) entry(word string) *canonicalEntry {
	key := normalizeWord(word)
	v, ok := r.cache.Load(key)
	if !ok {
		v, _ = r.cache.LoadOrStore(key, &canonicalEntry{})
	}
	e := v.(*canonicalEntry)
	e.once.Do(func() {
		e.geom, e.ans, e.err = r.build(key)
	})
	return e
}

func (r *Recognizer) build(word string) (*WordGeometry, *Answer, error) {
	geom, err := BuildWord(r.store, word)
	if err != nil {
		return nil, nil, fmt.Errorf("register %q: %w", word, err)
	}
	if len(geom.Strokes) == 0 {
		return nil, nil, fmt.Errorf("register %q: no strokes: %w", word, ErrEmptyWord)
	}
	ans := newCanonical(geom, r.cfg.FitCanonical)
	Logger().Debug("word registered",
		slog.String("word", word),
		slog.Int("characters", geom.Characters),
		slog.Int("strokes", len(geom.Strokes)))
	return geom, ans, nil
}

// Submission builds an answer from drawn strokes, smoothing them first if the
// recognizer is configured to. See [NewSubmission].
func (r *Recognizer) Submission(strokes [][]Point) (*Answer, error) {
	if r.cfg.SmoothingPieces > 0 {
		smoothed := make([][]Point, len(strokes))
		for i, pts := range strokes {
			smoothed[i] = Smooth(pts, r.cfg.SmoothingPieces)
		}
		strokes = smoothed
	}
	return NewSubmission(strokes)
}

// Difference returns how different sub is from word, from 0 to 1, using the
// configured weights. See [Compare].
func (r *Recognizer) Difference(word string, sub *Answer) (float64, error) {
	ref, err := r.Canonical(word)
	if err != nil {
		return 0, err
	}
	return r.difference(word, ref, sub), nil
}

func (r *Recognizer) difference(word string, ref, sub *Answer) float64 {
	angle, pos, ok := compareParts(ref, sub)
	if !ok {
		Logger().Debug("stroke count mismatch",
			slog.String("word", word),
			slog.Int("want", ref.StrokeCount()),
			slog.Int("got", sub.StrokeCount()))
		return 1
	}
	d := r.cfg.AngleWeight*angle + (1-r.cfg.AngleWeight)*pos
	Logger().Debug("compared",
		slog.String("word", word),
		slog.Float64("angle", angle),
		slog.Float64("position", pos),
		slog.Float64("difference", d))
	return d
}

// Rank compares sub against word and against every other vocabulary word and
// returns the results ordered from most to least similar. word comes first
// among equally similar words.
//
// A vocabulary word that can't be registered makes Rank fail; unsupported
// words have to be filtered out of the vocabulary beforehand.
func (r *Recognizer) Rank(sub *Answer, word string) ([]Match, error) {
	d, err := r.Difference(word, sub)
	if err != nil {
		return nil, err
	}
	return r.rank(sub, normalizeWord(word), d)
}

func (r *Recognizer) rank(sub *Answer, word string, d float64) ([]Match, error) {
	matches := []Match{{Word: word, Difference: d}}
	if r.vocab != nil {
		seen := map[string]struct{}{word: {}}
		for w := range r.vocab.Words() {
			w = normalizeWord(w)
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			ref, err := r.Canonical(w)
			if err != nil {
				return nil, fmt.Errorf("vocabulary: %w", err)
			}
			matches = append(matches, Match{Word: w, Difference: r.difference(w, ref, sub)})
		}
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(a.Difference, b.Difference)
	})
	return matches, nil
}

// IsCorrect reports whether sub is a correct writing of word. It is if its
// difference from word is at most the threshold and no other vocabulary word
// is strictly more similar to it.
//
// The threshold rejects drawings that merely happen to be closest to word;
// the ranking rejects drawings that are a better fit for another word.
func (r *Recognizer) IsCorrect(sub *Answer, word string) (bool, error) {
	d, err := r.Difference(word, sub)
	if err != nil {
		return false, err
	}
	word = normalizeWord(word)
	if d > r.cfg.Threshold {
		Logger().Debug("rejected above threshold",
			slog.String("word", word),
			slog.Float64("difference", d),
			slog.Float64("threshold", r.cfg.Threshold))
		return false, nil
	}
	matches, err := r.rank(sub, word, d)
	if err != nil {
		return false, err
	}
	ok := matches[0].Word == word
	Logger().Debug("verdict",
		slog.String("word", word),
		slog.String("closest", matches[0].Word),
		slog.Bool("correct", ok))
	return ok, nil
}

// CompareSubmission reports whether the drawn strokes are a correct writing
// of word. It is the entry point for drawing surfaces; see
// [Recognizer.IsCorrect].
func (r *Recognizer) CompareSubmission(strokes [][]Point, word string) (bool, error) {
	sub, err := r.Submission(strokes)
	if err != nil {
		return false, err
	}
	return r.IsCorrect(sub, word)
}
