package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kanjicards/recognition"
)

func runCheck(e *env, args []string) error {
	fs, cf := e.flagSet("check")
	word := fs.String("word", "", "Intended word")
	in := fs.String("in", pipeName, "Drawing as JSON: one array of [x, y] points per stroke")
	words := fs.String("words", "", "Word list to compete against, one word per line")
	threshold := fs.Float64("threshold", recognition.DefaultConfig().Threshold, "Largest accepted difference")
	weight := fs.Float64("weight", recognition.DefaultConfig().AngleWeight, "Weight of stroke directions against stroke connections")
	smooth := fs.Int("smooth", 0, "Smooth drawn strokes with this many points per corner")
	fit := fs.Bool("fit", true, "Fit glyphs into the word frame before comparing")
	st, err := e.parse(fs, cf, args, word)
	if err != nil {
		return err
	}
	if *threshold < 0 || *threshold > 1 || *weight < 0 || *weight > 1 || *smooth < 0 {
		return fmt.Errorf("-threshold and -weight must be in [0, 1] and -smooth not negative: %w", errUsage)
	}

	var vocab recognition.WordList
	if *words != "" {
		vocab, err = loadWordList(st, *words)
		if err != nil {
			return err
		}
	}

	r, closeIn, err := e.input(*in)
	if err != nil {
		return err
	}
	defer closeIn()
	strokes, err := readDrawing(r)
	if err != nil {
		return err
	}

	rec := recognition.New(st, vocab,
		recognition.WithThreshold(*threshold),
		recognition.WithAngleWeight(*weight),
		recognition.WithSmoothing(*smooth),
		recognition.WithCanonicalFit(*fit))
	sub, err := rec.Submission(strokes)
	if err != nil {
		return err
	}
	matches, err := rec.Rank(sub, *word)
	if err != nil {
		return err
	}
	ok, err := rec.IsCorrect(sub, *word)
	if err != nil {
		return err
	}

	for i, m := range matches {
		fmt.Fprintf(e.stdout, "%d\t%s\t%.4f\n", i+1, m.Word, m.Difference)
	}
	if ok {
		fmt.Fprintln(e.stdout, "correct")
	} else {
		fmt.Fprintln(e.stdout, "incorrect")
	}
	return nil
}

// loadWordList reads the word list at path, leaving out words that can't be
// written with the glyphs in st.
func loadWordList(st *recognition.GlyphStore, path string) (recognition.WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	all, err := recognition.ReadWordList(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var wl recognition.WordList
	for _, w := range all {
		if !st.Supported(w) {
			recognition.Logger().Warn("skipping unsupported word", slog.String("word", w))
			continue
		}
		wl = append(wl, w)
	}
	return wl, nil
}

// readDrawing decodes strokes from JSON of the form [[[x, y], ...], ...].
func readDrawing(r io.Reader) ([][]recognition.Point, error) {
	var raw [][][2]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding drawing: %w", err)
	}
	strokes := make([][]recognition.Point, len(raw))
	for i, s := range raw {
		strokes[i] = make([]recognition.Point, len(s))
		for j, p := range s {
			strokes[i][j] = recognition.Pt(p[0], p[1])
		}
	}
	return strokes, nil
}
