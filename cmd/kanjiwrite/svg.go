package main

import (
	"fmt"
	"io"

	"github.com/kanjicards/recognition"
)

const svgHeader = `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`

func runSVG(e *env, args []string) error {
	fs, cf := e.flagSet("svg")
	word := fs.String("word", "", "Word to draw")
	out := fs.String("out", pipeName, "Destination")
	precision := fs.Int("precision", 2, "Maximum number of decimals per coordinate, 0 for exact")
	width := fs.Float64("stroke", 3, "Stroke width in glyph units")
	st, err := e.parse(fs, cf, args, word)
	if err != nil {
		return err
	}
	wg, err := recognition.BuildWord(st, *word)
	if err != nil {
		return err
	}

	opts := recognition.SVGOptions{MaxPrecision: *precision}
	return e.writeOutput(*out, false, func(w io.Writer) error {
		return writeSVGDocument(w, wg, *width, opts)
	})
}

func writeSVGDocument(w io.Writer, wg *recognition.WordGeometry, width float64, opts recognition.SVGOptions) error {
	size := wg.Bounds().Size()
	wd, ht := int(size.Width), int(size.Height)
	if _, err := fmt.Fprintf(w, svgHeader, wd, ht, wd, ht); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, `<path d="`); err != nil {
		return err
	}
	if err := wg.WriteSVG(w, opts); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, `" fill="none" stroke="black" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round"/>
</svg>
`, width)
	return err
}
