package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kanjicards/recognition"
)

func runInspect(e *env, args []string) error {
	fs, cf := e.flagSet("inspect")
	st, err := e.parse(fs, cf, args, nil)
	if err != nil {
		return err
	}

	var chars []rune
	if fs.NArg() == 0 {
		chars = slices.Collect(st.Chars())
	} else {
		chars = []rune(strings.Join(fs.Args(), ""))
	}

	var missing []rune
	for _, ch := range chars {
		g, ok := st.Lookup(ch)
		if !ok {
			fmt.Fprintf(e.stdout, "U+%04X %c\tmissing\n", ch, ch)
			missing = append(missing, ch)
			continue
		}
		var segs int
		var length float64
		for _, s := range g.Strokes {
			segs += len(s.Segments())
			length += s.Length()
		}
		fmt.Fprintf(e.stdout, "U+%04X %c\tstrokes=%d\tsegments=%d\tlength=%.2f\n",
			ch, ch, len(g.Strokes), segs, length)
	}
	if fs.NArg() == 0 {
		fmt.Fprintf(e.stdout, "%d glyphs\n", st.Len())
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w %q", recognition.ErrUnsupported, string(missing))
	}
	return nil
}
