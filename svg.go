package recognition

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for SVG output.
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

func segmentsSVG(strokes [][]Segment, opts SVGOptions) string {
	sb := &strings.Builder{}
	writeSegmentsSVG(sb, strokes, opts)
	return sb.String()
}

// writeSegmentsSVG writes each stroke as a subpath starting with a move to
// the stroke's first point. A segment that doesn't start where the previous
// one ended gets a move of its own.
func writeSegmentsSVG(w io.Writer, strokes [][]Segment, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		s = strings.TrimRight(s, "0")
		return strings.TrimSuffix(s, ".")
	}
	pt := func(p Point) string {
		return format(p.X) + "," + format(p.Y)
	}

	first := true
	for _, segs := range strokes {
		if len(segs) == 0 {
			continue
		}
		if !first {
			writef(" ")
		}
		first = false
		writef("M%s", pt(segs[0].Start()))
		for i, seg := range segs {
			if i > 0 && seg.Start() != segs[i-1].End() {
				writef(" M%s", pt(seg.Start()))
			}
			switch seg.Kind {
			case QuadKind:
				writef(" Q%s %s", pt(seg.P1), pt(seg.P2))
			case CubicKind:
				writef(" C%s %s %s", pt(seg.P1), pt(seg.P2), pt(seg.P3))
			default:
				panic("unreachable")
			}
		}
	}
	return err
}
