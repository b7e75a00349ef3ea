package recognition

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// WriteGlyphs writes glyphs in the asset format read by [ReadGlyphs], in the
// order given. Coordinates are stored as float32.
func WriteGlyphs(w io.Writer, glyphs ...*Glyph) error {
	var payload, header []byte
	for _, g := range glyphs {
		payload = payload[:0]
		payload = binary.BigEndian.AppendUint32(payload, uint32(len(g.Strokes)))
		for _, s := range g.Strokes {
			payload = binary.BigEndian.AppendUint32(payload, uint32(len(s.segs)))
			for _, seg := range s.segs {
				var pts []Point
				switch seg.Kind {
				case CubicKind:
					payload = append(payload, tagCubic)
					pts = []Point{seg.P0, seg.P1, seg.P2, seg.P3}
				case QuadKind:
					payload = append(payload, tagQuad)
					pts = []Point{seg.P0, seg.P1, seg.P2}
				default:
					return fmt.Errorf("character %q: invalid segment kind %d: %w", g.Char, seg.Kind, ErrMalformed)
				}
				for _, pt := range pts {
					payload = binary.BigEndian.AppendUint32(payload, math.Float32bits(float32(pt.X)))
					payload = binary.BigEndian.AppendUint32(payload, math.Float32bits(float32(pt.Y)))
				}
			}
		}

		header = header[:0]
		header = binary.BigEndian.AppendUint32(header, uint32(g.Char))
		header = binary.BigEndian.AppendUint32(header, uint32(len(payload)))
		if _, err := w.Write(header); err != nil {
			return err
		}
		if _, err := w.Write(payload); err != nil {
			return err
		}
	}
	return nil
}
