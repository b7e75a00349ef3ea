package recognition

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"unicode/utf8"
)

// Curve tags of the glyph asset format.
const (
	tagCubic = 'c'
	tagQuad  = 'q'
)

// ReadGlyphs parses a glyph asset.
//
// The asset is a sequence of records, all integers and floats big-endian and
// 32 bits wide:
//
//	record  = codepoint:int32 length:int32 strokes:int32 stroke*
//	stroke  = curves:int32 curve*
//	curve   = 'c' x1 y1 cx1 cy1 cx2 cy2 x2 y2 (float32)
//	        | 'q' x1 y1 cx cy x2 y2 (float32)
//
// length is the size of the record after the length field. Coordinates are in
// the [BoxSize]×[BoxSize] character box.
//
// The data may only end between records. Any error leaves no usable store: an
// unknown curve tag returns [ErrUnknownCurve], data ending inside a record
// returns [ErrTruncated], and structurally invalid records return
// [ErrMalformed]. If a character occurs more than once, its last record wins.
func ReadGlyphs(r io.Reader) (*GlyphStore, error) {
	gr := &glyphReader{r: bufio.NewReader(r)}
	st := &GlyphStore{glyphs: make(map[rune]*Glyph)}
	log := Logger()
	for {
		recordOff := gr.off
		g, err := gr.readRecord()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("glyph record at offset %d: %w", recordOff, err)
		}
		if _, ok := st.glyphs[g.Char]; ok {
			log.Warn("duplicate glyph record, replacing earlier one",
				slog.String("char", string(g.Char)),
				slog.Int64("offset", recordOff))
		}
		st.glyphs[g.Char] = g
	}
	log.Info("glyphs loaded", slog.Int("glyphs", len(st.glyphs)), slog.Int64("bytes", gr.off))
	return st, nil
}

// LoadGlyphs reads the glyph asset at path. See [ReadGlyphs].
func LoadGlyphs(path string) (*GlyphStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load glyphs: %w", err)
	}
	defer f.Close()
	st, err := ReadGlyphs(f)
	if err != nil {
		return nil, fmt.Errorf("load glyphs from %s: %w", path, err)
	}
	return st, nil
}

type glyphReader struct {
	r   *bufio.Reader
	off int64
	buf [4]byte
}

// readRecord returns io.EOF only if the data ends cleanly before a record.
func (gr *glyphReader) readRecord() (*Glyph, error) {
	cp, err := gr.int32()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, truncated(err)
	}
	if !utf8.ValidRune(rune(cp)) {
		return nil, fmt.Errorf("invalid code point %#x: %w", cp, ErrMalformed)
	}

	size, err := gr.int32()
	if err != nil {
		return nil, truncated(err)
	}
	payloadOff := gr.off

	g, err := gr.readGlyph(rune(cp))
	if err != nil {
		return nil, fmt.Errorf("character %q: %w", rune(cp), err)
	}
	if n := gr.off - payloadOff; n != int64(size) {
		// The length field exists for skipping records and isn't needed for
		// parsing; a mismatch doesn't make the record unreadable.
		Logger().Debug("glyph record length mismatch",
			slog.String("char", string(rune(cp))),
			slog.Int("declared", int(size)),
			slog.Int64("actual", n))
	}
	return g, nil
}

func (gr *glyphReader) readGlyph(ch rune) (*Glyph, error) {
	n, err := gr.count("stroke")
	if err != nil {
		return nil, err
	}
	g := &Glyph{Char: ch, Strokes: make([]*Stroke, 0, min(n, 64))}
	for i := range n {
		s, err := gr.readStroke()
		if err != nil {
			return nil, fmt.Errorf("stroke %d: %w", i, err)
		}
		g.Strokes = append(g.Strokes, s)
	}
	return g, nil
}

func (gr *glyphReader) readStroke() (*Stroke, error) {
	n, err := gr.count("curve")
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("stroke without curves: %w", ErrMalformed)
	}
	segs := make([]Segment, 0, min(n, 64))
	for range n {
		seg, err := gr.readCurve()
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return NewStroke(segs...)
}

func (gr *glyphReader) readCurve() (Segment, error) {
	off := gr.off
	tag, err := gr.r.ReadByte()
	if err != nil {
		return Segment{}, truncated(err)
	}
	gr.off++

	var pts [4]Point
	var kind SegmentKind
	var npts int
	switch tag {
	case tagCubic:
		kind, npts = CubicKind, 4
	case tagQuad:
		kind, npts = QuadKind, 3
	default:
		return Segment{}, fmt.Errorf("%w %q (%#02x) at offset %d", ErrUnknownCurve, tag, tag, off)
	}
	for i := range npts {
		x, err := gr.float32()
		if err != nil {
			return Segment{}, truncated(err)
		}
		y, err := gr.float32()
		if err != nil {
			return Segment{}, truncated(err)
		}
		pts[i] = Pt(float64(x), float64(y))
	}
	seg := Segment{Kind: kind, P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}
	if !seg.IsFinite() {
		return Segment{}, fmt.Errorf("%w: non-finite coordinate in curve at offset %d", ErrMalformed, off)
	}
	return seg, nil
}

func (gr *glyphReader) count(what string) (int, error) {
	n, err := gr.int32()
	if err != nil {
		return 0, truncated(err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative %s count %d: %w", what, n, ErrMalformed)
	}
	return int(n), nil
}

func (gr *glyphReader) int32() (int32, error) {
	if _, err := io.ReadFull(gr.r, gr.buf[:]); err != nil {
		return 0, err
	}
	gr.off += 4
	return int32(binary.BigEndian.Uint32(gr.buf[:])), nil
}

func (gr *glyphReader) float32() (float32, error) {
	if _, err := io.ReadFull(gr.r, gr.buf[:]); err != nil {
		return 0, err
	}
	gr.off += 4
	return math.Float32frombits(binary.BigEndian.Uint32(gr.buf[:])), nil
}

// truncated turns the end of data inside a record into ErrTruncated. Other
// read errors are returned as they are.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrTruncated, io.ErrUnexpectedEOF)
	}
	return err
}
