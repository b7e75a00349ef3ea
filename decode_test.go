package recognition

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestReadGlyphsRoundTrip(t *testing.T) {
	glyphs := testGlyphs()
	st, err := ReadGlyphs(bytes.NewReader(testAsset(t, glyphs...)))
	if err != nil {
		t.Fatal(err)
	}
	if st.Len() != len(glyphs) {
		t.Fatalf("got %d glyphs, want %d", st.Len(), len(glyphs))
	}
	for _, want := range glyphs {
		got, ok := st.Lookup(want.Char)
		if !ok {
			t.Fatalf("missing glyph for %q", want.Char)
		}
		if len(got.Strokes) != len(want.Strokes) {
			t.Fatalf("%q: got %d strokes, want %d", want.Char, len(got.Strokes), len(want.Strokes))
		}
		for i := range want.Strokes {
			// coordinates are stored as float32
			diff(t, want.Strokes[i].Segments(), got.Strokes[i].Segments(), cmpopts.EquateApprox(0, 1e-4))
		}
	}
}

func TestReadGlyphsEmpty(t *testing.T) {
	st, err := ReadGlyphs(bytes.NewReader(nil))
	if err != nil {
		t.Fatal(err)
	}
	if st.Len() != 0 {
		t.Errorf("got %d glyphs, want 0", st.Len())
	}
}

func TestReadGlyphsTruncated(t *testing.T) {
	data := testAsset(t, glyph('十', line(10, 54, 99, 54), QuadBez{Pt(54, 10), Pt(54, 50), Pt(54, 99)}.Seg()))
	for n := 1; n < len(data); n++ {
		_, err := ReadGlyphs(bytes.NewReader(data[:n]))
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("prefix of %d bytes: got error %v, want %v", n, err, ErrTruncated)
		}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Fatalf("prefix of %d bytes: error %v doesn't wrap io.ErrUnexpectedEOF", n, err)
		}
	}
}

// record builds one glyph record by hand. Its length field is the payload
// size unless size is non-negative.
func record(cp rune, size int, payload ...any) []byte {
	var body bytes.Buffer
	for _, v := range payload {
		binary.Write(&body, binary.BigEndian, v)
	}
	if size < 0 {
		size = body.Len()
	}
	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, int32(cp))
	binary.Write(&out, binary.BigEndian, int32(size))
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestReadGlyphsUnknownCurve(t *testing.T) {
	data := record('一', -1,
		int32(1), // strokes
		int32(1), // curves
		byte('l'),
		float32(10), float32(54), float32(99), float32(54))
	_, err := ReadGlyphs(bytes.NewReader(data))
	if !errors.Is(err, ErrUnknownCurve) {
		t.Fatalf("got error %v, want %v", err, ErrUnknownCurve)
	}
}

func TestReadGlyphsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"negative strokes", record('一', -1, int32(-1))},
		{"negative curves", record('一', -1, int32(1), int32(-3))},
		{"stroke without curves", record('一', -1, int32(1), int32(0))},
		{"invalid code point", record(0xD800, -1, int32(0))},
		{"NaN coordinate", record('一', -1, int32(1), int32(1), byte('q'),
			float32(10), float32(54), float32(math.NaN()), float32(54), float32(99), float32(54))},
		{"infinite coordinate", record('一', -1, int32(1), int32(1), byte('q'),
			float32(10), float32(54), float32(50), float32(math.Inf(-1)), float32(99), float32(54))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadGlyphs(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("got error %v, want %v", err, ErrMalformed)
			}
		})
	}
}

func TestReadGlyphsIgnoresLength(t *testing.T) {
	data := record('一', 1000,
		int32(1), int32(1),
		byte('q'),
		float32(10), float32(54), float32(50), float32(54), float32(99), float32(54))
	data = append(data, record('二', 0, int32(0))...)

	st, err := ReadGlyphs(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	g, ok := st.Lookup('一')
	if !ok {
		t.Fatal("missing glyph for 一")
	}
	diff(t, []Segment{QuadBez{Pt(10, 54), Pt(50, 54), Pt(99, 54)}.Seg()}, g.Strokes[0].Segments())

	g, ok = st.Lookup('二')
	if !ok || len(g.Strokes) != 0 {
		t.Fatalf("got glyph %v, want a glyph without strokes", g)
	}
}

func TestReadGlyphsDuplicateLastWins(t *testing.T) {
	first := glyph('一', line(10, 54, 99, 54))
	last := glyph('一', line(0, 0, 64, 64), line(64, 0, 0, 64))
	st, err := ReadGlyphs(bytes.NewReader(testAsset(t, first, last)))
	if err != nil {
		t.Fatal(err)
	}
	if st.Len() != 1 {
		t.Fatalf("got %d glyphs, want 1", st.Len())
	}
	g, _ := st.Lookup('一')
	if len(g.Strokes) != 2 {
		t.Errorf("got %d strokes, want those of the last record", len(g.Strokes))
	}
}

func TestWriteGlyphsLength(t *testing.T) {
	data := testAsset(t, glyph('人',
		QuadBez{Pt(52, 12), Pt(48, 70), Pt(12, 96)}.Seg(),
		line(54, 44, 98, 94)))
	// strokes, then per stroke the curve count, tag and coordinates
	want := 4 + (4 + 1 + 6*4) + (4 + 1 + 8*4)
	if got := int(binary.BigEndian.Uint32(data[4:8])); got != want {
		t.Errorf("got length field %d, want %d", got, want)
	}
	if len(data) != 8+want {
		t.Errorf("got %d bytes, want %d", len(data), 8+want)
	}
	if got := math.Float32frombits(binary.BigEndian.Uint32(data[17:21])); got != 52 {
		t.Errorf("got first coordinate %g, want 52", got)
	}
}

func TestLoadGlyphs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "writings")
	if err := os.WriteFile(path, testAsset(t, testGlyphs()...), 0o644); err != nil {
		t.Fatal(err)
	}
	st, err := LoadGlyphs(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []rune{'が', 'ー', '一', '二', '人', '十', '士', '土'}
	slices.Sort(want)
	diff(t, want, slices.Collect(st.Chars()))

	if _, err := LoadGlyphs(filepath.Join(dir, "missing")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got error %v, want %v", err, fs.ErrNotExist)
	}
}
