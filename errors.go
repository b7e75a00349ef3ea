package recognition

import "errors"

// Errors returned when reading glyph assets. All of them mean the asset is
// corrupt; none of them can be recovered from by skipping data.
var (
	// ErrUnknownCurve is returned for a curve tag other than 'c' or 'q'.
	ErrUnknownCurve = errors.New("recognition: unknown curve type")
	// ErrTruncated is returned when the data ends in the middle of a record.
	// Errors wrapping it also wrap [io.ErrUnexpectedEOF].
	ErrTruncated = errors.New("recognition: truncated glyph data")
	// ErrMalformed is returned for structurally invalid records, such as
	// negative counts or strokes without curves.
	ErrMalformed = errors.New("recognition: malformed glyph data")
)

// Validation errors. Words that fail validation must be kept out of
// writing-based answers; they are never compared.
var (
	// ErrUnsupported is returned for words containing a character that has
	// no glyph.
	ErrUnsupported = errors.New("recognition: unsupported character")
	// ErrEmptyWord is returned for empty words and for words whose glyphs
	// have no strokes at all.
	ErrEmptyWord = errors.New("recognition: empty word")
	// ErrEmptyStroke is returned for strokes without segments or points.
	ErrEmptyStroke = errors.New("recognition: empty stroke")
)
