// Package recognition decides whether a handwritten word matches the word it
// is supposed to be.
//
// Handwriting arrives as strokes, each an ordered list of pointer positions
// of arbitrary density and scale. Expected writings come from a
// pre-compiled database of KanjiVG glyphs, where every stroke is a sequence
// of quadratic and cubic Béziers inside a [BoxSize]×[BoxSize] character box.
// Both are reduced to the same representation, an [Answer], and compared.
//
// # Glyphs and words
//
// [ReadGlyphs] parses the glyph database into a [GlyphStore]. [BuildWord]
// places the glyphs of a word's characters side by side, character i in the
// box starting at x = i·BoxSize, yielding a [WordGeometry].
//
// Each [Stroke] samples its curves once, at [SamplesPerSegment] points per
// curve, and measures everything on that polyline.
//
// # Answers
//
// An [Answer] holds a [ShapeDescriptor] per stroke, [AngleSamples] directions
// taken at equal fractions of the stroke's length, and a
// [ConnectionDescriptor] per pair of adjacent strokes, the offsets between
// their start points and between their end points. Canonical answers are
// built from word geometry; submitted answers from drawings, with
// [NewSubmission].
//
// # Comparison
//
// [Compare] first requires equal stroke counts; any mismatch is a difference
// of 1. The submission is then scaled uniformly and centered into the
// reference word's frame, n·BoxSize wide and BoxSize high. The difference is
// the mean of two parts, both in [0, 1]: how much stroke directions differ,
// and how much stroke connections differ. Stroke order matters, rotation
// does not get compensated.
//
// A [Recognizer] applies the classification policy. A drawing is a correct
// writing of a word if its difference from the word is at most a threshold
// (0.3 by default) and no other word of the active [Vocabulary] is strictly
// closer to it. The threshold rejects scribbles that happen to be closest to
// the word; the ranking rejects writings of similar characters, such as 士
// drawn when 土 was asked for.
package recognition
