package recognition

import "fmt"

// Config holds the tunable parameters of a [Recognizer].
type Config struct {
	// Threshold is the largest difference a submission may have from the
	// intended word and still be accepted.
	Threshold float64
	// AngleWeight is the share of the stroke direction difference in the
	// overall difference; the connection difference gets the rest.
	AngleWeight float64
	// SmoothingPieces is the number of points per corner [Smooth] produces
	// for drawn strokes. 0 disables smoothing.
	SmoothingPieces int
	// FitCanonical fits canonical answers into their word frame before
	// comparing, the same way submissions are fitted.
	FitCanonical bool
}

// DefaultConfig returns the default configuration: a threshold of 0.3,
// directions and connections weighted equally, no smoothing, and canonical
// answers fitted to their frame.
func DefaultConfig() Config {
	return Config{
		Threshold:    0.3,
		AngleWeight:  0.5,
		FitCanonical: true,
	}
}

// Option customizes a [Recognizer]. Option constructors panic on values that
// make no sense; recognition itself never panics on user input.
type Option func(*Config)

// WithThreshold sets the acceptance threshold. It panics unless 0 ≤ t ≤ 1.
func WithThreshold(t float64) Option {
	if !(t >= 0 && t <= 1) {
		panic(fmt.Sprintf("recognition: WithThreshold(%g): out of [0, 1]", t))
	}
	return func(c *Config) {
		c.Threshold = t
	}
}

// WithAngleWeight sets the weight of the stroke direction difference. It
// panics unless 0 ≤ w ≤ 1.
func WithAngleWeight(w float64) Option {
	if !(w >= 0 && w <= 1) {
		panic(fmt.Sprintf("recognition: WithAngleWeight(%g): out of [0, 1]", w))
	}
	return func(c *Config) {
		c.AngleWeight = w
	}
}

// WithSmoothing smooths drawn strokes with [Smooth] before they are
// compared. It panics if pieces is negative.
func WithSmoothing(pieces int) Option {
	if pieces < 0 {
		panic(fmt.Sprintf("recognition: WithSmoothing(%d): negative", pieces))
	}
	return func(c *Config) {
		c.SmoothingPieces = pieces
	}
}

// WithCanonicalFit controls whether canonical answers are fitted into their
// word frame. Without fitting, glyph geometry is compared exactly where
// KanjiVG placed it in the character boxes.
func WithCanonicalFit(fit bool) Option {
	return func(c *Config) {
		c.FitCanonical = fit
	}
}
