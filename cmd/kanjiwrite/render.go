package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/kanjicards/recognition"
	"golang.org/x/image/vector"
)

func runRender(e *env, args []string) error {
	fs, cf := e.flagSet("render")
	word := fs.String("word", "", "Word to draw")
	out := fs.String("out", pipeName, "Destination")
	size := fs.Int("size", 218, "Height of a character in pixels")
	width := fs.Float64("stroke", 3, "Stroke width in glyph units")
	st, err := e.parse(fs, cf, args, word)
	if err != nil {
		return err
	}
	if *size <= 0 {
		return fmt.Errorf("invalid -size %d: %w", *size, errUsage)
	}
	wg, err := recognition.BuildWord(st, *word)
	if err != nil {
		return err
	}

	img := renderWord(wg, *size, *width)

	return e.writeOutput(*out, true, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// renderWord draws the sampled strokes of wg in black on white. Every
// character box is size pixels square.
func renderWord(wg *recognition.WordGeometry, size int, width float64) *image.Gray {
	scale := float64(size) / recognition.BoxSize
	aff := recognition.Scale(scale, scale)

	img := image.NewGray(image.Rect(0, 0, wg.Characters*size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	for _, s := range wg.Strokes {
		pts := s.Points()
		for i := range pts {
			pts[i] = pts[i].Transform(aff)
		}
		for i := 1; i < len(pts); i++ {
			drawEdge(z, pts[i-1], pts[i], width*scale/2)
		}
	}
	z.Draw(img, img.Bounds(), image.Black, image.Point{})
	return img
}

// drawEdge adds the rectangle around the edge p0 p1 to z, extended by r at
// both ends so that consecutive edges overlap at their joint.
func drawEdge(z *vector.Rasterizer, p0, p1 recognition.Point, r float64) {
	d := p1.Sub(p0)
	l := d.Hypot()
	if l == 0 {
		return
	}
	d = d.Mul(r / l)
	n := recognition.Vec(-d.Y, d.X)
	a := p0.Translate(d.Negate())
	b := p1.Translate(d)

	corners := []recognition.Point{
		a.Translate(n),
		b.Translate(n),
		b.Translate(n.Negate()),
		a.Translate(n.Negate()),
	}
	z.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, c := range corners[1:] {
		z.LineTo(float32(c.X), float32(c.Y))
	}
	z.ClosePath()
}
