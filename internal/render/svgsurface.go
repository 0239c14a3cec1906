package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	svg "github.com/ajstarks/svgo"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// svgSurface records shapes into an SVG document and rasterizes it with
// anti-aliasing when the image is requested.
type svgSurface struct {
	size   int
	buf    bytes.Buffer
	canvas *svg.SVG
	img    *image.RGBA
}

func newSVGSurface(size int) *svgSurface {
	s := &svgSurface{size: size}
	s.canvas = svg.New(&s.buf)
	s.canvas.Startview(size, size, 0, 0, size, size)
	return s
}

func (s *svgSurface) Size() int {
	return s.size
}

func (s *svgSurface) FillRows(colorAt func(y int) color.RGBA) {
	for y := 0; y < s.size; y++ {
		s.canvas.Rect(0, y, s.size, 1, fillStyle(colorAt(y)))
	}
}

func (s *svgSurface) FillRoundedRect(b Box, radius int, c color.RGBA) {
	if b.Empty() {
		return
	}
	s.canvas.Roundrect(b.X0, b.Y0, b.Width(), b.Height(), radius, radius, fillStyle(c))
}

func (s *svgSurface) FillEllipse(b Box, c color.RGBA) {
	if b.Empty() {
		return
	}
	rx, ry := b.Width()/2, b.Height()/2
	s.canvas.Ellipse(b.X0+rx, b.Y0+ry, rx, ry, fillStyle(c))
}

// Image closes the SVG document and renders it onto a white canvas.
// Subsequent calls return the same buffer.
func (s *svgSurface) Image() (*image.RGBA, error) {
	if s.img != nil {
		return s.img, nil
	}
	s.canvas.End()

	icon, err := oksvg.ReadIconStream(bytes.NewReader(s.buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated SVG: %w", err)
	}
	icon.SetTarget(0, 0, float64(s.size), float64(s.size))

	dst := createTargetCanvas(s.size, s.size, white)
	scanner := rasterx.NewScannerGV(s.size, s.size, dst, dst.Bounds())
	dasher := rasterx.NewDasher(s.size, s.size, scanner)
	icon.Draw(dasher, 1.0)

	s.img = dst
	return s.img, nil
}

// SVG returns the recorded document. It is complete only after Image has been called.
func (s *svgSurface) SVG() []byte {
	return s.buf.Bytes()
}

func fillStyle(c color.RGBA) string {
	return fmt.Sprintf("fill:#%02x%02x%02x;stroke:none", c.R, c.G, c.B)
}
