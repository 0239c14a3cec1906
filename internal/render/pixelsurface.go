package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// pixelSurface rasterizes shapes without anti-aliasing so that every painted
// pixel carries exactly the requested colour.
type pixelSurface struct {
	img *image.RGBA
}

func newPixelSurface(size int) *pixelSurface {
	return &pixelSurface{img: createTargetCanvas(size, size, white)}
}

func (s *pixelSurface) Size() int {
	return s.img.Bounds().Dx()
}

func (s *pixelSurface) FillRows(colorAt func(y int) color.RGBA) {
	size := s.Size()
	parallelFor(size, func(y int) {
		c := colorAt(y)
		draw.Draw(s.img, image.Rect(0, y, size, y+1), &image.Uniform{c}, image.Point{}, draw.Src)
	})
}

// FillRoundedRect fills b with its corners replaced by quarter ellipses of diameter
// 2*radius. When the diameter does not fit along an axis, that axis collapses into
// half-ellipse caps; when it fits along neither, the whole box becomes an ellipse.
func (s *pixelSurface) FillRoundedRect(b Box, radius int, c color.RGBA) {
	if b.Empty() {
		return
	}
	d := radius * 2
	fullX := d >= b.X1-b.X0-1
	if fullX {
		d = b.X1 - b.X0
	}
	fullY := d >= b.Y1-b.Y0-1
	if fullY {
		d = b.Y1 - b.Y0
	}
	if fullX && fullY {
		s.FillEllipse(b, c)
		return
	}
	if d <= 0 {
		s.fillBox(b, c)
		return
	}
	r := d / 2

	switch {
	case fullX:
		s.FillEllipse(Box{b.X0, b.Y0, b.X1, b.Y0 + d}, c)
		s.FillEllipse(Box{b.X0, b.Y1 - d, b.X1, b.Y1}, c)
		s.fillBox(Box{b.X0, b.Y0 + r + 1, b.X1, b.Y1 - r - 1}, c)
	case fullY:
		s.FillEllipse(Box{b.X0, b.Y0, b.X0 + d, b.Y1}, c)
		s.FillEllipse(Box{b.X1 - d, b.Y0, b.X1, b.Y1}, c)
		s.fillBox(Box{b.X0 + r + 1, b.Y0, b.X1 - r - 1, b.Y1}, c)
	default:
		s.FillEllipse(Box{b.X0, b.Y0, b.X0 + d, b.Y0 + d}, c)
		s.FillEllipse(Box{b.X1 - d, b.Y0, b.X1, b.Y0 + d}, c)
		s.FillEllipse(Box{b.X1 - d, b.Y1 - d, b.X1, b.Y1}, c)
		s.FillEllipse(Box{b.X0, b.Y1 - d, b.X0 + d, b.Y1}, c)
		s.fillBox(Box{b.X0 + r + 1, b.Y0, b.X1 - r - 1, b.Y1}, c)
		s.fillBox(Box{b.X0, b.Y0 + r + 1, b.X0 + r, b.Y1 - r - 1}, c)
		s.fillBox(Box{b.X1 - r, b.Y0 + r + 1, b.X1, b.Y1 - r - 1}, c)
	}
}

// FillEllipse fills every pixel whose centre lies inside the ellipse inscribed in b.
func (s *pixelSurface) FillEllipse(b Box, c color.RGBA) {
	if b.Empty() {
		return
	}
	rx := float64(b.Width()) / 2
	ry := float64(b.Height()) / 2
	cx := float64(b.X0) + rx
	cy := float64(b.Y0) + ry

	clip := s.clip(b)
	for py := clip.Min.Y; py < clip.Max.Y; py++ {
		dy := (float64(py) + 0.5 - cy) / ry
		for px := clip.Min.X; px < clip.Max.X; px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				s.img.SetRGBA(px, py, c)
			}
		}
	}
}

func (s *pixelSurface) Image() (*image.RGBA, error) {
	return s.img, nil
}

func (s *pixelSurface) fillBox(b Box, c color.RGBA) {
	if b.Empty() {
		return
	}
	draw.Draw(s.img, s.clip(b), &image.Uniform{c}, image.Point{}, draw.Src)
}

// clip converts an inclusive box into a half-open rectangle inside the surface.
func (s *pixelSurface) clip(b Box) image.Rectangle {
	return image.Rect(b.X0, b.Y0, b.X1+1, b.Y1+1).Intersect(s.img.Bounds())
}

// createTargetCanvas returns a w x h canvas filled with bg.
func createTargetCanvas(w, h int, bg color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	return dst
}
