package render

import (
	"fmt"
	"image"
	"image/color"
)

const (
	// BackendPixel draws aliased, pixel-exact shapes.
	BackendPixel = "pixel"
	// BackendSmooth draws anti-aliased shapes via an intermediate SVG document.
	BackendSmooth = "smooth"
)

var white = color.RGBA{255, 255, 255, 255}

// Box is a bounding box whose corners are both inclusive pixel coordinates,
// so Box{0, 0, 2, 2} covers a 3x3 pixel area.
type Box struct {
	X0, Y0, X1, Y1 int
}

// Width returns the number of pixel columns covered by the box.
func (b Box) Width() int { return b.X1 - b.X0 + 1 }

// Height returns the number of pixel rows covered by the box.
func (b Box) Height() int { return b.Y1 - b.Y0 + 1 }

// Empty reports whether the box covers no pixels.
func (b Box) Empty() bool { return b.X1 < b.X0 || b.Y1 < b.Y0 }

// Surface is a square drawing target. It starts out white.
type Surface interface {
	Size() int
	// FillRows paints every row y of the surface with colorAt(y).
	// colorAt may be called concurrently for distinct rows.
	FillRows(colorAt func(y int) color.RGBA)
	FillRoundedRect(b Box, radius int, c color.RGBA)
	FillEllipse(b Box, c color.RGBA)
	// Image finalizes the surface and returns the opaque pixel buffer.
	Image() (*image.RGBA, error)
}

// NewSurface creates a size x size white surface for the given backend.
func NewSurface(backend string, size int) (Surface, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d: must be positive", size)
	}
	switch backend {
	case BackendPixel, "":
		return newPixelSurface(size), nil
	case BackendSmooth:
		return newSVGSurface(size), nil
	default:
		return nil, fmt.Errorf("unknown render backend: %s", backend)
	}
}
