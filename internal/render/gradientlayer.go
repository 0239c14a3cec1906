package render

import (
	"fmt"
	"image/color"
	"log/slog"
)

var (
	// GradientStart is the top colour of the background gradient (#667eea).
	GradientStart = color.RGBA{102, 126, 234, 255}
	// GradientEnd is the colour the background gradient approaches at the bottom (#764ba2).
	GradientEnd = color.RGBA{118, 75, 162, 255}
)

// GradientLayer paints the whole surface with a vertical linear gradient
type GradientLayer struct {
	name string
	from color.RGBA
	to   color.RGBA
}

// NewGradientLayer creates a gradient layer from the "from" and "to" colour params
func NewGradientLayer(params map[string]any) (Layer, error) {
	from, err := GetColorParam(params, "from", GradientStart)
	if err != nil {
		return nil, err
	}
	to, err := GetColorParam(params, "to", GradientEnd)
	if err != nil {
		return nil, err
	}
	return NewGradientLayerDirect(from, to), nil
}

// NewGradientLayerDirect creates a gradient layer without going through params
func NewGradientLayerDirect(from, to color.RGBA) *GradientLayer {
	return &GradientLayer{
		name: "GradientLayer",
		from: from,
		to:   to,
	}
}

func (l *GradientLayer) Name() string {
	return l.name
}

func (l *GradientLayer) Paint(surface Surface) error {
	size := surface.Size()
	slog.Debug("GradientLayer: painting rows", "size", size, "from", hexString(l.from), "to", hexString(l.to))
	surface.FillRows(func(y int) color.RGBA {
		return GradientColor(l.from, l.to, y, size)
	})
	return nil
}

// GradientColor returns the colour of row y out of size rows. The ratio is y/size,
// so the last row stops one step short of to, and channels are truncated.
func GradientColor(from, to color.RGBA, y, size int) color.RGBA {
	ratio := float64(y) / float64(size)
	return color.RGBA{
		R: lerpChannel(from.R, to.R, ratio),
		G: lerpChannel(from.G, to.G, ratio),
		B: lerpChannel(from.B, to.B, ratio),
		A: 255,
	}
}

func lerpChannel(from, to uint8, ratio float64) uint8 {
	return uint8(int(float64(from) + float64(int(to)-int(from))*ratio))
}

func hexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func init() {
	if err := DefaultRegistry.Register("GradientLayer", NewGradientLayer); err != nil {
		panic(fmt.Sprintf("failed to register GradientLayer: %v", err))
	}
}
