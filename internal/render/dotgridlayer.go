package render

import (
	"fmt"
	"image/color"
	"log/slog"
)

// DotGridParams represents typed parameters for the dot grid layer
type DotGridParams struct {
	Color   color.RGBA
	MinSize int // icons smaller than this get no dots
	Rows    int
	Cols    int
	DotSize int // 0 derives max(2, size/20)
	Spacing int // 0 derives size/8
}

// NewDotGridParamsFromMap creates DotGridParams from a generic map
func NewDotGridParamsFromMap(params map[string]any) (*DotGridParams, error) {
	c, err := GetColorParam(params, "color", HeaderColor)
	if err != nil {
		return nil, err
	}

	p := &DotGridParams{
		Color:   c,
		MinSize: GetIntParam(params, "minSize", 48),
		Rows:    GetIntParam(params, "rows", 3),
		Cols:    GetIntParam(params, "cols", 3),
		DotSize: GetIntParam(params, "dotSize", 0),
		Spacing: GetIntParam(params, "spacing", 0),
	}

	if p.Rows <= 0 || p.Cols <= 0 {
		return nil, fmt.Errorf("rows and cols must be positive, got %dx%d", p.Rows, p.Cols)
	}
	if p.MinSize < 0 {
		return nil, fmt.Errorf("minSize must not be negative, got %d", p.MinSize)
	}
	if p.DotSize < 0 || p.Spacing < 0 {
		return nil, fmt.Errorf("dotSize and spacing must not be negative, got %d and %d", p.DotSize, p.Spacing)
	}
	return p, nil
}

// DotGridLayer draws a grid of small circles standing for calendar days
type DotGridLayer struct {
	name   string
	params *DotGridParams
}

// NewDotGridLayer creates a new dot grid layer
func NewDotGridLayer(params map[string]any) (Layer, error) {
	p, err := NewDotGridParamsFromMap(params)
	if err != nil {
		return nil, err
	}
	return &DotGridLayer{name: "DotGridLayer", params: p}, nil
}

func (l *DotGridLayer) Name() string {
	return l.name
}

func (l *DotGridLayer) Paint(surface Surface) error {
	size := surface.Size()
	if size < l.params.MinSize {
		slog.Debug("DotGridLayer: icon too small for day markers", "size", size, "min_size", l.params.MinSize)
		return nil
	}

	g := NewGeometry(size)
	dot := l.params.DotSize
	if dot == 0 {
		dot = max(2, size/20)
	}
	spacing := l.params.Spacing
	if spacing == 0 {
		spacing = size / 8
	}
	if spacing <= 0 {
		return fmt.Errorf("invalid dot geometry for size %d: spacing %d", size, spacing)
	}

	startX := g.Padding + size/8
	startY := g.Padding + g.HeaderHeight + size/10
	limit := size - g.Padding

	drawn := 0
	for row := 0; row < l.params.Rows; row++ {
		for col := 0; col < l.params.Cols; col++ {
			x := startX + col*spacing
			y := startY + row*spacing
			if x+dot < limit && y+dot < limit {
				surface.FillEllipse(Box{x, y, x + dot, y + dot}, l.params.Color)
				drawn++
			}
		}
	}

	slog.Debug("DotGridLayer: drew day markers", "size", size, "dots", drawn, "dot_size", dot, "spacing", spacing)
	return nil
}

func init() {
	if err := DefaultRegistry.Register("DotGridLayer", NewDotGridLayer); err != nil {
		panic(fmt.Sprintf("failed to register DotGridLayer: %v", err))
	}
}
