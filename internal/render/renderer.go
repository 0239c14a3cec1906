package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
)

// Renderer produces calendar icons of arbitrary size
type Renderer struct {
	pipeline *Pipeline
	backend  string
}

// NewRenderer creates a renderer painting the pipeline on the named backend
func NewRenderer(pipeline *Pipeline, backend string) (*Renderer, error) {
	if pipeline == nil {
		return nil, fmt.Errorf("pipeline cannot be nil")
	}
	switch backend {
	case BackendPixel, BackendSmooth:
	default:
		return nil, fmt.Errorf("unknown render backend: %s", backend)
	}
	return &Renderer{pipeline: pipeline, backend: backend}, nil
}

// NewCalendarPipeline returns the standard calendar recipe: gradient, sheet, header
// and the best-effort day marker grid.
func NewCalendarPipeline() *Pipeline {
	dots, err := NewDotGridLayer(map[string]any{})
	if err != nil {
		panic(fmt.Sprintf("default dot grid parameters rejected: %v", err))
	}
	return NewPipeline([]Step{
		{Layer: NewGradientLayerDirect(GradientStart, GradientEnd)},
		{Layer: &CalendarBodyLayer{name: "CalendarBodyLayer", color: white}},
		{Layer: &CalendarHeaderLayer{name: "CalendarHeaderLayer", color: HeaderColor}},
		{Layer: dots, Optional: true},
	})
}

// Render paints a size x size icon
func (r *Renderer) Render(size int) (*image.RGBA, error) {
	surface, err := NewSurface(r.backend, size)
	if err != nil {
		return nil, err
	}
	if err := r.pipeline.Paint(surface); err != nil {
		return nil, fmt.Errorf("failed to render %dx%d icon: %w", size, size, err)
	}
	return surface.Image()
}

// RenderPNG paints a size x size icon and encodes it as PNG
func (r *Renderer) RenderPNG(size int) ([]byte, error) {
	img, err := r.Render(size)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode icon as PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderToFile writes a size x size PNG to dir/filename, creating dir if needed.
// It returns the written path.
func (r *Renderer) RenderToFile(size int, dir, filename string) (string, error) {
	data, err := r.RenderPNG(size)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write icon %s: %w", path, err)
	}

	slog.Debug("icon written", "path", path, "size", size, "bytes", len(data), "backend", r.backend)
	return path, nil
}
