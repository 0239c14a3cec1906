package core

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jo-hoe/calendaricon/internal/render"
)

// IconService generates the configured icon set into the output directory
type IconService struct {
	config   *GeneratorConfig
	renderer *render.Renderer
	out      io.Writer
}

// NewIconService builds the layer pipeline from config. Progress lines go to out.
func NewIconService(config *GeneratorConfig, out io.Writer) (*IconService, error) {
	pipeline, err := render.NewPipelineFromConfig(render.DefaultRegistry, config.RenderLayers())
	if err != nil {
		return nil, fmt.Errorf("failed to build layer pipeline: %w", err)
	}
	renderer, err := render.NewRenderer(pipeline, config.Renderer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}
	slog.Debug("icon service initialized",
		"renderer", config.Renderer,
		"layer_count", pipeline.Len(),
		"output_dir", config.OutputDir)

	return &IconService{
		config:   config,
		renderer: renderer,
		out:      out,
	}, nil
}

// Generate renders a single icon and returns the written path
func (service *IconService) Generate(icon IconConfig) (string, error) {
	path, err := service.renderer.RenderToFile(icon.Size, service.config.OutputDir, icon.Filename)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", icon.Filename, err)
	}
	fmt.Fprintf(service.out, "Created: %s (%dx%d)\n", icon.Filename, icon.Size, icon.Size)
	return path, nil
}

// GenerateAll renders every configured icon in order. The first failure stops
// the run and the icons after it are not generated.
func (service *IconService) GenerateAll() ([]string, error) {
	fmt.Fprintln(service.out, "Generating calendar extension icons...")
	fmt.Fprintln(service.out)

	paths := make([]string, 0, len(service.config.Icons))
	for _, icon := range service.config.Icons {
		path, err := service.Generate(icon)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	fmt.Fprintln(service.out)
	fmt.Fprintln(service.out, "All icons generated successfully!")
	return paths, nil
}
