package render

import (
	"fmt"
	"log/slog"
	"time"
)

// Step is a layer together with its failure policy
type Step struct {
	Layer    Layer
	Optional bool
}

// Pipeline paints a sequence of layers onto a surface
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a new pipeline from prepared steps
func NewPipeline(steps []Step) *Pipeline {
	return &Pipeline{
		steps: steps,
	}
}

// NewPipelineFromConfig creates every configured layer through the given registry
func NewPipelineFromConfig(registry *LayerRegistry, configs []LayerConfig) (*Pipeline, error) {
	steps := make([]Step, 0, len(configs))
	for i, config := range configs {
		slog.Debug("creating layer",
			"index", i,
			"layer_name", config.Name,
			"params", config.Params)

		layer, err := registry.Create(config.Name, config.Params)
		if err != nil {
			return nil, fmt.Errorf("failed to create layer at index %d (%s): %w", i, config.Name, err)
		}
		steps = append(steps, Step{Layer: layer, Optional: config.Optional})
	}
	return NewPipeline(steps), nil
}

// Len returns the number of steps in the pipeline
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Paint applies all layers in order. A failing required layer aborts painting;
// a failing optional layer is logged and skipped.
func (p *Pipeline) Paint(surface Surface) error {
	start := time.Now()

	for idx, step := range p.steps {
		layerStart := time.Now()

		var err error
		if step.Optional {
			err = paintRecovered(step.Layer, surface)
		} else {
			err = step.Layer.Paint(surface)
		}

		if err != nil {
			if step.Optional {
				slog.Warn("optional layer failed, continuing without it",
					"index", idx,
					"layer_name", step.Layer.Name(),
					"size", surface.Size(),
					"error", err)
				continue
			}
			slog.Error("layer painting failed",
				"index", idx,
				"layer_name", step.Layer.Name(),
				"size", surface.Size(),
				"error", err)
			return fmt.Errorf("layer %s (index %d) failed: %w", step.Layer.Name(), idx, err)
		}

		slog.Debug("layer completed",
			"index", idx,
			"layer_name", step.Layer.Name(),
			"duration_ms", time.Since(layerStart).Milliseconds())
	}

	slog.Debug("layer pipeline completed",
		"total_duration_ms", time.Since(start).Milliseconds(),
		"layer_count", len(p.steps),
		"size", surface.Size())

	return nil
}

// paintRecovered turns a panic inside the layer into an error.
func paintRecovered(layer Layer, surface Surface) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return layer.Paint(surface)
}
