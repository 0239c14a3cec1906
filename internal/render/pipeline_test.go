package render

import (
	"errors"
	"testing"
)

func TestPipeline_EmptyLeavesSurfaceWhite(t *testing.T) {
	s := newTestPixelSurface(t, 4)
	if err := NewPipeline(nil).Paint(s); err != nil {
		t.Errorf("Expected no error for empty pipeline, got %v", err)
	}
	img, _ := s.Image()
	if got := img.RGBAAt(1, 1); got != white {
		t.Errorf("Expected white, got %v", got)
	}
}

func TestPipeline_RequiredFailureStops(t *testing.T) {
	failure := errors.New("geometry exploded")
	first := newMockLayerWithError("First", failure)
	second := newMockLayer("Second")

	err := NewPipeline([]Step{{Layer: first}, {Layer: second}}).Paint(newTestPixelSurface(t, 4))
	if !errors.Is(err, failure) {
		t.Fatalf("Expected wrapped layer error, got %v", err)
	}
	if second.painted != 0 {
		t.Error("Expected layers after a required failure to be skipped")
	}
}

func TestPipeline_OptionalFailureContinues(t *testing.T) {
	failing := newMockLayerWithError("Decoration", errors.New("nope"))
	after := newMockLayer("After")

	err := NewPipeline([]Step{
		{Layer: failing, Optional: true},
		{Layer: after},
	}).Paint(newTestPixelSurface(t, 4))
	if err != nil {
		t.Fatalf("Expected optional failure to be swallowed, got %v", err)
	}
	if failing.painted != 1 || after.painted != 1 {
		t.Errorf("Expected both layers to run once, got %d and %d", failing.painted, after.painted)
	}
}

func TestPipeline_OptionalPanicRecovered(t *testing.T) {
	after := newMockLayer("After")
	err := NewPipeline([]Step{
		{Layer: newPanickingMockLayer("Panics"), Optional: true},
		{Layer: after},
	}).Paint(newTestPixelSurface(t, 4))
	if err != nil {
		t.Fatalf("Expected recovered panic, got %v", err)
	}
	if after.painted != 1 {
		t.Error("Expected layer after the panic to run")
	}
}

func TestNewPipelineFromConfig(t *testing.T) {
	pipeline, err := NewPipelineFromConfig(DefaultRegistry, []LayerConfig{
		{Name: "GradientLayer", Params: map[string]any{"from": "#000000", "to": "#ffffff"}},
		{Name: "DotGridLayer", Optional: true, Params: map[string]any{}},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if pipeline.Len() != 2 {
		t.Errorf("Expected 2 steps, got %d", pipeline.Len())
	}
	if !pipeline.steps[1].Optional {
		t.Error("Expected optional flag to be carried into the step")
	}
}

func TestNewPipelineFromConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		configs []LayerConfig
	}{
		{name: "unknown layer", configs: []LayerConfig{{Name: "TextLayer"}}},
		{name: "invalid params", configs: []LayerConfig{{Name: "DotGridLayer", Params: map[string]any{"rows": 0}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPipelineFromConfig(DefaultRegistry, tt.configs); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
