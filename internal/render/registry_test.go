package render

import (
	"errors"
	"strings"
	"testing"
)

func TestNewLayerRegistry(t *testing.T) {
	registry := NewLayerRegistry()
	if registry == nil {
		t.Fatal("Expected non-nil registry")
	}
	if registry.factories == nil {
		t.Fatal("Expected non-nil factories map")
	}
}

func TestLayerRegistry_Register(t *testing.T) {
	registry := NewLayerRegistry()
	factory := func(params map[string]any) (Layer, error) {
		return newMockLayer("TestLayer"), nil
	}

	if err := registry.Register("TestLayer", factory); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if err := registry.Register("TestLayer", factory); err == nil {
		t.Error("Expected error for duplicate registration")
	}
	if err := registry.Register("", factory); err == nil {
		t.Error("Expected error for empty name")
	}
	if err := registry.Register("NilFactory", nil); err == nil {
		t.Error("Expected error for nil factory")
	}
}

func TestLayerRegistry_Create(t *testing.T) {
	registry := NewLayerRegistry()
	factoryErr := errors.New("bad params")
	_ = registry.Register("Good", func(params map[string]any) (Layer, error) {
		return newMockLayer("Good"), nil
	})
	_ = registry.Register("Bad", func(params map[string]any) (Layer, error) {
		return nil, factoryErr
	})

	layer, err := registry.Create("Good", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if layer.Name() != "Good" {
		t.Errorf("Expected name 'Good', got '%s'", layer.Name())
	}

	if _, err := registry.Create("Missing", nil); err == nil {
		t.Error("Expected error for unknown layer")
	}

	_, err = registry.Create("Bad", nil)
	if !errors.Is(err, factoryErr) {
		t.Errorf("Expected wrapped factory error, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "Bad") {
		t.Errorf("Expected error to name the layer, got %v", err)
	}
}

func TestDefaultRegistry_CalendarLayers(t *testing.T) {
	expected := []string{"CalendarBodyLayer", "CalendarHeaderLayer", "DotGridLayer", "GradientLayer"}
	names := DefaultRegistry.GetRegisteredNames()
	if len(names) != len(expected) {
		t.Fatalf("Expected %d registered layers, got %v", len(expected), names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Expected layer %d to be %s, got %s", i, name, names[i])
		}
		layer, err := DefaultRegistry.Create(name, map[string]any{})
		if err != nil {
			t.Errorf("Failed to create %s via registry: %v", name, err)
			continue
		}
		if layer.Name() != name {
			t.Errorf("Expected name '%s', got '%s'", name, layer.Name())
		}
	}
}
