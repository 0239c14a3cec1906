package render

import (
	"fmt"
	"sort"
)

// LayerRegistry manages the registration and creation of drawing layers
type LayerRegistry struct {
	factories map[string]LayerFactory
}

// NewLayerRegistry creates a new layer registry
func NewLayerRegistry() *LayerRegistry {
	return &LayerRegistry{
		factories: make(map[string]LayerFactory),
	}
}

// Register adds a layer factory to the registry
func (r *LayerRegistry) Register(name string, factory LayerFactory) error {
	if name == "" {
		return fmt.Errorf("layer name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("layer factory cannot be nil")
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("layer %s is already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// Create instantiates a layer by name with the given parameters
func (r *LayerRegistry) Create(name string, params map[string]any) (Layer, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown layer: %s", name)
	}

	layer, err := factory(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create layer %s: %w", name, err)
	}

	return layer, nil
}

// IsRegistered checks if a layer with the given name is registered
func (r *LayerRegistry) IsRegistered(name string) bool {
	_, exists := r.factories[name]
	return exists
}

// GetRegisteredNames returns the sorted names of all registered layers
func (r *LayerRegistry) GetRegisteredNames() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is a global registry instance with the calendar layers pre-registered
var DefaultRegistry = NewLayerRegistry()
