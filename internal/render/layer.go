package render

// Layer defines the interface for all drawing steps of an icon
type Layer interface {
	Name() string
	Paint(surface Surface) error
}

// LayerFactory is a function type that creates a layer from configuration parameters
type LayerFactory func(params map[string]any) (Layer, error)

// LayerConfig represents a layer configuration with name and parameters.
// Optional layers are best-effort: their failures are logged and skipped.
type LayerConfig struct {
	Name     string
	Optional bool
	Params   map[string]any
}
