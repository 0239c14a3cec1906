package core

import (
	_ "embed"
	"fmt"

	"github.com/jo-hoe/calendaricon/internal/common"
	"github.com/jo-hoe/calendaricon/internal/render"
	"gopkg.in/yaml.v3"
)

//go:embed icons.yaml
var defaultConfig []byte

// IconConfig names one icon file of the generated set
type IconConfig struct {
	Size     int    `yaml:"size" validate:"gt=0"`
	Filename string `yaml:"filename" validate:"required"`
}

// LayerConfig represents a generic layer configuration
type LayerConfig struct {
	Name     string         `yaml:"name" validate:"required"`
	Optional bool           `yaml:"optional"`
	Params   map[string]any `yaml:",inline"`
}

type GeneratorConfig struct {
	OutputDir string        `yaml:"outputDir" validate:"required"`
	Renderer  string        `yaml:"renderer" validate:"required,oneof=pixel smooth"`
	Icons     []IconConfig  `yaml:"icons" validate:"required,min=1,dive"`
	Layers    []LayerConfig `yaml:"layers" validate:"required,min=1,dive"`
}

// LoadDefaultConfig loads the icon set compiled into the binary
func LoadDefaultConfig() (*GeneratorConfig, error) {
	return LoadConfigFromBytes(defaultConfig, "embedded icons.yaml")
}

// LoadConfigFromBytes parses and validates a YAML icon set description.
// source only labels error messages.
func LoadConfigFromBytes(data []byte, source string) (*GeneratorConfig, error) {
	var config GeneratorConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", source, err)
	}

	validator := &common.GenericValidator{}
	if err := validator.Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", source, err)
	}

	if err := validateIcons(config.Icons); err != nil {
		return nil, fmt.Errorf("invalid icon configuration: %w", err)
	}
	if err := validateLayers(config.Layers); err != nil {
		return nil, fmt.Errorf("invalid layer configuration: %w", err)
	}

	return &config, nil
}

// RenderLayers converts the YAML layer entries into render layer configs
func (c *GeneratorConfig) RenderLayers() []render.LayerConfig {
	layers := make([]render.LayerConfig, 0, len(c.Layers))
	for _, l := range c.Layers {
		layers = append(layers, render.LayerConfig{
			Name:     l.Name,
			Optional: l.Optional,
			Params:   l.Params,
		})
	}
	return layers
}

// validateIcons ensures no two icons share a filename
func validateIcons(icons []IconConfig) error {
	seen := make(map[string]bool)
	for i, icon := range icons {
		if seen[icon.Filename] {
			return fmt.Errorf("duplicate icon filename at index %d: %s", i, icon.Filename)
		}
		seen[icon.Filename] = true
	}
	return nil
}

// validateLayers ensures every layer name is known to the default registry
func validateLayers(layers []LayerConfig) error {
	for i, layer := range layers {
		if !render.DefaultRegistry.IsRegistered(layer.Name) {
			return fmt.Errorf("layer at index %d has unknown name: %s", i, layer.Name)
		}
	}
	return nil
}
