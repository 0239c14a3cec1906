package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// GetIntParam safely extracts an int parameter from the params map
func GetIntParam(params map[string]any, key string, defaultValue int) int {
	if val, ok := params[key]; ok {
		switch v := val.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return defaultValue
}

// GetColorParam extracts a "#rrggbb" colour parameter. A missing key yields the default,
// a malformed value yields an error.
func GetColorParam(params map[string]any, key string, defaultValue color.RGBA) (color.RGBA, error) {
	val, ok := params[key]
	if !ok {
		return defaultValue, nil
	}
	s, ok := val.(string)
	if !ok {
		return color.RGBA{}, fmt.Errorf("parameter %s must be a hex colour string, got %T", key, val)
	}
	c, err := ParseHexColor(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parameter %s: %w", key, err)
	}
	return c, nil
}

// ParseHexColor parses "#rrggbb" (the leading '#' is optional) into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

