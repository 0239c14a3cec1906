package render

import (
	"image/color"
	"testing"
)

func TestGetIntParam(t *testing.T) {
	params := map[string]any{
		"key1": 123,
		"key2": int64(456),
		"key3": float64(789),
		"key4": "not-an-int",
	}

	if val := GetIntParam(params, "key1", 0); val != 123 {
		t.Errorf("Expected 123, got %d", val)
	}
	if val := GetIntParam(params, "key2", 0); val != 456 {
		t.Errorf("Expected 456, got %d", val)
	}
	if val := GetIntParam(params, "key3", 0); val != 789 {
		t.Errorf("Expected 789, got %d", val)
	}
	if val := GetIntParam(params, "key4", 999); val != 999 {
		t.Errorf("Expected 999, got %d", val)
	}
	if val := GetIntParam(params, "key5", 999); val != 999 {
		t.Errorf("Expected 999, got %d", val)
	}
}

func TestGetColorParam(t *testing.T) {
	fallback := color.RGBA{1, 2, 3, 255}
	tests := []struct {
		name     string
		params   map[string]any
		expected color.RGBA
		wantErr  bool
	}{
		{name: "missing uses default", params: map[string]any{}, expected: fallback},
		{name: "hex with hash", params: map[string]any{"c": "#667eea"}, expected: color.RGBA{102, 126, 234, 255}},
		{name: "hex without hash", params: map[string]any{"c": "764BA2"}, expected: color.RGBA{118, 75, 162, 255}},
		{name: "short hex", params: map[string]any{"c": "#fff"}, wantErr: true},
		{name: "not hex", params: map[string]any{"c": "#zzzzzz"}, wantErr: true},
		{name: "wrong type", params: map[string]any{"c": 42}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetColorParam(tt.params, "c", fallback)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got colour %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

