package render

// mockLayer is a simple mock implementation of the Layer interface for testing
type mockLayer struct {
	name      string
	paintFunc func(Surface) error
	painted   int
}

func (m *mockLayer) Name() string {
	return m.name
}

func (m *mockLayer) Paint(surface Surface) error {
	m.painted++
	if m.paintFunc != nil {
		return m.paintFunc(surface)
	}
	return nil
}

// newMockLayer creates a mock layer that paints nothing
func newMockLayer(name string) *mockLayer {
	return &mockLayer{name: name}
}

// newMockLayerWithError creates a mock layer that always fails
func newMockLayerWithError(name string, err error) *mockLayer {
	return &mockLayer{
		name: name,
		paintFunc: func(Surface) error {
			return err
		},
	}
}

// newPanickingMockLayer creates a mock layer that panics while painting
func newPanickingMockLayer(name string) *mockLayer {
	return &mockLayer{
		name: name,
		paintFunc: func(Surface) error {
			panic("boom")
		},
	}
}
