package render

// Geometry holds the derived layout of the calendar for one icon size.
// All values use integer division.
type Geometry struct {
	Size         int
	Padding      int
	Radius       int
	HeaderHeight int
}

// NewGeometry computes the calendar layout for a square icon of the given size.
func NewGeometry(size int) Geometry {
	padding := size / 6
	return Geometry{
		Size:         size,
		Padding:      padding,
		Radius:       size / 10,
		HeaderHeight: (size - 2*padding) / 4,
	}
}

// Body is the calendar sheet spanning the padded area.
func (g Geometry) Body() Box {
	return Box{g.Padding, g.Padding, g.Size - g.Padding, g.Size - g.Padding}
}

// Header is the coloured band at the top of the calendar sheet.
func (g Geometry) Header() Box {
	return Box{g.Padding, g.Padding, g.Size - g.Padding, g.Padding + g.HeaderHeight}
}
