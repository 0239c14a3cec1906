package render

import (
	"fmt"
	"image/color"
	"log/slog"
)

// HeaderColor is the colour of the calendar header band and day markers (#667eea).
var HeaderColor = color.RGBA{102, 126, 234, 255}

// CalendarBodyLayer draws the white rounded calendar sheet
type CalendarBodyLayer struct {
	name  string
	color color.RGBA
}

// NewCalendarBodyLayer creates a body layer; "color" defaults to white
func NewCalendarBodyLayer(params map[string]any) (Layer, error) {
	c, err := GetColorParam(params, "color", white)
	if err != nil {
		return nil, err
	}
	return &CalendarBodyLayer{name: "CalendarBodyLayer", color: c}, nil
}

func (l *CalendarBodyLayer) Name() string {
	return l.name
}

func (l *CalendarBodyLayer) Paint(surface Surface) error {
	g := NewGeometry(surface.Size())
	slog.Debug("CalendarBodyLayer: drawing sheet", "box", g.Body(), "radius", g.Radius)
	surface.FillRoundedRect(g.Body(), g.Radius, l.color)
	return nil
}

// CalendarHeaderLayer draws the coloured band across the top of the calendar sheet
type CalendarHeaderLayer struct {
	name  string
	color color.RGBA
}

// NewCalendarHeaderLayer creates a header layer; "color" defaults to HeaderColor
func NewCalendarHeaderLayer(params map[string]any) (Layer, error) {
	c, err := GetColorParam(params, "color", HeaderColor)
	if err != nil {
		return nil, err
	}
	return &CalendarHeaderLayer{name: "CalendarHeaderLayer", color: c}, nil
}

func (l *CalendarHeaderLayer) Name() string {
	return l.name
}

func (l *CalendarHeaderLayer) Paint(surface Surface) error {
	g := NewGeometry(surface.Size())
	slog.Debug("CalendarHeaderLayer: drawing header", "box", g.Header(), "radius", g.Radius)
	surface.FillRoundedRect(g.Header(), g.Radius, l.color)
	return nil
}

func init() {
	if err := DefaultRegistry.Register("CalendarBodyLayer", NewCalendarBodyLayer); err != nil {
		panic(fmt.Sprintf("failed to register CalendarBodyLayer: %v", err))
	}
	if err := DefaultRegistry.Register("CalendarHeaderLayer", NewCalendarHeaderLayer); err != nil {
		panic(fmt.Sprintf("failed to register CalendarHeaderLayer: %v", err))
	}
}
