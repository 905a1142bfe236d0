package fractal

import (
	"image/color"
	"io"
	"os"
)

// Config holds the session parameters. Zero numeric fields, empty strings and
// nil slices fall back to their defaults; booleans are taken as given.
// DefaultConfig returns every default filled in.
type Config struct {
	// Title is the window title.
	Title string
	// Width and Height are the raster size in pixels.
	Width, Height int
	// MaxIter is the escape-time iteration cap.
	MaxIter int
	// ZoomStep multiplies or divides the zoom per click. Must be > 0.
	ZoomStep float64
	// PanStep is the pan distance at zoom 1, in complex-plane units.
	PanStep float64
	// Buttons are the on-screen controls. Nil uses DefaultButtons.
	Buttons []Button
	// Interior, when non-nil, colors points that never escape.
	Interior *color.RGBA
	// ShowStatus draws the zoom and offset along the bottom edge.
	ShowStatus bool
	// Debug logs per-frame timings.
	Debug bool
	// LogOutput receives log lines. Nil means os.Stderr.
	LogOutput io.Writer
}

// DefaultConfig returns the standard 800x600 session.
func DefaultConfig() Config {
	return Config{
		Title:      "Mandelbrot Set",
		Width:      Width,
		Height:     Height,
		MaxIter:    MaxIter,
		ZoomStep:   ZoomStep,
		PanStep:    PanStep,
		Buttons:    DefaultButtons(),
		ShowStatus: true,
		LogOutput:  os.Stderr,
	}
}

// withDefaults replaces zero or out-of-range fields with their defaults.
// A non-positive ZoomStep would break the positive-zoom invariant.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.MaxIter <= 0 {
		c.MaxIter = d.MaxIter
	}
	if c.ZoomStep <= 0 {
		c.ZoomStep = d.ZoomStep
	}
	if c.PanStep <= 0 {
		c.PanStep = d.PanStep
	}
	if c.Buttons == nil {
		c.Buttons = d.Buttons
	}
	if c.LogOutput == nil {
		c.LogOutput = d.LogOutput
	}
	return c
}
