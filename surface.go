package fractal

import (
	"fmt"
	"image/color"
)

// Backend is a windowing system that can open a window and drive the render
// loop. Init must succeed before CreateWindow; Shutdown releases whatever
// Init acquired and is safe to call after a failed Init.
type Backend interface {
	Init() error
	CreateWindow(title string, width, height int) (Window, error)
	// Loop calls step once per iteration with the elapsed seconds since the
	// previous call, until step returns false. It returns nil on a normal
	// quit.
	Loop(step func(dt float64) bool) error
	Shutdown()
}

// Window is an open window and its input queue.
type Window interface {
	CreateRenderer() (Renderer, error)
	// PollEvent returns the next pending event without blocking. The second
	// result is false when the queue is empty.
	PollEvent() (Event, bool)
	Destroy()
}

// Renderer is a 2D drawing surface bound to a window. Drawing goes to a back
// buffer; Present shows the finished frame in one step.
type Renderer interface {
	SetDrawColor(c color.RGBA)
	// Clear fills the whole back buffer with the draw color.
	Clear()
	DrawPoint(x, y int)
	FillRect(r Rect)
	Present()
	Destroy()
}

// TextDrawer is implemented by renderers that can draw text in the current
// draw color. (x, y) is the top-left corner of the first glyph cell.
type TextDrawer interface {
	DrawText(x, y int, s string)
}

// InitStage identifies which part of start-up failed.
type InitStage uint8

const (
	InitVideo    InitStage = iota // backend Init
	InitWindow                    // CreateWindow
	InitRenderer                  // CreateRenderer
)

func (s InitStage) String() string {
	switch s {
	case InitVideo:
		return "video"
	case InitWindow:
		return "window"
	case InitRenderer:
		return "renderer"
	default:
		return fmt.Sprintf("stage(%d)", uint8(s))
	}
}

// InitError reports a fatal start-up failure. Resources created before the
// failing stage have already been released when it is returned.
type InitError struct {
	Stage InitStage
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
