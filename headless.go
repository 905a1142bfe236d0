package fractal

import (
	"errors"
	"fmt"
)

// headlessDT is the fixed frame time used by HeadlessBackend.Loop.
const headlessDT = 1.0 / 60

// HeadlessBackend runs a session against an in-memory Canvas. Input comes
// from a Script, from direct injection on the window, or both. It counts the
// resources it hands out so callers can check that a run released them.
type HeadlessBackend struct {
	// Script, if set, is stepped once per frame before the session runs.
	// When it finishes, a quit event is injected.
	Script *Script
	// MaxFrames stops the loop after this many frames. Zero means no limit.
	MaxFrames int

	initialized bool
	window      *HeadlessWindow
	frames      int
}

// NewHeadlessBackend returns a backend replaying script, which may be nil.
func NewHeadlessBackend(script *Script) *HeadlessBackend {
	return &HeadlessBackend{Script: script}
}

func (b *HeadlessBackend) Init() error {
	if b.initialized {
		return errors.New("headless: already initialized")
	}
	b.initialized = true
	return nil
}

func (b *HeadlessBackend) CreateWindow(title string, width, height int) (Window, error) {
	if !b.initialized {
		return nil, errors.New("headless: not initialized")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("headless: invalid window size %dx%d", width, height)
	}
	b.window = &HeadlessWindow{Title: title, width: width, height: height}
	return b.window, nil
}

// Loop steps the session with a fixed frame time until it quits or MaxFrames
// is reached. Frames cut off by MaxFrames still end in a normal return.
func (b *HeadlessBackend) Loop(step func(dt float64) bool) error {
	if b.window == nil {
		return errors.New("headless: no window")
	}
	for {
		if b.Script != nil {
			b.Script.step(b.window)
		}
		running := step(headlessDT)
		b.frames++
		if !running {
			return nil
		}
		if b.MaxFrames > 0 && b.frames >= b.MaxFrames {
			return nil
		}
	}
}

func (b *HeadlessBackend) Shutdown() {
	b.initialized = false
}

// Window returns the window created by CreateWindow, or nil.
func (b *HeadlessBackend) Window() *HeadlessWindow {
	return b.window
}

// Frames returns the number of loop iterations run.
func (b *HeadlessBackend) Frames() int {
	return b.frames
}

// Live reports whether any backend resource is still held.
func (b *HeadlessBackend) Live() bool {
	if b.initialized {
		return true
	}
	return b.window != nil && b.window.live()
}

// HeadlessWindow is the window of a HeadlessBackend.
type HeadlessWindow struct {
	Title string

	width, height int
	canvas        *Canvas
	queue         []Event
	destroyed     bool
}

func (w *HeadlessWindow) CreateRenderer() (Renderer, error) {
	if w.destroyed {
		return nil, errors.New("headless: window destroyed")
	}
	if w.canvas != nil {
		return nil, errors.New("headless: renderer already created")
	}
	w.canvas = NewCanvas(w.width, w.height)
	return w.canvas, nil
}

func (w *HeadlessWindow) Destroy() {
	w.destroyed = true
	w.queue = nil
}

// Canvas returns the renderer created by CreateRenderer, or nil.
func (w *HeadlessWindow) Canvas() *Canvas {
	return w.canvas
}

func (w *HeadlessWindow) live() bool {
	if !w.destroyed {
		return true
	}
	return w.canvas != nil && !w.canvas.Destroyed()
}
