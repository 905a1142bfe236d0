package fractal

import "time"

// Session owns the window, renderer and view state of one interactive run.
type Session struct {
	cfg      Config
	backend  Backend
	window   Window
	renderer Renderer

	view  *ViewState
	flash *pressFlash

	quit   bool
	closed bool
	frames int
}

// Open initializes the backend and creates the window and renderer. On
// failure every resource acquired so far is released and an *InitError is
// returned.
func Open(b Backend, cfg Config) (*Session, error) {
	cfg = cfg.withDefaults()

	if err := b.Init(); err != nil {
		b.Shutdown()
		return nil, &InitError{Stage: InitVideo, Err: err}
	}
	win, err := b.CreateWindow(cfg.Title, cfg.Width, cfg.Height)
	if err != nil {
		b.Shutdown()
		return nil, &InitError{Stage: InitWindow, Err: err}
	}
	rnd, err := win.CreateRenderer()
	if err != nil {
		win.Destroy()
		b.Shutdown()
		return nil, &InitError{Stage: InitRenderer, Err: err}
	}

	return &Session{
		cfg:      cfg,
		backend:  b,
		window:   win,
		renderer: rnd,
		view:     NewViewState(),
		flash:    newPressFlash(len(cfg.Buttons)),
	}, nil
}

// View returns a copy of the current view state.
func (s *Session) View() ViewState {
	return *s.view
}

// Frames returns the number of frames presented so far.
func (s *Session) Frames() int {
	return s.frames
}

// Step runs one loop iteration: drain pending input, apply it, render and
// present a frame. It returns false once a quit event has been seen; the
// frame of that iteration is still presented.
func (s *Session) Step(dt float64) bool {
	if s.closed {
		return false
	}
	var stats frameStats
	for {
		ev, ok := s.window.PollEvent()
		if !ok {
			break
		}
		stats.events++
		s.handleEvent(ev)
	}
	s.flash.update(dt)
	s.draw(&stats)
	return !s.quit
}

// handleEvent applies one input event.
func (s *Session) handleEvent(ev Event) {
	switch ev.Type {
	case EventQuit:
		s.quit = true
	case EventPointerDown:
		i, a := ApplyEvent(s.view, s.cfg.Buttons, ev, s.cfg.ZoomStep, s.cfg.PanStep)
		if a == ActionNone {
			return
		}
		s.flash.trigger(i)
		s.logf("%s: %v", a, s.view)
	}
}

// draw renders the fractal, overlays the buttons and presents the frame.
func (s *Session) draw(stats *frameStats) {
	var t0 time.Time
	if s.cfg.Debug {
		t0 = time.Now()
	}

	r := s.renderer
	r.SetDrawColor(ColorBlack)
	r.Clear()
	RenderFractal(r, s.view, RasterParams{
		Width:    s.cfg.Width,
		Height:   s.cfg.Height,
		MaxIter:  s.cfg.MaxIter,
		Interior: s.cfg.Interior,
	})

	if s.cfg.Debug {
		stats.rasterTime = time.Since(t0)
		t0 = time.Now()
	}

	DrawButtons(r, s.cfg.Buttons, s.flash.current())
	if s.cfg.ShowStatus {
		drawStatus(r, s.view, s.cfg.Height)
	}

	if s.cfg.Debug {
		stats.overlayTime = time.Since(t0)
		t0 = time.Now()
	}

	r.Present()
	s.frames++

	if s.cfg.Debug {
		stats.presentTime = time.Since(t0)
		s.debugLog(*stats)
	}
}

// Close destroys the renderer and window and shuts the backend down. It is
// safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.renderer.Destroy()
	s.window.Destroy()
	s.backend.Shutdown()
}

// Run opens a session on b, drives it until quit and releases everything.
func Run(b Backend, cfg Config) error {
	s, err := Open(b, cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	s.logf("session started: %dx%d, max %d iterations", s.cfg.Width, s.cfg.Height, s.cfg.MaxIter)

	if err := b.Loop(s.Step); err != nil {
		return err
	}
	s.logf("session ended after %d frames", s.frames)
	return nil
}
