package fractal

import (
	"image/color"
)

// recordingRenderer counts draw calls and remembers every pixel written.
type recordingRenderer struct {
	w, h      int
	draw      color.RGBA
	pixels    map[[2]int]color.RGBA
	pointHits map[[2]int]int
	rects     []Rect
	rectColor []color.RGBA
	texts     []string
	ops       []string
	presents  int
	destroyed bool
}

func newRecordingRenderer(w, h int) *recordingRenderer {
	return &recordingRenderer{
		w: w, h: h,
		pixels:    make(map[[2]int]color.RGBA, w*h),
		pointHits: make(map[[2]int]int, w*h),
	}
}

func (r *recordingRenderer) SetDrawColor(c color.RGBA) { r.draw = c }

func (r *recordingRenderer) Clear() { r.op("clear") }

func (r *recordingRenderer) DrawPoint(x, y int) {
	k := [2]int{x, y}
	r.pixels[k] = r.draw
	r.pointHits[k]++
	r.op("point")
}

func (r *recordingRenderer) FillRect(rect Rect) {
	r.rects = append(r.rects, rect)
	r.rectColor = append(r.rectColor, r.draw)
	r.op("rect")
}

func (r *recordingRenderer) Present() {
	r.presents++
	r.op("present")
}

func (r *recordingRenderer) Destroy() { r.destroyed = true }

// op records the call sequence, collapsing runs of the same call.
func (r *recordingRenderer) op(name string) {
	if n := len(r.ops); n > 0 && r.ops[n-1] == name {
		return
	}
	r.ops = append(r.ops, name)
}

// textRenderer adds TextDrawer to recordingRenderer.
type textRenderer struct {
	*recordingRenderer
}

func (r textRenderer) DrawText(x, y int, s string) {
	r.texts = append(r.texts, s)
	r.op("text")
}

// mockBackend is a Backend whose stages can be made to fail, and which
// records acquire/release calls.
type mockBackend struct {
	failInit     error
	failWindow   error
	failRenderer error

	events []Event
	// maxSteps bounds Loop in case the session never quits.
	maxSteps int

	calls    []string
	window   *mockWindow
	renderer *recordingRenderer
	steps    int
	live     int
}

func (b *mockBackend) Init() error {
	b.calls = append(b.calls, "init")
	if b.failInit != nil {
		return b.failInit
	}
	b.live++
	return nil
}

func (b *mockBackend) CreateWindow(title string, width, height int) (Window, error) {
	b.calls = append(b.calls, "window")
	if b.failWindow != nil {
		return nil, b.failWindow
	}
	b.live++
	b.window = &mockWindow{backend: b, w: width, h: height, queue: append([]Event(nil), b.events...)}
	return b.window, nil
}

func (b *mockBackend) Loop(step func(dt float64) bool) error {
	limit := b.maxSteps
	if limit == 0 {
		limit = 100
	}
	for b.steps < limit {
		b.steps++
		if !step(1.0 / 60) {
			return nil
		}
	}
	return nil
}

func (b *mockBackend) Shutdown() {
	b.calls = append(b.calls, "shutdown")
	if b.failInit == nil {
		b.live--
	}
}

type mockWindow struct {
	backend *mockBackend
	w, h    int
	queue   []Event
}

func (w *mockWindow) CreateRenderer() (Renderer, error) {
	w.backend.calls = append(w.backend.calls, "renderer")
	if w.backend.failRenderer != nil {
		return nil, w.backend.failRenderer
	}
	w.backend.live++
	w.backend.renderer = newRecordingRenderer(w.w, w.h)
	return &countedRenderer{recordingRenderer: w.backend.renderer, backend: w.backend}, nil
}

func (w *mockWindow) PollEvent() (Event, bool) {
	if len(w.queue) == 0 {
		return Event{}, false
	}
	ev := w.queue[0]
	w.queue = w.queue[1:]
	return ev, true
}

func (w *mockWindow) Destroy() {
	w.backend.calls = append(w.backend.calls, "destroy-window")
	w.backend.live--
}

// countedRenderer reports Destroy to the owning backend.
type countedRenderer struct {
	*recordingRenderer
	backend *mockBackend
}

func (r *countedRenderer) Destroy() {
	r.recordingRenderer.Destroy()
	r.backend.calls = append(r.backend.calls, "destroy-renderer")
	r.backend.live--
}
