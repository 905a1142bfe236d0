package fractal

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenBackend opens a real window through Ebitengine. The session draws
// into a software Canvas, and each Draw uploads the last presented frame.
type EbitenBackend struct {
	// ShowFPS draws the actual FPS and TPS in the bottom-right corner.
	ShowFPS bool

	window *ebitenWindow
}

// NewEbitenBackend returns a backend for the current display.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{}
}

// Init lets the session see window-close requests as quit events instead of
// Ebitengine terminating on its own.
func (b *EbitenBackend) Init() error {
	ebiten.SetWindowClosingHandled(true)
	return nil
}

// CreateWindow configures the single Ebitengine window. The window itself
// appears when Loop starts.
func (b *EbitenBackend) CreateWindow(title string, width, height int) (Window, error) {
	if b.window != nil {
		return nil, errors.New("ebiten: window already created")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ebiten: invalid window size %dx%d", width, height)
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	b.window = &ebitenWindow{backend: b, width: width, height: height}
	return b.window, nil
}

// Loop runs the Ebitengine game loop, calling step from every Update.
func (b *EbitenBackend) Loop(step func(dt float64) bool) error {
	if b.window == nil {
		return errors.New("ebiten: no window")
	}
	return ebiten.RunGame(&ebitenGame{backend: b, step: step})
}

// Shutdown forgets the window. Ebitengine releases its own resources when
// RunGame returns.
func (b *EbitenBackend) Shutdown() {
	b.window = nil
}

// ebitenWindow queues input collected at the start of each Update.
type ebitenWindow struct {
	backend  *EbitenBackend
	width    int
	height   int
	canvas   *Canvas
	queue    []Event
	keys     []ebiten.Key
	touches  []ebiten.TouchID
	released bool
}

func (w *ebitenWindow) CreateRenderer() (Renderer, error) {
	if w.released {
		return nil, errors.New("ebiten: window destroyed")
	}
	if w.canvas != nil {
		return nil, errors.New("ebiten: renderer already created")
	}
	w.canvas = NewCanvas(w.width, w.height)
	return w.canvas, nil
}

func (w *ebitenWindow) PollEvent() (Event, bool) {
	if len(w.queue) == 0 {
		return Event{}, false
	}
	ev := w.queue[0]
	copy(w.queue, w.queue[1:])
	w.queue = w.queue[:len(w.queue)-1]
	return ev, true
}

func (w *ebitenWindow) Destroy() {
	w.released = true
	w.canvas = nil
	w.queue = nil
}

// collect translates this tick's input into queued events.
func (w *ebitenWindow) collect() {
	if ebiten.IsWindowBeingClosed() {
		w.queue = append(w.queue, QuitEvent())
	}

	mx, my := ebiten.CursorPosition()
	buttons := [...]struct {
		eb ebiten.MouseButton
		mb MouseButton
	}{
		{ebiten.MouseButtonLeft, MouseButtonLeft},
		{ebiten.MouseButtonRight, MouseButtonRight},
		{ebiten.MouseButtonMiddle, MouseButtonMiddle},
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			w.queue = append(w.queue, Event{Type: EventPointerDown, X: mx, Y: my, Button: b.mb})
		}
	}

	w.touches = inpututil.AppendJustPressedTouchIDs(w.touches[:0])
	for _, id := range w.touches {
		tx, ty := ebiten.TouchPosition(id)
		w.queue = append(w.queue, PointerDownEvent(tx, ty))
	}

	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		if k == ebiten.KeyEscape {
			w.queue = append(w.queue, QuitEvent())
		} else {
			w.queue = append(w.queue, Event{Type: EventOther})
		}
	}
}

// ebitenGame adapts a step function to ebiten.Game.
type ebitenGame struct {
	backend *EbitenBackend
	step    func(dt float64) bool
}

func (g *ebitenGame) Update() error {
	w := g.backend.window
	if w == nil {
		return ebiten.Termination
	}
	w.collect()
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	if !g.step(1 / float64(tps)) {
		return ebiten.Termination
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	w := g.backend.window
	if w == nil || w.canvas == nil {
		return
	}
	screen.WritePixels(w.canvas.Front().Pix)

	if g.backend.ShowFPS {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			w.width-100, w.height-36)
	}
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.backend.window
	if w == nil {
		return outsideWidth, outsideHeight
	}
	return w.width, w.height
}
