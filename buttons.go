package fractal

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Button is a fixed on-screen control bound to a view action.
type Button struct {
	Action Action
	Rect   Rect
	Label  string
	// Fill is the resting color. A zero value uses ColorWhite.
	Fill color.RGBA
}

// Press feedback: a clicked button fades from the highlight back to its fill.
const flashDuration = 0.25 // seconds

var flashColor = color.RGBA{255, 214, 64, 255}

var panFill = color.RGBA{200, 200, 200, 255}

// DefaultButtons returns the zoom row and the pan row. None of the rectangles
// overlap, so hit order does not matter.
func DefaultButtons() []Button {
	return []Button{
		{Action: ActionZoomIn, Rect: Rect{10, 10, 50, 50}, Label: "+", Fill: ColorWhite},
		{Action: ActionZoomOut, Rect: Rect{70, 10, 50, 50}, Label: "-", Fill: ColorWhite},
		{Action: ActionPanLeft, Rect: Rect{10, 70, 50, 50}, Label: "<", Fill: panFill},
		{Action: ActionPanRight, Rect: Rect{70, 70, 50, 50}, Label: ">", Fill: panFill},
		{Action: ActionPanUp, Rect: Rect{130, 70, 50, 50}, Label: "^", Fill: panFill},
		{Action: ActionPanDown, Rect: Rect{190, 70, 50, 50}, Label: "v", Fill: panFill},
	}
}

// HitTest returns the index and action of the first button containing (x, y),
// or (-1, ActionNone) when the point misses every button.
func HitTest(buttons []Button, x, y int) (int, Action) {
	for i := range buttons {
		if buttons[i].Rect.Contains(x, y) {
			return i, buttons[i].Action
		}
	}
	return -1, ActionNone
}

// ApplyEvent applies a pointer press to the view. Presses outside every button
// and all non-pointer events are no-ops. It returns the index of the button
// hit (or -1) and the action applied.
func ApplyEvent(v *ViewState, buttons []Button, ev Event, zoomStep, panStep float64) (int, Action) {
	if ev.Type != EventPointerDown {
		return -1, ActionNone
	}
	i, a := HitTest(buttons, ev.X, ev.Y)
	if !v.Apply(a, zoomStep, panStep) {
		return -1, ActionNone
	}
	return i, a
}

// pressFlash tracks the highlight fade for each button.
type pressFlash struct {
	tweens []*gween.Tween
	levels []float64
}

func newPressFlash(n int) *pressFlash {
	return &pressFlash{
		tweens: make([]*gween.Tween, n),
		levels: make([]float64, n),
	}
}

// trigger restarts the fade for button i.
func (p *pressFlash) trigger(i int) {
	if i < 0 || i >= len(p.tweens) {
		return
	}
	p.tweens[i] = gween.New(1, 0, flashDuration, ease.OutQuad)
	p.levels[i] = 1
}

// update advances every active fade by dt seconds.
func (p *pressFlash) update(dt float64) {
	for i, tw := range p.tweens {
		if tw == nil {
			continue
		}
		val, done := tw.Update(float32(dt))
		p.levels[i] = float64(val)
		if done {
			p.tweens[i] = nil
			p.levels[i] = 0
		}
	}
}

// current returns the highlight level of each button in [0, 1].
// The returned slice MUST NOT be mutated.
func (p *pressFlash) current() []float64 {
	return p.levels
}

// blend mixes a toward b by t in [0, 1]. The result is opaque.
func blend(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return color.RGBA{a.R, a.G, a.B, 255}
	}
	if t >= 1 {
		return color.RGBA{b.R, b.G, b.B, 255}
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
