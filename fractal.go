package fractal

import "image/color"

// Fixed session constants. Config defaults are built from these.
const (
	Width    = 800
	Height   = 600
	MaxIter  = 1000
	ZoomStep = 1.1
	PanStep  = 0.1
)

// Opaque draw colors used by the frame renderer.
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
)

// Rect is an integer screen rectangle. The coordinate system has its origin
// at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// EventType identifies a kind of input event delivered by a Window.
type EventType uint8

const (
	EventOther       EventType = iota // anything the session does not act on
	EventQuit                         // window close or quit request
	EventPointerDown                  // a pointer button was pressed
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventPointerDown:
		return "pointer-down"
	default:
		return "other"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button or touch
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Event is a single polled input event. X and Y are screen coordinates and are
// only meaningful for EventPointerDown.
type Event struct {
	Type   EventType
	X, Y   int
	Button MouseButton
}

// QuitEvent returns an EventQuit.
func QuitEvent() Event {
	return Event{Type: EventQuit}
}

// PointerDownEvent returns a left-button EventPointerDown at (x, y).
func PointerDownEvent(x, y int) Event {
	return Event{Type: EventPointerDown, X: x, Y: y, Button: MouseButtonLeft}
}
