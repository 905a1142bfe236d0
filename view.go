package fractal

import "fmt"

// ViewState is the visible window onto the complex plane: a zoom factor and
// a pan offset. Zoom is always positive.
type ViewState struct {
	// Zoom is the magnification (1.0 = default framing, >1 = zoomed in).
	Zoom float64
	// OffsetX and OffsetY shift the view in complex-plane units.
	OffsetX, OffsetY float64
}

// NewViewState returns the home view: zoom 1, no offset.
func NewViewState() *ViewState {
	return &ViewState{Zoom: 1}
}

// Action is a view mutation bound to a button.
type Action uint8

const (
	ActionNone Action = iota
	ActionZoomIn
	ActionZoomOut
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
)

func (a Action) String() string {
	switch a {
	case ActionZoomIn:
		return "zoom-in"
	case ActionZoomOut:
		return "zoom-out"
	case ActionPanLeft:
		return "pan-left"
	case ActionPanRight:
		return "pan-right"
	case ActionPanUp:
		return "pan-up"
	case ActionPanDown:
		return "pan-down"
	default:
		return "none"
	}
}

// Apply performs a single action and reports whether the view changed.
// zoomStep must be positive. Pan distance is panStep/Zoom so the step stays
// the same fraction of the visible width at any zoom.
func (v *ViewState) Apply(a Action, zoomStep, panStep float64) bool {
	switch a {
	case ActionZoomIn:
		v.Zoom *= zoomStep
	case ActionZoomOut:
		v.Zoom /= zoomStep
	case ActionPanLeft:
		v.OffsetX -= panStep / v.Zoom
	case ActionPanRight:
		v.OffsetX += panStep / v.Zoom
	case ActionPanUp:
		v.OffsetY -= panStep / v.Zoom
	case ActionPanDown:
		v.OffsetY += panStep / v.Zoom
	default:
		return false
	}
	return true
}

func (v ViewState) String() string {
	return fmt.Sprintf("zoom %.6g  offset (%.6g, %.6g)", v.Zoom, v.OffsetX, v.OffsetY)
}
