package fractal

import "testing"

func TestViewStateDefaults(t *testing.T) {
	v := NewViewState()
	if v.Zoom != 1 || v.OffsetX != 0 || v.OffsetY != 0 {
		t.Errorf("NewViewState() = %+v, want zoom 1 at origin", *v)
	}
}

func TestViewStateApply(t *testing.T) {
	tests := []struct {
		name   string
		start  ViewState
		action Action
		want   ViewState
	}{
		{"zoom in", ViewState{Zoom: 1}, ActionZoomIn, ViewState{Zoom: 1 * 1.1}},
		{"zoom out", ViewState{Zoom: 1}, ActionZoomOut, ViewState{Zoom: 1 / 1.1}},
		{"pan left", ViewState{Zoom: 2}, ActionPanLeft, ViewState{Zoom: 2, OffsetX: -0.1 / 2}},
		{"pan right", ViewState{Zoom: 2}, ActionPanRight, ViewState{Zoom: 2, OffsetX: 0.1 / 2}},
		{"pan up", ViewState{Zoom: 4}, ActionPanUp, ViewState{Zoom: 4, OffsetY: -0.1 / 4}},
		{"pan down", ViewState{Zoom: 4}, ActionPanDown, ViewState{Zoom: 4, OffsetY: 0.1 / 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.start
			if !v.Apply(tt.action, ZoomStep, PanStep) {
				t.Fatalf("Apply(%v) reported no change", tt.action)
			}
			if !viewApprox(v, tt.want) {
				t.Errorf("Apply(%v) = %+v, want %+v", tt.action, v, tt.want)
			}
		})
	}
}

func TestViewStateApplyNone(t *testing.T) {
	v := ViewState{Zoom: 3, OffsetX: 0.2, OffsetY: -0.4}
	before := v
	if v.Apply(ActionNone, ZoomStep, PanStep) {
		t.Error("ActionNone reported a change")
	}
	if v != before {
		t.Errorf("ActionNone changed the view: %+v -> %+v", before, v)
	}
}

func TestViewStateZoomStaysPositive(t *testing.T) {
	v := NewViewState()
	for i := 0; i < 5000; i++ {
		v.Apply(ActionZoomOut, ZoomStep, PanStep)
		if !(v.Zoom > 0) {
			t.Fatalf("zoom %v after %d zoom-outs", v.Zoom, i+1)
		}
	}
}

func TestViewStatePanScalesWithZoom(t *testing.T) {
	near := ViewState{Zoom: 10}
	far := ViewState{Zoom: 1}
	near.Apply(ActionPanRight, ZoomStep, PanStep)
	far.Apply(ActionPanRight, ZoomStep, PanStep)
	if !approxEqual(far.OffsetX, near.OffsetX*10, epsilon) {
		t.Errorf("pan at zoom 10 = %v, want a tenth of %v", near.OffsetX, far.OffsetX)
	}
}

func TestActionString(t *testing.T) {
	names := map[Action]string{
		ActionNone:     "none",
		ActionZoomIn:   "zoom-in",
		ActionZoomOut:  "zoom-out",
		ActionPanLeft:  "pan-left",
		ActionPanRight: "pan-right",
		ActionPanUp:    "pan-up",
		ActionPanDown:  "pan-down",
	}
	for a, want := range names {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", a, got, want)
		}
	}
}

func viewApprox(a, b ViewState) bool {
	return approxEqual(a.Zoom, b.Zoom, epsilon) &&
		approxEqual(a.OffsetX, b.OffsetX, epsilon) &&
		approxEqual(a.OffsetY, b.OffsetY, epsilon)
}
