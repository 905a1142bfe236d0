package fractal

import (
	"image/color"
	"testing"
)

func TestHueToRGBSectorBoundaries(t *testing.T) {
	tests := []struct {
		hue  float64
		want color.RGBA
	}{
		{0, color.RGBA{255, 0, 0, 255}},
		{60, color.RGBA{255, 255, 0, 255}},
		{120, color.RGBA{0, 255, 0, 255}},
		{180, color.RGBA{0, 255, 255, 255}},
		{240, color.RGBA{0, 0, 255, 255}},
		{300, color.RGBA{255, 0, 255, 255}},
		{360, color.RGBA{255, 0, 0, 255}},
		{-60, color.RGBA{255, 0, 255, 255}},
	}
	for _, tt := range tests {
		if got := HueToRGB(tt.hue); got != tt.want {
			t.Errorf("HueToRGB(%v) = %v, want %v", tt.hue, got, tt.want)
		}
	}
}

func TestHueToRGBMidSector(t *testing.T) {
	// 30 degrees is halfway through sector 0: green rises to 255*0.5 = 127.5,
	// truncated to 127.
	if got, want := HueToRGB(30), (color.RGBA{255, 127, 0, 255}); got != want {
		t.Errorf("HueToRGB(30) = %v, want %v", got, want)
	}
	// 90 degrees is halfway through sector 1: red falls to 127.
	if got, want := HueToRGB(90), (color.RGBA{127, 255, 0, 255}); got != want {
		t.Errorf("HueToRGB(90) = %v, want %v", got, want)
	}
}

func TestHueForCount(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{0, 0},
		{1, 10},
		{35, 350},
		{36, 0},
		{37, 10},
		{MaxIter, 280},
	}
	for _, tt := range tests {
		if got := HueForCount(tt.count); !approxEqual(got, tt.want, epsilon) {
			t.Errorf("HueForCount(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestColorForCountProperties(t *testing.T) {
	for c := 0; c <= MaxIter; c++ {
		h := HueForCount(c)
		if h < 0 || h >= 360 {
			t.Fatalf("HueForCount(%d) = %v, outside [0, 360)", c, h)
		}
		col := ColorForCount(c)
		if col.A != 255 {
			t.Fatalf("ColorForCount(%d).A = %d, want 255", c, col.A)
		}
		if !hasExtremalChannel(col) {
			t.Fatalf("ColorForCount(%d) = %v has no channel at 0 or 255", c, col)
		}
	}
}

func TestColorForCountPeriod(t *testing.T) {
	for c := 0; c <= MaxIter; c++ {
		if a, b := HueForCount(c), HueForCount(c+36); !approxEqual(a, b, epsilon) {
			t.Fatalf("HueForCount(%d) = %v, HueForCount(%d) = %v", c, a, c+36, b)
		}
		if a, b := ColorForCount(c), ColorForCount(c+36); a != b {
			t.Fatalf("ColorForCount(%d) = %v, ColorForCount(%d) = %v", c, a, c+36, b)
		}
	}
}

func hasExtremalChannel(c color.RGBA) bool {
	for _, v := range []uint8{c.R, c.G, c.B} {
		if v == 0 || v == 255 {
			return true
		}
	}
	return false
}
