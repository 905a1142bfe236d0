package fractal

import (
	"image/color"
	"math"
)

// hueBand is the hue advance in degrees per escape iteration. A full cycle
// repeats every 360/hueBand iterations.
const hueBand = 10.0

// HueForCount maps an escape count to a hue in [0, 360).
func HueForCount(count int) float64 {
	return normalizeHue(float64(count) * hueBand)
}

// HueToRGB converts a hue in degrees to an opaque color with full saturation
// and full value. Hues outside [0, 360) are wrapped first.
func HueToRGB(hue float64) color.RGBA {
	h := normalizeHue(hue) / 60
	sector := int(h)
	f := h - float64(sector)
	rise := uint8(255 * f)
	fall := uint8(255 * (1 - f))

	switch sector {
	case 0:
		return color.RGBA{255, rise, 0, 255}
	case 1:
		return color.RGBA{fall, 255, 0, 255}
	case 2:
		return color.RGBA{0, 255, rise, 255}
	case 3:
		return color.RGBA{0, fall, 255, 255}
	case 4:
		return color.RGBA{rise, 0, 255, 255}
	default:
		return color.RGBA{255, 0, fall, 255}
	}
}

// ColorForCount returns the rainbow band color for an escape count.
func ColorForCount(count int) color.RGBA {
	return HueToRGB(HueForCount(count))
}

func normalizeHue(hue float64) float64 {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to 360.
	if h >= 360 {
		h = 0
	}
	return h
}
