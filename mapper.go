package fractal

// Default framing of the complex plane at zoom 1. The horizontal range is
// asymmetric so the main cardioid sits left of center.
const (
	planeMinRe = -2.5
	planeMaxRe = 1.0
	planeMinIm = -1.0
	planeMaxIm = 1.0
)

// MapRange linearly maps v from [inMin, inMax] onto [outMin, outMax].
// No clamping is applied; values outside the input range extrapolate.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	return (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// PlaneBounds returns the region of the complex plane visible at the current
// zoom and offset.
func (v *ViewState) PlaneBounds() (minRe, maxRe, minIm, maxIm float64) {
	minRe = planeMinRe/v.Zoom + v.OffsetX
	maxRe = planeMaxRe/v.Zoom + v.OffsetX
	minIm = planeMinIm/v.Zoom + v.OffsetY
	maxIm = planeMaxIm/v.Zoom + v.OffsetY
	return
}

// PixelToPlane converts a pixel (px, py) on a width x height raster to the
// complex sample point it represents. Width and height must be positive.
func (v *ViewState) PixelToPlane(px, py, width, height int) (re, im float64) {
	minRe, maxRe, minIm, maxIm := v.PlaneBounds()
	re = MapRange(float64(px), 0, float64(width), minRe, maxRe)
	im = MapRange(float64(py), 0, float64(height), minIm, maxIm)
	return
}
