package fractal

import "image/color"

// RasterParams controls one fractal raster pass.
type RasterParams struct {
	Width, Height int
	MaxIter       int
	// Interior, when non-nil, colors points that never escape. When nil
	// they follow the same hue cycle as escaped points.
	Interior *color.RGBA
}

// RenderFractal writes every pixel of the Width x Height raster exactly once,
// in row-major order, using the current view.
func RenderFractal(r Renderer, v *ViewState, p RasterParams) {
	minRe, maxRe, minIm, maxIm := v.PlaneBounds()
	w, h := float64(p.Width), float64(p.Height)

	for py := 0; py < p.Height; py++ {
		im := MapRange(float64(py), 0, h, minIm, maxIm)
		for px := 0; px < p.Width; px++ {
			re := MapRange(float64(px), 0, w, minRe, maxRe)
			n := Escape(re, im, p.MaxIter)

			var c color.RGBA
			if n >= p.MaxIter && p.Interior != nil {
				c = *p.Interior
			} else {
				c = ColorForCount(n)
			}
			r.SetDrawColor(c)
			r.DrawPoint(px, py)
		}
	}
}

// DrawButtons draws each button as an opaque rectangle on top of whatever is
// already in the frame. highlight, if non-nil, holds one level in [0, 1] per
// button and blends its fill toward the press color. Labels are drawn when r
// implements TextDrawer.
func DrawButtons(r Renderer, buttons []Button, highlight []float64) {
	td, hasText := r.(TextDrawer)
	for i := range buttons {
		b := &buttons[i]
		fill := b.Fill
		if fill == (color.RGBA{}) {
			fill = ColorWhite
		}
		if i < len(highlight) {
			fill = blend(fill, flashColor, highlight[i])
		}
		r.SetDrawColor(fill)
		r.FillRect(b.Rect)

		if hasText && b.Label != "" {
			r.SetDrawColor(ColorBlack)
			x := b.Rect.X + (b.Rect.W-textWidth(b.Label))/2
			y := b.Rect.Y + (b.Rect.H-glyphH)/2
			td.DrawText(x, y, b.Label)
		}
	}
}

// drawStatus prints the view parameters along the bottom edge.
func drawStatus(r Renderer, v *ViewState, height int) {
	td, ok := r.(TextDrawer)
	if !ok {
		return
	}
	r.SetDrawColor(ColorWhite)
	td.DrawText(4, height-glyphH-4, v.String())
}
