package fractal

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph cell of the canvas text face.
const (
	glyphW = 7
	glyphH = 13
)

// Canvas is a double-buffered software raster implementing Renderer and
// TextDrawer. Drawing targets the back buffer; Present copies it to the front
// buffer, which is what a window displays.
type Canvas struct {
	back, front *image.RGBA
	fill        color.RGBA
	brush       *image.Uniform
	destroyed   bool
}

// NewCanvas creates a canvas of the given size with both buffers cleared to
// transparent black.
func NewCanvas(w, h int) *Canvas {
	b := image.Rect(0, 0, w, h)
	c := &Canvas{
		back:  image.NewRGBA(b),
		front: image.NewRGBA(b),
		fill:  ColorBlack,
	}
	c.brush = image.NewUniform(c.fill)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.back.Rect.Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.back.Rect.Dy()
}

// Front returns the last presented frame. Callers must not modify it.
func (c *Canvas) Front() *image.RGBA {
	return c.front
}

// Back returns the frame being drawn.
func (c *Canvas) Back() *image.RGBA {
	return c.back
}

// SetDrawColor sets the color used by Clear, DrawPoint, FillRect and DrawText.
func (c *Canvas) SetDrawColor(col color.RGBA) {
	c.fill = col
	c.brush.C = col
}

// Clear fills the back buffer with the draw color.
func (c *Canvas) Clear() {
	draw.Draw(c.back, c.back.Rect, c.brush, image.Point{}, draw.Src)
}

// DrawPoint sets one pixel. Points outside the canvas are ignored.
func (c *Canvas) DrawPoint(x, y int) {
	c.back.SetRGBA(x, y, c.fill)
}

// FillRect fills r, clipped to the canvas.
func (c *Canvas) FillRect(r Rect) {
	if r.Empty() {
		return
	}
	dst := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H).Intersect(c.back.Rect)
	draw.Draw(c.back, dst, c.brush, image.Point{}, draw.Src)
}

// DrawText draws s with the 7x13 basic face, top-left anchored at (x, y).
func (c *Canvas) DrawText(x, y int, s string) {
	d := &font.Drawer{
		Dst:  c.back,
		Src:  image.NewUniform(c.fill),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)
}

// Present publishes the back buffer.
func (c *Canvas) Present() {
	copy(c.front.Pix, c.back.Pix)
}

// Destroy marks the canvas released. Drawing after Destroy is a caller bug.
func (c *Canvas) Destroy() {
	c.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (c *Canvas) Destroyed() bool {
	return c.destroyed
}

// textWidth returns the pixel width of s in the canvas face.
func textWidth(s string) int {
	return len([]rune(s)) * glyphW
}
