// Package debug provides offscreen rendering and screenshot utilities.
package debug

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"

	"github.com/Faultbox/wireview/internal/engine/ui2d"
)

// Canvas is a software rasterizer onto an RGBA image. It draws the same
// primitives as the SDL renderer so a headless frame can be saved as a PNG.
type Canvas struct {
	img  *image.RGBA
	font *ui2d.Font
}

// NewCanvas creates a width x height canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		font: ui2d.NewFont(),
	}
}

// Image returns the canvas pixels. The image is reused by later frames.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole canvas.
func (c *Canvas) Clear(col ui2d.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(rgba(col)), image.Point{}, draw.Src)
}

// DrawLine draws a one-pixel line with Bresenham's algorithm.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float32, col ui2d.Color) {
	if !finite(x1, y1, x2, y2) {
		return
	}
	px := rgba(col)
	x0, y0 := int(math32.Round(x1)), int(math32.Round(y1))
	xe, ye := int(math32.Round(x2)), int(math32.Round(y2))

	dx, sx := abs(xe-x0), sign(xe-x0)
	dy, sy := -abs(ye-y0), sign(ye-y0)
	e := dx + dy
	for {
		c.img.SetRGBA(x0, y0, px)
		if x0 == xe && y0 == ye {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// FillRect implements ui2d.Canvas.
func (c *Canvas) FillRect(r ui2d.Rect, col ui2d.Color) {
	draw.Draw(c.img, rect(r), image.NewUniform(rgba(col)), image.Point{}, draw.Over)
}

// StrokeRect implements ui2d.Canvas.
func (c *Canvas) StrokeRect(r ui2d.Rect, col ui2d.Color) {
	b := rect(r)
	if b.Empty() {
		return
	}
	x0, y0, x1, y1 := float32(b.Min.X), float32(b.Min.Y), float32(b.Max.X-1), float32(b.Max.Y-1)
	c.DrawLine(x0, y0, x1, y0, col)
	c.DrawLine(x1, y0, x1, y1, col)
	c.DrawLine(x1, y1, x0, y1, col)
	c.DrawLine(x0, y1, x0, y0, col)
}

// DrawText implements ui2d.Canvas.
func (c *Canvas) DrawText(x, y float32, text string, col ui2d.Color, align ui2d.Align) {
	bm := c.font.Rasterize(text)
	ox, oy := ui2d.Origin(x, y, bm.W, bm.H, align)
	px := rgba(col)
	for _, p := range bm.Points {
		c.img.SetRGBA(ox+p.X, oy+p.Y, px)
	}
}

func rect(r ui2d.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}

func rgba(c ui2d.Color) color.RGBA {
	r, g, b, a := c.Bytes()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// finite guards against lines whose endpoints would walk forever.
func finite(vs ...float32) bool {
	for _, v := range vs {
		if math32.IsNaN(v) || math32.IsInf(v, 0) || math32.Abs(v) > 1<<16 {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
