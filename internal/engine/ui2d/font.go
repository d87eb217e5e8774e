package ui2d

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Bitmap is a rasterized line of text: the set pixels, relative to the
// top-left corner of a W x H box.
type Bitmap struct {
	Points []image.Point
	W, H   int
}

// Font rasterizes text with the 7x13 fixed-width face and caches the result
// per string. Labels are redrawn every frame, so the cache is hit almost
// always.
type Font struct {
	face font.Face

	mu    sync.Mutex
	cache map[string]Bitmap
}

// NewFont creates a font using basicfont.Face7x13.
func NewFont() *Font {
	return &Font{
		face:  basicfont.Face7x13,
		cache: make(map[string]Bitmap),
	}
}

// LineHeight returns the height of one line of text in pixels.
func (f *Font) LineHeight() int {
	m := f.face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// MeasureText returns the pixel size of text.
func (f *Font) MeasureText(text string) (w, h int) {
	return font.MeasureString(f.face, text).Ceil(), f.LineHeight()
}

// Rasterize returns the pixels set when drawing text.
func (f *Font) Rasterize(text string) Bitmap {
	f.mu.Lock()
	defer f.mu.Unlock()

	if bm, ok := f.cache[text]; ok {
		return bm
	}

	w, h := f.MeasureText(text)
	bm := Bitmap{W: w, H: h}
	if w == 0 {
		f.cache[text] = bm
		return bm
	}

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: f.face,
		Dot:  fixed.P(0, f.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.AlphaAt(x, y).A >= 0x80 {
				bm.Points = append(bm.Points, image.Point{X: x, Y: y})
			}
		}
	}

	f.cache[text] = bm
	return bm
}

// Origin returns the top-left corner for drawing a w x h box anchored at
// (x, y) with the given alignment, vertically centered.
func Origin(x, y float32, w, h int, align Align) (int, int) {
	left := x
	if align == AlignCenter {
		left = x - float32(w)/2
	}
	top := y - float32(h)/2
	return int(left), int(top)
}
