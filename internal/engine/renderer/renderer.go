// Package renderer draws the viewer's 2D primitives with the SDL2
// accelerated renderer.
package renderer

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wireview/internal/engine/ui2d"
	"github.com/Faultbox/wireview/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int // Logical width; drawing coordinates are in this space
	Height int
	VSync  bool
}

// Renderer wraps an SDL renderer bound to a window.
type Renderer struct {
	config Config
	sdl    *sdl.Renderer
	font   *ui2d.Font

	// scratch buffer for text pixels
	points []sdl.Point
}

// New creates a renderer for win.
func New(win *sdl.Window, cfg Config) (*Renderer, error) {
	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}

	sr, err := sdl.CreateRenderer(win, -1, flags)
	if err != nil {
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	// Logical size keeps coordinates fixed when the window is resized.
	if err := sr.SetLogicalSize(int32(cfg.Width), int32(cfg.Height)); err != nil {
		sr.Destroy()
		return nil, fmt.Errorf("SDL_RenderSetLogicalSize failed: %w", err)
	}

	if info, err := sr.GetInfo(); err == nil {
		logger.Info("renderer created",
			zap.String("backend", info.Name),
			zap.Int("width", cfg.Width),
			zap.Int("height", cfg.Height),
			zap.Bool("vsync", cfg.VSync),
		)
	}

	return &Renderer{
		config: cfg,
		sdl:    sr,
		font:   ui2d.NewFont(),
	}, nil
}

// Close destroys the SDL renderer.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.sdl != nil {
		r.sdl.Destroy()
		r.sdl = nil
	}
}

// Clear fills the whole target with c.
func (r *Renderer) Clear(c ui2d.Color) {
	r.setColor(c)
	r.sdl.Clear()
}

// DrawLine draws a one-pixel line.
func (r *Renderer) DrawLine(x1, y1, x2, y2 float32, c ui2d.Color) {
	r.setColor(c)
	r.sdl.DrawLineF(x1, y1, x2, y2)
}

// FillRect implements ui2d.Canvas.
func (r *Renderer) FillRect(rect ui2d.Rect, c ui2d.Color) {
	r.setColor(c)
	r.sdl.FillRectF(toFRect(rect))
}

// StrokeRect implements ui2d.Canvas.
func (r *Renderer) StrokeRect(rect ui2d.Rect, c ui2d.Color) {
	r.setColor(c)
	r.sdl.DrawRectF(toFRect(rect))
}

// DrawText implements ui2d.Canvas.
func (r *Renderer) DrawText(x, y float32, text string, c ui2d.Color, align ui2d.Align) {
	bm := r.font.Rasterize(text)
	if len(bm.Points) == 0 {
		return
	}
	ox, oy := ui2d.Origin(x, y, bm.W, bm.H, align)

	r.points = r.points[:0]
	for _, p := range bm.Points {
		r.points = append(r.points, sdl.Point{X: int32(ox + p.X), Y: int32(oy + p.Y)})
	}

	r.setColor(c)
	r.sdl.DrawPoints(r.points)
}

// Present shows the frame.
func (r *Renderer) Present() {
	r.sdl.Present()
}

func (r *Renderer) setColor(c ui2d.Color) {
	cr, cg, cb, ca := c.Bytes()
	r.sdl.SetDrawColor(cr, cg, cb, ca)
}

func toFRect(rect ui2d.Rect) *sdl.FRect {
	return &sdl.FRect{X: rect.X, Y: rect.Y, W: rect.W, H: rect.H}
}
