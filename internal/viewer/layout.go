package viewer

import (
	"github.com/Faultbox/wireview/internal/engine/ui2d"
	"github.com/Faultbox/wireview/pkg/math"
)

// Layout places the menu strip along the top edge and the status lines in
// the bottom-left corner. Zoom and projection buttons hug the right edge.
type Layout struct {
	Open       ui2d.Rect
	Clear      ui2d.Rect
	Projection ui2d.Rect
	ZoomIn     ui2d.Rect
	ZoomOut    ui2d.Rect

	Status math.Vec2 // Current file path
	Error  math.Vec2 // Last load error
}

// NewLayout computes widget positions for vp.
func NewLayout(vp Viewport) Layout {
	return Layout{
		Open:       ui2d.Rect{X: 10, Y: 10, W: 70, H: 30},
		Clear:      ui2d.Rect{X: 90, Y: 10, W: 70, H: 30},
		Projection: ui2d.Rect{X: vp.Width - 250, Y: 10, W: 160, H: 30},
		ZoomIn:     ui2d.Rect{X: vp.Width - 80, Y: 10, W: 30, H: 30},
		ZoomOut:    ui2d.Rect{X: vp.Width - 40, Y: 10, W: 30, H: 30},
		Status:     math.Vec2{X: 10, Y: vp.Height - 15},
		Error:      math.Vec2{X: 10, Y: vp.Height - 35},
	}
}
