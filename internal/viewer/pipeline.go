package viewer

import (
	"github.com/Faultbox/wireview/internal/engine/camera"
	"github.com/Faultbox/wireview/pkg/math"
)

// Viewport describes the drawing surface and the fixed parts of the
// model-view-projection pipeline.
type Viewport struct {
	Width  float32
	Height float32

	PixelScale     float32 // Object units to pixels before zoom
	CameraDistance float32 // Virtual eye position along +z for perspective
}

// DefaultViewport returns a 500x500 viewport with 100 pixels per unit and
// the eye at z=3.
func DefaultViewport() Viewport {
	return Viewport{
		Width:          500,
		Height:         500,
		PixelScale:     100,
		CameraDistance: 3,
	}
}

// Center returns the screen point the model origin maps to.
func (vp Viewport) Center() (x, y float32) {
	return vp.Width / 2, vp.Height / 2
}

// Projected is a vertex after the full pipeline. Visible is false when the
// vertex sits on the perspective singularity (z equal to the eye distance).
type Projected struct {
	Pos     math.Vec3
	Visible bool
}

// Transform runs the pipeline over verts, writing one Projected per vertex
// into dst (reused when it has capacity) and returning it.
//
// Per vertex: rotate by RotateX(pitch)*RotateY(yaw), divide x and y by the
// distance to the eye (1 in orthographic mode), drop depth, scale by
// PixelScale*zoom, then move the origin to the viewport center.
func Transform(cam camera.Camera, verts []math.Vec3, vp Viewport, dst []Projected) []Projected {
	dst = dst[:0]
	rot := cam.Rotation()
	cx, cy := vp.Center()

	for _, v := range verts {
		p := rot.Apply(v)

		var d float32 = 1
		if !cam.Ortho {
			depth := vp.CameraDistance - p.Z
			if depth == 0 {
				dst = append(dst, Projected{})
				continue
			}
			d = 1 / depth
		}

		p = math.Projection(d).Apply(p)
		p = p.Scale(vp.PixelScale)
		p = p.Scale(cam.Zoom)
		p = p.Translate(cx, cy, 0)

		dst = append(dst, Projected{Pos: p, Visible: p.IsFinite()})
	}
	return dst
}
