// Package camera holds the viewer's turntable camera state.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/wireview/pkg/math"
)

// Limits bounds zoom and pitch.
type Limits struct {
	MinZoom  float32
	MaxZoom  float32
	MinPitch float32
	MaxPitch float32
}

// DefaultLimits returns zoom in [0.5, 10] and pitch in [-pi/2, pi/2].
func DefaultLimits() Limits {
	return Limits{
		MinZoom:  0.5,
		MaxZoom:  10.0,
		MinPitch: -math32.Pi / 2,
		MaxPitch: math32.Pi / 2,
	}
}

// Camera is a turntable view of the model. It is a value type: copying a
// Camera snapshots it.
type Camera struct {
	AngleX float32 // Pitch (radians), clamped to Limits
	AngleY float32 // Yaw (radians), unbounded
	Zoom   float32
	Ortho  bool

	Limits Limits

	// Sensitivity
	ZoomStep    float32 // Fraction of the current zoom added per step
	RotateSpeed float32 // Radians per pixel of pointer drag
}

// New creates a camera with the given initial zoom and default limits.
func New(zoom float32) Camera {
	c := Camera{
		Zoom:        zoom,
		Limits:      DefaultLimits(),
		ZoomStep:    0.1,
		RotateSpeed: 0.01,
	}
	c.Zoom = c.clampZoom(c.Zoom)
	return c
}

// ZoomIn grows zoom by ZoomStep of itself.
func (c *Camera) ZoomIn() {
	c.Zoom += c.Zoom * c.ZoomStep
	c.Zoom = c.clampZoom(c.Zoom)
}

// ZoomOut shrinks zoom by ZoomStep of itself.
func (c *Camera) ZoomOut() {
	c.Zoom -= c.Zoom * c.ZoomStep
	c.Zoom = c.clampZoom(c.Zoom)
}

// ToggleProjection flips between orthographic and perspective.
func (c *Camera) ToggleProjection() {
	c.Ortho = !c.Ortho
}

// HandleDrag turns a pointer delta in pixels into yaw (dx) and pitch (dy).
func (c *Camera) HandleDrag(dx, dy float32) {
	c.AngleY += dx * c.RotateSpeed
	c.AngleX += dy * c.RotateSpeed
	c.ClampPitch()
}

// ClampPitch saturates AngleX into the pitch limits.
func (c *Camera) ClampPitch() {
	c.AngleX = math.Clamp(c.AngleX, c.Limits.MinPitch, c.Limits.MaxPitch)
}

// Rotation returns RotateX(AngleX) * RotateY(AngleY).
func (c Camera) Rotation() math.Mat3 {
	return math.RotateX(c.AngleX).Mul(math.RotateY(c.AngleY))
}

// ProjectionName is the label for the current projection mode.
func (c Camera) ProjectionName() string {
	if c.Ortho {
		return "orthographic"
	}
	return "perspective"
}

func (c Camera) clampZoom(z float32) float32 {
	return math.Clamp(z, c.Limits.MinZoom, c.Limits.MaxZoom)
}
