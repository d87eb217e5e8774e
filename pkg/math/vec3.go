// Package math provides the small vector and matrix toolkit used by the
// wireframe transform pipeline.
package math

import "github.com/chewxy/math32"

// Vec3 is a 3D point or vector. A model vertex is a Vec3 in object space.
type Vec3 struct {
	X, Y, Z float32
}

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Translate returns v offset by (dx, dy, dz).
func (v Vec3) Translate(dx, dy, dz float32) Vec3 {
	return Vec3{v.X + dx, v.Y + dy, v.Z + dz}
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
