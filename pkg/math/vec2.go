package math

// Vec2 is a 2D point in screen space.
type Vec2 struct {
	X, Y float32
}
