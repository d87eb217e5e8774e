package ui2d

// InputState is the pointer state widgets are evaluated against.
type InputState struct {
	MouseX float32
	MouseY float32

	// Clicked is the press edge: set on the frame the primary button went
	// down and consumed once widgets have been evaluated.
	Clicked bool
}
