// Package viewer implements the wireframe viewer core: the per-frame step
// from input to draw commands, the transform pipeline, the model store and
// the driver loop that runs them against a Presentation.
package viewer

import (
	"github.com/Faultbox/wireview/internal/engine/camera"
	"github.com/Faultbox/wireview/internal/engine/ui2d"
)

// KeyEscape is delivered in Input.Keys when Escape is pressed.
const KeyEscape rune = 0x1b

// Input is one frame of polled input.
type Input struct {
	// Keys pressed since the previous frame, in order.
	Keys []rune

	MouseX, MouseY float32
	MouseDown      bool // Primary button held
	MousePressed   bool // Primary button went down since the previous frame

	Quit bool // Window closed
}

// Pointer tracks the pointer between frames to turn positions into drag deltas.
type Pointer struct {
	X, Y         float32
	PrevX, PrevY float32
	Down         bool
	Clicked      bool
}

// State is everything that carries from one frame to the next.
type State struct {
	Camera   camera.Camera
	Pointer  Pointer
	Viewport Viewport
}

// NewState returns the initial state for a viewport and camera.
func NewState(vp Viewport, cam camera.Camera) State {
	return State{Camera: cam, Viewport: vp}
}

// Step advances the viewer by one frame and returns the next state with the
// frame to draw. It performs no I/O; st is taken by value and the caller's
// copy is left unchanged.
func Step(st State, snap Snapshot, in Input) (State, Frame) {
	var f Frame

	for _, k := range in.Keys {
		switch k {
		case '+':
			st.Camera.ZoomIn()
		case '-':
			st.Camera.ZoomOut()
		case 'p':
			st.Camera.ToggleProjection()
		case 'o':
			f.Actions = append(f.Actions, ActionOpen)
		case KeyEscape:
			f.Actions = append(f.Actions, ActionQuit)
		}
	}

	p := &st.Pointer
	p.X, p.Y = in.MouseX, in.MouseY
	p.Down = in.MouseDown
	if in.MousePressed {
		p.Clicked = true
	}
	if p.Down {
		st.Camera.HandleDrag(p.X-p.PrevX, p.Y-p.PrevY)
	}
	st.Camera.ClampPitch()
	p.PrevX, p.PrevY = p.X, p.Y

	ui := ui2d.NewContext(ui2d.InputState{MouseX: p.X, MouseY: p.Y, Clicked: p.Clicked})
	layout := NewLayout(st.Viewport)

	if !snap.Model.Empty() {
		proj := Transform(st.Camera, snap.Model.Vertices, st.Viewport, nil)
		f.Lines = Wireframe(snap.Model, proj, st.Viewport.Height)
		ui.Label(layout.Status.X, layout.Status.Y, snap.Path, ui2d.ColorText, ui2d.AlignLeft)
	}
	if snap.Err != nil {
		ui.Label(layout.Error.X, layout.Error.Y, snap.Err.Error(), ui2d.ColorTextError, ui2d.AlignLeft)
	}

	if ui.Button(layout.Open, "Open") {
		f.Actions = append(f.Actions, ActionOpen)
	}
	if ui.Button(layout.Clear, "Clear") {
		f.Actions = append(f.Actions, ActionClear)
	}
	if ui.Button(layout.Projection, "Change Projection") {
		st.Camera.ToggleProjection()
	}
	if ui.Button(layout.ZoomIn, "+") {
		st.Camera.ZoomIn()
	}
	if ui.Button(layout.ZoomOut, "-") {
		st.Camera.ZoomOut()
	}
	p.Clicked = false

	f.UI = ui.End()
	return st, f
}
