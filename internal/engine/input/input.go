// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// KeyEscape is reported in State.Keys for the Escape key.
const KeyEscape rune = 0x1b

// State is the input gathered by one Update.
type State struct {
	Keys []rune // Typed characters and Escape, in order

	MouseX, MouseY   int  // Last known pointer position
	MouseLeftDown    bool // Left button held
	MouseLeftPressed bool // Left button went down during this Update

	Quit bool
}

// Input turns SDL events into per-frame state. Pointer position and
// button state persist across frames; keys and press edges do not.
type Input struct {
	state State
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		state: State{Keys: make([]rune, 0, 8)},
	}
}

// Update drains pending SDL events without blocking.
// Returns true if the window was closed.
func (i *Input) Update() bool {
	i.state.Keys = i.state.Keys[:0]
	i.state.MouseLeftPressed = false
	i.state.Quit = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.state.Quit = true

		case *sdl.TextInputEvent:
			i.state.Keys = append(i.state.Keys, []rune(e.GetText())...)

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				i.state.Keys = append(i.state.Keys, KeyEscape)
			}

		case *sdl.MouseMotionEvent:
			i.state.MouseX = int(e.X)
			i.state.MouseY = int(e.Y)

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			i.state.MouseX = int(e.X)
			i.state.MouseY = int(e.Y)
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.state.MouseLeftDown = true
				i.state.MouseLeftPressed = true
			} else if e.Type == sdl.MOUSEBUTTONUP {
				i.state.MouseLeftDown = false
			}
		}
	}

	return i.state.Quit
}

// State returns the input from the last Update. Keys is reused by the next
// Update.
func (i *Input) State() State {
	return i.state
}
