package viewer

import (
	"github.com/Faultbox/wireview/internal/engine/ui2d"
	"github.com/Faultbox/wireview/pkg/formats"
	"github.com/Faultbox/wireview/pkg/math"
)

// Line is a segment in top-down screen pixels.
type Line struct {
	From, To math.Vec2
}

// Action is a side effect requested by a frame for the driver to carry out.
type Action int

const (
	ActionOpen Action = iota + 1
	ActionClear
	ActionQuit
)

// String returns the action name for logging.
func (a Action) String() string {
	switch a {
	case ActionOpen:
		return "open"
	case ActionClear:
		return "clear"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Frame is everything one step wants drawn, plus requested actions.
type Frame struct {
	Lines   []Line
	UI      ui2d.DrawList
	Actions []Action
}

// Has reports whether the frame requested a.
func (f Frame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Wireframe emits the three edges a-b, b-c, a-c of every triangle, with y
// flipped so that +y points up on screen. Edges touching an invisible
// vertex are skipped.
func Wireframe(m *formats.Model, proj []Projected, height float32) []Line {
	n := m.TriangleCount()
	if n == 0 {
		return nil
	}

	lines := make([]Line, 0, n*3)
	edge := func(i, j int) {
		a, b := proj[i], proj[j]
		if !a.Visible || !b.Visible {
			return
		}
		lines = append(lines, Line{
			From: math.Vec2{X: a.Pos.X, Y: height - a.Pos.Y},
			To:   math.Vec2{X: b.Pos.X, Y: height - b.Pos.Y},
		})
	}

	for t := 0; t < n; t++ {
		a, b, c := m.Triangle(t)
		edge(a, b)
		edge(b, c)
		edge(a, c)
	}
	return lines
}
