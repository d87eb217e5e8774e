// Package headless provides a windowless viewer.Presentation that replays
// scripted input and records what was drawn.
package headless

import (
	"sync"

	"github.com/Faultbox/wireview/internal/engine/debug"
	"github.com/Faultbox/wireview/internal/engine/ui2d"
	"github.com/Faultbox/wireview/internal/viewer"
)

// Segment is a recorded DrawLine call.
type Segment struct {
	X1, Y1, X2, Y2 float32
}

// Text is a recorded DrawText call.
type Text struct {
	X, Y  float32
	Text  string
	Align ui2d.Align
}

// Presentation records draw calls per frame.
type Presentation struct {
	// Script is consumed one entry per PollInput. Once empty, PollInput
	// returns idle input, or Quit when QuitWhenDone is set.
	Script       []viewer.Input
	QuitWhenDone bool

	// Picks are returned by successive PickFile calls; when exhausted
	// PickFile reports viewer.ErrPickCancelled.
	Picks []string

	// Frames holds the draw calls of every presented frame.
	Frames []FrameRecord

	// Canvas, when set, also receives every draw call so the last frame
	// can be saved as an image.
	Canvas *debug.Canvas

	mu      sync.Mutex
	current FrameRecord
	picked  int
}

// FrameRecord is what one frame drew.
type FrameRecord struct {
	Lines []Segment
	Rects []ui2d.Rect
	Texts []Text
}

// New creates a presentation that replays script and then quits.
func New(script ...viewer.Input) *Presentation {
	return &Presentation{Script: script, QuitWhenDone: true}
}

// PollInput implements viewer.Presentation.
func (p *Presentation) PollInput() viewer.Input {
	if len(p.Script) == 0 {
		return viewer.Input{Quit: p.QuitWhenDone}
	}
	in := p.Script[0]
	p.Script = p.Script[1:]
	return in
}

// Clear starts a new frame record.
func (p *Presentation) Clear(c ui2d.Color) {
	p.current = FrameRecord{}
	if p.Canvas != nil {
		p.Canvas.Clear(c)
	}
}

// DrawLine implements viewer.Presentation.
func (p *Presentation) DrawLine(x1, y1, x2, y2 float32, c ui2d.Color) {
	p.current.Lines = append(p.current.Lines, Segment{x1, y1, x2, y2})
	if p.Canvas != nil {
		p.Canvas.DrawLine(x1, y1, x2, y2, c)
	}
}

// FillRect implements ui2d.Canvas.
func (p *Presentation) FillRect(r ui2d.Rect, c ui2d.Color) {
	p.current.Rects = append(p.current.Rects, r)
	if p.Canvas != nil {
		p.Canvas.FillRect(r, c)
	}
}

// StrokeRect implements ui2d.Canvas. Outlines are not recorded separately.
func (p *Presentation) StrokeRect(r ui2d.Rect, c ui2d.Color) {
	if p.Canvas != nil {
		p.Canvas.StrokeRect(r, c)
	}
}

// DrawText implements ui2d.Canvas.
func (p *Presentation) DrawText(x, y float32, text string, c ui2d.Color, align ui2d.Align) {
	p.current.Texts = append(p.current.Texts, Text{x, y, text, align})
	if p.Canvas != nil {
		p.Canvas.DrawText(x, y, text, c, align)
	}
}

// Present closes the current frame record.
func (p *Presentation) Present() {
	p.Frames = append(p.Frames, p.current)
	p.current = FrameRecord{}
}

// PickFile implements viewer.Presentation.
func (p *Presentation) PickFile() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.picked >= len(p.Picks) {
		return "", viewer.ErrPickCancelled
	}
	path := p.Picks[p.picked]
	p.picked++
	return path, nil
}

// PickCount returns how many times PickFile was called successfully.
func (p *Presentation) PickCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.picked
}

// Last returns the most recent frame record.
func (p *Presentation) Last() FrameRecord {
	if len(p.Frames) == 0 {
		return FrameRecord{}
	}
	return p.Frames[len(p.Frames)-1]
}
