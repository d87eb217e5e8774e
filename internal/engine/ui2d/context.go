// Package ui2d is a tiny immediate-mode widget layer. Widgets are
// evaluated against one frame of input and recorded into a DrawList that
// any Canvas can replay.
package ui2d

// Align is horizontal text alignment. Text is always vertically centered
// on its anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Rect is an axis-aligned rectangle in top-down pixel coordinates.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies strictly inside r.
func (r Rect) Contains(x, y float32) bool {
	return x > r.X && y > r.Y && x < r.X+r.W && y < r.Y+r.H
}

// RectCmd draws a filled rectangle with a one-pixel border.
type RectCmd struct {
	Rect   Rect
	Fill   Color
	Border Color
}

// TextCmd draws a single line of text anchored at (X, Y).
type TextCmd struct {
	X, Y  float32
	Text  string
	Color Color
	Align Align
}

// DrawList is the recorded output of one UI frame, in draw order.
type DrawList struct {
	Rects []RectCmd
	Texts []TextCmd
}

// Canvas is what a DrawList is replayed onto.
type Canvas interface {
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color)
	DrawText(x, y float32, text string, c Color, align Align)
}

// Render replays the list: every rectangle first, then every label, so
// labels are never covered by a later button.
func (d DrawList) Render(c Canvas) {
	for _, r := range d.Rects {
		c.FillRect(r.Rect, r.Fill)
		c.StrokeRect(r.Rect, r.Border)
	}
	for _, t := range d.Texts {
		c.DrawText(t.X, t.Y, t.Text, t.Color, t.Align)
	}
}

// Context evaluates widgets for a single frame.
type Context struct {
	input InputState
	list  DrawList
}

// NewContext starts a UI frame over the given input.
func NewContext(in InputState) *Context {
	return &Context{input: in}
}

// Button draws a labelled button and reports whether it was clicked this frame.
func (c *Context) Button(r Rect, label string) bool {
	c.list.Rects = append(c.list.Rects, RectCmd{
		Rect:   r,
		Fill:   ColorButtonFill,
		Border: ColorButtonBorder,
	})
	c.list.Texts = append(c.list.Texts, TextCmd{
		X:     r.X + r.W/2,
		Y:     r.Y + r.H/2,
		Text:  label,
		Color: ColorText,
		Align: AlignCenter,
	})

	return c.input.Clicked && r.Contains(c.input.MouseX, c.input.MouseY)
}

// Label draws text anchored at (x, y).
func (c *Context) Label(x, y float32, text string, color Color, align Align) {
	c.list.Texts = append(c.list.Texts, TextCmd{X: x, Y: y, Text: text, Color: color, Align: align})
}

// End finishes the frame and returns what was drawn.
func (c *Context) End() DrawList {
	return c.list
}
