package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Faultbox/wireview/internal/engine/ui2d"
)

func isWhite(c *Canvas, x, y int) bool {
	p := c.Image().RGBAAt(x, y)
	return p.R == 255 && p.G == 255 && p.B == 255
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(ui2d.ColorWhite)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if !isWhite(c, x, y) {
				t.Fatalf("pixel (%d,%d) not cleared", x, y)
			}
		}
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float32
	}{
		{"horizontal", 1, 5, 8, 5},
		{"vertical", 3, 1, 3, 9},
		{"diagonal", 0, 0, 9, 9},
		{"steep reversed", 7, 9, 2, 0},
		{"single point", 4, 4, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(10, 10)
			c.Clear(ui2d.ColorBlack)
			c.DrawLine(tt.x1, tt.y1, tt.x2, tt.y2, ui2d.ColorWhite)

			if !isWhite(c, int(tt.x1), int(tt.y1)) {
				t.Error("start point not drawn")
			}
			if !isWhite(c, int(tt.x2), int(tt.y2)) {
				t.Error("end point not drawn")
			}
		})
	}
}

func TestDrawLineHorizontalIsContinuous(t *testing.T) {
	c := NewCanvas(10, 3)
	c.Clear(ui2d.ColorBlack)
	c.DrawLine(0, 1, 9, 1, ui2d.ColorWhite)
	for x := 0; x < 10; x++ {
		if !isWhite(c, x, 1) {
			t.Errorf("gap at x=%d", x)
		}
		if isWhite(c, x, 0) || isWhite(c, x, 2) {
			t.Errorf("line bled off its row at x=%d", x)
		}
	}
}

func TestDrawLineOffscreenIgnored(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(ui2d.ColorBlack)
	c.DrawLine(-5, -5, -1, -1, ui2d.ColorWhite)
	c.DrawLine(0, 0, 1e9, 1e9, ui2d.ColorWhite)
	if isWhite(c, 0, 0) {
		t.Error("expected out-of-range line to be skipped")
	}
}

func TestFillAndStrokeRect(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(ui2d.ColorBlack)
	r := ui2d.Rect{X: 2, Y: 2, W: 10, H: 5}
	c.FillRect(r, ui2d.ColorDarkGray)
	c.StrokeRect(r, ui2d.ColorWhite)

	if !isWhite(c, 2, 2) || !isWhite(c, 11, 6) {
		t.Error("expected border corners to be drawn")
	}
	fill := c.Image().RGBAAt(5, 4)
	if fill.R != 85 {
		t.Errorf("expected dark gray fill, got %v", fill)
	}
	if isWhite(c, 15, 15) {
		t.Error("pixel outside rect was drawn")
	}
}

func TestDrawText(t *testing.T) {
	c := NewCanvas(100, 20)
	c.Clear(ui2d.ColorBlack)
	c.DrawText(50, 10, "Open", ui2d.ColorWhite, ui2d.AlignCenter)

	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 100; x++ {
			if isWhite(c, x, y) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("expected text pixels")
	}
}

func TestScreenshots(t *testing.T) {
	dir := t.TempDir()
	s := NewScreenshots(dir, "wireview")
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	want := filepath.Join(dir, "wireview_2026-01-02_03-04-05.png")
	if got := s.Filename(); got != want {
		t.Errorf("Filename() = %s, want %s", got, want)
	}

	c := NewCanvas(8, 8)
	c.Clear(ui2d.ColorBlack)
	path, err := s.Capture(c.Image())
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("unexpected path %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
}

func TestSavePNGCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "frame.png")
	if err := SavePNG(path, NewCanvas(2, 2).Image()); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file: %v", err)
	}
}
