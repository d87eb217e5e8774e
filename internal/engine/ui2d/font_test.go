package ui2d

import "testing"

func TestFontMeasure(t *testing.T) {
	f := NewFont()
	w, h := f.MeasureText("Open")
	if w != 4*7 {
		t.Errorf("expected width 28 for a 7px face, got %d", w)
	}
	if h != f.LineHeight() || h == 0 {
		t.Errorf("expected line height %d, got %d", f.LineHeight(), h)
	}
}

func TestFontRasterize(t *testing.T) {
	f := NewFont()
	bm := f.Rasterize("+")
	if len(bm.Points) == 0 {
		t.Fatal("expected set pixels for '+'")
	}
	for _, p := range bm.Points {
		if p.X < 0 || p.Y < 0 || p.X >= bm.W || p.Y >= bm.H {
			t.Errorf("pixel %v outside %dx%d box", p, bm.W, bm.H)
		}
	}

	if blank := f.Rasterize(" "); len(blank.Points) != 0 {
		t.Errorf("expected no pixels for a space, got %d", len(blank.Points))
	}
	if empty := f.Rasterize(""); empty.W != 0 || len(empty.Points) != 0 {
		t.Errorf("expected empty bitmap, got %+v", empty)
	}
}

func TestFontCache(t *testing.T) {
	f := NewFont()
	a := f.Rasterize("Clear")
	b := f.Rasterize("Clear")
	if len(a.Points) != len(b.Points) || &a.Points[0] != &b.Points[0] {
		t.Error("expected cached bitmap on second call")
	}
}

func TestOrigin(t *testing.T) {
	tests := []struct {
		name         string
		align        Align
		wantX, wantY int
	}{
		{"left", AlignLeft, 10, 479},
		{"center", AlignCenter, -4, 479},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Origin(10, 485, 28, 12, tt.align)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Origin() = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
