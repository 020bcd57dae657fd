package raster

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pt(x, y int) Point { return Point{X: x, Y: y} }

func TestInterpolateX(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 Point
		y      int
		want   int
	}{
		{"at p0", pt(2, 1), pt(10, 9), 1, 2},
		{"at p1", pt(2, 1), pt(10, 9), 9, 10},
		{"midway", pt(0, 0), pt(8, 4), 2, 4},
		{"truncates", pt(0, 0), pt(5, 3), 1, 1},
		{"leftward edge", pt(50, 6), pt(30, 18), 12, 40},
		{"horizontal returns p0.X", pt(7, 3), pt(1, 3), 3, 7},
		{"horizontal off row", pt(7, 3), pt(1, 3), 99, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InterpolateX(tt.p0, tt.p1, tt.y); got != tt.want {
				t.Errorf("InterpolateX(%v, %v, %d) = %d, want %d", tt.p0, tt.p1, tt.y, got, tt.want)
			}
		})
	}
}

func TestInterpolateXEndpoints(t *testing.T) {
	for _, seg := range [][2]Point{
		{pt(0, 0), pt(13, 7)},
		{pt(40, 2), pt(3, 19)},
		{pt(9, 30), pt(9, 1)},
		{pt(100, 5), pt(0, 6)},
	} {
		p0, p1 := seg[0], seg[1]
		if got := InterpolateX(p0, p1, p0.Y); got != p0.X {
			t.Errorf("at p0.Y: %d, want %d", got, p0.X)
		}
		if got := InterpolateX(p0, p1, p1.Y); got != p1.X {
			t.Errorf("at p1.Y: %d, want %d", got, p1.X)
		}
	}
}

func TestDrawFilledRightTriangle(t *testing.T) {
	fb := NewFramebuffer(6, 6)
	fb.DrawFilledTriangle(Triangle{C1: pt(0, 0), C2: pt(4, 0), C3: pt(0, 4)}, '#')

	want := []string{
		"#####.",
		"####..",
		"###...",
		"##....",
		"#.....",
		"......",
	}
	if diff := cmp.Diff(want, grid(fb)); diff != "" {
		t.Errorf("fill (-want +got):\n%s", diff)
	}
}

func TestDrawFilledTriangleVertexOrderIrrelevant(t *testing.T) {
	a, b, c := pt(1, 1), pt(9, 3), pt(4, 8)
	orders := []Triangle{
		{C1: a, C2: b, C3: c},
		{C1: c, C2: a, C3: b},
		{C1: b, C2: c, C3: a},
		{C1: c, C2: b, C3: a},
	}
	ref := NewFramebuffer(12, 10)
	ref.DrawFilledTriangle(orders[0], '#')
	for _, tri := range orders[1:] {
		fb := NewFramebuffer(12, 10)
		fb.DrawFilledTriangle(tri, '#')
		if diff := cmp.Diff(grid(ref), grid(fb)); diff != "" {
			t.Errorf("order %v differs (-ref +got):\n%s", tri, diff)
		}
	}
}

func TestDrawFilledTriangleKnee(t *testing.T) {
	// Middle vertex on the left; below it the left edge must follow p1–p2.
	fb := NewFramebuffer(10, 9)
	fb.DrawFilledTriangle(Triangle{C1: pt(4, 0), C2: pt(0, 4), C3: pt(8, 8)}, '#')

	for y := 5; y <= 8; y++ {
		left := InterpolateX(pt(0, 4), pt(8, 8), y)
		if left > 0 {
			if r, _ := fb.Get(pt(left-1, y)); r != Blank {
				t.Errorf("row %d: cell %d filled left of edge p1–p2", y, left-1)
			}
		}
		if r, _ := fb.Get(pt(left, y)); r != '#' {
			t.Errorf("row %d: cell %d not filled", y, left)
		}
	}
	if r, _ := fb.Get(pt(8, 8)); r != '#' {
		t.Error("bottom vertex not filled")
	}
	if r, _ := fb.Get(pt(0, 8)); r != Blank {
		t.Error("cell (0,8) outside the triangle was filled")
	}
}

func TestDrawFilledTriangleDegenerate(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
		want int
	}{
		{"single point", Triangle{C1: pt(5, 5), C2: pt(5, 5), C3: pt(5, 5)}, 1},
		{"horizontal line", Triangle{C1: pt(2, 3), C2: pt(7, 3), C3: pt(4, 3)}, 6},
		{"vertical line", Triangle{C1: pt(4, 1), C2: pt(4, 6), C3: pt(4, 3)}, 6},
		{"collinear diagonal", Triangle{C1: pt(0, 0), C2: pt(3, 3), C3: pt(6, 6)}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFramebuffer(10, 10)
			fb.DrawFilledTriangle(tt.tri, '#')
			if got := countGlyph(fb, '#'); got != tt.want {
				t.Errorf("filled %d cells, want %d\n%s", got, tt.want, fb)
			}
		})
	}
}

func TestDrawFilledTriangleSinglePoint(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.DrawFilledTriangle(Triangle{C1: pt(5, 5), C2: pt(5, 5), C3: pt(5, 5)}, '#')
	if r, _ := fb.Get(pt(5, 5)); r != '#' {
		t.Errorf("cell (5,5) = %q", r)
	}
}

func TestDrawFilledTriangleOffBuffer(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.DrawFilledTriangle(Triangle{C1: pt(-20, -20), C2: pt(30, -5), C3: pt(4, 40)}, '#')
	if countGlyph(fb, '#') == 0 {
		t.Error("partly visible triangle drew nothing")
	}

	far := NewFramebuffer(8, 8)
	far.DrawFilledTriangle(Triangle{C1: pt(100, 100), C2: pt(120, 100), C3: pt(100, 130)}, '#')
	if n := countGlyph(far, '#'); n != 0 {
		t.Errorf("off-buffer triangle filled %d cells", n)
	}
}

func TestSampleTrianglesStayInRectangle(t *testing.T) {
	fb := NewFramebuffer(80, 24)
	fb.DrawTriangleList([]Triangle{
		{C1: pt(30, 6), C2: pt(30, 18), C3: pt(50, 18)},
		{C1: pt(30, 18), C2: pt(50, 6), C3: pt(50, 18)},
	}, '#')

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, _ := fb.Get(pt(x, y))
			inside := x >= 30 && x <= 50 && y >= 6 && y <= 18
			if r == '#' && !inside {
				t.Fatalf("cell (%d,%d) filled outside x∈[30,50], y∈[6,18]", x, y)
			}
		}
	}
	for x := 30; x <= 50; x++ {
		if r, _ := fb.Get(pt(x, 18)); r != '#' {
			t.Errorf("bottom row gap at x=%d", x)
		}
	}
	for y := 6; y <= 18; y++ {
		for _, x := range []int{30, 50} {
			if r, _ := fb.Get(pt(x, y)); r != '#' {
				t.Errorf("side column gap at (%d,%d)", x, y)
			}
		}
	}
}

func TestTiledRectangleHasNoGaps(t *testing.T) {
	fb := NewFramebuffer(80, 24)
	fb.DrawTriangleList([]Triangle{
		{C1: pt(30, 6), C2: pt(50, 6), C3: pt(30, 18)},
		{C1: pt(50, 6), C2: pt(50, 18), C3: pt(30, 18)},
	}, '#')

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, _ := fb.Get(pt(x, y))
			inside := x >= 30 && x <= 50 && y >= 6 && y <= 18
			if inside != (r == '#') {
				t.Fatalf("cell (%d,%d) = %q, inside=%v", x, y, r, inside)
			}
		}
	}
}

func TestDrawTriangleListPainterOrder(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	big := Triangle{C1: pt(0, 0), C2: pt(7, 0), C3: pt(0, 7)}
	small := Triangle{C1: pt(0, 0), C2: pt(2, 0), C3: pt(0, 2)}

	fb.DrawTriangleList([]Triangle{big}, '#')
	fb.DrawTriangleList([]Triangle{small}, '@')
	if r, _ := fb.Get(pt(1, 0)); r != '@' {
		t.Errorf("later triangle did not overwrite: %q", r)
	}
	if r, _ := fb.Get(pt(5, 0)); r != '#' {
		t.Errorf("earlier triangle lost outside overlap: %q", r)
	}
}

func TestDrawFilledQuad(t *testing.T) {
	fb := NewFramebuffer(6, 5)
	fb.DrawFilledQuad(Quad{C1: pt(1, 1), C2: pt(4, 1), C3: pt(4, 3), C4: pt(1, 3)}, '#')
	want := []string{
		"......",
		".####.",
		".####.",
		".####.",
		"......",
	}
	if diff := cmp.Diff(want, grid(fb)); diff != "" {
		t.Errorf("quad (-want +got):\n%s", diff)
	}
}

func TestDrawWireframeQuad(t *testing.T) {
	fb := NewFramebuffer(6, 5)
	fb.DrawWireframeQuad(Quad{C1: pt(1, 1), C2: pt(4, 1), C3: pt(4, 3), C4: pt(1, 3)}, '#')
	want := []string{
		"......",
		".####.",
		".#..#.",
		".####.",
		"......",
	}
	if diff := cmp.Diff(want, grid(fb)); diff != "" {
		t.Errorf("quad outline (-want +got):\n%s", diff)
	}
}

func TestDrawTrianglesMode(t *testing.T) {
	tri := []Triangle{{C1: pt(0, 0), C2: pt(6, 0), C3: pt(0, 6)}}

	filled := NewFramebuffer(8, 8)
	filled.DrawTriangles(tri, '#', ModeFilled)
	wire := NewFramebuffer(8, 8)
	wire.DrawTriangles(tri, '#', ModeWireframe)

	if r, _ := wire.Get(pt(1, 1)); r != Blank {
		t.Errorf("wireframe interior filled: %q", r)
	}
	if r, _ := filled.Get(pt(1, 1)); r != '#' {
		t.Errorf("filled interior blank: %q", r)
	}
	if countGlyph(wire, '#') >= countGlyph(filled, '#') {
		t.Error("wireframe drew at least as many cells as fill")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeFilled, false},
		{"filled", ModeFilled, false},
		{"wireframe", ModeWireframe, false},
		{"wire", ModeWireframe, false},
		{"dots", ModeFilled, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func countGlyph(fb *Framebuffer, r rune) int {
	n := 0
	for _, c := range fb.Cells {
		if c == r {
			n++
		}
	}
	return n
}
