package raster

import (
	"strings"

	"termraster/internal/logging"
	"termraster/internal/mathutil"
)

// Point is a cell coordinate. Components may go negative while
// rasterizing; such cells are simply outside the buffer.
type Point = mathutil.Vec2[int]

// Framebuffer is a grid of display cells stored as one flat slice,
// row-major: Cells[y*Width+x].
type Framebuffer struct {
	Width  int
	Height int
	Cells  []rune // len = Width*Height
}

// NewFramebuffer allocates a w×h buffer with every cell blank.
// Non-positive dimensions give an empty buffer.
func NewFramebuffer(w, h int) *Framebuffer {
	if w <= 0 || h <= 0 {
		w, h = 0, 0
	}
	fb := &Framebuffer{
		Width:  w,
		Height: h,
		Cells:  make([]rune, w*h),
	}
	fb.Clear()
	logging.Logger().Debug("framebuffer allocated", "width", w, "height", h)
	return fb
}

func (fb *Framebuffer) inBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < fb.Width && p.Y < fb.Height
}

// Get returns the cell at p. ok is false when p lies outside the buffer.
func (fb *Framebuffer) Get(p Point) (r rune, ok bool) {
	if !fb.inBounds(p) {
		return 0, false
	}
	return fb.Cells[p.Y*fb.Width+p.X], true
}

// Set writes r at p. Writes outside the buffer are dropped.
func (fb *Framebuffer) Set(p Point, r rune) {
	if !fb.inBounds(p) {
		return
	}
	fb.Cells[p.Y*fb.Width+p.X] = r
}

// Clear resets every cell to Blank.
func (fb *Framebuffer) Clear() {
	for i := range fb.Cells {
		fb.Cells[i] = Blank
	}
}

// Rows returns a copy of the grid, one slice per row, top to bottom.
func (fb *Framebuffer) Rows() [][]rune {
	rows := make([][]rune, fb.Height)
	for y := 0; y < fb.Height; y++ {
		row := make([]rune, fb.Width)
		for x := 0; x < fb.Width; x++ {
			r, ok := fb.Get(Point{X: x, Y: y})
			if !ok {
				r = Blank
			}
			row[x] = r
		}
		rows[y] = row
	}
	return rows
}

// String returns the grid with every row terminated by a newline.
func (fb *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow((fb.Width + 1) * fb.Height)
	for _, row := range fb.Rows() {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
