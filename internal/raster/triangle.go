package raster

import (
	"fmt"
	"sort"

	"termraster/internal/logging"
)

// Triangle is three cell-space vertices. Any order and any shape is legal,
// including degenerate ones.
type Triangle struct {
	C1, C2, C3 Point
}

// Quad is four cell-space vertices in perimeter order.
type Quad struct {
	C1, C2, C3, C4 Point
}

// Triangles splits q along the C1–C3 diagonal.
func (q Quad) Triangles() [2]Triangle {
	return [2]Triangle{
		{C1: q.C1, C2: q.C2, C3: q.C3},
		{C1: q.C1, C2: q.C3, C3: q.C4},
	}
}

// Mode selects how triangles are rasterized.
type Mode uint8

const (
	ModeFilled Mode = iota
	ModeWireframe
)

func (m Mode) String() string {
	if m == ModeWireframe {
		return "wireframe"
	}
	return "filled"
}

// ParseMode maps "filled" or "wireframe" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "filled", "fill":
		return ModeFilled, nil
	case "wireframe", "wire":
		return ModeWireframe, nil
	}
	return ModeFilled, fmt.Errorf("raster: unknown mode %q", s)
}

// InterpolateX returns the x at which the edge p0–p1 crosses scanline y,
// truncated to a cell. A horizontal edge yields p0.X.
func InterpolateX(p0, p1 Point, y int) int {
	if p0.Y == p1.Y {
		return p0.X
	}
	t := float64(y-p0.Y) / float64(p1.Y-p0.Y)
	return int(float64(p0.X) + t*float64(p1.X-p0.X))
}

// DrawWireframeTriangle draws the three edges of tri.
func (fb *Framebuffer) DrawWireframeTriangle(tri Triangle, ch rune) {
	fb.DrawLine(tri.C1, tri.C2, ch)
	fb.DrawLine(tri.C2, tri.C3, ch)
	fb.DrawLine(tri.C3, tri.C1, ch)
}

// DrawFilledTriangle fills tri with ch, one scanline at a time.
//
// The vertices are ordered top to bottom as p0, p1, p2. Every scanline is
// bounded by the long edge p0–p2 on one side and, on the other, by p0–p1
// above the middle vertex and p1–p2 from it downward.
func (fb *Framebuffer) DrawFilledTriangle(tri Triangle, ch rune) {
	pts := [3]Point{tri.C1, tri.C2, tri.C3}
	sort.SliceStable(pts[:], func(i, j int) bool { return pts[i].Y < pts[j].Y })
	p0, p1, p2 := pts[0], pts[1], pts[2]

	yStart, yEnd := max(p0.Y, 0), min(p2.Y, fb.Height-1)
	for y := yStart; y <= yEnd; y++ {
		var xa int
		if y < p1.Y {
			xa = InterpolateX(p0, p1, y)
		} else {
			xa = InterpolateX(p1, p2, y)
		}
		xb := InterpolateX(p0, p2, y)
		if xa > xb {
			xa, xb = xb, xa
		}
		fb.fillSpan(y, xa, xb, ch)
	}
}

// fillSpan writes ch on [x0, x1] of row y, clipped to the buffer.
func (fb *Framebuffer) fillSpan(y, x0, x1 int, ch rune) {
	x0, x1 = max(x0, 0), min(x1, fb.Width-1)
	if x0 > x1 {
		return
	}
	row := fb.Cells[y*fb.Width : (y+1)*fb.Width]
	for x := x0; x <= x1; x++ {
		row[x] = ch
	}
}

// DrawTriangleList fills each triangle in order. Later triangles overwrite
// earlier ones where they overlap.
func (fb *Framebuffer) DrawTriangleList(tris []Triangle, ch rune) {
	for _, tri := range tris {
		fb.DrawFilledTriangle(tri, ch)
	}
	logging.Logger().Debug("triangles filled", "count", len(tris))
}

// DrawWireframeTriangleList outlines each triangle in order.
func (fb *Framebuffer) DrawWireframeTriangleList(tris []Triangle, ch rune) {
	for _, tri := range tris {
		fb.DrawWireframeTriangle(tri, ch)
	}
	logging.Logger().Debug("triangles outlined", "count", len(tris))
}

// DrawTriangles draws tris filled or as wireframes depending on mode.
func (fb *Framebuffer) DrawTriangles(tris []Triangle, ch rune, mode Mode) {
	if mode == ModeWireframe {
		fb.DrawWireframeTriangleList(tris, ch)
		return
	}
	fb.DrawTriangleList(tris, ch)
}

// DrawFilledQuad fills q as two triangles.
func (fb *Framebuffer) DrawFilledQuad(q Quad, ch rune) {
	for _, tri := range q.Triangles() {
		fb.DrawFilledTriangle(tri, ch)
	}
}

// DrawWireframeQuad outlines the perimeter of q.
func (fb *Framebuffer) DrawWireframeQuad(q Quad, ch rune) {
	fb.DrawLine(q.C1, q.C2, ch)
	fb.DrawLine(q.C2, q.C3, ch)
	fb.DrawLine(q.C3, q.C4, ch)
	fb.DrawLine(q.C4, q.C1, ch)
}
