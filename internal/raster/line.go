package raster

// DrawLine draws ch on every cell of the Bresenham line from start to end,
// both inclusive. Cells off the buffer are skipped, and steps whose major
// coordinate lies outside the buffer are never visited.
func (fb *Framebuffer) DrawLine(start, end Point, ch rune) {
	dx, dy := end.X-start.X, end.Y-start.Y
	ax, ay := absInt(dx), absInt(dy)
	sx, sy := signInt(dx), signInt(dy)

	if ax >= ay {
		lo, hi := stepRange(start.X, sx, ax, fb.Width)
		for i := lo; i <= hi; i++ {
			fb.Set(Point{X: start.X + sx*i, Y: start.Y + sy*minorOffset(ay, ax, i)}, ch)
		}
		return
	}
	lo, hi := stepRange(start.Y, sy, ay, fb.Height)
	for i := lo; i <= hi; i++ {
		fb.Set(Point{X: start.X + sx*minorOffset(ax, ay, i), Y: start.Y + sy*i}, ch)
	}
}

// minorOffset returns how far the minor axis has moved after i major steps
// of a Bresenham line spanning major by minor cells. This is the integer
// error walk in closed form: round(i·minor/major), halves rounding down.
func minorOffset(minor, major, i int) int {
	if major == 0 {
		return 0
	}
	return (2*minor*i + major) / (2 * major)
}

// stepRange returns the steps i in [0, n] for which p0 + s·i lies in
// [0, size). lo > hi when there are none.
func stepRange(p0, s, n, size int) (lo, hi int) {
	switch s {
	case 1:
		return max(0, -p0), min(n, size-1-p0)
	case -1:
		return max(0, p0-(size-1)), min(n, p0)
	}
	if p0 >= 0 && p0 < size {
		return 0, 0
	}
	return 1, 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func signInt(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
