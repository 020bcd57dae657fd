package mathutil

// minW is the smallest clip-space w a vertex may have and still be
// projected. Anything at or behind the eye has w <= 0.
const minW = 1e-9

// ToTerminalCoordinates maps a unit-space point (x rightward, y upward, both
// nominally in [0,1]) to a cell in a grid of the given dimensions. Rows grow
// downward, so y is flipped. Out-of-range input saturates at the edges.
func ToTerminalCoordinates(p Vec2[float64], dim Vec2[int]) Vec2[int] {
	return Vec2[int]{
		X: clampCell(p.X*float64(dim.X), dim.X),
		Y: clampCell((1-p.Y)*float64(dim.Y), dim.Y),
	}
}

// clampCell truncates v to a cell index in [0, n). NaN maps to 0.
func clampCell(v float64, n int) int {
	if n <= 0 || !(v >= 0) {
		return 0
	}
	if v > float64(n-1) {
		return n - 1
	}
	return int(v)
}

// NDCToUnit maps normalized device coordinates in [-1,1] to [0,1].
func NDCToUnit(ndc Vec2[float64]) Vec2[float64] {
	return Vec2[float64]{X: (ndc.X + 1) / 2, Y: (ndc.Y + 1) / 2}
}

// ProjectToPixel transforms v by the combined model-view-projection matrix,
// divides by w and maps the result into a grid of the given dimensions.
// It reports false when v is at or behind the eye.
func ProjectToPixel(mvp Mat4, v Vec3, dim Vec2[int]) (Vec2[int], bool) {
	p, w := mvp.MulVec4(v)
	if w <= minW {
		return Vec2[int]{}, false
	}
	ndc := Vec2[float64]{X: p[0] / w, Y: p[1] / w}
	return ToTerminalCoordinates(NDCToUnit(ndc), dim), true
}
