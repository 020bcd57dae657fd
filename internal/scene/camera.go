package scene

import (
	"termraster/internal/mathutil"
)

// Camera is a perspective camera. FOV is the vertical field of view in
// degrees.
type Camera struct {
	Eye    mathutil.Vec3 `json:"eye"`
	Target mathutil.Vec3 `json:"target"`
	Up     mathutil.Vec3 `json:"up"`
	FOV    float64       `json:"fov"`
	Near   float64       `json:"near"`
	Far    float64       `json:"far"`
}

// DefaultCamera looks at the origin from +Z.
func DefaultCamera() Camera {
	return Camera{
		Eye:    mathutil.Vec3{0, 0, 3},
		Target: mathutil.Vec3{0, 0, 0},
		Up:     mathutil.Vec3{0, 1, 0},
		FOV:    60,
		Near:   0.1,
		Far:    100,
	}
}

// View returns the world-to-camera matrix.
func (c Camera) View() mathutil.Mat4 {
	return mathutil.LookAt(c.Eye, c.Target, c.Up)
}

// Projection returns the camera-to-clip matrix for the given aspect ratio
// (width over height, in the same physical units).
func (c Camera) Projection(aspect float64) mathutil.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mathutil.Perspective(mathutil.Deg2Rad(c.FOV), aspect, c.Near, c.Far)
}

// SurfaceAspect returns the physical aspect ratio of a w×h cell grid whose
// cells are cellAspect times as wide as they are tall.
func SurfaceAspect(w, h int, cellAspect float64) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	if cellAspect <= 0 {
		cellAspect = 1
	}
	return float64(w) * cellAspect / float64(h)
}
