package raster

import (
	"math"

	"termraster/internal/mathutil"
)

// LightConfig holds the single directional light used to pick a glyph per
// face. Lighting is flat (per-face) and double-sided.
type LightConfig struct {
	LightDir  mathutil.Vec3 // unit vector pointing towards the light
	Ambient   float64
	Direct    float64
	Threshold float64 // shades at or above this draw as Flat
}

// DefaultLightConfig returns a key light from above, right and in front.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		LightDir:  mathutil.Vec3{0.4, 0.8, 0.6}.Normalize(),
		Ambient:   0.2,
		Direct:    0.8,
		Threshold: 0.6,
	}
}

// ComputeShade returns the lighting scalar for a unit face normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	// Lambertian (abs for double-sided)
	ndl := math.Abs(normal.Dot(lc.LightDir))
	return lc.Ambient + ndl*lc.Direct
}

// Character picks Flat for well-lit faces and LightlyShaded for the rest.
func (lc *LightConfig) Character(normal mathutil.Vec3) CharacterType {
	if lc.ComputeShade(normal) >= lc.Threshold {
		return Flat
	}
	return LightlyShaded
}

// FaceNormal returns the unit normal of the triangle a, b, c with
// counter-clockwise winding. ok is false for degenerate triangles.
func FaceNormal(a, b, c mathutil.Vec3) (n mathutil.Vec3, ok bool) {
	n = b.Sub(a).Cross(c.Sub(a))
	if n.Len() < 1e-12 {
		return mathutil.Vec3{}, false
	}
	return n.Normalize(), true
}
