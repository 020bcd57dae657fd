package scene

import (
	"fmt"
	"sort"

	"termraster/internal/mathutil"
	"termraster/internal/raster"
)

// Sample returns the two demo triangles drawn when no scene is given.
func Sample() *Scene {
	s := New()
	s.Triangles = []raster.Triangle{
		{C1: raster.Point{X: 30, Y: 6}, C2: raster.Point{X: 30, Y: 18}, C3: raster.Point{X: 50, Y: 18}},
		{C1: raster.Point{X: 30, Y: 18}, C2: raster.Point{X: 50, Y: 6}, C3: raster.Point{X: 50, Y: 18}},
	}
	return s
}

// Cube returns an axis-aligned cube of the given edge length centered on
// the origin, lit by the scene light.
func Cube(size float64) Mesh {
	h := size / 2
	verts := []mathutil.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h}, // back
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}, // front
	}
	faces := [][3]int{
		{4, 5, 6}, {4, 6, 7}, // +Z
		{1, 0, 3}, {1, 3, 2}, // -Z
		{5, 1, 2}, {5, 2, 6}, // +X
		{0, 4, 7}, {0, 7, 3}, // -X
		{7, 6, 2}, {7, 2, 3}, // +Y
		{0, 1, 5}, {0, 5, 4}, // -Y
	}
	return Mesh{
		Name:     "cube",
		Vertices: verts,
		Faces:    faces,
		Scale:    mathutil.Vec3{1, 1, 1},
		Lit:      true,
	}
}

var builtins = map[string]func() *Scene{
	"triangles": Sample,
	"cube": func() *Scene {
		s := New()
		c := Cube(1.2)
		c.Rotation = mathutil.Vec3{25, 35, 0}
		s.Meshes = []Mesh{c}
		return s
	},
}

// Builtin returns the named built-in scene.
func Builtin(name string) (*Scene, error) {
	f, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown built-in %q (have %v)", name, BuiltinNames())
	}
	return f(), nil
}

// BuiltinNames lists the built-in scenes in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
