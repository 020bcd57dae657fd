// Package scene describes what to draw: cell-space triangles and quads, and
// 3D meshes seen through a camera.
package scene

import (
	"sort"

	"termraster/internal/logging"
	"termraster/internal/mathutil"
	"termraster/internal/raster"
)

// Mesh is an indexed triangle mesh in model space. Faces wind
// counter-clockwise seen from outside. Rotation is in degrees per axis.
type Mesh struct {
	Name     string
	Vertices []mathutil.Vec3
	Faces    [][3]int
	Position mathutil.Vec3
	Rotation mathutil.Vec3
	Scale    mathutil.Vec3

	// Lit picks each face's glyph from the scene light. Otherwise every
	// face uses Char.
	Lit  bool
	Char raster.CharacterType
}

// Model returns the model-to-world matrix.
func (m Mesh) Model() mathutil.Mat4 {
	rot := mathutil.Vec3{
		mathutil.Deg2Rad(m.Rotation[0]),
		mathutil.Deg2Rad(m.Rotation[1]),
		mathutil.Deg2Rad(m.Rotation[2]),
	}
	return mathutil.Transform(m.Position, rot, m.Scale)
}

// Scene is everything drawn in one frame, in this order: triangles, quads,
// meshes.
type Scene struct {
	Triangles []raster.Triangle
	Quads     []raster.Quad
	Meshes    []Mesh
	Camera    Camera
	Light     raster.LightConfig
}

// New returns an empty scene with the default camera and light.
func New() *Scene {
	return &Scene{
		Camera: DefaultCamera(),
		Light:  raster.DefaultLightConfig(),
	}
}

// Options control how a scene is drawn.
type Options struct {
	Mode       raster.Mode
	Glyph      raster.CharacterType // for triangles and quads
	CellAspect float64              // cell width over cell height
}

// Draw rasterizes s into fb. Nothing is cleared first.
func (s *Scene) Draw(fb *raster.Framebuffer, opts Options) {
	ch := opts.Glyph.Glyph()
	fb.DrawTriangles(s.Triangles, ch, opts.Mode)
	for _, q := range s.Quads {
		if opts.Mode == raster.ModeWireframe {
			fb.DrawWireframeQuad(q, ch)
		} else {
			fb.DrawFilledQuad(q, ch)
		}
	}

	if len(s.Meshes) == 0 || fb.Width == 0 || fb.Height == 0 {
		return
	}
	dim := mathutil.V2(fb.Width, fb.Height)
	view := s.Camera.View()
	proj := s.Camera.Projection(SurfaceAspect(fb.Width, fb.Height, opts.CellAspect))

	// One painter's pass over every mesh, so nearer meshes cover farther
	// ones regardless of their order in the scene.
	var faces []Face
	for _, m := range s.Meshes {
		mf := Project(m, view, proj, dim, &s.Light)
		logging.Logger().Debug("mesh projected", "mesh", m.Name, "faces", len(mf))
		faces = append(faces, mf...)
	}
	sort.SliceStable(faces, func(i, j int) bool { return faces[i].Depth < faces[j].Depth })

	for _, f := range faces {
		if opts.Mode == raster.ModeWireframe {
			fb.DrawWireframeTriangle(f.Tri, f.Char.Glyph())
		} else {
			fb.DrawFilledTriangle(f.Tri, f.Char.Glyph())
		}
	}
}
