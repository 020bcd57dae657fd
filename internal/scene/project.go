package scene

import (
	"sort"

	"termraster/internal/logging"
	"termraster/internal/mathutil"
	"termraster/internal/raster"
)

// Face is one projected mesh triangle ready to draw.
type Face struct {
	Tri   raster.Triangle
	Char  raster.CharacterType
	Depth float64 // mean camera-space z; more negative is farther away
}

// Project transforms every face of m into cell space on a dim-sized grid.
// Faces with a vertex at or behind the eye, or with an index outside
// m.Vertices, are dropped. The result is
// ordered far to near so drawing it in order paints nearer faces last.
func Project(m Mesh, view, proj mathutil.Mat4, dim mathutil.Vec2[int], light *raster.LightConfig) []Face {
	model := m.Model()
	normals, haveNormals := model.NormalMatrix()
	mv := mathutil.Mat4Mul(view, model)
	mvp := mathutil.Mat4Mul(proj, mv)

	faces := make([]Face, 0, len(m.Faces))
	dropped := 0
	for _, f := range m.Faces {
		var pix [3]raster.Point
		var local [3]mathutil.Vec3
		depth := 0.0
		visible := true
		for k, vi := range f {
			if vi < 0 || vi >= len(m.Vertices) {
				visible = false
				break
			}
			v := m.Vertices[vi]
			p, ok := mathutil.ProjectToPixel(mvp, v, dim)
			if !ok {
				visible = false
				break
			}
			pix[k] = p
			local[k] = v
			depth += mv.MulPoint(v)[2]
		}
		if !visible {
			dropped++
			continue
		}

		char := m.Char
		if m.Lit && light != nil {
			if n, ok := worldNormal(model, normals, haveNormals, local); ok {
				char = light.Character(n)
			}
		}
		faces = append(faces, Face{
			Tri:   raster.Triangle{C1: pix[0], C2: pix[1], C3: pix[2]},
			Char:  char,
			Depth: depth / 3,
		})
	}
	if dropped > 0 {
		logging.Logger().Warn("faces dropped", "mesh", m.Name, "count", dropped)
	}

	sort.SliceStable(faces, func(i, j int) bool { return faces[i].Depth < faces[j].Depth })
	return faces
}

// worldNormal returns the unit world-space normal of a model-space face.
// It goes through the normal matrix, and falls back to the transformed
// vertices when the model matrix is singular.
func worldNormal(model mathutil.Mat4, normals mathutil.Mat3, haveNormals bool, v [3]mathutil.Vec3) (mathutil.Vec3, bool) {
	if !haveNormals {
		return raster.FaceNormal(model.MulPoint(v[0]), model.MulPoint(v[1]), model.MulPoint(v[2]))
	}
	n, ok := raster.FaceNormal(v[0], v[1], v[2])
	if !ok {
		return mathutil.Vec3{}, false
	}
	return normals.MulVec3(n).Normalize(), true
}
