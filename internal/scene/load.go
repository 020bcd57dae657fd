package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"termraster/internal/mathutil"
	"termraster/internal/raster"
)

var (
	// ErrBadFace reports a mesh face that indexes a missing vertex.
	ErrBadFace = errors.New("scene: face index out of range")
	// ErrBadShape reports a triangle, quad, point or vertex with the wrong
	// number of components.
	ErrBadShape = errors.New("scene: malformed shape")
	// ErrBadCamera reports a camera whose view or projection is undefined.
	ErrBadCamera = errors.New("scene: degenerate camera")
)

// sceneFile matches the JSON schema of a scene file.
type sceneFile struct {
	Triangles [][][]int       `json:"triangles"`
	Quads     [][][]int       `json:"quads"`
	Camera    json.RawMessage `json:"camera"`
	Light     json.RawMessage `json:"light"`
	Meshes    []meshFile      `json:"meshes"`
}

type lightFile struct {
	Dir       mathutil.Vec3 `json:"dir"`
	Ambient   float64       `json:"ambient"`
	Direct    float64       `json:"direct"`
	Threshold float64       `json:"threshold"`
}

type meshFile struct {
	Name     string         `json:"name"`
	Vertices [][]float64    `json:"vertices"`
	Faces    [][]int        `json:"faces"`
	Position mathutil.Vec3  `json:"position"`
	Rotation mathutil.Vec3  `json:"rotation"`
	Scale    *mathutil.Vec3 `json:"scale"`
	Glyph    string         `json:"glyph"` // "lit" (default), "flat", "shaded"
}

// Load reads a scene JSON file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene from JSON. Camera and light fields left out keep
// their defaults.
func Parse(data []byte) (*Scene, error) {
	var f sceneFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	s := New()
	for i, t := range f.Triangles {
		p, err := points(t, 3)
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		s.Triangles = append(s.Triangles, raster.Triangle{C1: p[0], C2: p[1], C3: p[2]})
	}
	for i, q := range f.Quads {
		p, err := points(q, 4)
		if err != nil {
			return nil, fmt.Errorf("quad %d: %w", i, err)
		}
		s.Quads = append(s.Quads, raster.Quad{C1: p[0], C2: p[1], C3: p[2], C4: p[3]})
	}

	if len(f.Camera) > 0 {
		if err := json.Unmarshal(f.Camera, &s.Camera); err != nil {
			return nil, fmt.Errorf("parse camera: %w", err)
		}
		if err := checkCamera(s.Camera); err != nil {
			return nil, err
		}
	}

	if len(f.Light) > 0 {
		def := raster.DefaultLightConfig()
		lf := lightFile{Dir: def.LightDir, Ambient: def.Ambient, Direct: def.Direct, Threshold: def.Threshold}
		if err := json.Unmarshal(f.Light, &lf); err != nil {
			return nil, fmt.Errorf("parse light: %w", err)
		}
		if lf.Dir.Len() < 1e-12 {
			return nil, errors.New("parse light: zero direction")
		}
		s.Light = raster.LightConfig{
			LightDir:  lf.Dir.Normalize(),
			Ambient:   lf.Ambient,
			Direct:    lf.Direct,
			Threshold: lf.Threshold,
		}
	}

	for i, mf := range f.Meshes {
		m, err := mf.mesh(i)
		if err != nil {
			return nil, err
		}
		s.Meshes = append(s.Meshes, m)
	}
	return s, nil
}

func (mf meshFile) mesh(i int) (Mesh, error) {
	name := mf.Name
	if name == "" {
		name = fmt.Sprintf("mesh%d", i)
	}
	verts := make([]mathutil.Vec3, len(mf.Vertices))
	for vi, v := range mf.Vertices {
		if len(v) != 3 {
			return Mesh{}, fmt.Errorf("%w: mesh %s vertex %d has %d coordinates, want 3", ErrBadShape, name, vi, len(v))
		}
		verts[vi] = mathutil.Vec3{v[0], v[1], v[2]}
	}
	faces := make([][3]int, len(mf.Faces))
	for fi, face := range mf.Faces {
		if len(face) != 3 {
			return Mesh{}, fmt.Errorf("%w: mesh %s face %d has %d indexes, want 3", ErrBadFace, name, fi, len(face))
		}
		for k, vi := range face {
			if vi < 0 || vi >= len(verts) {
				return Mesh{}, fmt.Errorf("%w: mesh %s face %d uses vertex %d of %d", ErrBadFace, name, fi, vi, len(verts))
			}
			faces[fi][k] = vi
		}
	}

	m := Mesh{
		Name:     name,
		Vertices: verts,
		Faces:    faces,
		Position: mf.Position,
		Rotation: mf.Rotation,
		Scale:    mathutil.Vec3{1, 1, 1},
	}
	if mf.Scale != nil {
		m.Scale = *mf.Scale
	}
	switch mf.Glyph {
	case "", "lit":
		m.Lit = true
	default:
		c, err := raster.ParseCharacterType(mf.Glyph)
		if err != nil {
			return Mesh{}, fmt.Errorf("mesh %s: %w", name, err)
		}
		m.Char = c
	}
	return m, nil
}

// points converts a list of [x, y] pairs, requiring exactly n of them.
func points(raw [][]int, n int) ([]raster.Point, error) {
	if len(raw) != n {
		return nil, fmt.Errorf("%w: %d points, want %d", ErrBadShape, len(raw), n)
	}
	pts := make([]raster.Point, n)
	for i, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, want 2", ErrBadShape, i, len(p))
		}
		pts[i] = raster.Point{X: p[0], Y: p[1]}
	}
	return pts, nil
}

// checkCamera rejects cameras that LookAt or Perspective cannot handle.
func checkCamera(c Camera) error {
	view := c.Target.Sub(c.Eye)
	switch {
	case view.Len() < 1e-12:
		return fmt.Errorf("%w: eye equals target", ErrBadCamera)
	case c.Up.Cross(view).Len() < 1e-12:
		return fmt.Errorf("%w: up is parallel to the view direction", ErrBadCamera)
	case !(c.FOV > 0 && c.FOV < 180):
		return fmt.Errorf("%w: fov %v outside (0, 180)", ErrBadCamera, c.FOV)
	case !(c.Near > 0 && c.Far > c.Near):
		return fmt.Errorf("%w: need 0 < near < far, got near %v far %v", ErrBadCamera, c.Near, c.Far)
	}
	return nil
}
