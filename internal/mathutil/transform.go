package mathutil

import "math"

// Translation returns the identity with t in the last column.
func Translation(t Vec3) Mat4 {
	m := Mat4Identity()
	m[3] = t[0]
	m[7] = t[1]
	m[11] = t[2]
	return m
}

// Scale returns the identity with s on the first three diagonal entries.
func Scale(s Vec3) Mat4 {
	return FromMat3Translation(Mat3Diag(s[0], s[1], s[2]), Vec3{})
}

// Transform composes a model matrix as T · S · Rz · Rx · Ry.
// rotation holds the per-axis angles in radians. Applied to a point, Ry
// acts first and T last.
func Transform(translation, rotation, scale Vec3) Mat4 {
	m := Mat4Mul(Translation(translation), Scale(scale))
	m = Mat4Mul(m, RotationZ(rotation[2]))
	m = Mat4Mul(m, RotationX(rotation[0]))
	return Mat4Mul(m, RotationY(rotation[1]))
}

// Perspective returns an OpenGL-style right-handed projection matrix.
// fov is the vertical field of view in radians. Clip space w is -z_eye.
func Perspective(fov, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fov/2)
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	}
}

// LookAt builds a view matrix for a camera at eye looking at target.
// The rows of the rotation block are right, up and -forward, so the camera
// ends up at the origin looking down -Z. eye must differ from target and up
// must not be parallel to the viewing direction.
func LookAt(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	r := f.Cross(up).Normalize()
	u := r.Cross(f)

	return Mat4{
		r[0], r[1], r[2], -r.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		-f[0], -f[1], -f[2], f.Dot(eye),
		0, 0, 0, 1,
	}
}
