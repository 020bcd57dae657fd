package mathutil

import "math"

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type for zero heap allocation.
type Mat3 [9]float64

// Mat3Identity returns the 3×3 identity.
func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Mat3Diag returns a diagonal matrix, i.e. a per-axis scale.
func Mat3Diag(x, y, z float64) Mat3 {
	return Mat3{0: x, 4: y, 8: z}
}

// Mat3Add returns a + b.
func Mat3Add(a, b Mat3) Mat3 {
	var m Mat3
	for i := range m {
		m[i] = a[i] + b[i]
	}
	return m
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// MulVec3 returns m·v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	var out Vec3
	for r := 0; r < 3; r++ {
		out[r] = m[r*3]*v[0] + m[r*3+1]*v[1] + m[r*3+2]*v[2]
	}
	return out
}

// Det returns the determinant, expanded along the first row.
func (m Mat3) Det() float64 {
	minor := func(a, b, c, d int) float64 { return m[a]*m[d] - m[b]*m[c] }
	return m[0]*minor(4, 5, 7, 8) - m[1]*minor(3, 5, 6, 8) + m[2]*minor(3, 4, 6, 7)
}

// Inverse returns the inverse of m from its adjugate. ok is false, and the
// result zero, when m is singular.
func (m Mat3) Inverse() (inv Mat3, ok bool) {
	d := m.Det()
	if d == 0 || math.IsNaN(d) {
		return Mat3{}, false
	}
	adj := Mat3{
		m[4]*m[8] - m[5]*m[7], m[2]*m[7] - m[1]*m[8], m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8], m[0]*m[8] - m[2]*m[6], m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6], m[1]*m[6] - m[0]*m[7], m[0]*m[4] - m[1]*m[3],
	}
	for i := range adj {
		inv[i] = adj[i] / d
	}
	return inv, true
}

// Transpose swaps rows and columns.
func (m Mat3) Transpose() Mat3 {
	var t Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			t[c*3+r] = m[r*3+c]
		}
	}
	return t
}
