package math

// Mat4 is an affine 4x4 matrix in column-major order.
// Element m[col*4+row]; the translation lives in m[12..14].
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

// Scale returns a scale matrix.
func Scale(v Vec3) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = v.X, v.Y, v.Z
	return m
}

// Mul returns m * other, so other is applied to points first.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// TransformPoint maps p as a point (w=1). The bottom row is assumed to be
// 0,0,0,1, which holds for every matrix built in this package.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

// TransformPoints maps every point of src into dst and returns dst[:len(src)].
// dst is grown when too short.
func (m Mat4) TransformPoints(dst, src []Vec3) []Vec3 {
	if cap(dst) < len(src) {
		dst = make([]Vec3, len(src))
	}
	dst = dst[:len(src)]
	for i, p := range src {
		dst[i] = m.TransformPoint(p)
	}
	return dst
}
