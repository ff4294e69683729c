package math

// Transform is a translation, rotation and scale applied in S, R, T order.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// NewTransform returns a transform at position with no rotation and unit scale.
func NewTransform(position Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: QuatIdentity(),
		Scale:    Vec3{1, 1, 1},
	}
}

// ToWorld maps a point from the transform's local space into world space.
func (t Transform) ToWorld(local Vec3) Vec3 {
	return t.Rotation.Rotate(local.Mul(t.Scale)).Add(t.Position)
}

// ToLocal maps a world-space point into the transform's local space.
// Zero scale components produce Inf/NaN on that axis.
func (t Transform) ToLocal(world Vec3) Vec3 {
	return t.Rotation.Conjugate().Rotate(world.Sub(t.Position)).Div(t.Scale)
}

// Matrix returns the equivalent local-to-world matrix T * R * S.
func (t Transform) Matrix() Mat4 {
	return Translate(t.Position).Mul(t.Rotation.ToMat4()).Mul(Scale(t.Scale))
}
