package spatial

// Transform is a rigid transform: rotate then translate. Composition is
// non-commutative; Identity() is the neutral element and every transform
// inverts exactly.
type Transform struct {
	translation Vector3
	rotation    Quaternion
}

// Identity returns the neutral transform.
func Identity() Transform {
	return Transform{rotation: IdentityQuaternion()}
}

// NewTransform builds a transform from a translation and unit rotation.
func NewTransform(translation Vector3, rotation Quaternion) Transform {
	return Transform{translation: translation, rotation: rotation}
}

// Translation returns the transform's translation component.
func (t Transform) Translation() Vector3 { return t.translation }

// Rotation returns the transform's rotation component.
func (t Transform) Rotation() Quaternion { return t.rotation }

// Apply rotates then translates p: rotate(p) + translation.
func (t Transform) Apply(p Vector3) Vector3 {
	return RotateVector(t.rotation, p).Add(t.translation)
}

// Compose returns a transform equivalent to applying b then a:
// Compose(a, b).Apply(p) == a.Apply(b.Apply(p)).
func Compose(a, b Transform) Transform {
	return Transform{
		translation: RotateVector(a.rotation, b.translation).Add(a.translation),
		rotation:    MulQuaternion(a.rotation, b.rotation),
	}
}

// Inverse returns the exact inverse transform.
func (t Transform) Inverse() Transform {
	invRot := ConjQuaternion(t.rotation)
	return Transform{
		translation: RotateVector(invRot, t.translation).Mul(-1),
		rotation:    invRot,
	}
}

// LerpTransform linearly interpolates translation and slerps rotation
// between a and b at t in [0, 1], as used by retract kinematics.
func LerpTransform(a, b Transform, t float64) Transform {
	return Transform{
		translation: a.translation.Add(b.translation.Sub(a.translation).Mul(t)),
		rotation:    SlerpQuaternion(a.rotation, b.rotation, t),
	}
}
