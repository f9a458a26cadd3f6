package spatial

import "math"

// SixAxis is the stage's 6-DOF pose: (x, y, z, rx, ry, rz), angles in
// radians. The zero value is the identity pose.
type SixAxis struct {
	X, Y, Z    float64
	RX, RY, RZ float64
}

// NewSixAxis builds a SixAxis pose, rejecting NaN components.
func NewSixAxis(x, y, z, rx, ry, rz float64) (SixAxis, error) {
	if isNaN3(x, y, z) || isNaN3(rx, ry, rz) {
		return SixAxis{}, errNaN("NewSixAxis")
	}
	return SixAxis{X: x, Y: y, Z: z, RX: rx, RY: ry, RZ: rz}, nil
}

// Translation returns the translation components as a Vector3.
func (s SixAxis) Translation() Vector3 { return Vector3{X: s.X, Y: s.Y, Z: s.Z} }

// Rotation returns the rotation components as a Vector3 (radians).
func (s SixAxis) Rotation() Vector3 { return Vector3{X: s.RX, Y: s.RY, Z: s.RZ} }

// WithTranslation returns a copy of s with the translation replaced.
func (s SixAxis) WithTranslation(v Vector3) SixAxis {
	s.X, s.Y, s.Z = v.X, v.Y, v.Z
	return s
}

// WithRotation returns a copy of s with the rotation replaced.
func (s SixAxis) WithRotation(v Vector3) SixAxis {
	s.RX, s.RY, s.RZ = v.X, v.Y, v.Z
	return s
}

// Sub returns the component-wise difference s - o.
func (s SixAxis) Sub(o SixAxis) SixAxis {
	return SixAxis{s.X - o.X, s.Y - o.Y, s.Z - o.Z, s.RX - o.RX, s.RY - o.RY, s.RZ - o.RZ}
}

// Add returns the component-wise sum s + o.
func (s SixAxis) Add(o SixAxis) SixAxis {
	return SixAxis{s.X + o.X, s.Y + o.Y, s.Z + o.Z, s.RX + o.RX, s.RY + o.RY, s.RZ + o.RZ}
}

// AlmostEqual reports whether s and o are equal within Epsilon per axis.
func (s SixAxis) AlmostEqual(o SixAxis) bool {
	return AlmostEqual(s.Translation(), o.Translation()) && AlmostEqual(s.Rotation(), o.Rotation())
}

// Step returns the per-axis increment from s toward target: the remaining
// difference where it is within stepSize, otherwise stepSize with the
// difference's sign, and zero on axes whose stepSize is not positive. Used
// by the stage's linear resolver.
func (s SixAxis) Step(target SixAxis, stepSize SixAxis) SixAxis {
	step := func(from, to, sz float64) float64 {
		if sz <= 0 {
			return 0
		}
		d := to - from
		if math.Abs(d) <= sz {
			return d
		}
		if d > 0 {
			return sz
		}
		return -sz
	}
	return SixAxis{
		X:  step(s.X, target.X, stepSize.X),
		Y:  step(s.Y, target.Y, stepSize.Y),
		Z:  step(s.Z, target.Z, stepSize.Z),
		RX: step(s.RX, target.RX, stepSize.RX),
		RY: step(s.RY, target.RY, stepSize.RY),
		RZ: step(s.RZ, target.RZ, stepSize.RZ),
	}
}
