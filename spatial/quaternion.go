package spatial

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is assumed normalised at all times; callers constructing one
// directly are responsible for that invariant (see NewQuaternion).
type Quaternion = quat.Number

// IdentityQuaternion is the neutral rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{Real: 1}
}

// NewQuaternion builds a unit quaternion from raw components, normalising
// defensively; panics if the input is degenerate (zero norm), matching the
// teacher's R4AA.Normalize behavior for a divide-by-zero precondition.
func NewQuaternion(w, x, y, z float64) Quaternion {
	q := Quaternion{Real: w, Imag: x, Jmag: y, Kmag: z}
	n := quat.Abs(q)
	if n == 0 {
		panic("spatial: cannot normalize zero quaternion")
	}
	return quat.Scale(1/n, q)
}

// QuaternionFromEuler builds a unit quaternion from (rx, ry, rz) radians
// using fixed XYZ extrinsic composition: Qz * Qy * Qx applied to the point,
// i.e. the rotation about X is innermost.
func QuaternionFromEuler(rx, ry, rz float64) Quaternion {
	qx := axisRotation(1, 0, 0, rx)
	qy := axisRotation(0, 1, 0, ry)
	qz := axisRotation(0, 0, 1, rz)
	return quat.Mul(qz, quat.Mul(qy, qx))
}

func axisRotation(ax, ay, az, theta float64) Quaternion {
	half := theta / 2
	s := math.Sin(half)
	return Quaternion{Real: math.Cos(half), Imag: ax * s, Jmag: ay * s, Kmag: az * s}
}

// RotateVector rotates v by unit quaternion q: q * v * q^-1, implemented via
// the pure-imaginary sandwich product.
func RotateVector(q Quaternion, v Vector3) Vector3 {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return Vector3{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// MulQuaternion composes two rotations: applying the result to a point is
// equivalent to applying b then a (MulQuaternion(a,b).Rotate(p) == a.Rotate(b.Rotate(p))).
func MulQuaternion(a, b Quaternion) Quaternion {
	return quat.Mul(a, b)
}

// ConjQuaternion returns the inverse rotation of a unit quaternion.
func ConjQuaternion(q Quaternion) Quaternion {
	return quat.Conj(q)
}

// SlerpQuaternion spherically interpolates between two unit quaternions at
// t in [0, 1]; used by retract kinematics to interpolate rotation between
// the retracted and inserted poses.
func SlerpQuaternion(a, b Quaternion, t float64) Quaternion {
	dot := a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
	if dot < 0 {
		b = quat.Scale(-1, b)
		dot = -dot
	}
	const closeThreshold = 1 - 1e-6
	if dot > closeThreshold {
		lerp := quat.Number{
			Real: a.Real + t*(b.Real-a.Real),
			Imag: a.Imag + t*(b.Imag-a.Imag),
			Jmag: a.Jmag + t*(b.Jmag-a.Jmag),
			Kmag: a.Kmag + t*(b.Kmag-a.Kmag),
		}
		return quat.Scale(1/quat.Abs(lerp), lerp)
	}
	theta0 := math.Acos(dot)
	theta := theta0 * t
	sinTheta0 := math.Sin(theta0)
	s1 := math.Sin(theta) / sinTheta0
	s0 := math.Cos(theta) - dot*s1
	return quat.Number{
		Real: s0*a.Real + s1*b.Real,
		Imag: s0*a.Imag + s1*b.Imag,
		Jmag: s0*a.Jmag + s1*b.Jmag,
		Kmag: s0*a.Kmag + s1*b.Kmag,
	}
}

// IsNormalized reports whether q deviates from unit norm by more than the
// module's denormalisation bug threshold (1e-9, per the data model contract).
func IsNormalized(q Quaternion) bool {
	return math.Abs(quat.Abs(q)-1) <= 1e-9
}
