// Package spatial implements the numerical core: vectors, quaternions,
// rigid transforms, axis-aligned boxes, triangles and meshes, all operating
// in the fixed world frame shared by a single chamber.
package spatial

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the module's default tolerance. AABB containment and overlap
// tests widen the box by it, so boundary contact counts as overlap;
// AlmostEqual below uses it as a symmetric absolute-or-relative tolerance.
const Epsilon = 1e-9

// Vector3 is an alias for the r3.Vector representation used throughout
// this module; kept as a named type so call sites read as domain code
// rather than bare geo/r3 usage.
type Vector3 = r3.Vector

// NewVector3 builds a Vector3, rejecting NaN components.
func NewVector3(x, y, z float64) (Vector3, error) {
	if isNaN3(x, y, z) {
		return Vector3{}, errNaN("NewVector3")
	}
	return Vector3{X: x, Y: y, Z: z}, nil
}

func isNaN3(x, y, z float64) bool {
	return math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z)
}

// AlmostEqual reports whether two vectors are equal within Epsilon per axis.
func AlmostEqual(a, b Vector3) bool {
	return scalar.EqualWithinAbsOrRel(a.X, b.X, Epsilon, Epsilon) &&
		scalar.EqualWithinAbsOrRel(a.Y, b.Y, Epsilon, Epsilon) &&
		scalar.EqualWithinAbsOrRel(a.Z, b.Z, Epsilon, Epsilon)
}

func errNaN(where string) error {
	return &domainError{where: where, msg: "NaN is not a valid component"}
}

type domainError struct {
	where string
	msg   string
}

func (e *domainError) Error() string { return e.where + ": " + e.msg }
