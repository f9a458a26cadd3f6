package spatial

// Triangle holds three world-space vertices plus a cached face normal.
// The normal is computed by NewTriangle (and so by Transformed, which
// builds a new triangle); assigning P0, P1 or P2 directly does not update
// it. This module never mutates a triangle after construction.
type Triangle struct {
	P0, P1, P2 Vector3
	normal     Vector3
}

// NewTriangle builds a triangle and its cached normal.
func NewTriangle(p0, p1, p2 Vector3) Triangle {
	return Triangle{P0: p0, P1: p1, P2: p2, normal: planeNormal(p0, p1, p2)}
}

func planeNormal(p0, p1, p2 Vector3) Vector3 {
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Norm() < Epsilon {
		return Vector3{}
	}
	return n.Normalize()
}

// Normal returns the cached face normal.
func (t Triangle) Normal() Vector3 { return t.normal }

// Centroid returns the triangle's centroid, used as the sort key for BVH
// construction.
func (t Triangle) Centroid() Vector3 {
	return t.P0.Add(t.P1).Add(t.P2).Mul(1.0 / 3.0)
}

// Points returns the three vertices in winding order.
func (t Triangle) Points() [3]Vector3 {
	return [3]Vector3{t.P0, t.P1, t.P2}
}

// Transformed returns a copy of the triangle with its vertices (and
// therefore normal) carried through a rigid transform.
func (t Triangle) Transformed(tr Transform) Triangle {
	return NewTriangle(tr.Apply(t.P0), tr.Apply(t.P1), tr.Apply(t.P2))
}

// IsDegenerate reports whether the triangle has (numerically) zero area;
// degenerate triangles are tolerated by the collision engine and always
// treated as non-colliding.
func (t Triangle) IsDegenerate() bool {
	return t.P1.Sub(t.P0).Cross(t.P2.Sub(t.P0)).Norm() < Epsilon
}
