package spatial

import "math"

// AABB is an axis-aligned bounding box with Min <= Max componentwise.
// Empty boxes are forbidden; a degenerate point box has Min == Max.
type AABB struct {
	Min Vector3
	Max Vector3
}

// NewAABB builds an AABB from two corners in any order.
func NewAABB(a, b Vector3) AABB {
	return AABB{
		Min: Vector3{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)},
		Max: Vector3{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)},
	}
}

// ContainsPoint reports whether p lies within the box, boundary inclusive.
func (box AABB) ContainsPoint(p Vector3) bool {
	return p.X >= box.Min.X-Epsilon && p.X <= box.Max.X+Epsilon &&
		p.Y >= box.Min.Y-Epsilon && p.Y <= box.Max.Y+Epsilon &&
		p.Z >= box.Min.Z-Epsilon && p.Z <= box.Max.Z+Epsilon
}

// Overlaps reports whether two boxes overlap, boundary inclusive.
func (box AABB) Overlaps(other AABB) bool {
	return box.Min.X <= other.Max.X+Epsilon && box.Max.X >= other.Min.X-Epsilon &&
		box.Min.Y <= other.Max.Y+Epsilon && box.Max.Y >= other.Min.Y-Epsilon &&
		box.Min.Z <= other.Max.Z+Epsilon && box.Max.Z >= other.Min.Z-Epsilon
}

// Union returns the smallest box enclosing both boxes.
func (box AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vector3{X: math.Min(box.Min.X, other.Min.X), Y: math.Min(box.Min.Y, other.Min.Y), Z: math.Min(box.Min.Z, other.Min.Z)},
		Max: Vector3{X: math.Max(box.Max.X, other.Max.X), Y: math.Max(box.Max.Y, other.Max.Y), Z: math.Max(box.Max.Z, other.Max.Z)},
	}
}

// ExpandByPoint returns the box grown to include p.
func (box AABB) ExpandByPoint(p Vector3) AABB {
	return AABB{
		Min: Vector3{X: math.Min(box.Min.X, p.X), Y: math.Min(box.Min.Y, p.Y), Z: math.Min(box.Min.Z, p.Z)},
		Max: Vector3{X: math.Max(box.Max.X, p.X), Y: math.Max(box.Max.Y, p.Y), Z: math.Max(box.Max.Z, p.Z)},
	}
}

// Volume returns the box's volume, used to pick the larger-volume child
// during simultaneous BVH descent.
func (box AABB) Volume() float64 {
	d := box.Max.Sub(box.Min)
	return d.X * d.Y * d.Z
}

// Corners returns the 8 corners of the box, used to reconstruct a
// transformed OBB's enclosing AABB.
func (box AABB) Corners() [8]Vector3 {
	return [8]Vector3{
		{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Max.Z},
	}
}

// TransformAABB reconstructs the enclosing AABB of a box after applying a
// rigid transform: rotates all 8 corners and takes their bounding box. For
// a translation-only transform this degenerates to a direct shift.
func TransformAABB(box AABB, t Transform) AABB {
	corners := box.Corners()
	out := AABB{Min: t.Apply(corners[0]), Max: t.Apply(corners[0])}
	for _, c := range corners[1:] {
		out = out.ExpandByPoint(t.Apply(c))
	}
	return out
}

// Diagonal returns the Euclidean length of the box's diagonal.
func (box AABB) Diagonal() float64 {
	return box.Max.Sub(box.Min).Norm()
}
