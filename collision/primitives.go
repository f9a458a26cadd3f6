// Package collision implements primitive-vs-primitive collision tests, the
// bounding-volume hierarchy over triangle meshes, and bulk group queries
// used by the assembly model and path resolvers.
package collision

import (
	"math"

	"github.com/Jinderamarak/safe-stage/spatial"
)

// boundaryEpsilon biases every primitive test toward reporting a collision
// on the boundary, never away from one, per the engine's safety contract.
const boundaryEpsilon = 1e-12

// AABBOverlap reports whether two world-space AABBs overlap, boundary
// inclusive.
func AABBOverlap(a, b spatial.AABB) bool {
	return a.Overlaps(b)
}

// AABBContainsTriangle is a coarse accept used ahead of the precise
// AABBTriangle test in hot traversal paths.
func AABBContainsTriangle(box spatial.AABB, tri spatial.Triangle) bool {
	for _, p := range tri.Points() {
		if box.ContainsPoint(p) {
			return true
		}
	}
	return false
}

// TriangleTriangle reports whether two triangles intersect, using a
// Möller-style separating-axis test over 17 candidate axes (both face
// normals, the 9 cross products of edge pairs, and the 6 in-plane edge
// normals). Coplanar triangles are treated as colliding iff they share area.
func TriangleTriangle(a, b spatial.Triangle) bool {
	if a.IsDegenerate() || b.IsDegenerate() {
		return false
	}

	pa := a.Points()
	pb := b.Points()

	edgesA := edgesOf(pa)
	edgesB := edgesOf(pb)

	axes := make([]spatial.Vector3, 0, 17)
	axes = append(axes, a.Normal(), b.Normal())
	for _, ea := range edgesA {
		for _, eb := range edgesB {
			axes = append(axes, ea.Cross(eb))
		}
	}
	// In-plane edge normals separate coplanar triangles that share no area.
	for _, ea := range edgesA {
		axes = append(axes, a.Normal().Cross(ea))
	}
	for _, eb := range edgesB {
		axes = append(axes, b.Normal().Cross(eb))
	}

	for _, axis := range axes {
		if axis.Norm() < boundaryEpsilon {
			continue // degenerate cross product (parallel edges): skip, covered by face normals
		}
		if separatedOnAxis(pa, pb, axis) {
			return false
		}
	}
	return true
}

func edgesOf(p [3]spatial.Vector3) [3]spatial.Vector3 {
	return [3]spatial.Vector3{p[1].Sub(p[0]), p[2].Sub(p[1]), p[0].Sub(p[2])}
}

func separatedOnAxis(pa, pb [3]spatial.Vector3, axis spatial.Vector3) bool {
	minA, maxA := projectOntoAxis(pa, axis)
	minB, maxB := projectOntoAxis(pb, axis)
	return maxA < minB-boundaryEpsilon || maxB < minA-boundaryEpsilon
}

func projectOntoAxis(p [3]spatial.Vector3, axis spatial.Vector3) (float64, float64) {
	min := p[0].Dot(axis)
	max := min
	for _, v := range p[1:] {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// AABBTriangle reports whether an axis-aligned box and a triangle
// intersect, via separating axis over the box's three face normals, the
// triangle's face normal, and the 9 edge-axis cross products.
func AABBTriangle(box spatial.AABB, tri spatial.Triangle) bool {
	if tri.IsDegenerate() {
		return false
	}
	center := box.Min.Add(box.Max).Mul(0.5)
	half := box.Max.Sub(box.Min).Mul(0.5)

	p := tri.Points()
	local := [3]spatial.Vector3{p[0].Sub(center), p[1].Sub(center), p[2].Sub(center)}

	boxAxes := [3]spatial.Vector3{{X: 1}, {Y: 1}, {Z: 1}}
	triEdges := edgesOf(local)

	axes := make([]spatial.Vector3, 0, 13)
	axes = append(axes, boxAxes[:]...)
	axes = append(axes, tri.Normal())
	for _, ba := range boxAxes {
		for _, te := range triEdges {
			axes = append(axes, ba.Cross(te))
		}
	}

	for _, axis := range axes {
		if axis.Norm() < boundaryEpsilon {
			continue
		}
		triMin, triMax := projectOntoAxis(local, axis)
		boxRadius := math.Abs(half.X*axis.X) + math.Abs(half.Y*axis.Y) + math.Abs(half.Z*axis.Z)
		if triMax < -boxRadius-boundaryEpsilon || triMin > boxRadius+boundaryEpsilon {
			return false
		}
	}
	return true
}

