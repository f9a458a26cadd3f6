package collision

import (
	"github.com/Jinderamarak/safe-stage/spatial"
)

// Placed is one mesh positioned in world space: its local-frame triangles
// and BVH, plus the world transform currently applied to it.
type Placed struct {
	Mesh      *spatial.TriangleMesh
	BVH       *BVH
	Transform spatial.Transform
}

// MeshCollides runs the mesh-vs-mesh query between two placed parts: it
// traverses both BVHs simultaneously, descending into whichever node has
// the larger transformed-AABB volume at each step (ties broken by depth,
// then node identity), and short-circuits on the first colliding triangle
// pair.
func MeshCollides(a, b Placed) bool {
	if a.BVH == nil || b.BVH == nil {
		return false
	}
	aBox := spatial.TransformAABB(a.BVH.Bounds(), a.Transform)
	bBox := spatial.TransformAABB(b.BVH.Bounds(), b.Transform)
	if !AABBOverlap(aBox, bBox) {
		return false
	}
	return nodeCollides(a.Mesh, a.BVH, a.Transform, 0, b.Mesh, b.BVH, b.Transform, 0)
}

func nodeCollides(meshA *spatial.TriangleMesh, a *BVH, ta spatial.Transform, depthA int,
	meshB *spatial.TriangleMesh, b *BVH, tb spatial.Transform, depthB int,
) bool {
	if a.IsLeaf() && b.IsLeaf() {
		return leafCollides(meshA, a, ta, meshB, b, tb)
	}

	// Descend into whichever node occupies the larger transformed volume;
	// ties go to depth, then prefer descending a over b.
	volA := spatial.TransformAABB(a.Bounds(), ta).Volume()
	volB := spatial.TransformAABB(b.Bounds(), tb).Volume()

	descendA := !a.IsLeaf() && (b.IsLeaf() || volA > volB || (volA == volB && depthA <= depthB))

	if descendA {
		if boxOverlapsOrNested(meshB, b, tb, a.left, ta) &&
			nodeCollides(meshA, a.left, ta, depthA+1, meshB, b, tb, depthB) {
			return true
		}
		if boxOverlapsOrNested(meshB, b, tb, a.right, ta) &&
			nodeCollides(meshA, a.right, ta, depthA+1, meshB, b, tb, depthB) {
			return true
		}
		return false
	}

	if boxOverlapsOrNested(meshA, a, ta, b.left, tb) &&
		nodeCollides(meshA, a, ta, depthA, meshB, b.left, tb, depthB+1) {
		return true
	}
	if boxOverlapsOrNested(meshA, a, ta, b.right, tb) &&
		nodeCollides(meshA, a, ta, depthA, meshB, b.right, tb, depthB+1) {
		return true
	}
	return false
}

func boxOverlapsOrNested(otherMesh *spatial.TriangleMesh, other *BVH, otherT spatial.Transform, node *BVH, t spatial.Transform) bool {
	_ = otherMesh
	otherBox := spatial.TransformAABB(other.Bounds(), otherT)
	nodeBox := spatial.TransformAABB(node.Bounds(), t)
	return AABBOverlap(otherBox, nodeBox)
}

func leafCollides(meshA *spatial.TriangleMesh, a *BVH, ta spatial.Transform, meshB *spatial.TriangleMesh, b *BVH, tb spatial.Transform) bool {
	trisA := meshA.Triangles()
	trisB := meshB.Triangles()
	bBox := spatial.TransformAABB(b.Bounds(), tb)
	for _, ia := range a.indices {
		ta2 := trisA[ia].Transformed(ta)
		if !AABBContainsTriangle(bBox, ta2) && !AABBTriangle(bBox, ta2) {
			continue
		}
		for _, ib := range b.indices {
			tb2 := trisB[ib].Transformed(tb)
			if TriangleTriangle(ta2, tb2) {
				return true
			}
		}
	}
	return false
}
