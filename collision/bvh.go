package collision

import (
	"sort"

	"github.com/Jinderamarak/safe-stage/spatial"
)

// leafBucketSize is the maximum number of triangles stored in a BVH leaf,
// matching the data model's "small bucket (<= K, K ~ 4)" contract.
const leafBucketSize = 4

// BVH is a balanced binary tree over a triangle mesh's local-frame
// triangles. Internal nodes store the AABB enclosing their subtree; leaves
// store up to leafBucketSize triangle indices. Construction is top-down,
// median split along the longest axis of the centroid bounds, ties broken
// by axis index (x, then y, then z). Tree shape never depends on later
// transforms.
type BVH struct {
	min, max spatial.Vector3
	left     *BVH
	right    *BVH
	indices  []int // leaf only
}

// Bounds returns the node's local-frame AABB.
func (b *BVH) Bounds() spatial.AABB {
	return spatial.AABB{Min: b.min, Max: b.max}
}

// BuildBVH constructs a BVH over the given mesh's triangles. Returns nil
// for an empty mesh.
func BuildBVH(mesh *spatial.TriangleMesh) *BVH {
	triangles := mesh.Triangles()
	if len(triangles) == 0 {
		return nil
	}
	indices := make([]int, len(triangles))
	for i := range indices {
		indices[i] = i
	}
	return buildNode(triangles, indices)
}

func buildNode(triangles []spatial.Triangle, indices []int) *BVH {
	min, max := boundsOfIndices(triangles, indices)
	if len(indices) <= leafBucketSize {
		return &BVH{min: min, max: max, indices: indices}
	}

	axis := longestCentroidAxis(triangles, indices)
	sort.Slice(indices, func(i, j int) bool {
		ci := triangles[indices[i]].Centroid()
		cj := triangles[indices[j]].Centroid()
		return axisComponent(ci, axis) < axisComponent(cj, axis)
	})

	mid := len(indices) / 2
	leftIdx := append([]int(nil), indices[:mid]...)
	rightIdx := append([]int(nil), indices[mid:]...)

	return &BVH{
		min:   min,
		max:   max,
		left:  buildNode(triangles, leftIdx),
		right: buildNode(triangles, rightIdx),
	}
}

func boundsOfIndices(triangles []spatial.Triangle, indices []int) (spatial.Vector3, spatial.Vector3) {
	first := triangles[indices[0]]
	box := spatial.AABB{Min: first.P0, Max: first.P0}
	for _, idx := range indices {
		t := triangles[idx]
		box = box.ExpandByPoint(t.P0).ExpandByPoint(t.P1).ExpandByPoint(t.P2)
	}
	return box.Min, box.Max
}

func longestCentroidAxis(triangles []spatial.Triangle, indices []int) int {
	first := triangles[indices[0]].Centroid()
	min, max := first, first
	for _, idx := range indices {
		c := triangles[idx].Centroid()
		min = spatial.Vector3{X: minF(min.X, c.X), Y: minF(min.Y, c.Y), Z: minF(min.Z, c.Z)}
		max = spatial.Vector3{X: maxF(max.X, c.X), Y: maxF(max.Y, c.Y), Z: maxF(max.Z, c.Z)}
	}
	d := max.Sub(min)
	axis := 0 // x, default/tie-break
	longest := d.X
	if d.Y > longest {
		axis, longest = 1, d.Y
	}
	if d.Z > longest {
		axis = 2
	}
	return axis
}

func axisComponent(v spatial.Vector3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// IsLeaf reports whether the node is a leaf.
func (b *BVH) IsLeaf() bool {
	return b.left == nil && b.right == nil
}
