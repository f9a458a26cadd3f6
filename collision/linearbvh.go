package collision

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Jinderamarak/safe-stage/spatial"
)

// BuildLinearBVH constructs a BVH using the Morton-code / linear BVH
// technique: triangle centroids are mapped to Morton codes in parallel,
// sorted, and split recursively at the midpoint of the sorted order.
// Produces a tree with the same traversal
// contract as BuildBVH, just a different (non-median-split) internal shape.
func BuildLinearBVH(mesh *spatial.TriangleMesh) *BVH {
	triangles := mesh.Triangles()
	if len(triangles) == 0 {
		return nil
	}

	bounds := mesh.Bounds()
	codes := make([]uint64, len(triangles))

	eg := new(errgroup.Group)
	eg.SetLimit(8)
	const chunk = 256
	for start := 0; start < len(triangles); start += chunk {
		start := start
		end := start + chunk
		if end > len(triangles) {
			end = len(triangles)
		}
		eg.Go(func() error {
			for i := start; i < end; i++ {
				codes[i] = mortonCode(triangles[i].Centroid(), bounds)
			}
			return nil
		})
	}
	_ = eg.Wait()

	indices := make([]int, len(triangles))
	for i := range indices {
		indices[i] = i
	}
	sort.Slice(indices, func(i, j int) bool { return codes[indices[i]] < codes[indices[j]] })

	return buildLinearRange(triangles, indices)
}

func buildLinearRange(triangles []spatial.Triangle, indices []int) *BVH {
	min, max := boundsOfIndices(triangles, indices)
	if len(indices) <= leafBucketSize {
		return &BVH{min: min, max: max, indices: indices}
	}
	mid := len(indices) / 2
	return &BVH{
		min:   min,
		max:   max,
		left:  buildLinearRange(triangles, indices[:mid]),
		right: buildLinearRange(triangles, indices[mid:]),
	}
}

// mortonCode interleaves 21 bits per axis of the centroid's position
// normalised against the mesh bounds, producing a 63-bit Z-order code.
func mortonCode(p spatial.Vector3, bounds spatial.AABB) uint64 {
	norm := func(v, lo, hi float64) uint32 {
		if hi-lo < spatial.Epsilon {
			return 0
		}
		t := (v - lo) / (hi - lo)
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		return uint32(t * float64((1<<21)-1))
	}
	x := norm(p.X, bounds.Min.X, bounds.Max.X)
	y := norm(p.Y, bounds.Min.Y, bounds.Max.Y)
	z := norm(p.Z, bounds.Min.Z, bounds.Max.Z)
	return spread21(x) | (spread21(y) << 1) | (spread21(z) << 2)
}

func spread21(v uint32) uint64 {
	x := uint64(v) & 0x1fffff
	x = (x | x<<32) & 0x1f00000000ffff
	x = (x | x<<16) & 0x1f0000ff0000ff
	x = (x | x<<8) & 0x100f00f00f00f00f
	x = (x | x<<4) & 0x10c30c30c30c30c3
	x = (x | x<<2) & 0x1249249249249249
	return x
}
