package collision

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinderamarak/safe-stage/spatial"
)

func cube(size float64) *spatial.TriangleMesh {
	return spatial.BoxMesh(size, size, size)
}

func placedAt(mesh *spatial.TriangleMesh, pos spatial.Vector3) Placed {
	return Placed{Mesh: mesh, BVH: BuildBVH(mesh), Transform: spatial.NewTransform(pos, spatial.IdentityQuaternion())}
}

func TestMeshCollidesOverlappingCubes(t *testing.T) {
	a := placedAt(cube(2), spatial.Vector3{})
	b := placedAt(cube(2), spatial.Vector3{X: 1})
	assert.True(t, MeshCollides(a, b))
}

func TestMeshCollidesSeparatedCubes(t *testing.T) {
	a := placedAt(cube(1), spatial.Vector3{})
	b := placedAt(cube(1), spatial.Vector3{X: 10})
	assert.False(t, MeshCollides(a, b))
}

func TestMeshCollidesMatchesNaivePairwise(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randomMesh := func() *spatial.TriangleMesh {
		tris := make([]spatial.Triangle, 0, 20)
		for i := 0; i < 20; i++ {
			base := spatial.Vector3{X: rng.Float64() * 3, Y: rng.Float64() * 3, Z: rng.Float64() * 3}
			tris = append(tris, spatial.NewTriangle(
				base,
				base.Add(spatial.Vector3{X: 0.3, Y: 0, Z: 0}),
				base.Add(spatial.Vector3{X: 0, Y: 0.3, Z: 0}),
			))
		}
		return spatial.NewTriangleMesh(tris)
	}

	meshA := randomMesh()
	meshB := randomMesh()

	for trial := 0; trial < 25; trial++ {
		offset := spatial.Vector3{X: rng.Float64()*6 - 3, Y: rng.Float64()*6 - 3, Z: rng.Float64()*6 - 3}
		a := Placed{Mesh: meshA, BVH: BuildBVH(meshA), Transform: spatial.Identity()}
		b := Placed{Mesh: meshB, BVH: BuildBVH(meshB), Transform: spatial.NewTransform(offset, spatial.IdentityQuaternion())}

		bvhResult := MeshCollides(a, b)
		naiveResult := naiveMeshCollides(a, b)
		assert.Equal(t, naiveResult, bvhResult, "BVH query must match naive n^2 query for offset %v", offset)
	}
}

func naiveMeshCollides(a, b Placed) bool {
	for _, ta := range a.Mesh.Triangles() {
		ta2 := ta.Transformed(a.Transform)
		for _, tb := range b.Mesh.Triangles() {
			tb2 := tb.Transformed(b.Transform)
			if TriangleTriangle(ta2, tb2) {
				return true
			}
		}
	}
	return false
}

func TestBuildBVHEmptyMesh(t *testing.T) {
	mesh := spatial.NewTriangleMesh(nil)
	assert.Nil(t, BuildBVH(mesh))
}

func TestBuildBVHSingleTriangleIsLeaf(t *testing.T) {
	mesh := spatial.NewTriangleMesh([]spatial.Triangle{
		spatial.NewTriangle(spatial.Vector3{}, spatial.Vector3{X: 1}, spatial.Vector3{Y: 1}),
	})
	bvh := BuildBVH(mesh)
	require.NotNil(t, bvh)
	assert.True(t, bvh.IsLeaf())
	assert.Len(t, bvh.indices, 1)
}

func TestBuildBVHManyTrianglesSplits(t *testing.T) {
	tris := make([]spatial.Triangle, 20)
	for i := range tris {
		x := float64(i)
		tris[i] = spatial.NewTriangle(
			spatial.Vector3{X: x}, spatial.Vector3{X: x + 1}, spatial.Vector3{X: x, Y: 1},
		)
	}
	mesh := spatial.NewTriangleMesh(tris)
	bvh := BuildBVH(mesh)
	require.NotNil(t, bvh)
	assert.False(t, bvh.IsLeaf())
}

func TestGroupAnyCollidingDetectsOverlap(t *testing.T) {
	group := NewGroup(
		placedAt(cube(2), spatial.Vector3{}),
		placedAt(cube(2), spatial.Vector3{X: 1}),
		placedAt(cube(1), spatial.Vector3{X: 100}),
	)
	assert.True(t, group.AnyColliding())
}

func TestGroupAnyCollidingNoOverlap(t *testing.T) {
	group := NewGroup(
		placedAt(cube(1), spatial.Vector3{}),
		placedAt(cube(1), spatial.Vector3{X: 10}),
		placedAt(cube(1), spatial.Vector3{X: 20}),
	)
	assert.False(t, group.AnyColliding())
}

func TestBuildLinearBVHMatchesMedianSplitTraversal(t *testing.T) {
	tris := make([]spatial.Triangle, 30)
	rng := rand.New(rand.NewSource(3))
	for i := range tris {
		base := spatial.Vector3{X: rng.Float64() * 5, Y: rng.Float64() * 5, Z: rng.Float64() * 5}
		tris[i] = spatial.NewTriangle(base, base.Add(spatial.Vector3{X: 0.2}), base.Add(spatial.Vector3{Y: 0.2}))
	}
	mesh := spatial.NewTriangleMesh(tris)
	medianBVH := BuildBVH(mesh)
	linearBVH := BuildLinearBVH(mesh)

	otherMesh := cube(1)
	otherBVH := BuildBVH(otherMesh)
	for _, offset := range []spatial.Vector3{{X: 1}, {X: 3}, {X: 100}} {
		probe := Placed{Mesh: otherMesh, BVH: otherBVH, Transform: spatial.NewTransform(offset, spatial.IdentityQuaternion())}
		median := Placed{Mesh: mesh, BVH: medianBVH, Transform: spatial.Identity()}
		linear := Placed{Mesh: mesh, BVH: linearBVH, Transform: spatial.Identity()}
		assert.Equal(t, MeshCollides(median, probe), MeshCollides(linear, probe), "offset %v", offset)
	}
}
