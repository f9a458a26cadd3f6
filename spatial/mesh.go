package spatial

// TriangleMesh is an immutable ordered sequence of triangles plus its
// axis-aligned bounding box in the mesh's local frame. Built once at
// configuration time and shared read-only by every part that references
// the same geometry.
type TriangleMesh struct {
	triangles []Triangle
	bounds    AABB
}

// NewTriangleMesh builds a mesh from a triangle list; the input slice is
// copied so later mutation by the caller cannot violate immutability.
func NewTriangleMesh(triangles []Triangle) *TriangleMesh {
	owned := make([]Triangle, len(triangles))
	copy(owned, triangles)

	var bounds AABB
	if len(owned) > 0 {
		bounds = AABB{Min: owned[0].P0, Max: owned[0].P0}
		for _, t := range owned {
			bounds = bounds.ExpandByPoint(t.P0).ExpandByPoint(t.P1).ExpandByPoint(t.P2)
		}
	}
	return &TriangleMesh{triangles: owned, bounds: bounds}
}

// Triangles returns the mesh's triangle list. Callers must not mutate it.
func (m *TriangleMesh) Triangles() []Triangle { return m.triangles }

// Bounds returns the mesh's local-frame AABB.
func (m *TriangleMesh) Bounds() AABB { return m.bounds }

// Len returns the number of triangles in the mesh.
func (m *TriangleMesh) Len() int { return len(m.triangles) }

// BoxMesh builds a rectangular-box mesh of the given full dimensions
// centred at the local origin, used by the height-map-to-mesh rasteriser
// for each non-zero grid cell.
func BoxMesh(dx, dy, dz float64) *TriangleMesh {
	hx, hy, hz := dx/2, dy/2, dz/2
	c := [8]Vector3{
		{X: -hx, Y: -hy, Z: -hz}, {X: hx, Y: -hy, Z: -hz},
		{X: hx, Y: hy, Z: -hz}, {X: -hx, Y: hy, Z: -hz},
		{X: -hx, Y: -hy, Z: hz}, {X: hx, Y: -hy, Z: hz},
		{X: hx, Y: hy, Z: hz}, {X: -hx, Y: hy, Z: hz},
	}
	quad := func(a, b, cc, d int) [2]Triangle {
		return [2]Triangle{NewTriangle(c[a], c[b], c[cc]), NewTriangle(c[a], c[cc], c[d])}
	}
	faces := [][2]Triangle{
		quad(0, 1, 2, 3), // bottom
		quad(7, 6, 5, 4), // top
		quad(4, 5, 1, 0), // front
		quad(5, 6, 2, 1), // right
		quad(6, 7, 3, 2), // back
		quad(7, 4, 0, 3), // left
	}
	tris := make([]Triangle, 0, len(faces)*2)
	for _, f := range faces {
		tris = append(tris, f[0], f[1])
	}
	return NewTriangleMesh(tris)
}
