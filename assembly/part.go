package assembly

import (
	"github.com/Jinderamarak/safe-stage/collision"
	"github.com/Jinderamarak/safe-stage/spatial"
)

// ObstructionClass tags a part for visualisation filtering only; collision
// queries never consult it.
type ObstructionClass int

const (
	// NonObstructive parts are shown at every obstruction level.
	NonObstructive ObstructionClass = iota
	// LessObstructive parts are hidden at the non-obstructive level.
	LessObstructive
	// FullyObstructive parts are shown only at the full level.
	FullyObstructive
)

// Visible reports whether a part tagged class should be emitted when the
// caller requested triangles at level. A part is suppressed if its class
// is strictly more obstructive than the requested level.
func Visible(class, level ObstructionClass) bool {
	return class <= level
}

// Part is a named reference to a shared (mesh, BVH) pair plus the local
// transform placing it within its parent frame.
type Part struct {
	Name      string
	Mesh      *spatial.TriangleMesh
	BVH       *collision.BVH
	Local     spatial.Transform
	Class     ObstructionClass
}

// NewPart builds a part, constructing its BVH from the given mesh.
func NewPart(name string, mesh *spatial.TriangleMesh, local spatial.Transform, class ObstructionClass) Part {
	return Part{Name: name, Mesh: mesh, BVH: collision.BuildBVH(mesh), Local: local, Class: class}
}

// PlacedAt returns the collision-engine placement of this part given its
// world transform (the composition of all ancestor frames with Local).
func (p Part) PlacedAt(world spatial.Transform) collision.Placed {
	return collision.Placed{Mesh: p.Mesh, BVH: p.BVH, Transform: world}
}

// WorldTriangles returns the part's triangles transformed into world space
// by the given world transform, for presentation.
func (p Part) WorldTriangles(world spatial.Transform) []spatial.Triangle {
	tris := p.Mesh.Triangles()
	out := make([]spatial.Triangle, len(tris))
	for i, t := range tris {
		out[i] = t.Transformed(world)
	}
	return out
}
