package assembly

import (
	"fmt"

	"github.com/Jinderamarak/safe-stage/spatial"
)

// HeightMap is a rectangular grid of heights in metres covering a physical
// extent of (RealX, RealY). At most one height map is live on a holder at
// a time; replacing or clearing it discards the previous one.
type HeightMap struct {
	Heights    [][]float64 // [i][j], i in [0,Nx), j in [0,Ny)
	Nx, Ny     int
	RealX, RealY float64
}

// NewHeightMap validates and builds a HeightMap from raw row-major data.
func NewHeightMap(data []float64, nx, ny int, realX, realY float64) (*HeightMap, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("assembly: height map dimensions must be positive, got (%d, %d)", nx, ny)
	}
	if len(data) != nx*ny {
		return nil, fmt.Errorf("assembly: height map data length %d does not match nx*ny=%d", len(data), nx*ny)
	}
	if realX <= 0 || realY <= 0 {
		return nil, fmt.Errorf("assembly: height map physical extent must be positive, got (%g, %g)", realX, realY)
	}
	heights := make([][]float64, nx)
	for i := 0; i < nx; i++ {
		heights[i] = append([]float64(nil), data[i*ny:(i+1)*ny]...)
	}
	return &HeightMap{Heights: heights, Nx: nx, Ny: ny, RealX: realX, RealY: realY}, nil
}

// ToMesh rasterises the height map as a heightfield: each non-zero cell
// (i, j) becomes a box of dimensions (dx, dy, H[i,j]) centred at its grid
// location, resting on the z=0 plane. Zero-height cells are omitted.
func (h *HeightMap) ToMesh() *spatial.TriangleMesh {
	dx := h.RealX / float64(h.Nx)
	dy := h.RealY / float64(h.Ny)

	var triangles []spatial.Triangle
	for i := 0; i < h.Nx; i++ {
		for j := 0; j < h.Ny; j++ {
			height := h.Heights[i][j]
			if height == 0 {
				continue
			}
			cx := (float64(i)+0.5)*dx - h.RealX/2
			cy := (float64(j)+0.5)*dy - h.RealY/2
			cz := height / 2
			box := spatial.BoxMesh(dx, dy, height)
			center := spatial.Vector3{X: cx, Y: cy, Z: cz}
			tr := spatial.NewTransform(center, spatial.IdentityQuaternion())
			for _, t := range box.Triangles() {
				triangles = append(triangles, t.Transformed(tr))
			}
		}
	}
	return spatial.NewTriangleMesh(triangles)
}
