package props

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"

	"github.com/spectralmesh/trimesh/geom"
	"github.com/spectralmesh/trimesh/halfedge"
)

func buildSurface(t *testing.T, pos []r3.Vector, faces [][3]int) *halfedge.Surface {
	t.Helper()
	s, err := halfedge.NewSurface(pos, faces)
	require.NoError(t, err)
	return s
}

// unitCube is the axis-aligned unit cube with each quad split into two
// right triangles, wound outward. 8 vertices, 12 faces, total area 6.
func unitCube(t *testing.T) *halfedge.Surface {
	pos := []r3.Vector{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	faces := [][3]int{
		{0, 3, 2}, {0, 2, 1},
		{4, 5, 6}, {4, 6, 7},
		{0, 1, 5}, {0, 5, 4},
		{1, 2, 6}, {1, 6, 5},
		{2, 3, 7}, {2, 7, 6},
		{3, 0, 4}, {3, 4, 7},
	}
	return buildSurface(t, pos, faces)
}

// icosahedron returns a regular icosahedron with circumradius r, wound
// outward. Every corner angle is exactly 60°, so the angle defect at each
// of the 12 vertices is exactly π/3.
func icosahedron(r float64) ([]r3.Vector, [][3]int) {
	phi := (1.0 + math.Sqrt(5)) / 2.0
	scale := r / math.Sqrt(1+phi*phi)

	raw := []r3.Vector{
		{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
		{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
		{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
	}
	pos := make([]r3.Vector, len(raw))
	for i, p := range raw {
		pos[i] = p.Mul(scale)
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return pos, faces
}

// subdivideOnSphere performs one 1:4 refinement of a sphere mesh, sharing
// edge midpoints and projecting every vertex back to radius r.
func subdivideOnSphere(pos []r3.Vector, faces [][3]int, r float64) ([]r3.Vector, [][3]int) {
	midOf := make(map[[2]int]int)
	out := make([][3]int, 0, 4*len(faces))
	newPos := append([]r3.Vector(nil), pos...)

	mid := func(a, b int) int {
		key := [2]int{min(a, b), max(a, b)}
		if i, ok := midOf[key]; ok {
			return i
		}
		p := geom.Midpoint(newPos[a], newPos[b])
		p = p.Mul(r / p.Norm())
		newPos = append(newPos, p)
		midOf[key] = len(newPos) - 1
		return len(newPos) - 1
	}

	for _, f := range faces {
		a, b, c := f[0], f[1], f[2]
		ab, bc, ca := mid(a, b), mid(b, c), mid(c, a)
		out = append(out,
			[3]int{a, ab, ca},
			[3]int{ab, b, bc},
			[3]int{ca, bc, c},
			[3]int{ab, bc, ca},
		)
	}
	return newPos, out
}

// icosphere returns an icosahedron refined the given number of times, with
// all vertices on the sphere of radius r.
func icosphere(t *testing.T, r float64, refinements int) *halfedge.Surface {
	pos, faces := icosahedron(r)
	for i := 0; i < refinements; i++ {
		pos, faces = subdivideOnSphere(pos, faces, r)
	}
	return buildSurface(t, pos, faces)
}

// flatFan is an open hexagonal fan in the z=0 plane around vertex 0.
func flatFan(t *testing.T) *halfedge.Surface {
	pos := []r3.Vector{{}}
	for k := 0; k < 6; k++ {
		angle := float64(k) * math.Pi / 3.0
		pos = append(pos, r3.Vector{X: math.Cos(angle), Y: math.Sin(angle)})
	}
	faces := make([][3]int, 6)
	for k := 0; k < 6; k++ {
		faces[k] = [3]int{0, 1 + k, 1 + (k+1)%6}
	}
	return buildSurface(t, pos, faces)
}

// allHalfedges lists the interior halfedges of s, three per face.
func allHalfedges(s *halfedge.Surface) []halfedge.Halfedge {
	var hes []halfedge.Halfedge
	for f := halfedge.Face(0); f < halfedge.Face(s.FaceCount()); f++ {
		he := s.FaceHalfedge(f)
		for k := 0; k < 3; k++ {
			hes = append(hes, he)
			he = s.Next(he)
		}
	}
	return hes
}

// totalFaceArea sums FaceArea over all faces.
func totalFaceArea(t *testing.T, s *halfedge.Surface) float64 {
	t.Helper()
	total := 0.0
	for f := halfedge.Face(0); f < halfedge.Face(s.FaceCount()); f++ {
		a, err := FaceArea(s, f)
		require.NoError(t, err)
		total += a
	}
	return total
}
