// Package props computes discrete differential-geometry quantities on
// triangulated surfaces: edge/face measures, vertex normals and areas under
// several weighting schemes, the discrete Laplace-Beltrami operator with its
// cotangent and mass matrices, and Gaussian/mean curvature. All operators
// traverse the mesh read-only through the halfedge.Mesh facade.
package props

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/spectralmesh/trimesh/geom"
	"github.com/spectralmesh/trimesh/halfedge"
)

// EdgeLength returns the Euclidean distance between the endpoints of he.
// Both halfedges of an edge give the same result.
func EdgeLength(m halfedge.Mesh, he halfedge.Halfedge) float64 {
	return m.Position(m.Source(he)).Sub(m.Position(m.Target(he))).Norm()
}

// trianglePoints resolves the corner positions of f, failing with
// ErrInvalidTopology when f is not a triangle.
func trianglePoints(m halfedge.Mesh, f halfedge.Face) (p1, p2, p3 r3.Vector, err error) {
	he := m.FaceHalfedge(f)
	if m.Next(m.Next(m.Next(he))) != he {
		err = fmt.Errorf("face %d is not a triangle: %w", f, ErrInvalidTopology)
		return
	}
	p1 = m.Position(m.Source(he))
	p2 = m.Position(m.Target(he))
	p3 = m.Position(m.Target(m.Next(he)))
	return
}

// FaceArea returns the area of the triangular face f.
func FaceArea(m halfedge.Mesh, f halfedge.Face) (float64, error) {
	p1, p2, p3, err := trianglePoints(m, f)
	if err != nil {
		return 0, err
	}
	return geom.Area(p1, p2, p3), nil
}

// FaceNormal returns the unit normal of f, oriented by the face winding.
// A collinear triangle yields the zero vector together with an error
// wrapping ErrDegenerateGeometry, so the caller decides whether to log,
// abort or keep the substitute.
func FaceNormal(m halfedge.Mesh, f halfedge.Face) (r3.Vector, error) {
	p1, p2, p3, err := trianglePoints(m, f)
	if err != nil {
		return r3.Vector{}, err
	}
	n, ok := geom.Normal(p1, p2, p3)
	if !ok {
		return r3.Vector{}, fmt.Errorf("face %d is collinear, normal set to zero: %w",
			f, ErrDegenerateGeometry)
	}
	return n, nil
}

// FaceNormals computes the normal of every face, substituting the zero
// vector for degenerate faces. The returned error joins the per-face
// failures; the slice is complete either way and indexed by face handle.
func FaceNormals(m halfedge.Mesh) ([]r3.Vector, error) {
	normals := make([]r3.Vector, m.FaceCount())
	var errs []error
	for f := range normals {
		n, err := FaceNormal(m, halfedge.Face(f))
		if err != nil {
			errs = append(errs, err)
		}
		normals[f] = n
	}
	return normals, errors.Join(errs...)
}
