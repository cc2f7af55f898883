package props

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/spectralmesh/trimesh/geom"
	"github.com/spectralmesh/trimesh/halfedge"
)

// cotangentWeight returns cot(α)+cot(β) for the angles opposite the edge of
// he in its two incident triangles. A border edge has only one triangle and
// fails with ErrInvalidTopology. Angles of exactly 0° or 180° in a
// degenerate triangle make the cotangent non-finite; that value is
// propagated, matching the matrix construction this weight feeds.
func cotangentWeight(m halfedge.Mesh, he halfedge.Halfedge) (float64, error) {
	opp := m.Opposite(he)
	if m.Face(opp) == halfedge.NoFace {
		return 0, fmt.Errorf("edge %d->%d lies on a border: %w",
			m.Source(he), m.Target(he), ErrInvalidTopology)
	}

	pv := m.Position(m.Target(he))
	pj := m.Position(m.Source(he))
	pa := m.Position(m.Target(m.Next(he)))
	pb := m.Position(m.Target(m.Next(opp)))

	cota := geom.CotanFromCos(geom.Cosine(pv, pa, pj))
	cotb := geom.CotanFromCos(geom.Cosine(pv, pb, pj))
	return cota + cotb, nil
}

// LaplaceBeltrami returns the discrete mean-curvature normal at v: the
// cotangent-weighted sum of edge vectors over the one-ring, divided by
// twice the mixed vertex area. Its magnitude is twice the mean curvature
// and its direction approximates the surface normal on well-shaped meshes.
// Requires a closed one-ring; degenerate incident angles propagate as
// non-finite components.
func LaplaceBeltrami(m halfedge.Mesh, v halfedge.Vertex) (r3.Vector, error) {
	ring := m.HalfedgesAround(v)
	if len(ring) == 0 {
		return r3.Vector{}, fmt.Errorf("vertex %d has no incident faces: %w",
			v, ErrInvalidTopology)
	}

	pv := m.Position(v)
	var flow r3.Vector
	for _, he := range ring {
		w, err := cotangentWeight(m, he)
		if err != nil {
			return r3.Vector{}, err
		}
		flow = flow.Add(m.Position(m.Source(he)).Sub(pv).Mul(w))
	}

	area, err := VertexArea(m, v, DefaultVertexArea)
	if err != nil {
		return r3.Vector{}, err
	}
	return flow.Mul(1.0 / (2.0 * area)), nil
}

// GaussianCurvature returns the angle defect at v divided by the mixed
// vertex area. The defect uses the true corner angles (acos), unlike the
// incident-angle normal weight.
func GaussianCurvature(m halfedge.Mesh, v halfedge.Vertex) (float64, error) {
	ring := m.HalfedgesAround(v)
	if len(ring) == 0 {
		return 0, fmt.Errorf("vertex %d has no incident faces: %w", v, ErrInvalidTopology)
	}

	pv := m.Position(v)
	defect := 2.0 * math.Pi
	for _, he := range ring {
		pp := m.Position(m.Source(he))
		pq := m.Position(m.Target(m.Next(he)))
		defect -= math.Acos(geom.Cosine(pp, pv, pq))
	}

	area, err := VertexArea(m, v, DefaultVertexArea)
	if err != nil {
		return 0, err
	}
	return defect / area, nil
}

// MeanCurvature returns half the magnitude of the Laplace-Beltrami flow at
// v. The sign of the curvature is lost with the flow direction; the result
// is always non-negative.
func MeanCurvature(m halfedge.Mesh, v halfedge.Vertex) (float64, error) {
	flow, err := LaplaceBeltrami(m, v)
	if err != nil {
		return 0, err
	}
	return 0.5 * flow.Norm(), nil
}
