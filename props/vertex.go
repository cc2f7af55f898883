package props

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/spectralmesh/trimesh/geom"
	"github.com/spectralmesh/trimesh/halfedge"
)

// VertexNormalWeight selects how incident face normals are weighted when
// accumulated into a vertex normal.
type VertexNormalWeight uint8

const (
	// WeightConstant adds each incident face normal unweighted.
	WeightConstant VertexNormalWeight = iota
	// WeightFaceArea weights each face normal by the face area.
	WeightFaceArea
	// WeightIncidentAngle weights each face normal by the dot product of
	// the unit edge vectors meeting at the vertex. The dot product (a
	// cosine) is used directly rather than the subtended angle; this fast
	// approximation is intentional and kept.
	WeightIncidentAngle
)

// VertexAreaMethod selects the per-vertex area partition of the surface.
type VertexAreaMethod uint8

const (
	// AreaBarycentric places the per-triangle center at the centroid; the
	// resulting vertex areas partition the total surface area exactly.
	AreaBarycentric VertexAreaMethod = iota
	// AreaVoronoi places the center at the circumcenter. Contributions can
	// go negative for obtuse triangles.
	AreaVoronoi
	// AreaMixed is Voronoi with obtuse-triangle fallbacks, keeping every
	// contribution non-negative.
	AreaMixed
)

// DefaultVertexArea is the method used by the curvature operators.
const DefaultVertexArea = AreaMixed

// VertexNormal accumulates the normals of the faces around v, weighted per
// scheme, and normalizes the sum. normals is the face-normal map indexed by
// face handle, typically from FaceNormals. An isolated vertex is
// ErrInvalidTopology; a zero accumulated vector is ErrDegenerateGeometry.
func VertexNormal(m halfedge.Mesh, v halfedge.Vertex, normals []r3.Vector,
	weight VertexNormalWeight) (r3.Vector, error) {

	ring := m.HalfedgesAround(v)
	if len(ring) == 0 {
		return r3.Vector{}, fmt.Errorf("vertex %d has no incident faces: %w",
			v, ErrInvalidTopology)
	}
	if len(normals) < m.FaceCount() {
		return r3.Vector{}, fmt.Errorf("face normal map has %d entries for %d faces: %w",
			len(normals), m.FaceCount(), ErrInvalidTopology)
	}

	var normal r3.Vector
	for _, he := range ring {
		f := m.Face(he)
		fn := normals[f]

		switch weight {
		case WeightConstant:
			normal = normal.Add(fn)
		case WeightFaceArea:
			area, err := FaceArea(m, f)
			if err != nil {
				return r3.Vector{}, err
			}
			normal = normal.Add(fn.Mul(area))
		default: // WeightIncidentAngle
			pt := m.Position(m.Target(he))
			ps1 := m.Position(m.Source(he))
			ps2 := m.Position(m.Source(m.Opposite(m.Next(he))))
			vec1 := ps1.Sub(pt)
			vec2 := ps2.Sub(pt)
			w := vec1.Dot(vec2) / math.Sqrt(vec1.Norm2()*vec2.Norm2())
			normal = normal.Add(fn.Mul(w))
		}
	}

	nn := normal.Norm2()
	if nn == 0 {
		return r3.Vector{}, fmt.Errorf("vertex %d accumulated a zero normal: %w",
			v, ErrDegenerateGeometry)
	}
	return normal.Mul(1.0 / math.Sqrt(nn)), nil
}

// VertexArea sums the per-triangle area pieces assigned to v by the chosen
// method. For each incident triangle (p1, p2=v, p3) the piece is the quad
// spanned by v, the two adjacent edge midpoints and a center point.
func VertexArea(m halfedge.Mesh, v halfedge.Vertex, method VertexAreaMethod) (float64, error) {
	ring := m.HalfedgesAround(v)
	if len(ring) == 0 {
		return 0, fmt.Errorf("vertex %d has no incident faces: %w", v, ErrInvalidTopology)
	}

	area := 0.0
	for _, he := range ring {
		p1 := m.Position(m.Source(he))
		p2 := m.Position(m.Target(he))
		p3 := m.Position(m.Target(m.Next(he)))
		mid1 := geom.Midpoint(p2, p1)
		mid2 := geom.Midpoint(p2, p3)

		switch method {
		case AreaBarycentric:
			center := geom.Centroid(p1, p2, p3)
			area += geom.Area(mid1, p2, center) + geom.Area(mid2, center, p2)
		case AreaVoronoi:
			center := geom.Circumcenter(p1, p2, p3)
			area += geom.Area(mid1, p2, center) + geom.Area(mid2, center, p2)
		default: // AreaMixed
			switch {
			case geom.IsObtuse(p1, p2, p3):
				// Obtuse at v: clamp the center to the opposite edge.
				center := geom.Midpoint(p1, p3)
				area += geom.Area(mid1, p2, center) + geom.Area(mid2, center, p2)
			case geom.IsObtuse(p2, p3, p1) || geom.IsObtuse(p3, p1, p2):
				area += geom.Area(mid1, p2, mid2)
			default:
				center := geom.Circumcenter(p1, p2, p3)
				area += geom.Area(mid1, p2, center) + geom.Area(mid2, center, p2)
			}
		}
	}
	return area, nil
}
