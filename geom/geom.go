// Package geom provides the primitive measures on triangles used by the
// discrete operators: areas, normals, circumcenters and angle quantities,
// all as pure functions of three points.
package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Midpoint returns the midpoint of the segment pq.
func Midpoint(p, q r3.Vector) r3.Vector {
	return p.Add(q).Mul(0.5)
}

// Centroid returns the barycenter of the triangle p1p2p3.
func Centroid(p1, p2, p3 r3.Vector) r3.Vector {
	return p1.Add(p2).Add(p3).Mul(1.0 / 3.0)
}

// Circumcenter returns the center of the circle through p1, p2, p3.
// The result is non-finite for collinear points.
func Circumcenter(p1, p2, p3 r3.Vector) r3.Vector {
	ab := p2.Sub(p1)
	ac := p3.Sub(p1)
	n := ab.Cross(ac)

	// A + (|AC|² (N×AB) + |AB|² (AC×N)) / (2|N|²)
	d := 2.0 * n.Norm2()
	offset := n.Cross(ab).Mul(ac.Norm2()).Add(ac.Cross(n).Mul(ab.Norm2()))
	return p1.Add(offset.Mul(1.0 / d))
}

// Area returns the area of the triangle p1p2p3. It is invariant under
// relabeling of the vertices and always non-negative.
func Area(p1, p2, p3 r3.Vector) float64 {
	return 0.5 * p2.Sub(p1).Cross(p3.Sub(p1)).Norm()
}

// Collinear reports whether the three points span no area.
func Collinear(p1, p2, p3 r3.Vector) bool {
	return p2.Sub(p1).Cross(p3.Sub(p1)).Norm2() == 0
}

// Normal returns the unit normal of the triangle p1p2p3, oriented by the
// right-hand rule over the winding order. The second result is false for
// collinear points, in which case the zero vector is returned.
func Normal(p1, p2, p3 r3.Vector) (r3.Vector, bool) {
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	nn := n.Norm2()
	if nn == 0 {
		return r3.Vector{}, false
	}
	return n.Mul(1.0 / math.Sqrt(nn)), true
}

// Cosine returns the cosine of the angle at b in the triangle abc,
// i.e. the angle between the rays b→a and b→c.
func Cosine(a, b, c r3.Vector) float64 {
	u := a.Sub(b)
	v := c.Sub(b)
	return u.Dot(v) / math.Sqrt(u.Norm2()*v.Norm2())
}

// CotanFromCos converts a cosine to the cotangent of the same angle.
// The result is non-finite when |cos| >= 1, which corresponds to a 0° or
// 180° angle of a degenerate triangle.
func CotanFromCos(cos float64) float64 {
	return cos / math.Sqrt(1.0-cos*cos)
}

// IsObtuse reports whether the angle at b in the triangle abc exceeds 90°.
func IsObtuse(a, b, c r3.Vector) bool {
	return a.Sub(b).Dot(c.Sub(b)) < 0
}
