// Package halfedge provides a read-only adjacency view over triangulated
// surface meshes. The Mesh interface is the traversal capability consumed by
// the discrete operators; Surface is a concrete halfedge structure built
// from an indexed triangle list.
package halfedge

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Vertex, Face and Halfedge are handles into a mesh. A handle doubles as
// the element's stable index: Vertex handles are dense in [0, VertexCount).
type (
	Vertex   int
	Face     int
	Halfedge int
)

const (
	NoVertex   Vertex   = -1
	NoFace     Face     = -1
	NoHalfedge Halfedge = -1
)

// Mesh is the adjacency facade the operator packages traverse. Implementations
// must be safe for concurrent readers; no method mutates the mesh.
type Mesh interface {
	VertexCount() int
	FaceCount() int

	// Position returns the coordinates of a vertex.
	Position(v Vertex) r3.Vector

	// HalfedgesAround returns the halfedges whose target is v, one per
	// incident face, in cyclic order for interior vertices. The slice is
	// empty for an isolated vertex.
	HalfedgesAround(v Vertex) []Halfedge

	Source(he Halfedge) Vertex
	Target(he Halfedge) Vertex

	// Next returns the halfedge following he around its face, or NoHalfedge
	// past the end of an unclosed border loop.
	Next(he Halfedge) Halfedge

	// Opposite returns the twin running the other way along the same edge.
	// On a border edge the twin has Face() == NoFace.
	Opposite(he Halfedge) Halfedge

	Face(he Halfedge) Face

	// FaceHalfedge returns the first halfedge of a face; the triangle's
	// corners are Source(he), Target(he), Target(Next(he)).
	FaceHalfedge(f Face) Halfedge
}

// Surface is an immutable halfedge structure over an indexed triangle list.
// Connectivity is stored in flat slices addressed by the handle values.
type Surface struct {
	pos []r3.Vector

	heSource []Vertex
	heTarget []Vertex
	heNext   []Halfedge
	heTwin   []Halfedge
	heFace   []Face

	faceHE []Halfedge

	// One incoming interior halfedge per vertex, chosen so that the forward
	// walk in HalfedgesAround covers the full fan of a border vertex.
	vertexIn []Halfedge

	nInterior int
}

// NewSurface builds the halfedge connectivity for the given triangles.
// Winding must be consistent across faces and each undirected edge may be
// shared by at most two faces; violations return ErrVertexIndex,
// ErrDegenerateFace or ErrNonManifold. Border edges are allowed.
func NewSurface(positions []r3.Vector, faces [][3]int) (*Surface, error) {
	nv := len(positions)
	nf := len(faces)
	nhe := 3 * nf

	s := &Surface{
		pos:       append([]r3.Vector(nil), positions...),
		heSource:  make([]Vertex, nhe, nhe+nf),
		heTarget:  make([]Vertex, nhe, nhe+nf),
		heNext:    make([]Halfedge, nhe, nhe+nf),
		heTwin:    make([]Halfedge, nhe, nhe+nf),
		heFace:    make([]Face, nhe, nhe+nf),
		faceHE:    make([]Halfedge, nf),
		vertexIn:  make([]Halfedge, nv),
		nInterior: nhe,
	}
	for v := range s.vertexIn {
		s.vertexIn[v] = NoHalfedge
	}

	directed := make(map[[2]Vertex]Halfedge, nhe)

	for f, corners := range faces {
		for _, c := range corners {
			if c < 0 || c >= nv {
				return nil, fmt.Errorf("face %d references vertex %d of %d: %w",
					f, c, nv, ErrVertexIndex)
			}
		}
		if corners[0] == corners[1] || corners[1] == corners[2] || corners[2] == corners[0] {
			return nil, fmt.Errorf("face %d (%d,%d,%d): %w",
				f, corners[0], corners[1], corners[2], ErrDegenerateFace)
		}

		base := Halfedge(3 * f)
		s.faceHE[f] = base
		for k := 0; k < 3; k++ {
			he := base + Halfedge(k)
			src := Vertex(corners[k])
			tgt := Vertex(corners[(k+1)%3])

			s.heSource[he] = src
			s.heTarget[he] = tgt
			s.heNext[he] = base + Halfedge((k+1)%3)
			s.heTwin[he] = NoHalfedge
			s.heFace[he] = Face(f)

			key := [2]Vertex{src, tgt}
			if prev, ok := directed[key]; ok {
				return nil, fmt.Errorf("edge %d->%d shared by faces %d and %d: %w",
					src, tgt, s.heFace[prev], f, ErrNonManifold)
			}
			directed[key] = he

			if twin, ok := directed[[2]Vertex{tgt, src}]; ok {
				s.heTwin[he] = twin
				s.heTwin[twin] = he
			}
		}
	}

	s.addBorders()
	s.chooseVertexAnchors()
	return s, nil
}

// addBorders creates a twin with Face == NoFace for every unmatched
// halfedge and chains border twins into loops where possible.
func (s *Surface) addBorders() {
	borderAt := make(map[Vertex]Halfedge)
	for he := Halfedge(0); he < Halfedge(s.nInterior); he++ {
		if s.heTwin[he] != NoHalfedge {
			continue
		}
		b := Halfedge(len(s.heSource))
		s.heSource = append(s.heSource, s.heTarget[he])
		s.heTarget = append(s.heTarget, s.heSource[he])
		s.heNext = append(s.heNext, NoHalfedge)
		s.heTwin = append(s.heTwin, he)
		s.heFace = append(s.heFace, NoFace)
		s.heTwin[he] = b
		borderAt[s.heTarget[he]] = b
	}
	for b := Halfedge(s.nInterior); b < Halfedge(len(s.heSource)); b++ {
		if nxt, ok := borderAt[s.heTarget[b]]; ok {
			s.heNext[b] = nxt
		}
	}
}

// chooseVertexAnchors picks the incoming halfedge each fan walk starts
// from. For a border vertex that is the clockwise-most interior halfedge,
// so the forward walk reaches every incident face before hitting the border.
func (s *Surface) chooseVertexAnchors() {
	for he := Halfedge(0); he < Halfedge(s.nInterior); he++ {
		v := s.heTarget[he]
		if s.vertexIn[v] == NoHalfedge || s.heFace[s.heTwin[he]] == NoFace {
			s.vertexIn[v] = he
		}
	}
}

func (s *Surface) VertexCount() int { return len(s.pos) }
func (s *Surface) FaceCount() int   { return len(s.faceHE) }

func (s *Surface) Position(v Vertex) r3.Vector { return s.pos[v] }

func (s *Surface) Source(he Halfedge) Vertex     { return s.heSource[he] }
func (s *Surface) Target(he Halfedge) Vertex     { return s.heTarget[he] }
func (s *Surface) Next(he Halfedge) Halfedge     { return s.heNext[he] }
func (s *Surface) Opposite(he Halfedge) Halfedge { return s.heTwin[he] }
func (s *Surface) Face(he Halfedge) Face         { return s.heFace[he] }
func (s *Surface) FaceHalfedge(f Face) Halfedge  { return s.faceHE[f] }

// HalfedgesAround walks the fan of incoming halfedges around v by repeated
// Opposite(Next(·)) steps, stopping at the start or at a border.
func (s *Surface) HalfedgesAround(v Vertex) []Halfedge {
	start := s.vertexIn[v]
	if start == NoHalfedge {
		return nil
	}
	var ring []Halfedge
	he := start
	for i := 0; i <= s.nInterior; i++ {
		ring = append(ring, he)
		he = s.heTwin[s.heNext[he]]
		if he == start || s.heFace[he] == NoFace {
			return ring
		}
	}
	// A cycle that skips the anchor means corrupted connectivity.
	panic(fmt.Sprintf("halfedge: fan around vertex %d does not close", v))
}
