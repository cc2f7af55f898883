package halfedge

import "errors"

var (
	// ErrVertexIndex indicates a face references a vertex outside [0, len(positions)).
	ErrVertexIndex = errors.New("halfedge: face vertex index out of range")
	// ErrDegenerateFace indicates a face lists the same vertex more than once.
	ErrDegenerateFace = errors.New("halfedge: face repeats a vertex")
	// ErrNonManifold indicates an edge is used by more than two faces, or by
	// two faces wound in the same direction.
	ErrNonManifold = errors.New("halfedge: non-manifold or inconsistently wound edge")
)
