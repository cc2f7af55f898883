package props

import "errors"

var (
	// ErrDegenerateGeometry indicates geometry carrying no usable direction
	// or angle: a collinear triangle, or a vertex whose accumulated normal
	// cancelled to zero.
	ErrDegenerateGeometry = errors.New("props: degenerate geometry")
	// ErrInvalidTopology indicates connectivity outside an operator's
	// precondition: a non-triangular face, an empty one-ring, or a border
	// edge where both incident triangles are required.
	ErrInvalidTopology = errors.New("props: invalid mesh topology")
)
