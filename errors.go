package hull3d

import "github.com/pkg/errors"

var (
	// ErrDegenerateInput is returned before any mesh mutation when the input
	// cannot span a tetrahedron: fewer than four points, all points
	// coincident, collinear or coplanar, or a non-finite coordinate.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrTopologyInvariant means the mesh can no longer be trusted, usually
	// because the horizon walk did not close. The hull that returned it is
	// unusable.
	ErrTopologyInvariant = errors.New("topology invariant violated")

	// ErrDegenerateTriangle is returned for a triangle with zero or
	// non-finite area.
	ErrDegenerateTriangle = errors.New("degenerate triangle")
)
