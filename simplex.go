package hull3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// SelectInitialSimplex picks four input indices spanning a tetrahedron of
// non-zero volume:
//
//   - p1, p2 are the minimum and maximum along the axis with the largest
//     spread, ties going to x, then y, then z;
//   - p3 is the point furthest from the line p1p2;
//   - p4 is the point furthest from the plane p1p2p3, on either side.
//
// It fails with ErrDegenerateInput when there are fewer than four points
// or when they are all coincident, collinear or coplanar.
func SelectInitialSimplex(points []mgl64.Vec3) ([4]int, error) {
	if len(points) < 4 {
		return [4]int{}, errors.Wrapf(ErrDegenerateInput, "at least 4 points are required, got %d", len(points))
	}

	p1, p2, err := extremePair(points)
	if err != nil {
		return [4]int{}, err
	}
	p3, err := furthestFromLine(points, p1, p2)
	if err != nil {
		return [4]int{}, err
	}
	p4, err := furthestFromPlane(points, p1, p2, p3)
	if err != nil {
		return [4]int{}, err
	}
	return [4]int{p1, p2, p3, p4}, nil
}

func extremePair(points []mgl64.Vec3) (int, int, error) {
	var lo, hi [3]int
	for i, p := range points {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < points[lo[axis]][axis] {
				lo[axis] = i
			}
			if p[axis] > points[hi[axis]][axis] {
				hi[axis] = i
			}
		}
	}

	best, spread := -1, 0.0
	for axis := 0; axis < 3; axis++ {
		d := points[hi[axis]][axis] - points[lo[axis]][axis]
		if d > spread {
			best, spread = axis, d
		}
	}
	if best < 0 {
		return 0, 0, errors.Wrap(ErrDegenerateInput, "all points coincide")
	}
	return lo[best], hi[best], nil
}

func furthestFromLine(points []mgl64.Vec3, p1, p2 int) (int, error) {
	a, b := points[p1], points[p2]
	p3, best := -1, 0.0
	for i, p := range points {
		if i == p1 || i == p2 {
			continue
		}
		if d := SquaredDistanceToLine(a, b, p); d > best {
			p3, best = i, d
		}
	}
	if p3 < 0 {
		return 0, errors.Wrap(ErrDegenerateInput, "all points are collinear")
	}
	return p3, nil
}

func furthestFromPlane(points []mgl64.Vec3, p1, p2, p3 int) (int, error) {
	plane, err := NewPlane(points[p1], points[p2], points[p3])
	if err != nil {
		return 0, errors.Wrapf(ErrDegenerateInput, "base triangle: %v", err)
	}

	p4, best := -1, 0.0
	for i, p := range points {
		if i == p1 || i == p2 || i == p3 {
			continue
		}
		if d := math.Abs(plane.SignedDistance(p)); d > best {
			p4, best = i, d
		}
	}
	if p4 < 0 {
		return 0, errors.Wrap(ErrDegenerateInput, "all points are coplanar")
	}
	return p4, nil
}
