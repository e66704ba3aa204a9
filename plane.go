package hull3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Plane is an oriented plane in Hesse normal form: every point p on it
// satisfies Normal.Dot(p) == D.
type Plane struct {
	Normal mgl64.Vec3
	D      float64
}

// NewPlane returns the plane through a, b and c. The normal follows the
// right-hand rule for the winding a->b->c.
func NewPlane(a, b, c mgl64.Vec3) (Plane, error) {
	cross := b.Sub(a).Cross(c.Sub(a))
	length := cross.Len()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Plane{}, errors.Wrapf(ErrDegenerateTriangle, "points %v %v %v", a, b, c)
	}

	normal := cross.Mul(1 / length)
	return Plane{Normal: normal, D: normal.Dot(a)}, nil
}

// SignedDistance is positive in front of the plane (the side the normal
// points to), negative behind it and zero on it.
func (p Plane) SignedDistance(v mgl64.Vec3) float64 {
	return p.Normal.Dot(v) - p.D
}

func (p Plane) PointOnPlane(x, y, z float64) float64 {
	return p.SignedDistance(mgl64.Vec3{x, y, z})
}
