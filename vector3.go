package hull3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SquaredDistanceToLine returns the squared perpendicular distance from p to
// the infinite line through a and b. When a and b coincide it falls back to
// the squared distance between p and a.
func SquaredDistanceToLine(a, b, p mgl64.Vec3) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)

	abLen2 := ab.Dot(ab)
	if abLen2 == 0 {
		return ap.Dot(ap)
	}

	d := ap.Sub(ab.Mul(ap.Dot(ab) / abLen2))
	return d.Dot(d)
}

// TriangleArea is half the length of the cross product of the two edges
// leaving a.
func TriangleArea(a, b, c mgl64.Vec3) float64 {
	return b.Sub(a).Cross(c.Sub(a)).Len() / 2
}

func isFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
