package hull3d

import "github.com/go-gl/mathgl/mgl64"

type Point3d struct {
	X float64
	Y float64
	Z float64
}

func NewPoint3d(x, y, z float64) Point3d {
	return Point3d{
		X: x,
		Y: y,
		Z: z,
	}
}

func (p Point3d) Vec() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// Projections for Build when the input is already a slice of Point3d.
func PointX(p Point3d) float64 { return p.X }
func PointY(p Point3d) float64 { return p.Y }
func PointZ(p Point3d) float64 { return p.Z }
