package view

import (
	"github.com/go-gl/mathgl/mgl64"
)

const conversionFactor = 700

// Camera orbits a fixed target. Points are rotated about the target, pushed
// Distance units away along +z and projected with a pinhole model.
type Camera struct {
	Target   mgl64.Vec3
	Yaw      float64
	Pitch    float64
	Distance float64

	rot mgl64.Mat3
}

func NewCamera(target mgl64.Vec3, distance float64) *Camera {
	c := &Camera{Target: target, Distance: distance, Pitch: 0.4}
	c.update()
	return c
}

func (c *Camera) Rotate(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	c.update()
}

func (c *Camera) update() {
	c.rot = mgl64.Rotate3DX(c.Pitch).Mul3(mgl64.Rotate3DY(c.Yaw))
}

// ToCamera moves a world point into camera space, the camera sitting at the
// origin and looking down +z.
func (c *Camera) ToCamera(p mgl64.Vec3) mgl64.Vec3 {
	v := c.rot.Mul3x1(p.Sub(c.Target))
	v[2] += c.Distance
	return v
}

// RotateNormal applies only the rotation, for direction vectors.
func (c *Camera) RotateNormal(n mgl64.Vec3) mgl64.Vec3 {
	return c.rot.Mul3x1(n)
}

// Project returns screen coordinates for a camera-space point. ok is false
// for points at or behind the camera.
func (c *Camera) Project(v mgl64.Vec3, width, height int) (x, y float32, ok bool) {
	if v[2] <= 1e-6 {
		return 0, 0, false
	}
	x = float32(float64(width)/2 + conversionFactor*v[0]/v[2])
	y = float32(float64(height)/2 - conversionFactor*v[1]/v[2])
	return x, y, true
}
