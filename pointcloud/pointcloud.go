// Package pointcloud generates point sets for exercising and viewing the
// hull builder.
package pointcloud

import (
	"math"
	"math/rand/v2"

	"github.com/furui/fastnoiselite-go"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/smasonuk/hull3d"
)

func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Cube returns the eight corners of an axis-aligned cube with one corner at
// the origin.
func Cube(size float64) []hull3d.Point3d {
	pts := make([]hull3d.Point3d, 0, 8)
	for i := 0; i < 8; i++ {
		pts = append(pts, hull3d.NewPoint3d(
			float64(i&1)*size,
			float64((i>>1)&1)*size,
			float64((i>>2)&1)*size,
		))
	}
	return pts
}

// Grid returns an n*n*n lattice filling [0, size]^3. Most of its points are
// interior or coplanar with a face of the final hull.
func Grid(n int, size float64) []hull3d.Point3d {
	if n < 2 {
		n = 2
	}
	step := size / float64(n-1)
	pts := make([]hull3d.Point3d, 0, n*n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				pts = append(pts, hull3d.NewPoint3d(float64(x)*step, float64(y)*step, float64(z)*step))
			}
		}
	}
	return pts
}

// Ball samples n points uniformly inside a ball centred on the origin.
func Ball(rng *rand.Rand, n int, radius float64) []hull3d.Point3d {
	pts := make([]hull3d.Point3d, 0, n)
	for len(pts) < n {
		v := mgl64.Vec3{2*rng.Float64() - 1, 2*rng.Float64() - 1, 2*rng.Float64() - 1}
		if v.Dot(v) > 1 {
			continue
		}
		v = v.Mul(radius)
		pts = append(pts, hull3d.NewPoint3d(v[0], v[1], v[2]))
	}
	return pts
}

// Sphere samples n points on the surface of a sphere, so every point ends
// up on the hull.
func Sphere(rng *rand.Rand, n int, radius float64) []hull3d.Point3d {
	pts := make([]hull3d.Point3d, 0, n)
	for len(pts) < n {
		v := randomDirection(rng).Mul(radius)
		pts = append(pts, hull3d.NewPoint3d(v[0], v[1], v[2]))
	}
	return pts
}

// NoisySphere displaces sphere points radially with value noise, which
// gives a lumpy blob whose hull drops the points sitting in the dents.
func NoisySphere(rng *rand.Rand, n int, radius, amplitude float64) []hull3d.Point3d {
	type F = fastnoiselite.FNLfloat

	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)
	noise.Seed = rng.Int32()
	noise.Frequency = 1.5

	pts := make([]hull3d.Point3d, 0, n)
	for len(pts) < n {
		dir := randomDirection(rng)
		value := float64(noise.GetNoise3D(F(dir[0]), F(dir[1]), F(dir[2])))
		v := dir.Mul(radius * (1 + amplitude*value))
		pts = append(pts, hull3d.NewPoint3d(v[0], v[1], v[2]))
	}
	return pts
}

func Shuffle(rng *rand.Rand, pts []hull3d.Point3d) {
	rng.Shuffle(len(pts), func(i, j int) {
		pts[i], pts[j] = pts[j], pts[i]
	})
}

func randomDirection(rng *rand.Rand) mgl64.Vec3 {
	for {
		v := mgl64.Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		if l := v.Len(); l > 1e-9 && !math.IsInf(l, 0) {
			return v.Mul(1 / l)
		}
	}
}
