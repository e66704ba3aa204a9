package hull3d

import "github.com/go-gl/mathgl/mgl64"

type ViewVertex struct {
	Index VertexID
	Pos   mgl64.Vec3
}

type ViewFace struct {
	Vertices [3]VertexID
	Normal   mgl64.Vec3
}

// MeshView is a read-only window onto a hull's mesh. It reflects later
// insertions; the slices it returns are copies.
type MeshView struct {
	mesh *Mesh
}

// Vertices returns the vertices used by at least one face, in index order.
// Points swallowed by later insertions are left out but keep their indices
// reserved.
func (mv *MeshView) Vertices() []ViewVertex {
	live := mv.mesh.LiveVertices()
	out := make([]ViewVertex, 0, len(live))
	for i, ok := range live {
		if ok {
			v := mv.mesh.Vertex(VertexID(i))
			out = append(out, ViewVertex{Index: v.Index, Pos: v.Pos})
		}
	}
	return out
}

func (mv *MeshView) Faces() []ViewFace {
	out := make([]ViewFace, mv.mesh.FaceCount())
	for f := range out {
		out[f] = ViewFace{
			Vertices: mv.mesh.FaceVertices(FaceID(f)),
			Normal:   mv.mesh.Face(FaceID(f)).Normal(),
		}
	}
	return out
}

func (mv *MeshView) VertexCount() int {
	n := 0
	for _, ok := range mv.mesh.LiveVertices() {
		if ok {
			n++
		}
	}
	return n
}

func (mv *MeshView) FaceCount() int {
	return mv.mesh.FaceCount()
}

// Position returns the coordinates of any vertex ever added, live or not.
func (mv *MeshView) Position(v VertexID) mgl64.Vec3 {
	return mv.mesh.Pos(v)
}

func (mv *MeshView) SurfaceArea() float64 {
	area := 0.0
	for f := 0; f < mv.mesh.FaceCount(); f++ {
		vs := mv.mesh.FaceVertices(FaceID(f))
		area += TriangleArea(mv.mesh.Pos(vs[0]), mv.mesh.Pos(vs[1]), mv.mesh.Pos(vs[2]))
	}
	return area
}

// Volume sums the signed tetrahedra between the origin and every face.
// Faces wind outwards, so the result is positive for a closed hull.
func (mv *MeshView) Volume() float64 {
	vol := 0.0
	for f := 0; f < mv.mesh.FaceCount(); f++ {
		vs := mv.mesh.FaceVertices(FaceID(f))
		a, b, c := mv.mesh.Pos(vs[0]), mv.mesh.Pos(vs[1]), mv.mesh.Pos(vs[2])
		vol += a.Dot(b.Cross(c))
	}
	return vol / 6
}

// Contains reports whether p lies inside the hull or within eps of its
// boundary.
func (mv *MeshView) Contains(p mgl64.Vec3, eps float64) bool {
	for f := 0; f < mv.mesh.FaceCount(); f++ {
		if mv.mesh.Face(FaceID(f)).Plane.PointOnPlane(p[0], p[1], p[2]) > eps {
			return false
		}
	}
	return mv.mesh.FaceCount() > 0
}
