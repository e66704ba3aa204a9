package hull3d

import (
	"iter"

	"github.com/go-gl/mathgl/mgl64"
)

type (
	VertexID int
	FaceID   int
	EdgeID   int
)

const (
	NoVertex VertexID = -1
	NoFace   FaceID   = -1
	NoEdge   EdgeID   = -1
)

type Vertex struct {
	Index VertexID
	Pos   mgl64.Vec3

	// Edge is one outgoing half-edge, or NoEdge once every face around the
	// vertex has been removed.
	Edge EdgeID
}

type HalfEdge struct {
	Origin VertexID
	Face   FaceID
	Twin   EdgeID
	Next   EdgeID
	Prev   EdgeID
}

// Face is a triangle. Its plane is computed once from the winding at
// creation and never changes; topology edits replace faces wholesale.
type Face struct {
	Edge  EdgeID
	Plane Plane
}

func (f Face) Normal() mgl64.Vec3 {
	return f.Plane.Normal
}

func (f Face) SignedDistance(p mgl64.Vec3) float64 {
	return f.Plane.SignedDistance(p)
}

// edgesOfFace is the fixed arena layout: face f owns 3f, 3f+1 and 3f+2.
func edgesOfFace(f FaceID) [3]EdgeID {
	base := EdgeID(3 * f)
	return [3]EdgeID{base, base + 1, base + 2}
}

// FaceEdges walks the half-edge cycle of f starting at its reference edge.
// The walk stops after three steps even if the next links are corrupt.
func (m *Mesh) FaceEdges(f FaceID) iter.Seq[EdgeID] {
	return func(yield func(EdgeID) bool) {
		if f < 0 || int(f) >= m.store.faceCount() {
			return
		}
		e := m.store.faces[f].Edge
		for i := 0; i < 3 && e != NoEdge; i++ {
			if !yield(e) {
				return
			}
			e = m.store.edges[e].Next
		}
	}
}

// FaceVertices returns the three vertices of f in winding order.
func (m *Mesh) FaceVertices(f FaceID) [3]VertexID {
	var out [3]VertexID
	i := 0
	for e := range m.FaceEdges(f) {
		out[i] = m.store.edges[e].Origin
		i++
	}
	return out
}
