package hull3d

import (
	"iter"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Mesh is a triangulated half-edge mesh. All cross references are handles
// into the mesh's own arenas. Vertices are append-only; faces and their
// half-edges are removed together and the arenas compacted, which keeps
// every handle below the first removed slot valid.
type Mesh struct {
	vertices []Vertex
	store    *faceStore
}

func NewMesh(vertexCapacity int) *Mesh {
	if vertexCapacity < 4 {
		vertexCapacity = 4
	}
	return &Mesh{
		vertices: make([]Vertex, 0, vertexCapacity),
		store:    newFaceStore(2 * vertexCapacity),
	}
}

func (m *Mesh) VertexCount() int { return len(m.vertices) }
func (m *Mesh) FaceCount() int   { return m.store.faceCount() }
func (m *Mesh) EdgeCount() int   { return m.store.edgeCount() }

func (m *Mesh) Vertex(v VertexID) Vertex  { return m.vertices[v] }
func (m *Mesh) Face(f FaceID) Face        { return m.store.faces[f] }
func (m *Mesh) Edge(e EdgeID) HalfEdge    { return m.store.edges[e] }
func (m *Mesh) Dest(e EdgeID) VertexID    { return m.store.edges[m.store.edges[e].Next].Origin }
func (m *Mesh) Pos(v VertexID) mgl64.Vec3 { return m.vertices[v].Pos }

// AddVertex appends a vertex with the next sequential index.
func (m *Mesh) AddVertex(x, y, z float64) Vertex {
	v := Vertex{
		Index: VertexID(len(m.vertices)),
		Pos:   mgl64.Vec3{x, y, z},
		Edge:  NoEdge,
	}
	m.vertices = append(m.vertices, v)
	return v
}

// AddFace creates the triangle v0->v1->v2. Its half-edges are linked into a
// cycle but left without twins; pairing them is up to the caller.
func (m *Mesh) AddFace(v0, v1, v2 VertexID) (FaceID, error) {
	plane, err := NewPlane(m.vertices[v0].Pos, m.vertices[v1].Pos, m.vertices[v2].Pos)
	if err != nil {
		return NoFace, errors.Wrapf(err, "face (%d, %d, %d)", v0, v1, v2)
	}

	f := FaceID(m.store.faceCount())
	ids := edgesOfFace(f)
	origins := [3]VertexID{v0, v1, v2}

	var edges [3]HalfEdge
	for k := 0; k < 3; k++ {
		edges[k] = HalfEdge{
			Origin: origins[k],
			Face:   f,
			Twin:   NoEdge,
			Next:   ids[(k+1)%3],
			Prev:   ids[(k+2)%3],
		}
		if m.vertices[origins[k]].Edge == NoEdge {
			m.vertices[origins[k]].Edge = ids[k]
		}
	}

	m.store.addFace(Face{Edge: ids[0], Plane: plane}, edges)
	return f, nil
}

func (m *Mesh) SetTwin(a, b EdgeID) {
	m.store.edges[a].Twin = b
	m.store.edges[b].Twin = a
}

// RemoveFaceAt removes a single face. It reports false for an out of range
// index.
func (m *Mesh) RemoveFaceAt(f FaceID) bool {
	if f < 0 || int(f) >= m.store.faceCount() {
		return false
	}
	return m.RemoveFacesFunc(func(g FaceID) bool { return g == f }) == 1
}

// RemoveFacesFunc removes every face for which remove returns true and
// compacts the arenas once. Twins of the removed half-edges lose their
// pairing and vertex back-references into the removed faces are cleared.
// The cost is linear in the number of faces, whatever the number removed.
func (m *Mesh) RemoveFacesFunc(remove func(FaceID) bool) int {
	var dead []FaceID
	for f := 0; f < m.store.faceCount(); f++ {
		if remove(FaceID(f)) {
			dead = append(dead, FaceID(f))
		}
	}
	if len(dead) == 0 {
		return 0
	}

	isDead := make([]bool, m.store.faceCount())
	for _, f := range dead {
		isDead[f] = true
		m.detachFace(f)
	}

	removed, remapEdge := m.store.compact(func(f FaceID) bool { return isDead[f] })
	for i := range m.vertices {
		m.vertices[i].Edge = remapEdge(m.vertices[i].Edge)
	}
	return removed
}

func (m *Mesh) detachFace(f FaceID) {
	for _, e := range edgesOfFace(f) {
		he := &m.store.edges[e]
		he.Face = NoFace
		if he.Twin != NoEdge {
			m.store.edges[he.Twin].Twin = NoEdge
			he.Twin = NoEdge
		}
		if m.vertices[he.Origin].Edge == e {
			m.vertices[he.Origin].Edge = NoEdge
		}
	}
}

// FindTwin scans every face for the half-edge running opposite to e and
// pairs the two. It is a linear search kept for debugging and for meshes
// assembled by hand; the hull builder links twins directly.
func (m *Mesh) FindTwin(e EdgeID) bool {
	start, end := m.store.edges[e].Origin, m.Dest(e)
	for f := 0; f < m.store.faceCount(); f++ {
		for he := range m.FaceEdges(FaceID(f)) {
			if he == e {
				continue
			}
			if m.store.edges[he].Origin == end && m.Dest(he) == start {
				m.SetTwin(e, he)
				return true
			}
		}
	}
	return false
}

// VertexEdges walks the outgoing half-edges around v, starting at its
// back-reference. On an open fan the walk stops at the first half-edge
// without a twin. It never takes more steps than there are half-edges.
func (m *Mesh) VertexEdges(v VertexID) iter.Seq[EdgeID] {
	return func(yield func(EdgeID) bool) {
		start := m.vertices[v].Edge
		if start == NoEdge {
			return
		}
		limit := m.store.edgeCount()
		e := start
		for i := 0; i < limit; i++ {
			if !yield(e) {
				return
			}
			twin := m.store.edges[m.store.edges[e].Prev].Twin
			if twin == NoEdge || twin == start {
				return
			}
			e = twin
		}
	}
}

// LiveVertices reports, per vertex index, whether any face uses the vertex.
func (m *Mesh) LiveVertices() []bool {
	live := make([]bool, len(m.vertices))
	for _, he := range m.store.edges {
		if he.Face != NoFace {
			live[he.Origin] = true
		}
	}
	return live
}
