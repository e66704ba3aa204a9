package hull3d

import "github.com/pkg/errors"

// Validate checks the structural invariants of the mesh: closed 3-cycles,
// face back-references, non-degenerate triangles, symmetric twins joining
// swapped endpoints and vertex back-references. With openBoundary false
// every half-edge must have a twin. Failures wrap ErrTopologyInvariant.
func (m *Mesh) Validate(openBoundary bool) error {
	fs := m.store
	if len(fs.edges) != 3*len(fs.faces) {
		return errors.Wrapf(ErrTopologyInvariant, "%d half-edges for %d faces", len(fs.edges), len(fs.faces))
	}

	for f := range fs.faces {
		face := fs.faces[f]
		ids := edgesOfFace(FaceID(f))
		if face.Edge != ids[0] {
			return errors.Wrapf(ErrTopologyInvariant, "face %d: reference edge %d", f, face.Edge)
		}
		for k, e := range ids {
			he := fs.edges[e]
			if he.Face != FaceID(f) {
				return errors.Wrapf(ErrTopologyInvariant, "edge %d: face %d, want %d", e, he.Face, f)
			}
			if he.Next != ids[(k+1)%3] || he.Prev != ids[(k+2)%3] {
				return errors.Wrapf(ErrTopologyInvariant, "edge %d: broken cycle", e)
			}
			if he.Origin < 0 || int(he.Origin) >= len(m.vertices) {
				return errors.Wrapf(ErrTopologyInvariant, "edge %d: origin %d out of range", e, he.Origin)
			}
		}

		vs := m.FaceVertices(FaceID(f))
		if vs[0] == vs[1] || vs[1] == vs[2] || vs[0] == vs[2] {
			return errors.Wrapf(ErrTopologyInvariant, "face %d: repeated vertex %v", f, vs)
		}
		if TriangleArea(m.Pos(vs[0]), m.Pos(vs[1]), m.Pos(vs[2])) <= 0 {
			return errors.Wrapf(ErrTopologyInvariant, "face %d: zero area", f)
		}
	}

	for i, he := range fs.edges {
		e := EdgeID(i)
		if he.Twin == NoEdge {
			if !openBoundary {
				return errors.Wrapf(ErrTopologyInvariant, "edge %d: no twin on a closed mesh", e)
			}
			continue
		}
		if he.Twin < 0 || int(he.Twin) >= len(fs.edges) {
			return errors.Wrapf(ErrTopologyInvariant, "edge %d: twin %d out of range", e, he.Twin)
		}
		twin := fs.edges[he.Twin]
		if twin.Twin != e {
			return errors.Wrapf(ErrTopologyInvariant, "edge %d: twin %d points back to %d", e, he.Twin, twin.Twin)
		}
		if twin.Origin != m.Dest(e) || m.Dest(he.Twin) != he.Origin {
			return errors.Wrapf(ErrTopologyInvariant, "edge %d: twin %d does not run opposite", e, he.Twin)
		}
	}

	for _, v := range m.vertices {
		if v.Edge == NoEdge {
			continue
		}
		if int(v.Edge) >= len(fs.edges) || fs.edges[v.Edge].Origin != v.Index {
			return errors.Wrapf(ErrTopologyInvariant, "vertex %d: back-reference %d does not leave it", v.Index, v.Edge)
		}
	}
	return nil
}
