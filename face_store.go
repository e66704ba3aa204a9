package hull3d

// faceStore keeps faces and their half-edges in two parallel arenas. Edges
// are appended three at a time with their face, so removing faces and
// compacting keeps edge e inside face e/3.
type faceStore struct {
	faces []Face
	edges []HalfEdge

	// scratch for compact, reused between calls
	remap []FaceID
}

func newFaceStore(faceCapacity int) *faceStore {
	return &faceStore{
		faces: make([]Face, 0, faceCapacity),
		edges: make([]HalfEdge, 0, 3*faceCapacity),
	}
}

func (fs *faceStore) addFace(f Face, edges [3]HalfEdge) FaceID {
	id := FaceID(len(fs.faces))
	fs.faces = append(fs.faces, f)
	fs.edges = append(fs.edges, edges[0], edges[1], edges[2])
	return id
}

func (fs *faceStore) faceCount() int {
	return len(fs.faces)
}

func (fs *faceStore) edgeCount() int {
	return len(fs.edges)
}

// compact drops every face for which dead returns true, together with its
// three half-edges, and renumbers the survivors in place. Faces keep their
// relative order. The returned function maps an old edge handle to its new
// one (NoEdge for removed edges) and is valid until the next compact.
func (fs *faceStore) compact(dead func(FaceID) bool) (removed int, remapEdge func(EdgeID) EdgeID) {
	if cap(fs.remap) < len(fs.faces) {
		fs.remap = make([]FaceID, len(fs.faces))
	}
	remap := fs.remap[:len(fs.faces)]

	for f := range fs.faces {
		if dead(FaceID(f)) {
			remap[f] = NoFace
			removed++
			continue
		}
		remap[f] = FaceID(f - removed)
	}

	remapEdge = func(e EdgeID) EdgeID {
		if e == NoEdge {
			return NoEdge
		}
		nf := remap[e/3]
		if nf == NoFace {
			return NoEdge
		}
		return EdgeID(3*nf) + e%3
	}

	if removed == 0 {
		return 0, remapEdge
	}

	for f, nf := range remap {
		if nf == NoFace {
			continue
		}
		face := fs.faces[f]
		face.Edge = remapEdge(face.Edge)
		fs.faces[nf] = face

		for k := 0; k < 3; k++ {
			he := fs.edges[3*f+k]
			he.Face = nf
			he.Twin = remapEdge(he.Twin)
			he.Next = remapEdge(he.Next)
			he.Prev = remapEdge(he.Prev)
			fs.edges[3*int(nf)+k] = he
		}
	}

	fs.faces = fs.faces[:len(fs.faces)-removed]
	fs.edges = fs.edges[:len(fs.edges)-3*removed]
	return removed, remapEdge
}
