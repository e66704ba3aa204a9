package hull3d

// edgeLoop is a cyclic list of half-edges. The hull keeps one across
// insertions so the horizon walk does not reallocate.
type edgeLoop struct {
	edges []EdgeID
}

func newEdgeLoop(size int) *edgeLoop {
	return &edgeLoop{edges: make([]EdgeID, 0, size)}
}

func (l *edgeLoop) Reset() {
	l.edges = l.edges[:0]
}

func (l *edgeLoop) Add(e EdgeID) {
	l.edges = append(l.edges, e)
}

func (l *edgeLoop) Len() int {
	return len(l.edges)
}

// At wraps around in both directions, so At(-1) is the last edge.
func (l *edgeLoop) At(i int) EdgeID {
	n := len(l.edges)
	return l.edges[((i%n)+n)%n]
}
