package hull3d

import "github.com/pkg/errors"

// rebuildHorizon fills loop with the boundary of the hole left after the
// visible faces were removed. The loop runs backwards around the hole:
// each edge ends where the previous one starts.
func rebuildHorizon(loop *edgeLoop, m *Mesh) error {
	loop.Reset()

	start := NoEdge
	for f := 0; f < m.FaceCount() && start == NoEdge; f++ {
		for e := range m.FaceEdges(FaceID(f)) {
			if m.Edge(e).Twin == NoEdge {
				start = e
				break
			}
		}
	}
	if start == NoEdge {
		return errors.Wrap(ErrTopologyInvariant, "horizon start not found")
	}

	limit := 2 * m.FaceCount()
	e := start
	for {
		if loop.Len() > limit {
			return errors.Wrapf(ErrTopologyInvariant,
				"horizon did not close after %d edges (%d faces), tolerance too small for this input", loop.Len(), m.FaceCount())
		}
		loop.Add(e)

		next, err := nextHorizonEdge(m, e, limit)
		if err != nil {
			return err
		}
		if next == start {
			return nil
		}
		e = next
	}
}

// nextHorizonEdge rotates around the origin of e, across the faces that
// survived, until it meets the twinless edge that ends there.
func nextHorizonEdge(m *Mesh, e EdgeID, limit int) (EdgeID, error) {
	current := m.Edge(e).Prev
	for i := 0; i <= limit; i++ {
		twin := m.Edge(current).Twin
		if twin == NoEdge {
			return current, nil
		}
		current = m.Edge(twin).Prev
	}
	return NoEdge, errors.Wrapf(ErrTopologyInvariant, "no horizon edge around vertex %d", m.Edge(e).Origin)
}

// countOpenEdges counts the half-edges without a twin.
func countOpenEdges(m *Mesh) int {
	n := 0
	for _, he := range m.store.edges {
		if he.Twin == NoEdge {
			n++
		}
	}
	return n
}
