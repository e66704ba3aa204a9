package hull3d

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Hull is a convex hull under construction. Points are added one at a time
// with Insert; between calls the mesh is always a closed, outward-facing
// triangulation. A Hull must not be used from several goroutines at once.
type Hull struct {
	mesh    *Mesh
	cfg     config
	log     *zap.Logger
	horizon *edgeLoop

	// scratch for markVisible
	visible []bool
	stack   []FaceID

	// err is set by the first fatal failure; the hull refuses further work.
	err error
}

// Build computes the convex hull of points, reading coordinates through the
// three projection functions. The four simplex points come first in the
// mesh, the rest are inserted in input order.
func Build[T any](points []T, x, y, z func(T) float64, opts ...Option) (*Hull, error) {
	coords := make([]mgl64.Vec3, len(points))
	for i, p := range points {
		coords[i] = mgl64.Vec3{x(p), y(p), z(p)}
		if !isFinite(coords[i]) {
			return nil, errors.Wrapf(ErrDegenerateInput, "point %d has a non-finite coordinate %v", i, coords[i])
		}
	}

	simplex, err := SelectInitialSimplex(coords)
	if err != nil {
		return nil, err
	}

	h := newHull(len(coords), opts...)
	if ce := h.log.Check(zap.DebugLevel, "initial simplex"); ce != nil {
		ce.Write(zap.Ints("indices", simplex[:]), zap.Int("points", len(coords)))
	}

	if err := h.buildTetrahedron(coords, simplex); err != nil {
		return nil, err
	}

	for i, p := range coords {
		if i == simplex[0] || i == simplex[1] || i == simplex[2] || i == simplex[3] {
			continue
		}
		if _, err := h.insert(p); err != nil {
			return nil, errors.WithMessagef(err, "inserting point %d", i)
		}
	}
	return h, nil
}

// BuildPoints is Build for a slice of Point3d.
func BuildPoints(points []Point3d, opts ...Option) (*Hull, error) {
	return Build(points, PointX, PointY, PointZ, opts...)
}

func newHull(n int, opts ...Option) *Hull {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacity < n {
		cfg.capacity = n
	}
	return &Hull{
		mesh:    NewMesh(cfg.capacity),
		cfg:     cfg,
		log:     cfg.logger,
		horizon: newEdgeLoop(16),
	}
}

// Insert adds (x, y, z) to the hull. It reports false, without touching the
// mesh, when the point is inside the hull or on its boundary.
func (h *Hull) Insert(x, y, z float64) (bool, error) {
	p := mgl64.Vec3{x, y, z}
	if !isFinite(p) {
		return false, errors.Wrapf(ErrDegenerateInput, "non-finite point %v", p)
	}
	return h.insert(p)
}

// Err returns the failure that broke the hull, if any.
func (h *Hull) Err() error {
	return h.err
}

// Validate checks that the mesh is a closed, consistent triangulation.
func (h *Hull) Validate() error {
	return h.mesh.Validate(false)
}

// View returns a read-only view of the current mesh.
func (h *Hull) View() *MeshView {
	return &MeshView{mesh: h.mesh}
}

func (h *Hull) insert(p mgl64.Vec3) (bool, error) {
	if h.err != nil {
		return false, h.err
	}

	m := h.mesh
	seed := h.furthestVisibleFace(p)
	if seed == NoFace {
		return false, nil
	}

	visible := h.markVisible(seed, p)
	removed := m.RemoveFacesFunc(func(f FaceID) bool { return visible[f] })

	if err := rebuildHorizon(h.horizon, m); err != nil {
		return false, h.fail(err, p)
	}
	// a hole the walk did not reach would stay open
	if open := countOpenEdges(m); open != h.horizon.Len() {
		return false, h.fail(errors.Wrapf(ErrTopologyInvariant,
			"horizon covers %d of %d open edges", h.horizon.Len(), open), p)
	}

	v := m.AddVertex(p[0], p[1], p[2])
	if err := h.buildNewTriangles(v.Index, h.horizon); err != nil {
		return false, h.fail(err, p)
	}

	if ce := h.log.Check(zap.DebugLevel, "point inserted"); ce != nil {
		ce.Write(
			zap.Int("vertex", int(v.Index)),
			zap.Int("removed", removed),
			zap.Int("horizon", h.horizon.Len()),
			zap.Int("faces", m.FaceCount()),
		)
	}

	if h.cfg.validate {
		if err := m.Validate(false); err != nil {
			return false, h.fail(err, p)
		}
	}
	return true, nil
}

// furthestVisibleFace returns the face p is furthest in front of, or NoFace
// when no face is further than the tolerance.
func (h *Hull) furthestVisibleFace(p mgl64.Vec3) FaceID {
	m := h.mesh
	seed, best := NoFace, h.cfg.tolerance
	for f := 0; f < m.FaceCount(); f++ {
		if d := m.Face(FaceID(f)).SignedDistance(p); d > best {
			seed, best = FaceID(f), d
		}
	}
	return seed
}

// markVisible flood-fills across twins from seed, collecting the connected
// faces that see p. Visible faces outside that component are kept, so the
// hole left by removing the result has a single boundary.
func (h *Hull) markVisible(seed FaceID, p mgl64.Vec3) []bool {
	m := h.mesh
	n := m.FaceCount()
	if cap(h.visible) < n {
		h.visible = make([]bool, n)
	}
	visible := h.visible[:n]
	clear(visible)

	visible[seed] = true
	stack := append(h.stack[:0], seed)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for e := range m.FaceEdges(f) {
			twin := m.Edge(e).Twin
			if twin == NoEdge {
				continue
			}
			g := m.Edge(twin).Face
			if visible[g] || m.Face(g).SignedDistance(p) <= h.cfg.tolerance {
				continue
			}
			visible[g] = true
			stack = append(stack, g)
		}
	}
	h.stack = stack
	return visible
}

func (h *Hull) fail(err error, p mgl64.Vec3) error {
	if !errors.Is(err, ErrTopologyInvariant) {
		err = errors.Wrapf(ErrTopologyInvariant, "%v", err)
	}
	h.err = err
	h.log.Warn("hull construction failed",
		zap.Error(err),
		zap.Float64s("point", p[:]),
		zap.Int("faces", h.mesh.FaceCount()),
	)
	return err
}

func (h *Hull) buildTetrahedron(points []mgl64.Vec3, simplex [4]int) error {
	m := h.mesh
	var v [4]VertexID
	for i, idx := range simplex {
		p := points[idx]
		v[i] = m.AddVertex(p[0], p[1], p[2]).Index
	}

	plane, err := NewPlane(m.Pos(v[0]), m.Pos(v[1]), m.Pos(v[2]))
	if err != nil {
		return errors.Wrapf(ErrDegenerateInput, "tetrahedron base: %v", err)
	}

	// the apex must end up behind the base so every face points outwards
	var base FaceID
	if plane.SignedDistance(m.Pos(v[3])) < 0 {
		base, err = m.AddFace(v[0], v[1], v[2])
	} else {
		base, err = m.AddFace(v[2], v[1], v[0])
	}
	if err != nil {
		return errors.Wrapf(ErrDegenerateInput, "tetrahedron base: %v", err)
	}

	h.horizon.Reset()
	e := m.Face(base).Edge
	for i := 0; i < 3; i++ {
		h.horizon.Add(e)
		e = m.Edge(e).Prev
	}
	if err := h.buildNewTriangles(v[3], h.horizon); err != nil {
		return errors.Wrapf(ErrDegenerateInput, "tetrahedron sides: %v", err)
	}
	return nil
}

// buildNewTriangles closes the hole bounded by loop with a fan of triangles
// around v. Each new face is twinned to its horizon edge and to its two
// neighbours in the fan.
func (h *Hull) buildNewTriangles(v VertexID, loop *edgeLoop) error {
	m := h.mesh
	first, last := NoFace, NoFace
	for i := 0; i < loop.Len(); i++ {
		e := loop.At(i)
		f, err := m.AddFace(m.Dest(e), m.Edge(e).Origin, v)
		if err != nil {
			return err
		}

		lead := m.Face(f).Edge
		m.SetTwin(lead, e)
		if last == NoFace {
			first = f
		} else {
			m.SetTwin(m.Edge(lead).Prev, m.Edge(m.Face(last).Edge).Next)
		}
		last = f
	}
	if first == NoFace {
		return errors.Wrap(ErrTopologyInvariant, "empty horizon")
	}

	m.SetTwin(m.Edge(m.Face(first).Edge).Prev, m.Edge(m.Face(last).Edge).Next)
	return nil
}
