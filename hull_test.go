package hull3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var tetraPoints = []Point3d{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
}

func cubePoints() []Point3d {
	pts := make([]Point3d, 0, 8)
	for i := 0; i < 8; i++ {
		pts = append(pts, NewPoint3d(float64(i&1), float64((i>>1)&1), float64((i>>2)&1)))
	}
	return pts
}

func TestBuildTetrahedron(t *testing.T) {
	h, err := BuildPoints(tetraPoints)
	require.NoError(t, err)
	require.NoError(t, h.Validate())

	mv := h.View()
	assert.Equal(t, 4, mv.VertexCount())
	assert.Equal(t, 4, mv.FaceCount())
	assert.Equal(t, 2*mv.VertexCount()-4, mv.FaceCount())
	assert.InDelta(t, 1.0/6, mv.Volume(), float64EqualityThreshold)

	// every face points away from the opposite vertex
	for _, f := range mv.Faces() {
		var opposite VertexID
		for v := VertexID(0); v < 4; v++ {
			if v != f.Vertices[0] && v != f.Vertices[1] && v != f.Vertices[2] {
				opposite = v
			}
		}
		d := f.Normal.Dot(mv.Position(opposite).Sub(mv.Position(f.Vertices[0])))
		assert.Less(t, d, 0.0)
	}
}

func TestBuildCube(t *testing.T) {
	h, err := BuildPoints(cubePoints())
	require.NoError(t, err)
	require.NoError(t, h.Validate())

	mv := h.View()
	assert.Equal(t, 8, mv.VertexCount())
	assert.Equal(t, 12, mv.FaceCount())
	assert.InDelta(t, 6.0, mv.SurfaceArea(), float64EqualityThreshold)
	assert.InDelta(t, 1.0, mv.Volume(), float64EqualityThreshold)
}

func TestBuildGeneric(t *testing.T) {
	type sample struct {
		name    string
		lat     float64
		lon     float64
		elevate float64
	}
	samples := []sample{
		{"a", 0, 0, 0}, {"b", 2, 0, 0}, {"c", 0, 2, 0}, {"d", 0, 0, 2}, {"e", 2, 2, 2},
	}

	h, err := Build(samples,
		func(s sample) float64 { return s.lat },
		func(s sample) float64 { return s.lon },
		func(s sample) float64 { return s.elevate },
	)
	require.NoError(t, err)
	require.NoError(t, h.Validate())
	assert.Equal(t, 5, h.View().VertexCount())
	assert.Equal(t, 6, h.View().FaceCount())
}

func TestBuildDegenerate(t *testing.T) {
	testCases := []struct {
		name   string
		points []Point3d
	}{
		{"too few", tetraPoints[:3]},
		{"coplanar", []Point3d{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}},
		{"nan", []Point3d{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, math.NaN()}}},
		{"inf", []Point3d{{0, 0, 0}, {math.Inf(-1), 0, 0}, {0, 1, 0}, {0, 0, 1}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := BuildPoints(tc.points)
			require.ErrorIs(t, err, ErrDegenerateInput)
			assert.Nil(t, h)
		})
	}
}

func TestInsertInterior(t *testing.T) {
	h, err := BuildPoints(tetraPoints)
	require.NoError(t, err)
	before := h.View().Faces()

	for i := 0; i < 2; i++ {
		inserted, err := h.Insert(0.1, 0.1, 0.1)
		require.NoError(t, err)
		assert.False(t, inserted)
	}

	assert.Equal(t, before, h.View().Faces())
	assert.Equal(t, 4, h.mesh.VertexCount())
	require.NoError(t, h.Validate())
}

func TestInsertSwallowsVertex(t *testing.T) {
	h, err := BuildPoints(tetraPoints)
	require.NoError(t, err)

	inserted, err := h.Insert(-1, -1, -1)
	require.NoError(t, err)
	require.True(t, inserted)
	require.NoError(t, h.Validate())

	mv := h.View()
	assert.Equal(t, 4, mv.FaceCount())
	assert.Equal(t, 4, mv.VertexCount())
	assert.Equal(t, 5, h.mesh.VertexCount())

	var indices []VertexID
	for _, v := range mv.Vertices() {
		indices = append(indices, v.Index)
	}
	assert.Equal(t, []VertexID{1, 2, 3, 4}, indices)

	// the swallowed origin keeps its position but is inside the new hull
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, mv.Position(0))
	assert.True(t, mv.Contains(mgl64.Vec3{0, 0, 0}, 0))
}

func TestInsertTolerance(t *testing.T) {
	testCases := []struct {
		name     string
		opts     []Option
		expected bool
	}{
		{"default", nil, true},
		{"coarse", []Option{WithTolerance(1e-3)}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := BuildPoints(tetraPoints, tc.opts...)
			require.NoError(t, err)

			inserted, err := h.Insert(0.3, 0.3, 0.4+1e-6)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, inserted)
			require.NoError(t, h.Validate())
		})
	}
}

func TestInsertNonFinite(t *testing.T) {
	h, err := BuildPoints(tetraPoints)
	require.NoError(t, err)

	inserted, err := h.Insert(math.NaN(), 0, 0)
	require.ErrorIs(t, err, ErrDegenerateInput)
	assert.False(t, inserted)
	assert.NoError(t, h.Err())

	inserted, err = h.Insert(2, 2, 2)
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestBrokenHullRefusesWork(t *testing.T) {
	h, err := BuildPoints(tetraPoints)
	require.NoError(t, err)

	err = h.fail(errors.New("lost a twin"), mgl64.Vec3{5, 5, 5})
	require.ErrorIs(t, err, ErrTopologyInvariant)
	require.ErrorIs(t, h.Err(), ErrTopologyInvariant)

	inserted, err := h.Insert(5, 5, 5)
	require.ErrorIs(t, err, ErrTopologyInvariant)
	assert.False(t, inserted)
	assert.Equal(t, 4, h.View().FaceCount())
}

func TestRebuildHorizonClosedMesh(t *testing.T) {
	m := unitTetrahedron(t)
	err := rebuildHorizon(newEdgeLoop(4), m)
	require.ErrorIs(t, err, ErrTopologyInvariant)
}

func TestRebuildHorizonAndFan(t *testing.T) {
	m := unitTetrahedron(t)
	require.True(t, m.RemoveFaceAt(3))

	loop := newEdgeLoop(4)
	require.NoError(t, rebuildHorizon(loop, m))
	require.Equal(t, 3, loop.Len())
	for i := 0; i < loop.Len(); i++ {
		e := loop.At(i)
		assert.Equal(t, NoEdge, m.Edge(e).Twin)
		assert.Equal(t, m.Edge(loop.At(i-1)).Origin, m.Dest(e), "edge %d", i)
	}

	h := newHull(5)
	h.mesh = m
	v := m.AddVertex(1, 1, 1)
	require.NoError(t, h.buildNewTriangles(v.Index, loop))

	assert.Equal(t, 6, m.FaceCount())
	require.NoError(t, m.Validate(false))
}

func TestWithValidation(t *testing.T) {
	points := append(cubePoints(),
		NewPoint3d(0.5, 0.5, 2),
		NewPoint3d(0.5, 0.5, -1),
		NewPoint3d(0.5, 0.5, 0.5),
		NewPoint3d(2, 0.5, 0.5),
	)
	h, err := BuildPoints(points, WithValidation(true), WithCapacity(64))
	require.NoError(t, err)
	assert.Equal(t, 11, h.View().VertexCount())
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	points := append([]Point3d{}, tetraPoints...)
	points = append(points, NewPoint3d(1, 1, 1), NewPoint3d(0.1, 0.1, 0.1))

	_, err := BuildPoints(points, WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("initial simplex").Len())
	assert.Equal(t, 1, logs.FilterMessage("point inserted").Len())
	assert.Zero(t, logs.FilterLevelExact(zap.WarnLevel).Len())
}

func TestMarkVisible(t *testing.T) {
	h, err := BuildPoints(tetraPoints)
	require.NoError(t, err)

	p := mgl64.Vec3{-1, -1, -1}
	seed := h.furthestVisibleFace(p)
	require.NotEqual(t, NoFace, seed)

	visible := h.markVisible(seed, p)
	require.Len(t, visible, 4)
	for f, ok := range visible {
		slanted := vecAlmostEqual(h.mesh.Face(FaceID(f)).Normal(), mgl64.Vec3{1, 1, 1}.Normalize())
		assert.Equal(t, !slanted, ok, "face %d", f)
	}

	assert.Equal(t, NoFace, h.furthestVisibleFace(mgl64.Vec3{0.1, 0.1, 0.1}))
}

func TestCountOpenEdges(t *testing.T) {
	m := unitTetrahedron(t)
	assert.Equal(t, 0, countOpenEdges(m))
	require.True(t, m.RemoveFaceAt(0))
	assert.Equal(t, 3, countOpenEdges(m))
	require.True(t, m.RemoveFaceAt(0))
	assert.Equal(t, 4, countOpenEdges(m))
}
