package hull3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectInitialSimplex(t *testing.T) {
	testCases := []struct {
		name     string
		points   []mgl64.Vec3
		expected [4]int
	}{
		{
			name:     "unit tetrahedron",
			points:   []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			expected: [4]int{0, 1, 2, 3},
		},
		{
			name:     "x wins a tie with y",
			points:   []mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}, {0, 0, 1}},
			expected: [4]int{0, 1, 2, 3},
		},
		{
			name:     "widest axis is y",
			points:   []mgl64.Vec3{{0, 5, 0}, {1, 0, 0}, {0, 0, 1}, {0, 0, 0}},
			expected: [4]int{1, 0, 2, 3},
		},
		{
			name: "interior points are never picked",
			points: []mgl64.Vec3{
				{0.2, 0.2, 0.2}, {-3, 0, 0}, {0.1, 0.3, 0.1}, {3, 0, 0},
				{0, 2, 0}, {0, 0, -1}, {0.3, 0.1, 0.1},
			},
			expected: [4]int{1, 3, 4, 5},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SelectInitialSimplex(tc.points)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestSelectInitialSimplexDegenerate(t *testing.T) {
	testCases := []struct {
		name   string
		points []mgl64.Vec3
	}{
		{
			name: "empty",
		},
		{
			name:   "three points",
			points: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		},
		{
			name:   "coincident",
			points: []mgl64.Vec3{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}, {1, 2, 3}, {1, 2, 3}},
		},
		{
			name:   "collinear",
			points: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {5, 0, 0}},
		},
		{
			name:   "coplanar",
			points: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {2, 3, 0}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SelectInitialSimplex(tc.points)
			require.ErrorIs(t, err, ErrDegenerateInput)
		})
	}
}
