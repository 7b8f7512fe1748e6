package instance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuc2DRounding(t *testing.T) {
	assert.Equal(t, 5, euc2D(Point{0, 0}, Point{3, 4}))
	assert.Equal(t, 1, euc2D(Point{0, 0}, Point{1, 1}))
}

func TestDistanceSymmetryAndZeroDiagonal(t *testing.T) {
	inst, err := New("t", []Point{{0, 0}, {3, 4}, {1, 1}}, 2)
	require.NoError(t, err)

	for i := 0; i < inst.N(); i++ {
		assert.Equal(t, 0, inst.Distance(i, i))
		for j := 0; j < inst.N(); j++ {
			assert.Equal(t, inst.Distance(i, j), inst.Distance(j, i))
		}
	}
}

func TestNearestNeighborsOrderedAndTieBroken(t *testing.T) {
	// Node 0 at origin; nodes 1,2 equidistant; node 3 farther.
	inst, err := New("t", []Point{{0, 0}, {1, 0}, {0, 1}, {5, 5}}, 3)
	require.NoError(t, err)

	nn := inst.NearestNeighbors(0)
	require.Len(t, nn, 3)
	assert.Equal(t, []int{1, 2, 3}, nn) // tie between 1,2 broken by index
}

func TestNewRejectsTooSmall(t *testing.T) {
	_, err := New("t", []Point{{0, 0}}, 1)
	assert.ErrorIs(t, err, ErrTooSmall)
}

func TestLoadParsesEUC2D(t *testing.T) {
	data := `NAME: demo
DIMENSION: 4
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 3 4
3 10 10
4 1 1
EOF
`
	inst, err := parse(strings.NewReader(data), 2)
	require.NoError(t, err)
	assert.Equal(t, "demo", inst.Name())
	assert.Equal(t, 4, inst.N())
	assert.Equal(t, 5, inst.Distance(0, 1))
}

func TestLoadRejectsUnsupportedEdgeWeightType(t *testing.T) {
	data := `NAME: demo
DIMENSION: 2
EDGE_WEIGHT_TYPE: GEO
NODE_COORD_SECTION
1 0 0
2 1 1
EOF
`
	_, err := parse(strings.NewReader(data), 2)
	assert.ErrorIs(t, err, ErrUnsupportedEdgeWeightType)
}

func TestLoadRejectsDimensionMismatch(t *testing.T) {
	data := `NAME: demo
DIMENSION: 3
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 1 1
EOF
`
	_, err := parse(strings.NewReader(data), 2)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
