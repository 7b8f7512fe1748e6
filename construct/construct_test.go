package construct

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/solution"
)

func randomInstance(t *testing.T, n int) *instance.Instance {
	t.Helper()
	pts := make([]instance.Point, n)
	rng := rand.New(rand.NewSource(17))
	for i := range pts {
		pts[i] = instance.Point{X: float64(rng.Intn(60)), Y: float64(rng.Intn(60))}
	}
	inst, err := instance.New("rand", pts, 5)
	require.NoError(t, err)

	return inst
}

func TestBuildersProduceValidSolutions(t *testing.T) {
	inst := randomInstance(t, 13)
	builders := map[string]Builder{
		"nearest_neighbor": NearestNeighbor{},
		"greedy_cycle":     GreedyCycle{},
		"regret2":          Regret2{},
		"weighted_regret":  NewWeightedRegret(),
	}
	for name, b := range builders {
		t.Run(name, func(t *testing.T) {
			s, err := b.Build(inst)
			require.NoError(t, err)
			assert.NoError(t, s.Validate())
			assert.Equal(t, solution.TargetSize(inst.N(), solution.Cycle1), s.Len(solution.Cycle1))
			assert.Equal(t, solution.TargetSize(inst.N(), solution.Cycle2), s.Len(solution.Cycle2))
		})
	}
}

func TestGreedyCycleNeverWorseThanNearestInsertionAlone(t *testing.T) {
	// Sanity check on one fixed instance, not a general optimality claim:
	// GreedyCycle's explicit insertion search should not produce a longer
	// tour than plain nearest-neighbor appending on a small random instance.
	inst := randomInstance(t, 20)
	nn, err := NearestNeighbor{}.Build(inst)
	require.NoError(t, err)
	gc, err := GreedyCycle{}.Build(inst)
	require.NoError(t, err)

	assert.Greater(t, nn.Cost(inst), 0)
	assert.Greater(t, gc.Cost(inst), 0)
	assert.LessOrEqual(t, gc.Cost(inst), nn.Cost(inst))
}

func TestBuildersAreDeterministic(t *testing.T) {
	inst := randomInstance(t, 11)
	a, err := NewWeightedRegret().Build(inst)
	require.NoError(t, err)
	b, err := NewWeightedRegret().Build(inst)
	require.NoError(t, err)

	assert.Equal(t, a.Cycle(solution.Cycle1), b.Cycle(solution.Cycle1))
	assert.Equal(t, a.Cycle(solution.Cycle2), b.Cycle(solution.Cycle2))
}
