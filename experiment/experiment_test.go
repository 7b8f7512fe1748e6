package experiment

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twocycletsp/solver/construct"
	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/solution"
)

func gridInstance(t *testing.T, n int) *instance.Instance {
	t.Helper()
	pts := make([]instance.Point, n)
	for i := range pts {
		pts[i] = instance.Point{X: float64(i % 5), Y: float64(i / 5)}
	}
	inst, err := instance.New("grid", pts, 4)
	require.NoError(t, err)

	return inst
}

func constructorRunFunc(b construct.Builder) RunFunc {
	return func(inst *instance.Instance, rng *rand.Rand) (*solution.Solution, int, error) {
		s, err := b.Build(inst)
		return s, 0, err
	}
}

func TestRunExperimentAggregatesAcrossRuns(t *testing.T) {
	inst := gridInstance(t, 12)
	rng := rand.New(rand.NewSource(7))

	stats, err := RunExperiment("nearest-neighbor", "grid", inst, 5, false, constructorRunFunc(construct.NearestNeighbor{}), rng, nil)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.NumRuns)
	assert.LessOrEqual(t, stats.MinCost, stats.MaxCost)
	assert.GreaterOrEqual(t, stats.AvgCost, float64(stats.MinCost))
	assert.LessOrEqual(t, stats.AvgCost, float64(stats.MaxCost))
	require.NotNil(t, stats.BestSolution)
	assert.Equal(t, stats.MinCost, stats.BestSolution.Cost(inst))
	assert.False(t, stats.ReportsIterations)
}

func TestRunExperimentZeroRunsReturnsSentinelStats(t *testing.T) {
	inst := gridInstance(t, 10)
	rng := rand.New(rand.NewSource(1))

	stats, err := RunExperiment("nearest-neighbor", "grid", inst, 0, false, constructorRunFunc(construct.NearestNeighbor{}), rng, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.NumRuns)
	assert.Nil(t, stats.BestSolution)
}

func TestRunExperimentAllFailuresReturnsErrAllRunsFailed(t *testing.T) {
	inst := gridInstance(t, 10)
	rng := rand.New(rand.NewSource(1))
	alwaysFails := func(inst *instance.Instance, rng *rand.Rand) (*solution.Solution, int, error) {
		return nil, 0, errors.New("boom")
	}

	stats, err := RunExperiment("broken", "grid", inst, 3, false, alwaysFails, rng, nil)
	require.ErrorIs(t, err, ErrAllRunsFailed)
	assert.Equal(t, 0, stats.NumRuns)
}

func TestRunExperimentIsReproducibleForFixedSeed(t *testing.T) {
	inst := gridInstance(t, 12)

	stats1, err := RunExperiment("nn", "grid", inst, 4, false, constructorRunFunc(construct.NearestNeighbor{}), rand.New(rand.NewSource(99)), nil)
	require.NoError(t, err)
	stats2, err := RunExperiment("nn", "grid", inst, 4, false, constructorRunFunc(construct.NearestNeighbor{}), rand.New(rand.NewSource(99)), nil)
	require.NoError(t, err)

	assert.Equal(t, stats1.MinCost, stats2.MinCost)
	assert.Equal(t, stats1.AvgCost, stats2.AvgCost)
}

func TestFormatRowIncludesAllColumns(t *testing.T) {
	s := Stats{
		AlgorithmName: "greedy-cycle", InstanceName: "berlin52",
		NumRuns: 10, MinCost: 90, MaxCost: 110, AvgCost: 100,
		AvgTimeMs: 1.25, ReportsIterations: true, AvgIterations: 42.5,
	}
	row := FormatRow(s)
	assert.Contains(t, row, "berlin52")
	assert.Contains(t, row, "greedy-cycle")
	assert.Contains(t, row, "100.0 (90 - 110)")
	assert.Contains(t, row, "1.25")
	assert.Contains(t, row, "42.5")
}

func TestFormatRowOmitsIterationsWhenNotReported(t *testing.T) {
	s := Stats{AlgorithmName: "a", InstanceName: "b", NumRuns: 1, ReportsIterations: false}
	row := FormatRow(s)
	assert.Contains(t, row, "| - |")
}
