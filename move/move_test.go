package move

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/solution"
)

// squareInstance places the unit square as the first four nodes, plus four
// filler nodes so an 8-node instance splits 4/4 and cycle1 can hold the
// square's four nodes in order.
func squareInstance(t *testing.T) *instance.Instance {
	t.Helper()
	pts := []instance.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 10, Y: 0}, {X: 11, Y: 0}, {X: 11, Y: 1}, {X: 10, Y: 1},
	}
	inst, err := instance.New("square", pts, 2)
	require.NoError(t, err)

	return inst
}

func squareSolution(t *testing.T) *solution.Solution {
	t.Helper()
	s, err := solution.New(8, []int{0, 1, 2, 3}, []int{4, 5, 6, 7})
	require.NoError(t, err)

	return s
}

// deltaMatchesRecompute re-evaluates cost before/after applying m and checks
// it agrees with the evaluator's reported delta — the debug-mode
// invariant check.
func deltaMatchesRecompute(t *testing.T, inst *instance.Instance, s *solution.Solution, ev Evaluated) {
	t.Helper()
	before := s.Cost(inst)
	Apply(s, ev.Move)
	after := s.Cost(inst)
	assert.Equal(t, ev.Delta, after-before)
}

func TestEvaluateIntraEdgeSquareDeltaZero(t *testing.T) {
	// Removing edges (0,1) and (2,3) and adding (0,2)+(1,3) has delta 0: the
	// square's perimeter is unchanged by this 2-opt, only its orientation.
	inst := squareInstance(t)
	s := squareSolution(t)

	ev, ok := EvaluateIntraEdge(inst, s, solution.Cycle1, 0, 2)
	require.True(t, ok)
	assert.Equal(t, 0, ev.Delta)
	deltaMatchesRecompute(t, inst, s, ev)
	assert.Equal(t, []int{0, 2, 1, 3}, s.Cycle(solution.Cycle1))
}

func TestEvaluateIntraEdgeRejectsAdjacentAndTooSmall(t *testing.T) {
	inst := squareInstance(t)
	s := squareSolution(t)

	_, ok := EvaluateIntraEdge(inst, s, solution.Cycle1, 0, 1)
	assert.False(t, ok, "adjacent edges must be rejected")

	_, ok = EvaluateIntraEdge(inst, s, solution.Cycle1, 0, 0)
	assert.False(t, ok, "identical position must be rejected")

	tiny, err := solution.New(4, []int{0, 1}, []int{2, 3})
	require.NoError(t, err)
	_, ok = EvaluateIntraEdge(inst, tiny, solution.Cycle1, 0, 1)
	assert.False(t, ok, "cycles shorter than 3 must be rejected")
}

func TestEvaluateCandidateEdgeAgreesWithRecompute(t *testing.T) {
	inst := squareInstance(t)
	s := squareSolution(t)

	ev, ok := EvaluateCandidateEdge(inst, s, solution.Cycle1, 0, 2)
	require.True(t, ok)
	deltaMatchesRecompute(t, inst, s, ev)
}

func TestEvaluateInterExchangeAgreesWithRecompute(t *testing.T) {
	pts := make([]instance.Point, 6)
	for i := range pts {
		pts[i] = instance.Point{X: float64(i), Y: float64(i % 2)}
	}
	inst, err := instance.New("t", pts, 2)
	require.NoError(t, err)

	s, err := solution.New(6, []int{0, 1, 2}, []int{3, 4, 5})
	require.NoError(t, err)

	ev, ok := EvaluateInter(inst, s, 1, 1)
	require.True(t, ok)
	deltaMatchesRecompute(t, inst, s, ev)

	c1, _, ok := s.FindNode(4)
	require.True(t, ok)
	assert.Equal(t, solution.Cycle1, c1)
}

func TestEvaluateIntraVertexExchangeCases(t *testing.T) {
	pts := make([]instance.Point, 6)
	for i := range pts {
		pts[i] = instance.Point{X: float64(i) * 1.3, Y: float64(i) * -0.7}
	}
	inst, err := instance.New("t", pts, 2)
	require.NoError(t, err)

	// wrap-around adjacent case: positions 0 and 2 of a 3-node cycle
	s, err := solution.New(6, []int{0, 1, 2}, []int{3, 4, 5})
	require.NoError(t, err)
	ev, ok := EvaluateIntraVertex(inst, s, solution.Cycle1, 0, 2)
	require.True(t, ok)
	deltaMatchesRecompute(t, inst, s, ev)

	// adjacent case
	s2, err := solution.New(6, []int{0, 1, 2}, []int{3, 4, 5})
	require.NoError(t, err)
	ev2, ok := EvaluateIntraVertex(inst, s2, solution.Cycle1, 0, 1)
	require.True(t, ok)
	deltaMatchesRecompute(t, inst, s2, ev2)

	// n==2: delta must be exactly 0 (only one distinct undirected tour).
	// TargetSize(2,.) gives one node per cycle, so exercise this branch on
	// a 4-node instance split 2/2 instead, swapping cycle1's two positions.
	fourInst, err := instance.New("four", []instance.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, 1)
	require.NoError(t, err)
	pairSolution, err := solution.New(4, []int{0, 1}, []int{2, 3})
	require.NoError(t, err)
	ev3, ok := EvaluateIntraVertex(fourInst, pairSolution, solution.Cycle1, 0, 1)
	require.True(t, ok)
	assert.Equal(t, 0, ev3.Delta)
}

func TestEvaluateIntraVertexRejectsDegenerate(t *testing.T) {
	inst := squareInstance(t)
	s := squareSolution(t)

	_, ok := EvaluateIntraVertex(inst, s, solution.Cycle1, 1, 1)
	assert.False(t, ok, "identical positions must be rejected")
}

func TestValidAndSupport(t *testing.T) {
	s, err := solution.New(6, []int{0, 1, 2}, []int{3, 4, 5})
	require.NoError(t, err)

	interMove := Move{Kind: InterExchange, V1: 0, V2: 3}
	assert.True(t, Valid(s, interMove))
	assert.ElementsMatch(t, []int{0, 3}, Support(interMove))

	vertexMove := Move{Kind: IntraVertexExchange, V1: 0, V2: 1, Cycle: solution.Cycle1}
	assert.True(t, Valid(s, vertexMove))

	badEdge := Move{Kind: IntraEdgeExchange, A: 0, B: 1, C: 1, D: 1, Cycle: solution.Cycle1}
	assert.False(t, Valid(s, badEdge), "(1,1) is not a directed edge: 1's successor is 2, not 1")

	// Valid only checks that both named directed edges currently exist; it
	// does not reject overlapping edge pairs (that check lives in the
	// evaluators, which never hand Apply/Valid an overlapping pair).
	goodEdge := Move{Kind: IntraEdgeExchange, A: 0, B: 1, C: 2, D: 0, Cycle: solution.Cycle1}
	assert.True(t, Valid(s, goodEdge))
	assert.ElementsMatch(t, []int{0, 1, 2, 0}, Support(goodEdge))

	staleVertex := Move{Kind: IntraVertexExchange, V1: 0, V2: 3, Cycle: solution.Cycle1}
	assert.False(t, Valid(s, staleVertex), "3 is not in Cycle1")
}
