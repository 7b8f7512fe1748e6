package construct

import (
	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/solution"
)

// WeightedRegret grows each cycle by repeatedly inserting, at its best
// position, the available node maximizing the scalarized score
// w_r·regret + w_g·best_Δ, with (w_r, w_g) = (1, −1) by default — see
// perturb.DefaultRegretWeight / perturb.DefaultGreedyWeight, the same
// defaults repair uses.
type WeightedRegret struct {
	RegretWeight float64
	GreedyWeight float64
}

// NewWeightedRegret returns a WeightedRegret with the default
// weights (1, −1).
func NewWeightedRegret() WeightedRegret {
	return WeightedRegret{RegretWeight: 1, GreedyWeight: -1}
}

// Build implements Builder.
func (w WeightedRegret) Build(inst *instance.Instance) (*solution.Solution, error) {
	n := inst.N()
	start1, start2 := farthestPair(inst)
	a1, a2 := splitAvailable(n, start1, start2)

	cycle1 := w.buildCycle(inst, start1, a1, solution.TargetSize(n, solution.Cycle1))
	cycle2 := w.buildCycle(inst, start2, a2, solution.TargetSize(n, solution.Cycle2))

	return solution.New(n, cycle1, cycle2)
}

func (w WeightedRegret) buildCycle(inst *instance.Instance, start int, available []int, targetSize int) []int {
	cycle, available := seedCycle(inst, start, available)

	for len(cycle) < targetSize && len(available) > 0 {
		bestVertex, bestPos := available[0], 0
		bestScore := 0.0
		haveBest := false
		for _, v := range available {
			regret, pos, cost := kRegretBestPosAndCost(inst, cycle, v, 2)
			score := w.RegretWeight*float64(regret) + w.GreedyWeight*float64(cost)
			if !haveBest || score > bestScore {
				bestVertex, bestPos, bestScore, haveBest = v, pos, score, true
			}
		}
		cycle = insert(cycle, bestPos, bestVertex)
		available = removeValue(available, bestVertex)
	}

	return cycle
}
