package construct

import (
	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/solution"
)

// GreedyCycle grows each cycle by repeatedly inserting, at its cheapest
// position, whichever available node has the single cheapest insertion
// among all (node, position) pairs.
type GreedyCycle struct{}

// Build implements Builder.
func (GreedyCycle) Build(inst *instance.Instance) (*solution.Solution, error) {
	n := inst.N()
	start1, start2 := farthestPair(inst)
	a1, a2 := splitAvailable(n, start1, start2)

	cycle1 := greedyBuildCycle(inst, start1, a1, solution.TargetSize(n, solution.Cycle1))
	cycle2 := greedyBuildCycle(inst, start2, a2, solution.TargetSize(n, solution.Cycle2))

	return solution.New(n, cycle1, cycle2)
}

func greedyBuildCycle(inst *instance.Instance, start int, available []int, targetSize int) []int {
	cycle, available := seedCycle(inst, start, available)

	for len(cycle) < targetSize && len(available) > 0 {
		bestVertex, bestPos, bestCost := available[0], 0, -1
		for _, v := range available {
			pos, cost := bestInsertion(inst, cycle, v)
			if bestCost == -1 || cost < bestCost {
				bestVertex, bestPos, bestCost = v, pos, cost
			}
		}
		cycle = insert(cycle, bestPos, bestVertex)
		available = removeValue(available, bestVertex)
	}

	return cycle
}
