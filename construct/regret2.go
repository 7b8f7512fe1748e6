package construct

import (
	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/solution"
)

// Regret2 grows each cycle by repeatedly inserting, at its best position,
// whichever available node has the highest 2-regret (the gap between its
// second-best and best insertion cost).
type Regret2 struct{}

// Build implements Builder.
func (Regret2) Build(inst *instance.Instance) (*solution.Solution, error) {
	n := inst.N()
	start1, start2 := farthestPair(inst)
	a1, a2 := splitAvailable(n, start1, start2)

	cycle1 := regretBuildCycle(inst, start1, a1, solution.TargetSize(n, solution.Cycle1))
	cycle2 := regretBuildCycle(inst, start2, a2, solution.TargetSize(n, solution.Cycle2))

	return solution.New(n, cycle1, cycle2)
}

func regretBuildCycle(inst *instance.Instance, start int, available []int, targetSize int) []int {
	cycle, available := seedCycle(inst, start, available)

	for len(cycle) < targetSize && len(available) > 0 {
		bestVertex, bestPos, bestRegret := available[0], 0, -1
		for _, v := range available {
			regret, pos := kRegretAndBestPos(inst, cycle, v, 2)
			if bestRegret == -1 || regret > bestRegret {
				bestVertex, bestPos, bestRegret = v, pos, regret
			}
		}
		cycle = insert(cycle, bestPos, bestVertex)
		available = removeValue(available, bestVertex)
	}

	return cycle
}
