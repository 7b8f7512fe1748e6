package construct

import (
	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/solution"
)

// NearestNeighbor grows each cycle by repeatedly appending the available
// node nearest to the cycle's last node (no insertion search).
type NearestNeighbor struct{}

// Build implements Builder.
func (NearestNeighbor) Build(inst *instance.Instance) (*solution.Solution, error) {
	n := inst.N()
	start1, start2 := farthestPair(inst)
	a1, a2 := splitAvailable(n, start1, start2)

	cycle1 := nnBuildCycle(inst, start1, a1, solution.TargetSize(n, solution.Cycle1))
	cycle2 := nnBuildCycle(inst, start2, a2, solution.TargetSize(n, solution.Cycle2))

	return solution.New(n, cycle1, cycle2)
}

func nnBuildCycle(inst *instance.Instance, start int, available []int, targetSize int) []int {
	cycle := []int{start}
	for len(cycle) < targetSize && len(available) > 0 {
		last := cycle[len(cycle)-1]
		nearest := nearestTo(inst, last, available)
		cycle = append(cycle, nearest)
		available = removeValue(available, nearest)
	}

	return cycle
}
