// Package construct implements four constructive heuristics for an initial
// two-cycle solution: NearestNeighbor, GreedyCycle, Regret2, and
// WeightedRegret. Each seeds two cycles from the maximally
// distant pair of nodes, splits the rest into two pools by alternation, and
// grows each cycle independently to its target size — grounded in
// `original_source/src/algorithms/{nearest_neighbor,greedy_cycle,
// regret_cycle,weighted_regret_cycle}.rs`, which share this exact skeleton
// and differ only in the per-vertex selection rule.
package construct

import (
	"sort"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/solution"
)

// Builder produces an initial Solution for inst.
type Builder interface {
	Build(inst *instance.Instance) (*solution.Solution, error)
}

// farthestPair returns the pair of nodes with maximum distance, used to
// seed the two cycles as far apart as possible.
func farthestPair(inst *instance.Instance) (int, int) {
	n := inst.N()
	best1, best2, bestDist := 0, 1, -1
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d := inst.Distance(i, j); d > bestDist {
				best1, best2, bestDist = i, j, d
			}
		}
	}

	return best1, best2
}

// splitAvailable partitions every node except start1/start2 into two pools
// by alternating index, so the two cycles grow from an evenly distributed
// candidate set rather than one pool being exhausted early. For odd n the
// extra node goes to a1, matching Cycle1's larger target size.
func splitAvailable(n, start1, start2 int) (a1, a2 []int) {
	idx := 0
	for v := 0; v < n; v++ {
		if v == start1 || v == start2 {
			continue
		}
		if idx%2 == 0 {
			a1 = append(a1, v)
		} else {
			a2 = append(a2, v)
		}
		idx++
	}

	return a1, a2
}

// nearestTo returns the node in available closest to from.
func nearestTo(inst *instance.Instance, from int, available []int) int {
	best := available[0]
	bestDist := inst.Distance(from, best)
	for _, v := range available[1:] {
		if d := inst.Distance(from, v); d < bestDist {
			best, bestDist = v, d
		}
	}

	return best
}

// removeValue returns available with v removed (first occurrence).
func removeValue(available []int, v int) []int {
	for i, x := range available {
		if x == v {
			return append(available[:i:i], available[i+1:]...)
		}
	}

	return available
}

// insertionCost is the Δ of inserting v at position pos of cycle, with
// the degenerate cases handled for cycles of length 0 or 1.
func insertionCost(inst *instance.Instance, cycle []int, pos, v int) int {
	m := len(cycle)
	if m == 0 {
		return 0
	}
	if m == 1 {
		return 2 * inst.Distance(cycle[0], v)
	}
	prevIdx := pos - 1
	if prevIdx < 0 {
		prevIdx = m - 1
	}
	nextIdx := pos
	if nextIdx >= m {
		nextIdx = 0
	}

	return inst.Distance(cycle[prevIdx], v) + inst.Distance(v, cycle[nextIdx]) - inst.Distance(cycle[prevIdx], cycle[nextIdx])
}

// bestInsertion returns the position and cost of the cheapest insertion of
// v into cycle, scanning all len(cycle)+1 gaps.
func bestInsertion(inst *instance.Instance, cycle []int, v int) (pos, cost int) {
	if len(cycle) == 0 {
		return 0, 0
	}
	bestPos, bestCost := 0, insertionCost(inst, cycle, 0, v)
	for p := 1; p <= len(cycle); p++ {
		if c := insertionCost(inst, cycle, p, v); c < bestCost {
			bestPos, bestCost = p, c
		}
	}

	return bestPos, bestCost
}

// seedCycle starts cycle with start and, if available is non-empty, appends
// start's nearest neighbor — the common first two steps of GreedyCycle,
// Regret2, and WeightedRegret.
func seedCycle(inst *instance.Instance, start int, available []int) ([]int, []int) {
	cycle := []int{start}
	if len(available) == 0 {
		return cycle, available
	}
	nearest := nearestTo(inst, start, available)
	cycle = append(cycle, nearest)

	return cycle, removeValue(available, nearest)
}

// kRegretAndBestPos computes v's k-regret (the gap between the k-th best
// and the best insertion cost into cycle) and its best position, per the
// 2-regret criterion (k=2: second-best minus best).
func kRegretAndBestPos(inst *instance.Instance, cycle []int, v int, k int) (regret, pos int) {
	regret, pos, _ = kRegretBestPosAndCost(inst, cycle, v, k)

	return regret, pos
}

// kRegretBestPosAndCost is kRegretAndBestPos plus the best insertion cost
// itself, needed by WeightedRegret's scalarized score.
func kRegretBestPosAndCost(inst *instance.Instance, cycle []int, v int, k int) (regret, pos, bestCost int) {
	if len(cycle) == 0 {
		return 0, 0, 0
	}
	costs := make([]int, len(cycle)+1)
	for p := range costs {
		costs[p] = insertionCost(inst, cycle, p, v)
	}
	order := make([]int, len(costs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return costs[order[i]] < costs[order[j]] })

	best := costs[order[0]]
	kthBest := best
	if k-1 < len(order) {
		kthBest = costs[order[k-1]]
	}

	return kthBest - best, order[0], best
}

// insert places v at position pos of cycle.
func insert(cycle []int, pos, v int) []int {
	cycle = append(cycle, 0)
	copy(cycle[pos+1:], cycle[pos:])
	cycle[pos] = v

	return cycle
}
