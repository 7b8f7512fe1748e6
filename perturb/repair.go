// Package perturb implements the two perturbation operators — SmallPerturbation
// (random moves, used by ILS) and LargePerturbation (destroy-and-repair,
// used by LNS) — plus the weighted 2-regret repair
// step they share with HAE recombination.
package perturb

import (
	"sort"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/solution"
)

// DefaultRegretWeight and DefaultGreedyWeight are the default scalarization weights for
// repair scoring: s(v) = w_r·regret + w_g·best_Δ.
const (
	DefaultRegretWeight = 1.0
	DefaultGreedyWeight = -1.0
)

type candidate struct {
	cost  int
	cycle solution.CycleID
	pos   int
}

// Repair reinserts every node in removed into s using weighted 2-regret
// insertion, respecting cycle-size targets, until none remain. s must
// already have removed's nodes absent from both cycles.
func Repair(inst *instance.Instance, s *solution.Solution, removed []int, regretWeight, greedyWeight float64) {
	remaining := append([]int(nil), removed...)

	for len(remaining) > 0 {
		bestIdx := -1
		var bestScore float64
		var bestCand candidate

		for idx, v := range remaining {
			costs := candidatesFor(inst, s, v)
			if len(costs) == 0 {
				continue // both cycles already at target size; should not happen if caller sized removed correctly
			}
			sort.Slice(costs, func(i, j int) bool { return costs[i].cost < costs[j].cost })

			best := costs[0]
			secondCost := best.cost
			if len(costs) > 1 {
				secondCost = costs[1].cost
			}
			regret := float64(secondCost - best.cost)
			score := regretWeight*regret + greedyWeight*float64(best.cost)

			if bestIdx == -1 || score > bestScore {
				bestIdx = idx
				bestScore = score
				bestCand = best
			}
		}

		if bestIdx == -1 {
			return // nothing left is eligible; leave remaining unplaced rather than violate P2
		}

		node := remaining[bestIdx]
		s.InsertAt(bestCand.cycle, bestCand.pos, node)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
}

// candidatesFor returns the insertion cost at every gap of every cycle that
// still has room below its target size — a cycle at its target size is
// never grown beyond it.
func candidatesFor(inst *instance.Instance, s *solution.Solution, v int) []candidate {
	var out []candidate
	for _, c := range []solution.CycleID{solution.Cycle1, solution.Cycle2} {
		if s.Len(c) >= solution.TargetSize(s.N(), c) {
			continue
		}
		m := s.Len(c)
		for pos := 0; pos <= m; pos++ {
			out = append(out, candidate{cost: insertionCost(inst, s, c, pos, v), cycle: c, pos: pos})
		}
	}

	return out
}

// insertionCost computes Δ = d(prev,v)+d(v,next)−d(prev,next) for inserting
// v at position pos of cycle c (the gap between prev and next); cycles of
// length 0 or 1 are special-cased.
func insertionCost(inst *instance.Instance, s *solution.Solution, c solution.CycleID, pos, v int) int {
	m := s.Len(c)
	if m == 0 {
		return 0
	}
	if m == 1 {
		return 2 * inst.Distance(s.At(c, 0), v)
	}

	prevPos := pos - 1
	if prevPos < 0 {
		prevPos = m - 1
	}
	nextPos := pos
	if nextPos >= m {
		nextPos = 0
	}
	prev := s.At(c, prevPos)
	next := s.At(c, nextPos)

	return inst.Distance(prev, v) + inst.Distance(v, next) - inst.Distance(prev, next)
}
