package metaheuristic

import (
	"math/rand"
	"sort"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/perturb"
	"github.com/twocycletsp/solver/solution"
)

// diversificationRate is the probability each node is independently marked
// destroyed regardless of edge agreement.
const diversificationRate = 0.2

// recombine produces a child by copying parent1, destroying the endpoints
// of every edge parent1 has that parent2 lacks (plus an independent 20%
// diversification mask), and repairing with weighted 2-regret insertion.
// parent1 and parent2 are not mutated.
func recombine(inst *instance.Instance, parent1, parent2 *solution.Solution, rng *rand.Rand) *solution.Solution {
	child := parent1.Clone()
	parent2Edges := edgeSet(parent2)

	destroyed := make(map[int]struct{})
	for _, c := range []solution.CycleID{solution.Cycle1, solution.Cycle2} {
		cyc := child.Cycle(c)
		m := len(cyc)
		for i := 0; i < m; i++ {
			j := i + 1
			if j >= m {
				j = 0
			}
			u, v := cyc[i], cyc[j]
			if _, ok := parent2Edges[undirected(u, v)]; !ok {
				destroyed[u] = struct{}{}
				destroyed[v] = struct{}{}
			}
		}
	}

	for v := 0; v < inst.N(); v++ {
		if rng.Float64() < diversificationRate {
			destroyed[v] = struct{}{}
		}
	}

	// Iterate in node-id order, not map order, so a fixed RNG seed yields a
	// fully reproducible repair tie-break sequence.
	nodes := make([]int, 0, len(destroyed))
	for v := range destroyed {
		nodes = append(nodes, v)
	}
	sort.Ints(nodes)

	removed := perturb.RemoveNodes(child, nodes)
	perturb.Repair(inst, child, removed, perturb.DefaultRegretWeight, perturb.DefaultGreedyWeight)

	return child
}

type edge struct{ a, b int }

func undirected(u, v int) edge {
	if u > v {
		u, v = v, u
	}

	return edge{u, v}
}

func edgeSet(s *solution.Solution) map[edge]struct{} {
	out := make(map[edge]struct{})
	for _, c := range []solution.CycleID{solution.Cycle1, solution.Cycle2} {
		cyc := s.Cycle(c)
		m := len(cyc)
		for i := 0; i < m; i++ {
			j := i + 1
			if j >= m {
				j = 0
			}
			out[undirected(cyc[i], cyc[j])] = struct{}{}
		}
	}

	return out
}
