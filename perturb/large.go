package perturb

import (
	"math/rand"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/solution"
)

// Large applies LargePerturbation(fraction) in place on s: destroys
// ⌊fraction·n⌋ uniformly random nodes, then repairs with weighted 2-regret
// insertion. regretWeight/greedyWeight are typically DefaultRegretWeight/
// DefaultGreedyWeight.
func Large(inst *instance.Instance, s *solution.Solution, fraction float64, rng *rand.Rand, regretWeight, greedyWeight float64) {
	removed := destroy(s, fraction, rng)
	Repair(inst, s, removed, regretWeight, greedyWeight)
}

// destroy removes ⌊fraction·n⌋ nodes chosen uniformly at random, each from
// whichever cycle it currently occupies, and returns them.
func destroy(s *solution.Solution, fraction float64, rng *rand.Rand) []int {
	n := s.N()
	count := int(fraction * float64(n))
	if count <= 0 {
		return nil
	}
	if count > n {
		count = n
	}

	return RemoveNodes(s, rng.Perm(n)[:count])
}

// RemoveNodes removes every node in nodes from whichever cycle it currently
// occupies and returns the removed nodes in the same order. Shared by
// LargePerturbation's destroy step and HAE recombination's destroyed-node
// removal.
func RemoveNodes(s *solution.Solution, nodes []int) []int {
	removed := make([]int, 0, len(nodes))
	for _, v := range nodes {
		c, pos, ok := s.FindNode(v)
		if !ok {
			continue
		}
		removed = append(removed, s.RemoveAt(c, pos))
	}

	return removed
}
