package metaheuristic

import (
	"math/rand"
	"time"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/localsearch"
	"github.com/twocycletsp/solver/rngutil"
	"github.com/twocycletsp/solver/solution"
)

// HAEOptions configures the hybrid evolutionary algorithm (defaults:
// PopSize 20, MinDiff 40, WithLocal varies by experiment).
type HAEOptions struct {
	PopSize   int
	MinDiff   int
	WithLocal bool
}

// DefaultHAEOptions returns PopSize=20, MinDiff=40, WithLocal=true.
func DefaultHAEOptions() HAEOptions {
	return HAEOptions{PopSize: 20, MinDiff: 40, WithLocal: true}
}

// HAE runs the hybrid evolutionary algorithm until budget expires: an
// LS-polished random population evolves by recombination with a
// diversity-gated replacement rule.
func HAE(inst *instance.Instance, lsOpts localsearch.Options, haeOpts HAEOptions, budget time.Duration, rng *rand.Rand) Result {
	start := time.Now()
	deadline := start.Add(budget)

	pop := make([]*solution.Solution, 0, haeOpts.PopSize)
	costs := make([]int, 0, haeOpts.PopSize)
	var best *solution.Solution
	bestCost := 0

	for i := 0; i < haeOpts.PopSize; i++ {
		memberRNG := rngutil.DeriveRNG(rng, uint64(i))
		member, err := buildInitial(inst, InitialRandom, memberRNG)
		if err != nil {
			continue
		}
		cost := runLS(inst, member, lsOpts, memberRNG)
		pop = append(pop, member)
		costs = append(costs, cost)
		if best == nil || cost < bestCost {
			best, bestCost = member, cost
		}
	}
	if len(pop) == 0 {
		return Result{}
	}

	generations := 0
	for time.Now().Before(deadline) {
		generations++

		i, j := distinctParents(rng, len(pop))
		child := recombine(inst, pop[i], pop[j], rng)
		if haeOpts.WithLocal {
			runLS(inst, child, lsOpts, rng)
		}
		c := child.Cost(inst)

		w := argmaxCost(costs)
		cw := costs[w]

		switch {
		case c < bestCost:
			pop[w], costs[w] = child, c
			best, bestCost = child, c
		case c < cw && !withinMinDiffOfAny(costs, c, haeOpts.MinDiff):
			pop[w], costs[w] = child, c
		default:
			// discard child
		}
	}

	return Result{Best: best, BestCost: bestCost, Iterations: generations, Elapsed: time.Since(start)}
}

func distinctParents(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}

	return i, j
}

func argmaxCost(costs []int) int {
	worst := 0
	for i, c := range costs {
		if c > costs[worst] {
			worst = i
		}
	}

	return worst
}

// withinMinDiffOfAny reports whether any member's cost is within minDiff of
// c — the replacement diversity gate.
func withinMinDiffOfAny(costs []int, c, minDiff int) bool {
	for _, existing := range costs {
		d := existing - c
		if d < 0 {
			d = -d
		}
		if d < minDiff {
			return true
		}
	}

	return false
}
