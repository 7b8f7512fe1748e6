package metaheuristic

import (
	"math/rand"
	"time"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/localsearch"
	"github.com/twocycletsp/solver/perturb"
)

// LNSOptions configures LargeNeighborhoodSearch (defaults: DestroyFraction
// 0.20, both ApplyLS flags true).
type LNSOptions struct {
	DestroyFraction    float64
	ApplyLSAfterRepair bool
	ApplyLSToInitial   bool
}

// DefaultLNSOptions returns LargeNeighborhoodSearch's default configuration.
func DefaultLNSOptions() LNSOptions {
	return LNSOptions{DestroyFraction: 0.20, ApplyLSAfterRepair: true, ApplyLSToInitial: true}
}

// LNS runs destroy-and-repair large neighborhood search until budget
// expires.
func LNS(inst *instance.Instance, lsOpts localsearch.Options, lnsOpts LNSOptions, budget time.Duration, rng *rand.Rand) Result {
	start := time.Now()
	deadline := start.Add(budget)

	best, err := buildInitial(inst, InitialRandom, rng)
	if err != nil {
		return Result{}
	}
	if lnsOpts.ApplyLSToInitial {
		runLS(inst, best, lsOpts, rng)
	}
	bestCost := best.Cost(inst)

	iterations := 0
	for time.Now().Before(deadline) {
		iterations++
		candidate := best.Clone()
		perturb.Large(inst, candidate, lnsOpts.DestroyFraction, rng, perturb.DefaultRegretWeight, perturb.DefaultGreedyWeight)
		if lnsOpts.ApplyLSAfterRepair {
			runLS(inst, candidate, lsOpts, rng)
		}

		if cost := candidate.Cost(inst); cost < bestCost {
			best = candidate
			bestCost = cost
		}
	}

	return Result{Best: best, BestCost: bestCost, Iterations: iterations, Elapsed: time.Since(start)}
}
