package metaheuristic

import (
	"math/rand"
	"time"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/localsearch"
	"github.com/twocycletsp/solver/perturb"
)

// ILSOptions configures ILS's perturbation step.
type ILSOptions struct {
	// SmallPerturbK is the move count for SmallPerturbation (default 10).
	SmallPerturbK int
}

// DefaultILSOptions returns SmallPerturbK=10.
func DefaultILSOptions() ILSOptions {
	return ILSOptions{SmallPerturbK: 10}
}

// ILS runs iterated local search with best-only acceptance until budget
// expires, checked at the loop head so an in-progress iteration always
// completes.
func ILS(inst *instance.Instance, lsOpts localsearch.Options, ilsOpts ILSOptions, budget time.Duration, rng *rand.Rand) Result {
	start := time.Now()
	deadline := start.Add(budget)

	s, err := buildInitial(inst, InitialRandom, rng)
	if err != nil {
		return Result{}
	}
	runLS(inst, s, lsOpts, rng)
	best := s
	bestCost := best.Cost(inst)

	iterations := 0
	for time.Now().Before(deadline) {
		iterations++
		candidate := best.Clone()
		perturb.Small(inst, candidate, ilsOpts.SmallPerturbK, rng)
		runLS(inst, candidate, lsOpts, rng)

		if cost := candidate.Cost(inst); cost < bestCost {
			best = candidate
			bestCost = cost
		}
	}

	return Result{Best: best, BestCost: bestCost, Iterations: iterations, Elapsed: time.Since(start)}
}
