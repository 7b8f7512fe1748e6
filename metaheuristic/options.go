// Package metaheuristic implements the four metaheuristic drivers — MSLS,
// ILS, LNS, and HAE — each built on a shared base local-search configuration
// and, except MSLS, a wall-clock budget calibrated from MSLS's mean run time
// so the drivers are comparable on equal footing.
package metaheuristic

import (
	"math/rand"
	"time"

	"github.com/twocycletsp/solver/construct"
	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/localsearch"
	"github.com/twocycletsp/solver/solution"
)

// InitialKind selects how a driver's starting solutions are produced.
type InitialKind uint8

const (
	// InitialRandom uses solution.Random.
	InitialRandom InitialKind = iota
	// InitialHeuristic uses construct.WeightedRegret.
	InitialHeuristic
)

// Result is the outcome of a single driver run.
type Result struct {
	Best       *solution.Solution
	BestCost   int
	Iterations int // restarts (MSLS), generations (HAE), or outer loop count (ILS/LNS)
	Elapsed    time.Duration
}

// buildInitial produces a starting Solution per kind.
func buildInitial(inst *instance.Instance, kind InitialKind, rng *rand.Rand) (*solution.Solution, error) {
	if kind == InitialHeuristic {
		return construct.NewWeightedRegret().Build(inst)
	}

	return solution.Random(inst.N(), rng)
}

// runLS runs local search to termination on s in place and returns its cost.
func runLS(inst *instance.Instance, s *solution.Solution, lsOpts localsearch.Options, rng *rand.Rand) int {
	return localsearch.Run(inst, s, lsOpts, rng)
}
