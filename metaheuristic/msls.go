package metaheuristic

import (
	"math/rand"
	"time"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/localsearch"
	"github.com/twocycletsp/solver/rngutil"
)

// MSLS runs local search on `iterations` independent random starts and
// returns the best local optimum found. meanRunTime is the mean per-run
// wall time, used to calibrate the budget given to ILS, LNS, and HAE for
// a fair comparison on the same instance.
func MSLS(inst *instance.Instance, lsOpts localsearch.Options, iterations int, rng *rand.Rand) (Result, time.Duration) {
	result := Result{}
	var totalElapsed time.Duration

	for i := 0; i < iterations; i++ {
		runRNG := rngutil.DeriveRNG(rng, uint64(i))
		start := time.Now()

		s, err := buildInitial(inst, InitialRandom, runRNG)
		if err != nil {
			continue
		}
		cost := runLS(inst, s, lsOpts, runRNG)
		totalElapsed += time.Since(start)

		if result.Best == nil || cost < result.BestCost {
			result.Best = s
			result.BestCost = cost
		}
	}
	result.Iterations = iterations
	result.Elapsed = totalElapsed

	var mean time.Duration
	if iterations > 0 {
		mean = totalElapsed / time.Duration(iterations)
	}

	return result, mean
}
