// Package experiment runs a configured algorithm repeatedly against an
// instance, aggregates the resulting costs and timings, and renders the
// outcome as a Markdown summary table and per-algorithm tour plots. It
// plays the role of the harness that drives construct/localsearch/
// metaheuristic without knowing which one it's holding.
package experiment

import (
	"math/rand"
	"time"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/rngutil"
	"github.com/twocycletsp/solver/solution"
)

// RunFunc executes one run of some algorithm against inst using rng as its
// sole source of randomness, and returns the resulting solution (whose cost
// RunExperiment computes itself). iterations is the number of inner
// iterations the algorithm performed if it's a metaheuristic driver (0 for
// plain constructive heuristics, which have no notion of iteration count).
type RunFunc func(inst *instance.Instance, rng *rand.Rand) (sol *solution.Solution, iterations int, err error)

// Stats aggregates NumRuns executions of one algorithm against one
// instance.
type Stats struct {
	AlgorithmName string
	InstanceName  string

	NumRuns int
	MinCost int
	MaxCost int
	AvgCost float64

	BestSolution *solution.Solution

	AvgTimeMs float64

	// ReportsIterations is true for metaheuristic drivers (MSLS, ILS, LNS,
	// HAE), whose AvgIterations is meaningful; plain constructive
	// heuristics leave it false and AvgIterations at zero.
	ReportsIterations bool
	AvgIterations     float64
}

// RunExperiment runs fn numRuns times against inst, deriving each run's RNG
// substream from rng so the whole batch is reproducible from a single
// seed. Each run's outcome is validated before being folded into the
// aggregate; a run whose error return is non-nil is skipped and does not
// count toward NumRuns. If every run fails, RunExperiment returns a
// zero-NumRuns Stats and ErrAllRunsFailed rather than panicking, so a
// single bad instance doesn't abort the rest of a batch.
//
// A run producing an invalid solution (Validate fails) is treated as a
// programming bug, not a data problem, and panics: this system guarantees
// every algorithm returns a cycle-valid solution or an error, never a
// silently malformed one.
func RunExperiment(algorithmName, instanceName string, inst *instance.Instance, numRuns int, reportsIterations bool, fn RunFunc, rng *rand.Rand, progress Progress) (Stats, error) {
	if progress == nil {
		progress = NoopProgress{}
	}

	stats := Stats{AlgorithmName: algorithmName, InstanceName: instanceName, ReportsIterations: reportsIterations}
	if numRuns <= 0 {
		return stats, nil
	}

	var sumCost, sumTimeMs, sumIterations float64
	completed := 0

	for i := 0; i < numRuns; i++ {
		runRNG := rngutil.DeriveRNG(rng, uint64(i))

		start := time.Now()
		sol, iterations, err := fn(inst, runRNG)
		elapsed := time.Since(start)
		if err != nil {
			continue
		}
		if verr := sol.Validate(); verr != nil {
			panic("experiment: algorithm " + algorithmName + " produced an invalid solution: " + verr.Error())
		}

		cost := sol.Cost(inst)
		completed++
		sumCost += float64(cost)
		sumTimeMs += float64(elapsed.Microseconds()) / 1000.0
		sumIterations += float64(iterations)

		if stats.BestSolution == nil || cost < stats.MinCost {
			stats.MinCost = cost
			stats.BestSolution = sol
		}
		if completed == 1 || cost > stats.MaxCost {
			stats.MaxCost = cost
		}

		progress.OnRunComplete(RunEvent{
			Algorithm: algorithmName,
			Instance:  instanceName,
			RunIndex:  i,
			NumRuns:   numRuns,
			Cost:      cost,
			Elapsed:   elapsed,
		})
	}

	if completed == 0 {
		return Stats{AlgorithmName: algorithmName, InstanceName: instanceName, ReportsIterations: reportsIterations}, ErrAllRunsFailed
	}

	stats.NumRuns = completed
	stats.AvgCost = sumCost / float64(completed)
	stats.AvgTimeMs = sumTimeMs / float64(completed)
	if reportsIterations {
		stats.AvgIterations = sumIterations / float64(completed)
	}

	return stats, nil
}
