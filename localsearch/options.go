// Package localsearch implements the four local-search control strategies —
// Greedy, Steepest, CandidateSteepest(k), and MoveListSteepest — sharing
// one neighborhood (inter-route exchange plus a configurable intra-route
// family) and the move package's incremental
// evaluators. All four terminate at a local optimum: an iteration that
// finds no improving move. For CandidateSteepest that optimum is with
// respect to candidate pairs only; moves outside them are not examined.
package localsearch

import (
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/solution"
)

// Neighborhood selects the intra-cycle move family; inter-cycle exchange is
// always included.
type Neighborhood uint8

const (
	// VertexExchange uses IntraVertexExchange as the intra-cycle move.
	VertexExchange Neighborhood = iota
	// EdgeExchange uses IntraEdgeExchange (2-opt) as the intra-cycle move.
	EdgeExchange
)

// Variant selects which of the four search control strategies Run executes.
type Variant uint8

const (
	// Greedy applies the first improving move found, in randomized order.
	Greedy Variant = iota
	// Steepest applies the most improving move each iteration.
	Steepest
	// CandidateSteepest restricts consideration to each node's k nearest
	// neighbors (Options.CandidateK).
	CandidateSteepest
	// MoveListSteepest maintains a sorted cache of improving moves,
	// incrementally repaired after each apply.
	MoveListSteepest
)

// Options configures a Run call. The zero value is not ready to use;
// callers should start from DefaultOptions.
type Options struct {
	Neighborhood Neighborhood
	Variant      Variant
	// CandidateK is the neighbor-list size used by CandidateSteepest
	// (default 10); ignored by the other variants. It is capped at the
	// instance's own list size (instance.K()), and a value <= 0 uses the
	// instance's whole list.
	CandidateK int
	// Eps is the minimum strict-improvement threshold: a move is
	// improving only if delta < -Eps.
	Eps int
	// Debug enables the full-recomputation cost check after every apply.
	// Costly; intended for tests and diagnostics, not production runs.
	Debug bool
}

// DefaultOptions returns the default configuration: EdgeExchange
// neighborhood, Steepest variant, CandidateK=10, Eps=0, Debug off.
func DefaultOptions() Options {
	return Options{
		Neighborhood: EdgeExchange,
		Variant:      Steepest,
		CandidateK:   instance.DefaultK,
		Eps:          0,
		Debug:        false,
	}
}

// Run mutates s in place, applying moves from opts.Variant until no
// improving move remains, and returns the final cost. rng is consulted by
// Greedy's shuffle and is otherwise unused by the deterministic variants.
func Run(inst *instance.Instance, s *solution.Solution, opts Options, rng *rand.Rand) int {
	switch opts.Variant {
	case Greedy:
		return runGreedy(inst, s, opts, rng)
	case CandidateSteepest:
		return runCandidateSteepest(inst, s, opts)
	case MoveListSteepest:
		return runMoveListSteepest(inst, s, opts)
	default:
		return runSteepest(inst, s, opts)
	}
}

// checkInvariant implements the debug-mode cost-consistency check: if
// running and recomputed cost disagree, log a warning and return the
// true value rather than crash.
func checkInvariant(inst *instance.Instance, s *solution.Solution, running int) int {
	truth := s.Cost(inst)
	if truth != running {
		log.Warn().
			Int("running_cost", running).
			Int("recomputed_cost", truth).
			Msg("localsearch: incremental cost diverged from full recomputation")

		return truth
	}

	return running
}
