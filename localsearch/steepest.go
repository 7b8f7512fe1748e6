package localsearch

import (
	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/move"
	"github.com/twocycletsp/solver/solution"
)

// runSteepest enumerates all improving moves each iteration and applies the
// one with most-negative delta, ties broken by enumeration order.
func runSteepest(inst *instance.Instance, s *solution.Solution, opts Options) int {
	running := s.Cost(inst)
	for {
		candidates := enumerateAll(inst, s, opts.Neighborhood, opts.Eps)
		best, ok := bestOf(candidates)
		if !ok {
			return running
		}
		move.Apply(s, best.Move)
		running += best.Delta
		if opts.Debug {
			running = checkInvariant(inst, s, running)
		}
	}
}

// bestOf returns the most-negative-delta move in evs, ties broken by the
// first occurrence (stable scan order).
func bestOf(evs []move.Evaluated) (move.Evaluated, bool) {
	if len(evs) == 0 {
		return move.Evaluated{}, false
	}
	best := evs[0]
	for _, ev := range evs[1:] {
		if ev.Delta < best.Delta {
			best = ev
		}
	}

	return best, true
}
