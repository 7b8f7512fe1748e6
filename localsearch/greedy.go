package localsearch

import (
	"math/rand"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/move"
	"github.com/twocycletsp/solver/solution"
)

// runGreedy enumerates all currently improving moves, randomizes their
// order with rng, and applies the first one; repeats until an iteration
// finds nothing improving.
func runGreedy(inst *instance.Instance, s *solution.Solution, opts Options, rng *rand.Rand) int {
	running := s.Cost(inst)
	for {
		candidates := enumerateAll(inst, s, opts.Neighborhood, opts.Eps)
		if len(candidates) == 0 {
			return running
		}
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		chosen := candidates[0]
		if chosen.Delta >= -opts.Eps {
			return running // safety stop: no genuinely improving move
		}
		move.Apply(s, chosen.Move)
		running += chosen.Delta
		if opts.Debug {
			running = checkInvariant(inst, s, running)
		}
	}
}
