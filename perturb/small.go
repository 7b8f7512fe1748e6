package perturb

import (
	"math/rand"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/move"
	"github.com/twocycletsp/solver/solution"
)

// kind enumerates the three move families SmallPerturbation samples from,
// mirroring the neighborhood used by local search.
type kind uint8

const (
	kindInter kind = iota
	kindIntraVertex
	kindIntraEdge
)

// Small applies SmallPerturbation(kMoves) in place on s: kMoves uniformly
// random moves from the inter/intra-route families, applied regardless of
// delta (used by ILS). Degenerate topologies are resampled rather than
// skipped, up to 64 attempts per move; a move whose 64 samples are all
// rejected is not applied, so fewer than kMoves moves can result.
func Small(inst *instance.Instance, s *solution.Solution, kMoves int, rng *rand.Rand) {
	for i := 0; i < kMoves; i++ {
		applyOneRandomMove(inst, s, rng)
	}
}

func applyOneRandomMove(inst *instance.Instance, s *solution.Solution, rng *rand.Rand) {
	const maxAttempts = 64
	for attempt := 0; attempt < maxAttempts; attempt++ {
		switch kind(rng.Intn(3)) {
		case kindInter:
			n1, n2 := s.Len(solution.Cycle1), s.Len(solution.Cycle2)
			if n1 == 0 || n2 == 0 {
				continue
			}
			ev, ok := move.EvaluateInter(inst, s, rng.Intn(n1), rng.Intn(n2))
			if ok {
				move.Apply(s, ev.Move)

				return
			}
		case kindIntraVertex:
			c := randomCycle(s, rng)
			n := s.Len(c)
			if n < 2 {
				continue
			}
			p1, p2 := distinctPositions(rng, n)
			ev, ok := move.EvaluateIntraVertex(inst, s, c, p1, p2)
			if ok {
				move.Apply(s, ev.Move)

				return
			}
		case kindIntraEdge:
			c := randomCycle(s, rng)
			n := s.Len(c)
			if n < 3 {
				continue
			}
			p1, p2 := distinctPositions(rng, n)
			ev, ok := move.EvaluateIntraEdge(inst, s, c, p1, p2)
			if ok {
				move.Apply(s, ev.Move)

				return
			}
		}
	}
}

func randomCycle(s *solution.Solution, rng *rand.Rand) solution.CycleID {
	if rng.Intn(2) == 0 {
		return solution.Cycle1
	}

	return solution.Cycle2
}

func distinctPositions(rng *rand.Rand, n int) (int, int) {
	p1 := rng.Intn(n)
	p2 := rng.Intn(n - 1)
	if p2 >= p1 {
		p2++
	}

	return p1, p2
}
