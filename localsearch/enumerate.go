package localsearch

import (
	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/move"
	"github.com/twocycletsp/solver/solution"
)

// enumerateAll returns every improving move (delta < -eps) reachable from s
// under the configured neighborhood: the full inter-route exchange space
// plus the chosen intra-route family in both cycles. This is the full
// enumeration Steepest uses directly, and MoveListSteepest uses once to
// seed its cache.
func enumerateAll(inst *instance.Instance, s *solution.Solution, nb Neighborhood, eps int) []move.Evaluated {
	var out []move.Evaluated

	n1, n2 := s.Len(solution.Cycle1), s.Len(solution.Cycle2)
	for p1 := 0; p1 < n1; p1++ {
		for p2 := 0; p2 < n2; p2++ {
			if ev, ok := move.EvaluateInter(inst, s, p1, p2); ok && ev.Delta < -eps {
				out = append(out, ev)
			}
		}
	}

	for _, c := range []solution.CycleID{solution.Cycle1, solution.Cycle2} {
		out = append(out, enumerateIntra(inst, s, c, nb, eps)...)
	}

	return out
}

// enumerateIntra returns improving intra-route moves of the configured
// neighborhood within a single cycle, each unordered pair considered once.
func enumerateIntra(inst *instance.Instance, s *solution.Solution, c solution.CycleID, nb Neighborhood, eps int) []move.Evaluated {
	var out []move.Evaluated
	n := s.Len(c)
	for p1 := 0; p1 < n; p1++ {
		for p2 := p1 + 1; p2 < n; p2++ {
			ev, ok := evaluateIntra(inst, s, c, nb, p1, p2)
			if ok && ev.Delta < -eps {
				out = append(out, ev)
			}
		}
	}

	return out
}

func evaluateIntra(inst *instance.Instance, s *solution.Solution, c solution.CycleID, nb Neighborhood, p1, p2 int) (move.Evaluated, bool) {
	if nb == VertexExchange {
		return move.EvaluateIntraVertex(inst, s, c, p1, p2)
	}

	return move.EvaluateIntraEdge(inst, s, c, p1, p2)
}
