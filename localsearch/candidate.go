package localsearch

import (
	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/move"
	"github.com/twocycletsp/solver/solution"
)

// runCandidateSteepest restricts each node a to pairs (a,b) with b among a's
// k nearest neighbors, evaluating inter-exchange across cycles or the
// configured intra-route move within one cycle, and applies the most
// improving candidate each iteration, pruning the O(n²) pair space down
// to O(n·k).
func runCandidateSteepest(inst *instance.Instance, s *solution.Solution, opts Options) int {
	running := s.Cost(inst)
	for {
		candidates := enumerateCandidates(inst, s, opts)
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

func enumerateCandidates(inst *instance.Instance, s *solution.Solution, opts Options) []move.Evaluated {
	var out []move.Evaluated
	n := inst.N()
	for a := 0; a < n; a++ {
		ca, pa, ok := s.FindNode(a)
		if !ok {
			continue
		}
		neighbors := inst.NearestNeighbors(a)
		if opts.CandidateK > 0 && opts.CandidateK < len(neighbors) {
			neighbors = neighbors[:opts.CandidateK]
		}
		for _, b := range neighbors {
			cb, pb, ok := s.FindNode(b)
			if !ok {
				continue
			}

			var ev move.Evaluated
			var okEval bool
			if ca != cb {
				if ca == solution.Cycle1 {
					ev, okEval = move.EvaluateInter(inst, s, pa, pb)
				} else {
					ev, okEval = move.EvaluateInter(inst, s, pb, pa)
				}
			} else if opts.Neighborhood == VertexExchange {
				ev, okEval = move.EvaluateIntraVertex(inst, s, ca, pa, pb)
			} else {
				ev, okEval = move.EvaluateCandidateEdge(inst, s, ca, pa, pb)
			}

			if okEval && ev.Delta < -opts.Eps {
				out = append(out, ev)
			}
		}
	}

	return out
}
