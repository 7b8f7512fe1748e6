package move

import (
	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/solution"
)

// EvaluateInter computes the delta of swapping the node at position pos1 of
// cycle1 with the node at position pos2 of cycle2.
//
// Special-cases cycles of length 1 or 2 so the shared-neighbor edges are
// not double-counted: a cycle of length 1 has no edges before or after the
// swap, so it contributes nothing to the delta; when length 2, the two
// neighbor slots are each other, which the general formula already handles
// correctly via the wrap-around, so no extra casing is needed there.
func EvaluateInter(inst *instance.Instance, s *solution.Solution, pos1, pos2 int) (Evaluated, bool) {
	n1 := s.Len(solution.Cycle1)
	n2 := s.Len(solution.Cycle2)
	if n1 == 0 || n2 == 0 || pos1 < 0 || pos1 >= n1 || pos2 < 0 || pos2 >= n2 {
		return Evaluated{}, false
	}

	v1 := s.At(solution.Cycle1, pos1)
	v2 := s.At(solution.Cycle2, pos2)

	removed, added := 0, 0
	if n1 > 1 {
		prev1, next1 := cycleNeighbors(s, solution.Cycle1, pos1)
		removed += dist(inst, prev1, v1) + dist(inst, v1, next1)
		added += dist(inst, prev1, v2) + dist(inst, v2, next1)
	}
	if n2 > 1 {
		prev2, next2 := cycleNeighbors(s, solution.Cycle2, pos2)
		removed += dist(inst, prev2, v2) + dist(inst, v2, next2)
		added += dist(inst, prev2, v1) + dist(inst, v1, next2)
	}

	return Evaluated{
		Move:  Move{Kind: InterExchange, V1: v1, V2: v2},
		Delta: added - removed,
	}, true
}

// cycleNeighbors returns the predecessor/successor of the node at position
// pos in cycle c, wrapping around. For a length-1 cycle both neighbors are
// the node itself (prevPos==nextPos==pos).
func cycleNeighbors(s *solution.Solution, c solution.CycleID, pos int) (prev, next int) {
	m := s.Len(c)
	prevPos := pos - 1
	if prevPos < 0 {
		prevPos = m - 1
	}
	nextPos := pos + 1
	if nextPos >= m {
		nextPos = 0
	}

	return s.At(c, prevPos), s.At(c, nextPos)
}

// EvaluateIntraVertex computes the delta of swapping the nodes at pos1 and
// pos2 within the same cycle c. Rejects pos1==pos2 or a cycle shorter
// than 2.
func EvaluateIntraVertex(inst *instance.Instance, s *solution.Solution, c solution.CycleID, pos1, pos2 int) (Evaluated, bool) {
	n := s.Len(c)
	if n < 2 || pos1 == pos2 || pos1 < 0 || pos1 >= n || pos2 < 0 || pos2 >= n {
		return Evaluated{}, false
	}
	if pos1 > pos2 {
		pos1, pos2 = pos2, pos1
	}

	v1 := s.At(c, pos1)
	v2 := s.At(c, pos2)

	adjacent := pos2 == pos1+1 || (pos1 == 0 && pos2 == n-1)

	var delta int
	switch {
	case n == 2:
		delta = 0
	case adjacent:
		if pos2 != pos1+1 {
			// Wrap-around pair: the node at n-1 precedes the node at 0.
			pos1, pos2 = pos2, pos1
			v1, v2 = v2, v1
		}
		prev1, _ := cycleNeighbors(s, c, pos1)
		_, next2 := cycleNeighbors(s, c, pos2)
		removed := dist(inst, prev1, v1) + dist(inst, v1, v2) + dist(inst, v2, next2)
		added := dist(inst, prev1, v2) + dist(inst, v2, v1) + dist(inst, v1, next2)
		delta = added - removed
	default:
		prev1, next1 := cycleNeighbors(s, c, pos1)
		prev2, next2 := cycleNeighbors(s, c, pos2)
		removed := dist(inst, prev1, v1) + dist(inst, v1, next1) + dist(inst, prev2, v2) + dist(inst, v2, next2)
		added := dist(inst, prev1, v2) + dist(inst, v2, next1) + dist(inst, prev2, v1) + dist(inst, v1, next2)
		delta = added - removed
	}

	return Evaluated{
		Move:  Move{Kind: IntraVertexExchange, V1: v1, V2: v2, Cycle: c},
		Delta: delta,
	}, true
}

// EvaluateIntraEdge computes the 2-opt delta for removing edges
// (cycle[pos1],cycle[pos1+1]) and (cycle[pos2],cycle[pos2+1]) and adding
// (a,c)+(b,d). Rejects cycles shorter than 3, identical edges, or edges
// that share an endpoint.
func EvaluateIntraEdge(inst *instance.Instance, s *solution.Solution, c solution.CycleID, pos1, pos2 int) (Evaluated, bool) {
	n := s.Len(c)
	if n < 3 || pos1 < 0 || pos1 >= n || pos2 < 0 || pos2 >= n || pos1 == pos2 {
		return Evaluated{}, false
	}
	next1 := pos1 + 1
	if next1 >= n {
		next1 = 0
	}
	next2 := pos2 + 1
	if next2 >= n {
		next2 = 0
	}
	if next1 == pos2 || next2 == pos1 {
		return Evaluated{}, false // adjacent edges: overlapping topology
	}

	a := s.At(c, pos1)
	b := s.At(c, next1)
	cc := s.At(c, pos2)
	d := s.At(c, next2)

	removed := dist(inst, a, b) + dist(inst, cc, d)
	added := dist(inst, a, cc) + dist(inst, b, d)

	return Evaluated{
		Move:  Move{Kind: IntraEdgeExchange, A: a, B: b, C: cc, D: d, Cycle: c},
		Delta: added - removed,
	}, true
}

// EvaluateCandidateEdge computes the candidate-2-opt delta used by
// CandidateSteepest: given positions pa, pb in the same cycle, treat
// (a, a_next) and (b, b_next) as the removed edges and (a,b)+(a_next,b_next)
// as the added ones. This is a different (pos1,pos2) convention than
// EvaluateIntraEdge — both forms produce the same 2-opt move class with
// different position semantics; this module picks the candidate form only
// for CandidateSteepest and the general form for Steepest/Greedy/MoveList,
// applied consistently (never mixed within a single search run).
func EvaluateCandidateEdge(inst *instance.Instance, s *solution.Solution, c solution.CycleID, pa, pb int) (Evaluated, bool) {
	n := s.Len(c)
	if n < 3 || pa < 0 || pa >= n || pb < 0 || pb >= n || pa == pb {
		return Evaluated{}, false
	}
	aNextPos := pa + 1
	if aNextPos >= n {
		aNextPos = 0
	}
	bNextPos := pb + 1
	if bNextPos >= n {
		bNextPos = 0
	}
	if aNextPos == pb || bNextPos == pa {
		return Evaluated{}, false // overlapping topology
	}

	a := s.At(c, pa)
	b := s.At(c, pb)
	aNext := s.At(c, aNextPos)
	bNext := s.At(c, bNextPos)

	removed := dist(inst, a, aNext) + dist(inst, b, bNext)
	added := dist(inst, a, b) + dist(inst, aNext, bNext)

	// Stored in the canonical IntraEdgeExchange shape: removed edges were
	// (a,aNext) and (b,bNext), so A=a,B=aNext,C=b,D=bNext.
	return Evaluated{
		Move:  Move{Kind: IntraEdgeExchange, A: a, B: aNext, C: b, D: bNext, Cycle: c},
		Delta: added - removed,
	}, true
}
