// Package move implements the tagged Move variants of the local-search
// neighborhood: the inter-route exchange, the two intra-route neighborhoods
// (vertex exchange and edge exchange / 2-opt), their O(1) incremental-delta
// evaluators, and
// their in-place appliers. This is the hot-path core the local-search and
// metaheuristic engines are built on.
//
// Every evaluator inspects only the edges adjacent to the candidate move
// site and returns the exact signed change in total cost — never a full
// recomputation. Rejected topologies (degenerate cycle sizes, overlapping
// edges, identical positions) return ok=false rather than an error: an
// unevaluable move is handled locally by omission, never propagated as
// an error.
package move

import (
	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/solution"
)

// Kind tags which Move variant a value holds.
type Kind uint8

const (
	// InterExchange swaps a node in cycle1 with a node in cycle2.
	InterExchange Kind = iota
	// IntraVertexExchange swaps positions of two nodes within one cycle.
	IntraVertexExchange
	// IntraEdgeExchange is a 2-opt: replace (a,b) and (c,d) with (a,c) and (b,d).
	IntraEdgeExchange
)

// Move is a tagged variant over the three move kinds. Only the fields
// relevant to Kind are meaningful; Apply and the evaluators agree on
// which fields those are per kind.
type Move struct {
	Kind Kind

	// InterExchange: V1 in cycle1, V2 in cycle2.
	// IntraVertexExchange: V1, V2 in Cycle, any order.
	V1, V2 int

	// IntraEdgeExchange only: removed edges are (A,B) and (C,D), both
	// directed edges of Cycle in the direction the tour is walked.
	A, B, C, D int

	// Cycle is meaningful for IntraVertexExchange and IntraEdgeExchange
	// (InterExchange always spans both cycles, so it is unused there).
	Cycle solution.CycleID
}

// Evaluated pairs a Move with its exact cost delta (may be negative).
type Evaluated struct {
	Move  Move
	Delta int
}

// Apply performs the move in place on s. The caller is responsible for
// having validated the move is still applicable (e.g. via Valid, for moves
// read back out of a cache) — Apply does not re-check topology.
func Apply(s *solution.Solution, m Move) {
	switch m.Kind {
	case InterExchange:
		applyInter(s, m)
	case IntraVertexExchange:
		applyIntraVertex(s, m)
	case IntraEdgeExchange:
		applyIntraEdge(s, m)
	}
}

func applyInter(s *solution.Solution, m Move) {
	c1, p1, ok1 := s.FindNode(m.V1)
	c2, p2, ok2 := s.FindNode(m.V2)
	if !ok1 || !ok2 || c1 == c2 {
		return // stale move; see Apply's doc — callers validate first
	}
	s.ReplaceAt(c1, p1, m.V2)
	s.ReplaceAt(c2, p2, m.V1)
}

func applyIntraVertex(s *solution.Solution, m Move) {
	_, p1, ok1 := s.FindNode(m.V1)
	_, p2, ok2 := s.FindNode(m.V2)
	if !ok1 || !ok2 {
		return
	}
	s.SwapPositions(m.Cycle, p1, p2)
}

// applyIntraEdge reverses the segment between B and C (inclusive): from
// position-of-b to position-of-c inclusive, reversing across the wrap if
// start > end.
func applyIntraEdge(s *solution.Solution, m Move) {
	_, posB, okB := s.FindNode(m.B)
	_, posC, okC := s.FindNode(m.C)
	if !okB || !okC {
		return
	}
	s.ReverseSegment(m.Cycle, posB, posC)
}

// Valid reports whether m still names an applicable move under the current
// solution state — the move-cache validity contract:
//
//   - InterExchange: v1 and v2 are currently in different cycles.
//   - IntraVertexExchange: both nodes are currently in the named cycle.
//   - IntraEdgeExchange: both (a,b) and (c,d) are currently directed edges
//     of the named cycle.
func Valid(s *solution.Solution, m Move) bool {
	switch m.Kind {
	case InterExchange:
		c1, _, ok1 := s.FindNode(m.V1)
		c2, _, ok2 := s.FindNode(m.V2)

		return ok1 && ok2 && c1 != c2
	case IntraVertexExchange:
		c1, _, ok1 := s.FindNode(m.V1)
		c2, _, ok2 := s.FindNode(m.V2)

		return ok1 && ok2 && c1 == m.Cycle && c2 == m.Cycle
	case IntraEdgeExchange:
		return directedEdgeIn(s, m.Cycle, m.A, m.B) && directedEdgeIn(s, m.Cycle, m.C, m.D)
	}

	return false
}

// directedEdgeIn reports whether u immediately precedes v in cycle c,
// walking forward from u's position (wrap-aware).
func directedEdgeIn(s *solution.Solution, c solution.CycleID, u, v int) bool {
	cu, pu, ok := s.FindNode(u)
	if !ok || cu != c {
		return false
	}
	m := s.Len(c)
	if m == 0 {
		return false
	}
	next := pu + 1
	if next >= m {
		next = 0
	}

	return s.At(c, next) == v
}

// Support returns the set of nodes the move's delta depends on — the
// endpoints named by the move itself. Used by MoveListSteepest's affected-
// node bookkeeping.
func Support(m Move) []int {
	switch m.Kind {
	case InterExchange, IntraVertexExchange:
		return []int{m.V1, m.V2}
	case IntraEdgeExchange:
		return []int{m.A, m.B, m.C, m.D}
	}

	return nil
}

// dist is a tiny local alias to keep evaluator bodies terse.
func dist(inst *instance.Instance, a, b int) int { return inst.Distance(a, b) }
