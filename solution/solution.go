package solution

import "github.com/twocycletsp/solver/instance"

// CycleID identifies one of the two cycles held by a Solution.
type CycleID uint8

const (
	// Cycle1 holds ⌈n/2⌉ nodes.
	Cycle1 CycleID = iota
	// Cycle2 holds ⌊n/2⌋ nodes.
	Cycle2
)

// Other returns the cycle id that is not c.
func (c CycleID) Other() CycleID {
	if c == Cycle1 {
		return Cycle2
	}

	return Cycle1
}

// position locates a node within a cycle; position[v] is kept in sync with
// every mutation so FindNode is O(1) rather than a linear scan.
type position struct {
	cycle CycleID
	pos   int
}

// Solution is a mutable two-cycle partition of {0,...,n-1}. It is produced
// by New, mutated in place by the move package's appliers, and cloned when
// snapshotted as a "best so far" solution.
//
// Invariant P1 (coverage): cycle1 ∪ cycle2 == {0,...,n-1}, each exactly once.
// Invariant P2 (sizes): len(cycle1)==ceil(n/2), len(cycle2)==floor(n/2).
type Solution struct {
	n      int
	cycles [2][]int
	pos    []position
}

// TargetSize returns the required length of cycle c for an instance of n
// nodes: ⌈n/2⌉ for Cycle1, ⌊n/2⌋ for Cycle2.
func TargetSize(n int, c CycleID) int {
	if c == Cycle1 {
		return (n + 1) / 2
	}

	return n / 2
}

// New builds a Solution from two node slices, validating P1 and P2 for an
// n-node instance. The slices are copied; callers retain ownership of their
// originals.
func New(n int, cycle1, cycle2 []int) (*Solution, error) {
	if len(cycle1) != TargetSize(n, Cycle1) || len(cycle2) != TargetSize(n, Cycle2) {
		return nil, ErrWrongSize
	}

	s := &Solution{
		n:      n,
		cycles: [2][]int{append([]int(nil), cycle1...), append([]int(nil), cycle2...)},
		pos:    make([]position, n),
	}

	seen := make([]bool, n)
	for _, c := range []CycleID{Cycle1, Cycle2} {
		cyc := s.cycles[c]
		for i, v := range cyc {
			if v < 0 || v >= n {
				return nil, ErrUnknownNode
			}
			if seen[v] {
				return nil, ErrDuplicateNode
			}
			seen[v] = true
			s.pos[v] = position{cycle: c, pos: i}
		}
	}
	for _, ok := range seen {
		if !ok {
			return nil, ErrMissingNode
		}
	}

	return s, nil
}

// N returns the total node count.
func (s *Solution) N() int { return s.n }

// Len returns the current length of cycle c.
func (s *Solution) Len(c CycleID) int { return len(s.cycles[c]) }

// At returns the node at position i of cycle c.
func (s *Solution) At(c CycleID, i int) int { return s.cycles[c][i] }

// Cycle returns the underlying node slice for c. Callers must treat it as
// read-only; use the mutator methods below (ReplaceAt, SwapPositions,
// ReverseSegment) to change a Solution so the position index stays correct.
func (s *Solution) Cycle(c CycleID) []int { return s.cycles[c] }

// FindNode returns the (cycle, position) of node v in O(1).
func (s *Solution) FindNode(v int) (CycleID, int, bool) {
	if v < 0 || v >= s.n {
		return 0, 0, false
	}
	p := s.pos[v]

	return p.cycle, p.pos, true
}

// Neighbors returns the predecessor and successor of node v within its own
// cycle, wrapping around. If v's cycle has length 1, both are v itself.
func (s *Solution) Neighbors(v int) (prev, next int) {
	c, p, _ := s.FindNode(v)
	cyc := s.cycles[c]
	m := len(cyc)
	prevPos := p - 1
	if prevPos < 0 {
		prevPos = m - 1
	}
	nextPos := p + 1
	if nextPos >= m {
		nextPos = 0
	}

	return cyc[prevPos], cyc[nextPos]
}

// HasEdge reports whether the undirected edge {u,v} is present in either
// cycle (i.e. u and v are adjacent, in either order, respecting wrap), and
// if so which cycle it belongs to.
func (s *Solution) HasEdge(u, v int) (CycleID, bool) {
	cu, pu, ok := s.FindNode(u)
	if !ok {
		return 0, false
	}
	cv, _, ok := s.FindNode(v)
	if !ok || cu != cv {
		return 0, false
	}
	cyc := s.cycles[cu]
	m := len(cyc)
	nextPos := pu + 1
	if nextPos >= m {
		nextPos = 0
	}
	prevPos := pu - 1
	if prevPos < 0 {
		prevPos = m - 1
	}
	if cyc[nextPos] == v || cyc[prevPos] == v {
		return cu, true
	}

	return 0, false
}

// Cost returns the total length of both cycles under inst.
//
// Complexity: O(n).
func (s *Solution) Cost(inst *instance.Instance) int {
	total := 0
	for _, c := range []CycleID{Cycle1, Cycle2} {
		total += cycleCost(inst, s.cycles[c])
	}

	return total
}

func cycleCost(inst *instance.Instance, cyc []int) int {
	m := len(cyc)
	if m < 2 {
		return 0
	}
	cost := 0
	for i := 0; i < m; i++ {
		j := i + 1
		if j == m {
			j = 0
		}
		cost += inst.Distance(cyc[i], cyc[j])
	}

	return cost
}

// Validate re-checks P1 and P2 from scratch; used by tests and by debug
// assertions after move application.
func (s *Solution) Validate() error {
	if len(s.cycles[Cycle1]) != TargetSize(s.n, Cycle1) || len(s.cycles[Cycle2]) != TargetSize(s.n, Cycle2) {
		return ErrWrongSize
	}
	seen := make([]bool, s.n)
	for _, c := range []CycleID{Cycle1, Cycle2} {
		for _, v := range s.cycles[c] {
			if v < 0 || v >= s.n {
				return ErrUnknownNode
			}
			if seen[v] {
				return ErrDuplicateNode
			}
			seen[v] = true
		}
	}
	for _, ok := range seen {
		if !ok {
			return ErrMissingNode
		}
	}

	return nil
}

// Clone returns an independent deep copy of s.
func (s *Solution) Clone() *Solution {
	out := &Solution{
		n:      s.n,
		cycles: [2][]int{append([]int(nil), s.cycles[Cycle1]...), append([]int(nil), s.cycles[Cycle2]...)},
		pos:    append([]position(nil), s.pos...),
	}

	return out
}

// ReplaceAt overwrites the node at position i of cycle c with node, keeping
// the position index in sync. Used by InterExchange.
func (s *Solution) ReplaceAt(c CycleID, i int, node int) {
	s.cycles[c][i] = node
	s.pos[node] = position{cycle: c, pos: i}
}

// SwapPositions exchanges the nodes at positions i and j of cycle c,
// keeping the position index in sync. Used by IntraVertexExchange.
func (s *Solution) SwapPositions(c CycleID, i, j int) {
	cyc := s.cycles[c]
	cyc[i], cyc[j] = cyc[j], cyc[i]
	s.pos[cyc[i]] = position{cycle: c, pos: i}
	s.pos[cyc[j]] = position{cycle: c, pos: j}
}

// RemoveAt deletes the node at position i of cycle c, shifting subsequent
// nodes left and keeping the position index in sync, and returns the
// removed node. Used by the destroy phase of large perturbation and HAE
// recombination; callers are responsible for restoring P2 (target cycle
// sizes) before treating the Solution as complete again.
func (s *Solution) RemoveAt(c CycleID, i int) int {
	cyc := s.cycles[c]
	node := cyc[i]
	copy(cyc[i:], cyc[i+1:])
	s.cycles[c] = cyc[:len(cyc)-1]
	for k := i; k < len(s.cycles[c]); k++ {
		s.pos[s.cycles[c][k]] = position{cycle: c, pos: k}
	}

	return node
}

// InsertAt inserts node into cycle c at position i (0<=i<=Len(c)), shifting
// subsequent nodes right and keeping the position index in sync. See
// RemoveAt for the accompanying invariant note.
func (s *Solution) InsertAt(c CycleID, i int, node int) {
	cyc := s.cycles[c]
	cyc = append(cyc, 0)
	copy(cyc[i+1:], cyc[i:])
	cyc[i] = node
	s.cycles[c] = cyc
	for k := i; k < len(cyc); k++ {
		s.pos[cyc[k]] = position{cycle: c, pos: k}
	}
}

// ReverseSegment reverses the inclusive run of positions [i..j] of cycle c.
// If i>j the run wraps around the end of the cycle (the segment
// i,i+1,...,m-1,0,...,j). This is the 2-opt primitive: a 2-opt move is
// applied by reversing the segment between the two removed edges' inner
// endpoints.
//
// Complexity: O(min(len, m-len)) is not attempted here — the reversal walks
// exactly the named segment, which may be the long way around. The
// IntraEdgeExchange applier in package move always reverses the segment from
// B to C and does not pick the shorter orientation.
func (s *Solution) ReverseSegment(c CycleID, i, j int) {
	cyc := s.cycles[c]
	m := len(cyc)
	if m == 0 {
		return
	}

	var length int
	if i <= j {
		length = j - i + 1
	} else {
		length = m - i + j + 1
	}

	lo, hi := i, j
	for k := 0; k < length/2; k++ {
		cyc[lo], cyc[hi] = cyc[hi], cyc[lo]
		s.pos[cyc[lo]] = position{cycle: c, pos: lo}
		s.pos[cyc[hi]] = position{cycle: c, pos: hi}
		lo++
		if lo >= m {
			lo = 0
		}
		hi--
		if hi < 0 {
			hi = m - 1
		}
	}
}
