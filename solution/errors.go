// Package solution models a candidate two-cycle partition of an Instance's
// nodes: two ordered, disjoint closed tours whose union covers every node
// exactly once. Solution is mutable — constructed once, then repeatedly
// mutated in place by move application.
package solution

import "errors"

var (
	// ErrDuplicateNode indicates a node appears more than once across the
	// two cycles.
	ErrDuplicateNode = errors.New("solution: duplicate node across cycles")

	// ErrMissingNode indicates some node in [0,n) never appears in either
	// cycle (violates P1).
	ErrMissingNode = errors.New("solution: node missing from both cycles")

	// ErrWrongSize indicates a cycle's length does not match its target
	// size ⌈n/2⌉ / ⌊n/2⌋ (violates P2).
	ErrWrongSize = errors.New("solution: cycle size does not match target")

	// ErrUnknownNode indicates an operation referenced a node not present
	// in either cycle.
	ErrUnknownNode = errors.New("solution: unknown node")

	// ErrSameCycleExpected indicates an intra-route operation was given
	// nodes that are not both in the same cycle.
	ErrSameCycleExpected = errors.New("solution: nodes are not in the same cycle")
)
