// Package solver is a two-cycle Euclidean TSP solver: partition n nodes
// into two disjoint closed tours of size ⌈n/2⌉ and ⌊n/2⌋ minimizing
// combined length.
//
// The module is organized as:
//
//	instance/      — immutable geometric instance: coordinates, distance
//	                 matrix, candidate neighbor lists, TSPLIB EUC_2D reader
//	solution/      — two-cycle Solution: cost, position index, edge queries
//	move/          — tagged move variants and O(1) incremental delta evaluation
//	localsearch/   — Greedy, Steepest, CandidateSteepest, MoveListSteepest
//	perturb/       — small (ILS) and large (LNS) perturbation operators
//	construct/     — nearest-neighbor, greedy-cycle, 2-regret, weighted 2-regret
//	metaheuristic/ — MSLS, ILS, LNS, HAE
//	experiment/    — run aggregation, Markdown reporting, tour plotting
//	cmd/twocycletsp — CLI entry point
//
// See DESIGN.md for how each package is grounded and SPEC_FULL.md for the
// full requirements this module implements.
package solver
