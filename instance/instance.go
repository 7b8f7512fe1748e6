package instance

import "math"

// DefaultK is the default candidate-neighbor list size, used by
// CandidateSteepest local search.
const DefaultK = 10

// Point is a 2D Euclidean coordinate.
type Point struct {
	X, Y float64
}

// Instance is an immutable geometric TSP instance: a name, a node count,
// the coordinate list, a precomputed n×n integer distance matrix, and a
// precomputed ordered candidate-neighbor list per node.
//
// Invariant: dist is materialized once at construction and never mutated
// afterward.
type Instance struct {
	name   string
	coords []Point
	dist   []int // flattened n*n, dist[i*n+j] == distance(i,j)
	neigh  [][]int
	k      int
}

// New builds an Instance from coordinates, precomputing the distance matrix
// and the k-nearest-neighbor lists. k is clamped to [0, n-1].
//
// Complexity: O(n²) time for the matrix, O(n²·k) for neighbor selection
// (n is small in practice; for large n this would switch to on-demand
// distance computation without other design changes).
func New(name string, coords []Point, k int) (*Instance, error) {
	n := len(coords)
	if n < 2 {
		return nil, ErrTooSmall
	}
	if k < 0 {
		k = 0
	}
	if k > n-1 {
		k = n - 1
	}

	dist := make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dist[i*n+j] = euc2D(coords[i], coords[j])
		}
	}

	inst := &Instance{
		name:   name,
		coords: coords,
		dist:   dist,
		k:      k,
	}
	inst.neigh = inst.buildNeighborLists(k)

	return inst, nil
}

// euc2D computes the TSPLIB-standard rounded Euclidean distance:
// floor(sqrt(dx²+dy²) + 0.5). E.g. (0,0)-(3,4) -> 5, (0,0)-(1,1) -> 1.
func euc2D(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return int(math.Sqrt(dx*dx+dy*dy) + 0.5)
}

// Name returns the instance's name (from NAME, or caller-supplied).
func (inst *Instance) Name() string { return inst.name }

// N returns the number of nodes.
func (inst *Instance) N() int { return len(inst.coords) }

// K returns the configured candidate-neighbor list size.
func (inst *Instance) K() int { return inst.k }

// Coord returns the coordinate of node v.
func (inst *Instance) Coord(v int) Point { return inst.coords[v] }

// Distance returns the integer distance between nodes i and j.
// distance(i,i)==0 and distance(i,j)==distance(j,i).
//
// Complexity: O(1).
func (inst *Instance) Distance(i, j int) int {
	n := inst.N()

	return inst.dist[i*n+j]
}

// NearestNeighbors returns the ordered (ascending distance, ties by index)
// list of node's k closest distinct nodes, fixed for the life of the
// Instance. Callers must not mutate the returned slice.
//
// Complexity: O(1) (precomputed at construction and never re-sorted per
// iteration).
func (inst *Instance) NearestNeighbors(node int) []int {
	return inst.neigh[node]
}

// buildNeighborLists computes, for every node, the ascending-distance,
// index-tie-broken list of its k nearest neighbors.
func (inst *Instance) buildNeighborLists(k int) [][]int {
	n := inst.N()
	out := make([][]int, n)
	if k == 0 {
		for v := 0; v < n; v++ {
			out[v] = nil
		}

		return out
	}

	cand := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		cand = cand[:0]
		for u := 0; u < n; u++ {
			if u != v {
				cand = append(cand, u)
			}
		}
		// Partial selection sort over cand by (distance, index) — n is small
		// in practice so O(n*k) here is fine and keeps the code simple and
		// allocation-free beyond the single output slice.
		limit := k
		if limit > len(cand) {
			limit = len(cand)
		}
		for i := 0; i < limit; i++ {
			best := i
			for j := i + 1; j < len(cand); j++ {
				if less(inst, v, cand[j], cand[best]) {
					best = j
				}
			}
			cand[i], cand[best] = cand[best], cand[i]
		}
		list := make([]int, limit)
		copy(list, cand[:limit])
		out[v] = list
	}

	return out
}

// less reports whether candidate a should sort before candidate b as a
// neighbor of v: strictly closer, or equidistant with smaller index.
func less(inst *Instance, v, a, b int) bool {
	da := inst.Distance(v, a)
	db := inst.Distance(v, b)
	if da != db {
		return da < db
	}

	return a < b
}
