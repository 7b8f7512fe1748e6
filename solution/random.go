package solution

import "math/rand"

// Random builds a Solution by partitioning {0,...,n-1} uniformly at random
// into the two target-sized groups, each then placed in a random cyclic
// order.
func Random(n int, rng *rand.Rand) (*Solution, error) {
	perm := rng.Perm(n)
	size1 := TargetSize(n, Cycle1)

	cycle1 := append([]int(nil), perm[:size1]...)
	cycle2 := append([]int(nil), perm[size1:]...)

	return New(n, cycle1, cycle2)
}
