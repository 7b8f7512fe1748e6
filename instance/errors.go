// Package instance models the read-only geometric TSP instance: node
// coordinates, the precomputed distance matrix, and per-node candidate
// neighbor lists. An Instance is built once (by Load or New) and
// never mutated afterward; every solver component treats it as a shared,
// read-only collaborator.
package instance

import "errors"

// Sentinel errors for instance loading and construction. Kept strict and
// unwrapped where a sentinel suffices, matching the convention the rest of
// this module follows.
var (
	// ErrIO indicates a failure reading the instance file.
	ErrIO = errors.New("instance: io error")

	// ErrMalformedHeader indicates a header line could not be parsed.
	ErrMalformedHeader = errors.New("instance: malformed header")

	// ErrUnsupportedEdgeWeightType indicates EDGE_WEIGHT_TYPE is present but
	// not EUC_2D, the only type this system supports (see Non-goals).
	ErrUnsupportedEdgeWeightType = errors.New("instance: unsupported edge weight type")

	// ErrDimensionMismatch indicates the number of coordinate lines read
	// does not equal the declared DIMENSION.
	ErrDimensionMismatch = errors.New("instance: coordinate count does not match dimension")

	// ErrEmptyInstance indicates dimension is zero or no coordinates were found.
	ErrEmptyInstance = errors.New("instance: empty instance")

	// ErrInvalidNodeIndex indicates a NODE_COORD_SECTION line referenced a
	// node index outside [1, DIMENSION].
	ErrInvalidNodeIndex = errors.New("instance: node index out of range")

	// ErrTooSmall indicates the instance has fewer than 2 nodes, the minimum
	// for which a two-cycle partition is defined (n=2 yields two singleton
	// cycles).
	ErrTooSmall = errors.New("instance: fewer than 2 nodes")
)
