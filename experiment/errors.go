package experiment

import "errors"

// ErrAllRunsFailed indicates every run of an algorithm on an instance
// failed to produce a solution (e.g. construction returned an error on
// every attempt). RunExperiment returns this alongside a Stats that carries
// only the algorithm and instance names (NumRuns zero, no BestSolution)
// rather than panicking, since a single failing instance must not abort
// the rest of the batch.
var ErrAllRunsFailed = errors.New("experiment: all runs failed")
