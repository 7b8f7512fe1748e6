package experiment

import (
	"time"

	"github.com/rs/zerolog"
)

// RunEvent describes the outcome of one completed run, passed to a Progress
// sink as it happens.
type RunEvent struct {
	Algorithm string
	Instance  string
	RunIndex  int // 0-based
	NumRuns   int
	Cost      int
	Elapsed   time.Duration
}

// Progress is a write-only status sink: RunExperiment calls OnRunComplete
// once per finished run and never inspects a return value from it. Callers
// that don't want progress reporting pass NoopProgress.
type Progress interface {
	OnRunComplete(RunEvent)
}

// NoopProgress discards every event.
type NoopProgress struct{}

// OnRunComplete implements Progress.
func (NoopProgress) OnRunComplete(RunEvent) {}

// ZerologProgress reports each completed run as a single structured log
// line at info level through the supplied logger.
type ZerologProgress struct {
	Logger zerolog.Logger
}

// OnRunComplete implements Progress.
func (p ZerologProgress) OnRunComplete(e RunEvent) {
	p.Logger.Info().
		Str("algorithm", e.Algorithm).
		Str("instance", e.Instance).
		Int("run", e.RunIndex+1).
		Int("num_runs", e.NumRuns).
		Int("cost", e.Cost).
		Dur("elapsed", e.Elapsed).
		Msg("run complete")
}
