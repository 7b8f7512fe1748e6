// Command twocycletsp runs the configured set of constructive heuristics
// and metaheuristic drivers against one or more TSPLIB EUC_2D instances,
// writes a best-tour plot per (algorithm, instance), and prints a Markdown
// summary table to stdout.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/twocycletsp/solver/construct"
	"github.com/twocycletsp/solver/experiment"
	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/localsearch"
	"github.com/twocycletsp/solver/metaheuristic"
	"github.com/twocycletsp/solver/solution"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	instancesDir := flag.String("instances-dir", "instances", "directory containing TSPLIB instance files")
	instancesFlag := flag.String("instances", "", "comma-separated instance file names (relative to -instances-dir), required")
	outDir := flag.String("out-dir", "out", "directory to write best-tour PNG plots into")
	numRuns := flag.Int("num-runs", 10, "number of repetitions per (algorithm, instance)")
	seed := flag.Int64("seed", 1, "base RNG seed for reproducibility")
	k := flag.Int("k", instance.DefaultK, "candidate neighbor list size")

	variantFlag := flag.String("variant", "steepest", "local search variant: greedy, steepest, candidate, movelist")
	neighborhoodFlag := flag.String("neighborhood", "edge", "intra-cycle move family: vertex, edge")

	ilsK := flag.Int("ils-k", 10, "ILS small-perturbation move count")
	lnsFraction := flag.Float64("lns-fraction", 0.20, "LNS destroy fraction")
	lnsApplyLSAfterRepair := flag.Bool("lns-apply-ls-after-repair", true, "LNS: run local search after each repair")
	lnsApplyLSToInitial := flag.Bool("lns-apply-ls-to-initial", true, "LNS: run local search on the initial random solution")
	haePopSize := flag.Int("hae-pop-size", 20, "HAE population size")
	haeMinDiff := flag.Int("hae-min-diff", 40, "HAE diversity-gate minimum cost difference")
	haeWithLocal := flag.Bool("hae-with-local", true, "HAE: polish each child with local search")
	mslsIterations := flag.Int("msls-iterations", 200, "MSLS restart count")

	flag.Parse()

	if *instancesFlag == "" {
		fmt.Fprintln(os.Stderr, "twocycletsp: -instances is required")
		os.Exit(1)
	}

	lsOpts := localsearch.Options{
		Neighborhood: parseNeighborhood(*neighborhoodFlag),
		Variant:      parseVariant(*variantFlag),
		CandidateK:   *k,
		Eps:          0,
	}
	ilsOpts := metaheuristic.ILSOptions{SmallPerturbK: *ilsK}
	lnsOpts := metaheuristic.LNSOptions{
		DestroyFraction:    *lnsFraction,
		ApplyLSAfterRepair: *lnsApplyLSAfterRepair,
		ApplyLSToInitial:   *lnsApplyLSToInitial,
	}
	haeOpts := metaheuristic.HAEOptions{PopSize: *haePopSize, MinDiff: *haeMinDiff, WithLocal: *haeWithLocal}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("twocycletsp: creating output directory")
	}

	progress := experiment.ZerologProgress{Logger: log.Logger}
	var allStats []experiment.Stats

	for _, name := range strings.Split(*instancesFlag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		path := filepath.Join(*instancesDir, name)
		inst, err := instance.Load(path, *k)
		if err != nil {
			log.Error().Err(err).Str("instance", name).Msg("twocycletsp: failed to load instance, skipping")
			continue
		}

		baseSeed := *seed
		rng := rand.New(rand.NewSource(baseSeed))

		stats := runInstance(inst, name, *numRuns, *mslsIterations, lsOpts, ilsOpts, lnsOpts, haeOpts, rng, progress, *outDir)
		allStats = append(allStats, stats...)
	}

	fmt.Println(experiment.Report(allStats))
}

func runInstance(
	inst *instance.Instance,
	name string,
	numRuns, mslsIterations int,
	lsOpts localsearch.Options,
	ilsOpts metaheuristic.ILSOptions,
	lnsOpts metaheuristic.LNSOptions,
	haeOpts metaheuristic.HAEOptions,
	rng *rand.Rand,
	progress experiment.Progress,
	outDir string,
) []experiment.Stats {
	var stats []experiment.Stats

	constructors := []struct {
		name string
		b    construct.Builder
	}{
		{"nearest-neighbor", construct.NearestNeighbor{}},
		{"greedy-cycle", construct.GreedyCycle{}},
		{"regret-2", construct.Regret2{}},
		{"weighted-regret", construct.NewWeightedRegret()},
	}
	for _, c := range constructors {
		fn := func(inst *instance.Instance, rng *rand.Rand) (*solution.Solution, int, error) {
			s, err := c.b.Build(inst)
			return s, 0, err
		}
		stats = append(stats, recordAndPlot(c.name, name, inst, numRuns, false, fn, rng, progress, outDir))
	}

	_, mslsMean := metaheuristic.MSLS(inst, lsOpts, mslsIterations, rngSplit(rng))
	budget := mslsMean
	if budget <= 0 {
		budget = time.Millisecond
	}

	mslsFn := func(inst *instance.Instance, rng *rand.Rand) (*solution.Solution, int, error) {
		r, _ := metaheuristic.MSLS(inst, lsOpts, mslsIterations, rng)
		return r.Best, r.Iterations, nil
	}
	stats = append(stats, recordAndPlot("msls", name, inst, numRuns, true, mslsFn, rng, progress, outDir))

	ilsFn := func(inst *instance.Instance, rng *rand.Rand) (*solution.Solution, int, error) {
		r := metaheuristic.ILS(inst, lsOpts, ilsOpts, budget, rng)
		return r.Best, r.Iterations, nil
	}
	stats = append(stats, recordAndPlot("ils", name, inst, numRuns, true, ilsFn, rng, progress, outDir))

	lnsFn := func(inst *instance.Instance, rng *rand.Rand) (*solution.Solution, int, error) {
		r := metaheuristic.LNS(inst, lsOpts, lnsOpts, budget, rng)
		return r.Best, r.Iterations, nil
	}
	stats = append(stats, recordAndPlot("lns", name, inst, numRuns, true, lnsFn, rng, progress, outDir))

	haeFn := func(inst *instance.Instance, rng *rand.Rand) (*solution.Solution, int, error) {
		r := metaheuristic.HAE(inst, lsOpts, haeOpts, budget, rng)
		return r.Best, r.Iterations, nil
	}
	stats = append(stats, recordAndPlot("hae", name, inst, numRuns, true, haeFn, rng, progress, outDir))

	return stats
}

func recordAndPlot(
	algorithmName, instanceName string,
	inst *instance.Instance,
	numRuns int,
	reportsIterations bool,
	fn experiment.RunFunc,
	rng *rand.Rand,
	progress experiment.Progress,
	outDir string,
) experiment.Stats {
	s, err := experiment.RunExperiment(algorithmName, instanceName, inst, numRuns, reportsIterations, fn, rng, progress)
	if err != nil {
		log.Error().Err(err).Str("algorithm", algorithmName).Str("instance", instanceName).Msg("twocycletsp: experiment failed")
		return s
	}

	if s.BestSolution != nil {
		path := filepath.Join(outDir, fmt.Sprintf("%s_%s.png", instanceName, algorithmName))
		title := fmt.Sprintf("%s / %s (cost %d)", instanceName, algorithmName, s.MinCost)
		if perr := experiment.PlotBestTour(inst, s.BestSolution, title, path); perr != nil {
			log.Error().Err(perr).Str("path", path).Msg("twocycletsp: failed to write plot")
		}
	}

	return s
}

func rngSplit(rng *rand.Rand) *rand.Rand {
	return rand.New(rand.NewSource(rng.Int63()))
}

func parseVariant(s string) localsearch.Variant {
	switch strings.ToLower(s) {
	case "greedy":
		return localsearch.Greedy
	case "candidate":
		return localsearch.CandidateSteepest
	case "movelist":
		return localsearch.MoveListSteepest
	default:
		return localsearch.Steepest
	}
}

func parseNeighborhood(s string) localsearch.Neighborhood {
	if strings.ToLower(s) == "vertex" {
		return localsearch.VertexExchange
	}

	return localsearch.EdgeExchange
}
