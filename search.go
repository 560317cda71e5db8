package main

import (
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
)

// HillClimbConfig bounds the local refinement pass.
type HillClimbConfig struct {
	MaxIterations int       `yaml:"max_iterations"`
	Factors       []float64 `yaml:"factors"`
}

// DefaultHillClimbConfig returns the stock refinement settings.
func DefaultHillClimbConfig() HillClimbConfig {
	return HillClimbConfig{
		MaxIterations: 20,
		Factors:       []float64{0.9, 0.95, 1.05, 1.1},
	}
}

// SearchConfig drives one tuning run.
type SearchConfig struct {
	Iterations int
	Seed       int64
	Budgets    []float64
	Ranges     KnobRanges
	TopK       int
	Workers    int
	// HillClimb enables frontier refinement when non-nil.
	HillClimb *HillClimbConfig
}

// DefaultSearchConfig matches the budgets real players burn through.
func DefaultSearchConfig() SearchConfig {
	hc := DefaultHillClimbConfig()
	return SearchConfig{
		Iterations: 300,
		Seed:       123,
		Budgets:    []float64{5000, 10000, 20000, 40000},
		Ranges:     DefaultKnobRanges(),
		TopK:       10,
		HillClimb:  &hc,
	}
}

// SearchResults is the outcome of a tuning run. Results are sorted best
// first by the lexicographic comparator.
type SearchResults struct {
	Results     []EvaluationResult
	Baseline    EvaluationResult
	ParetoIdx   []int
	BalancedIdx int // -1 when the frontier is empty
}

// RunSearch draws Iterations knob bundles from a seeded source,
// evaluates them across all budgets, filters to the Pareto frontier,
// hill-climbs the frontier members, and picks a balanced
// recommendation. The same seed reproduces the same output.
func RunSearch(cfg SearchConfig, foods []Food) SearchResults {
	rng := rand.New(rand.NewSource(cfg.Seed))

	baseline := EvaluateKnobs(DefaultKnobs(), foods, cfg.Budgets)
	logger.Info("baseline",
		"sp", toFixed2(baseline.AvgFinalSP),
		"eff", toFixed2(baseline.AvgEfficiency),
		"variety", toFixed2(baseline.AvgVarietyCount),
		"balance", toFixed2(baseline.AvgBalanceRatio))

	// Knob bundles come from the rng sequentially so the draw order is
	// fixed; only the evaluations run in parallel.
	bundles := make([]Knobs, cfg.Iterations)
	for i := range bundles {
		bundles[i] = RandomKnobs(rng, cfg.Ranges)
	}

	results := evaluateAll(bundles, foods, cfg)

	sort.SliceStable(results, func(i, j int) bool { return results[i].Better(results[j]) })
	paretoIdx := ParetoFrontier(results)
	logger.Info("pareto frontier", "size", len(paretoIdx))

	if cfg.HillClimb != nil {
		refined := 0
		for _, idx := range paretoIdx {
			better := HillClimb(results[idx], foods, cfg.Budgets, cfg.Ranges, *cfg.HillClimb)
			if results[idx].DominatedBy(better) {
				results = append(results, better)
				refined++
			}
		}
		if refined > 0 {
			logger.Info("hill climbing improved results", "count", refined)
			sort.SliceStable(results, func(i, j int) bool { return results[i].Better(results[j]) })
			paretoIdx = ParetoFrontier(results)
		} else {
			logger.Info("hill climbing found no improvements")
		}
	}

	return SearchResults{
		Results:     results,
		Baseline:    baseline,
		ParetoIdx:   paretoIdx,
		BalancedIdx: SelectBalanced(results, paretoIdx),
	}
}

// evaluateAll scores every bundle with a worker pool. Each evaluation
// clones the catalog, and results land at their bundle's index, so the
// output is independent of scheduling.
func evaluateAll(bundles []Knobs, foods []Food, cfg SearchConfig) []EvaluationResult {
	results := make([]EvaluationResult, len(bundles))

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = EvaluateKnobs(bundles[i], foods, cfg.Budgets)
			}
		}()
	}

	every := len(bundles) / 10
	if every < 1 {
		every = 1
	}
	for i := range bundles {
		jobs <- i
		if (i+1)%every == 0 {
			logger.Debug("search progress", "done", i+1, "total", len(bundles))
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

// ParetoFrontier returns the indices of non-dominated results, in input
// order.
func ParetoFrontier(results []EvaluationResult) []int {
	var frontier []int
	for i := range results {
		dominated := false
		for j := range results {
			if i != j && results[i].DominatedBy(results[j]) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, i)
		}
	}
	return frontier
}

// SelectBalanced normalizes each metric to [0,1] across the frontier
// and returns the member closest to the ideal point (1,1,1,1). A
// degenerate metric (min == max) normalizes to 1 for everyone. Returns
// -1 for an empty frontier; the first member wins distance ties.
func SelectBalanced(results []EvaluationResult, frontier []int) int {
	if len(frontier) == 0 {
		return -1
	}

	var lo, hi [4]float64
	for k := 0; k < 4; k++ {
		lo[k] = math.Inf(1)
		hi[k] = math.Inf(-1)
	}
	for _, idx := range frontier {
		m := results[idx].metrics()
		for k := 0; k < 4; k++ {
			lo[k] = math.Min(lo[k], m[k])
			hi[k] = math.Max(hi[k], m[k])
		}
	}

	best := -1
	bestDist := math.Inf(1)
	for _, idx := range frontier {
		m := results[idx].metrics()
		dist := 0.0
		for k := 0; k < 4; k++ {
			norm := 1.0
			if math.Abs(hi[k]-lo[k]) >= 1e-10 {
				norm = (m[k] - lo[k]) / (hi[k] - lo[k])
			}
			dist += (1 - norm) * (1 - norm)
		}
		dist = math.Sqrt(dist)
		if dist < bestDist {
			bestDist = dist
			best = idx
		}
	}
	return best
}

// HillClimb refines a result by first-improvement local search: for
// each knob and each factor, perturb-and-clamp, and accept the first
// candidate that Pareto-dominates the current best, then restart the
// sweep. Stops after a full sweep with no improvement or MaxIterations
// passes. Finding nothing is the normal local-optimum exit, not an
// error.
func HillClimb(start EvaluationResult, foods []Food, budgets []float64, ranges KnobRanges, cfg HillClimbConfig) EvaluationResult {
	best := start

	for pass := 0; pass < cfg.MaxIterations; pass++ {
		improved := false

	sweep:
		for idx := 0; idx < NumKnobs; idx++ {
			for _, factor := range cfg.Factors {
				next := best.Knobs.Perturb(idx, factor, ranges)
				if next == best.Knobs {
					continue
				}
				candidate := EvaluateKnobs(next, foods, budgets)
				if best.DominatedBy(candidate) {
					best = candidate
					improved = true
					break sweep
				}
			}
		}

		if !improved {
			break
		}
	}
	return best
}
