package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
)

// End-to-end checks against the shipped catalog:
//  1. catalog loads and validates
//  2. a plan fits its budget and marks cravings
//  3. plan output renders every bite
//  4. a small tuner run produces a sorted, non-empty result set
//  5. the Pareto frontier and balanced pick are consistent
//  6. CSV and JSON exports agree with the in-memory results

func loadTestCatalog(t *testing.T) []Food {
	t.Helper()
	foods, err := LoadFoods("food_state.json")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return foods
}

func TestIntegrationPlan(t *testing.T) {
	foods := loadTestCatalog(t)
	if len(foods) < 4 {
		t.Fatalf("catalog has %d foods, want a usable spread", len(foods))
	}

	state := NewFoodState(foods)
	cravings := []string{"grilled salmon"}
	plan := GeneratePlan(state, cravings, 0, 3000, DefaultKnobs())

	if len(plan) == 0 {
		t.Fatal("plan is empty")
	}
	if plan[0].FoodName != "Grilled Salmon" || !plan[0].IsCraving {
		t.Fatalf("first step = %+v, want the craved salmon", plan[0])
	}

	total := 0.0
	for _, step := range plan {
		total += step.Calories
	}
	if total > 3000 && len(plan) > 1 {
		t.Fatalf("plan spent %v calories over budget", total)
	}

	rendered := FormatPlan(plan, 3000)
	for _, step := range plan {
		if !strings.Contains(rendered, step.FoodName) {
			t.Fatalf("rendered plan is missing %s", step.FoodName)
		}
	}
}

func TestIntegrationTuner(t *testing.T) {
	t.Parallel()
	foods := loadTestCatalog(t)

	hc := HillClimbConfig{MaxIterations: 2, Factors: []float64{0.9, 1.1}}
	cfg := SearchConfig{
		Iterations: 12,
		Seed:       2024,
		Budgets:    []float64{1500, 3000},
		Ranges:     DefaultKnobRanges(),
		TopK:       5,
		Workers:    2,
		HillClimb:  &hc,
	}
	res := RunSearch(cfg, foods)

	if len(res.Results) < cfg.Iterations {
		t.Fatalf("got %d results, want at least %d", len(res.Results), cfg.Iterations)
	}
	for i := 1; i < len(res.Results); i++ {
		if res.Results[i].Better(res.Results[i-1]) {
			t.Fatalf("results out of order at index %d", i)
		}
	}
	if len(res.ParetoIdx) == 0 {
		t.Fatal("empty Pareto frontier")
	}
	if res.BalancedIdx < 0 {
		t.Fatal("no balanced pick")
	}
	balancedOnFrontier := false
	for _, idx := range res.ParetoIdx {
		if idx == res.BalancedIdx {
			balancedOnFrontier = true
			break
		}
	}
	if !balancedOnFrontier {
		t.Fatal("balanced pick is not on the Pareto frontier")
	}

	t.Run("csv export", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteResultsCSV(&buf, res); err != nil {
			t.Fatalf("write csv: %v", err)
		}
		rows, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("read csv back: %v", err)
		}
		if len(rows) != len(res.Results)+1 {
			t.Fatalf("csv has %d rows, want %d results plus header", len(rows), len(res.Results))
		}
	})

	t.Run("json export", func(t *testing.T) {
		data, err := BestKnobsJSON(res)
		if err != nil {
			t.Fatalf("export knobs: %v", err)
		}
		var exported EvaluationResult
		if err := json.Unmarshal(data, &exported); err != nil {
			t.Fatalf("decode export: %v", err)
		}
		if exported.Knobs != res.Results[res.BalancedIdx].Knobs {
			t.Fatal("exported knobs do not match the balanced pick")
		}
		if len(exported.PerBudget) != len(cfg.Budgets) {
			t.Fatalf("export has %d per-budget rows, want %d", len(exported.PerBudget), len(cfg.Budgets))
		}
	})
}

func TestIntegrationSummaryRendering(t *testing.T) {
	foods := loadTestCatalog(t)
	res := RunSearch(SearchConfig{
		Iterations: 5,
		Seed:       1,
		Budgets:    []float64{1000},
		Ranges:     DefaultKnobRanges(),
		TopK:       3,
	}, foods)

	out := FormatSearchSummary(res, 3)
	if !strings.Contains(out, "Baseline:") {
		t.Fatal("summary is missing the baseline row")
	}
	if !strings.Contains(out, "Pareto frontier:") {
		t.Fatal("summary is missing the frontier line")
	}
	if !strings.Contains(out, "Balanced pick") {
		t.Fatal("summary is missing the recommendation")
	}
}
