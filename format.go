package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ── toFixed(2) equivalent ──

func toFixed2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Deltas smaller than these are noise and stay out of the plan table.
const (
	varietyDeltaThreshold = 0.01
	tasteDeltaThreshold   = 0.01
)

// FormatPlan renders the bite table for a generated plan.
func FormatPlan(plan []PlanStep, budget float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-4s %-20s %10s %8s %10s %s\n", "#", "Food", "Calories", "SP+", "Total SP", "Notes")
	fmt.Fprintf(&b, "%-4s %-20s %10s %8s %10s %s\n", "----", "--------------------", "----------", "--------", "----------", "-----")

	totalCal := 0.0
	for i, step := range plan {
		totalCal += step.Calories
		var notes []string
		if step.IsCraving {
			notes = append(notes, "craving")
		}
		if math.Abs(step.VarietyDelta) >= varietyDeltaThreshold {
			notes = append(notes, fmt.Sprintf("variety %+.2f", step.VarietyDelta))
		}
		if math.Abs(step.TasteDelta) >= tasteDeltaThreshold {
			notes = append(notes, fmt.Sprintf("taste %+.2f", step.TasteDelta))
		}
		fmt.Fprintf(&b, "%-4d %-20s %10.0f %8.2f %10.2f %s\n",
			i+1, step.FoodName, step.Calories, toFixed2(step.SPGain), toFixed2(step.NewTotalSP),
			strings.Join(notes, ", "))
	}

	fmt.Fprintf(&b, "\nBites: %d  Calories: %.0f / %.0f", len(plan), totalCal, budget)
	if len(plan) > 0 {
		fmt.Fprintf(&b, "  Final SP: %.2f", toFixed2(plan[len(plan)-1].NewTotalSP))
	}
	b.WriteString("\n")
	return b.String()
}

// FormatCatalog renders the food list with tastiness names.
func FormatCatalog(foods []Food) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %9s %6s %8s %5s %9s %-9s %8s %6s\n",
		"Food", "Calories", "Carbs", "Protein", "Fats", "Vitamins", "Rated", "Stomach", "Avail")
	for _, f := range foods {
		fmt.Fprintf(&b, "%-20s %9.0f %6.1f %8.1f %5.1f %9.1f %-9s %8d %6d\n",
			f.Name, f.Calories, f.Carbs, f.Protein, f.Fats, f.Vitamins,
			TastinessName(f.Tastiness), f.Stomach, f.Available)
	}
	return b.String()
}

// FormatSearchSummary renders baseline, top-K table with Pareto and
// balanced markers, and the recommendation.
func FormatSearchSummary(res SearchResults, topk int) string {
	pareto := make(map[int]bool, len(res.ParetoIdx))
	for _, idx := range res.ParetoIdx {
		pareto[idx] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Baseline: SP=%.2f eff=%.3f variety=%.1f balance=%.3f\n",
		res.Baseline.AvgFinalSP, res.Baseline.AvgEfficiency,
		res.Baseline.AvgVarietyCount, res.Baseline.AvgBalanceRatio)
	fmt.Fprintf(&b, "    %s\n\n", res.Baseline.Knobs)

	fmt.Fprintf(&b, "%-4s %10s %8s %8s %8s %s\n", "#", "SP", "Eff", "Variety", "Balance", "Knobs")
	if topk > len(res.Results) {
		topk = len(res.Results)
	}
	for i := 0; i < topk; i++ {
		r := res.Results[i]
		mark := " "
		if pareto[i] {
			mark = "*"
		}
		if i == res.BalancedIdx {
			mark = "B"
		}
		fmt.Fprintf(&b, "%-3d%s %10.2f %8.3f %8.1f %8.3f %s\n",
			i+1, mark, r.AvgFinalSP, r.AvgEfficiency, r.AvgVarietyCount, r.AvgBalanceRatio, r.Knobs)
	}

	fmt.Fprintf(&b, "\nPareto frontier: %d non-dominated of %d\n", len(res.ParetoIdx), len(res.Results))
	if res.BalancedIdx >= 0 {
		r := res.Results[res.BalancedIdx]
		fmt.Fprintf(&b, "Balanced pick (#%d): SP=%.2f variety=%.1f balance=%.3f\n",
			res.BalancedIdx+1, r.AvgFinalSP, r.AvgVarietyCount, r.AvgBalanceRatio)
		fmt.Fprintf(&b, "    %s\n", r.Knobs)
	}
	return b.String()
}

// WriteResultsCSV exports every evaluated configuration, one row per
// result, flagged with pareto/balanced membership.
func WriteResultsCSV(w io.Writer, res SearchResults) error {
	cw := csv.NewWriter(w)
	header := []string{
		"rank", "pareto", "balanced",
		"avg_final_sp", "avg_efficiency", "avg_variety", "avg_balance",
		"soft_bias_gamma", "tie_alpha", "tie_beta", "tie_epsilon",
		"cal_floor", "cal_penalty_gamma", "balance_bias_gamma", "repetition_penalty_gamma",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	pareto := make(map[int]bool, len(res.ParetoIdx))
	for _, idx := range res.ParetoIdx {
		pareto[idx] = true
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for i, r := range res.Results {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatBool(pareto[i]),
			strconv.FormatBool(i == res.BalancedIdx),
			f(r.AvgFinalSP), f(r.AvgEfficiency), f(r.AvgVarietyCount), f(r.AvgBalanceRatio),
			f(r.Knobs.SoftBiasGamma), f(r.Knobs.TieAlpha), f(r.Knobs.TieBeta), f(r.Knobs.TieEpsilon),
			f(r.Knobs.CalFloor), f(r.Knobs.CalPenaltyGamma), f(r.Knobs.BalanceBiasGamma), f(r.Knobs.RepetitionPenaltyGamma),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// BestKnobsJSON exports the balanced pick (or the top result when the
// frontier is empty) with its metrics and per-budget breakdown.
func BestKnobsJSON(res SearchResults) ([]byte, error) {
	if len(res.Results) == 0 {
		return nil, fmt.Errorf("no results to export")
	}
	idx := res.BalancedIdx
	if idx < 0 {
		idx = 0
	}
	return json.MarshalIndent(res.Results[idx], "", "  ")
}
