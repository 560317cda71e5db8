package main

import (
	"testing"
)

func TestEvaluateBudget(t *testing.T) {
	res := EvaluateBudget(fixtureFoods(), 1000, DefaultKnobs())

	if res.FinalSP <= BaseSkillPoints {
		t.Fatalf("final SP %v, want above the base", res.FinalSP)
	}
	if res.Bites == 0 {
		t.Fatal("no bites taken")
	}
	if res.TotalCalories > 1000 && res.Bites > 1 {
		t.Fatalf("spent %v calories over budget with %d bites", res.TotalCalories, res.Bites)
	}
	if res.Efficiency() <= 0 {
		t.Fatalf("efficiency %v, want positive", res.Efficiency())
	}
}

func TestEvaluateBudgetDoesNotMutateInput(t *testing.T) {
	foods := fixtureFoods()
	foods[0].Stomach = 5
	_ = EvaluateBudget(foods, 1000, DefaultKnobs())
	if foods[0].Stomach != 5 || foods[0].Available != 50 {
		t.Fatalf("input catalog mutated: stomach %d available %d", foods[0].Stomach, foods[0].Available)
	}
}

func TestEvaluateKnobsAverages(t *testing.T) {
	budgets := []float64{900, 1200, 1500}
	res := EvaluateKnobs(DefaultKnobs(), fixtureFoods(), budgets)

	if len(res.PerBudget) != 3 {
		t.Fatalf("per-budget results %d, want 3", len(res.PerBudget))
	}
	if res.AvgFinalSP <= 0 {
		t.Fatalf("avg final SP %v, want positive", res.AvgFinalSP)
	}

	sum := 0.0
	for _, r := range res.PerBudget {
		sum += r.FinalSP
	}
	if got, want := res.AvgFinalSP, sum/3; got != want {
		t.Fatalf("avg final SP %v, want %v", got, want)
	}
}

func TestEfficiencyZeroCalories(t *testing.T) {
	r := BudgetResult{FinalSP: 12, TotalCalories: 0}
	if got := r.Efficiency(); got != 0 {
		t.Fatalf("efficiency with no calories = %v, want 0", got)
	}
}

func TestBetterIsLexicographic(t *testing.T) {
	base := EvaluationResult{AvgFinalSP: 100, AvgEfficiency: 5, AvgVarietyCount: 3, AvgBalanceRatio: 0.5}

	lowerSP := base
	lowerSP.AvgFinalSP = 90
	lowerSP.AvgEfficiency = 50
	if !base.Better(lowerSP) {
		t.Fatal("higher SP must win regardless of efficiency")
	}

	tieSP := base
	tieSP.AvgEfficiency = 6
	if !tieSP.Better(base) {
		t.Fatal("efficiency must break an SP tie")
	}

	if base.Better(base) {
		t.Fatal("a result must not be better than itself")
	}
}

func TestDominatedBy(t *testing.T) {
	a := EvaluationResult{AvgFinalSP: 100, AvgEfficiency: 5, AvgVarietyCount: 3, AvgBalanceRatio: 0.5}

	better := a
	better.AvgFinalSP = 110
	if !a.DominatedBy(better) {
		t.Fatal("strictly better on one metric, equal elsewhere, must dominate")
	}

	tradeoff := a
	tradeoff.AvgFinalSP = 110
	tradeoff.AvgVarietyCount = 2
	if a.DominatedBy(tradeoff) {
		t.Fatal("a tradeoff must not dominate")
	}

	if a.DominatedBy(a) {
		t.Fatal("equal results must not dominate each other")
	}
}
