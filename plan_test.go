package main

import (
	"testing"
)

func TestGeneratePlanZeroBudget(t *testing.T) {
	state := fixtureState(t)
	plan := GeneratePlan(state, nil, 0, 0, DefaultKnobs())
	if len(plan) != 0 {
		t.Fatalf("plan with zero budget has %d steps, want 0", len(plan))
	}
}

func TestGeneratePlanFirstBiteException(t *testing.T) {
	// Budget below the cheapest food still yields exactly one bite.
	state := fixtureState(t)
	plan := GeneratePlan(state, nil, 0, 50, DefaultKnobs())
	if len(plan) != 1 {
		t.Fatalf("plan with tiny budget has %d steps, want exactly 1", len(plan))
	}
}

func TestGeneratePlanRespectsBudget(t *testing.T) {
	state := fixtureState(t)
	plan := GeneratePlan(state, nil, 0, 1000, DefaultKnobs())
	if len(plan) == 0 {
		t.Fatal("plan is empty")
	}

	total := 0.0
	for _, step := range plan {
		total += step.Calories
	}
	if total > 1000 && len(plan) > 1 {
		t.Fatalf("plan spent %v calories over budget 1000 with %d steps", total, len(plan))
	}
}

func TestGeneratePlanCravingFirst(t *testing.T) {
	state := fixtureState(t)
	plan := GeneratePlan(state, []string{"cHeEsE"}, 0, 2000, DefaultKnobs())
	if len(plan) == 0 {
		t.Fatal("plan is empty")
	}
	if plan[0].FoodName != "Cheese" {
		t.Fatalf("first step is %s, want the craved Cheese", plan[0].FoodName)
	}
	if !plan[0].IsCraving {
		t.Fatal("first step not marked as craving")
	}
}

func TestGeneratePlanRunningTotalNonDecreasing(t *testing.T) {
	// Empirical property of the default knobs on the 4-item fixture,
	// not a law of the scoring formula.
	state := fixtureState(t)
	plan := GeneratePlan(state, nil, 0, 4000, DefaultKnobs())
	if len(plan) < 2 {
		t.Fatalf("plan too short to check monotonicity: %d steps", len(plan))
	}
	for i := 1; i < len(plan); i++ {
		if plan[i].NewTotalSP < plan[i-1].NewTotalSP-1e-9 {
			t.Fatalf("running SP decreased at step %d: %v -> %v",
				i+1, plan[i-1].NewTotalSP, plan[i].NewTotalSP)
		}
	}
}

func TestGeneratePlanIterationCap(t *testing.T) {
	foods := fixtureFoods()
	for i := range foods {
		foods[i].Available = SaturationAvailability
	}
	state := NewFoodState(foods)
	plan := GeneratePlan(state, nil, 0, 1e9, DefaultKnobs())
	if len(plan) > MaxPlanIterations {
		t.Fatalf("plan has %d steps, cap is %d", len(plan), MaxPlanIterations)
	}
	if len(plan) != MaxPlanIterations {
		t.Fatalf("unbounded budget with saturated supply should hit the cap, got %d steps", len(plan))
	}
}

func TestGeneratePlanStopsWhenSupplyRunsOut(t *testing.T) {
	foods := []Food{
		{Name: "Bread", Calories: 500, Carbs: 40, Protein: 8, Fats: 2, Vitamins: 1, Tastiness: 1, Available: 2},
	}
	state := NewFoodState(foods)
	plan := GeneratePlan(state, nil, 0, 10000, DefaultKnobs())
	if len(plan) != 2 {
		t.Fatalf("plan has %d steps, want 2 (supply bound)", len(plan))
	}
	f, _ := state.Get("Bread")
	if f.Available != 0 || f.Stomach != 2 {
		t.Fatalf("state after plan: available %d stomach %d, want 0 and 2", f.Available, f.Stomach)
	}
}

func TestGeneratePlanMutatesState(t *testing.T) {
	state := fixtureState(t)
	plan := GeneratePlan(state, nil, 0, 1500, DefaultKnobs())

	consumed := 0
	for _, f := range state.Foods() {
		consumed += f.Stomach
	}
	if consumed != len(plan) {
		t.Fatalf("stomach total %d does not match %d plan steps", consumed, len(plan))
	}
}
