package main

import "strings"

// MaxPlanIterations caps the planning loop so it terminates even on
// pathological inputs.
const MaxPlanIterations = 100

// CurrentSP scores the state's selection as-is.
func CurrentSP(state *FoodState, cravings []string, cravingsSatisfied int) float64 {
	return CalcSP(state.Stomach(), cravings, cravingsSatisfied)
}

// GeneratePlan greedily fills the calorie budget, mutating state as it
// consumes. Craving matches are picked first; otherwise the ranker
// decides. A bite over the remaining budget is allowed only as the very
// first step, so even a budget below the cheapest food yields one bite.
func GeneratePlan(state *FoodState, cravings []string, cravingsSatisfied int, budget float64, k Knobs) []PlanStep {
	var plan []PlanStep
	remaining := budget

	for i := 0; i < MaxPlanIterations; i++ {
		if remaining <= 0 {
			break
		}
		if len(state.AllAvailable()) == 0 {
			break
		}

		selBefore := state.Stomach()
		varietyBefore := VarietyMult(CountVarietyQualifying(selBefore))
		tasteBefore := TasteMult(selBefore)
		spBefore := CalcSP(selBefore, cravings, cravingsSatisfied)

		food := PickFeasibleCraving(state, cravings, cravingsSatisfied)
		if food == nil {
			food = ChooseNext(state, cravings, cravingsSatisfied, k)
		}
		if food == nil {
			break
		}

		if food.Calories > remaining && len(plan) > 0 {
			break
		}

		name := food.Name
		calories := food.Calories
		isCraving := matchesCraving(name, cravings)

		if err := state.Consume(name); err != nil {
			// The ranker only offers available foods; a failing consume
			// means the invariant broke upstream.
			break
		}
		if isCraving {
			cravingsSatisfied++
		}

		selAfter := state.Stomach()
		spAfter := CalcSP(selAfter, cravings, cravingsSatisfied)

		plan = append(plan, PlanStep{
			FoodName:     name,
			Calories:     calories,
			SPGain:       spAfter - spBefore,
			NewTotalSP:   spAfter,
			IsCraving:    isCraving,
			VarietyDelta: VarietyMult(CountVarietyQualifying(selAfter)) - varietyBefore,
			TasteDelta:   TasteMult(selAfter) - tasteBefore,
		})
		remaining -= calories
	}

	return plan
}

func matchesCraving(name string, cravings []string) bool {
	for _, c := range cravings {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}
