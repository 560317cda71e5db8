package main

// SaturationAvailability is the per-food availability used during
// evaluation, high enough that supply never binds before the budget.
const SaturationAvailability = 999

// BudgetResult holds the metrics of one plan run to exhaustion.
type BudgetResult struct {
	Budget        float64 `json:"budget"`
	FinalSP       float64 `json:"finalSp"`
	TotalCalories float64 `json:"totalCalories"`
	VarietyCount  int     `json:"varietyCount"`
	Bites         int     `json:"bites"`
	BalanceRatio  float64 `json:"balanceRatio"`
}

// Efficiency is SP gained per 100 kcal consumed.
func (r BudgetResult) Efficiency() float64 {
	if r.TotalCalories <= 0 {
		return 0
	}
	return r.FinalSP / r.TotalCalories * 100
}

// EvaluationResult aggregates one knob bundle across several budgets.
type EvaluationResult struct {
	Knobs           Knobs          `json:"knobs"`
	AvgFinalSP      float64        `json:"avgFinalSp"`
	AvgEfficiency   float64        `json:"avgEfficiency"`
	AvgVarietyCount float64        `json:"avgVarietyCount"`
	AvgBalanceRatio float64        `json:"avgBalanceRatio"`
	PerBudget       []BudgetResult `json:"perBudget"`
}

// metrics returns the four tracked objectives in comparison order.
func (r EvaluationResult) metrics() [4]float64 {
	return [4]float64{r.AvgFinalSP, r.AvgEfficiency, r.AvgVarietyCount, r.AvgBalanceRatio}
}

// Better orders results lexicographically: final SP first, then
// efficiency, then variety, then balance. Higher wins on every key.
func (r EvaluationResult) Better(other EvaluationResult) bool {
	a, b := r.metrics(), other.metrics()
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

// DominatedBy reports Pareto dominance: other is at least as good on
// every metric and strictly better on at least one.
func (r EvaluationResult) DominatedBy(other EvaluationResult) bool {
	a, b := r.metrics(), other.metrics()
	strict := false
	for i := range a {
		if b[i] < a[i] {
			return false
		}
		if b[i] > a[i] {
			strict = true
		}
	}
	return strict
}

// EvaluateBudget runs one greedy plan against a cloned catalog with an
// empty stomach and saturated supply, no cravings.
func EvaluateBudget(foods []Food, budget float64, k Knobs) BudgetResult {
	test := make([]Food, len(foods))
	for i, f := range foods {
		f.Stomach = 0
		f.Available = SaturationAvailability
		test[i] = f
	}

	state := NewFoodState(test)
	plan := GeneratePlan(state, nil, 0, budget, k)

	sel := state.Stomach()
	d, _ := WeightedDensity(sel)

	return BudgetResult{
		Budget:        budget,
		FinalSP:       CalcSP(sel, nil, 0),
		TotalCalories: state.TotalStomachCalories(),
		VarietyCount:  CountVarietyQualifying(sel),
		Bites:         len(plan),
		BalanceRatio:  BalanceRatio(d),
	}
}

// EvaluateKnobs runs EvaluateBudget per budget and averages the
// metrics.
func EvaluateKnobs(k Knobs, foods []Food, budgets []float64) EvaluationResult {
	perBudget := make([]BudgetResult, 0, len(budgets))
	for _, budget := range budgets {
		perBudget = append(perBudget, EvaluateBudget(foods, budget, k))
	}

	n := float64(len(perBudget))
	res := EvaluationResult{Knobs: k, PerBudget: perBudget}
	if n == 0 {
		return res
	}
	for _, r := range perBudget {
		res.AvgFinalSP += r.FinalSP
		res.AvgEfficiency += r.Efficiency()
		res.AvgVarietyCount += float64(r.VarietyCount)
		res.AvgBalanceRatio += r.BalanceRatio
	}
	res.AvgFinalSP /= n
	res.AvgEfficiency /= n
	res.AvgVarietyCount /= n
	res.AvgBalanceRatio /= n
	return res
}
