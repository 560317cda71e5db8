package main

import (
	"math"
	"strings"
)

// ── Game scoring constants ──

const (
	// BaseSkillPoints is added after all multipliers; an empty stomach
	// scores exactly this.
	BaseSkillPoints = 12.0

	// VarietyCalThreshold is the cumulative calories a food needs in the
	// stomach to count toward the variety bonus.
	VarietyCalThreshold = 2000.0

	// VarietyMultMax is the asymptotic cap of the variety multiplier.
	VarietyMultMax = 1.55

	// Balance multiplier range: worst balance to perfect 1:1:1:1.
	BalanceMultMin = 0.5
	BalanceMultMax = 2.0

	// CravingMultPerMatch is added to the craving multiplier per
	// distinct selected food matching the craving list.
	CravingMultPerMatch = 0.1

	// CravingSatisfiedBonus is the flat SP per craving already satisfied
	// before the run, independent of the current selection.
	CravingSatisfiedBonus = 0.1

	DefaultServerMult      = 1.0
	DefaultDinnerPartyMult = 1.0
)

// ── Weighted nutrient aggregation ──

// WeightedDensity computes the calorie-weighted average of each
// nutrient across the selection, plus the total calories. A selection
// with zero total calories yields zero density.
func WeightedDensity(sel Selection) (NutrientDensity, float64) {
	var d NutrientDensity
	totalCal := 0.0
	for _, f := range sel.sortedFoods() {
		w := f.Calories * float64(sel[f])
		d.Carbs += f.Carbs * w
		d.Protein += f.Protein * w
		d.Fats += f.Fats * w
		d.Vitamins += f.Vitamins * w
		totalCal += w
	}
	if totalCal <= 0 {
		return NutrientDensity{}, 0
	}
	d.Carbs /= totalCal
	d.Protein /= totalCal
	d.Fats /= totalCal
	d.Vitamins /= totalCal
	return d, totalCal
}

// BalanceRatio is smallest-nonzero over largest nutrient average, 0
// when no nutrients are present. Never divides by zero.
func BalanceRatio(d NutrientDensity) float64 {
	max := d.Max()
	if max <= 0 {
		return 0
	}
	return d.MinNonzero() / max
}

// BalanceMult maps the balance ratio onto [BalanceMultMin,
// BalanceMultMax]. No nutrients at all is neutral.
func BalanceMult(d NutrientDensity) float64 {
	if d.Max() <= 0 {
		return 1.0
	}
	return BalanceMultMin + BalanceRatio(d)*(BalanceMultMax-BalanceMultMin)
}

// ── Variety ──

// IsVarietyQualifying reports whether qty units of a food reach the
// calorie threshold.
func IsVarietyQualifying(f *Food, qty int) bool {
	return f.Calories*float64(qty) >= VarietyCalThreshold
}

// CountVarietyQualifying counts selected foods at or past the
// threshold.
func CountVarietyQualifying(sel Selection) int {
	n := 0
	for f, qty := range sel {
		if qty > 0 && IsVarietyQualifying(f, qty) {
			n++
		}
	}
	return n
}

// VarietyMult grows asymptotically toward VarietyMultMax: every 20
// qualifying foods close half the remaining gap. Count 0 is neutral.
func VarietyMult(count int) float64 {
	return 1 + (VarietyMultMax-1)*(1-math.Pow(0.5, float64(count)/20))
}

// ── Taste ──

// TasteMult is the calorie-weighted mean of per-food tastiness
// multipliers. An empty or zero-calorie selection is neutral.
func TasteMult(sel Selection) float64 {
	weighted := 0.0
	totalCal := 0.0
	for _, f := range sel.sortedFoods() {
		w := f.Calories * float64(sel[f])
		weighted += TastinessMultiplier(f.Tastiness) * w
		totalCal += w
	}
	if totalCal <= 0 {
		return 1.0
	}
	return weighted / totalCal
}

// ── Cravings ──

// CravingMatches counts distinct selected foods whose name appears in
// the craving list, case-insensitively.
func CravingMatches(sel Selection, cravings []string) int {
	if len(cravings) == 0 {
		return 0
	}
	set := make(map[string]bool, len(cravings))
	for _, c := range cravings {
		set[strings.ToLower(c)] = true
	}
	n := 0
	for f, qty := range sel {
		if qty > 0 && set[f.Key()] {
			n++
		}
	}
	return n
}

// CravingMult starts neutral and gains a fixed increment per match.
func CravingMult(sel Selection, cravings []string) float64 {
	return 1 + CravingMultPerMatch*float64(CravingMatches(sel, cravings))
}

// ── Skill points ──

// CalcSP computes the scalar score of a selection: nutrient density sum
// through the multiplier chain, plus the base and the flat
// already-satisfied craving bonus, scaled by the server multiplier.
func CalcSP(sel Selection, cravings []string, cravingsSatisfied int) float64 {
	d, _ := WeightedDensity(sel)
	nutrition := d.Sum() *
		BalanceMult(d) *
		VarietyMult(CountVarietyQualifying(sel)) *
		TasteMult(sel) *
		CravingMult(sel, cravings) *
		DefaultDinnerPartyMult
	sp := nutrition + BaseSkillPoints + float64(cravingsSatisfied)*CravingSatisfiedBonus
	return sp * DefaultServerMult
}

// SPDelta is the marginal score of one more unit of food: score with it
// added minus score without. The greedy ranker maximizes this.
func SPDelta(sel Selection, food *Food, cravings []string, cravingsSatisfied int) float64 {
	after := CalcSP(sel.withOneMore(food), cravings, cravingsSatisfied)
	before := CalcSP(sel, cravings, cravingsSatisfied)
	return after - before
}
