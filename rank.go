package main

import (
	"math"
	"sort"
	"strings"
)

// candidate carries the per-food ranking terms for one selection step.
type candidate struct {
	food      *Food
	rankScore float64
	bias      float64
	proxBias  float64
}

// lowCaloriePenalty is zero at or above the floor and a negative
// quadratic in (1 - cal/floor) below it, so tiny bites are punished
// quadratically harder.
func lowCaloriePenalty(calories float64, k Knobs) float64 {
	if calories >= k.CalFloor || k.CalFloor <= 0 {
		return 0
	}
	x := 1 - calories/k.CalFloor
	return -k.CalPenaltyGamma * x * x
}

// softVarietyBias rewards the change in variety multiplier from
// hypothetically adding one unit, weighted by the selection's nutrient
// sum after the add.
func softVarietyBias(sel Selection, food *Food, k Knobs) float64 {
	before := VarietyMult(CountVarietyQualifying(sel))
	after := sel.withOneMore(food)
	afterMult := VarietyMult(CountVarietyQualifying(after))

	d, _ := WeightedDensity(after)
	return k.SoftBiasGamma * d.Sum() * (afterMult - before)
}

// proximityBias rewards moving this food's cumulative calories toward
// the variety threshold and penalizes pushing past it.
func proximityBias(sel Selection, food *Food, k Knobs) float64 {
	current := float64(sel[food])
	pBefore := food.Calories * current / VarietyCalThreshold
	pAfter := food.Calories * (current + 1) / VarietyCalThreshold

	grow := math.Max(0, math.Min(pAfter, 1)-math.Min(pBefore, 1))
	over := math.Max(0, pAfter-1)

	overshoot := 0.0
	if k.TieAlpha > 0 {
		overshoot = over * (k.TieBeta / k.TieAlpha)
	}
	return k.TieAlpha * (grow - overshoot)
}

// balanceBias rewards foods that improve the nutrient balance ratio.
// Disabled when the gamma is zero.
func balanceBias(sel Selection, food *Food, k Knobs) float64 {
	if k.BalanceBiasGamma == 0 {
		return 0
	}
	dBefore, _ := WeightedDensity(sel)
	dAfter, _ := WeightedDensity(sel.withOneMore(food))
	return k.BalanceBiasGamma * (BalanceRatio(dAfter) - BalanceRatio(dBefore))
}

// repetitionPenalty punishes foods already dominating the selection,
// linearly in their share of total units.
func repetitionPenalty(sel Selection, food *Food, k Knobs) float64 {
	if k.RepetitionPenaltyGamma == 0 {
		return 0
	}
	total := sel.totalUnits()
	if total == 0 {
		return 0
	}
	return k.RepetitionPenaltyGamma * float64(sel[food]) / float64(total)
}

// ChooseNext picks the next bite in three stages: raw marginal SP plus
// the low-calorie penalty for every available food, a near-equal filter
// within TieEpsilon of the best, then bias-adjusted ordering with the
// proximity bias as tie-break. Returns nil when nothing is available.
func ChooseNext(state *FoodState, cravings []string, cravingsSatisfied int, k Knobs) *Food {
	available := state.AllAvailable()
	if len(available) == 0 {
		return nil
	}

	sel := state.Stomach()

	candidates := make([]candidate, 0, len(available))
	bestRank := math.Inf(-1)
	for _, f := range available {
		rank := SPDelta(sel, f, cravings, cravingsSatisfied) + lowCaloriePenalty(f.Calories, k)
		candidates = append(candidates, candidate{
			food:      f,
			rankScore: rank,
			bias:      softVarietyBias(sel, f, k) + balanceBias(sel, f, k) - repetitionPenalty(sel, f, k),
			proxBias:  proximityBias(sel, f, k),
		})
		if rank > bestRank {
			bestRank = rank
		}
	}

	threshold := bestRank - k.TieEpsilon
	finalists := candidates[:0]
	for _, c := range candidates {
		if c.rankScore >= threshold {
			finalists = append(finalists, c)
		}
	}
	if len(finalists) == 0 {
		return nil
	}

	sort.SliceStable(finalists, func(i, j int) bool {
		pi := finalists[i].rankScore + finalists[i].bias
		pj := finalists[j].rankScore + finalists[j].bias
		if pi != pj {
			return pi > pj
		}
		return finalists[i].proxBias > finalists[j].proxBias
	})
	return finalists[0].food
}

// PickFeasibleCraving returns the available craving match with the
// highest marginal SP, or nil when no craving is obtainable.
func PickFeasibleCraving(state *FoodState, cravings []string, cravingsSatisfied int) *Food {
	if len(cravings) == 0 {
		return nil
	}
	set := make(map[string]bool, len(cravings))
	for _, c := range cravings {
		set[strings.ToLower(c)] = true
	}

	sel := state.Stomach()
	var best *Food
	bestDelta := math.Inf(-1)
	for _, f := range state.AllAvailable() {
		if !set[f.Key()] {
			continue
		}
		delta := SPDelta(sel, f, cravings, cravingsSatisfied)
		if delta > bestDelta {
			bestDelta = delta
			best = f
		}
	}
	return best
}
