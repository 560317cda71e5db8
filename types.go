package main

import (
	"fmt"
	"strings"
)

// TastinessUnrated marks a food the player has not rated yet. It is
// distinct from the neutral rating 0.
const TastinessUnrated = 99

// Food is one catalog entry. Stomach and Available are the only mutable
// fields; everything else is fixed game data.
type Food struct {
	Name      string  `json:"Name"`
	Calories  float64 `json:"Calories"`
	Carbs     float64 `json:"Carbs"`
	Protein   float64 `json:"Protein"`
	Fats      float64 `json:"Fats"`
	Vitamins  float64 `json:"Vitamins"`
	Tastiness int     `json:"Tastiness"`
	Stomach   int     `json:"Stomach"`
	Available int     `json:"Available"`
}

// Key returns the canonical identity of a food. Names are unique
// case-insensitively, so all lookups go through this.
func (f *Food) Key() string {
	return strings.ToLower(f.Name)
}

// Validate checks the catalog invariants for a single food.
func (f *Food) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("food with empty name")
	}
	if f.Calories < 0 || f.Carbs < 0 || f.Protein < 0 || f.Fats < 0 || f.Vitamins < 0 {
		return fmt.Errorf("food %q has negative attributes", f.Name)
	}
	if (f.Tastiness < -3 || f.Tastiness > 3) && f.Tastiness != TastinessUnrated {
		return fmt.Errorf("food %q has invalid tastiness %d", f.Name, f.Tastiness)
	}
	if f.Stomach < 0 || f.Available < 0 {
		return fmt.Errorf("food %q has negative counters", f.Name)
	}
	return nil
}

// TastinessMultiplier maps a rating to its SP multiplier, 0.70 at -3 up
// to 1.30 at +3. Unrated foods are neutral.
func TastinessMultiplier(rating int) float64 {
	switch rating {
	case -3:
		return 0.70
	case -2:
		return 0.80
	case -1:
		return 0.90
	case 0:
		return 1.00
	case 1:
		return 1.10
	case 2:
		return 1.20
	case 3:
		return 1.30
	default:
		return 1.00
	}
}

// TastinessName maps a rating to its display name.
func TastinessName(rating int) string {
	switch rating {
	case -3:
		return "hated"
	case -2:
		return "horrible"
	case -1:
		return "bad"
	case 0:
		return "neutral"
	case 1:
		return "good"
	case 2:
		return "great"
	case 3:
		return "favorite"
	default:
		return "unknown"
	}
}

// NutrientDensity holds the calorie-weighted average of each nutrient
// across a selection.
type NutrientDensity struct {
	Carbs    float64
	Protein  float64
	Fats     float64
	Vitamins float64
}

// Sum returns the total of all four averages.
func (d NutrientDensity) Sum() float64 {
	return d.Carbs + d.Protein + d.Fats + d.Vitamins
}

// MinNonzero returns the smallest non-zero average, or 0 if all are zero.
func (d NutrientDensity) MinNonzero() float64 {
	min := 0.0
	for _, v := range [4]float64{d.Carbs, d.Protein, d.Fats, d.Vitamins} {
		if v > 0 && (min == 0 || v < min) {
			min = v
		}
	}
	return min
}

// Max returns the largest average.
func (d NutrientDensity) Max() float64 {
	max := d.Carbs
	for _, v := range [3]float64{d.Protein, d.Fats, d.Vitamins} {
		if v > max {
			max = v
		}
	}
	return max
}

// PlanStep is one bite in a generated plan, recorded in selection order
// and never mutated afterwards.
type PlanStep struct {
	FoodName     string  `json:"foodName"`
	Calories     float64 `json:"calories"`
	SPGain       float64 `json:"spGain"`
	NewTotalSP   float64 `json:"newTotalSp"`
	IsCraving    bool    `json:"isCraving"`
	VarietyDelta float64 `json:"varietyDelta"`
	TasteDelta   float64 `json:"tasteDelta"`
}
