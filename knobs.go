package main

import (
	"fmt"
	"math/rand"
)

// ── Tuned ranking constants ──
// Values come from the best tuner run; rerun `tune` after changing the
// catalog or the scoring formula.

const (
	// CalFloor is the minimum calories per bite before the low-calorie
	// penalty applies.
	CalFloor = 395.0

	// CalPenaltyGamma scales the quadratic low-calorie penalty.
	CalPenaltyGamma = 2.479

	// SoftBiasGamma scales the soft-variety ranking bias.
	SoftBiasGamma = 3.606

	// TieEpsilon is the window below the best raw score inside which
	// candidates stay eligible for bias tie-breaking.
	TieEpsilon = 0.449

	// TieAlpha weighs proximity to the variety threshold; TieBeta is
	// the malus for overshooting it.
	TieAlpha = 0.977
	TieBeta  = 0.076
)

// Knobs bundles every tunable ranking coefficient. Immutable per
// evaluation; the tuner varies them across iterations.
type Knobs struct {
	SoftBiasGamma          float64 `json:"softBiasGamma" yaml:"soft_bias_gamma"`
	TieAlpha               float64 `json:"tieAlpha" yaml:"tie_alpha"`
	TieBeta                float64 `json:"tieBeta" yaml:"tie_beta"`
	TieEpsilon             float64 `json:"tieEpsilon" yaml:"tie_epsilon"`
	CalFloor               float64 `json:"calFloor" yaml:"cal_floor"`
	CalPenaltyGamma        float64 `json:"calPenaltyGamma" yaml:"cal_penalty_gamma"`
	BalanceBiasGamma       float64 `json:"balanceBiasGamma" yaml:"balance_bias_gamma"`
	RepetitionPenaltyGamma float64 `json:"repetitionPenaltyGamma" yaml:"repetition_penalty_gamma"`
}

// NumKnobs is the number of tunable coefficients.
const NumKnobs = 8

// DefaultKnobs returns the tuned constants. The balance and repetition
// extensions default to 0 (disabled).
func DefaultKnobs() Knobs {
	return Knobs{
		SoftBiasGamma:   SoftBiasGamma,
		TieAlpha:        TieAlpha,
		TieBeta:         TieBeta,
		TieEpsilon:      TieEpsilon,
		CalFloor:        CalFloor,
		CalPenaltyGamma: CalPenaltyGamma,
	}
}

// String renders a compact single-line view for progress logs.
func (k Knobs) String() string {
	return fmt.Sprintf("sbg=%.3f ta=%.3f tb=%.3f te=%.3f cf=%.1f cpg=%.3f bbg=%.3f rpg=%.3f",
		k.SoftBiasGamma, k.TieAlpha, k.TieBeta, k.TieEpsilon,
		k.CalFloor, k.CalPenaltyGamma, k.BalanceBiasGamma, k.RepetitionPenaltyGamma)
}

// Perturb returns a copy with one knob multiplied by factor, clamped to
// its range. Index order: 0=SoftBiasGamma, 1=TieAlpha, 2=TieBeta,
// 3=TieEpsilon, 4=CalFloor, 5=CalPenaltyGamma, 6=BalanceBiasGamma,
// 7=RepetitionPenaltyGamma.
func (k Knobs) Perturb(idx int, factor float64, ranges KnobRanges) Knobs {
	next := k
	switch idx {
	case 0:
		next.SoftBiasGamma = clamp(k.SoftBiasGamma*factor, ranges.SoftBiasGamma)
	case 1:
		next.TieAlpha = clamp(k.TieAlpha*factor, ranges.TieAlpha)
	case 2:
		next.TieBeta = clamp(k.TieBeta*factor, ranges.TieBeta)
	case 3:
		next.TieEpsilon = clamp(k.TieEpsilon*factor, ranges.TieEpsilon)
	case 4:
		next.CalFloor = clamp(k.CalFloor*factor, ranges.CalFloor)
	case 5:
		next.CalPenaltyGamma = clamp(k.CalPenaltyGamma*factor, ranges.CalPenaltyGamma)
	case 6:
		next.BalanceBiasGamma = clamp(k.BalanceBiasGamma*factor, ranges.BalanceBiasGamma)
	case 7:
		next.RepetitionPenaltyGamma = clamp(k.RepetitionPenaltyGamma*factor, ranges.RepetitionPenaltyGamma)
	}
	return next
}

// Range is a closed [Min, Max] interval for one knob.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func clamp(v float64, r Range) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// KnobRanges bounds the random search and hill-climb clamping.
type KnobRanges struct {
	SoftBiasGamma          Range `yaml:"soft_bias_gamma"`
	TieAlpha               Range `yaml:"tie_alpha"`
	TieBeta                Range `yaml:"tie_beta"`
	TieEpsilon             Range `yaml:"tie_epsilon"`
	CalFloor               Range `yaml:"cal_floor"`
	CalPenaltyGamma        Range `yaml:"cal_penalty_gamma"`
	BalanceBiasGamma       Range `yaml:"balance_bias_gamma"`
	RepetitionPenaltyGamma Range `yaml:"repetition_penalty_gamma"`
}

// DefaultKnobRanges returns the search space used by the tuner.
func DefaultKnobRanges() KnobRanges {
	return KnobRanges{
		SoftBiasGamma:          Range{0, 6},
		TieAlpha:               Range{0, 1},
		TieBeta:                Range{0, 0.2},
		TieEpsilon:             Range{0.1, 1},
		CalFloor:               Range{200, 500},
		CalPenaltyGamma:        Range{0, 4},
		BalanceBiasGamma:       Range{0, 3},
		RepetitionPenaltyGamma: Range{0, 2},
	}
}

func uniform(rng *rand.Rand, r Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// RandomKnobs draws one uniform sample per knob from the given ranges.
func RandomKnobs(rng *rand.Rand, ranges KnobRanges) Knobs {
	return Knobs{
		SoftBiasGamma:          uniform(rng, ranges.SoftBiasGamma),
		TieAlpha:               uniform(rng, ranges.TieAlpha),
		TieBeta:                uniform(rng, ranges.TieBeta),
		TieEpsilon:             uniform(rng, ranges.TieEpsilon),
		CalFloor:               uniform(rng, ranges.CalFloor),
		CalPenaltyGamma:        uniform(rng, ranges.CalPenaltyGamma),
		BalanceBiasGamma:       uniform(rng, ranges.BalanceBiasGamma),
		RepetitionPenaltyGamma: uniform(rng, ranges.RepetitionPenaltyGamma),
	}
}
