// Package calibrate reweights principle scores for perception: goals
// boost the principles they care about, negative signals weigh heavier
// than positive ones, and no single principle may dominate the composite.
package calibrate

import (
	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/registry"
)

// negativeAmplifier reflects loss aversion: a flaw is perceived more
// strongly than an equal-sized benefit.
const negativeAmplifier = 1.2

// maxWeightShare caps any single principle's share of the total weight.
const maxWeightShare = 0.35

// Apply adjusts the weights of applicable principles in place:
// final = base x goal boosts x negative amplifier, then the share cap is
// enforced by proportional redistribution until it holds for every
// principle. The pre-calibration weight survives in BaseWeight so the
// reasoning output can show both sides of the redistribution.
func Apply(reg *registry.Registry, principles []domain.PrincipleScore, goals []domain.StylingGoal) {
	for i := range principles {
		p := &principles[i]
		p.BaseWeight = p.Weight
		if !p.Applicable {
			continue
		}
		for _, goal := range goals {
			p.Weight *= reg.GoalBoost(string(goal), p.Name)
		}
		if p.Score < 0 {
			p.Weight *= negativeAmplifier
		}
	}
	capShares(principles)
}

// capShares clamps weights to maxWeightShare of the applicable total and
// hands the excess proportionally to the principles under the cap, which
// keeps the total constant. Redistribution can push another principle
// over the cap, so iterate to a fixpoint; each pass clamps at least one
// new principle, bounding the loop.
func capShares(principles []domain.PrincipleScore) {
	for iter := 0; iter <= len(principles); iter++ {
		var total float64
		for i := range principles {
			if principles[i].Applicable {
				total += principles[i].Weight
			}
		}
		if total <= 0 {
			return
		}

		limit := maxWeightShare * total
		excess := 0.0
		var underTotal float64
		for i := range principles {
			p := &principles[i]
			if !p.Applicable {
				continue
			}
			if p.Weight > limit {
				excess += p.Weight - limit
				p.Weight = limit
			} else {
				underTotal += p.Weight
			}
		}
		if excess == 0 {
			return
		}
		if underTotal <= 0 {
			return
		}
		for i := range principles {
			p := &principles[i]
			if p.Applicable && p.Weight < limit {
				p.Weight += excess * p.Weight / underTotal
			}
		}
	}
}
