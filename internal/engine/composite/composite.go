// Package composite folds calibrated principle scores into the final
// verdict: a confidence-weighted average with a silhouette-dominance
// override, per-zone rollups, and fix suggestions for the worst offenders.
package composite

import (
	"fmt"
	"sort"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/principle"
)

// silhouetteDominanceFloor is the worst silhouette score below which a
// positive composite cannot stand when the wearer wants to look smaller.
const silhouetteDominanceFloor = -0.20

// Result is the aggregate before the engine assembles the full ScoreResult.
type Result struct {
	CompositeRaw float64
	OverallScore float64
	DisplayScore float64
	Confidence   float64
	Dominated    bool
}

// Aggregate computes the confidence-weighted composite over applicable
// principles. contextAdjust is the summed context deltas applied before
// the clamp. The silhouette dominance rule: when the worst of tent
// concealment and bodycon mapping is badly negative, a slimming-family
// goal is active, and the weighted average still came out positive, the
// silhouette wins and drags the composite down with it.
func Aggregate(principles []domain.PrincipleScore, goals []domain.StylingGoal, contextAdjust float64) Result {
	var num, den, confSum float64
	var active int
	for _, p := range principles {
		if !p.Applicable {
			continue
		}
		num += p.Score * p.Weight * p.Confidence
		den += p.Weight * p.Confidence
		confSum += p.Confidence
		active++
	}
	if active == 0 {
		return Result{OverallScore: 5.0, DisplayScore: domain.RescaleDisplay(5.0), Confidence: 0.50}
	}

	composite := 0.0
	if den > 0 {
		composite = num / den
	}

	worstSil := 0.0
	for _, p := range principles {
		if !p.Applicable {
			continue
		}
		if p.Name == principle.TentConcealment || p.Name == principle.BodyconMapping {
			if p.Score < worstSil {
				worstSil = p.Score
			}
		}
	}

	hasSlimming := false
	for _, g := range goals {
		if g == domain.GoalSlimming || g == domain.GoalSlimHips || g == domain.GoalHideMidsection {
			hasSlimming = true
			break
		}
	}

	dominated := false
	if worstSil < silhouetteDominanceFloor && hasSlimming && composite > 0 {
		composite = worstSil * 0.3
		dominated = true
	}

	composite = domain.Clamp(composite+contextAdjust, -1, 1)
	overall := domain.ScoreToTen(composite)

	return Result{
		CompositeRaw: composite,
		OverallScore: overall,
		DisplayScore: domain.RescaleDisplay(overall),
		Confidence:   confSum / float64(active),
		Dominated:    dominated,
	}
}

// ZoneScores rolls principle scores up by body zone, flagging any
// principle that drags a zone down past -0.20.
func ZoneScores(principles []domain.PrincipleScore) map[string]domain.ZoneScore {
	type acc struct {
		scores []float64
		flags  []string
	}
	zones := make(map[string]*acc)

	for _, p := range principles {
		if !p.Applicable {
			continue
		}
		for _, zone := range principle.ZoneMapping[p.Name] {
			a := zones[zone]
			if a == nil {
				a = &acc{}
				zones[zone] = a
			}
			a.scores = append(a.scores, p.Score)
			if p.Score < -0.20 {
				a.flags = append(a.flags, fmt.Sprintf("%s: %+.2f", p.Name, p.Score))
			}
		}
	}

	out := make(map[string]domain.ZoneScore, len(zones))
	for name, a := range zones {
		var sum float64
		for _, s := range a.scores {
			sum += s
		}
		out[name] = domain.ZoneScore{
			Zone:  name,
			Score: sum / float64(len(a.scores)),
			Flags: a.flags,
		}
	}
	return out
}

type fixEntry struct {
	what        string
	improvement float64
}

var fixTable = map[string]fixEntry{
	principle.TentConcealment:  {"Try a semi-fitted silhouette (expansion rate 0.03-0.08)", 0.20},
	principle.BodyconMapping:   {"Add a structured layer or choose a heavier fabric (GSM 250+)", 0.25},
	principle.ColorBreak:       {"Remove the contrasting belt or switch to a tonal belt", 0.10},
	principle.ALineBalance:     {"Choose a fabric with a lower drape coefficient (<40%)", 0.15},
	principle.RiseElongation:   {"Choose a wider elastic waistband (5cm+, 8%+ stretch)", 0.15},
	principle.VNeckElongation:  {"Choose a V-neck instead of a boat neck or turtleneck", 0.12},
	principle.Hemline:          {"Adjust the hem to avoid the knee and calf danger zones", 0.20},
	principle.Sleeve:           {"Choose a three-quarter sleeve for optimal arm slimming", 0.25},
	principle.HStripeThinning:  {"Replace horizontal stripes with a solid or vertical lines", 0.10},
	principle.DarkSlimming:     {"Choose dark chocolate or burgundy for warm skin tones", 0.08},
	principle.TopHemline:       {"Try tucking in or choosing a cropped or waist-length top", 0.20},
	principle.PantRise:         {"Choose high-rise pants to elongate your leg line", 0.25},
	principle.LegShape:         {"Try wide-leg or straight-leg pants for your body type", 0.20},
	principle.JacketScoring:    {"Try a cropped or waist-length jacket with natural shoulders", 0.15},
}

// SuggestFixes picks remedies for up to three of the worst-scoring
// principles. Scores past -0.30 get top priority.
func SuggestFixes(principles []domain.PrincipleScore) []domain.Fix {
	var worst []domain.PrincipleScore
	for _, p := range principles {
		if p.Applicable && p.Score < -0.15 {
			worst = append(worst, p)
		}
	}
	sort.Slice(worst, func(i, j int) bool { return worst[i].Score < worst[j].Score })
	if len(worst) > 3 {
		worst = worst[:3]
	}

	var fixes []domain.Fix
	for _, p := range worst {
		entry, ok := fixTable[p.Name]
		if !ok {
			continue
		}
		priority := 2
		if p.Score < -0.30 {
			priority = 1
		}
		fixes = append(fixes, domain.Fix{
			WhatToChange:        entry.what,
			ExpectedImprovement: entry.improvement,
			Priority:            priority,
		})
	}
	return fixes
}
