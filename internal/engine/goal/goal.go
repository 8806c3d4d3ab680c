// Package goal turns principle scores into per-goal verdicts. Each goal
// names the principles that serve it and those that fight it, with
// goal-specific weights: a negative score on a fighting principle counts
// in the goal's favor.
package goal

import (
	"fmt"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/principle"
)

type mapping struct {
	positive []string
	negative []string
	weights  map[string]float64
}

var goalMap = map[domain.StylingGoal]mapping{
	domain.GoalLookTaller: {
		positive: []string{
			principle.MonochromeColumn, principle.RiseElongation,
			principle.VNeckElongation, principle.Hemline,
			principle.WaistPlacement, principle.PantRise,
		},
		negative: []string{
			principle.ColorBreak, principle.HStripeThinning, principle.TopHemline,
		},
		weights: map[string]float64{
			principle.MonochromeColumn: 1.5,
			principle.RiseElongation:   1.3,
			principle.VNeckElongation:  1.2,
			principle.Hemline:          1.3,
			principle.WaistPlacement:   1.2,
			principle.ColorBreak:       1.3,
			principle.PantRise:         1.5,
			principle.TopHemline:       1.2,
		},
	},
	domain.GoalHighlightWaist: {
		positive: []string{
			principle.ColorBreak, principle.BodyconMapping,
			principle.WaistPlacement, principle.PantRise, principle.JacketScoring,
		},
		negative: []string{principle.TentConcealment},
		weights: map[string]float64{
			principle.ColorBreak:      1.5,
			principle.BodyconMapping:  1.2,
			principle.WaistPlacement:  1.5,
			principle.TentConcealment: 1.3,
			principle.PantRise:        1.3,
			principle.JacketScoring:   1.2,
		},
	},
	domain.GoalHideMidsection: {
		positive: []string{
			principle.TentConcealment, principle.DarkSlimming,
			principle.MatteZone, principle.FabricZone,
			principle.TopHemline, principle.JacketScoring,
		},
		negative: []string{
			principle.BodyconMapping, principle.ColorBreak, principle.PantRise,
		},
		weights: map[string]float64{
			principle.TentConcealment: 1.5,
			principle.DarkSlimming:    1.3,
			principle.MatteZone:       1.2,
			principle.BodyconMapping:  1.5,
			principle.ColorBreak:      1.2,
			principle.TopHemline:      1.3,
			principle.JacketScoring:   1.2,
			principle.PantRise:        1.2,
		},
	},
	domain.GoalSlimHips: {
		positive: []string{
			principle.DarkSlimming, principle.ALineBalance,
			principle.MatteZone, principle.Hemline, principle.LegShape,
		},
		negative: []string{
			principle.HStripeThinning, principle.BodyconMapping, principle.TopHemline,
		},
		weights: map[string]float64{
			principle.DarkSlimming:    1.5,
			principle.ALineBalance:    1.3,
			principle.MatteZone:       1.2,
			principle.Hemline:         1.2,
			principle.HStripeThinning: 1.3,
			principle.BodyconMapping:  1.3,
			principle.LegShape:        1.5,
			principle.TopHemline:      1.3,
		},
	},
	domain.GoalLookProportional: {
		positive: []string{
			principle.WaistPlacement, principle.Hemline,
			principle.RiseElongation, principle.MonochromeColumn,
			principle.PantRise, principle.JacketScoring,
		},
		negative: []string{principle.TentConcealment},
		weights: map[string]float64{
			principle.WaistPlacement:  1.5,
			principle.Hemline:         1.3,
			principle.RiseElongation:  1.2,
			principle.TentConcealment: 1.2,
			principle.PantRise:        1.3,
			principle.JacketScoring:   1.1,
		},
	},
	domain.GoalMinimizeArms: {
		positive: []string{
			principle.Sleeve, principle.MatteZone, principle.JacketScoring,
		},
		weights: map[string]float64{
			principle.Sleeve:        1.5,
			principle.MatteZone:     1.2,
			principle.JacketScoring: 1.2,
		},
	},
	domain.GoalSlimming: {
		positive: []string{
			principle.DarkSlimming, principle.MatteZone,
			principle.HStripeThinning, principle.ColorValue,
		},
		negative: []string{principle.TentConcealment, principle.BodyconMapping},
		weights: map[string]float64{
			principle.DarkSlimming:    1.5,
			principle.MatteZone:       1.3,
			principle.TentConcealment: 1.5,
		},
	},
	domain.GoalConcealment: {
		positive: []string{
			principle.TentConcealment, principle.MatteZone, principle.DarkSlimming,
		},
		negative: []string{principle.BodyconMapping},
		weights: map[string]float64{
			principle.TentConcealment: 1.5,
			principle.MatteZone:       1.3,
		},
	},
	domain.GoalEmphasis: {
		positive: []string{
			principle.BodyconMapping, principle.ColorBreak, principle.VNeckElongation,
		},
		negative: []string{principle.TentConcealment},
		weights: map[string]float64{
			principle.BodyconMapping:  1.5,
			principle.ColorBreak:      1.3,
			principle.VNeckElongation: 1.3,
		},
	},
	domain.GoalBalance: {
		positive: []string{
			principle.WaistPlacement, principle.ALineBalance, principle.Hemline,
		},
	},
	domain.GoalElongateLegs: {
		positive: []string{
			principle.Hemline, principle.RiseElongation,
			principle.PantRise, principle.MonochromeColumn,
		},
		negative: []string{principle.ColorBreak},
		weights: map[string]float64{
			principle.Hemline:          1.3,
			principle.RiseElongation:   1.3,
			principle.PantRise:         1.5,
			principle.MonochromeColumn: 1.2,
			principle.ColorBreak:       1.2,
		},
	},
	domain.GoalBalanceShoulders: {
		positive: []string{
			principle.Sleeve, principle.ALineBalance,
			principle.NecklineCompound, principle.JacketScoring,
		},
		negative: []string{principle.HStripeThinning},
		weights: map[string]float64{
			principle.Sleeve:           1.3,
			principle.ALineBalance:     1.2,
			principle.NecklineCompound: 1.3,
			principle.JacketScoring:    1.2,
		},
	},
}

// fixByPrinciple keys a remedy on the most negative contributing factor.
var fixByPrinciple = map[string]string{
	principle.WaistPlacement:   "Add a belt or choose a defined waistline",
	principle.Sleeve:           "Choose a three-quarter sleeve or add a light layer",
	principle.Hemline:          "Adjust the hem away from the knee and calf danger zones",
	principle.TentConcealment:  "Try a semi-fitted silhouette instead of full volume",
	principle.BodyconMapping:   "Add a structured layer or pick a heavier fabric",
	principle.ColorBreak:       "Swap the contrasting belt for a tonal one",
	principle.DarkSlimming:     "Pick a deep jewel tone that flatters your undertone",
	principle.MatteZone:        "Choose a matte fabric with more body",
	principle.HStripeThinning:  "Replace horizontal stripes with a solid or vertical line",
	principle.RiseElongation:   "Choose a wider, stretchier waistband",
	principle.VNeckElongation:  "Choose a V or scoop neckline",
	principle.MonochromeColumn: "Keep the outfit in one color family",
	principle.TopHemline:       "Try tucking in, or a waist-length hem",
	principle.PantRise:         "Choose a high rise to lengthen the leg line",
	principle.LegShape:         "Try a wide-leg or straight cut",
	principle.JacketScoring:    "Try a cropped length with natural shoulders",
	principle.NecklineCompound: "Choose a shallower neckline for this bustline",
	principle.ALineBalance:     "Pick a softer fabric so the flare drapes instead of standing",
	principle.FabricZone:       "Pick a fabric with less cling and more structure",
	principle.ColorValue:       "Choose a darker color value",
}

// Assess scores every active styling goal. Confidence shrinks with
// coverage: a goal whose principles mostly did not apply (missing waist
// definition, no sleeve data) reports a low-confidence caution rather
// than a confident verdict.
func Assess(principles []domain.PrincipleScore, goals []domain.StylingGoal) []domain.GoalAssessment {
	byName := make(map[string]domain.PrincipleScore, len(principles))
	for _, p := range principles {
		if p.Applicable {
			byName[p.Name] = p
		}
	}

	out := make([]domain.GoalAssessment, 0, len(goals))
	for _, g := range goals {
		out = append(out, assessOne(g, byName))
	}
	return out
}

func assessOne(g domain.StylingGoal, byName map[string]domain.PrincipleScore) domain.GoalAssessment {
	m := goalMap[g]

	var weightedSum, totalWeight, confSum float64
	var found, mapped int
	var factors []string
	worstScore := 0.0
	worstName := ""

	weight := func(name string) float64 {
		if w, ok := m.weights[name]; ok {
			return w
		}
		return 1.0
	}

	for _, name := range m.positive {
		mapped++
		p, ok := byName[name]
		if !ok {
			continue
		}
		found++
		w := weight(name)
		weightedSum += p.Score * w
		totalWeight += w
		confSum += p.Confidence
		if p.Score > 0.05 {
			factors = append(factors, fmt.Sprintf("+%s (%+.2f)", name, p.Score))
		}
		if p.Score < worstScore {
			worstScore, worstName = p.Score, name
		}
	}
	for _, name := range m.negative {
		mapped++
		p, ok := byName[name]
		if !ok {
			continue
		}
		found++
		w := weight(name)
		// A principle that fights this goal helps it by scoring negative.
		weightedSum -= p.Score * w
		totalWeight += w
		confSum += p.Confidence
		if p.Score < -0.05 {
			factors = append(factors, fmt.Sprintf("-%s avoided (%+.2f)", name, p.Score))
		}
		if inverted := -p.Score; inverted < worstScore {
			worstScore, worstName = inverted, name
		}
	}

	if totalWeight == 0 || mapped == 0 {
		return domain.GoalAssessment{
			Goal:       g,
			Verdict:    domain.VerdictCaution,
			Confidence: 0.30,
			Reasoning:  "no applicable principles for this goal",
		}
	}

	score := weightedSum / totalWeight
	verdict := domain.VerdictFail
	switch {
	case score > 0.3:
		verdict = domain.VerdictPass
	case score > -0.3:
		verdict = domain.VerdictCaution
	}

	coverage := float64(found) / float64(mapped)
	confidence := coverage * confSum / float64(found)

	assessment := domain.GoalAssessment{
		Goal:       g,
		Verdict:    verdict,
		Score:      score,
		Factors:    factors,
		Confidence: confidence,
		Reasoning:  fmt.Sprintf("weighted score %+.3f over %d/%d principles", score, found, mapped),
	}
	if verdict != domain.VerdictPass && worstName != "" {
		assessment.Fix = fixByPrinciple[worstName]
	}
	return assessment
}
