// Package contextmod applies occasion, culture, climate and age
// adjustments between calibration and aggregation. Adjustments are named
// additive deltas so the reasoning chain can attribute every shift.
package contextmod

import (
	"strings"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/principle"
)

// Context is the wearing situation a score request may carry.
type Context struct {
	Occasion     string         `json:"occasion,omitempty"`
	Culture      string         `json:"culture,omitempty"`
	EventType    string         `json:"event_type,omitempty"`
	GarmentColor string         `json:"garment_color,omitempty"`
	AgeRange     string         `json:"age_range,omitempty"`
	Climate      domain.Climate `json:"climate,omitempty"`
}

// Empty reports whether no contextual signal was supplied.
func (c Context) Empty() bool {
	return c.Occasion == "" && c.Culture == "" && c.EventType == "" &&
		c.GarmentColor == "" && c.AgeRange == "" && c.Climate == ""
}

// colorSymbolism maps culture -> color -> event -> delta.
var colorSymbolism = map[string]map[string]map[string]float64{
	"india": {
		"red":   {"wedding_bride": 0.95, "wedding_guest": -0.30, "general": 0},
		"white": {"celebration": -0.90, "funeral": 0.50, "general": 0},
		"black": {"wedding_ceremony": -0.70, "sangeet": -0.20, "general": 0},
		"gold":  {"wedding": 0.80, "general": 0.20},
	},
	"us": {
		"red":   {"general": 0},
		"white": {"wedding_bride": 0.90, "wedding_guest": -0.50, "general": 0},
		"black": {"evening": 0.90, "funeral": 0.50, "general": 0},
	},
}

type coverageRule struct {
	minHem           string
	maxNecklineDepth float64
}

var occasionCoverage = map[string]coverageRule{
	"formal":          {minHem: "knee", maxNecklineDepth: 4.0},
	"business":        {minHem: "above_knee", maxNecklineDepth: 5.0},
	"business_casual": {minHem: "above_knee", maxNecklineDepth: 6.0},
	"casual":          {minHem: "mini", maxNecklineDepth: 8.0},
	"date_night":      {minHem: "above_knee", maxNecklineDepth: 7.0},
	"wedding_guest":   {minHem: "knee", maxNecklineDepth: 5.0},
	"interview":       {minHem: "knee", maxNecklineDepth: 5.0},
	"athletic":        {minHem: "mini", maxNecklineDepth: 6.0},
	"brunch":          {minHem: "above_knee", maxNecklineDepth: 7.0},
	"evening":         {minHem: "above_knee", maxNecklineDepth: 8.0},
}

// hemOrder ranks hem labels from longest to shortest; a higher index is a
// shorter garment.
var hemOrder = []string{
	"floor", "ankle", "below_calf", "midi", "below_knee",
	"knee", "above_knee", "mini",
}

func hemIsAbove(actual, minimum string) bool {
	ai, mi := -1, -1
	for i, h := range hemOrder {
		if h == actual {
			ai = i
		}
		if h == minimum {
			mi = i
		}
	}
	return ai >= 0 && mi >= 0 && ai > mi
}

// Apply computes named score deltas for the context and nudges specific
// principle scores for age-range rules. The returned map feeds the
// composite as a flat additive adjustment.
func Apply(ctx Context, principles []domain.PrincipleScore, b domain.BodyProfile, g domain.GarmentProfile) map[string]float64 {
	adjustments := make(map[string]float64)

	culture := strings.ToLower(ctx.Culture)
	color := strings.ToLower(ctx.GarmentColor)
	event := ctx.EventType
	if event == "" {
		event = "general"
	}
	if rules, ok := colorSymbolism[culture]; ok && color != "" {
		if colorRules, ok := rules[color]; ok {
			delta, ok := colorRules[event]
			if !ok {
				delta = colorRules["general"]
			}
			if delta != 0 {
				adjustments["cultural_color"] = delta
			}
		}
	}

	if reqs, ok := occasionCoverage[strings.ToLower(ctx.Occasion)]; ok {
		if hemIsAbove(g.HemPosition, reqs.minHem) {
			adjustments["occasion_hem_violation"] = -0.20
		}
		depth := g.VDepthCm / 2.54
		if g.NecklineDepth != nil {
			depth = *g.NecklineDepth
		}
		if depth > reqs.maxNecklineDepth {
			adjustments["occasion_neckline_violation"] = -0.15
		}
	}

	switch ctx.Climate {
	case domain.ClimateHotHumid:
		if g.GSMEstimated > 250 {
			adjustments["climate_heavy_fabric"] = -0.10
		}
		if (g.PrimaryFiber == "polyester" || g.PrimaryFiber == "nylon") && g.FabricName == "" {
			adjustments["climate_non_breathable"] = -0.05
		}
	case domain.ClimateCold:
		if g.GSMEstimated < 120 {
			adjustments["climate_light_fabric"] = -0.10
		}
	}

	switch ctx.AgeRange {
	case "50+":
		for _, p := range principles {
			if p.Name == principle.BodyconMapping && p.Score > 0.20 {
				adjustments["age_bodycon_comfort"] = -0.05
			}
		}
	case "18-25":
		for _, p := range principles {
			if p.Name == principle.TentConcealment && p.Score < -0.20 {
				adjustments["age_oversized_trend"] = 0.05
			}
		}
	}

	return adjustments
}
