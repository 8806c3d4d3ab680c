package domain

import "time"

type Verdict string

const (
	VerdictPass    Verdict = "pass"
	VerdictCaution Verdict = "caution"
	VerdictFail    Verdict = "fail"
)

// PrincipleScore is one scorer's contribution. Raw is in [-1, 1];
// Weight is the calibrated share used by the aggregator.
type PrincipleScore struct {
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Weight     float64 `json:"weight"`
	BaseWeight float64 `json:"base_weight,omitempty"`
	Confidence float64 `json:"confidence"`
	Applicable bool    `json:"applicable"`
	Reversed   bool    `json:"reversed,omitempty"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

type GoalAssessment struct {
	Goal       StylingGoal `json:"goal"`
	Verdict    Verdict     `json:"verdict"`
	Score      float64     `json:"score"`
	Factors    []string    `json:"factors,omitempty"`
	Fix        string      `json:"fix,omitempty"`
	Confidence float64     `json:"confidence"`
	Reasoning  string      `json:"reasoning,omitempty"`
}

type ZoneScore struct {
	Zone  string   `json:"zone"`
	Score float64  `json:"score"`
	Flags []string `json:"flags,omitempty"`
}

// Exception records a gate rule overriding a baseline. The collection is
// append-only: gates add records and never rewrite earlier ones.
type Exception struct {
	ID             string  `json:"id"`
	RuleOverridden string  `json:"rule_overridden"`
	Reason         string  `json:"reason"`
	Confidence     float64 `json:"confidence"`
}

type Fix struct {
	WhatToChange        string  `json:"what_to_change"`
	ExpectedImprovement float64 `json:"expected_improvement"`
	Priority            int     `json:"priority"`
}

// Translation is the geometric mapping of garment landmarks onto a body.
type Translation struct {
	HemFromFloor       float64    `json:"hem_from_floor"`
	HemZone            string     `json:"hem_zone"`
	DangerZones        [][2]float64 `json:"danger_zones,omitempty"`
	FabricRiseAdjust   float64    `json:"fabric_rise_adjustment"`
	HemDeltaScore      float64    `json:"hem_delta_score"`

	SleeveEndpoint       float64 `json:"sleeve_endpoint"`
	PerceivedArmWidth    float64 `json:"perceived_arm_width"`
	ArmWidthDelta        float64 `json:"arm_width_delta"`
	ArmSeverity          float64 `json:"arm_severity"`

	VisualWaistHeight     float64 `json:"visual_waist_height"`
	VisualLegRatio        float64 `json:"visual_leg_ratio"`
	ProportionImprovement float64 `json:"proportion_improvement"`

	TotalStretchPct      float64 `json:"total_stretch_pct"`
	EffectiveGSM         float64 `json:"effective_gsm"`
	SheenScore           float64 `json:"sheen_score"`
	PhotoRealityDiscount float64 `json:"photo_reality_discount"`
}

// ScoreResult is the terminal pipeline output. It is immutable once built
// and safe to serialize for storage or the communication service.
type ScoreResult struct {
	ID            string    `json:"id,omitempty"`
	OverallScore  float64   `json:"overall_score"`
	DisplayScore  float64   `json:"display_score"`
	CompositeRaw  float64   `json:"composite_raw"`
	Confidence    float64   `json:"confidence"`

	PrincipleScores []PrincipleScore     `json:"principle_scores"`
	GoalAssessments []GoalAssessment     `json:"goal_assessments"`
	ZoneScores      map[string]ZoneScore `json:"zone_scores,omitempty"`

	Exceptions []Exception `json:"exceptions,omitempty"`
	Fixes      []Fix       `json:"fixes,omitempty"`

	Translation *Translation `json:"translation,omitempty"`

	ReasoningChain []string          `json:"reasoning_chain,omitempty"`
	LayerNotes     map[string]string `json:"layer_notes,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ScoreToTen maps the raw [-1,1] composite to the 0-10 scale.
func ScoreToTen(raw float64) float64 {
	return Clamp(raw, -1, 1)*5.0 + 5.0
}

// rescaleBreakpoints stretch the engine's compressed 4.0-6.3 output band
// across an intuitive 0-10 display range; ordering is preserved.
var rescaleBreakpoints = [][4]float64{
	{0.0, 3.5, 0.0, 0.5},
	{3.5, 4.0, 0.5, 1.0},
	{4.0, 4.4, 1.0, 4.0},
	{4.4, 5.0, 4.0, 5.5},
	{5.0, 5.5, 5.5, 7.0},
	{5.5, 5.8, 7.0, 8.0},
	{5.8, 6.3, 8.0, 9.5},
	{6.3, 10.0, 9.5, 10.0},
}

// RescaleDisplay applies a piecewise linear stretch of the 0-10 engine
// score for presentation.
func RescaleDisplay(rawTen float64) float64 {
	for _, bp := range rescaleBreakpoints {
		rawLo, rawHi, dispLo, dispHi := bp[0], bp[1], bp[2], bp[3]
		if rawTen <= rawHi {
			if rawHi == rawLo {
				return dispLo
			}
			t := (rawTen - rawLo) / (rawHi - rawLo)
			return dispLo + t*(dispHi-dispLo)
		}
	}
	return 10.0
}
