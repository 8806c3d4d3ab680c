// Package principle holds the perceptual scorers. Every scorer maps a
// (garment, body) pair onto a [-1, +1] score with a pipe-delimited audit
// trail; body-shape reversals come from the registry lookup table so that
// a direction flip is always attributable to a named rule.
package principle

import (
	"fmt"
	"strings"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/registry"
	"github.com/stylesense/fitcore/internal/engine/translate"
)

// Principle names. These key the registry weight, confidence, boost and
// reversal tables and appear verbatim in score breakdowns.
const (
	HStripeThinning  = "h_stripe_thinning"
	DarkSlimming     = "dark_slimming"
	RiseElongation   = "rise_elongation"
	ALineBalance     = "a_line_balance"
	TentConcealment  = "tent_concealment"
	ColorBreak       = "color_break"
	BodyconMapping   = "bodycon_mapping"
	MatteZone        = "matte_zone"
	VNeckElongation  = "v_neck_elongation"
	MonochromeColumn = "monochrome_column"
	Hemline          = "hemline"
	Sleeve           = "sleeve"
	WaistPlacement   = "waist_placement"
	ColorValue       = "color_value"
	FabricZone       = "fabric_zone"
	NecklineCompound = "neckline_compound"

	TopHemline    = "top_hemline"
	PantRise      = "pant_rise"
	LegShape      = "leg_shape"
	JacketScoring = "jacket_scoring"
)

// Input carries everything a scorer may consult. Scorers never mutate it.
type Input struct {
	Reg      *registry.Registry
	Garment  domain.GarmentProfile
	Body     domain.BodyProfile
	Resolved domain.FabricResolution
	Detail   translate.Detail
}

type outcome struct {
	score      float64
	applicable bool
	reversed   bool
	reasoning  []string
}

func notApplicable(why string) outcome {
	return outcome{reasoning: []string{why}}
}

func applicableScore(score float64, reasoning ...string) outcome {
	return outcome{score: domain.Clamp(score, -1, 1), applicable: true, reasoning: reasoning}
}

type scorerFunc func(in Input) outcome

var scorers = []struct {
	name string
	fn   scorerFunc
}{
	{HStripeThinning, scoreHorizontalStripes},
	{DarkSlimming, scoreDarkSlimming},
	{RiseElongation, scoreRiseElongation},
	{ALineBalance, scoreALineBalance},
	{TentConcealment, scoreTentConcealment},
	{ColorBreak, scoreColorBreak},
	{BodyconMapping, scoreBodyconMapping},
	{MatteZone, scoreMatteZone},
	{VNeckElongation, scoreVNeckElongation},
	{MonochromeColumn, scoreMonochromeColumn},
	{Hemline, scoreHemline},
	{Sleeve, scoreSleeve},
	{WaistPlacement, scoreWaistPlacement},
	{ColorValue, scoreColorValue},
	{FabricZone, scoreFabricZone},
	{NecklineCompound, scoreNecklineCompound},
}

var typeScorers = map[string]scorerFunc{
	TopHemline:    scoreTopHemline,
	PantRise:      scorePantRise,
	LegShape:      scoreLegShape,
	JacketScoring: scoreJacketScoring,
}

// ZoneMapping routes each principle to the body zones it speaks about.
var ZoneMapping = map[string][]string{
	HStripeThinning:  {"torso"},
	DarkSlimming:     {"torso"},
	RiseElongation:   {"waist"},
	ALineBalance:     {"hip"},
	TentConcealment:  {"torso", "hip"},
	ColorBreak:       {"waist"},
	BodyconMapping:   {"torso", "hip", "thigh"},
	MatteZone:        {"torso", "hip"},
	VNeckElongation:  {"bust", "shoulder"},
	MonochromeColumn: {"torso"},
	Hemline:          {"knee", "calf", "ankle"},
	Sleeve:           {"upper_arm", "shoulder"},
	WaistPlacement:   {"waist"},
	ColorValue:       {"torso"},
	FabricZone:       {"torso", "hip"},
	NecklineCompound: {"bust"},
	TopHemline:       {"hip", "torso"},
	PantRise:         {"waist"},
	LegShape:         {"hip", "thigh"},
	JacketScoring:    {"shoulder", "waist", "hip", "torso"},
}

// skipSets lists principles with no perceptual meaning for a category.
// Categories absent from the map run the full scorer set.
var skipSets = map[domain.GarmentCategory]map[string]bool{
	domain.CategoryDress:      {},
	domain.CategoryTop:        {Hemline: true},
	domain.CategorySweatshirt: {Hemline: true},
	domain.CategoryBodysuit:   {Hemline: true},
	domain.CategoryBottomPants: {
		VNeckElongation: true, NecklineCompound: true, Sleeve: true,
		RiseElongation: true, Hemline: true,
	},
	domain.CategoryBottomShorts: {
		VNeckElongation: true, NecklineCompound: true, Sleeve: true,
		RiseElongation: true, Hemline: true,
	},
	domain.CategorySkirt: {
		VNeckElongation: true, NecklineCompound: true, Sleeve: true,
		RiseElongation: true,
	},
	domain.CategoryJumpsuit: {},
	domain.CategoryRomper:   {},
	domain.CategoryJacket:   {Hemline: true},
	domain.CategoryCoat:     {},
	domain.CategoryCardigan: {Hemline: true},
	domain.CategoryVest:     {Hemline: true, Sleeve: true},
}

var extraScorers = map[domain.GarmentCategory][]string{
	domain.CategoryTop:          {TopHemline},
	domain.CategorySweatshirt:   {TopHemline},
	domain.CategoryBodysuit:     {TopHemline},
	domain.CategoryCardigan:     {TopHemline},
	domain.CategoryBottomPants:  {PantRise, LegShape},
	domain.CategoryBottomShorts: {PantRise, LegShape},
	domain.CategoryJacket:       {JacketScoring},
	domain.CategoryCoat:         {JacketScoring},
}

var layerCategories = map[domain.GarmentCategory]bool{
	domain.CategoryJacket:   true,
	domain.CategoryCoat:     true,
	domain.CategoryCardigan: true,
	domain.CategoryVest:     true,
}

// IsLayerGarment reports whether the category modifies an outfit underneath.
func IsLayerGarment(c domain.GarmentCategory) bool { return layerCategories[c] }

// ScoreAll runs every scorer relevant to the garment's category.
// Structured garment gates soften negative scores via penaltyReduction
// before weighting; skipped and not-applicable principles come back with
// zero weight so downstream averages ignore them.
func ScoreAll(in Input, penaltyReduction float64) []domain.PrincipleScore {
	skip := skipSets[in.Garment.Category]
	results := make([]domain.PrincipleScore, 0, len(scorers)+2)

	run := func(name string, fn scorerFunc) {
		out := fn(in)
		score := out.score
		if score < 0 && penaltyReduction < 1.0 {
			score *= penaltyReduction
		}
		ps := domain.PrincipleScore{
			Name:       name,
			Score:      score,
			Applicable: out.applicable,
			Reversed:   out.reversed,
			Reasoning:  strings.Join(out.reasoning, " | "),
		}
		if out.applicable {
			ps.Weight = in.Reg.BaseWeight(name)
			ps.Confidence = in.Reg.Confidence(name)
		}
		results = append(results, ps)
	}

	for _, s := range scorers {
		if skip != nil && skip[s.name] {
			results = append(results, domain.PrincipleScore{
				Name:      s.name,
				Reasoning: fmt.Sprintf("not scored for %s", in.Garment.Category),
			})
			continue
		}
		run(s.name, s.fn)
	}

	for _, name := range extraScorers[in.Garment.Category] {
		run(name, typeScorers[name])
	}

	return results
}
