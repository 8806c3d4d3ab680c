package principle

import (
	"fmt"
	"math"

	"github.com/stylesense/fitcore/internal/core/domain"
)

// Hemline scoring over the translated hem position: danger zones plus
// body-type modifiers.
func scoreHemline(in Input) outcome {
	g, b := in.Garment, in.Body
	hem := in.Detail.Hem
	if hem == nil {
		return notApplicable("no hem translation for this category")
	}

	out := applicableScore(0, fmt.Sprintf("hem %.1f\" from floor: %s", hem.HemFromFloor, hem.HemZone))

	switch hem.HemZone {
	case "above_knee", "above_knee_near":
		inchesAbove := hem.HemFromFloor - b.KneeFromFloor
		elongation := math.Min(inchesAbove*0.20, 0.60)
		if b.IsPetite() {
			elongation = math.Min(elongation+(63-b.Height)/50, 0.80)
			out.reasoning = append(out.reasoning, "petite above knee: amplified elongation")
		}
		if b.IsTall() && b.LegRatio() > 0.62 {
			elongation *= 0.65
			out.reasoning = append(out.reasoning, "tall with long legs: diminished benefit")
		}

		thighPenalty := 0.0
		switch {
		case b.ThighMax > 27:
			thighPenalty = -0.35
		case b.ThighMax > 24:
			thighPenalty = -0.20
		case b.ThighMax > 22:
			thighPenalty = -0.10
		}
		if b.GoalLegs == "showcase" {
			thighPenalty *= 0.5
		} else if b.GoalHip == "narrower" {
			thighPenalty *= 1.2
		}

		appleBonus := 0.0
		if b.Shape() == domain.ShapeApple {
			if b.ThighMax < 22 {
				appleBonus = 0.15
			} else if b.ThighMax < 24 {
				appleBonus = 0.08
			}
		}

		out.score = domain.Clamp(elongation+thighPenalty+appleBonus, -1, 1)
		return out

	case "knee_danger":
		score := -0.30
		if b.IsPetite() {
			score = -0.40
		}
		out.score = score
		out.reasoning = append(out.reasoning, "knee danger zone")
		return out

	case "safe_zone":
		score := 0.15
		if hem.SafeZone != nil && hem.SafeZoneSize > 0 {
			pos := (hem.SafeZone[1] - hem.HemFromFloor) / hem.SafeZoneSize
			if pos >= 0.25 && pos <= 0.75 {
				score = 0.30
			}
		}
		if b.IsTall() {
			score += 0.10
		}
		out.score = domain.Clamp(score, -1, 1)
		return out

	case "collapsed_zone":
		out.score = -0.20
		out.reasoning = append(out.reasoning, "collapsed safe zone")
		return out

	case "calf_danger":
		prom := b.CalfProminence()
		base := -0.35
		if prom > 1.3 {
			base = -0.50
		} else if prom > 1.2 {
			base = -0.42
		}
		if b.IsPetite() {
			base *= 1.15
		}
		out.score = domain.Clamp(base, -1, 1)
		out.reasoning = append(out.reasoning, "calf danger zone")
		return out

	case "below_calf":
		out.score = 0.15
		return out

	case "ankle":
		var score float64
		switch {
		case b.IsPetite():
			switch {
			case g.Silhouette == domain.SilhouetteOversized || g.Silhouette == domain.SilhouetteShift:
				score = -0.15
			case g.Silhouette == domain.SilhouetteFitted && g.WaistDefined():
				score = 0.40
			case g.Silhouette == domain.SilhouetteFitted:
				score = 0.15
			default:
				score = 0.10
			}
		case b.IsTall():
			score = 0.45
		default:
			score = 0.25
		}
		if b.Shape() == domain.ShapeHourglass && !g.WaistDefined() {
			score -= 0.15
		}
		out.score = domain.Clamp(score, -1, 1)
		return out

	case "floor":
		score := 0.05
		if b.IsTall() {
			score = 0.15
		} else if b.IsPetite() {
			score = -0.10
		}
		out.score = score
		return out
	}

	return notApplicable(fmt.Sprintf("unknown hem zone %q", hem.HemZone))
}

// Arm width scoring from the perceived-width model; the raw [-4, +5]
// band result is normalized to [-1, +1].
func scoreSleeve(in Input) outcome {
	g := in.Garment
	if g.SleeveType == domain.SleeveSleeveless {
		return notApplicable("sleeveless baseline")
	}
	sleeve := in.Detail.Sleeve
	if sleeve == nil {
		return notApplicable("no sleeve translation for this category")
	}

	delta := sleeve.DeltaVsActual
	severity := sleeve.ProminenceSeverity
	out := applicableScore(0, fmt.Sprintf(
		"sleeve endpoint %.1f\", delta=%+.2f\", severity=%.1f",
		sleeve.Endpoint, delta, severity))

	var score float64
	switch {
	case delta > 0.30:
		score = -4.0
	case delta > 0.15:
		score = -2.0
	case delta > 0:
		score = -1.0
	case delta > -0.30:
		score = 1.0
	case delta > -0.60:
		score = 3.0
	default:
		score = 5.0
	}

	if score < 0 {
		score *= severity
	} else {
		score *= 1 + (severity-1)*0.5
	}

	if g.SleeveType == domain.SleeveFlutter {
		score += 2.0
		out.reasoning = append(out.reasoning, "flutter: visual ambiguity bonus +2")
	}

	out.score = domain.Clamp(score/5.0, -1, 1)
	out.reasoning = append(out.reasoning, fmt.Sprintf("raw %+.1f normalized %+.2f", score, out.score))
	return out
}

// Golden-ratio waist placement with the empire and drop-waist edge cases.
func scoreWaistPlacement(in Input) outcome {
	g, b := in.Garment, in.Body
	if g.WaistPosition == "no_waist" || g.WaistPosition == "" {
		return notApplicable("no waist definition")
	}
	waist := in.Detail.Waist
	if waist == nil {
		return notApplicable("no waist translation for this category")
	}

	propScore := waist.ProportionScore
	out := applicableScore(0, fmt.Sprintf(
		"waist=%s: visual leg ratio %.3f, improvement %+.3f",
		g.WaistPosition, waist.VisualLegRatio, waist.ProportionImprovement))

	shape := b.Shape()

	if g.WaistPosition == "empire" && shape == domain.ShapeHourglass {
		stretch := g.ElastanePct * 1.6
		switch {
		case stretch > 10:
			propScore -= 0.10
			out.reasoning = append(out.reasoning, "empire on hourglass with stretch: mild shape loss")
		case g.Drape > 7:
			propScore -= 0.15
			out.reasoning = append(out.reasoning, "empire on hourglass, drapey: shape loss")
		default:
			propScore -= 0.30
			out.reasoning = append(out.reasoning, "empire on hourglass, stiff: significant shape loss")
		}
	}

	if g.WaistPosition == "empire" && b.BustDifferential() >= 6 {
		bustProj := b.BustDifferential() * 0.4
		if g.Drape < 4 {
			tentSeverity := bustProj * (1.0 - g.Drape/10.0)
			switch {
			case tentSeverity > 2.0:
				propScore -= 0.45
				out.reasoning = append(out.reasoning, "empire with large bust, stiff fabric: tent effect")
			case tentSeverity > 1.0:
				propScore -= 0.25
			default:
				propScore -= 0.10
			}
		}
	}

	if g.WaistPosition == "drop" {
		if b.LegRatio() < 0.55 {
			propScore -= 0.30
			out.reasoning = append(out.reasoning, "drop waist with short legs: proportion penalty")
		} else if b.LegRatio() < 0.58 {
			propScore -= 0.15
		}
	}

	if shape == domain.ShapeApple && g.WaistPosition == "natural" &&
		g.HasContrastingBelt && b.WHR() > 0.85 {
		if b.WHR() > 0.88 {
			propScore -= 0.30
		} else {
			propScore -= 0.15
		}
		out.reasoning = append(out.reasoning, "apple with belt at natural waist: spotlights widest")
	}

	out.score = domain.Clamp(propScore, -0.80, 0.80)
	return out
}

// Color lightness slimming on the 0-100 lightness scale.
func scoreColorValue(in Input) outcome {
	g, b := in.Garment, in.Body
	l := g.ColorLightness * 100

	var slimPct float64
	switch {
	case l <= 10:
		slimPct = 0.04
	case l <= 25:
		slimPct = 0.03
	case l <= 40:
		slimPct = 0.02
	case l <= 60:
		slimPct = 0.005
	case l <= 80:
		slimPct = -0.005
	default:
		slimPct = -0.01
	}
	slimScore := slimPct * 6.25
	out := applicableScore(0, fmt.Sprintf("color L=%.0f: slim %+0.3f", l, slimScore))

	shape := b.Shape()
	shapeLoss := 0.0
	if l <= 25 && shape == domain.ShapeHourglass {
		whd := b.Bust - b.Waist
		switch {
		case whd >= 8:
			shapeLoss = -0.30 * (1.0 - l/25)
		case whd >= 6:
			shapeLoss = -0.20 * (1.0 - l/25)
		default:
			shapeLoss = -0.10 * (1.0 - l/25)
		}
		out.reasoning = append(out.reasoning, fmt.Sprintf("hourglass dark shape loss %+.2f", shapeLoss))
	} else if l <= 25 && shape == domain.ShapeRectangle {
		shapeLoss = 0.05
		out.reasoning = append(out.reasoning, "rectangle dark: clean column bonus")
	}

	contrastMod := 0.0
	if l <= 15 && (g.Zone == "torso" || g.Zone == "full_body") {
		contrast := math.Abs(b.SkinToneL/100 - l/100)
		if contrast > 0.70 {
			contrastMod = -0.05
		} else if contrast < 0.30 {
			contrastMod = 0.05
		}
	}

	out.score = domain.Clamp(slimScore+shapeLoss+contrastMod, -1, 1)
	return out
}

// Per-zone fabric composite: weighted cling, structure, sheen and drape
// sub-scores with neutral placeholders for the remaining dimensions.
func scoreFabricZone(in Input) outcome {
	b := in.Body
	res := in.Resolved

	clingScore := 0.10
	if res.ClingRiskBase > 0.6 {
		clingScore = -0.20
		if b.IsPlusSize() || b.BellyZone > 0.5 {
			clingScore = -0.40
		}
	} else if res.ClingRiskBase > 0.3 {
		clingScore = -0.05
	}

	// Per-zone stretch demand can be worse than the fiber-level base risk
	// suggests. The worst offending zone sets the floor.
	worstCling := 0.0
	for _, chk := range res.ClingChecks {
		if chk.ExceedsThreshold && chk.Severity > worstCling {
			worstCling = chk.Severity
		}
	}
	if worstCling > 0 {
		clingScore = math.Min(clingScore, -0.20-0.30*worstCling)
	}
	if res.HasException("GATE_CLING_TRAP") {
		clingScore -= 0.10
	}

	structScore := 0.0
	switch {
	case res.IsStructured:
		structScore = 0.15
	case res.EffectiveGSM > 250:
		structScore = 0.08
	case res.EffectiveGSM < 100:
		structScore = -0.10
	}

	sheen := scoreMatteZone(in)

	drapeScore := 0.0
	switch dc := res.DrapeCoefficient; {
	case dc < 30:
		drapeScore = 0.10
	case dc < 50:
		drapeScore = 0.05
	case dc >= 70:
		drapeScore = -0.10
	}

	weighted := []struct {
		score, weight float64
	}{
		{clingScore, 0.30},
		{structScore, 0.20},
		{sheen.score, 0.15},
		{drapeScore, 0.10},
		{0, 0.08}, // color
		{0, 0.05}, // texture
		{0, 0.05}, // pattern
		{0, 0.04}, // silhouette
		{0, 0.03}, // construction
	}
	var total, totalW float64
	for _, sw := range weighted {
		total += sw.score * sw.weight
		totalW += sw.weight
	}

	return applicableScore(total/totalW, fmt.Sprintf(
		"fabric zone: stretch=%.1f%%, GSM=%.0f, sheen=%.2f",
		res.TotalStretchPct, res.EffectiveGSM, res.SheenScore))
}

// Neckline compound: bust dividing 40%, torso slimming 30%, upper body
// balance 30%.
func scoreNecklineCompound(in Input) outcome {
	g, b := in.Garment, in.Body
	neck := g.Neckline
	if neck != domain.NecklineVNeck && neck != domain.NecklineDeepV &&
		neck != domain.NecklineWrap && neck != domain.NecklineScoop {
		return notApplicable(fmt.Sprintf("neckline %q has no compound scoring", neck))
	}

	depth := 4.0
	if g.NecklineDepth != nil {
		depth = *g.NecklineDepth
	} else if g.VDepthCm > 0 {
		depth = g.VDepthCm / 2.54
	}

	bd := b.BustDifferential()
	threshold := in.Reg.BustDividingThreshold(bd)
	shape := b.Shape()

	effectiveDepth := depth + g.ElastanePct*0.01
	if shape == domain.ShapeHourglass && bd >= 6 {
		effectiveDepth += 0.75
	}
	if b.IsPlusSize() && bd >= 8 {
		effectiveDepth += 1.0
	}

	depthRatio := 1.0
	if threshold > 0 {
		depthRatio = effectiveDepth / threshold
	}

	var bustScore float64
	switch {
	case depthRatio < 0.60:
		bustScore = 0.30
	case depthRatio < 0.85:
		bustScore = 0.50
	case depthRatio < 1.0:
		switch b.GoalBust {
		case "enhance":
			bustScore = 0.70
		case "minimize":
			bustScore = -0.20
		default:
			bustScore = 0.30
		}
	case depthRatio < 1.15:
		switch b.GoalBust {
		case "enhance":
			bustScore = 0.30
		case "minimize":
			bustScore = -0.60
		default:
			bustScore = -0.15
		}
	default:
		switch b.GoalBust {
		case "enhance":
			bustScore = 0.10
		case "minimize":
			bustScore = -0.85
		default:
			bustScore = -0.35
		}
	}

	vWidth := g.VDepthCm * 0.8
	vAngle := 1.0
	if depth > 0 {
		vAngle = vWidth / depth
	}
	var torsoBase float64
	switch {
	case vAngle < 0.5:
		torsoBase = 0.25
	case vAngle < 1.0:
		torsoBase = 0.18
	case vAngle < 1.5:
		torsoBase = 0.10
	default:
		torsoBase = 0.05
	}
	if shape == domain.ShapeApple {
		torsoBase *= 1.30
	} else if shape == domain.ShapeRectangle {
		torsoBase *= 1.15
	}

	balance := 0.15
	switch shape {
	case domain.ShapeInvertedTriangle:
		balance = 0.45
	case domain.ShapePear:
		balance = 0.30
	case domain.ShapeRectangle:
		balance = 0.20
	case domain.ShapeHourglass:
		balance = 0.10
	}

	compound := bustScore*0.40 + torsoBase*0.30 + balance*0.30
	return applicableScore(compound, fmt.Sprintf(
		"bust depth=%.1f\" threshold=%.1f\" ratio=%.2f score=%+.2f",
		depth, threshold, depthRatio, bustScore),
		fmt.Sprintf("compound: bust %+.2f*0.4 + torso %+.2f*0.3 + balance %+.2f*0.3",
			bustScore, torsoBase, balance))
}
