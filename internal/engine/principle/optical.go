package principle

import (
	"fmt"
	"math"

	"github.com/stylesense/fitcore/internal/core/domain"
)

// Helmholtz/Ashida stripe scoring with a zone split and width modifiers.
// The plus-size and apple reversals come from the registry table.
func scoreHorizontalStripes(in Input) outcome {
	g, b := in.Garment, in.Body
	if !g.HasHorizontalStripes && !g.HasVerticalStripes {
		return notApplicable("no stripes")
	}

	shape := b.Shape()

	if g.HasVerticalStripes && !g.HasHorizontalStripes {
		base := -0.05
		reason := "vertical stripes read ~5% wider than solid"
		if shape == domain.ShapeRectangle && g.Zone == "torso" {
			base = 0.03
			reason = "rectangle torso: vertical adds desired shoulder width"
		} else if shape == domain.ShapeInvertedTriangle && g.Zone == "lower_body" {
			base = -0.08
			reason = "inverted-triangle lower body: vertical thins narrow hips"
		}
		return applicableScore(base, reason)
	}

	out := applicableScore(0.03, "horizontal stripe base vs solid: +0.03")
	base := 0.03

	sizeMod := 0.0
	if b.IsPlusSize() {
		if _, ok := in.Reg.ReversalFor(HStripeThinning, "plus_size"); ok {
			sizeMod = -0.10
			out.reversed = true
			out.reasoning = append(out.reasoning, "plus size: stripe illusion nullifies and reverses")
		}
	} else if b.IsPetite() {
		sizeMod = 0.05
		out.reasoning = append(out.reasoning, "petite: stripe illusion amplified on small frames")
	}

	zoneMod := 0.0
	switch shape {
	case domain.ShapePear:
		if g.Zone == "torso" {
			zoneMod = 0.08
			out.reasoning = append(out.reasoning, "pear top: adds shoulder width")
		} else if g.Zone == "lower_body" {
			zoneMod = -0.05
			out.reasoning = append(out.reasoning, "pear bottom: attention to hip zone")
		}
	case domain.ShapeInvertedTriangle:
		if g.Zone == "torso" {
			zoneMod = -0.12
			out.reasoning = append(out.reasoning, "inverted-triangle top: attention to broad shoulders")
		} else if g.Zone == "lower_body" {
			zoneMod = 0.10
			out.reasoning = append(out.reasoning, "inverted-triangle bottom: adds hip volume")
		}
	case domain.ShapeApple:
		if g.CoversWaist {
			if _, ok := in.Reg.ReversalFor(HStripeThinning, "apple"); ok {
				zoneMod = -0.05
				out.reversed = true
				out.reasoning = append(out.reasoning, "apple midsection: width emphasis")
			}
		}
	case domain.ShapeRectangle:
		zoneMod = 0.05
		out.reasoning = append(out.reasoning, "rectangle: adds visual interest")
	case domain.ShapeHourglass:
		zoneMod = 0.03
	}

	swMod := 0.0
	if g.StripeWidthCm > 0 {
		if g.StripeWidthCm < 1.0 {
			swMod = 0.03
			out.reasoning = append(out.reasoning, "fine stripes: stronger illusion")
		} else if g.StripeWidthCm > 2.0 && b.IsPlusSize() {
			swMod = -0.05
			out.reasoning = append(out.reasoning, "wide stripes on plus: measurement markers")
		}
	}

	lumMod := 0.0
	if g.IsDark() {
		lumMod = 0.04
		out.reasoning = append(out.reasoning, "dark horizontal stripes: luminance bonus")
	}

	out.score = domain.Clamp(base+sizeMod+zoneMod+swMod+lumMod, -1, 1)
	return out
}

// Irradiation illusion with a skin-tone gate and sheen override.
func scoreDarkSlimming(in Input) outcome {
	g, b := in.Garment, in.Body
	l := g.ColorLightness

	if l > 0.65 {
		penalty := -0.05 * ((l - 0.65) / 0.35)
		return applicableScore(penalty, fmt.Sprintf("light color (L=%.2f): slight expansion", l))
	}
	if l >= 0.25 {
		benefit := 0.15 * (1 - (l-0.10)/0.55)
		if benefit < 0 {
			benefit = 0
		}
		return applicableScore(benefit, fmt.Sprintf("mid color (L=%.2f): proportional benefit", l))
	}

	out := applicableScore(0, fmt.Sprintf("dark color (L=%.2f): base slimming +0.15", l))
	base := 0.15
	shape := b.Shape()

	btMult := 1.0
	switch {
	case b.IsPetite() && g.Zone == "full_body":
		btMult = 0.6
		out.reasoning = append(out.reasoning, "petite all-dark: height collapse x0.6")
	case b.IsPetite():
		btMult = 0.9
	case b.IsTall():
		btMult = 1.2
		out.reasoning = append(out.reasoning, "tall: amplified lean silhouette x1.2")
	case shape == domain.ShapeInvertedTriangle && g.Zone == "torso":
		btMult = 1.4
		out.reasoning = append(out.reasoning, "inverted-triangle upper body: maximum shoulder reduction x1.4")
	case shape == domain.ShapeHourglass:
		btMult = 0.7
		out.reasoning = append(out.reasoning, "hourglass: dark flattens curves x0.7")
	}

	skinMult := 1.0
	if g.Zone == "torso" || g.Zone == "full_body" {
		if b.SkinUndertone == domain.UndertoneWarm {
			sallow := math.Max(0, 1.0-l/0.22)
			skinMult = 1.0 - sallow
			out.reasoning = append(out.reasoning, fmt.Sprintf("warm undertone near face: sallow x%.2f", sallow))
			if skinMult < 0.3 {
				out.reasoning = append(out.reasoning, "suggest dark chocolate brown or burgundy instead")
			}
		} else if b.SkinDarkness > 0.7 {
			skinMult = 0.5
			out.reasoning = append(out.reasoning, "dark skin with dark garment: low contrast x0.5")
		}
	}

	sheenPenalty := 0.0
	if in.Resolved.SheenScore > 0.5 {
		sheenPenalty = -0.15 * ((in.Resolved.SheenScore - 0.5) / 0.5)
		if shape == domain.ShapeApple || b.IsPlusSize() {
			sheenPenalty *= 1.5
			out.reasoning = append(out.reasoning, "apple/plus with high sheen: amplified specular penalty")
		}
		out.reasoning = append(out.reasoning, fmt.Sprintf("high sheen (SI=%.2f): specular invert", in.Resolved.SheenScore))
	}

	out.score = domain.Clamp(base*btMult*math.Max(skinMult, 0)+sheenPenalty, -1, 1)
	return out
}

// Rise elongation with a waistband gate; the petite short-torso inversion
// is a registry reversal.
func scoreRiseElongation(in Input) outcome {
	g, b := in.Garment, in.Body
	if g.RiseCm == nil {
		return notApplicable("no rise data")
	}

	const midRise = 20.0
	rise := *g.RiseCm
	base := domain.Clamp((rise-midRise)*0.015, -0.20, 0.20)
	out := applicableScore(0, fmt.Sprintf("rise %.0fcm: base %+.3f", rise, base))
	shape := b.Shape()

	if b.IsPetite() {
		if b.TorsoScore() <= -1.0 && rise > 26 {
			if _, ok := in.Reg.ReversalFor(RiseElongation, "petite_short_torso"); ok {
				out.score = -0.30
				out.reversed = true
				out.reasoning = append(out.reasoning, "petite short torso with high rise: inverted")
				return out
			}
		}
		if b.TorsoScore() >= 1.0 {
			base *= 1.5
			out.reasoning = append(out.reasoning, "petite long torso: amplified x1.5")
		} else {
			base *= 1.3
			out.reasoning = append(out.reasoning, "petite proportional: amplified x1.3")
		}
	}

	if b.IsTall() {
		base *= 0.5
		out.reasoning = append(out.reasoning, "tall: diminishing returns x0.5")
	}

	if (shape == domain.ShapeApple || b.IsPlusSize()) && b.BellyZone > 0.3 {
		if g.WaistbandWidthCm >= 5.0 && g.WaistbandStretchPct >= 8.0 {
			base += 0.10
			out.reasoning = append(out.reasoning, "wide elastic waistband: smooth containment +0.10")
		} else if g.WaistbandWidthCm < 3.0 && g.WaistbandStretchPct < 5.0 {
			out.score = -0.25
			out.reasoning = append(out.reasoning, "narrow rigid waistband: muffin top -0.25")
			return out
		}
	}

	if shape == domain.ShapeHourglass && rise > 24 {
		base += 0.03
	}
	if shape == domain.ShapeInvertedTriangle && rise > 26 && g.ExpansionRate < 0.03 {
		base *= 0.6
		out.reasoning = append(out.reasoning, "inverted triangle with high rise and slim leg x0.6")
	}

	out.score = domain.Clamp(base, -1, 1)
	return out
}

// A-line balance with a drape gate and stiff-fabric shelf inversion.
func scoreALineBalance(in Input) outcome {
	g, b := in.Garment, in.Body
	er := g.ExpansionRate
	if er < 0.03 {
		return notApplicable(fmt.Sprintf("ER=%.2f below A-line range", er))
	}

	var base float64
	switch {
	case er <= 0.06:
		base = 0.10 + (er-0.03)*(0.15/0.03)
	case er <= 0.12:
		base = 0.25
	case er <= 0.18:
		base = 0.25 - (er-0.12)*(0.15/0.06)
	default:
		base = math.Max(-0.10, 0.10-(er-0.18)*(0.10/0.12))
	}
	out := applicableScore(0, fmt.Sprintf("ER=%.2f: base A-line %+.2f", er, base))

	dc := in.Resolved.DrapeCoefficient
	drapeMult := 1.0
	switch {
	case dc < 40:
		out.reasoning = append(out.reasoning, fmt.Sprintf("DC=%.0f%% drapey: full benefit", dc))
	case dc < 65:
		drapeMult = 0.7
		out.reasoning = append(out.reasoning, fmt.Sprintf("DC=%.0f%% medium: x0.7", dc))
	default:
		drapeMult = -0.5
		out.reasoning = append(out.reasoning, fmt.Sprintf("DC=%.0f%% stiff: shelf inversion", dc))
	}

	shape := b.Shape()
	btMod := 0.0
	switch {
	case shape == domain.ShapeInvertedTriangle:
		btMod = 0.15
		out.reasoning = append(out.reasoning, "inverted triangle: maximum A-line benefit")
	case b.IsTall():
		btMod = 0.10
	case b.IsPetite():
		if er > 0.12 {
			btMod = -0.15
			out.reasoning = append(out.reasoning, "petite: volume overwhelms frame")
		} else {
			btMod = 0.05
		}
	case shape == domain.ShapeHourglass, shape == domain.ShapePear:
		btMod = 0.05
	case shape == domain.ShapeApple:
		btMod = 0.03
	}

	if b.IsPlusSize() && drapeMult < 0 {
		drapeMult *= 1.5
		out.reasoning = append(out.reasoning, "plus with stiff A-line: shelf amplified")
	}

	hemMod := 0.0
	if shape == domain.ShapePear {
		switch g.HemPosition {
		case "mid_thigh":
			hemMod = -0.10
		case "knee":
			hemMod = 0.05
		}
	}

	out.score = domain.Clamp(base*math.Max(drapeMult, -1.0)+btMod+hemMod, -1, 1)
	return out
}

// Tent concealment with the dual-goal split. The hourglass, petite and
// plus-size reversals come from the registry table.
func scoreTentConcealment(in Input) outcome {
	g, b := in.Garment, in.Body
	er := g.ExpansionRate
	shape := b.Shape()

	if er >= 0.03 && er <= 0.08 {
		score := 0.15
		out := applicableScore(0, fmt.Sprintf("ER=%.2f: semi-fitted optimal", er))
		if shape == domain.ShapeHourglass {
			score = 0.05
			out.reasoning = append(out.reasoning, "hourglass: semi-fitted slightly masks curves")
		}
		if b.IsPlusSize() && g.IsStructured {
			score = 0.20
			out.reasoning = append(out.reasoning, "plus with structured semi-fitted: smooth containment")
		}
		out.score = score
		return out
	}
	if er < 0.12 {
		return notApplicable(fmt.Sprintf("ER=%.2f not tent", er))
	}

	hasConcealment := b.HasGoal(domain.GoalConcealment) || b.HasGoal(domain.GoalHideMidsection)
	hasSlimming := b.HasGoal(domain.GoalSlimming) || b.HasGoal(domain.GoalSlimHips)

	var base float64
	var out outcome
	switch {
	case hasConcealment && !hasSlimming:
		base = 0.25
		if er > 0.20 {
			base = 0.35
		}
		out = applicableScore(0, fmt.Sprintf("concealment goal: excellent hiding %+.2f", base))
	case hasSlimming && !hasConcealment:
		base = -0.20
		if er > 0.20 {
			base = -0.40
		}
		out = applicableScore(0, fmt.Sprintf("slimming goal: perceived bigger %+.2f", base))
		out.reasoning = append(out.reasoning, "concealment paradox: hides contours but amplifies size")
	default:
		concealment, slimming := 0.25, -0.20
		if er > 0.20 {
			concealment, slimming = 0.35, -0.40
		}
		base = concealment*0.3 + slimming*0.7
		out = applicableScore(0, fmt.Sprintf("balanced goals: weighted toward slimming %+.2f", base))
	}

	btMod := 0.0
	switch {
	case shape == domain.ShapeHourglass:
		if _, ok := in.Reg.ReversalFor(TentConcealment, "hourglass"); ok {
			btMod = -0.20
			out.reversed = true
			out.reasoning = append(out.reasoning, "hourglass reversal: tent destroys waist-hip ratio")
		}
	case b.IsPetite():
		if _, ok := in.Reg.ReversalFor(TentConcealment, "petite"); ok {
			btMod = -0.15
			out.reversed = true
			out.reasoning = append(out.reasoning, "petite reversal: fabric overwhelms frame")
		}
	case b.IsPlusSize():
		if _, ok := in.Reg.ReversalFor(TentConcealment, "plus_size"); ok {
			btMod = -0.10
			out.reversed = true
			out.reasoning = append(out.reasoning, "plus reversal: maximum size overestimate")
		}
	case shape == domain.ShapeInvertedTriangle:
		btMod = -0.10
		out.reasoning = append(out.reasoning, "inverted triangle: lampshade from shoulders")
	case b.IsTall():
		btMod = 0.10
	case shape == domain.ShapeRectangle:
		btMod = 0.05
	}

	out.score = domain.Clamp(base+btMod, -1, 1)
	return out
}

// Belt and color break; the hourglass reversal comes from the registry.
func scoreColorBreak(in Input) outcome {
	g, b := in.Garment, in.Body
	if !g.HasContrastingBelt && !g.HasTonalBelt {
		return notApplicable("no belt or break")
	}
	if g.HasTonalBelt && !g.HasContrastingBelt {
		return applicableScore(-0.03, "tonal belt: mild break")
	}

	shape := b.Shape()
	out := applicableScore(0, "contrasting belt: base leg shortening -0.10")
	base := -0.10

	if shape == domain.ShapeHourglass {
		if _, ok := in.Reg.ReversalFor(ColorBreak, "hourglass"); ok {
			score := 0.20
			if g.BeltWidthCm >= 5 {
				score = 0.25
			}
			out.score = score
			out.reversed = true
			out.reasoning = append(out.reasoning, "hourglass reversal: belt highlights waist")
			return out
		}
	}

	switch {
	case b.IsPetite():
		base *= 1.5
		out.reasoning = append(out.reasoning, "petite: cannot afford shortening x1.5")
	case shape == domain.ShapeApple:
		base = -0.25
		out.reasoning = append(out.reasoning, "apple: belt spotlights widest zone")
	case b.IsTall():
		base *= 0.3
	case shape == domain.ShapeInvertedTriangle:
		base = 0.08
		out.reasoning = append(out.reasoning, "inverted triangle: draws eye to waist")
	case shape == domain.ShapeRectangle:
		base = 0.05
		out.reasoning = append(out.reasoning, "rectangle: creates waist definition")
	case shape == domain.ShapePear:
		if b.WHR() < 0.75 {
			base = 0.05
			out.reasoning = append(out.reasoning, fmt.Sprintf("pear with narrow waist (WHR=%.2f)", b.WHR()))
		} else {
			base = -0.10
		}
	}

	if b.IsPlusSize() {
		if b.BellyZone > 0.5 {
			base = math.Min(base, -0.20)
			out.reasoning = append(out.reasoning, "plus with belly: belt at widest")
		} else if b.BellyZone < 0.2 {
			base = math.Max(base, 0.05)
		}
	}

	out.score = domain.Clamp(base, -1, 1)
	return out
}

// Bodycon contour mapping with a fabric construction gate; hourglass
// reversal from the registry.
func scoreBodyconMapping(in Input) outcome {
	g, b := in.Garment, in.Body
	if g.ExpansionRate > 0.03 {
		return notApplicable(fmt.Sprintf("ER=%.2f not bodycon", g.ExpansionRate))
	}

	isThin := g.GSMEstimated < 200 && !g.IsStructured
	isStructured := g.GSMEstimated >= 250 || g.IsStructured
	shape := b.Shape()

	if shape == domain.ShapeHourglass {
		if _, ok := in.Reg.ReversalFor(BodyconMapping, "hourglass"); ok {
			score := 0.30
			if isStructured {
				score = 0.35
			}
			out := applicableScore(0, "hourglass reversal: bodycon maps the best feature")
			out.reversed = true
			if b.BellyZone > 0.5 {
				score -= 0.15
				out.reasoning = append(out.reasoning, "belly concern offset -0.15")
			}
			out.score = score
			return out
		}
	}

	switch shape {
	case domain.ShapeApple:
		if b.IsAthletic {
			return applicableScore(0.20, "athletic apple: showcases tone")
		}
		if isThin {
			return applicableScore(-0.40, "apple with thin bodycon")
		}
		return applicableScore(-0.12, "apple with structured bodycon")
	case domain.ShapePear:
		if isThin {
			return applicableScore(-0.30, "pear with thin bodycon")
		}
		return applicableScore(-0.09, "pear with structured bodycon")
	}

	if b.IsPlusSize() {
		if isThin {
			return applicableScore(-0.40, "plus with thin bodycon")
		}
		return applicableScore(-0.05, "plus with structured bodycon: sculpts")
	}

	if shape == domain.ShapeInvertedTriangle {
		score := -0.10
		switch g.Zone {
		case "full_body":
			score = -0.15
		case "lower_body":
			score = -0.05
		}
		return applicableScore(score, fmt.Sprintf("inverted-triangle bodycon %s", g.Zone))
	}
	if shape == domain.ShapeRectangle {
		return applicableScore(0, "rectangle bodycon: neutral")
	}
	return applicableScore(-0.10, "default bodycon: mild penalty")
}

// Matte zone benefit with a cling trap override; the hourglass moderate
// sheen exception is a registry reversal.
func scoreMatteZone(in Input) outcome {
	g, b := in.Garment, in.Body
	si := in.Resolved.SheenScore

	var base float64
	var out outcome
	switch {
	case si < 0.15:
		base = 0.08
		out = applicableScore(0, fmt.Sprintf("deeply matte (SI=%.2f): +0.08", si))
	case si < 0.35:
		base = 0.08 * (1 - (si-0.15)/0.20)
		out = applicableScore(0, fmt.Sprintf("low sheen (SI=%.2f)", si))
	case si <= 0.50:
		out = applicableScore(0, fmt.Sprintf("neutral sheen (SI=%.2f)", si))
	default:
		base = -0.10 * ((si - 0.50) / 0.50)
		out = applicableScore(0, fmt.Sprintf("high sheen (SI=%.2f)", si))
	}

	shape := b.Shape()
	btMult := 1.0
	switch {
	case shape == domain.ShapeApple:
		btMult = 1.5
	case b.IsPlusSize():
		btMult = 1.5
	case shape == domain.ShapePear && (g.Zone == "lower_body" || g.Zone == "full_body"):
		btMult = 1.3
	case shape == domain.ShapeHourglass:
		btMult = 0.5
		if si > 0.35 && si < 0.55 {
			if _, ok := in.Reg.ReversalFor(MatteZone, "hourglass"); ok {
				base = 0.05
				out.reversed = true
				out.reasoning = append(out.reasoning, "hourglass with moderate sheen: curves enhanced")
			}
		}
	case shape == domain.ShapeInvertedTriangle && g.Zone == "torso":
		btMult = 1.2
	}

	if in.Resolved.ClingRiskBase > 0.6 && si < 0.30 {
		switch {
		case b.IsPlusSize():
			return applicableScore(-0.15, "cling trap: matte and clingy on plus")
		case shape == domain.ShapePear:
			return applicableScore(-0.10, "cling trap: matte and clingy on pear")
		case shape == domain.ShapeApple:
			return applicableScore(-0.12, "cling trap: matte and clingy on apple")
		}
	}

	out.score = domain.Clamp(base*btMult, -1, 1)
	return out
}

// V-neck elongation with the cross-garment neckline x rise interaction.
func scoreVNeckElongation(in Input) outcome {
	g, b := in.Garment, in.Body
	neck := g.Neckline
	shape := b.Shape()

	if neck != domain.NecklineVNeck && neck != domain.NecklineDeepV {
		switch neck {
		case domain.NecklineCrew:
			return applicableScore(0, "crew neck: neutral")
		case domain.NecklineBoat, domain.NecklineOffShoulder:
			switch shape {
			case domain.ShapeInvertedTriangle:
				return applicableScore(-0.15, "boat/off-shoulder on inverted triangle: widens shoulders")
			case domain.ShapeRectangle:
				return applicableScore(0.08, "boat on rectangle: adds width")
			case domain.ShapePear:
				return applicableScore(0.05, "boat on pear: shoulder balance")
			}
			return applicableScore(0, fmt.Sprintf("neckline %q: neutral", neck))
		case domain.NecklineScoop:
			if shape == domain.ShapeInvertedTriangle {
				return applicableScore(0.08, "scoop: mild elongation")
			}
			return applicableScore(0.05, "scoop: mild elongation")
		case domain.NecklineTurtleneck:
			if shape == domain.ShapeInvertedTriangle {
				return applicableScore(-0.05, "turtleneck on inverted triangle: upper mass")
			}
			if b.IsPetite() && b.TorsoScore() <= -1.0 {
				return applicableScore(0.10, "turtleneck on petite short torso: keeps the eye up")
			}
			return applicableScore(0, "turtleneck: neutral")
		case domain.NecklineWrap:
			return applicableScore(0.08, "wrap neckline: mild V effect")
		}
		return notApplicable(fmt.Sprintf("neckline %q not scored", neck))
	}

	base := 0.10
	out := applicableScore(0, "v-neck: base elongation +0.10")
	switch {
	case shape == domain.ShapeInvertedTriangle:
		base = 0.18
		out.reasoning = append(out.reasoning, "inverted triangle: narrows the shoulder line")
	case shape == domain.ShapeHourglass:
		base = 0.12
	case b.IsPetite():
		if b.TorsoScore() <= -1.0 {
			if g.RiseCm != nil && *g.RiseCm > 26 {
				base = -0.05
				out.reasoning = append(out.reasoning, "petite short torso, V with high rise: conflict")
			} else {
				base = 0.15
				out.reasoning = append(out.reasoning, "petite short torso, V with mid rise: harmonious")
			}
		} else {
			base = 0.12
		}
	case shape == domain.ShapeApple:
		base = 0.10
		out.reasoning = append(out.reasoning, "apple: eye to face, away from belly")
	case b.IsTall():
		base = 0.05
	case shape == domain.ShapePear:
		base = 0.10
	}

	depth := 0.0
	if g.NecklineDepth != nil {
		depth = *g.NecklineDepth
	} else if g.VDepthCm > 0 {
		depth = g.VDepthCm / 2.54
	}
	if depth > 0 {
		if rng, ok := in.Reg.OptimalVDepth(vDepthTag(b)); ok {
			switch {
			case depth > rng.Max:
				base -= 0.05
				out.reasoning = append(out.reasoning, fmt.Sprintf(
					"V depth %.1f\" past the %.1f-%.1f\" window", depth, rng.Min, rng.Max))
			case depth < rng.Min:
				base -= 0.03
				out.reasoning = append(out.reasoning, fmt.Sprintf(
					"V depth %.1f\" short of the %.1f-%.1f\" window: elongation muted",
					depth, rng.Min, rng.Max))
			case math.Abs(depth-rng.Optimal) <= 0.5:
				base += 0.05
				out.reasoning = append(out.reasoning, fmt.Sprintf(
					"V depth %.1f\" at the optimal %.1f\"", depth, rng.Optimal))
			}
		}
	}

	out.score = domain.Clamp(base, -1, 1)
	return out
}

// vDepthTag picks the neckline-depth window row for this body. Bust-heavy
// and petite frames take precedence over the plain shape rows.
func vDepthTag(b domain.BodyProfile) string {
	bd := b.BustDifferential()
	switch {
	case b.IsPlusSize() && bd >= 6:
		return "plus_size_large_bust"
	case b.Shape() == domain.ShapeHourglass && bd >= 7:
		return "hourglass_dd_plus"
	case b.IsPetite():
		return "petite"
	case b.IsTall():
		return "tall"
	}
	return string(b.Shape())
}

// Monochrome column elongation.
func scoreMonochromeColumn(in Input) outcome {
	g, b := in.Garment, in.Body
	if !g.IsMonochromeOutfit {
		return notApplicable("not monochrome")
	}

	base := 0.08
	darkBonus := 0.0
	if g.IsDark() {
		darkBonus = 0.07
	}
	shape := b.Shape()
	out := applicableScore(0, "monochrome column base +0.08")

	switch {
	case b.IsPetite():
		base = 0.15
		out.reasoning = append(out.reasoning, "petite: monochrome amplified")
	case b.IsTall():
		base = 0.03
	case shape == domain.ShapeHourglass:
		base = 0.03
		if g.HasContrastingBelt || g.HasTonalBelt {
			base = 0.12
			out.reasoning = append(out.reasoning, "hourglass monochrome with belt: best of both")
		}
	case shape == domain.ShapeInvertedTriangle:
		base = 0.05
	case shape == domain.ShapeApple:
		base = 0.08
	case shape == domain.ShapePear:
		base = 0.05
		if g.ColorLightness < 0.30 {
			base = 0.12
		}
	case b.IsPlusSize():
		base = 0.10
	}

	if b.IsPlusSize() && g.IsDark() {
		darkBonus = math.Max(darkBonus, 0.08)
		out.reasoning = append(out.reasoning, "plus with dark monochrome: most reliable combo")
	}

	out.score = domain.Clamp(base+darkBonus, -1, 1)
	return out
}
