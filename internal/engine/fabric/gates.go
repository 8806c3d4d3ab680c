package fabric

import (
	"fmt"

	"github.com/stylesense/fitcore/internal/core/domain"
)

// RunGates evaluates the six gate rules in a fixed order and returns the
// resolution with triggered exceptions appended. Exceptions accumulate;
// a later gate sees, and never rewrites, what an earlier gate recorded.
func RunGates(g domain.GarmentProfile, b domain.BodyProfile, resolved domain.FabricResolution) domain.FabricResolution {
	out := resolved

	// Dark plus shiny: sheen amplifies contours and eats the slimming benefit.
	if g.IsDark() && resolved.SheenScore > 0.50 {
		out.Exceptions = append(out.Exceptions, domain.Exception{
			ID:             "GATE_DARK_SHINY",
			RuleOverridden: "dark_slimming",
			Reason: fmt.Sprintf(
				"dark (L=%.2f) with high sheen (SI=%.2f): sheen amplifies body contours, partially negating dark slimming",
				g.ColorLightness, resolved.SheenScore),
			Confidence: 0.80,
		})
	}

	// Stiff A-line holds its own shape and shelves at the hips.
	if g.Silhouette == domain.SilhouetteALine && resolved.DrapeCoefficient >= 65 {
		out.Exceptions = append(out.Exceptions, domain.Exception{
			ID:             "GATE_ALINE_SHELF",
			RuleOverridden: "a_line_balance",
			Reason: fmt.Sprintf(
				"a-line with stiff fabric (DC=%.0f%%): fabric will not drape, creates shelf effect at hips",
				resolved.DrapeCoefficient),
			Confidence: 0.82,
		})
	}

	// Wrap neckline gaps open on a large bust when the fabric is slippery.
	if g.Neckline == domain.NecklineWrap && b.BustDifferential() >= 6 && resolved.SurfaceFriction < 0.3 {
		out.Exceptions = append(out.Exceptions, domain.Exception{
			ID:             "GATE_WRAP_GAPPING",
			RuleOverridden: "wrap_neckline",
			Reason: fmt.Sprintf(
				"wrap neckline with large bust (BD=%.1f\") and slippery fabric (friction=%.2f): high gaping risk",
				b.BustDifferential(), resolved.SurfaceFriction),
			Confidence: 0.75,
		})
	}

	// Structured construction sculpts; downstream negatives keep only 30%.
	if resolved.IsStructured {
		out.Exceptions = append(out.Exceptions, domain.Exception{
			ID:             "GATE_STRUCTURED",
			RuleOverridden: "negative_penalties",
			Reason:         "structured garment (boning/lining): negative penalties reduced ~70%, construction provides body sculpting",
			Confidence:     0.85,
		})
	}

	// Fluid fabric over a belly concern clings to the contour it should skim.
	if resolved.DrapeCoefficient > 60 && b.BellyZone > 0.3 &&
		g.Silhouette != domain.SilhouetteFitted && g.Silhouette != domain.SilhouetteSemiFitted {
		out.Exceptions = append(out.Exceptions, domain.Exception{
			ID:             "GATE_FLUID_APPLE_BELLY",
			RuleOverridden: "tent_concealment",
			Reason: fmt.Sprintf(
				"fluid fabric (DC=%.0f%%) on belly concern zone (%.2f): fabric clings to belly contour instead of skimming",
				resolved.DrapeCoefficient, b.BellyZone),
			Confidence: 0.72,
		})
	}

	// Matte but clingy is a trap on pronounced curves.
	if resolved.SheenScore < 0.30 && resolved.ClingRiskBase > 0.6 &&
		(b.IsPlusSize() || b.HipZone > 0.5 || b.BellyZone > 0.5) {
		out.Exceptions = append(out.Exceptions, domain.Exception{
			ID:             "GATE_CLING_TRAP",
			RuleOverridden: "matte_zone",
			Reason: fmt.Sprintf(
				"matte (SI=%.2f) but clingy (cling=%.2f): second-skin effect on curves overrides the matte benefit",
				resolved.SheenScore, resolved.ClingRiskBase),
			Confidence: 0.78,
		})
	}

	return out
}
