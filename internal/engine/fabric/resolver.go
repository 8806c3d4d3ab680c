// Package fabric turns raw garment composition into behavioral properties
// and runs the gate rules that override baseline scoring paths.
package fabric

import (
	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/registry"
)

// Resolve converts raw fabric attributes into behavioral properties.
// Resolution never fails: unknown fabrics fall back to the garment's own
// stated attributes and registry defaults.
func Resolve(reg *registry.Registry, g domain.GarmentProfile) domain.FabricResolution {
	elastaneMult := reg.ElastaneMultiplier(string(g.Construction))
	totalStretch := g.ElastanePct * elastaneMult

	// A named fabric's typical stretch stands in when no elastane is stated.
	if g.FabricName != "" && g.ElastanePct == 0 {
		if data, ok := reg.FabricData(g.FabricName); ok && data.TypicalStretch > 0 {
			totalStretch = data.TypicalStretch
		}
	}

	effectiveGSM := g.GSMEstimated * reg.FiberGSMMultiplier(g.PrimaryFiber)
	sheen := reg.SheenIndex(string(g.Surface))
	drapeCoeff := g.Drape * 10.0

	gsmFactor := max(0, 1.0-effectiveGSM/300.0)
	frictionFactor := max(0, 1.0-g.SurfaceFriction)
	clingBase := min(1.0, (totalStretch/20.0+gsmFactor+frictionFactor)/3.0)

	return domain.FabricResolution{
		TotalStretchPct:  totalStretch,
		EffectiveGSM:     effectiveGSM,
		SheenScore:       sheen,
		DrapeCoefficient: drapeCoeff,
		ClingRiskBase:    clingBase,
		IsStructured:     g.IsStructured || g.HasLining,
		SurfaceFriction:  g.SurfaceFriction,
	}
}

// ComputeCling assesses whether the fabric's stretch budget covers a body
// zone. Demand above the curvature-scaled threshold means visible cling.
func ComputeCling(resolved domain.FabricResolution, zoneCirc, garmentRestCirc, curvatureRate float64) domain.ClingCheck {
	stretchRange := garmentRestCirc * (resolved.TotalStretchPct / 100.0)
	if stretchRange <= 0 {
		stretchRange = 0.01
	}

	demand := ((zoneCirc - garmentRestCirc) / stretchRange) * 100.0
	if demand < 0 {
		demand = 0
	}

	threshold := max(10, 62-26*curvatureRate)
	exceeds := demand > threshold

	severity := 0.0
	if exceeds && threshold > 0 {
		severity = min(1.0, (demand-threshold)/threshold)
	}

	return domain.ClingCheck{
		StretchDemandPct: demand,
		BaseThreshold:    threshold,
		ExceedsThreshold: exceeds,
		Severity:         severity,
	}
}

// ClingByZone runs the cling model over every body zone a close-cut garment
// wraps. Garments are cut against the reference photo model, so the rest
// circumference at each zone is the model's measurement plus the silhouette's
// fit expansion. Loose silhouettes never cling and get no checks.
func ClingByZone(resolved domain.FabricResolution, g domain.GarmentProfile, b domain.BodyProfile) map[string]domain.ClingCheck {
	if g.Silhouette != domain.SilhouetteFitted && g.Silhouette != domain.SilhouetteSemiFitted {
		return nil
	}

	type zoneDemand struct {
		circ      float64
		curvature float64
	}
	zones := map[string]zoneDemand{}

	coversTorso := g.Zone == "torso" || g.Zone == "full_body"
	if coversTorso && b.Bust > 0 {
		zones["bust"] = zoneDemand{b.Bust, domain.Clamp(b.BustDifferential()/8, 0, 1)}
	}
	if (coversTorso && g.CoversWaist || g.Zone == "lower") && b.Waist > 0 {
		zones["waist"] = zoneDemand{b.Waist, domain.Clamp(1-b.WHR(), 0, 1)}
	}
	if (g.CoversHips || g.Zone == "lower" || g.Zone == "full_body") && b.Hip > 0 {
		zones["hip"] = zoneDemand{b.Hip, domain.Clamp((b.Hip-b.Waist)/10, 0, 1)}
	}
	if len(zones) == 0 {
		return nil
	}

	checks := make(map[string]domain.ClingCheck, len(zones))
	for zone, zd := range zones {
		rest := refModel[zone] * (1 + g.ExpansionRate)
		checks[zone] = ComputeCling(resolved, zd.circ, rest, zd.curvature)
	}
	return checks
}

// Reference product-photo model measurements in inches.
var refModel = map[string]float64{
	"bust":      34.0,
	"waist":     25.0,
	"hip":       35.0,
	"upper_arm": 10.0,
	"thigh":     20.0,
}

var zoneGapCoefficients = map[string]float64{
	"bust":      0.08,
	"waist":     0.06,
	"hip":       0.10,
	"upper_arm": 0.04,
	"thigh":     0.07,
}

var brandPhotoMultipliers = map[domain.BrandTier]float64{
	domain.TierLuxury:      0.85,
	domain.TierPremium:     0.90,
	domain.TierMidMarket:   1.00,
	domain.TierMassMarket:  1.10,
	domain.TierFastFashion: 1.20,
}

// PhotoRealityDiscount estimates how differently the garment will read on
// the wearer versus the product photo model, from 0 (identical) to 0.55.
func PhotoRealityDiscount(g domain.GarmentProfile, b domain.BodyProfile) float64 {
	zones := map[string]float64{
		"bust":      b.Bust,
		"waist":     b.Waist,
		"hip":       b.Hip,
		"upper_arm": b.UpperArmMax,
		"thigh":     b.ThighMax,
	}

	totalGap := 0.0
	for zone, userCirc := range zones {
		gap := userCirc - refModel[zone]
		if gap < 0 {
			gap = -gap
		}
		coeff, ok := zoneGapCoefficients[zone]
		if !ok {
			coeff = 0.05
		}
		totalGap += gap * coeff
	}

	brandMult, ok := brandPhotoMultipliers[g.BrandTier]
	if !ok {
		brandMult = 1.0
	}
	return min(0.55, totalGap*brandMult)
}
