package translate

import (
	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/fabric"
	"github.com/stylesense/fitcore/internal/engine/registry"
)

var hemCategories = map[domain.GarmentCategory]bool{
	domain.CategoryDress:    true,
	domain.CategorySkirt:    true,
	domain.CategoryJumpsuit: true,
	domain.CategoryRomper:   true,
	domain.CategoryCoat:     true,
}

var sleeveCategories = map[domain.GarmentCategory]bool{
	domain.CategoryDress:        true,
	domain.CategoryTop:          true,
	domain.CategoryJumpsuit:     true,
	domain.CategoryRomper:       true,
	domain.CategoryJacket:       true,
	domain.CategoryCoat:         true,
	domain.CategorySweatshirt:   true,
	domain.CategoryCardigan:     true,
	domain.CategoryBodysuit:     true,
	domain.CategoryLoungewear:   true,
	domain.CategoryActivewear:   true,
	domain.CategorySaree:        true,
	domain.CategorySalwarKameez: true,
	domain.CategoryLehenga:      true,
}

var waistCategories = map[domain.GarmentCategory]bool{
	domain.CategoryDress:        true,
	domain.CategoryJumpsuit:     true,
	domain.CategoryRomper:       true,
	domain.CategoryCoat:         true,
	domain.CategoryBottomPants:  true,
	domain.CategoryBottomShorts: true,
	domain.CategorySkirt:        true,
}

// Detail carries the full per-part translation results for the scorers.
// A nil part means the garment's category does not interact with that
// body region.
type Detail struct {
	Hem    *HemlineResult
	Sleeve *SleeveResult
	Waist  *WaistlineResult
}

// Garment runs the translations relevant to the garment's category and
// folds in the fabric resolution. Categories without a leg-interacting hem
// or without sleeves skip those translations.
func Garment(reg *registry.Registry, g domain.GarmentProfile, b domain.BodyProfile, resolved domain.FabricResolution) (domain.Translation, Detail) {
	out := domain.Translation{
		VisualLegRatio:       registry.GoldenRatio,
		TotalStretchPct:      resolved.TotalStretchPct,
		EffectiveGSM:         resolved.EffectiveGSM,
		SheenScore:           resolved.SheenScore,
		PhotoRealityDiscount: fabric.PhotoRealityDiscount(g, b),
	}

	var detail Detail

	if hemCategories[g.Category] {
		hem := Hemline(g, b)
		detail.Hem = &hem
		out.HemFromFloor = hem.HemFromFloor
		out.HemZone = hem.HemZone
		out.DangerZones = hem.DangerZones
		out.FabricRiseAdjust = hem.FabricRise
	}

	if sleeveCategories[g.Category] {
		sleeve := Sleeve(reg, g, b)
		detail.Sleeve = &sleeve
		out.SleeveEndpoint = sleeve.Endpoint
		out.PerceivedArmWidth = sleeve.PerceivedWidth
		out.ArmWidthDelta = sleeve.DeltaVsActual
		out.ArmSeverity = sleeve.ProminenceSeverity
	} else {
		out.ArmSeverity = 0.5
	}

	if waistCategories[g.Category] {
		waist := Waistline(reg, g, b)
		detail.Waist = &waist
		out.VisualWaistHeight = waist.VisualWaistHeight
		out.VisualLegRatio = waist.VisualLegRatio
		out.ProportionImprovement = waist.ProportionImprovement
	}

	// Footwear shifts the leg ratio on top of whatever the waist seam did.
	if g.HeelHeightIn > 0 || g.NudeShoe || g.ContrastShoe {
		legs, height := ProportionShift(b, g.HeelHeightIn, g.NudeShoe, g.ContrastShoe)
		if height > 0 {
			out.VisualLegRatio += legs/height - b.LegRatio()
		}
	}

	return out, detail
}
