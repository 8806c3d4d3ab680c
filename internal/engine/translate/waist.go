package translate

import (
	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/registry"
)

// WaistlineResult is the perceived-proportion shift from the waist seam.
type WaistlineResult struct {
	VisualWaistHeight     float64
	VisualLegRatio        float64
	ProportionImprovement float64
	ProportionScore       float64
	PositionLabel         string
}

// Waistline computes the visual waist position and golden-ratio
// improvement. About 25% of the physical seam shift registers visually;
// the improvement maps to a score at x8, clamped to ±0.80.
func Waistline(reg *registry.Registry, g domain.GarmentProfile, b domain.BodyProfile) WaistlineResult {
	visualWaistFromShoulder := b.TorsoLength
	if mult, ok := reg.WaistMultiplier(g.WaistPosition); ok {
		visualWaistFromShoulder = b.TorsoLength * mult
	}

	shift := b.TorsoLength - visualWaistFromShoulder
	perceptualShift := shift * 0.25
	visualLegLength := b.LegLengthVisual + perceptualShift
	visualWaistHeight := b.Height - b.TorsoLength + perceptualShift

	visualLegRatio := registry.GoldenRatio
	if b.Height > 0 {
		visualLegRatio = visualLegLength / b.Height
	}

	deviationBefore := abs(b.LegRatio() - registry.GoldenRatio)
	deviationAfter := abs(visualLegRatio - registry.GoldenRatio)
	improvement := deviationBefore - deviationAfter

	return WaistlineResult{
		VisualWaistHeight:     visualWaistHeight,
		VisualLegRatio:        visualLegRatio,
		ProportionImprovement: improvement,
		ProportionScore:       domain.Clamp(improvement*8.0, -0.80, 0.80),
		PositionLabel:         g.WaistPosition,
	}
}

// heelEfficiency is the share of heel height that converts to visual leg
// length, by heel tier.
func heelEfficiency(heelHeight float64) float64 {
	switch {
	case heelHeight < 3:
		return 0.70
	case heelHeight < 5:
		return 0.60
	default:
		return 0.50
	}
}

// ProportionShift computes the visual leg lengthening from shoe choice.
func ProportionShift(b domain.BodyProfile, heelHeightIn float64, nudeShoe, contrastShoe bool) (visualLegLength, totalVisualHeight float64) {
	extension := heelHeightIn * heelEfficiency(heelHeightIn)

	shoeMod := 0.0
	if nudeShoe {
		shoeMod = min(2.0, heelHeightIn*0.3)
	}
	if contrastShoe {
		shoeMod -= 1.0
	}

	return b.LegLengthVisual + extension + shoeMod, b.Height + extension
}
