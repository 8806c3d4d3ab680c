// Package translate projects garment landmarks onto an individual body:
// where the hem lands relative to leg danger zones, where the sleeve ends
// on the arm, and how the waist seam shifts the perceived leg ratio.
package translate

import (
	"github.com/stylesense/fitcore/internal/core/domain"
)

// referenceModelHeight is the fit-model height garments are drafted for.
const referenceModelHeight = 66.0

// HemlineResult locates the hem against the wearer's leg landmarks.
type HemlineResult struct {
	HemFromFloor       float64
	HemZone            string
	DangerZones        [][2]float64
	SafeZone           *[2]float64
	SafeZoneSize       float64
	FabricRise         float64
	ProportionCutRatio float64
	NarrowestBonus     float64
}

func hemLabelToHeight(label string, b domain.BodyProfile) float64 {
	switch label {
	case "mini":
		return b.KneeFromFloor + 6
	case "above_knee":
		return b.KneeFromFloor + 3
	case "knee":
		return b.KneeFromFloor
	case "below_knee":
		return b.KneeFromFloor - 3
	case "midi":
		return b.CalfMaxFromFloor
	case "below_calf":
		return b.CalfMinFromFloor
	case "ankle":
		return b.AnkleFromFloor + 2
	case "floor":
		return 1.0
	default:
		return b.KneeFromFloor
	}
}

// fabricDrapeAdjustment estimates hem ride-up in inches from the
// silhouette and body interaction.
func fabricDrapeAdjustment(g domain.GarmentProfile, b domain.BodyProfile) float64 {
	rise := 0.0

	if g.Silhouette == domain.SilhouetteALine || g.Silhouette == domain.SilhouetteFitAndFlare {
		if b.Hip > 40 {
			rise += 1.0
		}
		if b.BellyProjection > 2 {
			rise += 0.5
		}
	}
	if g.Silhouette == domain.SilhouetteFitted {
		rise += 0.5
	}

	switch {
	case g.GSMEstimated < 120:
		rise *= 1.3
	case g.GSMEstimated > 280:
		rise *= 0.7
	}
	return rise
}

// Hemline computes the hem landing height, its zone classification, and
// the leg danger zones for this body.
func Hemline(g domain.GarmentProfile, b domain.BodyProfile) HemlineResult {
	var hemFromFloor float64
	if g.GarmentLengthIn != nil {
		scale := b.Height / referenceModelHeight
		hemFromFloor = b.Height - *g.GarmentLengthIn*scale
	} else {
		hemFromFloor = hemLabelToHeight(g.HemPosition, b)
	}

	rise := fabricDrapeAdjustment(g, b)
	hemFromFloor += rise

	kneeDanger := [2]float64{b.KneeFromFloor - 1.0, b.KneeFromFloor + 1.5}

	calfRadius := 1.0 + (b.CalfProminence()-1.0)*3.0
	calfDanger := [2]float64{b.CalfMaxFromFloor - calfRadius, b.CalfMaxFromFloor + calfRadius}

	thighWidest := b.KneeFromFloor + 6
	thighDanger := [2]float64{thighWidest - 1.0, thighWidest + 1.0}

	safeZoneTop := kneeDanger[0]
	safeZoneBottom := calfDanger[1]
	safeZoneSize := safeZoneTop - safeZoneBottom

	var safeZone *[2]float64
	if safeZoneSize > 0 {
		safeZone = &[2]float64{safeZoneBottom, safeZoneTop}
	}

	var zone string
	switch {
	case hemFromFloor > b.KneeFromFloor+2.5:
		zone = "above_knee"
	case hemFromFloor > kneeDanger[1]:
		zone = "above_knee_near"
	case hemFromFloor >= kneeDanger[0]:
		zone = "knee_danger"
	case safeZoneSize > 0 && hemFromFloor > calfDanger[1]:
		zone = "safe_zone"
	case safeZoneSize <= 0 && hemFromFloor > calfDanger[1]:
		zone = "collapsed_zone"
	case hemFromFloor >= calfDanger[0]:
		zone = "calf_danger"
	case hemFromFloor > b.AnkleFromFloor+2:
		zone = "below_calf"
	case hemFromFloor > b.AnkleFromFloor-1:
		zone = "ankle"
	default:
		zone = "floor"
	}

	cutRatio := 0.3
	if b.Height > 0 {
		cutRatio = hemFromFloor / b.Height
	}

	// Landing at a narrow point of the leg reads as slimming.
	narrowestBonus := 0.0
	if abs(hemFromFloor-(b.AnkleFromFloor+2)) <= 1.5 {
		narrowestBonus = 2
	} else if abs(hemFromFloor-b.CalfMinFromFloor) <= 1.5 {
		narrowestBonus = 1
	}

	return HemlineResult{
		HemFromFloor:       hemFromFloor,
		HemZone:            zone,
		DangerZones:        [][2]float64{thighDanger, kneeDanger, calfDanger},
		SafeZone:           safeZone,
		SafeZoneSize:       safeZoneSize,
		FabricRise:         rise,
		ProportionCutRatio: cutRatio,
		NarrowestBonus:     narrowestBonus,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
