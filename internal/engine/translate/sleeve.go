package translate

import (
	"math"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/registry"
)

// SleeveResult is the perceived-width model output for a sleeve endpoint.
type SleeveResult struct {
	Endpoint            float64
	PerceivedWidth      float64
	ActualWidth         float64
	DeltaVsActual       float64
	ProminenceSeverity  float64
	ProminenceRadius    float64
	ScoreFromDelta      float64
	ShoulderWidthEffect float64
}

// interpolateArmCirc reads the arm circumference at a distance from the
// shoulder via piecewise linear interpolation between landmarks.
func interpolateArmCirc(b domain.BodyProfile, position float64) float64 {
	type landmark struct{ pos, circ float64 }
	landmarks := []landmark{
		{0.0, b.ShoulderWidth / 2 * math.Pi / 2},
		{b.UpperArmMaxPos, b.UpperArmMax},
		{b.ArmLength * 0.52, b.Elbow},
		{b.ArmLength * 0.65, b.ForearmMax},
		{b.ForearmMinPos, b.ForearmMin},
		{b.ArmLength, b.Wrist},
	}

	if position <= landmarks[0].pos {
		return landmarks[0].circ
	}
	if position >= landmarks[len(landmarks)-1].pos {
		return landmarks[len(landmarks)-1].circ
	}

	for i := 0; i < len(landmarks)-1; i++ {
		p0, p1 := landmarks[i], landmarks[i+1]
		if p0.pos <= position && position <= p1.pos {
			if p1.pos == p0.pos {
				return p0.circ
			}
			t := (position - p0.pos) / (p1.pos - p0.pos)
			return p0.circ + t*(p1.circ-p0.circ)
		}
	}
	return b.UpperArmMax
}

// armProminenceSeverity grades combined arm prominence into a severity
// multiplier and a danger radius in inches.
func armProminenceSeverity(b domain.BodyProfile) (severity, radius float64) {
	combined := b.ArmProminence()
	switch {
	case combined < 1.35:
		return 0.3, 0.5
	case combined < 1.50:
		return 0.5, 0.75
	case combined < 1.65:
		return 0.75, 1.0
	case combined < 1.80:
		return 1.0, 1.5
	case combined < 2.00:
		return 1.3, 2.0
	case combined < 2.20:
		return 1.6, 2.5
	default:
		return 2.0, 3.0
	}
}

func sleeveTypePosition(t domain.SleeveType, b domain.BodyProfile) (endpoint, ease float64, hemType string) {
	switch t {
	case domain.SleeveSleeveless:
		return 0.0, 0.0, "clean_hem"
	case domain.SleeveCap:
		return 2.5, -0.5, "clean_hem"
	case domain.SleeveShort:
		return 6.0, 1.0, "clean_hem"
	case domain.SleeveThreeQuarter:
		return 17.0, 0.5, "clean_hem"
	case domain.SleeveLong:
		return b.ArmLength, 0.0, "clean_hem"
	case domain.SleeveRaglan:
		return b.ArmLength, 1.0, "clean_hem"
	case domain.SleeveDolman:
		return b.ArmLength, 12.0, "clean_hem"
	case domain.SleevePuff:
		return 4.0, 6.0, "elastic"
	case domain.SleeveFlutter:
		return 3.0, 3.0, "flutter"
	case domain.SleeveBell:
		return b.ArmLength * 0.7, 8.0, "clean_hem"
	default:
		return b.ArmLength, 1.0, "clean_hem"
	}
}

// Sleeve computes the sleeve endpoint, the perceived arm width it produces,
// and the delta score against the bare arm.
func Sleeve(reg *registry.Registry, g domain.GarmentProfile, b domain.BodyProfile) SleeveResult {
	var endpoint, ease float64
	var hemType string
	if g.SleeveLengthIn != nil {
		endpoint = *g.SleeveLengthIn
		ease = g.SleeveEaseIn
		hemType = "clean_hem"
	} else {
		endpoint, ease, hemType = sleeveTypePosition(g.SleeveType, b)
	}

	actualCirc := interpolateArmCirc(b, endpoint)
	actualWidth := actualCirc / math.Pi

	var frameWidth float64
	switch {
	case ease >= 0:
		frameWidth = actualWidth + ease/math.Pi
	case ease > -1.0:
		frameWidth = actualWidth + (-ease)*0.3
	default:
		frameWidth = actualWidth + (-ease)*0.5
	}

	frameWidth += reg.HemTypeModifier(hemType)

	// The visible arm below the sleeve contributes 40% of the impression.
	taper := 0.0
	if endpoint < b.ArmLength {
		midVisible := (endpoint + b.ArmLength) / 2
		avgVisibleWidth := interpolateArmCirc(b, midVisible) / math.Pi
		taper = (avgVisibleWidth - frameWidth) * 0.4
	}

	perceived := frameWidth + taper

	// Sleeves ending near the widest upper arm frame the danger zone.
	var delta float64
	if endpoint <= b.UpperArmMaxPos+1.5 {
		widestArmWidth := b.UpperArmMax / math.Pi
		capFrameDelta := frameWidth - widestArmWidth + 0.20
		delta = math.Max(perceived-actualWidth, capFrameDelta)
	} else {
		delta = perceived - actualWidth
	}

	severity, radius := armProminenceSeverity(b)

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

	return SleeveResult{
		Endpoint:            endpoint,
		PerceivedWidth:      perceived,
		ActualWidth:         actualWidth,
		DeltaVsActual:       delta,
		ProminenceSeverity:  severity,
		ProminenceRadius:    radius,
		ScoreFromDelta:      score,
		ShoulderWidthEffect: reg.ShoulderModifier(string(g.SleeveType)),
	}
}
