package intake

import (
	"strings"

	"github.com/stylesense/fitcore/internal/core/domain"
)

// Consumer apps send circumferences in centimeters; landmark heights arrive
// already in inches from the photogrammetry service. Missing fields fall back
// to population medians so a sparse payload still scores.
const (
	defaultHeightCm   = 167.64
	defaultBustCm     = 91.44
	defaultWaistCm    = 76.2
	defaultHipCm      = 96.52
	defaultShoulderCm = 39.37
	defaultNeckCm     = 33.02
	defaultArmCm      = 58.42
	defaultInseamCm   = 76.2
	defaultThighCm    = 55.88
	defaultAnkleCm    = 21.59

	defaultKneeIn      = 18.0
	defaultCalfMaxIn   = 14.0
	defaultCalfMinIn   = 10.0
	defaultAnkleHtIn   = 4.0
	defaultTorsoIn     = 15.0
	defaultLegVisualIn = 41.0
)

// RawMeasurements is the inbound body payload before coercion.
type RawMeasurements struct {
	HeightCm        *float64 `json:"height_cm,omitempty"`
	BustCm          *float64 `json:"bust_cm,omitempty"`
	UnderbustCm     *float64 `json:"underbust_cm,omitempty"`
	WaistCm         *float64 `json:"waist_cm,omitempty"`
	HipCm           *float64 `json:"hip_cm,omitempty"`
	ShoulderWidthCm *float64 `json:"shoulder_width_cm,omitempty"`
	NeckLengthCm    *float64 `json:"neck_length_cm,omitempty"`
	ArmLengthCm     *float64 `json:"arm_length_cm,omitempty"`
	InseamCm        *float64 `json:"inseam_cm,omitempty"`
	ThighCm         *float64 `json:"thigh_cm,omitempty"`
	AnkleCm         *float64 `json:"ankle_cm,omitempty"`

	KneeFromFloorIn    *float64 `json:"h_knee_in,omitempty"`
	CalfMaxFromFloorIn *float64 `json:"h_calf_max_in,omitempty"`
	CalfMinFromFloorIn *float64 `json:"h_calf_min_in,omitempty"`
	AnkleFromFloorIn   *float64 `json:"h_ankle_in,omitempty"`
	TorsoLengthIn      *float64 `json:"torso_length_in,omitempty"`
	LegLengthVisualIn  *float64 `json:"leg_length_visual_in,omitempty"`

	BustProjectionIn  *float64 `json:"bust_projection_in,omitempty"`
	BellyProjectionIn *float64 `json:"belly_projection_in,omitempty"`
	HipProjectionIn   *float64 `json:"hip_projection_in,omitempty"`

	BellyZone    *float64 `json:"belly_zone,omitempty"`
	HipZone      *float64 `json:"hip_zone,omitempty"`
	UpperArmZone *float64 `json:"upper_arm_zone,omitempty"`
	BustZone     *float64 `json:"bust_zone,omitempty"`

	TissueFirmness    *float64 `json:"tissue_firmness,omitempty"`
	ContourSmoothness *float64 `json:"contour_smoothness,omitempty"`
	SkinToneL         *float64 `json:"skin_tone_l,omitempty"`
	SkinUndertone     string   `json:"skin_undertone,omitempty"`

	SizeCategory string `json:"size_category,omitempty"`
	IsAthletic   bool   `json:"is_athletic,omitempty"`

	Climate     string `json:"climate,omitempty"`
	WearContext string `json:"wear_context,omitempty"`
	Culture     string `json:"culture,omitempty"`
	AgeRange    string `json:"age_range,omitempty"`
	Occasion    string `json:"occasion,omitempty"`
}

func cmOr(v *float64, fallback float64) float64 {
	if v != nil && *v > 0 {
		return *v * cmToIn
	}
	return fallback * cmToIn
}

func inOr(v *float64, fallback float64) float64 {
	if v != nil && *v > 0 {
		return *v
	}
	return fallback
}

func floatOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

// NewBodyProfile coerces raw measurements and goal strings into a scoring
// profile. Unknown goal names are dropped, not rejected.
func NewBodyProfile(raw RawMeasurements, goals []string) domain.BodyProfile {
	plus := strings.EqualFold(raw.SizeCategory, "plus_size")

	b := domain.BodyProfile{
		Height:        cmOr(raw.HeightCm, defaultHeightCm),
		Bust:          cmOr(raw.BustCm, defaultBustCm),
		Waist:         cmOr(raw.WaistCm, defaultWaistCm),
		Hip:           cmOr(raw.HipCm, defaultHipCm),
		ShoulderWidth: cmOr(raw.ShoulderWidthCm, defaultShoulderCm),
		NeckLength:    cmOr(raw.NeckLengthCm, defaultNeckCm),
		ArmLength:     cmOr(raw.ArmLengthCm, defaultArmCm),
		Inseam:        cmOr(raw.InseamCm, defaultInseamCm),
		ThighMax:      cmOr(raw.ThighCm, defaultThighCm),
		Ankle:         cmOr(raw.AnkleCm, defaultAnkleCm),

		KneeFromFloor:    inOr(raw.KneeFromFloorIn, defaultKneeIn),
		CalfMaxFromFloor: inOr(raw.CalfMaxFromFloorIn, defaultCalfMaxIn),
		CalfMinFromFloor: inOr(raw.CalfMinFromFloorIn, defaultCalfMinIn),
		AnkleFromFloor:   inOr(raw.AnkleFromFloorIn, defaultAnkleHtIn),
		TorsoLength:      inOr(raw.TorsoLengthIn, defaultTorsoIn),
		LegLengthVisual:  inOr(raw.LegLengthVisualIn, defaultLegVisualIn),

		TissueFirmness:    floatOr(raw.TissueFirmness, 0.6),
		ContourSmoothness: floatOr(raw.ContourSmoothness, 0.7),
		SkinToneL:         floatOr(raw.SkinToneL, 0.55),

		BellyZone:    floatOr(raw.BellyZone, 0.5),
		HipZone:      floatOr(raw.HipZone, 0.5),
		UpperArmZone: floatOr(raw.UpperArmZone, 0.5),
		BustZone:     floatOr(raw.BustZone, 0.5),

		IsAthletic: raw.IsAthletic,

		Climate:     coerceClimate(raw.Climate),
		WearContext: coerceWearContext(raw.WearContext),
		Culture:     strings.ToLower(strings.TrimSpace(raw.Culture)),
		AgeRange:    strings.TrimSpace(raw.AgeRange),
		Occasion:    strings.ToLower(strings.TrimSpace(raw.Occasion)),
	}

	if raw.UnderbustCm != nil && *raw.UnderbustCm > 0 {
		b.Underbust = *raw.UnderbustCm * cmToIn
	} else {
		b.Underbust = b.Bust - 4
	}

	// Arm circumferences are rarely measured; scale from frame size.
	if plus {
		b.UpperArmMax = 14
	} else {
		b.UpperArmMax = 11
	}
	b.UpperArmMaxPos = 0.35
	b.Elbow = b.UpperArmMax * 0.85
	b.ForearmMax = b.UpperArmMax * 0.80
	b.ForearmMin = b.UpperArmMax * 0.65
	b.ForearmMinPos = 0.85
	b.Wrist = 6.0

	b.CalfMax = b.Ankle * 1.6
	b.CalfMin = b.Ankle * 1.3

	b.BustProjection = floatOr(raw.BustProjectionIn, b.BustDifferential()/2)
	b.BellyProjection = floatOr(raw.BellyProjectionIn, defaultBellyProjection(b))
	b.HipProjection = floatOr(raw.HipProjectionIn, (b.Hip-b.Waist)/6)

	b.SkinDarkness = 1 - b.SkinToneL
	switch strings.ToLower(raw.SkinUndertone) {
	case "warm":
		b.SkinUndertone = domain.UndertoneWarm
	case "cool":
		b.SkinUndertone = domain.UndertoneCool
	default:
		b.SkinUndertone = domain.UndertoneNeutral
	}

	b.StylingGoals = coerceGoals(goals)
	b.GoalBust, b.GoalLegs, b.GoalHip = zoneIntents(goals)
	return b
}

func defaultBellyProjection(b domain.BodyProfile) float64 {
	p := (b.WHR() - 0.78) * 8
	if p < 0 {
		return 0
	}
	return p
}

func coerceGoals(raw []string) []domain.StylingGoal {
	seen := make(map[domain.StylingGoal]bool, len(raw))
	out := make([]domain.StylingGoal, 0, len(raw))
	for _, r := range raw {
		g, ok := goalMap[strings.ToLower(strings.TrimSpace(r))]
		if !ok || seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}

// zoneIntents derives per-zone emphasis from the raw goal strings. These
// gates soften or sharpen individual principle scores independently of the
// goal assessments.
func zoneIntents(raw []string) (bust, legs, hip string) {
	bust, legs, hip = "neutral", "neutral", "neutral"
	for _, r := range raw {
		switch strings.ToLower(strings.TrimSpace(r)) {
		case "minimize_bust":
			bust = "minimize"
		case "create_curves":
			bust = "enhance"
		case "show_legs", "elongate_legs":
			legs = "showcase"
		case "slim_hips", "minimize_hips":
			hip = "narrower"
		}
	}
	return bust, legs, hip
}

func coerceClimate(s string) domain.Climate {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hot_humid":
		return domain.ClimateHotHumid
	case "hot_dry":
		return domain.ClimateHotDry
	case "cold":
		return domain.ClimateCold
	case "temperate":
		return domain.ClimateTemperate
	}
	return ""
}

func coerceWearContext(s string) domain.WearContext {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "office_seated":
		return domain.ContextOfficeSeated
	case "casual_active":
		return domain.ContextCasualActive
	case "formal_standing":
		return domain.ContextFormalStanding
	case "general":
		return domain.ContextGeneral
	}
	return ""
}
