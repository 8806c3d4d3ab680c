package domain

import "math"

type BodyShape string

const (
	ShapePear             BodyShape = "pear"
	ShapeApple            BodyShape = "apple"
	ShapeHourglass        BodyShape = "hourglass"
	ShapeRectangle        BodyShape = "rectangle"
	ShapeInvertedTriangle BodyShape = "inverted_triangle"
)

type StylingGoal string

const (
	GoalLookTaller        StylingGoal = "look_taller"
	GoalHighlightWaist    StylingGoal = "highlight_waist"
	GoalHideMidsection    StylingGoal = "hide_midsection"
	GoalSlimHips          StylingGoal = "slim_hips"
	GoalLookProportional  StylingGoal = "look_proportional"
	GoalMinimizeArms      StylingGoal = "minimize_arms"
	GoalSlimming          StylingGoal = "slimming"
	GoalConcealment       StylingGoal = "concealment"
	GoalEmphasis          StylingGoal = "emphasis"
	GoalBalance           StylingGoal = "balance"
	GoalElongateLegs      StylingGoal = "elongate_legs"
	GoalBalanceShoulders  StylingGoal = "balance_shoulders"
)

type SkinUndertone string

const (
	UndertoneWarm    SkinUndertone = "warm"
	UndertoneCool    SkinUndertone = "cool"
	UndertoneNeutral SkinUndertone = "neutral"
)

type Climate string

const (
	ClimateHotHumid  Climate = "hot_humid"
	ClimateHotDry    Climate = "hot_dry"
	ClimateTemperate Climate = "temperate"
	ClimateCold      Climate = "cold"
)

type WearContext string

const (
	ContextOfficeSeated  WearContext = "office_seated"
	ContextCasualActive  WearContext = "casual_active"
	ContextFormalStanding WearContext = "formal_standing"
	ContextGeneral       WearContext = "general"
)

// BodyProfile carries measurements in inches plus landmark heights from the
// floor. Derived perceptual properties are methods so that a profile stays a
// plain value and scoring stages never mutate it.
type BodyProfile struct {
	Height     float64 `json:"height"`
	Bust       float64 `json:"bust"`
	Underbust  float64 `json:"underbust"`
	Waist      float64 `json:"waist"`
	Hip        float64 `json:"hip"`

	ShoulderWidth float64 `json:"shoulder_width"`
	NeckLength    float64 `json:"neck_length"`

	TorsoLength     float64 `json:"torso_length"`
	LegLengthVisual float64 `json:"leg_length_visual"`
	Inseam          float64 `json:"inseam"`

	ArmLength          float64 `json:"arm_length"`
	UpperArmMax        float64 `json:"c_upper_arm_max"`
	UpperArmMaxPos     float64 `json:"c_upper_arm_max_position"`
	Elbow              float64 `json:"c_elbow"`
	ForearmMax         float64 `json:"c_forearm_max"`
	ForearmMin         float64 `json:"c_forearm_min"`
	ForearmMinPos      float64 `json:"c_forearm_min_position"`
	Wrist              float64 `json:"c_wrist"`

	KneeFromFloor    float64 `json:"h_knee"`
	CalfMaxFromFloor float64 `json:"h_calf_max"`
	CalfMinFromFloor float64 `json:"h_calf_min"`
	AnkleFromFloor   float64 `json:"h_ankle"`
	ThighMax         float64 `json:"c_thigh_max"`
	CalfMax          float64 `json:"c_calf_max"`
	CalfMin          float64 `json:"c_calf_min"`
	Ankle            float64 `json:"c_ankle"`

	BustProjection  float64 `json:"bust_projection"`
	BellyProjection float64 `json:"belly_projection"`
	HipProjection   float64 `json:"hip_projection"`

	TissueFirmness    float64       `json:"tissue_firmness"`
	SkinToneL         float64       `json:"skin_tone_l"`
	ContourSmoothness float64       `json:"contour_smoothness"`
	SkinDarkness      float64       `json:"skin_darkness"`
	SkinUndertone     SkinUndertone `json:"skin_undertone,omitempty"`

	BellyZone    float64 `json:"belly_zone"`
	HipZone      float64 `json:"hip_zone"`
	UpperArmZone float64 `json:"upper_arm_zone"`
	BustZone     float64 `json:"bust_zone"`

	IsAthletic bool `json:"is_athletic"`

	StylingGoals []StylingGoal `json:"styling_goals,omitempty"`

	// Per-zone intents derived from the styling goals during intake:
	// bust is "enhance"/"minimize"/"neutral", legs "showcase"/"neutral",
	// hips "narrower"/"neutral".
	GoalBust string `json:"goal_bust,omitempty"`
	GoalLegs string `json:"goal_legs,omitempty"`
	GoalHip  string `json:"goal_hip,omitempty"`

	Climate     Climate     `json:"climate,omitempty"`
	WearContext WearContext `json:"wear_context,omitempty"`
	Culture     string      `json:"culture,omitempty"`
	AgeRange    string      `json:"age_range,omitempty"`
	Occasion    string      `json:"occasion,omitempty"`
}

func (b BodyProfile) WHR() float64 {
	if b.Hip <= 0 {
		return 0.80
	}
	return b.Waist / b.Hip
}

// BustDifferential is the bust minus underbust proxy for cup size.
func (b BodyProfile) BustDifferential() float64 {
	return b.Bust - b.Underbust
}

func (b BodyProfile) ShoulderHipDiff() float64 {
	return b.ShoulderWidth - b.Hip/math.Pi
}

// LegRatio is visual leg length over height. The perceptual target is 0.618.
func (b BodyProfile) LegRatio() float64 {
	if b.Height <= 0 {
		return 0.62
	}
	return b.LegLengthVisual / b.Height
}

func (b BodyProfile) IsPetite() bool { return b.Height < 63.0 }

func (b BodyProfile) IsTall() bool { return b.Height > 68.0 }

func (b BodyProfile) IsPlusSize() bool { return b.Bust > 42 || b.Hip > 44 }

// TorsoScore grades torso length against the 0.23 height-share average.
// Each 0.02 of ratio is one point; negative means short torso.
func (b BodyProfile) TorsoScore() float64 {
	ratio := 0.23
	if b.Height > 0 {
		ratio = b.TorsoLength / b.Height
	}
	return (ratio - 0.23) / 0.02
}

// TorsoLegRatio is torso length over visual leg length; below ~0.48 reads
// as a short torso on a petite frame.
func (b BodyProfile) TorsoLegRatio() float64 {
	if b.LegLengthVisual <= 0 {
		return 0.50
	}
	return b.TorsoLength / b.LegLengthVisual
}

func (b BodyProfile) CalfProminence() float64 {
	if b.CalfMin <= 0 {
		return 1.0
	}
	return b.CalfMax / b.CalfMin
}

func (b BodyProfile) ArmProminence() float64 {
	if b.Wrist <= 0 || b.ForearmMin <= 0 {
		return 1.5
	}
	prominence := b.UpperArmMax / b.Wrist
	bulge := b.UpperArmMax / b.ForearmMin
	return (prominence + bulge) / 2
}

// Shape classifies the silhouette family from circumference differentials.
func (b BodyProfile) Shape() BodyShape {
	bwd := b.Bust - b.Waist
	hwd := b.Hip - b.Waist
	shr := 1.0
	if b.Hip > 0 {
		shr = b.ShoulderWidth / (b.Hip / math.Pi)
	}

	switch {
	case bwd >= 7 && hwd >= 7 && shr >= 0.85 && shr <= 1.15:
		return ShapeHourglass
	case hwd >= 7 && hwd > bwd+2 && shr < 1.05:
		return ShapePear
	case bwd < 5 && hwd < 5 && b.WHR() > 0.85:
		return ShapeApple
	case b.ShoulderHipDiff() > 3:
		return ShapeInvertedTriangle
	default:
		return ShapeRectangle
	}
}

func (b BodyProfile) HasGoal(goal StylingGoal) bool {
	for _, g := range b.StylingGoals {
		if g == goal {
			return true
		}
	}
	return false
}
