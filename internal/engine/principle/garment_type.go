package principle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stylesense/fitcore/internal/core/domain"
)

// titleKeywords drives fallback classification when the extractor did not
// set a category. Longest keyword match wins across all categories.
var titleKeywords = map[domain.GarmentCategory][]string{
	domain.CategoryDress: {
		"maxi dress", "mini dress", "midi dress", "shift dress",
		"wrap dress", "dress", "gown", "frock",
	},
	domain.CategoryTop: {
		"crop top", "halter top", "t-shirt", "blouse", "shirt", "tee",
		"cami", "camisole", "tank", "tunic", "henley", "polo", "top",
		"bustier", "corset top", "bralette",
	},
	domain.CategoryBottomPants: {
		"wide-leg", "straight-leg", "slim pant", "pants", "trouser",
		"jeans", "denim", "chino", "legging", "jogger", "cargo", "palazzo",
		"culottes", "sweatpant",
	},
	domain.CategoryBottomShorts: {"shorts", "bermuda", "hot pants"},
	domain.CategorySkirt: {
		"denim skirt", "mini skirt", "midi skirt", "maxi skirt", "pencil skirt",
		"a-line skirt", "pleated skirt", "skirt", "skort",
	},
	domain.CategoryJumpsuit: {"jumpsuit"},
	domain.CategoryRomper:   {"romper", "playsuit"},
	domain.CategoryJacket: {
		"denim jacket", "leather jacket", "cropped jacket",
		"jacket", "blazer", "bomber", "moto", "shacket",
	},
	domain.CategoryCoat: {
		"overcoat", "trench", "parka", "peacoat", "puffer",
		"down jacket", "rain jacket", "coat", "anorak", "cape", "poncho",
	},
	domain.CategorySweatshirt: {"sweatshirt", "hoodie", "pullover", "fleece"},
	domain.CategoryCardigan:   {"cardigan", "kimono", "duster"},
	domain.CategoryVest:       {"vest", "gilet", "waistcoat"},
	domain.CategoryBodysuit:   {"bodysuit"},
	domain.CategoryActivewear: {"sports bra", "yoga pants", "workout top", "athletic"},
	domain.CategoryLoungewear: {"pajama", "robe", "loungewear", "nightgown", "sleepwear"},
	domain.CategorySaree:      {"saree", "sari"},
	domain.CategorySalwarKameez: {
		"salwar", "kameez", "kurta", "kurti", "anarkali", "churidar",
	},
	domain.CategoryLehenga: {"lehenga", "lehnga", "chaniya choli"},
}

// Classify resolves the garment category from the title, falling back to
// attribute signals and finally to whatever category is already set.
func Classify(g domain.GarmentProfile) domain.GarmentCategory {
	title := strings.ToLower(g.Title)
	if title != "" {
		type match struct {
			length   int
			keyword  string
			category domain.GarmentCategory
		}
		var matches []match
		for category, keywords := range titleKeywords {
			for _, kw := range keywords {
				if strings.Contains(title, kw) {
					matches = append(matches, match{len(kw), kw, category})
				}
			}
		}
		if len(matches) > 0 {
			sort.Slice(matches, func(i, j int) bool {
				if matches[i].length != matches[j].length {
					return matches[i].length > matches[j].length
				}
				return matches[i].keyword > matches[j].keyword
			})
			return matches[0].category
		}
	}

	if g.Rise != "" && g.LegShape != "" {
		return domain.CategoryBottomPants
	}
	if g.SkirtConstruction != "" {
		return domain.CategorySkirt
	}
	if g.JacketClosure != "" {
		return domain.CategoryJacket
	}
	return g.Category
}

// Top hemlines break the torso or hip line rather than the leg line, so
// they are scored against waist and hip landmarks, not knee and calf.
func scoreTopHemline(in Input) outcome {
	g, b := in.Garment, in.Body
	shape := b.Shape()
	hemPos := g.TopHemLength
	if hemPos == "" {
		hemPos = "at_hip"
	}

	switch g.TopHemBehavior {
	case domain.TopHemTucked:
		score := 0.15
		out := applicableScore(0, "tucked: hem invisible, waist definition +0.15")
		if g.GSMEstimated > 250 {
			score -= 0.20
			out.reasoning = append(out.reasoning, "heavy fabric tucked: bulk at waist")
		}
		out.score = score
		return out

	case domain.TopHemHalfTucked:
		score := 0.20
		out := applicableScore(0, "half-tucked: partial waist definition, asymmetric break")
		if shape == domain.ShapePear {
			score += 0.10
			out.reasoning = append(out.reasoning, "pear: asymmetric break disrupts hip-level line")
		} else if shape == domain.ShapeApple {
			score += 0.05
		}
		if b.HasGoal(domain.GoalHighlightWaist) {
			score += 0.10
		}
		if g.GSMEstimated > 250 {
			score -= 0.15
			out.reasoning = append(out.reasoning, "heavy fabric: bunching at tuck point")
		}
		out.score = domain.Clamp(score, -1, 1)
		return out

	case domain.TopHemBodysuit:
		return applicableScore(0.10, "bodysuit: no visible hem, smooth line")
	}

	if g.TopHemBehavior == domain.TopHemCropped || hemPos == "cropped" {
		out := applicableScore(0, "cropped top: break above waist")
		var score float64
		switch {
		case b.IsPetite() && b.TorsoLegRatio() < 0.48:
			score = -0.35
			out.reasoning = append(out.reasoning, "petite short torso: further shortening")
		case b.IsPetite():
			score = 0.30
			out.reasoning = append(out.reasoning, "petite proportional torso: lengthens legs")
		default:
			score = 0.15
		}
		if shape == domain.ShapeApple && b.HasGoal(domain.GoalHideMidsection) {
			score = -0.70
			out.reasoning = append(out.reasoning, "apple with midsection goal: crop exposes midsection")
		}
		out.score = domain.Clamp(score, -1, 1)
		return out
	}

	switch hemPos {
	case "at_waist":
		score := 0.20
		if b.HasGoal(domain.GoalHighlightWaist) {
			score += 0.15
		}
		return applicableScore(score, "at waist: defines waist")

	case "just_below_waist":
		return applicableScore(0.15, "just below waist: slight torso lengthening")

	case "at_hip":
		out := applicableScore(0, "at hip: critical zone")
		fit := g.FitCategory
		if fit == "" {
			fit = g.SilhouetteLabel
		}
		var score float64
		switch shape {
		case domain.ShapePear:
			score = -0.45
			if fit == "relaxed" || fit == "loose" {
				score = -0.30
			}
			out.reasoning = append(out.reasoning, "pear: line at widest hip point")
			if b.HasGoal(domain.GoalSlimHips) {
				score -= 0.10
			}
		case domain.ShapeInvertedTriangle:
			score = 0.35
			out.reasoning = append(out.reasoning, "inverted triangle: hip-level hem adds weight below")
		case domain.ShapeApple:
			if fit == "relaxed" || fit == "loose" {
				score = 0.20
				out.reasoning = append(out.reasoning, "apple relaxed: skims past midsection")
			} else {
				score = -0.15
				out.reasoning = append(out.reasoning, "apple fitted: pulls at midsection")
			}
		}
		out.score = domain.Clamp(score, -1, 1)
		return out

	case "below_hip", "tunic_length":
		out := applicableScore(0, fmt.Sprintf("%s: covers hips, shortens leg line", hemPos))
		score := 0.0
		if b.HasGoal(domain.GoalSlimHips) || b.HasGoal(domain.GoalHideMidsection) {
			score += 0.35
			out.reasoning = append(out.reasoning, "coverage goal met")
		}
		if b.HasGoal(domain.GoalLookTaller) {
			penalty := -0.20
			if hemPos == "tunic_length" {
				penalty = -0.35
			}
			score += penalty
		}
		if b.IsPetite() && hemPos == "tunic_length" {
			score -= 0.20
			out.reasoning = append(out.reasoning, "petite tunic: overwhelms frame")
		}
		out.score = domain.Clamp(score, -1, 1)
		return out
	}

	return notApplicable(fmt.Sprintf("top hemline %q", hemPos))
}

// Pant rise dominates pants scoring: where the waistband sits rewrites
// the perceived torso-to-leg split.
func scorePantRise(in Input) outcome {
	g, b := in.Garment, in.Body
	rise := g.Rise
	if rise == "" {
		if g.RiseCm == nil {
			return notApplicable("no rise data")
		}
		switch {
		case *g.RiseCm > 26:
			rise = "high"
		case *g.RiseCm > 22:
			rise = "mid"
		default:
			rise = "low"
		}
	}
	shape := b.Shape()

	switch rise {
	case "high", "ultra_high":
		score := 0.25
		out := applicableScore(0, "high rise: leg elongation base +0.25")
		if b.HasGoal(domain.GoalLookTaller) {
			score += 0.25
		}
		if b.HasGoal(domain.GoalHighlightWaist) {
			score += 0.15
		}
		if shape == domain.ShapeApple && b.WHR() > 0.85 {
			if g.WaistbandStretchPct >= 8.0 {
				score -= 0.10
				out.reasoning = append(out.reasoning, "apple: stretch waistband mitigates muffin risk")
			} else {
				score -= 0.25
				out.reasoning = append(out.reasoning, "apple: muffin-top risk at midsection")
			}
		}
		if b.IsPetite() {
			score += 0.10
			out.reasoning = append(out.reasoning, "petite: high rise strongly benefits")
		}
		out.score = domain.Clamp(score, -1, 1)
		return out

	case "mid":
		return applicableScore(0.05, "mid rise: neutral-positive")

	case "low":
		score := -0.15
		out := applicableScore(0, "low rise: shortens leg line")
		if b.HasGoal(domain.GoalLookTaller) {
			score -= 0.25
		}
		if b.IsPetite() {
			score -= 0.15
		}
		if b.HasGoal(domain.GoalHideMidsection) {
			score -= 0.15
			out.reasoning = append(out.reasoning, "midsection goal: low rise exposes gap")
		}
		out.score = domain.Clamp(score, -1, 1)
		return out
	}

	return notApplicable(fmt.Sprintf("rise %q", rise))
}

// Leg shape is the pants counterpart of silhouette.
func scoreLegShape(in Input) outcome {
	g, b := in.Garment, in.Body
	leg := g.LegShape
	if leg == "" {
		return notApplicable("no leg shape data")
	}
	shape := b.Shape()
	highRise := g.Rise == "high" || g.Rise == "ultra_high"

	switch leg {
	case "skinny", "slim":
		out := applicableScore(0, fmt.Sprintf("%s: follows body contour", leg))

		thighCling := 0.0
		totalStretch := in.Resolved.TotalStretchPct
		if totalStretch < 8 && b.ThighMax > 24 {
			thighCling = -0.10
			out.reasoning = append(out.reasoning, "low-stretch on large thigh: cling risk")
		} else if totalStretch < 8 && b.ThighMax > 22 {
			thighCling = -0.05
		}

		var score float64
		switch shape {
		case domain.ShapePear:
			score = -0.10
			if b.HasGoal(domain.GoalSlimHips) {
				score = -0.35
				out.reasoning = append(out.reasoning, "pear with slim-hips goal: emphasizes hip taper")
			}
			if highRise {
				score += 0.10
			}
		case domain.ShapeInvertedTriangle:
			score = -0.25
			out.reasoning = append(out.reasoning, "inverted triangle: narrow bottom emphasizes shoulders")
		case domain.ShapeRectangle, domain.ShapeHourglass:
			score = 0.15
		}
		out.score = domain.Clamp(score+thighCling, -1, 1)
		return out

	case "wide_leg", "palazzo":
		out := applicableScore(0, fmt.Sprintf("%s: adds volume at leg", leg))
		var score float64
		switch {
		case b.IsPetite():
			if highRise {
				score = 0.15
			} else {
				score = -0.30
				out.reasoning = append(out.reasoning, "petite without high rise: overwhelms frame")
			}
		case shape == domain.ShapePear:
			score = 0.40
			out.reasoning = append(out.reasoning, "pear: skims over hips and thighs")
			if highRise {
				score += 0.10
			} else if g.Rise == "low" {
				score -= 0.20
				out.reasoning = append(out.reasoning, "low rise: volume starts too early, no waist anchor")
			}
		case shape == domain.ShapeInvertedTriangle:
			score = 0.40
			out.reasoning = append(out.reasoning, "inverted triangle: leg volume balances shoulders")
			if highRise {
				score += 0.05
			}
		case shape == domain.ShapeApple:
			score = 0.25
			if highRise && g.WaistbandStretchPct >= 8.0 {
				score += 0.10
			} else if g.Rise == "low" {
				score -= 0.15
			}
		default:
			score = 0.15
		}
		out.score = domain.Clamp(score, -1, 1)
		return out

	case "straight":
		return applicableScore(0.15, "straight: clean, balanced line")

	case "bootcut", "flare":
		score := 0.15
		out := applicableScore(0, fmt.Sprintf("%s: volume at hem", leg))
		if shape == domain.ShapePear {
			score = 0.30
			out.reasoning = append(out.reasoning, "pear: flare balances hip width")
		}
		if b.HasGoal(domain.GoalLookTaller) {
			score += 0.15
		}
		out.score = domain.Clamp(score, -1, 1)
		return out

	case "tapered":
		if shape == domain.ShapePear {
			return applicableScore(-0.15, "tapered: emphasizes hip-ankle contrast on pear")
		}
		return applicableScore(0.10, "tapered: relaxed thigh, narrow ankle")

	case "jogger":
		if b.IsPetite() {
			return applicableScore(-0.15, "jogger: elastic cuff shortens leg line on petite")
		}
		return applicableScore(0, "jogger: elastic cuff at ankle")
	}

	return notApplicable(fmt.Sprintf("leg shape %q", leg))
}

// Jackets score independently on shoulder structure, length and closure;
// layer interaction is computed separately.
func scoreJacketScoring(in Input) outcome {
	g, b := in.Garment, in.Body
	shape := b.Shape()
	score := 0.0
	out := applicableScore(0)

	structure := g.ShoulderStructure
	if structure == "" {
		structure = "natural"
	}
	switch structure {
	case "padded", "structured":
		switch shape {
		case domain.ShapePear:
			score += 0.50
			out.reasoning = append(out.reasoning, "structured shoulders balance pear hips")
		case domain.ShapeInvertedTriangle:
			score -= 0.40
			out.reasoning = append(out.reasoning, "padded shoulders widen broad shoulders")
		case domain.ShapeRectangle:
			score += 0.25
			out.reasoning = append(out.reasoning, "structure creates shape on a straight frame")
		default:
			score += 0.10
		}
	case "dropped", "oversized":
		if shape == domain.ShapeInvertedTriangle {
			score += 0.20
			out.reasoning = append(out.reasoning, "dropped shoulders soften a broad shoulder line")
		} else if b.IsPetite() {
			score -= 0.30
			out.reasoning = append(out.reasoning, "oversized shoulders overwhelm a petite frame")
		} else {
			score += 0.05
		}
	}

	length := g.JacketLength
	if length == "" {
		length = "hip"
	}
	switch length {
	case "cropped":
		score += 0.30
		out.reasoning = append(out.reasoning, "cropped jacket defines the waist")
		if b.HasGoal(domain.GoalLookTaller) {
			score += 0.15
		}
	case "hip":
		if shape == domain.ShapePear {
			score -= 0.30
			out.reasoning = append(out.reasoning, "hip length ends at the pear's widest point")
		} else if shape == domain.ShapeInvertedTriangle {
			score += 0.20
		}
	case "mid_thigh", "knee", "below_knee", "full_length":
		if b.HasGoal(domain.GoalLookTaller) {
			score -= 0.20
			out.reasoning = append(out.reasoning, "long jacket shortens the visible leg line")
		}
		if b.HasGoal(domain.GoalHideMidsection) || b.HasGoal(domain.GoalSlimHips) {
			score += 0.30
			out.reasoning = append(out.reasoning, "long jacket provides coverage")
		}
	}

	switch g.JacketClosure {
	case "open_front":
		score += 0.20
		out.reasoning = append(out.reasoning, "open front: vertical line elongates the torso")
	case "double_breasted":
		if shape == domain.ShapeApple {
			score -= 0.15
			out.reasoning = append(out.reasoning, "double-breasted adds midsection bulk")
		} else if shape == domain.ShapeRectangle {
			score += 0.10
		}
	}

	out.score = domain.Clamp(score, -1, 1)
	return out
}

// LayerModification notes how an outer layer changes the outfit underneath.
type LayerModification struct {
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	ZonesAffected []string `json:"zones_affected"`
	Effect        string   `json:"effect"`
}

// LayerEffects computes layer modifications and pairing notes for jackets,
// coats, cardigans and vests.
func LayerEffects(g domain.GarmentProfile, b domain.BodyProfile) ([]LayerModification, []string) {
	var mods []LayerModification

	if g.ShoulderStructure == "padded" || g.ShoulderStructure == "structured" {
		mods = append(mods, LayerModification{
			Type:          "cling_neutralization",
			Description:   "Structured layer reduces cling of the garment underneath",
			ZonesAffected: []string{"bust", "midsection", "upper_arm"},
			Effect:        "reduce_negative_by_70%",
		})
	}
	if g.JacketClosure == "open_front" {
		mods = append(mods, LayerModification{
			Type:          "vertical_line_creation",
			Description:   "Open front creates an elongating vertical line",
			ZonesAffected: []string{"torso"},
			Effect:        "+0.3 torso elongation",
		})
	}
	fit := g.FitCategory
	if fit == "" {
		fit = g.SilhouetteLabel
	}
	if fit == "relaxed" || fit == "loose" || fit == "oversized" {
		mods = append(mods, LayerModification{
			Type:          "volume_addition",
			Description:   "Loose layer adds visual volume",
			ZonesAffected: []string{"shoulder", "bust", "torso"},
			Effect:        "body_type_dependent",
		})
	}
	if g.JacketLength != "" {
		mods = append(mods, LayerModification{
			Type:          "proportion_break_override",
			Description:   fmt.Sprintf("Jacket hem at %s becomes the visual break point", g.JacketLength),
			ZonesAffected: []string{"proportion"},
			Effect:        "replaces_base_proportion_break",
		})
	}

	return mods, layerStylingNotes(g, b)
}

func layerStylingNotes(g domain.GarmentProfile, b domain.BodyProfile) []string {
	var notes []string
	shape := b.Shape()

	switch g.Category {
	case domain.CategoryJacket, domain.CategoryCoat:
		switch shape {
		case domain.ShapePear:
			notes = append(notes, "Pair with wide-leg or straight pants to balance your silhouette")
			if g.JacketLength == "hip" {
				notes = append(notes, "Consider wearing open to create a vertical line past your hips")
			}
		case domain.ShapeApple:
			notes = append(notes, "Pair with a V-neck underneath for maximum elongation")
			if g.JacketClosure != "open_front" {
				notes = append(notes, "Wear unbuttoned to create a slimming vertical line")
			}
		case domain.ShapeInvertedTriangle:
			notes = append(notes, "Balance with wide-leg or flare pants")
		}
	case domain.CategoryCardigan:
		if b.HasGoal(domain.GoalLookTaller) {
			notes = append(notes, "Wear open with a same-color base for an unbroken vertical line")
		}
		if b.HasGoal(domain.GoalHideMidsection) {
			notes = append(notes, "A longer cardigan provides coverage without structure")
		}
	}
	return notes
}
