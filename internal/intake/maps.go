package intake

import (
	"strings"

	"github.com/stylesense/fitcore/internal/core/domain"
)

const cmToIn = 1.0 / 2.54

// Enum coercion tables. Extractor vocabulary is wider than the engine's;
// unrecognized values coerce to a safe default rather than erroring.

var necklineMap = map[string]domain.NecklineType{
	"v_neck":        domain.NecklineVNeck,
	"crew_neck":     domain.NecklineCrew,
	"scoop_neck":    domain.NecklineScoop,
	"boat_neck":     domain.NecklineBoat,
	"square_neck":   domain.NecklineSquare,
	"sweetheart":    domain.NecklineScoop,
	"off_shoulder":  domain.NecklineOffShoulder,
	"halter":        domain.NecklineHalter,
	"turtleneck":    domain.NecklineTurtleneck,
	"mock_neck":     domain.NecklineTurtleneck,
	"cowl_neck":     domain.NecklineCowl,
	"wrap_surplice": domain.NecklineWrap,
	"one_shoulder":  domain.NecklineOffShoulder,
	"strapless":     domain.NecklineOffShoulder,
	"collared":      domain.NecklineCrew,
	"plunging":      domain.NecklineDeepV,
	"keyhole":       domain.NecklineCrew,
	"peter_pan":     domain.NecklineCrew,
	"mandarin":      domain.NecklineTurtleneck,
	"henley":        domain.NecklineCrew,
	"asymmetric":    domain.NecklineScoop,
}

var silhouetteMap = map[string]domain.Silhouette{
	"a_line":        domain.SilhouetteALine,
	"fit_and_flare": domain.SilhouetteFitAndFlare,
	"sheath":        domain.SilhouetteFitted,
	"bodycon":       domain.SilhouetteFitted,
	"shift":         domain.SilhouetteShift,
	"wrap":          domain.SilhouetteWrap,
	"mermaid":       domain.SilhouetteFitted,
	"cocoon":        domain.SilhouetteOversized,
	"peplum":        domain.SilhouettePeplum,
	"empire":        domain.SilhouetteEmpire,
	"column":        domain.SilhouetteSemiFitted,
	"tent":          domain.SilhouetteOversized,
	"princess_seam": domain.SilhouetteSemiFitted,
	"dropped_waist": domain.SilhouetteShift,
	"tiered":        domain.SilhouetteALine,
	"asymmetric":    domain.SilhouetteSemiFitted,
}

var sleeveMap = map[string]domain.SleeveType{
	"sleeveless":      domain.SleeveSleeveless,
	"spaghetti_strap": domain.SleeveSleeveless,
	"cap":             domain.SleeveCap,
	"short":           domain.SleeveShort,
	"elbow":           domain.SleeveThreeQuarter,
	"three_quarter":   domain.SleeveThreeQuarter,
	"full_length":     domain.SleeveLong,
	"bell":            domain.SleeveBell,
	"puff":            domain.SleevePuff,
	"raglan":          domain.SleeveRaglan,
	"set_in":          domain.SleeveSetIn,
	"dolman":          domain.SleeveDolman,
	"flutter":         domain.SleeveFlutter,
	"cold_shoulder":   domain.SleeveShort,
	"bishop":          domain.SleeveBell,
	"lantern":         domain.SleevePuff,
	"leg_of_mutton":   domain.SleevePuff,
	"off_shoulder":    domain.SleeveSleeveless,
}

var sheenMap = map[string]domain.SurfaceFinish{
	"matte":          domain.SurfaceMatte,
	"subtle_sheen":   domain.SurfaceSubtleSheen,
	"moderate_sheen": domain.SurfaceModerateSheen,
	"shiny":          domain.SurfaceHighShine,
}

var categoryMap = map[string]domain.GarmentCategory{
	"dress":    domain.CategoryDress,
	"top":      domain.CategoryTop,
	"blouse":   domain.CategoryTop,
	"shirt":    domain.CategoryTop,
	"skirt":    domain.CategorySkirt,
	"pants":    domain.CategoryBottomPants,
	"jumpsuit": domain.CategoryJumpsuit,
	"romper":   domain.CategoryRomper,
	"jacket":   domain.CategoryJacket,
	"coat":     domain.CategoryCoat,
	"cardigan": domain.CategoryCardigan,
	"sweater":  domain.CategorySweatshirt,
	"shorts":   domain.CategoryBottomShorts,
}

var colorLightnessMap = map[string]float64{
	"very_dark":    0.10,
	"dark":         0.20,
	"medium_dark":  0.35,
	"medium":       0.50,
	"medium_light": 0.65,
	"light":        0.80,
	"very_light":   0.90,
}

var colorSaturationMap = map[string]float64{
	"muted":    0.25,
	"moderate": 0.50,
	"vibrant":  0.80,
}

var patternContrastMap = map[string]float64{
	"low":    0.20,
	"medium": 0.50,
	"high":   0.80,
}

var gsmByWeight = map[string]float64{
	"very_light": 80,
	"light":      120,
	"medium":     180,
	"heavy":      280,
}

var drapeMap = map[string]float64{
	"stiff":       2.0,
	"structured":  4.0,
	"fluid":       7.0,
	"very_drapey": 9.0,
}

var fitExpansionMap = map[string]float64{
	"tight":       0.00,
	"fitted":      0.02,
	"semi_fitted": 0.05,
	"relaxed":     0.10,
	"loose":       0.18,
	"oversized":   0.25,
}

var fitEaseMap = map[string]float64{
	"tight":       0.0,
	"fitted":      1.0,
	"semi_fitted": 2.5,
	"relaxed":     4.0,
	"loose":       6.0,
	"oversized":   8.0,
}

var hemPositionMap = map[string]string{
	"mini":         "mini",
	"above_knee":   "above_knee",
	"at_knee":      "knee",
	"below_knee":   "below_knee",
	"midi":         "midi",
	"tea_length":   "below_calf",
	"ankle":        "ankle",
	"maxi":         "ankle",
	"floor_length": "floor",
	"high_low":     "knee",
}

var waistPositionMap = map[string]string{
	"empire":      "empire",
	"natural":     "natural",
	"drop":        "drop",
	"low":         "drop",
	"undefined":   "no_waist",
	"elasticized": "natural",
}

var fiberConstructionMap = map[string]domain.FabricConstruction{
	"cotton":    domain.ConstructionWoven,
	"linen":     domain.ConstructionWoven,
	"silk":      domain.ConstructionWoven,
	"rayon":     domain.ConstructionWoven,
	"viscose":   domain.ConstructionWoven,
	"polyester": domain.ConstructionWoven,
	"nylon":     domain.ConstructionWoven,
	"wool":      domain.ConstructionWoven,
	"jersey":    domain.ConstructionKnitJersey,
	"knit":      domain.ConstructionKnit,
	"ponte":     domain.ConstructionKnitDouble,
	"rib":       domain.ConstructionKnitRib,
	"denim":     domain.ConstructionWoven,
	"chiffon":   domain.ConstructionWoven,
	"satin":     domain.ConstructionWoven,
	"crepe":     domain.ConstructionWoven,
	"tweed":     domain.ConstructionWoven,
	"velvet":    domain.ConstructionWoven,
}

// bodyInteractionMap nudges the expansion rate by how the extractor saw
// the fabric behave on the model.
var bodyInteractionMap = map[string]float64{
	"clinging":      -0.03,
	"skimming":      0.0,
	"standing_away": 0.05,
	"draping_away":  0.03,
}

// goalMap accepts both the engine's goal names and the wider aliases the
// consumer apps send.
var goalMap = map[string]domain.StylingGoal{
	"look_taller":           domain.GoalLookTaller,
	"highlight_waist":       domain.GoalHighlightWaist,
	"hide_midsection":       domain.GoalHideMidsection,
	"slim_hips":             domain.GoalSlimHips,
	"minimize_hips":         domain.GoalSlimHips,
	"look_proportional":     domain.GoalLookProportional,
	"minimize_arms":         domain.GoalMinimizeArms,
	"hide_upper_arms":       domain.GoalMinimizeArms,
	"slimming":              domain.GoalSlimming,
	"look_slimmer":          domain.GoalSlimming,
	"streamline_silhouette": domain.GoalSlimming,
	"elongate_legs":         domain.GoalElongateLegs,
	"balance_shoulders":     domain.GoalBalanceShoulders,
	"create_curves":         domain.GoalEmphasis,
	"minimize_bust":         domain.GoalConcealment,
	"show_legs":             domain.GoalEmphasis,
	"concealment":           domain.GoalConcealment,
	"emphasis":              domain.GoalEmphasis,
	"balance":               domain.GoalBalance,
}

var fiberNormalize = map[string]string{
	"rayon": "rayon", "viscose": "viscose", "livaeco": "viscose",
	"livaeco viscose": "viscose", "polyester": "polyester", "poly": "polyester",
	"cotton": "cotton", "silk": "silk", "wool": "wool", "merino": "wool",
	"cashmere": "wool", "linen": "linen", "flax": "linen", "nylon": "nylon",
	"spandex": "nylon", "elastane": "nylon", "lycra": "nylon",
	"tencel": "tencel", "lyocell": "tencel", "modal": "modal",
	"micromodal": "modal", "bamboo": "viscose", "hemp": "linen",
	"acetate": "viscose", "triacetate": "viscose", "cupro": "viscose",
	"acrylic": "polyester",
}

func normalizeFiber(name string) string {
	if name == "" {
		return "polyester"
	}
	lower := strings.ToLower(strings.TrimSpace(name))
	if n, ok := fiberNormalize[lower]; ok {
		return n
	}
	for key, val := range fiberNormalize {
		if strings.Contains(lower, key) {
			return val
		}
	}
	return lower
}
