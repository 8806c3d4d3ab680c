package intake

import (
	"strconv"
	"strings"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/registry"
)

// RawGarment is the attribute payload as the vision extractor emits it:
// free-text enums, centimeters, and listing metadata.
type RawGarment struct {
	Title    string  `json:"title,omitempty"`
	Brand    string  `json:"brand,omitempty"`
	PriceUSD float64 `json:"price_usd,omitempty"`

	Category   string `json:"category,omitempty"`
	Silhouette string `json:"silhouette,omitempty"`
	FitCategory string `json:"fit_category,omitempty"`

	Neckline      string   `json:"neckline,omitempty"`
	NecklineDepth string   `json:"neckline_depth,omitempty"`
	VDepthCm      *float64 `json:"v_depth_cm,omitempty"`

	SleeveType     string   `json:"sleeve_type,omitempty"`
	SleeveLengthIn *float64 `json:"sleeve_length_inches,omitempty"`
	SleeveFit      string   `json:"sleeve_fit,omitempty"`

	HemPosition     string   `json:"hem_position,omitempty"`
	GarmentLengthIn *float64 `json:"garment_length_inches,omitempty"`

	WaistPosition    string   `json:"waist_position,omitempty"`
	WaistDefinition  string   `json:"waist_definition,omitempty"`
	RiseCm           *float64 `json:"rise_cm,omitempty"`
	WaistbandWidthCm float64  `json:"waistband_width_cm,omitempty"`
	WaistbandStretch string   `json:"waistband_stretch,omitempty"`

	CompositionText string  `json:"composition_text,omitempty"`
	FabricName      string  `json:"fabric_name,omitempty"`
	PrimaryFiber    string  `json:"primary_fiber,omitempty"`
	PrimaryFiberPct float64 `json:"primary_fiber_pct,omitempty"`
	SecondaryFiber  string  `json:"secondary_fiber,omitempty"`
	ElastanePct     float64 `json:"elastane_pct,omitempty"`
	StretchVisible  bool    `json:"stretch_visible,omitempty"`
	FabricWeight    string  `json:"fabric_weight,omitempty"`
	Drape           string  `json:"drape,omitempty"`
	Sheen           string  `json:"sheen,omitempty"`
	Opacity         string  `json:"opacity,omitempty"`
	BodyInteraction string  `json:"body_interaction,omitempty"`

	ColorLightness   string `json:"color_lightness,omitempty"`
	ColorSaturation  string `json:"color_saturation,omitempty"`
	ColorTemperature string `json:"color_temperature,omitempty"`
	ColorName        string `json:"color_name,omitempty"`
	IsMonochrome     bool   `json:"is_monochrome_outfit,omitempty"`

	PatternType     string  `json:"pattern_type,omitempty"`
	StripeDirection string  `json:"stripe_direction,omitempty"`
	StripeWidthCm   float64 `json:"stripe_width_cm,omitempty"`
	PatternScale    string  `json:"pattern_scale,omitempty"`
	PatternContrast string  `json:"pattern_contrast,omitempty"`

	BeltType    string  `json:"belt_type,omitempty"`
	BeltWidthCm float64 `json:"belt_width_cm,omitempty"`

	HeelHeightIn float64 `json:"heel_height_inches,omitempty"`
	ShoeTone     string  `json:"shoe_tone,omitempty"`

	HasDarts   bool `json:"has_darts,omitempty"`
	HasSeaming bool `json:"has_seaming,omitempty"`
	IsFauxWrap bool `json:"is_faux_wrap,omitempty"`

	ModelSize        string `json:"model_size,omitempty"`
	UsesDiverseModel bool   `json:"uses_diverse_model,omitempty"`

	GarmentLayer string `json:"garment_layer,omitempty"`

	TopHemLength   string `json:"top_hem_length,omitempty"`
	TopHemBehavior string `json:"top_hem_behavior,omitempty"`

	Rise         string `json:"rise,omitempty"`
	LegShape     string `json:"leg_shape,omitempty"`
	BottomLength string `json:"bottom_length,omitempty"`

	JacketClosure     string `json:"jacket_closure,omitempty"`
	JacketLength      string `json:"jacket_length,omitempty"`
	ShoulderStructure string `json:"shoulder_structure,omitempty"`

	SkirtConstruction string `json:"skirt_construction,omitempty"`
}

var necklineDepthCm = map[string]float64{
	"shallow":  3,
	"medium":   8,
	"deep":     14,
	"plunging": 20,
}

var sleeveEaseIn = map[string]float64{
	"fitted":      0.5,
	"semi_fitted": 1.0,
	"relaxed":     2.0,
	"voluminous":  4.0,
}

// NewGarmentProfile coerces the extractor payload into the scoring profile.
// The rules registry supplies the fabric lookup table for weight resolution.
func NewGarmentProfile(reg *registry.Registry, raw RawGarment) domain.GarmentProfile {
	g := domain.GarmentProfile{
		Title:       strings.TrimSpace(raw.Title),
		FitCategory: lower(raw.FitCategory),
	}

	if c, ok := categoryMap[lower(raw.Category)]; ok {
		g.Category = c
	} else {
		g.Category = domain.GarmentCategory(lower(raw.Category))
	}

	if s, ok := silhouetteMap[lower(raw.Silhouette)]; ok {
		g.Silhouette = s
	} else {
		g.Silhouette = domain.SilhouetteSemiFitted
	}
	g.SilhouetteLabel = lower(raw.Silhouette)

	// Unestablished necklines stay unknown so the neckline scorers skip
	// them instead of judging the garment as a crew neck.
	if n, ok := necklineMap[lower(raw.Neckline)]; ok {
		g.Neckline = n
	} else {
		g.Neckline = domain.NecklineUnknown
	}
	g.VDepthCm = resolveVDepth(g.Neckline, raw)

	if s, ok := sleeveMap[lower(raw.SleeveType)]; ok {
		g.SleeveType = s
	} else {
		g.SleeveType = domain.SleeveUnknown
	}
	g.SleeveLengthIn = raw.SleeveLengthIn
	if ease, ok := sleeveEaseIn[lower(raw.SleeveFit)]; ok {
		g.SleeveEaseIn = ease
	} else {
		g.SleeveEaseIn = 1.0
	}

	if hem, ok := hemPositionMap[lower(raw.HemPosition)]; ok {
		g.HemPosition = hem
	} else {
		g.HemPosition = lower(raw.HemPosition)
	}
	g.GarmentLengthIn = raw.GarmentLengthIn

	if pos, ok := waistPositionMap[lower(raw.WaistPosition)]; ok {
		g.WaistPosition = pos
	} else {
		g.WaistPosition = lower(raw.WaistPosition)
	}
	switch lower(raw.WaistDefinition) {
	case "defined", "semi_defined":
		t := true
		g.HasWaistDefinition = &t
	case "undefined":
		f := false
		g.HasWaistDefinition = &f
	}
	g.RiseCm = raw.RiseCm
	g.WaistbandWidthCm = raw.WaistbandWidthCm
	g.WaistbandStretchPct = waistbandStretchPct(raw.WaistbandStretch)

	applyFabric(reg, raw, &g)
	applyColorAndPattern(raw, &g)

	g.HasContrastingBelt = lower(raw.BeltType) == "contrasting"
	g.HasTonalBelt = lower(raw.BeltType) == "tonal"
	g.BeltWidthCm = raw.BeltWidthCm

	g.HeelHeightIn = raw.HeelHeightIn
	if g.HeelHeightIn < 0 {
		g.HeelHeightIn = 0
	}
	switch lower(raw.ShoeTone) {
	case "nude", "skin_match":
		g.NudeShoe = true
	case "contrast", "contrasting":
		g.ContrastShoe = true
	}

	g.HasDarts = raw.HasDarts
	g.IsStructured = raw.HasDarts || raw.HasSeaming ||
		lower(raw.Drape) == "stiff" || lower(raw.Drape) == "structured"
	g.HasLining = strings.Contains(lower(raw.CompositionText), "lin")
	g.IsFauxWrap = raw.IsFauxWrap
	g.GarmentEaseIn = fitEaseMap[g.FitCategory]

	g.BrandTier = estimateBrandTier(raw.Brand, raw.PriceUSD)
	g.UsesDiverseModel = raw.UsesDiverseModel
	g.ModelEstimatedSize = estimateModelSize(raw.ModelSize)

	switch lower(raw.GarmentLayer) {
	case "outer":
		g.GarmentLayer = domain.LayerOuter
	case "mid":
		g.GarmentLayer = domain.LayerMid
	default:
		g.GarmentLayer = domain.LayerBase
	}

	g.TopHemLength = lower(raw.TopHemLength)
	g.TopHemBehavior = domain.TopHemBehavior(lower(raw.TopHemBehavior))
	g.Rise = lower(raw.Rise)
	g.LegShape = lower(raw.LegShape)
	g.BottomLength = lower(raw.BottomLength)
	g.JacketClosure = lower(raw.JacketClosure)
	g.JacketLength = lower(raw.JacketLength)
	g.ShoulderStructure = lower(raw.ShoulderStructure)
	g.SkirtConstruction = lower(raw.SkirtConstruction)

	g.Zone = detectZone(g.Category)
	g.CoversWaist, g.CoversHips = detectCoverage(g)
	return g
}

func lower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func resolveVDepth(neckline domain.NecklineType, raw RawGarment) float64 {
	if raw.VDepthCm != nil && *raw.VDepthCm > 0 {
		return *raw.VDepthCm
	}
	if d, ok := necklineDepthCm[lower(raw.NecklineDepth)]; ok {
		return d
	}
	switch neckline {
	case domain.NecklineDeepV:
		return 14
	case domain.NecklineVNeck, domain.NecklineWrap, domain.NecklineScoop:
		return 8
	}
	return 0
}

func waistbandStretchPct(s string) float64 {
	switch lower(s) {
	case "elastic", "elasticized", "full_elastic":
		return 30
	case "partial_elastic", "side_elastic", "back_elastic":
		return 15
	case "rigid", "none":
		return 0
	}
	return 0
}

func applyFabric(reg *registry.Registry, raw RawGarment, g *domain.GarmentProfile) {
	g.PrimaryFiber = normalizeFiber(raw.PrimaryFiber)
	g.PrimaryFiberPct = raw.PrimaryFiberPct
	g.SecondaryFiber = normalizeFiber(raw.SecondaryFiber)
	if raw.SecondaryFiber == "" {
		g.SecondaryFiber = ""
	}
	g.ElastanePct = raw.ElastanePct
	if raw.StretchVisible && g.ElastanePct < 3 {
		g.ElastanePct = 3
	}

	resolved := resolveGSM(reg, raw.Title, raw.CompositionText, raw.FabricName,
		g.PrimaryFiber, raw.FabricWeight, raw.Drape)
	g.GSMEstimated = resolved.GSM
	g.FabricName = resolved.Name
	if g.FabricName == "" {
		g.FabricName = lower(raw.FabricName)
	}

	g.Construction = resolveConstruction(raw, resolved)

	if d, ok := drapeMap[lower(raw.Drape)]; ok {
		g.Drape = d
	} else if resolved.Entry != nil {
		g.Drape = resolved.Entry.Drape
	} else {
		g.Drape = 5.0
	}

	if s, ok := sheenMap[lower(raw.Sheen)]; ok {
		g.Surface = s
	} else if resolved.Entry != nil {
		g.Surface = domain.SurfaceFinish(resolved.Entry.Surface)
	} else {
		g.Surface = domain.SurfaceMatte
	}

	switch lower(raw.Opacity) {
	case "sheer", "semi_sheer":
		g.SurfaceFriction = 0.3
	case "opaque":
		g.SurfaceFriction = 0.6
	default:
		g.SurfaceFriction = 0.5
	}

	g.ExpansionRate = fitExpansionMap[lower(raw.FitCategory)] +
		bodyInteractionMap[lower(raw.BodyInteraction)]
	if g.ExpansionRate < 0 {
		g.ExpansionRate = 0
	}
}

// resolveConstruction prefers explicit knit markers in the composition text,
// then the matched fabric table entry, then the fiber default.
func resolveConstruction(raw RawGarment, resolved resolvedFabric) domain.FabricConstruction {
	text := lower(raw.CompositionText + " " + raw.FabricName + " " + raw.Title)
	for _, marker := range []string{"jersey", "ponte", "rib", "knit"} {
		if strings.Contains(text, marker) {
			return fiberConstructionMap[marker]
		}
	}
	if resolved.Entry != nil && resolved.Entry.Construction != "" {
		return domain.FabricConstruction(resolved.Entry.Construction)
	}
	if c, ok := fiberConstructionMap[normalizeFiber(raw.PrimaryFiber)]; ok {
		return c
	}
	return domain.ConstructionWoven
}

func applyColorAndPattern(raw RawGarment, g *domain.GarmentProfile) {
	if l, ok := colorLightnessMap[lower(raw.ColorLightness)]; ok {
		g.ColorLightness = l
	} else {
		g.ColorLightness = 0.50
	}
	if s, ok := colorSaturationMap[lower(raw.ColorSaturation)]; ok {
		g.ColorSaturation = s
	} else {
		g.ColorSaturation = 0.50
	}
	g.ColorTemperature = lower(raw.ColorTemperature)
	g.ColorName = lower(raw.ColorName)
	g.IsMonochromeOutfit = raw.IsMonochrome

	pattern := lower(raw.PatternType)
	g.PatternType = pattern
	g.HasPattern = pattern != "" && pattern != "solid" && pattern != "none"
	if pattern == "stripes" || pattern == "striped" {
		switch lower(raw.StripeDirection) {
		case "horizontal":
			g.HasHorizontalStripes = true
		case "vertical":
			g.HasVerticalStripes = true
		}
	}
	g.StripeWidthCm = raw.StripeWidthCm
	g.PatternScale = lower(raw.PatternScale)
	if c, ok := patternContrastMap[lower(raw.PatternContrast)]; ok {
		g.PatternContrast = c
	} else if g.HasPattern {
		g.PatternContrast = 0.50
	}
}

var fastFashionBrands = map[string]bool{
	"shein": true, "h&m": true, "forever 21": true, "primark": true,
	"boohoo": true, "fashion nova": true, "romwe": true, "zaful": true,
	"wish": true, "urbanic": true,
}

var luxuryBrands = map[string]bool{
	"gucci": true, "prada": true, "chanel": true, "dior": true,
	"hermes": true, "louis vuitton": true, "saint laurent": true,
	"balenciaga": true, "valentino": true, "bottega veneta": true,
}

var premiumBrands = map[string]bool{
	"theory": true, "vince": true, "sandro": true, "maje": true,
	"reiss": true, "ted baker": true, "coach": true, "tory burch": true,
	"equipment": true, "massimo dutti": true,
}

// estimateBrandTier gates photo-reality adjustments. Known brand names win;
// otherwise price bands decide, and a bare listing lands mid-market.
func estimateBrandTier(brand string, priceUSD float64) domain.BrandTier {
	name := lower(brand)
	switch {
	case fastFashionBrands[name]:
		return domain.TierFastFashion
	case luxuryBrands[name]:
		return domain.TierLuxury
	case premiumBrands[name]:
		return domain.TierPremium
	}
	if priceUSD > 0 {
		switch {
		case priceUSD < 30:
			return domain.TierFastFashion
		case priceUSD < 80:
			return domain.TierMassMarket
		case priceUSD < 200:
			return domain.TierMidMarket
		case priceUSD < 500:
			return domain.TierPremium
		default:
			return domain.TierLuxury
		}
	}
	return domain.TierMidMarket
}

var modelSizeByLabel = map[string]int{
	"xxs": 0, "xs": 0, "s": 4, "m": 8, "l": 12,
	"xl": 16, "xxl": 18, "xxxl": 20,
}

func estimateModelSize(label string) int {
	l := lower(label)
	if size, ok := modelSizeByLabel[l]; ok {
		return size
	}
	if n, err := strconv.Atoi(l); err == nil && n >= 0 && n <= 30 {
		return n
	}
	return 2
}

var fullBodyCategories = map[domain.GarmentCategory]bool{
	domain.CategoryDress:        true,
	domain.CategoryJumpsuit:     true,
	domain.CategoryRomper:       true,
	domain.CategorySaree:        true,
	domain.CategorySalwarKameez: true,
	domain.CategoryLehenga:      true,
}

var lowerBodyCategories = map[domain.GarmentCategory]bool{
	domain.CategoryBottomPants:  true,
	domain.CategoryBottomShorts: true,
	domain.CategorySkirt:        true,
}

func detectZone(c domain.GarmentCategory) string {
	switch {
	case fullBodyCategories[c]:
		return "full_body"
	case lowerBodyCategories[c]:
		return "lower_body"
	default:
		return "torso"
	}
}

func detectCoverage(g domain.GarmentProfile) (waist, hips bool) {
	waist = true
	if g.TopHemBehavior == domain.TopHemCropped {
		waist = false
	}
	switch {
	case lowerBodyCategories[g.Category]:
		hips = true
	case fullBodyCategories[g.Category]:
		hips = g.HemPosition != "mini"
	default:
		hips = g.TopHemBehavior == domain.TopHemUntuckedBelowHip
	}
	return waist, hips
}
