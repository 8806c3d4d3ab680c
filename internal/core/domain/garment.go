package domain

type FabricConstruction string

const (
	ConstructionWoven      FabricConstruction = "woven"
	ConstructionKnit       FabricConstruction = "knit"
	ConstructionKnitRib    FabricConstruction = "knit_rib"
	ConstructionKnitDouble FabricConstruction = "knit_double"
	ConstructionKnitJersey FabricConstruction = "knit_jersey"
)

type SurfaceFinish string

const (
	SurfaceDeepMatte     SurfaceFinish = "deep_matte"
	SurfaceMatte         SurfaceFinish = "matte"
	SurfaceSubtleSheen   SurfaceFinish = "subtle_sheen"
	SurfaceModerateSheen SurfaceFinish = "moderate_sheen"
	SurfaceHighShine     SurfaceFinish = "high_shine"
	SurfaceMaximumShine  SurfaceFinish = "maximum_shine"
	SurfaceCrushed       SurfaceFinish = "crushed"
)

type Silhouette string

const (
	SilhouetteFitted        Silhouette = "fitted"
	SilhouetteSemiFitted    Silhouette = "semi_fitted"
	SilhouetteALine         Silhouette = "a_line"
	SilhouetteEmpire        Silhouette = "empire"
	SilhouetteWrap          Silhouette = "wrap"
	SilhouetteShift         Silhouette = "shift"
	SilhouettePeplum        Silhouette = "peplum"
	SilhouetteFitAndFlare   Silhouette = "fit_and_flare"
	SilhouetteOversized     Silhouette = "oversized"
	SilhouetteArchitectural Silhouette = "architectural"
	SilhouetteUnknown       Silhouette = "unknown"
)

type SleeveType string

const (
	SleeveSleeveless   SleeveType = "sleeveless"
	SleeveCap          SleeveType = "cap"
	SleeveShort        SleeveType = "short"
	SleeveThreeQuarter SleeveType = "three_quarter"
	SleeveLong         SleeveType = "long"
	SleeveRaglan       SleeveType = "raglan"
	SleeveDolman       SleeveType = "dolman"
	SleevePuff         SleeveType = "puff"
	SleeveFlutter      SleeveType = "flutter"
	SleeveBell         SleeveType = "bell"
	SleeveSetIn        SleeveType = "set_in"
	SleeveUnknown      SleeveType = "unknown"
)

type NecklineType string

const (
	NecklineVNeck       NecklineType = "v_neck"
	NecklineDeepV       NecklineType = "deep_v"
	NecklineScoop       NecklineType = "scoop"
	NecklineCrew        NecklineType = "crew"
	NecklineBoat        NecklineType = "boat"
	NecklineSquare      NecklineType = "square"
	NecklineOffShoulder NecklineType = "off_shoulder"
	NecklineHalter      NecklineType = "halter"
	NecklineCowl        NecklineType = "cowl"
	NecklineTurtleneck  NecklineType = "turtleneck"
	NecklineWrap        NecklineType = "wrap"
	NecklineUnknown     NecklineType = "unknown"
)

type GarmentCategory string

const (
	CategoryDress        GarmentCategory = "dress"
	CategoryTop          GarmentCategory = "top"
	CategoryBottomPants  GarmentCategory = "bottom_pants"
	CategoryBottomShorts GarmentCategory = "bottom_shorts"
	CategorySkirt        GarmentCategory = "skirt"
	CategoryJumpsuit     GarmentCategory = "jumpsuit"
	CategoryRomper       GarmentCategory = "romper"
	CategoryJacket       GarmentCategory = "jacket"
	CategoryCoat         GarmentCategory = "coat"
	CategorySweatshirt   GarmentCategory = "sweatshirt"
	CategoryCardigan     GarmentCategory = "cardigan"
	CategoryVest         GarmentCategory = "vest"
	CategoryBodysuit     GarmentCategory = "bodysuit"
	CategoryLoungewear   GarmentCategory = "loungewear"
	CategoryActivewear   GarmentCategory = "activewear"
	CategorySaree        GarmentCategory = "saree"
	CategorySalwarKameez GarmentCategory = "salwar_kameez"
	CategoryLehenga      GarmentCategory = "lehenga"
)

type GarmentLayer string

const (
	LayerBase  GarmentLayer = "base"
	LayerMid   GarmentLayer = "mid"
	LayerOuter GarmentLayer = "outer"
)

type TopHemBehavior string

const (
	TopHemTucked          TopHemBehavior = "tucked"
	TopHemHalfTucked      TopHemBehavior = "half_tucked"
	TopHemUntuckedAtHip   TopHemBehavior = "untucked_at_hip"
	TopHemUntuckedBelowHip TopHemBehavior = "untucked_below_hip"
	TopHemCropped         TopHemBehavior = "cropped"
	TopHemBodysuit        TopHemBehavior = "bodysuit"
)

type BrandTier string

const (
	TierLuxury      BrandTier = "luxury"
	TierPremium     BrandTier = "premium"
	TierMidMarket   BrandTier = "mid_market"
	TierMassMarket  BrandTier = "mass_market"
	TierFastFashion BrandTier = "fast_fashion"
)

// GarmentProfile is the full garment description after intake coercion.
// Optional attributes use pointers; nil means the attribute was not observed,
// which downstream scorers treat as not-applicable rather than an error.
type GarmentProfile struct {
	PrimaryFiber    string             `json:"primary_fiber"`
	PrimaryFiberPct float64            `json:"primary_fiber_pct"`
	SecondaryFiber  string             `json:"secondary_fiber,omitempty"`
	ElastanePct     float64            `json:"elastane_pct"`
	FabricName      string             `json:"fabric_name,omitempty"`
	Construction    FabricConstruction `json:"construction"`
	GSMEstimated    float64            `json:"gsm_estimated"`
	Surface         SurfaceFinish      `json:"surface"`
	SurfaceFriction float64            `json:"surface_friction"`
	Drape           float64            `json:"drape"`

	Category        GarmentCategory `json:"category"`
	Silhouette      Silhouette      `json:"silhouette"`
	ExpansionRate   float64         `json:"expansion_rate"`
	SilhouetteLabel string          `json:"silhouette_label,omitempty"`

	Neckline      NecklineType `json:"neckline"`
	VDepthCm      float64      `json:"v_depth_cm"`
	NecklineDepth *float64     `json:"neckline_depth,omitempty"`

	SleeveType     SleeveType `json:"sleeve_type"`
	SleeveLengthIn *float64   `json:"sleeve_length_inches,omitempty"`
	SleeveEaseIn   float64    `json:"sleeve_ease_inches"`

	RiseCm              *float64 `json:"rise_cm,omitempty"`
	WaistbandWidthCm    float64  `json:"waistband_width_cm"`
	WaistbandStretchPct float64  `json:"waistband_stretch_pct"`
	WaistPosition      string   `json:"waist_position"`
	HasWaistDefinition *bool    `json:"has_waist_definition,omitempty"`

	HemPosition     string   `json:"hem_position"`
	GarmentLengthIn *float64 `json:"garment_length_inches,omitempty"`

	CoversWaist bool   `json:"covers_waist"`
	CoversHips  bool   `json:"covers_hips"`
	Zone        string `json:"zone"`

	// Outfit footwear context, when the request pairs the garment with
	// shoes. A nude shoe extends the leg line; a contrasting one cuts it.
	HeelHeightIn float64 `json:"heel_height_inches,omitempty"`
	NudeShoe     bool    `json:"nude_shoe,omitempty"`
	ContrastShoe bool    `json:"contrast_shoe,omitempty"`

	ColorLightness     float64 `json:"color_lightness"`
	ColorSaturation    float64 `json:"color_saturation"`
	ColorTemperature   string  `json:"color_temperature,omitempty"`
	ColorName          string  `json:"color_name,omitempty"`
	IsMonochromeOutfit bool    `json:"is_monochrome_outfit"`

	HasPattern           bool    `json:"has_pattern"`
	PatternType          string  `json:"pattern_type,omitempty"`
	HasHorizontalStripes bool    `json:"has_horizontal_stripes"`
	HasVerticalStripes   bool    `json:"has_vertical_stripes"`
	StripeWidthCm        float64 `json:"stripe_width_cm"`
	PatternScale         string  `json:"pattern_scale,omitempty"`
	PatternContrast      float64 `json:"pattern_contrast"`

	HasContrastingBelt bool    `json:"has_contrasting_belt"`
	HasTonalBelt       bool    `json:"has_tonal_belt"`
	BeltWidthCm        float64 `json:"belt_width_cm"`

	IsStructured   bool    `json:"is_structured"`
	HasDarts       bool    `json:"has_darts"`
	HasLining      bool    `json:"has_lining"`
	IsFauxWrap     bool    `json:"is_faux_wrap"`
	GarmentEaseIn  float64 `json:"garment_ease_inches"`

	BrandTier          BrandTier `json:"brand_tier"`
	UsesDiverseModel   bool      `json:"uses_diverse_model"`
	ModelEstimatedSize int       `json:"model_estimated_size"`

	GarmentLayer GarmentLayer `json:"garment_layer"`
	Title        string       `json:"title,omitempty"`
	FitCategory  string       `json:"fit_category,omitempty"`

	TopHemLength   string         `json:"top_hem_length,omitempty"`
	TopHemBehavior TopHemBehavior `json:"top_hem_behavior,omitempty"`

	Rise          string `json:"rise,omitempty"`
	LegShape      string `json:"leg_shape,omitempty"`
	BottomLength  string `json:"bottom_length,omitempty"`

	JacketClosure     string `json:"jacket_closure,omitempty"`
	JacketLength      string `json:"jacket_length,omitempty"`
	ShoulderStructure string `json:"shoulder_structure,omitempty"`

	SkirtConstruction string `json:"skirt_construction,omitempty"`
}

func (g GarmentProfile) IsDark() bool { return g.ColorLightness < 0.25 }

// WaistDefined resolves the optional waist flag; absent reads as undefined.
func (g GarmentProfile) WaistDefined() bool {
	return g.HasWaistDefinition != nil && *g.HasWaistDefinition
}
