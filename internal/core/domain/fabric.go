package domain

// FabricResolution is the behavioral read of a garment's raw composition.
type FabricResolution struct {
	TotalStretchPct      float64 `json:"total_stretch_pct"`
	EffectiveGSM         float64 `json:"effective_gsm"`
	SheenScore           float64 `json:"sheen_score"`
	DrapeCoefficient     float64 `json:"drape_coefficient"`
	ClingRiskBase        float64 `json:"cling_risk_base"`
	IsStructured         bool    `json:"is_structured"`
	PhotoRealityDiscount float64 `json:"photo_reality_discount"`
	SurfaceFriction      float64 `json:"surface_friction"`

	Exceptions []Exception `json:"exceptions,omitempty"`

	// ClingChecks holds per-zone cling assessments for close-cut garments,
	// keyed by body zone ("bust", "waist", "hip").
	ClingChecks map[string]ClingCheck `json:"cling_checks,omitempty"`
}

// ClingCheck is a per-zone cling assessment against the fabric's stretch.
type ClingCheck struct {
	StretchDemandPct float64 `json:"stretch_demand_pct"`
	BaseThreshold    float64 `json:"base_threshold"`
	ExceedsThreshold bool    `json:"exceeds_threshold"`
	Severity         float64 `json:"severity"`
}

// PenaltyReduction reports the share of negative principle scores that
// survives gate overrides. Structured garments keep only 30%.
func (f FabricResolution) PenaltyReduction() float64 {
	if f.HasException("GATE_STRUCTURED") {
		return 0.30
	}
	return 1.0
}

func (f FabricResolution) HasException(id string) bool {
	for _, ex := range f.Exceptions {
		if ex.ID == id {
			return true
		}
	}
	return false
}
