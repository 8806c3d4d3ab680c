// Package registry holds the read-only rule tables the scoring pipeline
// consults. A Registry is built once from embedded YAML, never mutated
// afterwards, and is safe to share across concurrent scoring calls.
package registry

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

// GoldenRatio is the perceptual leg-to-height target.
const GoldenRatio = 0.618

// Fabric is one entry of the fabric lookup table.
type Fabric struct {
	BaseGSM        float64 `yaml:"base_gsm"`
	Fiber          string  `yaml:"fiber"`
	Construction   string  `yaml:"construction"`
	Surface        string  `yaml:"surface"`
	Drape          float64 `yaml:"drape"`
	TypicalStretch float64 `yaml:"typical_stretch"`
}

// VDepthRange is the neckline depth window for a body tag.
type VDepthRange struct {
	Min     float64 `yaml:"min"`
	Optimal float64 `yaml:"optimal"`
	Max     float64 `yaml:"max"`
}

// Reversal tags a (principle, body condition) pair whose score direction
// flips relative to the general population.
type Reversal struct {
	Principle string `yaml:"principle"`
	Condition string `yaml:"condition"` // body shape name or petite/tall/plus_size
	Note      string `yaml:"note"`
}

type rulesFile struct {
	ElastaneMultipliers    map[string]float64            `yaml:"elastane_multipliers"`
	FiberGSMMultipliers    map[string]float64            `yaml:"fiber_gsm_multipliers"`
	SheenMap               map[string]float64            `yaml:"sheen_map"`
	WaistMultipliers       map[string]float64            `yaml:"waist_position_multipliers"`
	HemTypeModifiers       map[string]float64            `yaml:"hem_type_modifiers"`
	ShoulderWidthModifiers map[string]float64            `yaml:"shoulder_width_modifiers"`
	BaseWeights            map[string]float64            `yaml:"base_weights"`
	GoalBoosts             map[string]map[string]float64 `yaml:"goal_weight_boosts"`
	PrincipleConfidence    map[string]float64            `yaml:"principle_confidence"`
	BustThresholds         map[int]float64               `yaml:"bust_dividing_thresholds"`
	OptimalVDepth          map[string]VDepthRange        `yaml:"optimal_v_depth"`
	FitExpansionRates      map[string]float64            `yaml:"fit_expansion_rates"`
	Fabrics                map[string]Fabric             `yaml:"fabrics"`
	Reversals              []Reversal                    `yaml:"reversals"`
}

// Registry is the immutable rule set. Construct with Load; lookup methods
// resolve missing keys to documented defaults and never fail.
type Registry struct {
	elastaneMultipliers map[string]float64
	fiberGSM            map[string]float64
	sheen               map[string]float64
	waistMultipliers    map[string]float64
	hemTypeModifiers    map[string]float64
	shoulderModifiers   map[string]float64
	baseWeights         map[string]float64
	goalBoosts          map[string]map[string]float64
	confidence          map[string]float64
	bustThresholds      []bustThreshold
	vDepth              map[string]VDepthRange
	fitExpansion        map[string]float64
	fabrics             map[string]Fabric
	reversals           map[string]Reversal
}

type bustThreshold struct {
	maxDifferential float64
	threshold       float64
}

// Load parses the embedded rule tables and builds the indexed registry.
func Load() (*Registry, error) {
	return Parse(rulesYAML)
}

// Parse builds a registry from raw YAML. Used by Load and by rule reloads
// that read an operator-supplied override file.
func Parse(data []byte) (*Registry, error) {
	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}

	r := &Registry{
		elastaneMultipliers: f.ElastaneMultipliers,
		fiberGSM:            f.FiberGSMMultipliers,
		sheen:               f.SheenMap,
		waistMultipliers:    f.WaistMultipliers,
		hemTypeModifiers:    f.HemTypeModifiers,
		shoulderModifiers:   f.ShoulderWidthModifiers,
		baseWeights:         f.BaseWeights,
		goalBoosts:          f.GoalBoosts,
		confidence:          f.PrincipleConfidence,
		vDepth:              f.OptimalVDepth,
		fitExpansion:        f.FitExpansionRates,
		fabrics:             f.Fabrics,
		reversals:           make(map[string]Reversal, len(f.Reversals)),
	}

	for bd, th := range f.BustThresholds {
		r.bustThresholds = append(r.bustThresholds, bustThreshold{
			maxDifferential: float64(bd),
			threshold:       th,
		})
	}
	sort.Slice(r.bustThresholds, func(i, j int) bool {
		return r.bustThresholds[i].maxDifferential < r.bustThresholds[j].maxDifferential
	})

	for _, rev := range f.Reversals {
		r.reversals[rev.Principle+"|"+rev.Condition] = rev
	}

	if len(r.fabrics) == 0 {
		return nil, fmt.Errorf("embedded rules: fabric table is empty")
	}
	return r, nil
}

// MustLoad is Load for wiring paths where the embedded data is trusted.
func MustLoad() *Registry {
	r, err := Load()
	if err != nil {
		panic(err)
	}
	return r
}

// FabricData looks up a fabric by name. The second return reports whether
// the name was known; callers fall back to garment-level attributes.
func (r *Registry) FabricData(name string) (Fabric, bool) {
	f, ok := r.fabrics[name]
	return f, ok
}

func (r *Registry) FabricCount() int { return len(r.fabrics) }

// ElastaneMultiplier converts elastane percentage to total stretch for a
// construction. Unknown constructions resolve to 2.0.
func (r *Registry) ElastaneMultiplier(construction string) float64 {
	if m, ok := r.elastaneMultipliers[construction]; ok {
		return m
	}
	return 2.0
}

// FiberGSMMultiplier adjusts stated GSM for fiber density. Default 1.0.
func (r *Registry) FiberGSMMultiplier(fiber string) float64 {
	if m, ok := r.fiberGSM[fiber]; ok {
		return m
	}
	return 1.0
}

// SheenIndex maps a surface finish to its 0-1 sheen score. Default 0.10.
func (r *Registry) SheenIndex(surface string) float64 {
	if s, ok := r.sheen[surface]; ok {
		return s
	}
	return 0.10
}

// WaistMultiplier is the torso-length share for a waist position label.
// The second return is false for no_waist and unknown labels.
func (r *Registry) WaistMultiplier(position string) (float64, bool) {
	m, ok := r.waistMultipliers[position]
	return m, ok
}

// HemTypeModifier is the perceived-width adjustment for a sleeve hem finish.
func (r *Registry) HemTypeModifier(hemType string) float64 {
	return r.hemTypeModifiers[hemType]
}

// ShoulderModifier is the per-side shoulder width effect of a sleeve type.
func (r *Registry) ShoulderModifier(sleeveType string) float64 {
	return r.shoulderModifiers[sleeveType]
}

// BaseWeight is a principle's uncalibrated weight. Default 0.10.
func (r *Registry) BaseWeight(principle string) float64 {
	if w, ok := r.baseWeights[principle]; ok {
		return w
	}
	return 0.10
}

// GoalBoost is the weight multiplier a goal applies to a principle.
// 1.0 when the goal does not target the principle.
func (r *Registry) GoalBoost(goal, principle string) float64 {
	if boosts, ok := r.goalBoosts[goal]; ok {
		if b, ok := boosts[principle]; ok {
			return b
		}
	}
	return 1.0
}

// Confidence is the empirical confidence behind a principle. Default 0.70.
func (r *Registry) Confidence(principle string) float64 {
	if c, ok := r.confidence[principle]; ok {
		return c
	}
	return 0.70
}

// BustDividingThreshold returns the neckline depth past which a V divides
// the bust, for a given bust differential. Defaults to 3.5 (F+ cup).
func (r *Registry) BustDividingThreshold(bustDifferential float64) float64 {
	for _, bt := range r.bustThresholds {
		if bustDifferential <= bt.maxDifferential {
			return bt.threshold
		}
	}
	return 3.5
}

// OptimalVDepth is the flattering neckline depth window for a body tag.
func (r *Registry) OptimalVDepth(tag string) (VDepthRange, bool) {
	v, ok := r.vDepth[tag]
	return v, ok
}

// FitExpansionRate maps a fit category to its expansion rate. Default 0.05.
func (r *Registry) FitExpansionRate(fitCategory string) float64 {
	if e, ok := r.fitExpansion[fitCategory]; ok {
		return e
	}
	return 0.05
}

// ReversalFor reports whether the score direction of a principle flips
// under a body condition.
func (r *Registry) ReversalFor(principle, condition string) (Reversal, bool) {
	rev, ok := r.reversals[principle+"|"+condition]
	return rev, ok
}
