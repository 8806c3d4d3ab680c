// Package engine orchestrates the scoring pipeline: fabric resolution and
// gates, garment classification, body translation, principle scoring,
// perceptual calibration, goal verdicts, context modifiers and the final
// composite. The engine is stateless apart from the rules registry, which
// swaps atomically on reload so concurrent scoring never sees a partial
// rule set.
package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/calibrate"
	"github.com/stylesense/fitcore/internal/engine/composite"
	"github.com/stylesense/fitcore/internal/engine/contextmod"
	"github.com/stylesense/fitcore/internal/engine/fabric"
	"github.com/stylesense/fitcore/internal/engine/goal"
	"github.com/stylesense/fitcore/internal/engine/principle"
	"github.com/stylesense/fitcore/internal/engine/registry"
	"github.com/stylesense/fitcore/internal/engine/translate"
)

// Engine scores garments against bodies. Safe for concurrent use.
type Engine struct {
	rules atomic.Pointer[registry.Registry]
}

// New builds an engine over the given rules registry.
func New(reg *registry.Registry) *Engine {
	e := &Engine{}
	e.rules.Store(reg)
	return e
}

// Rules returns the active registry snapshot.
func (e *Engine) Rules() *registry.Registry { return e.rules.Load() }

// Reload swaps in a new registry. In-flight scores keep the snapshot they
// started with.
func (e *Engine) Reload(reg *registry.Registry) { e.rules.Store(reg) }

// Score runs the full pipeline. It never fails: missing attributes make
// individual principles inapplicable rather than erroring the request.
func (e *Engine) Score(b domain.BodyProfile, g domain.GarmentProfile, ctx contextmod.Context) domain.ScoreResult {
	reg := e.rules.Load()
	var chain []string

	resolved := fabric.Resolve(reg, g)
	resolved = fabric.RunGates(g, b, resolved)
	resolved.ClingChecks = fabric.ClingByZone(resolved, g, b)
	penaltyReduction := resolved.PenaltyReduction()
	chain = append(chain, fmt.Sprintf(
		"fabric: stretch=%.1f%%, GSM=%.0f, sheen=%.2f, gates=%d",
		resolved.TotalStretchPct, resolved.EffectiveGSM, resolved.SheenScore,
		len(resolved.Exceptions)))

	g.Category = principle.Classify(g)
	chain = append(chain, fmt.Sprintf("classification: %s", g.Category))

	translation, detail := translate.Garment(reg, g, b, resolved)
	chain = append(chain, fmt.Sprintf(
		"translation: hem=%.1f\", sleeve_delta=%+.2f\", leg_ratio=%.3f",
		translation.HemFromFloor, translation.ArmWidthDelta, translation.VisualLegRatio))

	scores := principle.ScoreAll(principle.Input{
		Reg:      reg,
		Garment:  g,
		Body:     b,
		Resolved: resolved,
		Detail:   detail,
	}, penaltyReduction)

	active := 0
	for _, p := range scores {
		if p.Applicable {
			active++
		}
	}
	chain = append(chain, fmt.Sprintf("principles: %d/%d active", active, len(scores)))

	calibrate.Apply(reg, scores, b.StylingGoals)
	chain = append(chain, "calibration: goal boosts and negative amplification applied")

	goals := goal.Assess(scores, b.StylingGoals)
	passes, fails := 0, 0
	for _, ga := range goals {
		switch ga.Verdict {
		case domain.VerdictPass:
			passes++
		case domain.VerdictFail:
			fails++
		}
	}
	chain = append(chain, fmt.Sprintf("goals: %d pass, %d fail", passes, fails))

	var contextAdjust float64
	if !ctx.Empty() {
		adjustments := contextmod.Apply(ctx, scores, b, g)
		for name, delta := range adjustments {
			contextAdjust += delta
			chain = append(chain, fmt.Sprintf("context %s: %+.2f", name, delta))
		}
	}

	agg := composite.Aggregate(scores, b.StylingGoals, contextAdjust)
	if agg.Dominated {
		chain = append(chain, "silhouette dominance: worst silhouette score overrides positive composite")
	}
	chain = append(chain, fmt.Sprintf(
		"composite: raw=%+.3f, overall=%.1f/10, confidence=%.2f",
		agg.CompositeRaw, agg.OverallScore, agg.Confidence))

	result := domain.ScoreResult{
		OverallScore:    agg.OverallScore,
		DisplayScore:    agg.DisplayScore,
		CompositeRaw:    agg.CompositeRaw,
		Confidence:      agg.Confidence,
		PrincipleScores: scores,
		GoalAssessments: goals,
		ZoneScores:      composite.ZoneScores(scores),
		Exceptions:      resolved.Exceptions,
		Fixes:           composite.SuggestFixes(scores),
		Translation:     &translation,
		ReasoningChain:  chain,
		CreatedAt:       time.Now().UTC(),
	}

	if principle.IsLayerGarment(g.Category) {
		mods, notes := principle.LayerEffects(g, b)
		if len(mods) > 0 || len(notes) > 0 {
			result.LayerNotes = make(map[string]string, len(mods)+len(notes))
			for _, m := range mods {
				result.LayerNotes[m.Type] = m.Description
			}
			for i, n := range notes {
				result.LayerNotes[fmt.Sprintf("styling_note_%d", i+1)] = n
			}
		}
	}

	return result
}
