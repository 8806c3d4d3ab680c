package calibrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/registry"
)

func applicableTotal(principles []domain.PrincipleScore) float64 {
	var total float64
	for _, p := range principles {
		if p.Applicable {
			total += p.Weight
		}
	}
	return total
}

func TestApplyAmplifiesNegativeScores(t *testing.T) {
	reg := registry.MustLoad()
	principles := []domain.PrincipleScore{
		{Name: "hemline", Score: 0.5, Weight: 1.0, Confidence: 0.9, Applicable: true},
		{Name: "sleeve", Score: -0.5, Weight: 1.0, Confidence: 0.9, Applicable: true},
		{Name: "color_value", Score: 0.2, Weight: 1.0, Confidence: 0.9, Applicable: true},
		{Name: "matte_zone", Score: 0.1, Weight: 1.0, Confidence: 0.9, Applicable: true},
	}

	Apply(reg, principles, nil)

	assert.Greater(t, principles[1].Weight, principles[0].Weight,
		"a negative score must carry more weight than an equal positive one")
}

func TestApplySkipsInapplicablePrinciples(t *testing.T) {
	reg := registry.MustLoad()
	principles := []domain.PrincipleScore{
		{Name: "hemline", Score: -0.8, Weight: 1.0, Confidence: 0.9, Applicable: false},
		{Name: "sleeve", Score: 0.2, Weight: 1.0, Confidence: 0.9, Applicable: true},
	}

	Apply(reg, principles, []domain.StylingGoal{domain.GoalLookTaller})

	assert.Equal(t, 1.0, principles[0].Weight, "inapplicable weight must not change")
}

func TestApplyEnforcesWeightShareCap(t *testing.T) {
	reg := registry.MustLoad()
	principles := []domain.PrincipleScore{
		{Name: "monochrome_column", Score: 0.9, Weight: 10.0, Confidence: 0.9, Applicable: true},
		{Name: "hemline", Score: 0.3, Weight: 1.0, Confidence: 0.9, Applicable: true},
		{Name: "sleeve", Score: 0.2, Weight: 1.0, Confidence: 0.9, Applicable: true},
		{Name: "color_value", Score: 0.1, Weight: 1.0, Confidence: 0.9, Applicable: true},
	}
	before := applicableTotal(principles)

	Apply(reg, principles, nil)

	after := applicableTotal(principles)
	assert.InDelta(t, before, after, 1e-9, "redistribution must preserve the total weight")

	limit := maxWeightShare * after
	for _, p := range principles {
		require.LessOrEqual(t, p.Weight, limit+1e-9, p.Name)
	}
}

func TestApplyBoostsGoalAlignedPrinciples(t *testing.T) {
	reg := registry.MustLoad()
	boost := reg.GoalBoost(string(domain.GoalLookTaller), "monochrome_column")
	require.Greater(t, boost, 1.0, "rules must carry a look_taller boost for monochrome_column")

	aligned := []domain.PrincipleScore{
		{Name: "monochrome_column", Score: 0.5, Weight: 1.0, Confidence: 0.9, Applicable: true},
		{Name: "matte_zone", Score: 0.5, Weight: 1.0, Confidence: 0.9, Applicable: true},
		{Name: "sleeve", Score: 0.5, Weight: 1.0, Confidence: 0.9, Applicable: true},
		{Name: "color_value", Score: 0.5, Weight: 1.0, Confidence: 0.9, Applicable: true},
	}
	Apply(reg, aligned, []domain.StylingGoal{domain.GoalLookTaller})

	assert.Greater(t, aligned[0].Weight, aligned[1].Weight)
}

func TestApplyPreservesBaseWeight(t *testing.T) {
	reg := registry.MustLoad()
	principles := []domain.PrincipleScore{
		{Name: "monochrome_column", Score: 0.9, Weight: 10.0, Confidence: 0.9, Applicable: true},
		{Name: "hemline", Score: -0.4, Weight: 1.0, Confidence: 0.9, Applicable: true},
		{Name: "sleeve", Score: 0.2, Weight: 1.0, Confidence: 0.9, Applicable: true},
		{Name: "color_value", Score: 0.1, Weight: 1.0, Confidence: 0.9, Applicable: true},
	}

	Apply(reg, principles, nil)

	require.Equal(t, 10.0, principles[0].BaseWeight)
	assert.NotEqual(t, principles[0].BaseWeight, principles[0].Weight,
		"the share cap must have moved the dominant weight off its base")
	assert.Equal(t, 1.0, principles[1].BaseWeight)
	assert.Greater(t, principles[1].Weight, principles[1].BaseWeight,
		"negative amplification shows against the recorded base")
}
