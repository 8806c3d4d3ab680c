package goal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/principle"
)

func TestAssessPassesWhenSupportingPrinciplesScoreHigh(t *testing.T) {
	principles := []domain.PrincipleScore{
		{Name: principle.MonochromeColumn, Score: 0.8, Weight: 1, Confidence: 0.9, Applicable: true},
		{Name: principle.Hemline, Score: 0.6, Weight: 1, Confidence: 0.9, Applicable: true},
		{Name: principle.VNeckElongation, Score: 0.5, Weight: 1, Confidence: 0.9, Applicable: true},
	}

	got := Assess(principles, []domain.StylingGoal{domain.GoalLookTaller})

	require.Len(t, got, 1)
	assert.Equal(t, domain.GoalLookTaller, got[0].Goal)
	assert.Equal(t, domain.VerdictPass, got[0].Verdict)
	assert.Greater(t, got[0].Confidence, 0.0)
}

func TestAssessFightingPrincipleCountsInverted(t *testing.T) {
	// color_break fights look_taller, so a strongly negative color_break
	// reads as support for the goal.
	helped := Assess([]domain.PrincipleScore{
		{Name: principle.ColorBreak, Score: -0.8, Weight: 1, Confidence: 0.9, Applicable: true},
	}, []domain.StylingGoal{domain.GoalLookTaller})
	hurt := Assess([]domain.PrincipleScore{
		{Name: principle.ColorBreak, Score: 0.8, Weight: 1, Confidence: 0.9, Applicable: true},
	}, []domain.StylingGoal{domain.GoalLookTaller})

	require.Len(t, helped, 1)
	require.Len(t, hurt, 1)
	assert.Greater(t, helped[0].Score, hurt[0].Score)
}

func TestAssessFailsOnStronglyNegativeSupport(t *testing.T) {
	principles := []domain.PrincipleScore{
		{Name: principle.MonochromeColumn, Score: -0.8, Weight: 1, Confidence: 0.9, Applicable: true},
		{Name: principle.Hemline, Score: -0.7, Weight: 1, Confidence: 0.9, Applicable: true},
	}

	got := Assess(principles, []domain.StylingGoal{domain.GoalLookTaller})

	require.Len(t, got, 1)
	assert.Equal(t, domain.VerdictFail, got[0].Verdict)
	assert.Less(t, got[0].Score, -0.3)
}

func TestAssessCautionWithLowConfidenceWhenCoverageMissing(t *testing.T) {
	// None of look_taller's principles applied: verdict must hedge rather
	// than claim the goal passed.
	principles := []domain.PrincipleScore{
		{Name: principle.MonochromeColumn, Score: 0.9, Weight: 1, Confidence: 0.9, Applicable: false},
		{Name: principle.Sleeve, Score: 0.9, Weight: 1, Confidence: 0.9, Applicable: true},
	}

	got := Assess(principles, []domain.StylingGoal{domain.GoalLookTaller})

	require.Len(t, got, 1)
	assert.Equal(t, domain.VerdictCaution, got[0].Verdict)
	assert.LessOrEqual(t, got[0].Confidence, 0.30)
}

func TestAssessUnknownGoalHedges(t *testing.T) {
	got := Assess([]domain.PrincipleScore{
		{Name: principle.Hemline, Score: 0.5, Weight: 1, Confidence: 0.9, Applicable: true},
	}, []domain.StylingGoal{domain.StylingGoal("grow_wings")})

	require.Len(t, got, 1)
	assert.Equal(t, domain.VerdictCaution, got[0].Verdict)
	assert.Equal(t, 0.30, got[0].Confidence)
}
