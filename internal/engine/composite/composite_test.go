package composite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/engine/principle"
)

func TestAggregateWeightsByConfidence(t *testing.T) {
	principles := []domain.PrincipleScore{
		{Name: principle.Hemline, Score: 0.8, Weight: 1, Confidence: 0.9, Applicable: true},
		{Name: principle.Sleeve, Score: -0.8, Weight: 1, Confidence: 0.1, Applicable: true},
	}

	got := Aggregate(principles, nil, 0)

	// The confident positive must outweigh the shaky negative.
	assert.Greater(t, got.CompositeRaw, 0.0)
	assert.Greater(t, got.OverallScore, 5.0)
}

func TestAggregateNoActivePrinciplesIsNeutral(t *testing.T) {
	principles := []domain.PrincipleScore{
		{Name: principle.Hemline, Score: 0.8, Weight: 1, Confidence: 0.9, Applicable: false},
	}

	got := Aggregate(principles, nil, 0)

	assert.Equal(t, 5.0, got.OverallScore)
	assert.Equal(t, 0.50, got.Confidence)
	assert.False(t, got.Dominated)
}

func TestAggregateSilhouetteDominance(t *testing.T) {
	// Mostly positive composite, but bodycon mapping is badly negative and
	// a slimming goal is active: the silhouette wins.
	principles := []domain.PrincipleScore{
		{Name: principle.Hemline, Score: 0.7, Weight: 1, Confidence: 0.9, Applicable: true},
		{Name: principle.MonochromeColumn, Score: 0.6, Weight: 1, Confidence: 0.9, Applicable: true},
		{Name: principle.BodyconMapping, Score: -0.6, Weight: 0.2, Confidence: 0.9, Applicable: true},
	}

	plain := Aggregate(principles, nil, 0)
	require.Greater(t, plain.CompositeRaw, 0.0)
	assert.False(t, plain.Dominated)

	dominated := Aggregate(principles, []domain.StylingGoal{domain.GoalSlimming}, 0)
	assert.True(t, dominated.Dominated)
	assert.InDelta(t, -0.6*0.3, dominated.CompositeRaw, 1e-9)
	assert.Less(t, dominated.OverallScore, plain.OverallScore)
}

func TestAggregateAppliesContextAdjustBeforeClamp(t *testing.T) {
	principles := []domain.PrincipleScore{
		{Name: principle.Hemline, Score: 0.4, Weight: 1, Confidence: 0.9, Applicable: true},
	}

	base := Aggregate(principles, nil, 0)
	penalized := Aggregate(principles, nil, -0.35)

	assert.InDelta(t, base.CompositeRaw-0.35, penalized.CompositeRaw, 1e-9)
	assert.Less(t, penalized.OverallScore, base.OverallScore)
}

func TestAggregateClampsComposite(t *testing.T) {
	principles := []domain.PrincipleScore{
		{Name: principle.Hemline, Score: 1.0, Weight: 1, Confidence: 1.0, Applicable: true},
	}

	got := Aggregate(principles, nil, 0.8)

	assert.Equal(t, 1.0, got.CompositeRaw)
	assert.LessOrEqual(t, got.OverallScore, 10.0)
}

func TestZoneScoresFlagDraggingPrinciples(t *testing.T) {
	principles := []domain.PrincipleScore{
		{Name: principle.Hemline, Score: -0.5, Weight: 1, Confidence: 0.9, Applicable: true},
		{Name: principle.Sleeve, Score: 0.4, Weight: 1, Confidence: 0.9, Applicable: true},
	}

	zones := ZoneScores(principles)
	require.NotEmpty(t, zones)

	flagged := false
	for _, z := range zones {
		if z.Score < -0.20 && len(z.Flags) > 0 {
			flagged = true
		}
	}
	assert.True(t, flagged, "expected at least one zone flagged by the negative hemline")
}

func TestSuggestFixesTargetsWorstPrinciples(t *testing.T) {
	principles := []domain.PrincipleScore{
		{Name: principle.Hemline, Score: -0.6, Weight: 1, Confidence: 0.9, Applicable: true},
		{Name: principle.MonochromeColumn, Score: 0.5, Weight: 1, Confidence: 0.9, Applicable: true},
	}

	fixes := SuggestFixes(principles)
	require.NotEmpty(t, fixes)
	for _, f := range fixes {
		assert.NotEmpty(t, f.WhatToChange)
	}
}
