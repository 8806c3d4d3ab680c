package usecase

import (
	"context"
	"fmt"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/core/ports"
)

type CommunicateUseCase struct {
	scorer  ports.GarmentScorer
	stylist ports.StyleCommunicator
}

func NewCommunicateUseCase(scorer ports.GarmentScorer, stylist ports.StyleCommunicator) *CommunicateUseCase {
	return &CommunicateUseCase{scorer: scorer, stylist: stylist}
}

// ScoreAndCommunicate scores the garment and narrates the result. A stylist
// outage degrades to locally composed advice instead of failing the request.
func (uc *CommunicateUseCase) ScoreAndCommunicate(ctx context.Context, cmd ports.ScoreCommand) (*domain.ScoredAdvice, error) {
	result, err := uc.scorer.Score(ctx, cmd)
	if err != nil {
		return nil, err
	}

	var advice *domain.StyleAdvice
	if uc.stylist != nil {
		advice, err = uc.stylist.Narrate(ctx, *result)
	}
	if err != nil || advice == nil {
		advice = fallbackAdvice(result)
	}

	return &domain.ScoredAdvice{Result: *result, Advice: *advice}, nil
}

func fallbackAdvice(result *domain.ScoreResult) *domain.StyleAdvice {
	advice := &domain.StyleAdvice{
		Headline: headlineFor(result.DisplayScore),
		Source:   "fallback",
	}
	for _, fix := range result.Fixes {
		advice.Tips = append(advice.Tips, fix.WhatToChange)
	}
	return advice
}

func headlineFor(display float64) string {
	switch {
	case display >= 8.5:
		return fmt.Sprintf("Excellent match (%.1f/10)", display)
	case display >= 7.0:
		return fmt.Sprintf("Strong match (%.1f/10)", display)
	case display >= 5.5:
		return fmt.Sprintf("Workable with styling (%.1f/10)", display)
	default:
		return fmt.Sprintf("Likely to disappoint (%.1f/10)", display)
	}
}
