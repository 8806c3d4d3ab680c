package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/core/ports"
)

type stubScorer struct {
	result *domain.ScoreResult
	err    error
}

func (s *stubScorer) Score(_ context.Context, _ ports.ScoreCommand) (*domain.ScoreResult, error) {
	return s.result, s.err
}

func (s *stubScorer) Enqueue(_ context.Context, _ ports.ScoreCommand) (string, error) {
	return "", errors.New("not implemented")
}

type stubStylist struct {
	advice *domain.StyleAdvice
	err    error
	calls  int
}

func (s *stubStylist) Narrate(_ context.Context, _ domain.ScoreResult) (*domain.StyleAdvice, error) {
	s.calls++
	return s.advice, s.err
}

func scoredResult() *domain.ScoreResult {
	return &domain.ScoreResult{
		ID:           "score-1",
		DisplayScore: 7.6,
		Fixes: []domain.Fix{
			{WhatToChange: "Choose high-rise pants to elongate your leg line"},
		},
	}
}

func TestScoreAndCommunicateUsesStylist(t *testing.T) {
	stylist := &stubStylist{advice: &domain.StyleAdvice{
		Headline: "A lengthening line that works hard for you",
		Source:   "stylist",
	}}
	uc := NewCommunicateUseCase(&stubScorer{result: scoredResult()}, stylist)

	got, err := uc.ScoreAndCommunicate(context.Background(), ports.ScoreCommand{})
	require.NoError(t, err)

	assert.Equal(t, 1, stylist.calls)
	assert.Equal(t, "stylist", got.Advice.Source)
	assert.Equal(t, "score-1", got.Result.ID)
}

func TestScoreAndCommunicateFallsBackOnStylistError(t *testing.T) {
	stylist := &stubStylist{err: errors.New("stylist down")}
	uc := NewCommunicateUseCase(&stubScorer{result: scoredResult()}, stylist)

	got, err := uc.ScoreAndCommunicate(context.Background(), ports.ScoreCommand{})
	require.NoError(t, err)

	assert.Equal(t, "fallback", got.Advice.Source)
	assert.Contains(t, got.Advice.Headline, "Strong match")
	require.Len(t, got.Advice.Tips, 1)
}

func TestScoreAndCommunicateWithoutStylistConfigured(t *testing.T) {
	uc := NewCommunicateUseCase(&stubScorer{result: scoredResult()}, nil)

	got, err := uc.ScoreAndCommunicate(context.Background(), ports.ScoreCommand{})
	require.NoError(t, err)
	assert.Equal(t, "fallback", got.Advice.Source)
}

func TestScoreAndCommunicatePropagatesScoreFailure(t *testing.T) {
	wantErr := domain.WrapError(domain.ErrInvalidInput, "validate score request", errors.New("empty"))
	uc := NewCommunicateUseCase(&stubScorer{err: wantErr}, &stubStylist{})

	_, err := uc.ScoreAndCommunicate(context.Background(), ports.ScoreCommand{})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrInvalidInput))
}

func TestHeadlineBands(t *testing.T) {
	assert.Contains(t, headlineFor(9.0), "Excellent match")
	assert.Contains(t, headlineFor(7.0), "Strong match")
	assert.Contains(t, headlineFor(6.0), "Workable with styling")
	assert.Contains(t, headlineFor(3.0), "Likely to disappoint")
}
