package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesense/fitcore/internal/core/domain"
)

func TestGetByIDRejectsEmptyID(t *testing.T) {
	uc := NewScoreHistoryUseCase(newFakeRepo())

	_, err := uc.GetByID(context.Background(), "  ")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrInvalidInput))
}

func TestGetByIDReturnsStoredResult(t *testing.T) {
	repo := newFakeRepo()
	repo.results["score-1"] = &domain.ScoreResult{ID: "score-1", DisplayScore: 8.1}
	uc := NewScoreHistoryUseCase(repo)

	got, err := uc.GetByID(context.Background(), "score-1")
	require.NoError(t, err)
	assert.Equal(t, 8.1, got.DisplayScore)
}

func TestListRecentClampsLimit(t *testing.T) {
	repo := &limitCapturingRepo{fakeRepo: newFakeRepo()}
	uc := NewScoreHistoryUseCase(repo)

	_, err := uc.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, defaultHistoryLimit, repo.lastLimit)

	_, err = uc.ListRecent(context.Background(), 10_000)
	require.NoError(t, err)
	assert.Equal(t, maxHistoryLimit, repo.lastLimit)
}

type limitCapturingRepo struct {
	*fakeRepo
	lastLimit int
}

func (f *limitCapturingRepo) ListRecent(ctx context.Context, limit int) ([]domain.ScoreResult, error) {
	f.lastLimit = limit
	return f.fakeRepo.ListRecent(ctx, limit)
}
