package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/core/ports"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type ScoreHistoryUseCase struct {
	repo ports.ScoreRepository
}

func NewScoreHistoryUseCase(repo ports.ScoreRepository) *ScoreHistoryUseCase {
	return &ScoreHistoryUseCase{repo: repo}
}

func (uc *ScoreHistoryUseCase) GetByID(ctx context.Context, id string) (*domain.ScoreResult, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "get score", errors.New("empty id"))
	}
	return uc.repo.GetResult(ctx, id)
}

func (uc *ScoreHistoryUseCase) ListRecent(ctx context.Context, limit int) ([]domain.ScoreResult, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return uc.repo.ListRecent(ctx, limit)
}
