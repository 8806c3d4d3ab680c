package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/core/ports"
	"github.com/stylesense/fitcore/internal/engine"
	"github.com/stylesense/fitcore/internal/engine/registry"
	"github.com/stylesense/fitcore/internal/intake"
)

type fakeRepo struct {
	requests  map[string]ports.ScoreCommand
	results   map[string]*domain.ScoreResult
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		requests: map[string]ports.ScoreCommand{},
		results:  map[string]*domain.ScoreResult{},
	}
}

func (f *fakeRepo) CreateRequest(_ context.Context, id string, cmd ports.ScoreCommand) error {
	f.requests[id] = cmd
	return nil
}

func (f *fakeRepo) GetRequest(_ context.Context, id string) (*ports.ScoreCommand, error) {
	cmd, ok := f.requests[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrScoreNotFound, "get score request", errors.New(id))
	}
	return &cmd, nil
}

func (f *fakeRepo) CreateResult(_ context.Context, result *domain.ScoreResult) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.results[result.ID] = result
	return nil
}

func (f *fakeRepo) GetResult(_ context.Context, id string) (*domain.ScoreResult, error) {
	result, ok := f.results[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrScoreNotFound, "get score", errors.New(id))
	}
	return result, nil
}

func (f *fakeRepo) ListRecent(_ context.Context, _ int) ([]domain.ScoreResult, error) {
	var out []domain.ScoreResult
	for _, r := range f.results {
		out = append(out, *r)
	}
	return out, nil
}

type fakeQueue struct {
	requested []string
	scored    []string
}

func (f *fakeQueue) PublishScoreRequested(_ context.Context, id string) error {
	f.requested = append(f.requested, id)
	return nil
}

func (f *fakeQueue) PublishGarmentScored(_ context.Context, id string) error {
	f.scored = append(f.scored, id)
	return nil
}

func (f *fakeQueue) SubscribeScoreRequested(_ context.Context, _ func(context.Context, string) error) error {
	return nil
}

type fakeExtractor struct {
	garment *intake.RawGarment
	err     error
	calls   int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (*intake.RawGarment, error) {
	f.calls++
	return f.garment, f.err
}

func testGarment() *intake.RawGarment {
	return &intake.RawGarment{
		Category:       "dress",
		Silhouette:     "a_line",
		Neckline:       "v_neck",
		SleeveType:     "short",
		HemPosition:    "at_knee",
		ColorLightness: "dark",
	}
}

func newScoreUC(repo *fakeRepo, queue *fakeQueue, ext ports.AttributeExtractor) *ScoreGarmentUseCase {
	return NewScoreGarmentUseCase(engine.New(registry.MustLoad()), repo, queue, ext)
}

func TestScorePersistsAndPublishes(t *testing.T) {
	repo := newFakeRepo()
	queue := &fakeQueue{}
	uc := newScoreUC(repo, queue, nil)

	result, err := uc.Score(context.Background(), ports.ScoreCommand{
		Goals:   []string{"look_taller"},
		Garment: testGarment(),
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.ID)
	assert.Contains(t, repo.results, result.ID)
	assert.Equal(t, []string{result.ID}, queue.scored)
	assert.GreaterOrEqual(t, result.DisplayScore, 1.0)
	assert.LessOrEqual(t, result.DisplayScore, 10.0)
}

func TestScoreRejectsEmptyCommand(t *testing.T) {
	uc := newScoreUC(newFakeRepo(), &fakeQueue{}, nil)

	_, err := uc.Score(context.Background(), ports.ScoreCommand{})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrInvalidInput))
}

func TestScoreFailsWithoutExtractorForURLOnlyRequest(t *testing.T) {
	uc := newScoreUC(newFakeRepo(), &fakeQueue{}, nil)

	_, err := uc.Score(context.Background(), ports.ScoreCommand{
		GarmentURL: "https://shop.example/dress",
	})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrUnavailable))
}

func TestScoreExtractsWhenGarmentMissing(t *testing.T) {
	repo := newFakeRepo()
	ext := &fakeExtractor{garment: testGarment()}
	uc := newScoreUC(repo, &fakeQueue{}, ext)

	result, err := uc.Score(context.Background(), ports.ScoreCommand{
		GarmentURL: "https://shop.example/dress",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, ext.calls)
	assert.Contains(t, repo.results, result.ID)
}

func TestEnqueueThenProcessReusesRequestID(t *testing.T) {
	repo := newFakeRepo()
	queue := &fakeQueue{}
	uc := newScoreUC(repo, queue, nil)

	id, err := uc.Enqueue(context.Background(), ports.ScoreCommand{Garment: testGarment()})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, []string{id}, queue.requested)

	require.NoError(t, uc.ProcessByID(context.Background(), id))

	stored, err := repo.GetResult(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, stored.ID)
}

func TestScorePropagatesPersistFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("db down")
	uc := newScoreUC(repo, &fakeQueue{}, nil)

	_, err := uc.Score(context.Background(), ports.ScoreCommand{Garment: testGarment()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist score")
}

func TestProcessByIDUnknownRequest(t *testing.T) {
	uc := newScoreUC(newFakeRepo(), &fakeQueue{}, nil)

	err := uc.ProcessByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrScoreNotFound))
}
