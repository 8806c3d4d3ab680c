package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/core/ports"
	"github.com/stylesense/fitcore/internal/engine"
	"github.com/stylesense/fitcore/internal/engine/contextmod"
	"github.com/stylesense/fitcore/internal/intake"
)

type ScoreGarmentUseCase struct {
	eng       *engine.Engine
	repo      ports.ScoreRepository
	queue     ports.MessageQueue
	extractor ports.AttributeExtractor
}

func NewScoreGarmentUseCase(
	eng *engine.Engine,
	repo ports.ScoreRepository,
	queue ports.MessageQueue,
	extractor ports.AttributeExtractor,
) *ScoreGarmentUseCase {
	return &ScoreGarmentUseCase{
		eng:       eng,
		repo:      repo,
		queue:     queue,
		extractor: extractor,
	}
}

// Score resolves garment attributes, builds both profiles, runs the engine
// and persists the result under a fresh ID.
func (uc *ScoreGarmentUseCase) Score(ctx context.Context, cmd ports.ScoreCommand) (*domain.ScoreResult, error) {
	return uc.score(ctx, cmd, uuid.NewString())
}

// Enqueue stores the request and hands its ID to the worker queue.
func (uc *ScoreGarmentUseCase) Enqueue(ctx context.Context, cmd ports.ScoreCommand) (string, error) {
	if err := validateCommand(cmd); err != nil {
		return "", err
	}
	id := uuid.NewString()
	if err := uc.repo.CreateRequest(ctx, id, cmd); err != nil {
		return "", fmt.Errorf("persist score request: %w", err)
	}
	if err := uc.queue.PublishScoreRequested(ctx, id); err != nil {
		return "", fmt.Errorf("publish score request: %w", err)
	}
	return id, nil
}

// ProcessByID scores a queued request. The result reuses the request ID so
// the caller can poll the same identifier it was handed at enqueue time.
func (uc *ScoreGarmentUseCase) ProcessByID(ctx context.Context, requestID string) error {
	cmd, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("load score request: %w", err)
	}
	if _, err := uc.score(ctx, *cmd, requestID); err != nil {
		return err
	}
	return nil
}

func (uc *ScoreGarmentUseCase) score(ctx context.Context, cmd ports.ScoreCommand, id string) (*domain.ScoreResult, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	rawGarment, err := uc.resolveGarment(ctx, cmd)
	if err != nil {
		return nil, err
	}

	reg := uc.eng.Rules()
	body := intake.NewBodyProfile(cmd.Measurements, cmd.Goals)
	garment := intake.NewGarmentProfile(reg, *rawGarment)

	result := uc.eng.Score(body, garment, scoringContext(cmd, body, garment))
	result.ID = id

	if err := uc.repo.CreateResult(ctx, &result); err != nil {
		return nil, fmt.Errorf("persist score: %w", err)
	}
	if err := uc.queue.PublishGarmentScored(ctx, result.ID); err != nil {
		return nil, fmt.Errorf("publish scored event: %w", err)
	}
	return &result, nil
}

func (uc *ScoreGarmentUseCase) resolveGarment(ctx context.Context, cmd ports.ScoreCommand) (*intake.RawGarment, error) {
	if cmd.Garment != nil {
		return cmd.Garment, nil
	}
	if uc.extractor == nil {
		return nil, domain.WrapError(domain.ErrUnavailable, "resolve garment",
			errors.New("attribute extractor not configured"))
	}
	raw, err := uc.extractor.Extract(ctx, cmd.GarmentURL)
	if err != nil {
		return nil, fmt.Errorf("extract garment attributes: %w", err)
	}
	return raw, nil
}

func validateCommand(cmd ports.ScoreCommand) error {
	if cmd.Garment == nil && strings.TrimSpace(cmd.GarmentURL) == "" {
		return domain.WrapError(domain.ErrInvalidInput, "validate score request",
			errors.New("either garment attributes or garment_url is required"))
	}
	return nil
}

// scoringContext assembles the wearing situation from the request and the
// coerced profiles. The garment color only matters when there is a culture
// or event to judge it against.
func scoringContext(cmd ports.ScoreCommand, b domain.BodyProfile, g domain.GarmentProfile) contextmod.Context {
	sctx := contextmod.Context{
		Occasion:  b.Occasion,
		Culture:   b.Culture,
		EventType: strings.ToLower(strings.TrimSpace(cmd.EventType)),
		AgeRange:  b.AgeRange,
		Climate:   b.Climate,
	}
	if sctx.Culture != "" || sctx.EventType != "" {
		sctx.GarmentColor = g.ColorName
	}
	return sctx
}
