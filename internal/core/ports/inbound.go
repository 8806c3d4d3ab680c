package ports

import (
	"context"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/intake"
)

// ScoreCommand is the inbound scoring request. The garment arrives either
// as extracted attributes or as a listing URL for the extraction service.
type ScoreCommand struct {
	Measurements intake.RawMeasurements `json:"measurements"`
	Goals        []string               `json:"styling_goals,omitempty"`
	Garment      *intake.RawGarment     `json:"garment,omitempty"`
	GarmentURL   string                 `json:"garment_url,omitempty"`
	EventType    string                 `json:"event_type,omitempty"`
}

// GarmentScorer is the inbound contract for scoring orchestration.
type GarmentScorer interface {
	Score(ctx context.Context, cmd ScoreCommand) (*domain.ScoreResult, error)
	Enqueue(ctx context.Context, cmd ScoreCommand) (string, error)
}

// StyleAdviser scores and narrates in one call.
type StyleAdviser interface {
	ScoreAndCommunicate(ctx context.Context, cmd ScoreCommand) (*domain.ScoredAdvice, error)
}

// ScoreReader is the inbound read model for score history.
type ScoreReader interface {
	GetByID(ctx context.Context, id string) (*domain.ScoreResult, error)
	ListRecent(ctx context.Context, limit int) ([]domain.ScoreResult, error)
}

// ScoreProcessor handles queued score requests on the worker side.
type ScoreProcessor interface {
	ProcessByID(ctx context.Context, requestID string) error
}

// RuleReloader swaps in a freshly parsed rule registry.
type RuleReloader interface {
	Reload(ctx context.Context) error
}
