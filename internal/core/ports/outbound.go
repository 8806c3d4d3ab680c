package ports

import (
	"context"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/intake"
)

// ScoreRepository persists queued score requests and finished results.
type ScoreRepository interface {
	CreateRequest(ctx context.Context, id string, cmd ScoreCommand) error
	GetRequest(ctx context.Context, id string) (*ScoreCommand, error)
	CreateResult(ctx context.Context, result *domain.ScoreResult) error
	GetResult(ctx context.Context, id string) (*domain.ScoreResult, error)
	ListRecent(ctx context.Context, limit int) ([]domain.ScoreResult, error)
}

// MessageQueue carries score-request IDs to workers and announces results.
type MessageQueue interface {
	PublishScoreRequested(ctx context.Context, requestID string) error
	SubscribeScoreRequested(ctx context.Context, handler func(context.Context, string) error) error
	PublishGarmentScored(ctx context.Context, scoreID string) error
}

// AttributeExtractor fetches garment attributes from the vision service.
type AttributeExtractor interface {
	Extract(ctx context.Context, garmentURL string) (*intake.RawGarment, error)
}

// StyleCommunicator turns a score result into consumer-facing advice.
type StyleCommunicator interface {
	Narrate(ctx context.Context, result domain.ScoreResult) (*domain.StyleAdvice, error)
}
