package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/stylesense/fitcore/internal/config"
	"github.com/stylesense/fitcore/internal/core/ports"
	"github.com/stylesense/fitcore/internal/core/usecase"
	"github.com/stylesense/fitcore/internal/engine"
	"github.com/stylesense/fitcore/internal/engine/registry"
	extractorapi "github.com/stylesense/fitcore/internal/infrastructure/extractor/httpapi"
	"github.com/stylesense/fitcore/internal/infrastructure/queue/nats"
	"github.com/stylesense/fitcore/internal/infrastructure/repository/postgres"
	"github.com/stylesense/fitcore/internal/infrastructure/resilience"
	stylistapi "github.com/stylesense/fitcore/internal/infrastructure/stylist/httpapi"
)

type App struct {
	Config config.Config
	Engine *engine.Engine

	Queue ports.MessageQueue
	Repo  ports.ScoreRepository

	ScoreUC       ports.GarmentScorer
	CommunicateUC ports.StyleAdviser
	HistoryUC     ports.ScoreReader
	ProcessUC     ports.ScoreProcessor
	ReloadUC      ports.RuleReloader

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	reg, err := loadRules(cfg.RulesOverridePath)
	if err != nil {
		return nil, fmt.Errorf("load scoring rules: %w", err)
	}
	eng := engine.New(reg)

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewScoreRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultPolicy())

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSRequestSubject, cfg.NATSScoredSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	var attrExtractor ports.AttributeExtractor
	if cfg.ExtractorURL != "" {
		attrExtractor = extractorapi.New(cfg.ExtractorURL, executor)
	}
	var stylist ports.StyleCommunicator
	if cfg.StylistURL != "" {
		stylist = stylistapi.New(cfg.StylistURL, executor)
	}

	scoreUC := usecase.NewScoreGarmentUseCase(eng, repo, queue, attrExtractor)
	communicateUC := usecase.NewCommunicateUseCase(scoreUC, stylist)
	historyUC := usecase.NewScoreHistoryUseCase(repo)
	reloadUC := usecase.NewReloadRulesUseCase(eng, cfg.RulesOverridePath)

	return &App{
		Config: cfg,
		Engine: eng,
		Queue:  queue,
		Repo:   repo,

		ScoreUC:       scoreUC,
		CommunicateUC: communicateUC,
		HistoryUC:     historyUC,
		ProcessUC:     scoreUC,
		ReloadUC:      reloadUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func loadRules(overridePath string) (*registry.Registry, error) {
	if overridePath == "" {
		return registry.Load()
	}
	data, err := os.ReadFile(overridePath)
	if err != nil {
		return nil, fmt.Errorf("read rules override: %w", err)
	}
	return registry.Parse(data)
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
