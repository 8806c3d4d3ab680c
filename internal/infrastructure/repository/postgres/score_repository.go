package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/core/ports"
)

// ScoreRepository stores queued score requests and finished results. Result
// payloads are JSONB documents; the relational columns only carry what the
// history listing needs.
type ScoreRepository struct {
	db *sql.DB
}

func NewScoreRepository(db *sql.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *ScoreRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026083101)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS score_requests (
	id TEXT PRIMARY KEY,
	payload JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS scores (
	id TEXT PRIMARY KEY,
	overall_score DOUBLE PRECISION NOT NULL,
	display_score DOUBLE PRECISION NOT NULL,
	confidence DOUBLE PRECISION NOT NULL,
	result JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scores_created_at ON scores(created_at DESC);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *ScoreRepository) CreateRequest(ctx context.Context, id string, cmd ports.ScoreCommand) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("marshal score request: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO score_requests (id, payload, created_at) VALUES ($1,$2,$3)
`, id, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert score request: %w", err)
	}
	return nil
}

func (r *ScoreRepository) GetRequest(ctx context.Context, id string) (*ports.ScoreCommand, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT payload FROM score_requests WHERE id = $1
`, id)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrScoreNotFound, "get score request", fmt.Errorf("id %s", id))
		}
		return nil, fmt.Errorf("scan score request: %w", err)
	}

	var cmd ports.ScoreCommand
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return nil, fmt.Errorf("unmarshal score request: %w", err)
	}
	return &cmd, nil
}

func (r *ScoreRepository) CreateResult(ctx context.Context, result *domain.ScoreResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal score result: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO scores (id, overall_score, display_score, confidence, result, created_at)
VALUES ($1,$2,$3,$4,$5,$6)
`, result.ID, result.OverallScore, result.DisplayScore, result.Confidence, payload, result.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

func (r *ScoreRepository) GetResult(ctx context.Context, id string) (*domain.ScoreResult, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT result FROM scores WHERE id = $1
`, id)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrScoreNotFound, "get score", fmt.Errorf("id %s", id))
		}
		return nil, fmt.Errorf("scan score: %w", err)
	}

	var result domain.ScoreResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("unmarshal score: %w", err)
	}
	return &result, nil
}

func (r *ScoreRepository) ListRecent(ctx context.Context, limit int) ([]domain.ScoreResult, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT result FROM scores ORDER BY created_at DESC LIMIT $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent scores: %w", err)
	}
	defer rows.Close()

	var results []domain.ScoreResult
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan score row: %w", err)
		}
		var result domain.ScoreResult
		if err := json.Unmarshal(payload, &result); err != nil {
			return nil, fmt.Errorf("unmarshal score row: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate score rows: %w", err)
	}
	return results, nil
}
