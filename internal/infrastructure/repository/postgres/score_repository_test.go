package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/core/ports"
)

func newRepoWithMock(t *testing.T) (*ScoreRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &ScoreRepository{db: db}, mock, func() { _ = db.Close() }
}

func TestGetResultReturnsDomainNotFound(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT result FROM scores").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetResult(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrScoreNotFound) {
		t.Fatalf("expected ErrScoreNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetRequestReturnsDomainNotFound(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT payload FROM score_requests").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRequest(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrScoreNotFound) {
		t.Fatalf("expected ErrScoreNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetRequestRoundTripsCommand(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	cmd := ports.ScoreCommand{Goals: []string{"look_taller"}, GarmentURL: "https://shop.example/dress"}
	payload, err := json.Marshal(cmd)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	mock.ExpectQuery("SELECT payload FROM score_requests").
		WithArgs("req-1").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))

	got, err := repo.GetRequest(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("GetRequest() error = %v", err)
	}
	if got.GarmentURL != cmd.GarmentURL {
		t.Fatalf("garment url = %q, want %q", got.GarmentURL, cmd.GarmentURL)
	}
	if len(got.Goals) != 1 || got.Goals[0] != "look_taller" {
		t.Fatalf("goals = %v", got.Goals)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateResultInsertsSummaryColumns(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	result := &domain.ScoreResult{
		ID:           "score-1",
		OverallScore: 6.4,
		DisplayScore: 7.7,
		Confidence:   0.81,
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO scores").
		WithArgs(result.ID, result.OverallScore, result.DisplayScore, result.Confidence, sqlmock.AnyArg(), result.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateResult(context.Background(), result); err != nil {
		t.Fatalf("CreateResult() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListRecentDecodesStoredResults(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	stored := domain.ScoreResult{ID: "score-2", DisplayScore: 8.8}
	payload, err := json.Marshal(stored)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	mock.ExpectQuery("SELECT result FROM scores ORDER BY created_at DESC").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"result"}).AddRow(payload))

	results, err := repo.ListRecent(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(results) != 1 || results[0].ID != "score-2" {
		t.Fatalf("unexpected results: %+v", results)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
