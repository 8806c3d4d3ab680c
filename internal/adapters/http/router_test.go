package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stylesense/fitcore/internal/config"
	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/core/ports"
)

type fakeScorer struct {
	result *domain.ScoreResult
	err    error
}

func (f *fakeScorer) Score(_ context.Context, _ ports.ScoreCommand) (*domain.ScoreResult, error) {
	return f.result, f.err
}

func (f *fakeScorer) Enqueue(_ context.Context, _ ports.ScoreCommand) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "req-123", nil
}

type fakeAdviser struct {
	advice *domain.ScoredAdvice
	err    error
}

func (f *fakeAdviser) ScoreAndCommunicate(_ context.Context, _ ports.ScoreCommand) (*domain.ScoredAdvice, error) {
	return f.advice, f.err
}

type fakeReader struct {
	result *domain.ScoreResult
	err    error
}

func (f *fakeReader) GetByID(_ context.Context, _ string) (*domain.ScoreResult, error) {
	return f.result, f.err
}

func (f *fakeReader) ListRecent(_ context.Context, _ int) ([]domain.ScoreResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return nil, nil
	}
	return []domain.ScoreResult{*f.result}, nil
}

type fakeReloader struct {
	err error
}

func (f *fakeReloader) Reload(_ context.Context) error { return f.err }

func testConfig() config.Config {
	return config.Config{
		APIRateLimitRPS:       1000,
		APIRateLimitBurst:     1000,
		APIMaxConcurrent:      16,
		APIBackpressureWaitMS: 50,
	}
}

func sampleResult() *domain.ScoreResult {
	return &domain.ScoreResult{
		ID:           "score-1",
		OverallScore: 6.8,
		DisplayScore: 7.9,
		Confidence:   0.82,
		PrincipleScores: []domain.PrincipleScore{
			{Name: "hemline", Score: 0.30, Weight: 0.18, Confidence: 0.90, Applicable: true},
		},
		GoalAssessments: []domain.GoalAssessment{
			{Goal: domain.GoalLookTaller, Verdict: domain.VerdictPass, Score: 0.42, Confidence: 0.75},
		},
	}
}

func scoreBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	payload := map[string]any{
		"measurements": map[string]any{"height_cm": 160.0},
		"styling_goals": []string{"look_taller"},
		"garment": map[string]any{
			"category":        "dress",
			"silhouette":      "a_line",
			"color_lightness": "dark",
		},
	}
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		t.Fatalf("encode request: %v", err)
	}
	return buf
}

func TestHealthzReturns200(t *testing.T) {
	rt := NewRouter(&fakeScorer{}, &fakeAdviser{}, &fakeReader{}, &fakeReloader{}, nil, testConfig())
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res := httptest.NewRecorder()
	rt.Handler().ServeHTTP(res, req)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
}

func TestScoreReturnsResult(t *testing.T) {
	rt := NewRouter(&fakeScorer{result: sampleResult()}, &fakeAdviser{}, &fakeReader{}, &fakeReloader{}, nil, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/v1/score", scoreBody(t))
	res := httptest.NewRecorder()
	rt.Handler().ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}

	var result domain.ScoreResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.ID != "score-1" {
		t.Fatalf("expected score-1, got %q", result.ID)
	}
	if result.DisplayScore != 7.9 {
		t.Fatalf("expected display score 7.9, got %v", result.DisplayScore)
	}
}

func TestScoreAsyncReturns202(t *testing.T) {
	rt := NewRouter(&fakeScorer{result: sampleResult()}, &fakeAdviser{}, &fakeReader{}, &fakeReloader{}, nil, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/v1/score?async=true", scoreBody(t))
	res := httptest.NewRecorder()
	rt.Handler().ServeHTTP(res, req)

	if res.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", res.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["id"] != "req-123" || resp["status"] != "queued" {
		t.Fatalf("unexpected async response: %v", resp)
	}
}

func TestScoreRejectsInvalidJSON(t *testing.T) {
	rt := NewRouter(&fakeScorer{}, &fakeAdviser{}, &fakeReader{}, &fakeReloader{}, nil, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/v1/score", bytes.NewBufferString("{broken"))
	res := httptest.NewRecorder()
	rt.Handler().ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestScoreRequiresGarment(t *testing.T) {
	rt := NewRouter(&fakeScorer{}, &fakeAdviser{}, &fakeReader{}, &fakeReloader{}, nil, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/v1/score",
		bytes.NewBufferString(`{"measurements":{"height_cm":160}}`))
	res := httptest.NewRecorder()
	rt.Handler().ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestGetScoreByIDMapsNotFound(t *testing.T) {
	notFound := domain.WrapError(domain.ErrScoreNotFound, "get score", errors.New("id nope"))
	rt := NewRouter(&fakeScorer{}, &fakeAdviser{}, &fakeReader{err: notFound}, &fakeReloader{}, nil, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/v1/scores/nope", nil)
	res := httptest.NewRecorder()
	rt.Handler().ServeHTTP(res, req)

	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
}

func TestScoreMapsTemporaryTo503(t *testing.T) {
	temp := domain.WrapError(domain.ErrTemporary, "extract attributes", errors.New("upstream down"))
	rt := NewRouter(&fakeScorer{err: temp}, &fakeAdviser{}, &fakeReader{}, &fakeReloader{}, nil, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/v1/score", scoreBody(t))
	res := httptest.NewRecorder()
	rt.Handler().ServeHTTP(res, req)

	if res.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", res.Code)
	}
}

func TestScoreAndCommunicateReturnsAdvice(t *testing.T) {
	advice := &domain.ScoredAdvice{
		Result: *sampleResult(),
		Advice: domain.StyleAdvice{Headline: "Strong match (7.9/10)", Source: "fallback"},
	}
	rt := NewRouter(&fakeScorer{}, &fakeAdviser{advice: advice}, &fakeReader{}, &fakeReloader{}, nil, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/v1/score-and-communicate", scoreBody(t))
	res := httptest.NewRecorder()
	rt.Handler().ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	var resp domain.ScoredAdvice
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Advice.Headline == "" {
		t.Fatalf("expected advice headline in response")
	}
}

func TestReloadRules(t *testing.T) {
	rt := NewRouter(&fakeScorer{}, &fakeAdviser{}, &fakeReader{}, &fakeReloader{}, nil, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/v1/rules/reload", nil)
	res := httptest.NewRecorder()
	rt.Handler().ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
}

func TestListScores(t *testing.T) {
	rt := NewRouter(&fakeScorer{}, &fakeAdviser{}, &fakeReader{result: sampleResult()}, &fakeReloader{}, nil, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/v1/scores?limit=5", nil)
	res := httptest.NewRecorder()
	rt.Handler().ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	var resp struct {
		Scores []domain.ScoreResult `json:"scores"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Scores) != 1 {
		t.Fatalf("expected 1 score, got %d", len(resp.Scores))
	}
}
