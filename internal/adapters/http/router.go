package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/stylesense/fitcore/internal/config"
	"github.com/stylesense/fitcore/internal/core/domain"
	"github.com/stylesense/fitcore/internal/core/ports"
	"github.com/stylesense/fitcore/internal/observability/metrics"
)

const serviceName = "api"

type Router struct {
	scorer   ports.GarmentScorer
	adviser  ports.StyleAdviser
	reader   ports.ScoreReader
	reloader ports.RuleReloader
	metrics  *metrics.HTTPServerMetrics
	cfg      config.Config
}

func NewRouter(
	scorer ports.GarmentScorer,
	adviser ports.StyleAdviser,
	reader ports.ScoreReader,
	reloader ports.RuleReloader,
	m *metrics.HTTPServerMetrics,
	cfg config.Config,
) *Router {
	return &Router{
		scorer:   scorer,
		adviser:  adviser,
		reader:   reader,
		reloader: reloader,
		metrics:  m,
		cfg:      cfg,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/score", rt.score)
	mux.HandleFunc("/v1/score-and-communicate", rt.scoreAndCommunicate)
	mux.HandleFunc("/v1/scores", rt.listScores)
	mux.HandleFunc("/v1/scores/", rt.getScoreByID)
	mux.HandleFunc("/v1/rules/reload", rt.reloadRules)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	handler = backpressureMiddleware(handler, rt.cfg.APIMaxConcurrent,
		time.Duration(rt.cfg.APIBackpressureWaitMS)*time.Millisecond)
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) score(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	cmd, ok := decodeScoreCommand(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("async") == "true" {
		id, err := rt.scorer.Enqueue(r.Context(), cmd)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]string{"id": id, "status": "queued"})
		return
	}

	start := time.Now()
	result, err := rt.scorer.Score(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	rt.recordScore("/v1/score", result.DisplayScore, result, time.Since(start))
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) scoreAndCommunicate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	cmd, ok := decodeScoreCommand(w, r)
	if !ok {
		return
	}

	start := time.Now()
	advice, err := rt.adviser.ScoreAndCommunicate(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	rt.recordScore("/v1/score-and-communicate", advice.Result.DisplayScore, &advice.Result, time.Since(start))
	writeJSON(w, http.StatusOK, advice)
}

func (rt *Router) listScores(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := rt.reader.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scores": results})
}

func (rt *Router) getScoreByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/scores/")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "score id is required"})
		return
	}

	result, err := rt.reader.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) reloadRules(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	err := rt.reloader.Reload(r.Context())
	if rt.metrics != nil {
		rt.metrics.RecordRuleReload(serviceName, err)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}

func decodeScoreCommand(w http.ResponseWriter, r *http.Request) (ports.ScoreCommand, bool) {
	var cmd ports.ScoreCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return cmd, false
	}
	if cmd.Garment == nil && strings.TrimSpace(cmd.GarmentURL) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "either garment attributes or garment_url is required"})
		return cmd, false
	}
	return cmd, true
}

func (rt *Router) recordScore(endpoint string, display float64, result *domain.ScoreResult, elapsed time.Duration) {
	if rt.metrics == nil {
		return
	}
	active := 0
	for _, p := range result.PrincipleScores {
		if p.Applicable {
			active++
		}
	}
	rt.metrics.RecordScore(serviceName, endpoint, display, active, elapsed)
	for _, g := range result.GoalAssessments {
		rt.metrics.RecordGoalVerdict(serviceName, string(g.Verdict))
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
