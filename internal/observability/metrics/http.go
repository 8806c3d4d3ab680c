package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	scoresTotal       *prometheus.CounterVec
	scoreDuration     *prometheus.HistogramVec
	displayScores     *prometheus.HistogramVec
	activePrinciples  *prometheus.HistogramVec
	goalVerdictsTotal *prometheus.CounterVec
	ruleReloadsTotal  *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fitcore",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fitcore",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fitcore",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	scoresTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fitcore",
			Subsystem: "scoring",
			Name:      "scores_total",
			Help:      "Total completed scoring runs by display band.",
		},
		[]string{"service", "endpoint", "band"},
	)
	scoreDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fitcore",
			Subsystem: "scoring",
			Name:      "duration_seconds",
			Help:      "Scoring pipeline duration in seconds.",
			Buckets:   []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"service", "endpoint"},
	)
	displayScores := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fitcore",
			Subsystem: "scoring",
			Name:      "display_score",
			Help:      "Distribution of display scores on the 10-point scale.",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 7, 7.5, 8, 8.5, 9, 9.5, 10},
		},
		[]string{"service", "endpoint"},
	)
	activePrinciples := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fitcore",
			Subsystem: "scoring",
			Name:      "active_principles",
			Help:      "Applicable principle scorers per scoring run.",
			Buckets:   []float64{4, 6, 8, 10, 12, 14, 16, 18, 20},
		},
		[]string{"service", "endpoint"},
	)
	goalVerdictsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fitcore",
			Subsystem: "scoring",
			Name:      "goal_verdicts_total",
			Help:      "Total goal assessments by verdict.",
		},
		[]string{"service", "verdict"},
	)
	ruleReloadsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fitcore",
			Subsystem: "rules",
			Name:      "reloads_total",
			Help:      "Total rule registry reloads by status.",
		},
		[]string{"service", "status"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		scoresTotal,
		scoreDuration,
		displayScores,
		activePrinciples,
		goalVerdictsTotal,
		ruleReloadsTotal,
	)

	return &HTTPServerMetrics{
		registry:          registry,
		requestTotal:      requestTotal,
		requestDuration:   requestDuration,
		requestInFlight:   requestInFlight,
		scoresTotal:       scoresTotal,
		scoreDuration:     scoreDuration,
		displayScores:     displayScores,
		activePrinciples:  activePrinciples,
		goalVerdictsTotal: goalVerdictsTotal,
		ruleReloadsTotal:  ruleReloadsTotal,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/scores/"):
		return "/v1/scores/{score_id}"
	default:
		return path
	}
}

// RecordScore captures one finished scoring run.
func (m *HTTPServerMetrics) RecordScore(service, endpoint string, displayScore float64, active int, duration time.Duration) {
	m.scoresTotal.WithLabelValues(service, endpoint, displayBand(displayScore)).Inc()
	m.scoreDuration.WithLabelValues(service, endpoint).Observe(duration.Seconds())
	m.displayScores.WithLabelValues(service, endpoint).Observe(displayScore)
	m.activePrinciples.WithLabelValues(service, endpoint).Observe(float64(active))
}

func (m *HTTPServerMetrics) RecordGoalVerdict(service, verdict string) {
	m.goalVerdictsTotal.WithLabelValues(service, verdict).Inc()
}

func (m *HTTPServerMetrics) RecordRuleReload(service string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.ruleReloadsTotal.WithLabelValues(service, status).Inc()
}

func displayBand(score float64) string {
	switch {
	case score >= 8.5:
		return "excellent"
	case score >= 7.0:
		return "strong"
	case score >= 5.5:
		return "workable"
	default:
		return "poor"
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
