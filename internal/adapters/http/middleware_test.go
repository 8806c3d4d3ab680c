package httpadapter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestIDMiddlewareEchoesCallerID(t *testing.T) {
	var seen string
	handler := requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/scores", nil)
	req.Header.Set(requestIDHeader, "batch-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != "batch-42" {
		t.Fatalf("expected caller id in context, got %q", seen)
	}
	if rec.Header().Get(requestIDHeader) != "batch-42" {
		t.Fatalf("expected caller id echoed, got %q", rec.Header().Get(requestIDHeader))
	}
}

func TestRequestIDMiddlewareMintsWhenMissingOrOversized(t *testing.T) {
	handler := requestIDMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scores", nil))
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected a minted request id")
	}

	long := httptest.NewRequest(http.MethodGet, "/v1/scores", nil)
	long.Header.Set(requestIDHeader, strings.Repeat("x", 65))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, long)
	if got := rec.Header().Get(requestIDHeader); len(got) > 64 || got == "" {
		t.Fatalf("oversized caller id must be replaced, got %q", got)
	}
}

func TestAccessLogPreservesStatusAndBody(t *testing.T) {
	handler := accessLogMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/score", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected status passthrough, got %d", rec.Code)
	}
	if rec.Body.String() != "short and stout" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}
