package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/noah-isme/billing-engine/internal/health"
)

type stubChecker struct {
	cacheErr error
}

func (s stubChecker) PingCache(_ context.Context, _ time.Duration) error {
	return s.cacheErr
}

func TestLive(t *testing.T) {
	handler := health.Handler{}
	rr := httptest.NewRecorder()
	handler.Live(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if body := rr.Body.String(); body != "ok" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestReadySuccess(t *testing.T) {
	handler := health.Handler{Checker: stubChecker{}, CacheTimeout: 50 * time.Millisecond}
	rr := httptest.NewRecorder()
	handler.Ready(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	var status map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if status["cache"] != "ok" {
		t.Fatalf("unexpected status %#v", status)
	}
}

func TestReadyCacheFailure(t *testing.T) {
	handler := health.Handler{Checker: stubChecker{cacheErr: errors.New("cache down")}, CacheTimeout: 10 * time.Millisecond}
	rr := httptest.NewRecorder()
	handler.Ready(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", rr.Code)
	}
}

func TestReadinessAfterShutdown(t *testing.T) {
	handler := health.Handler{Checker: stubChecker{}}
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	health.SetReady(false)
	rr := httptest.NewRecorder()
	handler.Ready(rr, req)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 while draining, got %d", rr.Code)
	}

	health.SetReady(true)
	rr2 := httptest.NewRecorder()
	handler.Ready(rr2, req)
	if rr2.Code != http.StatusOK {
		t.Fatalf("expected 200 after restore, got %d", rr2.Code)
	}
}
