package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// ready gates the readiness endpoint so the process can be drained from
// rotation before shutdown. The service starts ready.
var ready atomic.Bool

func init() {
	ready.Store(true)
}

// SetReady flips the readiness gate.
func SetReady(v bool) {
	ready.Store(v)
}

// Checker represents dependencies that can be probed for readiness. The only
// external dependency this service has is the optional reference-data cache.
type Checker interface {
	PingCache(ctx context.Context, timeout time.Duration) error
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Checker      Checker
	CacheTimeout time.Duration
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on the shutdown gate and dependency probes.
func (h Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !ready.Load() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "draining"})
		return
	}
	cacheStatus := "ok"
	if h.Checker != nil {
		if err := h.Checker.PingCache(r.Context(), h.cacheTimeout()); err != nil {
			cacheStatus = err.Error()
		}
	}
	w.Header().Set("Content-Type", "application/json")
	if cacheStatus != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"cache": cacheStatus})
}

func (h Handler) cacheTimeout() time.Duration {
	if h.CacheTimeout <= 0 {
		return 300 * time.Millisecond
	}
	return h.CacheTimeout
}
