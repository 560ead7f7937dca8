package limit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimitMiddleware(t *testing.T) {
	l := NewIPRateLimiter(0.001, 2)
	h := l.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	// the burst is shared across source ports of one host
	if c := do("10.0.0.1:1000"); c != http.StatusNoContent {
		t.Fatalf("first request: %d", c)
	}
	if c := do("10.0.0.1:1001"); c != http.StatusNoContent {
		t.Fatalf("second request: %d", c)
	}
	if c := do("10.0.0.1:1002"); c != http.StatusTooManyRequests {
		t.Fatalf("third request: %d, want 429", c)
	}
	if c := do("10.0.0.2:1000"); c != http.StatusNoContent {
		t.Fatalf("other client: %d", c)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "[::1]:8080"
	if got := clientIP(req); got != "::1" {
		t.Errorf("got %q", got)
	}
	req.RemoteAddr = "unix"
	if got := clientIP(req); got != "unix" {
		t.Errorf("got %q", got)
	}
}

func TestIdleClientsAreEvicted(t *testing.T) {
	l := NewIPRateLimiter(1, 1)
	clock := l.lastSweep
	l.now = func() time.Time { return clock }

	l.getLimiter("10.0.0.1")
	l.getLimiter("10.0.0.2")
	clock = clock.Add(IdleTTL / 2)
	l.getLimiter("10.0.0.2")
	if len(l.ips) != 2 {
		t.Fatalf("tracked %d clients before the sweep", len(l.ips))
	}

	clock = clock.Add(IdleTTL / 2)
	l.getLimiter("10.0.0.3")
	if len(l.ips) != 2 {
		t.Fatalf("tracked %d clients after the sweep", len(l.ips))
	}
	if _, ok := l.ips["10.0.0.1"]; ok {
		t.Error("idle client kept")
	}
	if _, ok := l.ips["10.0.0.2"]; !ok {
		t.Error("recent client dropped")
	}
}
