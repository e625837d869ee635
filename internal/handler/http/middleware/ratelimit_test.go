package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiter_PrunesIdleKeys(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiter(rate.Limit(1), 1)
	l.now = func() time.Time { return now }

	l.Limiter("10.0.0.1")
	l.Limiter("10.0.0.2")

	now = now.Add(6 * time.Minute)
	l.Limiter("10.0.0.2")

	now = now.Add(5 * time.Minute)
	assert.Equal(t, 1, l.Prune(10*time.Minute))
	assert.Equal(t, 1, l.Size())

	now = now.Add(10 * time.Minute)
	assert.Equal(t, 1, l.Prune(10*time.Minute))
	assert.Equal(t, 0, l.Size())
}

func TestRateLimiter_LimitsByClientIP(t *testing.T) {
	l := NewRateLimiter(rate.Limit(0.001), 1)
	h := l.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, send("192.0.2.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.1:5001"))
	assert.Equal(t, http.StatusNoContent, send("192.0.2.2:5000"))
	assert.Equal(t, 2, l.Size())
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:443"
	assert.Equal(t, "203.0.113.9", ClientIP(req))

	req.RemoteAddr = "203.0.113.9"
	assert.Equal(t, "203.0.113.9", ClientIP(req))
}
