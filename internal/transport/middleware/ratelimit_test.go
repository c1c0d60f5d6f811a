package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensorfactory/nexus/internal/config"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(perMinute int) (*RateLimiter, *fakeClock, http.Handler) {
	clock := &fakeClock{t: time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(config.RateLimitConfig{LoginPerMinute: perMinute, CleanupInterval: time.Minute})
	rl.now = clock.now
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	return rl, clock, h
}

func login(h http.Handler, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	_, clock, h := newTestLimiter(3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, login(h, "1.2.3.4:1234").Code, "request %d", i)
	}

	clock.advance(20 * time.Second)
	rec := login(h, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "41", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}

func TestRateLimiter_WindowResets(t *testing.T) {
	_, clock, h := newTestLimiter(1)

	require.Equal(t, http.StatusOK, login(h, "1.2.3.4:1").Code)
	require.Equal(t, http.StatusTooManyRequests, login(h, "1.2.3.4:1").Code)

	clock.advance(time.Minute)
	assert.Equal(t, http.StatusOK, login(h, "1.2.3.4:1").Code)
}

func TestRateLimiter_HostsAreIndependent(t *testing.T) {
	_, _, h := newTestLimiter(1)

	require.Equal(t, http.StatusOK, login(h, "1.1.1.1:1234").Code)
	assert.Equal(t, http.StatusOK, login(h, "2.2.2.2:1234").Code)
}

func TestRateLimiter_SameHostSharesWindow(t *testing.T) {
	_, _, h := newTestLimiter(1)

	require.Equal(t, http.StatusOK, login(h, "4.4.4.4:1000").Code)
	assert.Equal(t, http.StatusTooManyRequests, login(h, "4.4.4.4:2000").Code)
}

func TestRateLimiter_Sweep(t *testing.T) {
	rl, clock, h := newTestLimiter(5)

	login(h, "1.1.1.1:1")
	clock.advance(30 * time.Second)
	login(h, "2.2.2.2:1")
	clock.advance(30 * time.Second)

	rl.sweep()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.windows, "1.1.1.1")
	assert.Contains(t, rl.windows, "2.2.2.2")
}

func TestRateLimiter_RunStopsOnCancel(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{LoginPerMinute: 1, CleanupInterval: time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rl.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
