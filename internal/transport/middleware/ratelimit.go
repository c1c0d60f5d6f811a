package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sensorfactory/nexus/internal/config"
)

const rateWindow = time.Minute

// RateLimiter caps requests per client host within a fixed one-minute
// window. Connections from one address share a window.
type RateLimiter struct {
	limit   int
	sweepIn time.Duration
	now     func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	start time.Time
	count int
}

// NewRateLimiter creates a limiter allowing cfg.LoginPerMinute requests per
// host. Start Run to drop expired windows.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limit:   cfg.LoginPerMinute,
		sweepIn: cfg.CleanupInterval,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

// Middleware rejects requests over the limit with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, wait := rl.allow(clientHost(r))
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(int(wait.Seconds())+1))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Run sweeps expired windows until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context) {
	if rl.sweepIn <= 0 {
		return
	}
	ticker := time.NewTicker(rl.sweepIn)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	win, ok := rl.windows[key]
	if !ok || now.Sub(win.start) >= rateWindow {
		win = &window{start: now}
		rl.windows[key] = win
	}
	if win.count >= rl.limit {
		return false, win.start.Add(rateWindow).Sub(now)
	}
	win.count++
	return true, 0
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, win := range rl.windows {
		if now.Sub(win.start) >= rateWindow {
			delete(rl.windows, key)
		}
	}
}

func clientHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
