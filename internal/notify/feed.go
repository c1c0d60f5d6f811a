package notify

import (
	"context"
	"sync"
)

// Feed keeps the most recent notifications in a fixed-size ring.
type Feed struct {
	mu    sync.RWMutex
	buf   []Notification
	next  int
	count int
}

// NewFeed creates a feed holding at most size notifications.
func NewFeed(size int) *Feed {
	if size <= 0 {
		size = 1
	}
	return &Feed{buf: make([]Notification, size)}
}

func (f *Feed) Notify(_ context.Context, n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.buf[f.next] = n
	f.next = (f.next + 1) % len(f.buf)
	if f.count < len(f.buf) {
		f.count++
	}
}

// Recent returns up to limit notifications, newest first. A limit <= 0
// returns everything held.
func (f *Feed) Recent(limit int) []Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if limit <= 0 || limit > f.count {
		limit = f.count
	}
	out := make([]Notification, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (f.next - i + len(f.buf)) % len(f.buf)
		out = append(out, f.buf[idx])
	}
	return out
}
