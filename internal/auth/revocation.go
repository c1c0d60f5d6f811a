package auth

import (
	"sync"
	"time"
)

// revocationList holds ids of logged-out tokens until those tokens expire.
type revocationList struct {
	mu  sync.Mutex
	ids map[string]time.Time
	now func() time.Time
}

func newRevocationList() *revocationList {
	return &revocationList{ids: make(map[string]time.Time), now: time.Now}
}

// add records id until expiry, dropping entries whose tokens already expired.
func (l *revocationList) add(id string, expiry time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, exp := range l.ids {
		if !exp.After(now) {
			delete(l.ids, k)
		}
	}
	if expiry.After(now) {
		l.ids[id] = expiry
	}
}

func (l *revocationList) contains(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.ids[id]
	return ok
}

func (l *revocationList) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ids)
}
