package backend

import (
	"sync"
	"time"
)

// throttle enforces a minimum interval between successive operations per
// key. Operations inside the interval are dropped.
type throttle struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	next map[string]time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{now: time.Now}
	}
	return &throttle{interval: interval, now: time.Now, next: map[string]time.Time{}}
}

func (t *throttle) allow(key string) bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if now.Before(t.next[key]) {
		return false
	}
	t.next[key] = now.Add(t.interval)
	return true
}
