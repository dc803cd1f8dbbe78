package ratelimiter

import (
	"sync"
	"time"
)

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type Limiter interface {
	Allow(ip string) (bool, time.Duration)
}

// FixedWindowRateLimiter counts requests per client address over a fixed
// window. Windows expire lazily on the client's next request, so no
// background goroutine is needed.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	size    time.Duration
}

type window struct {
	count   int
	resetAt time.Time
}

func NewFixedWindowLimiter(limit int, size time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		size:    size,
	}
}

// Allow reports whether the client may proceed and, when denied, how long
// until its window resets.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[ip]
	if !ok || now.After(w.resetAt) {
		rl.windows[ip] = &window{count: 1, resetAt: now.Add(rl.size)}
		return true, 0
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}

	return false, time.Until(w.resetAt)
}
