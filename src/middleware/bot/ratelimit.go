package bot

import (
	"sync"
	"time"
)

const (
	rateLimitWindow      = 60 * time.Second
	rateLimitMaxRequests = 5
)

// RateLimiter tracks request timestamps per user over a sliding window.
// discordgo dispatches handlers on separate goroutines, so access is
// mutex-guarded. The limiter is injected into the bot rather than kept as
// package state; its lifetime is the process's.
type RateLimiter struct {
	mu       sync.Mutex
	window   time.Duration
	max      int
	requests map[string][]time.Time
	now      func() time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		window:   rateLimitWindow,
		max:      rateLimitMaxRequests,
		requests: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Allow prunes the user's window, then records the request unless the user
// is already at the limit. A rejected request is not recorded.
func (r *RateLimiter) Allow(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	kept := r.requests[userID][:0]
	for _, t := range r.requests[userID] {
		if now.Sub(t) < r.window {
			kept = append(kept, t)
		}
	}

	if len(kept) >= r.max {
		r.requests[userID] = kept
		return false
	}
	r.requests[userID] = append(kept, now)
	return true
}
