package bot

import (
	"testing"
	"time"
)

func newTestLimiter(start time.Time) (*RateLimiter, *time.Time) {
	clock := start
	r := NewRateLimiter()
	r.now = func() time.Time { return clock }
	return r, &clock
}

func TestRateLimiter_SixthRequestRejected(t *testing.T) {
	r, _ := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < 5; i++ {
		if !r.Allow("user-1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if r.Allow("user-1") {
		t.Error("sixth request inside the window should be rejected")
	}
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	r, clock := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < 5; i++ {
		r.Allow("user-1")
	}
	if r.Allow("user-1") {
		t.Fatal("expected rejection at the limit")
	}

	*clock = clock.Add(61 * time.Second)
	if !r.Allow("user-1") {
		t.Error("request after the window expired should be allowed")
	}
}

func TestRateLimiter_UsersAreIndependent(t *testing.T) {
	r, _ := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < 5; i++ {
		r.Allow("user-1")
	}
	if !r.Allow("user-2") {
		t.Error("a different user must not inherit user-1's window")
	}
}

func TestRateLimiter_RejectionNotRecorded(t *testing.T) {
	r, clock := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < 5; i++ {
		r.Allow("user-1")
	}
	for i := 0; i < 10; i++ {
		r.Allow("user-1")
	}

	// Only the 5 recorded requests age out; the rejected ones must not
	// have extended the window.
	*clock = clock.Add(61 * time.Second)
	if !r.Allow("user-1") {
		t.Error("rejected requests must not count toward the window")
	}
}
