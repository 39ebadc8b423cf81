package netflix

import (
	"strings"
	"testing"
	"time"
)

func withFixedNow(t *testing.T, now time.Time) {
	t.Helper()
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = time.Now })
}

func TestEvaluateExpiry_UnknownDate(t *testing.T) {
	for _, raw := range []string{"", "not a date at all", "32 Foo 2024"} {
		v := EvaluateExpiry(raw, ExpiryWindow)
		if !v.Expired {
			t.Errorf("EvaluateExpiry(%q): expected expired", raw)
		}
		if !strings.Contains(v.Message, "Unknown email date") {
			t.Errorf("EvaluateExpiry(%q): message = %q", raw, v.Message)
		}
	}
}

func TestEvaluateExpiry_Boundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	exactlyAtLimit := now.Add(-ExpiryWindow).Format(time.RFC1123Z)
	v := EvaluateExpiry(exactlyAtLimit, ExpiryWindow)
	if v.Expired {
		t.Errorf("exactly at the window should still be valid: %+v", v)
	}
	if !strings.Contains(v.Message, "Code valid") {
		t.Errorf("message = %q", v.Message)
	}

	justOver := now.Add(-ExpiryWindow - time.Second).Format(time.RFC1123Z)
	v = EvaluateExpiry(justOver, ExpiryWindow)
	if !v.Expired {
		t.Errorf("one second past the window should be expired: %+v", v)
	}
	if !strings.Contains(v.Message, "Code expired") || !strings.Contains(v.Message, "limit") {
		t.Errorf("message = %q", v.Message)
	}
}

func TestEvaluateExpiry_FreshCode(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	v := EvaluateExpiry(now.Add(-5*time.Minute).Format(time.RFC1123Z), ExpiryWindow)
	if v.Expired {
		t.Fatalf("expected valid: %+v", v)
	}
	if v.MinutesElapsed < 4.9 || v.MinutesElapsed > 5.1 {
		t.Errorf("MinutesElapsed = %f, want ~5", v.MinutesElapsed)
	}
}

func TestEvaluateExpiry_ZonelessDateAssumedUTC(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	v := EvaluateExpiry("Sun, 1 Jun 2025 11:58:00", ExpiryWindow)
	if v.Expired {
		t.Fatalf("zone-less date two minutes old should be valid: %+v", v)
	}
	if v.MinutesElapsed < 1.9 || v.MinutesElapsed > 2.1 {
		t.Errorf("MinutesElapsed = %f, want ~2", v.MinutesElapsed)
	}
}

func TestEvaluateExpiry_NonUTCZone(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	// Same instant expressed in a +0700 offset must not look 7 hours old.
	sent := now.Add(-2 * time.Minute).In(time.FixedZone("ICT", 7*3600))
	v := EvaluateExpiry(sent.Format(time.RFC1123Z), ExpiryWindow)
	if v.Expired {
		t.Fatalf("expected valid: %+v", v)
	}
}
