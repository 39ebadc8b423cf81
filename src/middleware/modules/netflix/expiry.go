package netflix

import (
	"fmt"
	netmail "net/mail"
	"time"
)

// Sign-in codes go stale 15 minutes after the email was sent.
const ExpiryWindow = 15 * time.Minute

var timeNow = time.Now

// EvaluateExpiry classifies a code as fresh or expired from its email's raw
// Date header. It never fails: a missing or unparsable date is treated as
// maximally stale.
func EvaluateExpiry(rawDate string, window time.Duration) ExpiryVerdict {
	if rawDate == "" {
		return ExpiryVerdict{Expired: true, Message: "Unknown email date"}
	}

	sent, err := netmail.ParseDate(rawDate)
	if err != nil {
		// RFC 5322 requires a zone but some relays omit it; a zone-less
		// timestamp is assumed UTC.
		sent, err = netmail.ParseDate(rawDate + " +0000")
		if err != nil {
			return ExpiryVerdict{Expired: true, Message: "Unknown email date"}
		}
	}

	elapsed := timeNow().UTC().Sub(sent.UTC())
	minutes := elapsed.Minutes()
	limit := window.Minutes()

	if elapsed > window {
		return ExpiryVerdict{
			Expired:        true,
			Message:        fmt.Sprintf("Code expired (%.1f minutes old, limit: %.0f minutes)", minutes, limit),
			MinutesElapsed: minutes,
		}
	}
	return ExpiryVerdict{
		Message:        fmt.Sprintf("Code valid (expires in %.1f minutes)", limit-minutes),
		MinutesElapsed: minutes,
	}
}
