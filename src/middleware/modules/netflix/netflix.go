package netflix

import (
	"fmt"
	"strings"

	helpers "netflixbot/src/middleware/helpers"
	imaphelper "netflixbot/src/middleware/helpers/imap"

	"github.com/emersion/go-imap/client"
)

const (
	// SenderAddress is the only sender Netflix uses for account emails.
	SenderAddress = "info@account.netflix.com"

	// Subject substrings of the two email templates we care about. The
	// sign-in template is Vietnamese ("sign-in code"), matching the
	// account's locale.
	SignInSubject = "Mã đăng nhập"
	VerifySubject = "temporary access code"
)

// FindMatchingEmail scans Netflix emails newest first and returns the first
// whose decoded subject contains subjectSubstring, case-insensitively. The
// subject check is always applied client-side as a safety net, so it also
// covers the sender-only search fallback. A scan with no match returns
// (nil, nil).
func FindMatchingEmail(logger *helpers.ColorizedLogger, reqID string, box helpers.Mailbox, subjectSubstring string) (*MatchedEmail, error) {
	var found *MatchedEmail

	err := imaphelper.WithSession(logger, reqID, box, func(c *client.Client) error {
		ids, err := imaphelper.Search(c, logger, reqID, imaphelper.SearchFilter{
			Sender:          SenderAddress,
			SubjectContains: subjectSubstring,
		})
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			logger.Info(fmt.Sprintf("Request %s: No Netflix Emails Found", reqID))
			return nil
		}

		found = scanCandidates(logger, reqID, ids, func(id uint32) (*imaphelper.RawEmail, error) {
			return imaphelper.Fetch(c, id)
		}, subjectSubstring)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// scanCandidates walks candidate ids newest first, fetching and decoding
// each until one's subject case-insensitively contains subjectSubstring. A
// failed fetch skips that candidate; a matching message with no decodable
// text ends the scan with no result.
func scanCandidates(logger *helpers.ColorizedLogger, reqID string, ids []uint32, fetch func(uint32) (*imaphelper.RawEmail, error), subjectSubstring string) *MatchedEmail {
	want := strings.ToLower(subjectSubstring)
	for i := len(ids) - 1; i >= 0; i-- {
		raw, err := fetch(ids[i])
		if err != nil {
			logger.Warn(fmt.Sprintf("Request %s: Failed To Fetch Message %d, Skipping: %v", reqID, ids[i], err))
			continue
		}

		subject := imaphelper.DecodeSubject(raw.Subject)
		if !strings.Contains(strings.ToLower(subject), want) {
			continue
		}

		body, ok := imaphelper.ExtractPlainText(raw.Raw)
		if !ok {
			logger.Warn(fmt.Sprintf("Request %s: No Text Content In Message %d", reqID, ids[i]))
			return nil
		}
		return &MatchedEmail{Subject: subject, Body: body, RawDate: raw.Date}
	}

	logger.Warn(fmt.Sprintf("Request %s: No Emails Found With Subject Containing %q", reqID, subjectSubstring))
	return nil
}

// GetSignInCode retrieves the newest sign-in code email, extracts the code
// and annotates it with an expiry verdict. (nil, nil) means no code was
// found, which is not a fault.
func GetSignInCode(logger *helpers.ColorizedLogger, reqID string, box helpers.Mailbox) (*SignInCode, error) {
	matched, err := FindMatchingEmail(logger, reqID, box, SignInSubject)
	if err != nil || matched == nil {
		return nil, err
	}

	code, ok := ExtractCode(matched.Body)
	if !ok {
		logger.Warn(fmt.Sprintf("Request %s: No Sign-In Code Found In Email Content", reqID))
		return nil, nil
	}
	logger.Info(fmt.Sprintf("Request %s: Sign-In Code Found Via %s Pattern", reqID, code.Tier))

	verdict := EvaluateExpiry(matched.RawDate, ExpiryWindow)
	logger.Info(fmt.Sprintf("Request %s: Code %s Expiry Check: %s", reqID, code.Value, verdict.Message))

	return &SignInCode{Code: code.Value, Tier: code.Tier, Verdict: verdict}, nil
}

// GetVerifyLink retrieves the newest verification email and extracts the
// tokenized travel-verify link from it.
func GetVerifyLink(logger *helpers.ColorizedLogger, reqID string, box helpers.Mailbox) (string, error) {
	matched, err := FindMatchingEmail(logger, reqID, box, VerifySubject)
	if err != nil || matched == nil {
		return "", err
	}

	link, ok := ExtractVerifyLink(matched.Body)
	if !ok {
		logger.Warn(fmt.Sprintf("Request %s: No Verification Link Found In Email Content", reqID))
		return "", nil
	}
	logger.Info(fmt.Sprintf("Request %s: Verification Link Found: %.50s...", reqID, link))
	return link, nil
}

// GetChallengeCode chains the verify-link lookup with the landing-page
// scrape. Empty result means some stage found nothing.
func GetChallengeCode(logger *helpers.ColorizedLogger, reqID string, box helpers.Mailbox) (string, error) {
	link, err := GetVerifyLink(logger, reqID, box)
	if err != nil || link == "" {
		return "", err
	}

	code, ok := ResolveChallengeCode(logger, reqID, link)
	if !ok {
		return "", nil
	}
	logger.Info(fmt.Sprintf("Request %s: Challenge Code Extracted: %s", reqID, code))
	return code, nil
}

// RecentSubjects lists the decoded subjects of the newest count Netflix
// emails, newest first. Used by the diagnostics menu to spot template
// wording changes.
func RecentSubjects(logger *helpers.ColorizedLogger, reqID string, box helpers.Mailbox, count int) ([]string, error) {
	var subjects []string

	err := imaphelper.WithSession(logger, reqID, box, func(c *client.Client) error {
		ids, err := imaphelper.Search(c, logger, reqID, imaphelper.SearchFilter{Sender: SenderAddress})
		if err != nil {
			return err
		}
		if len(ids) > count {
			ids = ids[len(ids)-count:]
		}

		for i := len(ids) - 1; i >= 0; i-- {
			raw, err := imaphelper.Fetch(c, ids[i])
			if err != nil {
				logger.Warn(fmt.Sprintf("Request %s: Failed To Fetch Message %d, Skipping: %v", reqID, ids[i], err))
				continue
			}
			subjects = append(subjects, imaphelper.DecodeSubject(raw.Subject))
		}
		return nil
	})
	return subjects, err
}
