package imap

import (
	"bytes"
	"fmt"
	"io"
	netmail "net/mail"

	helpers "netflixbot/src/middleware/helpers"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
)

// SearchFilter scopes a mailbox search to one sender and, optionally, a
// subject substring.
type SearchFilter struct {
	Sender          string
	SubjectContains string
}

// RawEmail is one fetched message: the full RFC 822 bytes plus the raw
// (still MIME-encoded) Subject and Date header values.
type RawEmail struct {
	ID      uint32
	Raw     []byte
	Subject string
	Date    string
}

// WithSession dials the IMAP server, authenticates, selects INBOX and hands
// the live connection to run. The mailbox is closed and the session logged
// out on every exit path; cleanup failures are logged, never propagated.
func WithSession(logger *helpers.ColorizedLogger, reqID string, box helpers.Mailbox, run func(c *client.Client) error) error {
	c, err := client.DialTLS(box.Server, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to IMAP server: %w", err)
	}
	defer func() {
		if cerr := c.Logout(); cerr != nil {
			logger.Error(fmt.Sprintf("Request %s: Error Logging Out Of IMAP Server: %v", reqID, cerr))
		}
	}()

	if err := c.Login(box.Email, box.Password); err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}
	logger.Verbose(fmt.Sprintf("Request %s: IMAP Login Successful", reqID))

	if _, err := c.Select("INBOX", true); err != nil {
		return fmt.Errorf("failed to select INBOX: %w", err)
	}
	defer func() {
		if cerr := c.Close(); cerr != nil {
			logger.Error(fmt.Sprintf("Request %s: Error Closing Mailbox: %v", reqID, cerr))
		}
	}()

	return run(c)
}

// Search returns ids of messages matching the filter, in mailbox-native
// (ascending) order. The sender+subject query is attempted first; Gmail's
// SEARCH is unreliable for non-ASCII subject text, so a failed query is
// retried as sender-only and subject filtering is left to the caller.
func Search(c *client.Client, logger *helpers.ColorizedLogger, reqID string, filter SearchFilter) ([]uint32, error) {
	criteria := imap.NewSearchCriteria()
	criteria.Header.Add("From", filter.Sender)
	if filter.SubjectContains != "" {
		criteria.Header.Add("Subject", filter.SubjectContains)
	}

	ids, err := c.Search(criteria)
	if err == nil {
		return ids, nil
	}
	logger.Warn(fmt.Sprintf("Request %s: Subject-Scoped Search Failed, Falling Back To Sender-Only Search: %v", reqID, err))

	broad := imap.NewSearchCriteria()
	broad.Header.Add("From", filter.Sender)
	ids, err = c.Search(broad)
	if err != nil {
		return nil, fmt.Errorf("sender-only search failed: %w", err)
	}
	return ids, nil
}

// Fetch retrieves one message's full content without marking it seen. A
// failed fetch is an error the caller can treat as skippable.
func Fetch(c *client.Client, id uint32) (*RawEmail, error) {
	seqSet := new(imap.SeqSet)
	seqSet.AddNum(id)

	section := &imap.BodySectionName{Peek: true}
	messages := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqSet, []imap.FetchItem{section.FetchItem()}, messages)
	}()

	msg := <-messages
	if err := <-done; err != nil {
		return nil, fmt.Errorf("fetch message %d: %w", id, err)
	}
	if msg == nil {
		return nil, fmt.Errorf("fetch message %d: empty response", id)
	}

	body := msg.GetBody(section)
	if body == nil {
		return nil, fmt.Errorf("fetch message %d: missing body section", id)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("fetch message %d: read body: %w", id, err)
	}

	email := &RawEmail{ID: id, Raw: raw}
	if m, err := netmail.ReadMessage(bytes.NewReader(raw)); err == nil {
		email.Subject = m.Header.Get("Subject")
		email.Date = m.Header.Get("Date")
	}
	return email, nil
}
