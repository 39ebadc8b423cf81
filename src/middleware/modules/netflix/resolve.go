package netflix

import (
	"fmt"
	"strings"

	helpers "netflixbot/src/middleware/helpers"

	"github.com/PuerkitoBio/goquery"
	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
)

const (
	verifyLinkPrefix      = "https://www.netflix.com/account/travel/verify"
	resolveTimeoutSeconds = 30
)

// ResolveChallengeCode loads the verification landing page and scrapes the
// challenge code out of its marker element. One bounded attempt, no retry;
// every failure mode degrades to "no result".
func ResolveChallengeCode(logger *helpers.ColorizedLogger, reqID, link string) (string, bool) {
	if !strings.HasPrefix(link, verifyLinkPrefix) {
		logger.Error(fmt.Sprintf("Request %s: Refusing To Resolve Non-Netflix Link", reqID))
		return "", false
	}

	client, err := helpers.CreateTLSClient(resolveTimeoutSeconds)
	if err != nil {
		logger.Error(fmt.Sprintf("Request %s: Failed To Create Request Client: %v", reqID, err))
		return "", false
	}
	return resolveWithClient(logger, reqID, client, link)
}

func resolveWithClient(logger *helpers.ColorizedLogger, reqID string, client tls_client.HttpClient, link string) (string, bool) {
	req, err := http.NewRequest(http.MethodGet, link, nil)
	if err != nil {
		logger.Error(fmt.Sprintf("Request %s: Failed To Create Request: %v", reqID, err))
		return "", false
	}
	req.Header = http.Header{
		"accept":     {"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
		"sec-ch-ua":  {helpers.SecChUa},
		"user-agent": {helpers.UserAgent},
	}

	resp, err := client.Do(req)
	if err != nil {
		logger.Error(fmt.Sprintf("Request %s: Failed To Access Verification Link: %v", reqID, err))
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error(fmt.Sprintf("Request %s: Verification Link Returned Status %d", reqID, resp.StatusCode))
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		logger.Error(fmt.Sprintf("Request %s: Failed To Parse Landing Page HTML: %v", reqID, err))
		return "", false
	}

	code := strings.TrimSpace(doc.Find("div.challenge-code").First().Text())
	if code == "" {
		logger.Warn(fmt.Sprintf("Request %s: No Challenge Code Found In HTML", reqID))
		return "", false
	}
	return code, true
}
