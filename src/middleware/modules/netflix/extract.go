package netflix

import (
	"regexp"
)

// Netflix template wording shifts across locales and changes without
// notice, so code extraction walks an ordered chain of patterns from most
// to least specific and stops at the first hit. New locale phrasings belong
// in the phrase-anchor alternation.
var codePatterns = []struct {
	re   *regexp.Regexp
	tier Tier
}{
	// Known instruction phrases, then the code on the same or next line.
	{regexp.MustCompile(`(?im)(?:nhập mã này để đăng nhập|mã đăng nhập|sign.?in code|verification code)[^\d\n]*\n?[^\d\n]*?(\d{4,8})`), TierPhraseAnchor},
	// Some Vietnamese templates repeat the instruction twice before the code.
	{regexp.MustCompile(`(?im)nhập mã này để đăng nhập[\s]+nhập mã này để đăng nhập[\s]+(\d{4,8})`), TierDoubledAnchor},
	// A line holding nothing but the code.
	{regexp.MustCompile(`(?m)^\s*(\d{4,8})\s*$`), TierStandaloneLine},
	// Last resort: any free-standing digit run.
	{regexp.MustCompile(`\b(\d{4,8})\b`), TierBareDigits},
}

var verifyLinkRegex = regexp.MustCompile(`\[(https://www\.netflix\.com/account/travel/verify[^\]]*)\]`)

// ExtractCode runs the pattern chain over a message body and returns the
// first code found, tagged with the tier that matched.
func ExtractCode(body string) (ExtractedCode, bool) {
	for _, p := range codePatterns {
		if match := p.re.FindStringSubmatch(body); match != nil {
			return ExtractedCode{Value: match[1], Tier: p.tier}, true
		}
	}
	return ExtractedCode{}, false
}

// ExtractVerifyLink finds the bracket-delimited verification link the email
// template emits. Link extraction has no fallback chain.
func ExtractVerifyLink(body string) (string, bool) {
	match := verifyLinkRegex.FindStringSubmatch(body)
	if match == nil {
		return "", false
	}
	return match[1], true
}
