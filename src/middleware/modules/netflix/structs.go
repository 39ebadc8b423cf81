package netflix

// Tier names which pattern in the extraction fallback chain produced a code.
type Tier string

const (
	TierPhraseAnchor   Tier = "phrase-anchor"
	TierDoubledAnchor  Tier = "doubled-anchor"
	TierStandaloneLine Tier = "standalone-line"
	TierBareDigits     Tier = "bare-digits"
)

type ExtractedCode struct {
	Value string
	Tier  Tier
}

type ExpiryVerdict struct {
	Expired        bool
	Message        string
	MinutesElapsed float64
}

// MatchedEmail is the decoded result of a successful mailbox scan.
type MatchedEmail struct {
	Subject string
	Body    string
	RawDate string
}

type SignInCode struct {
	Code    string
	Tier    Tier
	Verdict ExpiryVerdict
}
