package netflix

import (
	"testing"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		want     string
		wantTier Tier
	}{
		{
			name:     "english anchor with code on next line",
			body:     "Your sign-in code is\n123456",
			want:     "123456",
			wantTier: TierPhraseAnchor,
		},
		{
			name:     "english anchor inline",
			body:     "Use this verification code: 9876 to continue.",
			want:     "9876",
			wantTier: TierPhraseAnchor,
		},
		{
			name:     "vietnamese anchor",
			body:     "Nhập mã này để đăng nhập: 445566",
			want:     "445566",
			wantTier: TierPhraseAnchor,
		},
		{
			name:     "doubled vietnamese anchor with blank line before code",
			body:     "nhập mã này để đăng nhập\nnhập mã này để đăng nhập\n\n778899",
			want:     "778899",
			wantTier: TierDoubledAnchor,
		},
		{
			name:     "standalone line",
			body:     "Thanks for your request.\n2024\nSee you soon.",
			want:     "2024",
			wantTier: TierStandaloneLine,
		},
		{
			name:     "bare digits last resort",
			body:     "ref 123456 embedded mid-sentence with no anchor",
			want:     "123456",
			wantTier: TierBareDigits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := ExtractCode(tt.body)
			if !ok {
				t.Fatal("expected a code")
			}
			if code.Value != tt.want {
				t.Errorf("Value = %q, want %q", code.Value, tt.want)
			}
			if code.Tier != tt.wantTier {
				t.Errorf("Tier = %q, want %q", code.Tier, tt.wantTier)
			}
		})
	}
}

func TestExtractCode_ShortCircuit(t *testing.T) {
	// The anchored code must win even when later tiers would match other
	// digit runs in the same body.
	body := "Your sign-in code is 111222\n\n999888\n"

	code, ok := ExtractCode(body)
	if !ok {
		t.Fatal("expected a code")
	}
	if code.Tier != TierPhraseAnchor {
		t.Errorf("Tier = %q, want %q", code.Tier, TierPhraseAnchor)
	}
	if code.Value != "111222" {
		t.Errorf("Value = %q, want %q", code.Value, "111222")
	}
}

func TestExtractCode_NoMatch(t *testing.T) {
	bodies := []string{
		"",
		"no digits here at all",
		"too short 123 and too long 123456789",
	}
	for _, body := range bodies {
		if code, ok := ExtractCode(body); ok {
			t.Errorf("ExtractCode(%q) = %v, want no match", body, code)
		}
	}
}

func TestExtractVerifyLink(t *testing.T) {
	body := "Open the link below:\n[https://www.netflix.com/account/travel/verify?nftoken=abc123]\nThanks"

	link, ok := ExtractVerifyLink(body)
	if !ok {
		t.Fatal("expected a link")
	}
	want := "https://www.netflix.com/account/travel/verify?nftoken=abc123"
	if link != want {
		t.Errorf("link = %q, want %q", link, want)
	}

	// Idempotence: the same body always yields the same link.
	again, ok := ExtractVerifyLink(body)
	if !ok || again != link {
		t.Errorf("second call = %q, %v; want %q, true", again, ok, link)
	}
}

func TestExtractVerifyLink_NoMatch(t *testing.T) {
	bodies := []string{
		"https://www.netflix.com/account/travel/verify?nftoken=abc",
		"[https://example.com/account/travel/verify?nftoken=abc]",
		"no link at all",
	}
	for _, body := range bodies {
		if link, ok := ExtractVerifyLink(body); ok {
			t.Errorf("ExtractVerifyLink(%q) = %q, want no match", body, link)
		}
	}
}
