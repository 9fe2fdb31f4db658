package urlinfo

import (
	"errors"
	"testing"
)

func TestAnalyzeDomainDecomposition(t *testing.T) {
	a := New()

	finding, err := a.Analyze("https://secure.login.example.co.uk:8443/path?next=home")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if finding.Domain != "example" {
		t.Errorf("expected domain example, got %s", finding.Domain)
	}
	if finding.Suffix != "co.uk" {
		t.Errorf("expected suffix co.uk, got %s", finding.Suffix)
	}
	if finding.Subdomain != "secure.login" {
		t.Errorf("expected subdomain secure.login, got %s", finding.Subdomain)
	}
	if finding.FullDomain != "example.co.uk" {
		t.Errorf("expected full domain example.co.uk, got %s", finding.FullDomain)
	}
	if finding.Port != "8443" {
		t.Errorf("expected port 8443, got %s", finding.Port)
	}
	if finding.Path != "/path" {
		t.Errorf("expected path /path, got %s", finding.Path)
	}
	if got := finding.QueryParams["next"]; len(got) != 1 || got[0] != "home" {
		t.Errorf("expected query param next=home, got %v", finding.QueryParams)
	}
	if !finding.SuspiciousSubdomain {
		t.Error("expected secure.login subdomain to be flagged")
	}
}

func TestAnalyzeDefaultsMissingScheme(t *testing.T) {
	a := New()

	finding, err := a.Analyze("example.com/welcome")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if finding.Scheme != "https" {
		t.Errorf("expected https scheme default, got %s", finding.Scheme)
	}
	if finding.OriginalURL != "https://example.com/welcome" {
		t.Errorf("unexpected normalized URL %s", finding.OriginalURL)
	}
}

func TestAnalyzeMalformedURL(t *testing.T) {
	a := New()

	cases := []string{
		"https://exa mple.com",
		"",
		"https://",
	}

	for _, input := range cases {
		if _, err := a.Analyze(input); !errors.Is(err, ErrMalformedURL) {
			t.Errorf("Analyze(%q) error = %v, want ErrMalformedURL", input, err)
		}
	}
}

func TestSuspiciousPatternTags(t *testing.T) {
	a := New()

	cases := []struct {
		name string
		url  string
		want []string
	}{
		{
			name: "urgency keyword and account verification",
			url:  "https://example.com/urgent-verify-account",
			want: []string{"urgent", "verify.*account"},
		},
		{
			name: "suspicious tld",
			url:  "https://prizes.example.tk/",
			want: []string{"suspicious_tld_.tk"},
		},
		{
			name: "suspicious tld with path and query",
			url:  "https://example.tk/login?next=home",
			want: []string{"suspicious_tld_.tk"},
		},
		{
			name: "excessive subdomains",
			url:  "https://a.b.c.d.e.example.com/",
			want: []string{"excessive_subdomains"},
		},
		{
			name: "clean",
			url:  "https://example.com/about",
			want: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			finding, err := a.Analyze(tc.url)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(finding.SuspiciousPatterns) != len(tc.want) {
				t.Fatalf("expected %d tags, got %v", len(tc.want), finding.SuspiciousPatterns)
			}
			for i, tag := range tc.want {
				if finding.SuspiciousPatterns[i] != tag {
					t.Errorf("tag %d = %s, want %s", i, finding.SuspiciousPatterns[i], tag)
				}
			}
		})
	}
}

func TestShortenerDetection(t *testing.T) {
	a := New()

	shortened, err := a.Analyze("https://bit.ly/3xyzabc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !shortened.IsShortened {
		t.Error("expected bit.ly to be detected as a shortener")
	}

	regular, err := a.Analyze("https://example.com/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if regular.IsShortened {
		t.Error("expected example.com not to be detected as a shortener")
	}
}

func TestSuspiciousSubdomain(t *testing.T) {
	a := New()

	cases := []struct {
		name string
		url  string
		want bool
	}{
		{name: "machine generated", url: "https://x7f9kq2mzp.example.com/", want: true},
		{name: "security bait word", url: "https://login.example.com/", want: true},
		{name: "short and plain", url: "https://www.example.com/", want: false},
		{name: "no subdomain", url: "https://example.com/", want: false},
		{name: "long but hyphenated", url: "https://my-own-blog.example.com/", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			finding, err := a.Analyze(tc.url)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if finding.SuspiciousSubdomain != tc.want {
				t.Errorf("suspicious subdomain = %v, want %v", finding.SuspiciousSubdomain, tc.want)
			}
		})
	}
}

func TestTyposquattingScore(t *testing.T) {
	a := New()

	cases := []struct {
		name string
		url  string
		want int
	}{
		{name: "near miss of google", url: "https://gooogle.com/", want: 50},
		{name: "substituted paypal", url: "https://paypa1.com/", want: 50},
		{name: "exact brand still scores", url: "https://google.com/", want: 50},
		{name: "unrelated name", url: "https://weatherstation.com/", want: 0},
		{name: "distance three", url: "https://goooogle1.com/", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			finding, err := a.Analyze(tc.url)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if finding.TyposquattingScore != tc.want {
				t.Errorf("typosquatting score = %d, want %d", finding.TyposquattingScore, tc.want)
			}
		})
	}
}

func TestTyposquattingScoreClampsAt100(t *testing.T) {
	a := New(WithBrands("examp1e", "exampl3", "3xample"))

	finding, err := a.Analyze("https://example.com/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if finding.TyposquattingScore != 100 {
		t.Errorf("expected clamped score 100, got %d", finding.TyposquattingScore)
	}
}
