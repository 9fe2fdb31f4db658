// Package urlinfo performs structural analysis of URLs: domain
// decomposition, lexical red-flag detection, link-shortener membership,
// and typosquatting similarity against well-known brand names.
package urlinfo

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/MokshaVS03/scam-url-detector/internal/types"
)

const (
	// typosquatMaxDistance is the edit distance at or below which a domain
	// label is considered a near miss of a brand name.
	typosquatMaxDistance = 2
	// brandMatchWeight is the score contributed by each brand within
	// typosquatMaxDistance. A distance of zero also contributes: the score
	// measures similarity risk, not exact impersonation, and exact matches
	// to popular domains are expected to be allow-listed upstream.
	brandMatchWeight = 50
	// maxTyposquatScore caps the summed brand contributions.
	maxTyposquatScore = 100
)

// Analyzer inspects URL structure. All detection lists are fixed at
// construction, which keeps Analyze deterministic and side-effect free.
type Analyzer struct {
	patterns       []*regexp.Regexp
	suspiciousTLDs []string
	shorteners     []string
	securityTerms  []string
	brands         []string
}

// Option configures the Analyzer
type Option func(*Analyzer)

// WithSuspiciousPatterns overrides the lexical red-flag patterns
func WithSuspiciousPatterns(patterns ...string) Option {
	return func(a *Analyzer) {
		a.patterns = compileAll(patterns...)
	}
}

// WithBrands overrides the brand names checked for typosquatting
func WithBrands(brands ...string) Option {
	return func(a *Analyzer) {
		a.brands = brands
	}
}

// WithShorteners overrides the known link-shortener hosts
func WithShorteners(hosts ...string) Option {
	return func(a *Analyzer) {
		a.shorteners = hosts
	}
}

// WithSecurityTerms overrides the subdomain bait words
func WithSecurityTerms(terms ...string) Option {
	return func(a *Analyzer) {
		a.securityTerms = terms
	}
}

// WithSuspiciousTLDs overrides the suspicious top-level domain set
func WithSuspiciousTLDs(tlds ...string) Option {
	return func(a *Analyzer) {
		a.suspiciousTLDs = tlds
	}
}

// New creates an Analyzer with the default detection lists.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		patterns:       defaultSuspiciousPatterns,
		suspiciousTLDs: defaultSuspiciousTLDs,
		shorteners:     defaultShorteners,
		securityTerms:  defaultSecurityTerms,
		brands:         defaultBrands,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Analyze decomposes a URL and evaluates every structural heuristic. It
// fails only when the input cannot be parsed as a URL at all; merely
// unusual input is normalized, with a missing scheme defaulting to https.
func (a *Analyzer) Analyze(rawURL string) (*types.URLFinding, error) {
	normalized := strings.TrimSpace(rawURL)
	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = "https://" + normalized
	}

	u, err := url.Parse(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedURL, err)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil, fmt.Errorf("%w: no host in %q", ErrMalformedURL, rawURL)
	}

	sld, suffix, subdomain := splitDomain(host)

	fullDomain := sld
	if suffix != "" {
		fullDomain = sld + "." + suffix
	}

	finding := &types.URLFinding{
		OriginalURL:         normalized,
		Domain:              sld,
		Suffix:              suffix,
		Subdomain:           subdomain,
		FullDomain:          fullDomain,
		Path:                u.Path,
		QueryParams:         u.Query(),
		Scheme:              u.Scheme,
		Port:                u.Port(),
		SuspiciousSubdomain: a.suspiciousSubdomain(subdomain),
		TyposquattingScore:  a.typosquattingScore(sld),
		SuspiciousPatterns:  a.suspiciousPatternTags(normalized, host),
		IsShortened:         a.isShortened(u.Host),
	}

	return finding, nil
}

// splitDomain separates a hostname into registrable label, public suffix,
// and subdomain. Hosts the public suffix list cannot place (IP addresses,
// single labels) fall back to a plain label split rather than failing.
func splitDomain(host string) (sld, suffix, subdomain string) {
	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err == nil {
		suffix, _ = publicsuffix.PublicSuffix(host)
		sld = strings.TrimSuffix(etld1, "."+suffix)
		if host != etld1 {
			subdomain = strings.TrimSuffix(host, "."+etld1)
		}

		return sld, suffix, subdomain
	}

	labels := strings.Split(host, ".")
	switch len(labels) {
	case 1:
		return host, "", ""
	case 2:
		return labels[0], labels[1], ""
	default:
		return labels[len(labels)-2], labels[len(labels)-1], strings.Join(labels[:len(labels)-2], ".")
	}
}

// suspiciousPatternTags matches the lowercased URL against the red-flag
// patterns and appends structural tags for excessive subdomains and
// suspicious TLDs. Each tag appears at most once.
func (a *Analyzer) suspiciousPatternTags(normalizedURL, host string) []string {
	urlLower := strings.ToLower(normalizedURL)
	tags := make([]string, 0)
	seen := make(map[string]struct{})

	appendTag := func(tag string) {
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	for _, pattern := range a.patterns {
		if pattern.MatchString(urlLower) {
			appendTag(pattern.String())
		}
	}

	// Subdomain labels beyond a two-label base
	if len(strings.Split(host, "."))-2 > maxSubdomainLabels {
		appendTag(tagExcessiveSubdomains)
	}

	for _, tld := range a.suspiciousTLDs {
		if strings.HasSuffix(host, tld) {
			appendTag(tagSuspiciousTLDPrefix + tld)
		}
	}

	return tags
}

// isShortened reports whether the host belongs to a known link shortener.
func (a *Analyzer) isShortened(host string) bool {
	hostLower := strings.ToLower(host)
	for _, shortener := range a.shorteners {
		if strings.Contains(hostLower, shortener) {
			return true
		}
	}

	return false
}

// suspiciousSubdomain flags subdomains that look machine generated or that
// carry security-themed bait words.
func (a *Analyzer) suspiciousSubdomain(subdomain string) bool {
	if subdomain == "" {
		return false
	}

	if len(subdomain) > machineSubdomainLength && isAlphanumeric(subdomain) {
		return true
	}

	lower := strings.ToLower(subdomain)
	for _, term := range a.securityTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}

	return false
}

// typosquattingScore sums a fixed contribution for every brand within
// typosquatMaxDistance of the registrable label, clamped to 100. More brand
// matches never lower the score.
func (a *Analyzer) typosquattingScore(domain string) int {
	lower := strings.ToLower(domain)

	score := 0
	for _, brand := range a.brands {
		if levenshteinDistance(lower, brand) <= typosquatMaxDistance {
			score += brandMatchWeight
		}
	}

	if score > maxTyposquatScore {
		score = maxTyposquatScore
	}

	return score
}

// isAlphanumeric reports whether s consists solely of ASCII letters and digits.
func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}
