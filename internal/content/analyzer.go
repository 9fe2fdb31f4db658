// Package content inspects already-fetched page content for phishing
// signals: keyword density, urgency language, and credential-harvesting
// form signatures. Analysis never fails; absent content yields a zero
// finding.
package content

import (
	"regexp"
	"strings"

	"github.com/MokshaVS03/scam-url-detector/internal/types"
)

const (
	// keywordWeight is the confidence contribution per matched keyword.
	keywordWeight = 15
	// urgencyWeight is the confidence contribution of urgency language.
	urgencyWeight = 25
	// credentialWeight is the confidence contribution of a credential
	// harvesting form, the strongest standalone signal.
	credentialWeight = 30
	// maxConfidence caps the summed contributions.
	maxConfidence = 100
)

// defaultPhishingKeywords are matched case-insensitively as substrings of
// the page title and text.
var defaultPhishingKeywords = []string{
	"urgent", "verify", "suspend", "confirm", "update",
	"click here", "act now", "limited time", "expire",
	"congratulations", "winner", "prize", "free gift",
	"security alert", "account locked", "payment failed",
}

// defaultUrgencyPatterns capture pressure-tactic phrasing in page text.
var defaultUrgencyPatterns = compileAll(
	`urgent.*action`,
	`expire.*soon`,
	`immediate.*attention`,
	`within.*\d+.*hours?`,
	`act.*now`,
	`limited.*time`,
)

// defaultFormIndicators are credential-related terms searched in form
// field names and placeholders.
var defaultFormIndicators = []string{
	"password", "credit card", "ssn", "social security",
	"bank account", "login", "signin", "card number",
}

// Analyzer evaluates page content heuristics. Detection lists are fixed at
// construction so identical content always yields an identical finding.
type Analyzer struct {
	keywords        []string
	urgencyPatterns []*regexp.Regexp
	formIndicators  []string
}

// Option configures the Analyzer
type Option func(*Analyzer)

// WithKeywords overrides the phishing keyword list
func WithKeywords(keywords ...string) Option {
	return func(a *Analyzer) {
		a.keywords = keywords
	}
}

// WithUrgencyPatterns overrides the urgency language patterns
func WithUrgencyPatterns(patterns ...string) Option {
	return func(a *Analyzer) {
		a.urgencyPatterns = compileAll(patterns...)
	}
}

// WithFormIndicators overrides the credential-related form terms
func WithFormIndicators(terms ...string) Option {
	return func(a *Analyzer) {
		a.formIndicators = terms
	}
}

// New creates an Analyzer with the default detection lists.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		keywords:        defaultPhishingKeywords,
		urgencyPatterns: defaultUrgencyPatterns,
		formIndicators:  defaultFormIndicators,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Analyze evaluates the heuristics over fetched page content. A nil or
// empty page yields an all-false, zero-confidence finding.
func (a *Analyzer) Analyze(page *types.PageContent) *types.ContentFinding {
	finding := &types.ContentFinding{
		KeywordMatches:  make([]string, 0),
		SuspiciousForms: make([]types.SuspiciousForm, 0),
	}

	if page == nil {
		return finding
	}

	text := strings.ToLower(page.Text)
	title := strings.ToLower(page.Title)

	for _, keyword := range a.keywords {
		if strings.Contains(text, keyword) || strings.Contains(title, keyword) {
			finding.KeywordMatches = append(finding.KeywordMatches, keyword)
		}
	}

	for _, pattern := range a.urgencyPatterns {
		if pattern.MatchString(text) {
			finding.UrgencyDetected = true
			break
		}
	}

	finding.HasForms = len(page.Forms) > 0

	for _, form := range page.Forms {
		indicators := a.matchFormIndicators(form)
		if len(indicators) == 0 {
			continue
		}

		finding.SuspiciousForms = append(finding.SuspiciousForms, types.SuspiciousForm{
			Action:     form.Action,
			Indicators: indicators,
		})
		finding.CredentialHarvesting = true
	}

	finding.BasicConfidence = confidence(finding)

	return finding
}

// matchFormIndicators concatenates a form's field names and placeholders
// and returns every credential-related term found in them.
func (a *Analyzer) matchFormIndicators(form types.Form) []string {
	var fields []string
	for _, input := range form.Inputs {
		fields = append(fields, input.Name, input.Placeholder)
	}
	formText := strings.ToLower(strings.Join(fields, " "))

	var indicators []string
	for _, indicator := range a.formIndicators {
		if strings.Contains(formText, indicator) {
			indicators = append(indicators, indicator)
		}
	}

	return indicators
}

// confidence computes the weighted signal sum, clamped to [0, 100]. It is
// monotonically non-decreasing in the number of matched signals.
func confidence(finding *types.ContentFinding) int {
	score := keywordWeight * len(finding.KeywordMatches)
	if finding.UrgencyDetected {
		score += urgencyWeight
	}
	if finding.CredentialHarvesting {
		score += credentialWeight
	}

	if score > maxConfidence {
		score = maxConfidence
	}

	return score
}

// compileAll compiles a set of regex patterns, panicking on invalid input
func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}

	return compiled
}
