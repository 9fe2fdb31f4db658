// Package types holds the finding and assessment records shared across
// the analyzers, the collaborator clients, and the trust aggregator.
package types

import "time"

// RiskLevel classifies a trust score into one of three tiers.
type RiskLevel string

const (
	// RiskLow indicates a score of 70 or above.
	RiskLow RiskLevel = "LOW"
	// RiskMedium indicates a score between 40 and 69.
	RiskMedium RiskLevel = "MEDIUM"
	// RiskHigh indicates a score below 40.
	RiskHigh RiskLevel = "HIGH"
)

// DefaultDomainAgeDays is assumed when the registration-age collaborator
// is unavailable, so that an unknown age never penalizes the score.
const DefaultDomainAgeDays = 365

// likelyPhishingThreshold is the basic confidence above which page content
// alone flags a page as phishing.
const likelyPhishingThreshold = 40

// URLFinding contains the structural analysis of a URL. It is created once
// per assessment and never mutated afterwards.
type URLFinding struct {
	// OriginalURL is the normalized URL that was analyzed
	OriginalURL string `json:"original_url"`
	// Domain is the registrable domain label without the public suffix
	Domain string `json:"domain"`
	// Suffix is the public suffix (TLD or effective TLD)
	Suffix string `json:"suffix"`
	// Subdomain is everything left of the registrable domain
	Subdomain string `json:"subdomain,omitempty"`
	// FullDomain is the registrable domain joined with its suffix
	FullDomain string `json:"full_domain"`
	// Path is the URL path component
	Path string `json:"path,omitempty"`
	// QueryParams holds the parsed query string
	QueryParams map[string][]string `json:"query_params,omitempty"`
	// Scheme is the URL scheme after normalization
	Scheme string `json:"scheme"`
	// Port is the explicit port, empty when none was given
	Port string `json:"port,omitempty"`
	// SuspiciousSubdomain reports whether the subdomain looks machine
	// generated or carries security-themed bait words
	SuspiciousSubdomain bool `json:"suspicious_subdomain"`
	// TyposquattingScore measures similarity to well-known brand names, 0-100
	TyposquattingScore int `json:"typosquatting_score"`
	// SuspiciousPatterns lists the distinct lexical red-flag tags that matched
	SuspiciousPatterns []string `json:"suspicious_patterns"`
	// IsShortened reports whether the host belongs to a known link shortener
	IsShortened bool `json:"is_shortened"`
}

// CertificateFinding is the normalized output of the certificate-check
// collaborator.
type CertificateFinding struct {
	// Valid reports whether a trustworthy certificate was presented
	Valid bool `json:"valid"`
	// Reason explains an invalid result
	Reason string `json:"reason,omitempty"`
	// Issuer is the certificate issuer distinguished name
	Issuer string `json:"issuer,omitempty"`
	// Subject is the certificate subject distinguished name
	Subject string `json:"subject,omitempty"`
	// NotBefore is the start of the certificate validity window
	NotBefore time.Time `json:"not_before,omitzero"`
	// NotAfter is the end of the certificate validity window
	NotAfter time.Time `json:"not_after,omitzero"`
}

// DefaultCertificateFinding is the value used when the certificate
// collaborator fails or the scheme is not secure.
func DefaultCertificateFinding(reason string) CertificateFinding {
	return CertificateFinding{Valid: false, Reason: reason}
}

// ReputationFinding is the normalized output of the URL-reputation
// collaborator. A zero value means no data, which scores the same as a
// clean verdict but must not be reported as one.
type ReputationFinding struct {
	// DetectionCount is the number of engines that flagged the URL
	DetectionCount int `json:"detection_count"`
	// TotalScans is the number of engines consulted
	TotalScans int `json:"total_scans"`
	// ScanDate is the reputation service's scan timestamp, verbatim
	ScanDate string `json:"scan_date,omitempty"`
}

// FormInput describes a single field of a page form.
type FormInput struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Placeholder string `json:"placeholder,omitempty"`
	Required    bool   `json:"required"`
}

// Form describes a form found on a fetched page.
type Form struct {
	Action string      `json:"action"`
	Method string      `json:"method"`
	Inputs []FormInput `json:"inputs"`
}

// PageContent is the structured output of the page-fetch collaborator.
type PageContent struct {
	// Text is the visible page text with collapsed whitespace
	Text string `json:"text"`
	// Title is the page title
	Title string `json:"title"`
	// Forms lists the forms found on the page
	Forms []Form `json:"forms"`
	// Links lists the href targets found on the page
	Links []string `json:"links"`
}

// SuspiciousForm records a form whose fields match credential-related terms.
type SuspiciousForm struct {
	// Action is the form submission target
	Action string `json:"action"`
	// Indicators lists the credential-related terms that matched
	Indicators []string `json:"indicators"`
}

// ContentFinding contains the heuristic analysis of fetched page content.
type ContentFinding struct {
	// KeywordMatches lists each phishing keyword found at most once
	KeywordMatches []string `json:"keyword_matches"`
	// UrgencyDetected reports whether urgency language was found
	UrgencyDetected bool `json:"urgency_detected"`
	// HasForms reports whether the page contains any forms
	HasForms bool `json:"has_forms"`
	// SuspiciousForms lists forms with credential-related fields
	SuspiciousForms []SuspiciousForm `json:"suspicious_forms"`
	// CredentialHarvesting is true when any form is suspicious
	CredentialHarvesting bool `json:"credential_harvesting"`
	// BasicConfidence is the weighted heuristic confidence, 0-100
	BasicConfidence int `json:"basic_confidence"`
}

// LikelyPhishing reports whether the content heuristics alone cross the
// phishing confidence threshold.
func (f ContentFinding) LikelyPhishing() bool {
	return f.BasicConfidence > likelyPhishingThreshold
}

// AIVerdict is the normalized output of the external content classifier.
type AIVerdict struct {
	// IsPhishing is the classifier's boolean verdict
	IsPhishing bool `json:"is_phishing"`
	// Confidence is the classifier's self-reported confidence, 0-100
	Confidence int `json:"confidence"`
	// Reasoning is the classifier's explanation, verbatim
	Reasoning string `json:"reasoning,omitempty"`
}

// DefaultAIVerdict is the value used when the classifier is unavailable
// or its response cannot be parsed.
func DefaultAIVerdict(reasoning string) AIVerdict {
	return AIVerdict{IsPhishing: false, Confidence: 0, Reasoning: reasoning}
}

// TrustAssessment is the aggregator's output: one score, one tier, and the
// fixed user-facing texts selected for that tier.
type TrustAssessment struct {
	// Score is the aggregate trust score, 0-100
	Score int `json:"score"`
	// RiskLevel is the tier derived from the score
	RiskLevel RiskLevel `json:"risk_level"`
	// Summary is the fixed summary text for the tier
	Summary string `json:"summary"`
	// Recommendation is the fixed recommendation text for the tier
	Recommendation string `json:"recommendation"`
}

// AssessmentDetails carries every finding that fed the aggregator, for
// callers that want the full picture behind the score.
type AssessmentDetails struct {
	URLFinding    *URLFinding        `json:"url_finding"`
	Certificate   CertificateFinding `json:"certificate"`
	Reputation    ReputationFinding  `json:"reputation"`
	Content       ContentFinding     `json:"content"`
	AIVerdict     AIVerdict          `json:"ai_verdict"`
	DomainAgeDays int                `json:"domain_age_days"`
}

// Assessment is the complete result of assessing one URL.
type Assessment struct {
	// URL is the URL as submitted by the caller
	URL string `json:"url"`
	// AssessedAt is the unix timestamp of the assessment
	AssessedAt int64 `json:"assessed_at"`
	// TrustAssessment is the aggregate verdict
	TrustAssessment TrustAssessment `json:"trust"`
	// Details holds the individual findings behind the verdict
	Details AssessmentDetails `json:"details"`
}
