// Package trust combines the independent findings for a URL into a single
// trust score, risk tier, and fixed user-facing guidance.
package trust

import (
	"github.com/samber/lo"

	"github.com/MokshaVS03/scam-url-detector/internal/types"
)

const (
	// maxScore is the starting trust score before deductions.
	maxScore = 100
	// minScore is the floor every step clamps to.
	minScore = 0

	// detectionPenalty is deducted per reputation-engine detection.
	detectionPenalty = 15
	// newDomainPenalty is deducted when the domain is younger than
	// newDomainAgeDays.
	newDomainPenalty = 20
	// newDomainAgeDays is the registration age below which a domain is
	// considered new.
	newDomainAgeDays = 30
	// invalidCertPenalty is deducted when no valid certificate was presented.
	invalidCertPenalty = 15
	// patternPenalty is deducted per suspicious URL pattern.
	patternPenalty = 10
	// aiPhishingPenalty is deducted on a phishing classifier verdict. The
	// verdict is consumed as a hard boolean; the classifier's confidence is
	// reported but never scales the deduction.
	aiPhishingPenalty = 30
	// urgencyPenalty is deducted when urgency language was detected.
	urgencyPenalty = 15

	// lowRiskThreshold is the minimum score for the LOW tier.
	lowRiskThreshold = 70
	// mediumRiskThreshold is the minimum score for the MEDIUM tier.
	mediumRiskThreshold = 40
)

// Fixed summary and recommendation texts per tier. These are stable
// literals meant to double as translation-lookup keys downstream.
const (
	summaryLow    = "This URL appears to be safe to visit. No significant threats detected."
	summaryMedium = "This URL shows some suspicious characteristics. Exercise caution before visiting."
	summaryHigh   = "WARNING: This URL appears to be a scam or phishing site. Do not visit or enter any personal information."

	recommendationLow    = "The site appears safe, but always verify the URL before entering sensitive information."
	recommendationMedium = "Proceed with caution. Verify the sender and avoid entering personal information."
	recommendationHigh   = "DO NOT visit this site. Block the sender and report as spam/phishing."
)

// Aggregate combines all findings into a trust assessment. It is a pure,
// total function: identical inputs always yield an identical assessment,
// and missing upstream data must arrive as the finding's documented
// default rather than being omitted.
//
// Deductions are applied in a fixed order with the score clamped to
// [0, 100] after every step, so each point lost is traceable to exactly
// one signal.
func Aggregate(
	url *types.URLFinding,
	cert types.CertificateFinding,
	reputation types.ReputationFinding,
	content types.ContentFinding,
	ai types.AIVerdict,
	domainAgeDays int,
) types.TrustAssessment {
	score := maxScore

	score = lo.Clamp(score-detectionPenalty*reputation.DetectionCount, minScore, maxScore)

	if domainAgeDays < newDomainAgeDays {
		score = lo.Clamp(score-newDomainPenalty, minScore, maxScore)
	}

	if !cert.Valid {
		score = lo.Clamp(score-invalidCertPenalty, minScore, maxScore)
	}

	patternCount := 0
	if url != nil {
		patternCount = len(url.SuspiciousPatterns)
	}
	score = lo.Clamp(score-patternPenalty*patternCount, minScore, maxScore)

	if ai.IsPhishing {
		score = lo.Clamp(score-aiPhishingPenalty, minScore, maxScore)
	}

	if content.UrgencyDetected {
		score = lo.Clamp(score-urgencyPenalty, minScore, maxScore)
	}

	level := riskLevel(score)

	return types.TrustAssessment{
		Score:          score,
		RiskLevel:      level,
		Summary:        summaryFor(level),
		Recommendation: recommendationFor(level),
	}
}

// riskLevel maps a score onto the three tiers. The boundaries partition
// [0, 100] with no gap or overlap, inclusive on each tier's lower bound.
func riskLevel(score int) types.RiskLevel {
	switch {
	case score >= lowRiskThreshold:
		return types.RiskLow
	case score >= mediumRiskThreshold:
		return types.RiskMedium
	default:
		return types.RiskHigh
	}
}

// summaryFor selects the fixed summary text for a tier.
func summaryFor(level types.RiskLevel) string {
	switch level {
	case types.RiskLow:
		return summaryLow
	case types.RiskMedium:
		return summaryMedium
	default:
		return summaryHigh
	}
}

// recommendationFor selects the fixed recommendation text for a tier.
func recommendationFor(level types.RiskLevel) string {
	switch level {
	case types.RiskLow:
		return recommendationLow
	case types.RiskMedium:
		return recommendationMedium
	default:
		return recommendationHigh
	}
}
