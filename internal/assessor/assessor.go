// Package assessor runs the full assessment pipeline for a URL: the
// structural analyzer plus every external collaborator fan out
// concurrently, findings converge into the trust aggregator, and any
// collaborator failure degrades to that signal's documented default
// instead of failing the assessment.
package assessor

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MokshaVS03/scam-url-detector/internal/content"
	"github.com/MokshaVS03/scam-url-detector/internal/trust"
	"github.com/MokshaVS03/scam-url-detector/internal/types"
	"github.com/MokshaVS03/scam-url-detector/internal/urlinfo"
)

// defaultCollaboratorTimeout bounds each external call independently.
const defaultCollaboratorTimeout = 10 * time.Second

// PageFetcher retrieves and parses page content.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*types.PageContent, error)
}

// CertChecker validates the certificate presented by a URL's host.
type CertChecker interface {
	Check(ctx context.Context, url string) (types.CertificateFinding, error)
}

// ReputationLookup queries an external URL-reputation service.
type ReputationLookup interface {
	Lookup(ctx context.Context, url string) (types.ReputationFinding, error)
}

// ContentClassifier asks an external classifier for a phishing verdict.
type ContentClassifier interface {
	Classify(ctx context.Context, page *types.PageContent) (types.AIVerdict, error)
}

// DomainAger resolves a domain's registration age in days.
type DomainAger interface {
	AgeDays(ctx context.Context, domain string) (int, error)
}

// Interface defines the contract for URL assessment implementations
type Interface interface {
	Assess(ctx context.Context, rawURL string) (*types.Assessment, error)
}

// Assessor coordinates the analyzers and collaborators for one URL.
type Assessor struct {
	urlAnalyzer     *urlinfo.Analyzer
	contentAnalyzer *content.Analyzer

	fetcher    PageFetcher
	certs      CertChecker
	reputation ReputationLookup
	classifier ContentClassifier
	domainAge  DomainAger

	collaboratorTimeout time.Duration
}

// Option configures the Assessor
type Option func(*Assessor)

// WithURLAnalyzer overrides the structural URL analyzer
func WithURLAnalyzer(a *urlinfo.Analyzer) Option {
	return func(as *Assessor) {
		if a != nil {
			as.urlAnalyzer = a
		}
	}
}

// WithContentAnalyzer overrides the content heuristic analyzer
func WithContentAnalyzer(a *content.Analyzer) Option {
	return func(as *Assessor) {
		if a != nil {
			as.contentAnalyzer = a
		}
	}
}

// WithFetcher sets the page-fetch collaborator
func WithFetcher(f PageFetcher) Option {
	return func(as *Assessor) {
		as.fetcher = f
	}
}

// WithCertChecker sets the certificate collaborator
func WithCertChecker(c CertChecker) Option {
	return func(as *Assessor) {
		as.certs = c
	}
}

// WithReputation sets the reputation collaborator
func WithReputation(r ReputationLookup) Option {
	return func(as *Assessor) {
		as.reputation = r
	}
}

// WithClassifier sets the AI classification collaborator
func WithClassifier(c ContentClassifier) Option {
	return func(as *Assessor) {
		as.classifier = c
	}
}

// WithDomainAger sets the registration-age collaborator
func WithDomainAger(d DomainAger) Option {
	return func(as *Assessor) {
		as.domainAge = d
	}
}

// WithCollaboratorTimeout bounds each external collaborator call
func WithCollaboratorTimeout(timeout time.Duration) Option {
	return func(as *Assessor) {
		if timeout > 0 {
			as.collaboratorTimeout = timeout
		}
	}
}

// New creates an Assessor. Collaborators left unset are simply skipped at
// assessment time and their findings stay at the documented defaults.
func New(opts ...Option) *Assessor {
	a := &Assessor{
		urlAnalyzer:         urlinfo.New(),
		contentAnalyzer:     content.New(),
		collaboratorTimeout: defaultCollaboratorTimeout,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Assess runs the full pipeline for one URL. The only failure surfaced to
// the caller is a URL that cannot be parsed at all; every collaborator
// failure is logged and replaced by that finding's default.
func (a *Assessor) Assess(ctx context.Context, rawURL string) (*types.Assessment, error) {
	urlFinding, err := a.urlAnalyzer.Analyze(rawURL)
	if err != nil {
		return nil, err
	}

	target := urlFinding.OriginalURL

	certFinding := types.DefaultCertificateFinding("certificate check unavailable")
	repFinding := types.ReputationFinding{}
	ageDays := types.DefaultDomainAgeDays
	contentFinding := a.contentAnalyzer.Analyze(nil)
	verdict := types.DefaultAIVerdict("")

	var wg sync.WaitGroup

	if a.certs != nil {
		wg.Go(func() {
			cctx, cancel := context.WithTimeout(ctx, a.collaboratorTimeout)
			defer cancel()

			finding, err := a.certs.Check(cctx, target)
			if err != nil {
				log.Warn().Err(err).Str("url", target).Msg("certificate check failed, using default finding")
				return
			}
			certFinding = finding
		})
	}

	if a.reputation != nil {
		wg.Go(func() {
			cctx, cancel := context.WithTimeout(ctx, a.collaboratorTimeout)
			defer cancel()

			finding, err := a.reputation.Lookup(cctx, target)
			if err != nil {
				log.Warn().Err(err).Str("url", target).Msg("reputation lookup failed, using zero detections")
				return
			}
			repFinding = finding
		})
	}

	if a.domainAge != nil {
		wg.Go(func() {
			cctx, cancel := context.WithTimeout(ctx, a.collaboratorTimeout)
			defer cancel()

			age, err := a.domainAge.AgeDays(cctx, urlFinding.FullDomain)
			if err != nil {
				log.Warn().Err(err).Str("domain", urlFinding.FullDomain).Msg("domain age lookup failed, assuming aged domain")
				return
			}
			ageDays = age
		})
	}

	// Content heuristics and the classifier both need the fetched page, so
	// they share one goroutine chained after the fetch.
	wg.Go(func() {
		page := a.fetchPage(ctx, target)
		contentFinding = a.contentAnalyzer.Analyze(page)
		verdict = a.classifyPage(ctx, target, page)
	})

	wg.Wait()

	// A page whose heuristics alone cross the confidence threshold counts
	// as a phishing verdict even when the remote classifier is unavailable
	// or disagrees. The stronger confidence of the two is reported.
	if contentFinding.LikelyPhishing() {
		verdict.IsPhishing = true
		if contentFinding.BasicConfidence > verdict.Confidence {
			verdict.Confidence = contentFinding.BasicConfidence
		}
	}

	assessment := &types.Assessment{
		URL:             rawURL,
		AssessedAt:      time.Now().Unix(),
		TrustAssessment: trust.Aggregate(urlFinding, certFinding, repFinding, *contentFinding, verdict, ageDays),
		Details: types.AssessmentDetails{
			URLFinding:    urlFinding,
			Certificate:   certFinding,
			Reputation:    repFinding,
			Content:       *contentFinding,
			AIVerdict:     verdict,
			DomainAgeDays: ageDays,
		},
	}

	return assessment, nil
}

// fetchPage retrieves page content, degrading to an empty page on any
// failure so the content analyzer is never invoked with an error state.
func (a *Assessor) fetchPage(ctx context.Context, target string) *types.PageContent {
	if a.fetcher == nil {
		return nil
	}

	cctx, cancel := context.WithTimeout(ctx, a.collaboratorTimeout)
	defer cancel()

	page, err := a.fetcher.Fetch(cctx, target)
	if err != nil {
		log.Warn().Err(err).Str("url", target).Msg("page fetch failed, analyzing empty content")
		return nil
	}

	return page
}

// classifyPage asks the external classifier for a verdict, degrading to
// the default verdict on any failure.
func (a *Assessor) classifyPage(ctx context.Context, target string, page *types.PageContent) types.AIVerdict {
	if a.classifier == nil || page == nil {
		return types.DefaultAIVerdict("")
	}

	cctx, cancel := context.WithTimeout(ctx, a.collaboratorTimeout)
	defer cancel()

	verdict, err := a.classifier.Classify(cctx, page)
	if err != nil {
		log.Warn().Err(err).Str("url", target).Msg("content classification failed, using default verdict")
		return types.DefaultAIVerdict("")
	}

	return verdict
}
