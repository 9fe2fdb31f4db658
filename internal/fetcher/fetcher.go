// Package fetcher retrieves a web page and extracts the structured content
// the heuristic analyzers consume: visible text, title, forms, and links.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/MokshaVS03/scam-url-detector/internal/types"
)

const (
	// defaultTimeout bounds the whole fetch including body read.
	defaultTimeout = 10 * time.Second
	// defaultUserAgent mimics a desktop browser; some phishing pages serve
	// benign content to obvious bots.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	// maxBodySize caps how much HTML is read, 2MB.
	maxBodySize = 2 << 20
)

// Fetcher retrieves and parses page content.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures the Fetcher
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client for page retrieval
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.httpClient = client
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with fetches
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// New creates a Fetcher with a bounded default timeout.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch retrieves the page at url and extracts its structured content.
// Callers are expected to substitute an empty PageContent when an error is
// returned; the analyzers never see a nil page because of a fetch failure.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*types.PageContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close error is non-critical

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: status %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	return extract(doc), nil
}

// extract pulls title, visible text, forms, and links out of a parsed page.
func extract(doc *goquery.Document) *types.PageContent {
	content := &types.PageContent{
		Forms: make([]types.Form, 0),
		Links: make([]string, 0),
	}

	content.Title = strings.TrimSpace(doc.Find("title").First().Text())

	// Drop non-visible elements before collecting text
	doc.Find("script, style, noscript").Remove()
	content.Text = strings.Join(strings.Fields(doc.Text()), " ")

	doc.Find("form").Each(func(_ int, form *goquery.Selection) {
		extracted := types.Form{
			Action: form.AttrOr("action", ""),
			Method: strings.ToLower(form.AttrOr("method", "get")),
			Inputs: make([]types.FormInput, 0),
		}

		form.Find("input, textarea, select").Each(func(_ int, input *goquery.Selection) {
			_, required := input.Attr("required")
			extracted.Inputs = append(extracted.Inputs, types.FormInput{
				Type:        input.AttrOr("type", "text"),
				Name:        input.AttrOr("name", ""),
				Placeholder: input.AttrOr("placeholder", ""),
				Required:    required,
			})
		})

		content.Forms = append(content.Forms, extracted)
	})

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if href := a.AttrOr("href", ""); href != "" {
			content.Links = append(content.Links, href)
		}
	})

	return content
}
